package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedQuestion inserts a question with a `{"type":"text"}` model.
func SeedQuestion(t *testing.T, pool *pgxpool.Pool, text string) domain.Question {
	t.Helper()

	if text == "" {
		text = "Question " + uniqueSuffix()
	}

	q := domain.Question{Text: text, Model: domain.Value(`{"type":"text"}`)}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO questions (text, model) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		q.Text, string(q.Model),
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion: %v", err)
	}

	return q
}

// SeedTranslation inserts a translation of questionID in lang.
func SeedTranslation(t *testing.T, pool *pgxpool.Pool, questionID uuid.UUID, lang, text string) domain.QuestionTranslation {
	t.Helper()

	tr := domain.QuestionTranslation{QuestionID: questionID, Language: lang, Text: text}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO question_translations (question_id, language, text) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		questionID, lang, text,
	).Scan(&tr.ID, &tr.CreatedAt, &tr.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTranslation: %v", err)
	}

	return tr
}

// SeedTemplate inserts a template and attaches questionIDs in the given order.
func SeedTemplate(t *testing.T, pool *pgxpool.Pool, public bool, questionIDs ...uuid.UUID) domain.Template {
	t.Helper()
	ctx := context.Background()

	tpl := domain.Template{Name: "Template " + uniqueSuffix(), Public: public}
	err := pool.QueryRow(ctx,
		`INSERT INTO templates (name, public) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		tpl.Name, tpl.Public,
	).Scan(&tpl.ID, &tpl.CreatedAt, &tpl.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTemplate: %v", err)
	}

	for _, qid := range questionIDs {
		AttachTemplateQuestion(t, pool, tpl.ID, qid)
	}
	tpl.QuestionCount = len(questionIDs)

	return tpl
}

// AttachTemplateQuestion links questionID to templateID after any existing links.
func AttachTemplateQuestion(t *testing.T, pool *pgxpool.Pool, templateID, questionID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO template_questions (template_id, question_id) VALUES ($1, $2)
		 ON CONFLICT (template_id, question_id) DO NOTHING`,
		templateID, questionID,
	)
	if err != nil {
		t.Fatalf("testhelper: AttachTemplateQuestion: %v", err)
	}
}

// SeedCollection inserts a collection without materializing any slots.
// templateID may be nil.
func SeedCollection(t *testing.T, pool *pgxpool.Pool, templateID *uuid.UUID) domain.Collection {
	t.Helper()

	c := domain.Collection{
		TemplateID:     templateID,
		LocationID:     uuid.New(),
		OrganisationID: uuid.New(),
		ActorID:        uuid.New(),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO collections (template_id, location_id, organisation_id, actor_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, doc_id, date, created_at, updated_at`,
		templateID, c.LocationID, c.OrganisationID, c.ActorID,
	).Scan(&c.ID, &c.DocID, &c.Date, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCollection: %v", err)
	}

	return c
}

// SeedSlot inserts a slot with an empty answer.
func SeedSlot(t *testing.T, pool *pgxpool.Pool, collectionID, questionID uuid.UUID, origin domain.SlotOrigin) domain.Slot {
	t.Helper()

	s := domain.Slot{CollectionID: collectionID, QuestionID: questionID, Origin: origin}
	var answer []byte
	err := pool.QueryRow(context.Background(),
		`INSERT INTO collection_question_slots (collection_id, question_id, origin)
		 VALUES ($1, $2, $3)
		 RETURNING id, answer, position, created_at, updated_at`,
		collectionID, questionID, string(origin),
	).Scan(&s.ID, &answer, &s.Position, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSlot: %v", err)
	}
	s.Answer = domain.Value(answer)

	return s
}

// CountSlots returns the number of slots of a collection.
func CountSlots(t *testing.T, pool *pgxpool.Pool, collectionID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM collection_question_slots WHERE collection_id = $1`,
		collectionID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountSlots: %v", err)
	}

	return n
}
