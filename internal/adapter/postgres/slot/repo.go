// Package slot implements the collection question slot repository using PostgreSQL.
// A slot holds the answer of one question within one collection; the pair
// (collection_id, question_id) is unique.
package slot

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/datacollect-backend/internal/adapter/postgres"
	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

const (
	table          = "collection_question_slots"
	slotConstraint = "uq_collection_question_slots"
)

var columns = []string{
	"id", "collection_id", "question_id", "answer", "origin", "position", "created_at", "updated_at",
}

// Repo provides slot persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new slot repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

// materializeSQL copies the template questions of $2 into slots of
// collection $1 in attachment order. Existing slots are left untouched.
// It returns the number of template questions and the number of slots created.
const materializeSQL = `
WITH tq AS (
    SELECT question_id, position
    FROM template_questions
    WHERE template_id = $2
), ins AS (
    INSERT INTO collection_question_slots (collection_id, question_id, origin)
    SELECT $1, tq.question_id, 'TEMPLATE'
    FROM tq
    ORDER BY tq.position
    ON CONFLICT (collection_id, question_id) DO NOTHING
    RETURNING 1
)
SELECT (SELECT count(*) FROM tq), (SELECT count(*) FROM ins)`

// setAnswersSQL writes answers for existing slots only.
const setAnswersSQL = `
UPDATE collection_question_slots s
SET answer = v.answer::jsonb, updated_at = now()
FROM unnest($2::uuid[], $3::text[]) AS v(question_id, answer)
WHERE s.collection_id = $1 AND s.question_id = v.question_id`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Materialize creates one TEMPLATE slot per question of templateID that the
// collection does not have yet, in a single statement.
func (r *Repo) Materialize(ctx context.Context, collectionID, templateID uuid.UUID) (expected, created int, err error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, materializeSQL, collectionID, templateID)
	if err := row.Scan(&expected, &created); err != nil {
		return 0, 0, postgres.MapError(err, domain.EntityTypeCollection, collectionID)
	}
	return expected, created, nil
}

// Attach creates an ATTACHED slot. A slot that already exists for the
// question is a domain.ErrConflict.
func (r *Repo) Attach(ctx context.Context, collectionID, questionID uuid.UUID) (*domain.Slot, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("collection_id", "question_id", "origin").
		Values(collectionID, questionID, string(domain.SlotOriginAttached)).
		Suffix("RETURNING id, collection_id, question_id, answer, origin, position, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build attach slot: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)
	s, err := scanSlot(row)
	if err != nil {
		if postgres.IsUniqueViolation(err, slotConstraint) {
			return nil, fmt.Errorf("collection %s question %s: %w", collectionID, questionID, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, domain.EntityTypeQuestion, questionID)
	}
	return s, nil
}

// Detach removes the slot of a question. A missing slot is a NotFoundError
// naming the question.
func (r *Repo) Detach(ctx context.Context, collectionID, questionID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"collection_id": collectionID, "question_id": questionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build detach slot: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapDeleteError(err, domain.EntityTypeSlot, questionID)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityTypeSlot, questionID)
	}
	return nil
}

// SetAnswers overwrites the answers of existing slots and returns how many
// were updated. It never creates slots.
func (r *Repo) SetAnswers(ctx context.Context, collectionID uuid.UUID, answers map[uuid.UUID]domain.Value) (int, error) {
	if len(answers) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, 0, len(answers))
	values := make([]string, 0, len(answers))
	for id, v := range answers {
		if v.IsZero() {
			v = domain.EmptyObject()
		}
		ids = append(ids, id)
		values = append(values, string(v))
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, setAnswersSQL, collectionID, ids, values)
	if err != nil {
		return 0, postgres.MapError(err, domain.EntityTypeCollection, collectionID)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// LockQuestionIDs returns which of questionIDs have a slot in the collection
// and locks those slots until the end of the transaction.
func (r *Repo) LockQuestionIDs(ctx context.Context, collectionID uuid.UUID, questionIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(questionIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	sql, args, err := postgres.Builder().
		Select("question_id").
		From(table).
		Where(sq.Eq{"collection_id": collectionID}).
		Where("question_id = ANY(?::uuid[])", questionIDs).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lock slots: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("lock slots: %w", err)
	}

	found, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("lock slots: %w", err)
	}
	return found, nil
}

// ListByCollection returns every slot of a collection in insertion order.
func (r *Repo) ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]domain.Slot, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"collection_id": collectionID}).
		OrderBy("position", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list slots: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	result := []domain.Slot{}
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanSlot(row pgx.Row) (*domain.Slot, error) {
	var (
		s      domain.Slot
		answer []byte
		origin string
	)
	err := row.Scan(&s.ID, &s.CollectionID, &s.QuestionID, &answer, &origin, &s.Position, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Answer = domain.Value(answer)
	s.Origin = domain.SlotOrigin(origin)
	return &s, nil
}
