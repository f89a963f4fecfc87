package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

type questionResponse struct {
	ID        uuid.UUID    `json:"id"`
	Text      string       `json:"text"`
	Model     domain.Value `json:"model"`
	Comments  *string      `json:"comments"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func toQuestionResponse(q *domain.Question) questionResponse {
	return questionResponse{
		ID:        q.ID,
		Text:      q.Text,
		Model:     q.Model,
		Comments:  q.Comments,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

type translationResponse struct {
	ID         uuid.UUID    `json:"id"`
	QuestionID uuid.UUID    `json:"question_id"`
	Language   string       `json:"language"`
	Text       string       `json:"text"`
	Model      domain.Value `json:"model"`
	Comments   *string      `json:"comments"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func toTranslationResponse(t *domain.QuestionTranslation) translationResponse {
	return translationResponse{
		ID:         t.ID,
		QuestionID: t.QuestionID,
		Language:   t.Language,
		Text:       t.Text,
		Model:      t.Model,
		Comments:   t.Comments,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

type templateResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Public        bool      `json:"public"`
	Comments      *string   `json:"comments"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toTemplateResponse(t *domain.Template) templateResponse {
	return templateResponse{
		ID:            t.ID,
		Name:          t.Name,
		Public:        t.Public,
		Comments:      t.Comments,
		QuestionCount: t.QuestionCount,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

type templateQuestionResponse struct {
	QuestionID uuid.UUID `json:"question_id"`
	Position   int64     `json:"position"`
	AttachedAt time.Time `json:"attached_at"`
}

type collectionResponse struct {
	ID             uuid.UUID  `json:"id"`
	DocID          uuid.UUID  `json:"doc_id"`
	TemplateID     *uuid.UUID `json:"template_id"`
	Date           time.Time  `json:"date"`
	LocationID     uuid.UUID  `json:"location_id"`
	OrganisationID uuid.UUID  `json:"organisation_id"`
	ActorID        uuid.UUID  `json:"actor_id"`
	Comments       *string    `json:"comments"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toCollectionResponse(c *domain.Collection) collectionResponse {
	return collectionResponse{
		ID:             c.ID,
		DocID:          c.DocID,
		TemplateID:     c.TemplateID,
		Date:           c.Date,
		LocationID:     c.LocationID,
		OrganisationID: c.OrganisationID,
		ActorID:        c.ActorID,
		Comments:       c.Comments,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

type materializeResponse struct {
	Expected int `json:"expected"`
	Created  int `json:"created"`
	Skipped  int `json:"skipped"`
}

func toMaterializeResponse(r domain.MaterializeResult) materializeResponse {
	return materializeResponse{Expected: r.Expected, Created: r.Created, Skipped: r.Skipped()}
}

type slotResponse struct {
	ID           uuid.UUID    `json:"id"`
	CollectionID uuid.UUID    `json:"collection_id"`
	QuestionID   uuid.UUID    `json:"question_id"`
	Answer       domain.Value `json:"answer"`
	Origin       string       `json:"origin"`
	Position     int64        `json:"position"`
}

func toSlotResponse(s *domain.Slot) slotResponse {
	return slotResponse{
		ID:           s.ID,
		CollectionID: s.CollectionID,
		QuestionID:   s.QuestionID,
		Answer:       s.Answer,
		Origin:       s.Origin.String(),
		Position:     s.Position,
	}
}

type slotAnswerResponse struct {
	QuestionID uuid.UUID    `json:"question_id"`
	Answer     domain.Value `json:"answer"`
	Origin     string       `json:"origin"`
}

type auditResponse struct {
	ID        uuid.UUID      `json:"id"`
	ActorID   uuid.UUID      `json:"actor_id"`
	Entity    string         `json:"entity_type"`
	EntityID  *uuid.UUID     `json:"entity_id"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes"`
	CreatedAt time.Time      `json:"created_at"`
}

func toAuditResponse(a *domain.AuditRecord) auditResponse {
	return auditResponse{
		ID:        a.ID,
		ActorID:   a.ActorID,
		Entity:    a.EntityType.String(),
		EntityID:  a.EntityID,
		Action:    a.Action.String(),
		Changes:   a.Changes,
		CreatedAt: a.CreatedAt,
	}
}

// listResponse wraps every collection-valued response.
type listResponse[T any] struct {
	Items []T `json:"items"`
}

func mapList[S, T any](src []S, fn func(*S) T) listResponse[T] {
	items := make([]T, len(src))
	for i := range src {
		items[i] = fn(&src[i])
	}
	return listResponse[T]{Items: items}
}
