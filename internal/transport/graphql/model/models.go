// Package model holds the GraphQL input and payload types that have no
// domain counterpart, and the marshalers of the custom scalars.
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

type CreateQuestionInput struct {
	Text     string
	Model    json.RawMessage
	Comments *string
}

// UpdateQuestionInput mirrors the partial update semantics of the service:
// a nil Model or Comments means "don't change", `null` and "" clear.
type UpdateQuestionInput struct {
	Text     *string
	Model    json.RawMessage
	Comments *string
}

type CreateTranslationInput struct {
	QuestionID uuid.UUID
	Language   string
	Text       string
	Model      json.RawMessage
	Comments   *string
}

type UpdateTranslationInput struct {
	Text     *string
	Model    json.RawMessage
	Comments *string
}

type CreateTemplateInput struct {
	Name     string
	Public   *bool
	Comments *string
}

type UpdateTemplateInput struct {
	Name     *string
	Public   *bool
	Comments *string
}

type CreateCollectionInput struct {
	TemplateID     *uuid.UUID
	Date           *time.Time
	LocationID     uuid.UUID
	OrganisationID uuid.UUID
	ActorID        *uuid.UUID
	Comments       *string
}

type UpdateCollectionInput struct {
	TemplateID     *uuid.UUID
	Date           *time.Time
	LocationID     *uuid.UUID
	OrganisationID *uuid.UUID
	ActorID        *uuid.UUID
	Comments       *string
}

type AnswerInput struct {
	QuestionID uuid.UUID
	Answer     json.RawMessage
}

type CreateCollectionPayload struct {
	Collection      *domain.Collection
	Materialization domain.MaterializeResult
}

type CollectionPage struct {
	Items  []domain.Collection
	Total  int
	Limit  int
	Offset int
}

// SurfaceQuestion is a question of the answer surface, localized when a
// translation exists. Language is nil for the base text.
type SurfaceQuestion struct {
	ID       uuid.UUID
	Text     string
	Language *string
}

type AnswerSurface struct {
	WidgetID     string
	CollectionID uuid.UUID
	QuestionIDs  []uuid.UUID
	Questions    []SurfaceQuestion
}

type SubmitAnswersPayload struct {
	Updated int
}
