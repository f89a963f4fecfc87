package domain

import (
	"time"

	"github.com/google/uuid"
)

// Template is a reusable named bundle of questions.
// Public only gates visibility in listings.
type Template struct {
	ID            uuid.UUID
	Name          string
	Public        bool
	Comments      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	QuestionCount int // computed field, not stored in DB
}

// TemplateQuestion links a question to a template. Position follows attachment order.
type TemplateQuestion struct {
	ID         uuid.UUID
	TemplateID uuid.UUID
	QuestionID uuid.UUID
	Position   int64
	CreatedAt  time.Time
}

// TemplateUpdateParams describes a partial template update.
type TemplateUpdateParams struct {
	Name     *string
	Public   *bool
	Comments *string
}
