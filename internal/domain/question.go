package domain

import (
	"time"

	"github.com/google/uuid"
)

// Question is a single prompt with an opaque answer-shape definition.
type Question struct {
	ID        uuid.UUID
	Text      string
	Model     Value
	Comments  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// QuestionTranslation is a localized variant of a question.
// At most one translation exists per (QuestionID, Language).
type QuestionTranslation struct {
	ID         uuid.UUID
	QuestionID uuid.UUID
	Language   string
	Text       string
	Model      Value
	Comments   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// QuestionUpdateParams describes a partial question update.
// A nil field is left unchanged; a pointer to an empty value clears it.
type QuestionUpdateParams struct {
	Text     *string
	Model    *Value
	Comments *string
}

// TranslationUpdateParams describes a partial translation update.
// The language of a translation is fixed once created.
type TranslationUpdateParams struct {
	Text     *string
	Model    *Value
	Comments *string
}
