package question

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

// CreateQuestionInput holds the parameters for creating a question.
type CreateQuestionInput struct {
	Text     string
	Model    json.RawMessage // optional answer-shape definition
	Comments *string
}

// Validate checks all fields and collects all errors.
func (i CreateQuestionInput) Validate() error {
	var errs []domain.FieldError
	errs = validateText(errs, "text", &i.Text)
	errs = validateModel(errs, i.Model)
	errs = validateComments(errs, i.Comments)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateQuestionInput holds the parameters for updating a question.
type UpdateQuestionInput struct {
	QuestionID uuid.UUID
	Text       *string
	Model      json.RawMessage // nil = don't change; `null` = clear
	Comments   *string         // nil = don't change; ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateQuestionInput) Validate() error {
	var errs []domain.FieldError

	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if i.Text == nil && i.Model == nil && i.Comments == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Text != nil {
		errs = validateText(errs, "text", i.Text)
	}
	errs = validateModel(errs, i.Model)
	errs = validateComments(errs, i.Comments)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateTranslationInput holds the parameters for adding a translation to a question.
type CreateTranslationInput struct {
	QuestionID uuid.UUID
	Language   string
	Text       string
	Model      json.RawMessage
	Comments   *string
}

// Validate checks all fields and collects all errors.
// The language code itself is checked against the registry by the service.
func (i CreateTranslationInput) Validate() error {
	var errs []domain.FieldError

	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if strings.TrimSpace(i.Language) == "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	}
	errs = validateText(errs, "text", &i.Text)
	errs = validateModel(errs, i.Model)
	errs = validateComments(errs, i.Comments)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTranslationInput holds the parameters for updating a translation.
type UpdateTranslationInput struct {
	TranslationID uuid.UUID
	Text          *string
	Model         json.RawMessage
	Comments      *string
}

// Validate checks all fields and collects all errors.
func (i UpdateTranslationInput) Validate() error {
	var errs []domain.FieldError

	if i.TranslationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "translation_id", Message: "required"})
	}
	if i.Text == nil && i.Model == nil && i.Comments == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Text != nil {
		errs = validateText(errs, "text", i.Text)
	}
	errs = validateModel(errs, i.Model)
	errs = validateComments(errs, i.Comments)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateText(errs []domain.FieldError, field string, text *string) []domain.FieldError {
	trimmed := strings.TrimSpace(*text)
	if trimmed == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(trimmed) > MaxTextLength {
		return append(errs, domain.FieldError{Field: field, Message: "max 2000 characters"})
	}
	return errs
}

func validateModel(errs []domain.FieldError, raw json.RawMessage) []domain.FieldError {
	if raw == nil {
		return errs
	}
	if _, err := domain.ParseValue(raw); err != nil {
		return append(errs, domain.FieldError{Field: "model", Message: "must be well-formed JSON"})
	}
	return errs
}

func validateComments(errs []domain.FieldError, comments *string) []domain.FieldError {
	if comments != nil && utf8.RuneCountInString(strings.TrimSpace(*comments)) > MaxCommentsLength {
		return append(errs, domain.FieldError{Field: "comments", Message: "max 2000 characters"})
	}
	return errs
}

// parseModel returns the canonical form of an already validated model.
func parseModel(raw json.RawMessage) domain.Value {
	v, _ := domain.ParseValue(raw)
	return v
}
