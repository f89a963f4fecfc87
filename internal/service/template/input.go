package template

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

// CreateTemplateInput holds the parameters for creating a template.
type CreateTemplateInput struct {
	Name     string
	Public   bool
	Comments *string
}

// Validate checks all fields and collects all errors.
func (i CreateTemplateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if i.Comments != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Comments)) > MaxCommentsLength {
		errs = append(errs, domain.FieldError{Field: "comments", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTemplateInput holds the parameters for updating a template.
type UpdateTemplateInput struct {
	TemplateID uuid.UUID
	Name       *string
	Public     *bool
	Comments   *string // nil = don't change; ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateTemplateInput) Validate() error {
	var errs []domain.FieldError

	if i.TemplateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "template_id", Message: "required"})
	}
	if i.Name == nil && i.Public == nil && i.Comments == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if utf8.RuneCountInString(name) > MaxNameLength {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
		}
	}
	if i.Comments != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Comments)) > MaxCommentsLength {
		errs = append(errs, domain.FieldError{Field: "comments", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// QuestionLinkInput identifies a question within a template.
type QuestionLinkInput struct {
	TemplateID uuid.UUID
	QuestionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i QuestionLinkInput) Validate() error {
	var errs []domain.FieldError
	if i.TemplateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "template_id", Message: "required"})
	}
	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
