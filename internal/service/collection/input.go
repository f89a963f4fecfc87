package collection

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

// CreateCollectionInput holds the parameters for creating a collection.
type CreateCollectionInput struct {
	TemplateID     *uuid.UUID // nil = ad-hoc collection without template
	Date           *time.Time // nil = now
	LocationID     uuid.UUID
	OrganisationID uuid.UUID
	ActorID        *uuid.UUID // nil = the calling actor
	Comments       *string
}

// Validate checks all fields and collects all errors.
func (i CreateCollectionInput) Validate() error {
	var errs []domain.FieldError

	if i.TemplateID != nil && *i.TemplateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "template_id", Message: "must be a valid id"})
	}
	if i.Date != nil && i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be a valid date"})
	}
	if i.LocationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "location_id", Message: "required"})
	}
	if i.OrganisationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "organisation_id", Message: "required"})
	}
	if i.ActorID != nil && *i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "must be a valid id"})
	}
	errs = validateComments(errs, i.Comments)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCollectionInput holds the parameters for updating a collection.
// TemplateID is accepted only when it matches the stored template.
type UpdateCollectionInput struct {
	CollectionID   uuid.UUID
	TemplateID     *uuid.UUID
	Date           *time.Time
	LocationID     *uuid.UUID
	OrganisationID *uuid.UUID
	ActorID        *uuid.UUID
	Comments       *string // nil = don't change; ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateCollectionInput) Validate() error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	if i.TemplateID == nil && i.Date == nil && i.LocationID == nil &&
		i.OrganisationID == nil && i.ActorID == nil && i.Comments == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Date != nil && i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be a valid date"})
	}
	if i.LocationID != nil && *i.LocationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "location_id", Message: "required"})
	}
	if i.OrganisationID != nil && *i.OrganisationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "organisation_id", Message: "required"})
	}
	if i.ActorID != nil && *i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	errs = validateComments(errs, i.Comments)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListCollectionsInput holds paging parameters. A zero Limit selects the default page size.
type ListCollectionsInput struct {
	Limit  int
	Offset int
}

// SlotInput identifies a question within a collection.
type SlotInput struct {
	CollectionID uuid.UUID
	QuestionID   uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i SlotInput) Validate() error {
	var errs []domain.FieldError
	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateComments(errs []domain.FieldError, comments *string) []domain.FieldError {
	if comments != nil && utf8.RuneCountInString(strings.TrimSpace(*comments)) > MaxCommentsLength {
		return append(errs, domain.FieldError{Field: "comments", Message: "max 2000 characters"})
	}
	return errs
}
