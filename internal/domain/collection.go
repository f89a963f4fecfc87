package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnswerWidgetID is the DOM id the client-side answer widget binds to.
const AnswerWidgetID = "dc_answer_model"

// Collection is one instantiation of data gathering, optionally derived from a template.
// DocID is the generic attachment point for documents managed elsewhere.
type Collection struct {
	ID             uuid.UUID
	DocID          uuid.UUID
	TemplateID     *uuid.UUID
	Date           time.Time
	LocationID     uuid.UUID
	OrganisationID uuid.UUID
	ActorID        uuid.UUID
	Comments       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasTemplate reports whether the collection was created from a template.
func (c *Collection) HasTemplate() bool {
	return c.TemplateID != nil && *c.TemplateID != uuid.Nil
}

// CollectionUpdateParams describes a partial collection update.
// The template of a collection cannot be changed after creation.
type CollectionUpdateParams struct {
	Date           *time.Time
	LocationID     *uuid.UUID
	OrganisationID *uuid.UUID
	ActorID        *uuid.UUID
	Comments       *string
}

// Slot is the per-collection, per-question record holding the current answer.
// At most one slot exists per (CollectionID, QuestionID).
type Slot struct {
	ID           uuid.UUID
	CollectionID uuid.UUID
	QuestionID   uuid.UUID
	Answer       Value
	Origin       SlotOrigin
	Position     int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SlotAnswer is one element of the aggregated answer view of a collection.
type SlotAnswer struct {
	QuestionID uuid.UUID
	Answer     Value
	Origin     SlotOrigin
}

// AnswerSurface is the request descriptor for the client-side answer widget.
type AnswerSurface struct {
	WidgetID     string
	CollectionID uuid.UUID
	QuestionIDs  []uuid.UUID
}

// MaterializeResult reports how many template questions a materialization
// covered and how many slots it actually created.
type MaterializeResult struct {
	Expected int
	Created  int
}

// Skipped returns the number of template questions that already had a slot.
func (r MaterializeResult) Skipped() int {
	return r.Expected - r.Created
}
