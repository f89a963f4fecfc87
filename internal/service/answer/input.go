package answer

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/config"
	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

// SubmitAnswersInput maps question ids to free-form answer payloads.
// A `null` payload resets the answer to the empty object.
type SubmitAnswersInput struct {
	CollectionID uuid.UUID
	Answers      map[uuid.UUID]json.RawMessage
}

// Validate checks all fields against the configured limits and collects all errors.
func (i SubmitAnswersInput) Validate(cfg config.CollectionConfig) error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	if len(i.Answers) > cfg.MaxAnswersPerSubmission {
		errs = append(errs, domain.FieldError{
			Field:   "answers",
			Message: fmt.Sprintf("max %d answers per submission", cfg.MaxAnswersPerSubmission),
		})
	}
	for _, qid := range sortedKeys(i.Answers) {
		payload := i.Answers[qid]
		field := "answers." + qid.String()
		switch {
		case qid == uuid.Nil:
			errs = append(errs, domain.FieldError{Field: field, Message: "invalid question id"})
		case len(payload) > cfg.MaxAnswerBytes:
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d bytes", cfg.MaxAnswerBytes)})
		default:
			if _, err := domain.ParseValue(payload); err != nil {
				errs = append(errs, domain.FieldError{Field: field, Message: "must be well-formed JSON"})
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
