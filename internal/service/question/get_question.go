package question

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

// GetQuestion returns a question by ID.
func (s *Service) GetQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Question, error) {
	if questionID == uuid.Nil {
		return nil, domain.NewValidationError("question_id", "required")
	}
	return s.questions.GetByID(ctx, questionID)
}
