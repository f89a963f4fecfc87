package answer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

// GetQuestions returns every question of a collection with its current answer:
// the union of slots created from the template and slots attached later.
// The order follows slot creation and is stable across calls.
func (s *Service) GetQuestions(ctx context.Context, collectionID uuid.UUID) ([]domain.SlotAnswer, error) {
	slots, err := s.listSlots(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.SlotAnswer, 0, len(slots))
	seen := make(map[uuid.UUID]struct{}, len(slots))
	for _, sl := range slots {
		if _, dup := seen[sl.QuestionID]; dup {
			continue
		}
		seen[sl.QuestionID] = struct{}{}

		answer := sl.Answer
		if answer.IsZero() {
			answer = domain.EmptyObject()
		}
		result = append(result, domain.SlotAnswer{
			QuestionID: sl.QuestionID,
			Answer:     answer,
			Origin:     sl.Origin,
		})
	}

	return result, nil
}

// GetAnswerSurface returns the descriptor the client-side answer widget is
// bootstrapped with.
func (s *Service) GetAnswerSurface(ctx context.Context, collectionID uuid.UUID) (*domain.AnswerSurface, error) {
	answers, err := s.GetQuestions(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(answers))
	for i, a := range answers {
		ids[i] = a.QuestionID
	}

	return &domain.AnswerSurface{
		WidgetID:     domain.AnswerWidgetID,
		CollectionID: collectionID,
		QuestionIDs:  ids,
	}, nil
}

func (s *Service) listSlots(ctx context.Context, collectionID uuid.UUID) ([]domain.Slot, error) {
	if collectionID == uuid.Nil {
		return nil, domain.NewValidationError("collection_id", "required")
	}

	if _, err := s.collections.GetByID(ctx, collectionID); err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}

	slots, err := s.slots.ListByCollection(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return slots, nil
}
