package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/pkg/ctxutil"
)

// AttachQuestion adds an ad-hoc slot for a question that is not part of the
// collection's template. A question that already has a slot is domain.ErrConflict.
func (s *Service) AttachQuestion(ctx context.Context, input SlotInput) (*domain.Slot, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var slot *domain.Slot
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.collections.GetByID(txCtx, input.CollectionID); err != nil {
			return fmt.Errorf("get collection: %w", err)
		}
		if _, err := s.questions.GetByID(txCtx, input.QuestionID); err != nil {
			return fmt.Errorf("get question: %w", err)
		}

		var attachErr error
		slot, attachErr = s.slots.Attach(txCtx, input.CollectionID, input.QuestionID)
		if attachErr != nil {
			return fmt.Errorf("attach slot: %w", attachErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID,
			EntityType: domain.EntityTypeCollection,
			EntityID:   &input.CollectionID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"question_attached": map[string]any{"new": input.QuestionID.String()},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.AddSlotsCreated(domain.SlotOriginAttached.String(), 1)

	s.log.InfoContext(ctx, "question attached to collection",
		slog.String("actor_id", actorID.String()),
		slog.String("collection_id", input.CollectionID.String()),
		slog.String("question_id", input.QuestionID.String()),
	)

	return slot, nil
}

// DetachQuestion removes the slot of a question, including its answer.
// A question without a slot is a NotFoundError.
func (s *Service) DetachQuestion(ctx context.Context, input SlotInput) error {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.collections.GetByID(txCtx, input.CollectionID); err != nil {
			return fmt.Errorf("get collection: %w", err)
		}

		if detachErr := s.slots.Detach(txCtx, input.CollectionID, input.QuestionID); detachErr != nil {
			return fmt.Errorf("detach slot: %w", detachErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID,
			EntityType: domain.EntityTypeCollection,
			EntityID:   &input.CollectionID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"question_detached": map[string]any{"old": input.QuestionID.String()},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "question detached from collection",
		slog.String("actor_id", actorID.String()),
		slog.String("collection_id", input.CollectionID.String()),
		slog.String("question_id", input.QuestionID.String()),
	)

	return nil
}
