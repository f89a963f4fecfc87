package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/pkg/ctxutil"
)

// DeleteQuestion removes a question together with its translations and
// template links. A question that still has answer slots cannot be deleted.
func (s *Service) DeleteQuestion(ctx context.Context, questionID uuid.UUID) error {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if questionID == uuid.Nil {
		return domain.NewValidationError("question_id", "required")
	}

	q, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return fmt.Errorf("get question: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.questions.Delete(txCtx, questionID); deleteErr != nil {
			return fmt.Errorf("delete question: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID,
			EntityType: domain.EntityTypeQuestion,
			EntityID:   &questionID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"text": map[string]any{"old": q.Text},
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

	s.log.InfoContext(ctx, "question deleted",
		slog.String("actor_id", actorID.String()),
		slog.String("question_id", questionID.String()),
	)

	return nil
}
