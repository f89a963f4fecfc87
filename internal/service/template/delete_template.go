package template

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/pkg/ctxutil"
)

// DeleteTemplate removes a template and its question links.
// Collections created from it and their slots are kept.
func (s *Service) DeleteTemplate(ctx context.Context, templateID uuid.UUID) error {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if templateID == uuid.Nil {
		return domain.NewValidationError("template_id", "required")
	}

	tmpl, err := s.templates.GetByID(ctx, templateID)
	if err != nil {
		return fmt.Errorf("get template: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.templates.Delete(txCtx, templateID); deleteErr != nil {
			return fmt.Errorf("delete template: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID,
			EntityType: domain.EntityTypeTemplate,
			EntityID:   &templateID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name":           map[string]any{"old": tmpl.Name},
				"question_count": map[string]any{"old": tmpl.QuestionCount},
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

	s.log.InfoContext(ctx, "template deleted",
		slog.String("actor_id", actorID.String()),
		slog.String("template_id", templateID.String()),
		slog.String("name", tmpl.Name),
	)

	return nil
}
