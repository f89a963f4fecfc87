package template

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/pkg/ctxutil"
)

// AttachQuestion appends a question to a template. Attaching a question that
// is already part of the template is a no-op. Collections that already exist
// are not affected.
func (s *Service) AttachQuestion(ctx context.Context, input QuestionLinkInput) error {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	var attached bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.templates.GetByID(txCtx, input.TemplateID); err != nil {
			return fmt.Errorf("get template: %w", err)
		}
		if _, err := s.questions.GetByID(txCtx, input.QuestionID); err != nil {
			return fmt.Errorf("get question: %w", err)
		}

		var attachErr error
		attached, attachErr = s.templates.AttachQuestion(txCtx, input.TemplateID, input.QuestionID)
		if attachErr != nil {
			return fmt.Errorf("attach question: %w", attachErr)
		}
		if !attached {
			return nil
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID,
			EntityType: domain.EntityTypeTemplate,
			EntityID:   &input.TemplateID,
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
		return err
	}

	if attached {
		s.log.InfoContext(ctx, "question attached to template",
			slog.String("actor_id", actorID.String()),
			slog.String("template_id", input.TemplateID.String()),
			slog.String("question_id", input.QuestionID.String()),
		)
	}

	return nil
}

// DetachQuestion removes a question from a template. Removing a question that
// is not part of the template is a no-op. Slots of existing collections stay.
func (s *Service) DetachQuestion(ctx context.Context, input QuestionLinkInput) error {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	var detached bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.templates.GetByID(txCtx, input.TemplateID); err != nil {
			return fmt.Errorf("get template: %w", err)
		}

		var detachErr error
		detached, detachErr = s.templates.DetachQuestion(txCtx, input.TemplateID, input.QuestionID)
		if detachErr != nil {
			return fmt.Errorf("detach question: %w", detachErr)
		}
		if !detached {
			return nil
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID,
			EntityType: domain.EntityTypeTemplate,
			EntityID:   &input.TemplateID,
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

	if detached {
		s.log.InfoContext(ctx, "question detached from template",
			slog.String("actor_id", actorID.String()),
			slog.String("template_id", input.TemplateID.String()),
			slog.String("question_id", input.QuestionID.String()),
		)
	}

	return nil
}

// ListTemplateQuestions returns the question links of a template in attachment order.
func (s *Service) ListTemplateQuestions(ctx context.Context, templateID uuid.UUID) ([]domain.TemplateQuestion, error) {
	if templateID == uuid.Nil {
		return nil, domain.NewValidationError("template_id", "required")
	}

	if _, err := s.templates.GetByID(ctx, templateID); err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}

	return s.templates.ListQuestions(ctx, templateID)
}
