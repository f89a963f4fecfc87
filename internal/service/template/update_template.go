package template

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/pkg/ctxutil"
)

// UpdateTemplate renames a template, toggles its visibility or edits its comments.
func (s *Service) UpdateTemplate(ctx context.Context, input UpdateTemplateInput) (*domain.Template, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.TemplateUpdateParams{Public: input.Public}
	if input.Name != nil {
		params.Name = ptr(strings.TrimSpace(*input.Name))
	}
	if input.Comments != nil {
		params.Comments = ptr(strings.TrimSpace(*input.Comments))
	}

	var updated *domain.Template
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.templates.GetByID(txCtx, input.TemplateID)
		if getErr != nil {
			return fmt.Errorf("get template: %w", getErr)
		}

		var updateErr error
		updated, updateErr = s.templates.Update(txCtx, input.TemplateID, params)
		if updateErr != nil {
			return fmt.Errorf("update template: %w", updateErr)
		}

		changes := buildTemplateChanges(old, updated)
		if len(changes) > 0 {
			if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
				ActorID:    actorID,
				EntityType: domain.EntityTypeTemplate,
				EntityID:   &input.TemplateID,
				Action:     domain.AuditActionUpdate,
				Changes:    changes,
			}); auditErr != nil {
				return fmt.Errorf("audit log: %w", auditErr)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "template updated",
		slog.String("actor_id", actorID.String()),
		slog.String("template_id", input.TemplateID.String()),
	)

	return updated, nil
}

// buildTemplateChanges returns only changed fields for audit.
func buildTemplateChanges(old, updated *domain.Template) map[string]any {
	changes := make(map[string]any)
	if old.Name != updated.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": updated.Name}
	}
	if old.Public != updated.Public {
		changes["public"] = map[string]any{"old": old.Public, "new": updated.Public}
	}
	oldComments, newComments := "", ""
	if old.Comments != nil {
		oldComments = *old.Comments
	}
	if updated.Comments != nil {
		newComments = *updated.Comments
	}
	if oldComments != newComments {
		changes["comments"] = map[string]any{"old": old.Comments, "new": updated.Comments}
	}
	return changes
}
