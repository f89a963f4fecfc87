package template

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/pkg/ctxutil"
)

// CreateTemplate registers a new, initially empty template.
func (s *Service) CreateTemplate(ctx context.Context, input CreateTemplateInput) (*domain.Template, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	var tmpl *domain.Template
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		tmpl, createErr = s.templates.Create(txCtx, domain.Template{
			Name:     name,
			Public:   input.Public,
			Comments: trimOrNil(input.Comments),
		})
		if createErr != nil {
			return fmt.Errorf("create template: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID,
			EntityType: domain.EntityTypeTemplate,
			EntityID:   &tmpl.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":   map[string]any{"new": name},
				"public": map[string]any{"new": input.Public},
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

	s.log.InfoContext(ctx, "template created",
		slog.String("actor_id", actorID.String()),
		slog.String("template_id", tmpl.ID.String()),
		slog.String("name", name),
	)

	return tmpl, nil
}
