package template

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

// GetTemplate returns a template with its question count.
func (s *Service) GetTemplate(ctx context.Context, templateID uuid.UUID) (*domain.Template, error) {
	if templateID == uuid.Nil {
		return nil, domain.NewValidationError("template_id", "required")
	}
	return s.templates.GetByID(ctx, templateID)
}

// ListTemplates returns templates ordered by name. With publicOnly set,
// private templates are left out.
func (s *Service) ListTemplates(ctx context.Context, publicOnly bool) ([]domain.Template, error) {
	return s.templates.List(ctx, publicOnly)
}
