package template

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

type templateRepo interface {
	Create(ctx context.Context, t domain.Template) (*domain.Template, error)
	Update(ctx context.Context, id uuid.UUID, params domain.TemplateUpdateParams) (*domain.Template, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	List(ctx context.Context, publicOnly bool) ([]domain.Template, error)

	// M2M: template <-> question
	AttachQuestion(ctx context.Context, templateID, questionID uuid.UUID) (bool, error)
	DetachQuestion(ctx context.Context, templateID, questionID uuid.UUID) (bool, error)
	ListQuestions(ctx context.Context, templateID uuid.UUID) ([]domain.TemplateQuestion, error)
}

type questionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxNameLength     = 200
	MaxCommentsLength = 2000
)

// Service manages templates and the ordered set of questions they bundle.
type Service struct {
	templates templateRepo
	questions questionRepo
	audit     auditLogger
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Template service.
func NewService(
	log *slog.Logger,
	templates templateRepo,
	questions questionRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		templates: templates,
		questions: questions,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "template"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func ptr[T any](v T) *T {
	return &v
}
