package question

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

type questionRepo interface {
	Create(ctx context.Context, q domain.Question) (*domain.Question, error)
	Update(ctx context.Context, id uuid.UUID, params domain.QuestionUpdateParams) (*domain.Question, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
}

type translationRepo interface {
	Create(ctx context.Context, tr domain.QuestionTranslation) (*domain.QuestionTranslation, error)
	Update(ctx context.Context, id uuid.UUID, params domain.TranslationUpdateParams) (*domain.QuestionTranslation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.QuestionTranslation, error)
	ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]domain.QuestionTranslation, error)
}

type languageRegistry interface {
	Normalize(code string) (string, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxTextLength     = 2000
	MaxCommentsLength = 2000
)

// Service manages the question catalog: questions and their translations.
type Service struct {
	questions    questionRepo
	translations translationRepo
	languages    languageRegistry
	audit        auditLogger
	tx           txManager
	log          *slog.Logger
}

// NewService creates a new Question service.
func NewService(
	log *slog.Logger,
	questions questionRepo,
	translations translationRepo,
	languages languageRegistry,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		questions:    questions,
		translations: translations,
		languages:    languages,
		audit:        audit,
		tx:           tx,
		log:          log.With("service", "question"),
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

// clearable trims a partial-update string. An empty result clears the field.
func clearable(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

func ptr(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
