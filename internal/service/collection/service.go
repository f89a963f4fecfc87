package collection

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/config"
	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

type collectionRepo interface {
	Create(ctx context.Context, c domain.Collection) (*domain.Collection, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CollectionUpdateParams) (*domain.Collection, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	List(ctx context.Context, limit, offset int) ([]domain.Collection, error)
	Count(ctx context.Context) (int, error)
}

type slotRepo interface {
	Attach(ctx context.Context, collectionID, questionID uuid.UUID) (*domain.Slot, error)
	Detach(ctx context.Context, collectionID, questionID uuid.UUID) error
}

type questionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
}

type templateRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Template, error)
}

type materializer interface {
	Materialize(ctx context.Context, c *domain.Collection) (domain.MaterializeResult, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type metricsRecorder interface {
	IncrementCollectionsCreated()
	AddSlotsCreated(origin string, n int)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const MaxCommentsLength = 2000

// Service manages collections and their ad-hoc question slots.
type Service struct {
	collections  collectionRepo
	slots        slotRepo
	questions    questionRepo
	templates    templateRepo
	materializer materializer
	audit        auditRepo
	metrics      metricsRecorder
	tx           txManager
	cfg          config.CollectionConfig
	log          *slog.Logger
}

// NewService creates a new Collection service.
func NewService(
	log *slog.Logger,
	collections collectionRepo,
	slots slotRepo,
	questions questionRepo,
	templates templateRepo,
	materializer materializer,
	audit auditRepo,
	metrics metricsRecorder,
	tx txManager,
	cfg config.CollectionConfig,
) *Service {
	return &Service{
		collections:  collections,
		slots:        slots,
		questions:    questions,
		templates:    templates,
		materializer: materializer,
		audit:        audit,
		metrics:      metrics,
		tx:           tx,
		cfg:          cfg,
		log:          log.With("service", "collection"),
	}
}

// CreateResult holds a new collection and the outcome of its materialization.
type CreateResult struct {
	Collection *domain.Collection
	Slots      domain.MaterializeResult
}

// ListResult holds one page of collections and the total count.
type ListResult struct {
	Items []domain.Collection
	Total int
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

func uuidOrNil(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}
