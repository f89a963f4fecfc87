// Package materializer turns the questions of a template into answer slots of
// a collection. Materialization is idempotent: it only ever adds slots for
// template questions the collection does not have yet.
package materializer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

type slotRepo interface {
	Materialize(ctx context.Context, collectionID, templateID uuid.UUID) (expected, created int, err error)
}

type collectionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type metricsRecorder interface {
	ObserveMaterialize(start time.Time)
	AddSlotsCreated(origin string, n int)
}

// Service materializes template questions into collection slots.
type Service struct {
	slots       slotRepo
	collections collectionRepo
	audit       auditLogger
	tx          txManager
	metrics     metricsRecorder
	log         *slog.Logger
}

// NewService creates a new Materializer service.
func NewService(
	log *slog.Logger,
	slots slotRepo,
	collections collectionRepo,
	audit auditLogger,
	tx txManager,
	metrics metricsRecorder,
) *Service {
	return &Service{
		slots:       slots,
		collections: collections,
		audit:       audit,
		tx:          tx,
		metrics:     metrics,
		log:         log.With("service", "materializer"),
	}
}
