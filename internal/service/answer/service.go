// Package answer serves the answer view of a collection and accepts answer
// submissions. Answers are only ever written into slots that already exist.
package answer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/config"
	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

type slotRepo interface {
	ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]domain.Slot, error)
	LockQuestionIDs(ctx context.Context, collectionID uuid.UUID, questionIDs []uuid.UUID) ([]uuid.UUID, error)
	SetAnswers(ctx context.Context, collectionID uuid.UUID, answers map[uuid.UUID]domain.Value) (int, error)
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
	AddAnswersSubmitted(n int)
}

// Service aggregates and updates the answers of a collection.
type Service struct {
	slots       slotRepo
	collections collectionRepo
	audit       auditLogger
	tx          txManager
	metrics     metricsRecorder
	cfg         config.CollectionConfig
	log         *slog.Logger
}

// NewService creates a new Answer service.
func NewService(
	log *slog.Logger,
	slots slotRepo,
	collections collectionRepo,
	audit auditLogger,
	tx txManager,
	metrics metricsRecorder,
	cfg config.CollectionConfig,
) *Service {
	return &Service{
		slots:       slots,
		collections: collections,
		audit:       audit,
		tx:          tx,
		metrics:     metrics,
		cfg:         cfg,
		log:         log.With("service", "answer"),
	}
}
