package materializer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/pkg/ctxutil"
)

// Materialize creates one TEMPLATE slot per template question the collection
// does not have yet, in template order. It must run inside the caller's
// transaction; a collection without a template yields a zero result.
// Slot metrics are left to the caller, which knows when the transaction commits.
func (s *Service) Materialize(ctx context.Context, c *domain.Collection) (domain.MaterializeResult, error) {
	if !c.HasTemplate() {
		return domain.MaterializeResult{}, nil
	}

	start := time.Now()
	expected, created, err := s.slots.Materialize(ctx, c.ID, *c.TemplateID)
	if err != nil {
		return domain.MaterializeResult{}, fmt.Errorf("materialize slots: %w", err)
	}
	s.metrics.ObserveMaterialize(start)

	result := domain.MaterializeResult{Expected: expected, Created: created}
	if result.Skipped() > 0 {
		s.log.DebugContext(ctx, "materialization skipped existing slots",
			slog.String("collection_id", c.ID.String()),
			slog.Int("expected", result.Expected),
			slog.Int("created", result.Created),
		)
	}

	return result, nil
}

// Rematerialize re-runs materialization for an existing collection in its own
// transaction. Questions attached to the template after the collection was
// created get a slot; existing slots and answers are never touched.
func (s *Service) Rematerialize(ctx context.Context, collectionID uuid.UUID) (domain.MaterializeResult, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.MaterializeResult{}, domain.ErrUnauthorized
	}

	if collectionID == uuid.Nil {
		return domain.MaterializeResult{}, domain.NewValidationError("collection_id", "required")
	}

	var result domain.MaterializeResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, getErr := s.collections.GetByID(txCtx, collectionID)
		if getErr != nil {
			return fmt.Errorf("get collection: %w", getErr)
		}

		var matErr error
		result, matErr = s.Materialize(txCtx, c)
		if matErr != nil {
			return matErr
		}
		if result.Created == 0 {
			return nil
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID,
			EntityType: domain.EntityTypeCollection,
			EntityID:   &collectionID,
			Action:     domain.AuditActionMaterialize,
			Changes: map[string]any{
				"template_id":   map[string]any{"new": c.TemplateID.String()},
				"slots_created": map[string]any{"new": result.Created},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return domain.MaterializeResult{}, err
	}

	s.metrics.AddSlotsCreated(domain.SlotOriginTemplate.String(), result.Created)

	s.log.InfoContext(ctx, "collection rematerialized",
		slog.String("actor_id", actorID.String()),
		slog.String("collection_id", collectionID.String()),
		slog.Int("expected", result.Expected),
		slog.Int("created", result.Created),
	)

	return result, nil
}
