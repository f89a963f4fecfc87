package collection

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/pkg/ctxutil"
)

// CreateCollection creates a collection and, when it is based on a template,
// materializes one slot per template question in the same transaction.
// Either both succeed or nothing is stored.
func (s *Service) CreateCollection(ctx context.Context, input CreateCollectionInput) (*CreateResult, error) {
	callerID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	actorID := callerID
	if input.ActorID != nil {
		actorID = *input.ActorID
	}
	date := time.Now().UTC()
	if input.Date != nil {
		date = input.Date.UTC()
	}

	var (
		created *domain.Collection
		result  domain.MaterializeResult
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.TemplateID != nil {
			if _, getErr := s.templates.GetByID(txCtx, *input.TemplateID); getErr != nil {
				return fmt.Errorf("get template: %w", getErr)
			}
		}

		var createErr error
		created, createErr = s.collections.Create(txCtx, domain.Collection{
			TemplateID:     input.TemplateID,
			Date:           date,
			LocationID:     input.LocationID,
			OrganisationID: input.OrganisationID,
			ActorID:        actorID,
			Comments:       trimOrNil(input.Comments),
		})
		if createErr != nil {
			return fmt.Errorf("create collection: %w", createErr)
		}

		var matErr error
		result, matErr = s.materializer.Materialize(txCtx, created)
		if matErr != nil {
			return matErr
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    callerID,
			EntityType: domain.EntityTypeCollection,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"template_id":   map[string]any{"new": uuidOrNil(input.TemplateID)},
				"actor_id":      map[string]any{"new": actorID.String()},
				"slots_created": map[string]any{"new": result.Created},
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

	s.metrics.IncrementCollectionsCreated()
	s.metrics.AddSlotsCreated(domain.SlotOriginTemplate.String(), result.Created)

	s.log.InfoContext(ctx, "collection created",
		slog.String("actor_id", callerID.String()),
		slog.String("collection_id", created.ID.String()),
		slog.Int("slots_created", result.Created),
	)

	return &CreateResult{Collection: created, Slots: result}, nil
}
