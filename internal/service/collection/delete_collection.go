package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/pkg/ctxutil"
)

// DeleteCollection removes a collection together with all of its slots.
func (s *Service) DeleteCollection(ctx context.Context, collectionID uuid.UUID) error {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if collectionID == uuid.Nil {
		return domain.NewValidationError("collection_id", "required")
	}

	c, err := s.collections.GetByID(ctx, collectionID)
	if err != nil {
		return fmt.Errorf("get collection: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.collections.Delete(txCtx, collectionID); deleteErr != nil {
			return fmt.Errorf("delete collection: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID,
			EntityType: domain.EntityTypeCollection,
			EntityID:   &collectionID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"doc_id":      map[string]any{"old": c.DocID.String()},
				"template_id": map[string]any{"old": uuidOrNil(c.TemplateID)},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "collection deleted",
		slog.String("actor_id", actorID.String()),
		slog.String("collection_id", collectionID.String()),
	)

	return nil
}
