package collection

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/pkg/ctxutil"
)

// UpdateCollection applies a partial update to a collection. The template of a
// collection is fixed at creation: a TemplateID different from the stored one
// is a validation error. Slots are never touched.
func (s *Service) UpdateCollection(ctx context.Context, input UpdateCollectionInput) (*domain.Collection, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CollectionUpdateParams{
		LocationID:     input.LocationID,
		OrganisationID: input.OrganisationID,
		ActorID:        input.ActorID,
	}
	if input.Date != nil {
		d := input.Date.UTC()
		params.Date = &d
	}
	if input.Comments != nil {
		trimmed := strings.TrimSpace(*input.Comments)
		params.Comments = &trimmed
	}

	var updated *domain.Collection
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.collections.GetByID(txCtx, input.CollectionID)
		if getErr != nil {
			return fmt.Errorf("get collection: %w", getErr)
		}

		if input.TemplateID != nil && !sameTemplate(old.TemplateID, input.TemplateID) {
			return domain.NewValidationError("template_id", "cannot be changed after creation")
		}
		if params == (domain.CollectionUpdateParams{}) {
			updated = old
			return nil
		}

		var updateErr error
		updated, updateErr = s.collections.Update(txCtx, input.CollectionID, params)
		if updateErr != nil {
			return fmt.Errorf("update collection: %w", updateErr)
		}

		changes := buildCollectionChanges(old, updated)
		if len(changes) > 0 {
			if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
				ActorID:    actorID,
				EntityType: domain.EntityTypeCollection,
				EntityID:   &input.CollectionID,
				Action:     domain.AuditActionUpdate,
				Changes:    changes,
			}); auditErr != nil {
				return fmt.Errorf("audit log: %w", auditErr)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "collection updated",
		slog.String("actor_id", actorID.String()),
		slog.String("collection_id", input.CollectionID.String()),
	)

	return updated, nil
}

func sameTemplate(stored, requested *uuid.UUID) bool {
	if stored == nil {
		return *requested == uuid.Nil
	}
	return *stored == *requested
}

// buildCollectionChanges returns only changed fields for audit.
func buildCollectionChanges(old, updated *domain.Collection) map[string]any {
	changes := make(map[string]any)
	if !old.Date.Equal(updated.Date) {
		changes["date"] = map[string]any{"old": old.Date.Format(time.RFC3339), "new": updated.Date.Format(time.RFC3339)}
	}
	if old.LocationID != updated.LocationID {
		changes["location_id"] = map[string]any{"old": old.LocationID.String(), "new": updated.LocationID.String()}
	}
	if old.OrganisationID != updated.OrganisationID {
		changes["organisation_id"] = map[string]any{"old": old.OrganisationID.String(), "new": updated.OrganisationID.String()}
	}
	if old.ActorID != updated.ActorID {
		changes["actor_id"] = map[string]any{"old": old.ActorID.String(), "new": updated.ActorID.String()}
	}
	oldComments, newComments := "", ""
	if old.Comments != nil {
		oldComments = *old.Comments
	}
	if updated.Comments != nil {
		newComments = *updated.Comments
	}
	if oldComments != newComments {
		changes["comments"] = map[string]any{"old": old.Comments, "new": updated.Comments}
	}
	return changes
}
