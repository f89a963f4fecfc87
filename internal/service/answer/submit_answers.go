package answer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/pkg/ctxutil"
)

// SubmitAnswers overwrites the answers of existing slots and returns how many
// were written. The submission is all-or-nothing: if any question has no slot
// in the collection, a NotFoundError naming that question is returned and no
// answer is changed. Submitting never creates slots.
func (s *Service) SubmitAnswers(ctx context.Context, input SubmitAnswersInput) (int, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return 0, err
	}

	ids := sortedKeys(input.Answers)
	answers := make(map[uuid.UUID]domain.Value, len(ids))
	for _, qid := range ids {
		v, _ := domain.ParseValue(input.Answers[qid])
		answers[qid] = v
	}

	var written int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.collections.GetByID(txCtx, input.CollectionID); err != nil {
			return fmt.Errorf("get collection: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}

		found, err := s.slots.LockQuestionIDs(txCtx, input.CollectionID, ids)
		if err != nil {
			return fmt.Errorf("lock slots: %w", err)
		}
		if missing, ok := firstMissing(ids, found); ok {
			return domain.NewNotFoundError(domain.EntityTypeQuestion, missing)
		}

		written, err = s.slots.SetAnswers(txCtx, input.CollectionID, answers)
		if err != nil {
			return fmt.Errorf("set answers: %w", err)
		}

		questionIDs := make([]string, len(ids))
		for i, id := range ids {
			questionIDs[i] = id.String()
		}
		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID,
			EntityType: domain.EntityTypeCollection,
			EntityID:   &input.CollectionID,
			Action:     domain.AuditActionAnswer,
			Changes: map[string]any{
				"question_ids": map[string]any{"new": questionIDs},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	s.metrics.AddAnswersSubmitted(written)

	s.log.InfoContext(ctx, "answers submitted",
		slog.String("actor_id", actorID.String()),
		slog.String("collection_id", input.CollectionID.String()),
		slog.Int("count", written),
	)

	return written, nil
}

// firstMissing returns the first id of want, in want's order, that is not in found.
func firstMissing(want, found []uuid.UUID) (uuid.UUID, bool) {
	have := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		have[id] = struct{}{}
	}
	for _, id := range want {
		if _, ok := have[id]; !ok {
			return id, true
		}
	}
	return uuid.Nil, false
}

// sortedKeys returns the question ids of a submission in a stable order.
func sortedKeys(m map[uuid.UUID]json.RawMessage) []uuid.UUID {
	keys := make([]uuid.UUID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})
	return keys
}
