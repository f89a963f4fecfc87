package question

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/pkg/ctxutil"
)

// UpdateQuestion applies a partial update to a question.
// Existing collection slots are not affected.
func (s *Service) UpdateQuestion(ctx context.Context, input UpdateQuestionInput) (*domain.Question, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.QuestionUpdateParams{Comments: clearable(input.Comments)}
	if input.Text != nil {
		params.Text = ptr(strings.TrimSpace(*input.Text))
	}
	if input.Model != nil {
		model := parseModel(input.Model)
		params.Model = &model
	}

	var updated *domain.Question
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.questions.GetByID(txCtx, input.QuestionID)
		if getErr != nil {
			return fmt.Errorf("get question: %w", getErr)
		}

		var updateErr error
		updated, updateErr = s.questions.Update(txCtx, input.QuestionID, params)
		if updateErr != nil {
			return fmt.Errorf("update question: %w", updateErr)
		}

		changes := buildQuestionChanges(old, updated)
		if len(changes) > 0 {
			if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
				ActorID:    actorID,
				EntityType: domain.EntityTypeQuestion,
				EntityID:   &input.QuestionID,
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

	s.log.InfoContext(ctx, "question updated",
		slog.String("actor_id", actorID.String()),
		slog.String("question_id", input.QuestionID.String()),
	)

	return updated, nil
}

// buildQuestionChanges returns only changed fields for audit.
func buildQuestionChanges(old, updated *domain.Question) map[string]any {
	changes := make(map[string]any)
	if old.Text != updated.Text {
		changes["text"] = map[string]any{"old": old.Text, "new": updated.Text}
	}
	if !old.Model.Equal(updated.Model) {
		changes["model"] = map[string]any{"old": old.Model.String(), "new": updated.Model.String()}
	}
	if deref(old.Comments) != deref(updated.Comments) {
		changes["comments"] = map[string]any{"old": old.Comments, "new": updated.Comments}
	}
	return changes
}
