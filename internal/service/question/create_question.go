package question

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/pkg/ctxutil"
)

// CreateQuestion adds a question to the catalog.
func (s *Service) CreateQuestion(ctx context.Context, input CreateQuestionInput) (*domain.Question, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	model := parseModel(input.Model)

	var q *domain.Question
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		q, createErr = s.questions.Create(txCtx, domain.Question{
			Text:     text,
			Model:    model,
			Comments: trimOrNil(input.Comments),
		})
		if createErr != nil {
			return fmt.Errorf("create question: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID,
			EntityType: domain.EntityTypeQuestion,
			EntityID:   &q.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"text": map[string]any{"new": text},
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

	s.log.InfoContext(ctx, "question created",
		slog.String("actor_id", actorID.String()),
		slog.String("question_id", q.ID.String()),
	)

	return q, nil
}
