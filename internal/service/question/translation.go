package question

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/adapter/langcode"
	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/pkg/ctxutil"
)

// CreateTranslation adds a localized variant of a question. The language is
// stored in canonical form; a second translation for the same language is
// domain.ErrAlreadyExists.
func (s *Service) CreateTranslation(ctx context.Context, input CreateTranslationInput) (*domain.QuestionTranslation, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	lang, err := s.languages.Normalize(input.Language)
	if err != nil {
		if errors.Is(err, langcode.ErrUnknownLanguage) {
			return nil, domain.NewValidationError("language", "unknown language code")
		}
		return nil, fmt.Errorf("normalize language: %w", err)
	}

	text := strings.TrimSpace(input.Text)

	var tr *domain.QuestionTranslation
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, getErr := s.questions.GetByID(txCtx, input.QuestionID); getErr != nil {
			return fmt.Errorf("get question: %w", getErr)
		}

		var createErr error
		tr, createErr = s.translations.Create(txCtx, domain.QuestionTranslation{
			QuestionID: input.QuestionID,
			Language:   lang,
			Text:       text,
			Model:      parseModel(input.Model),
			Comments:   trimOrNil(input.Comments),
		})
		if createErr != nil {
			return fmt.Errorf("create translation: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID,
			EntityType: domain.EntityTypeTranslation,
			EntityID:   &tr.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"question_id": map[string]any{"new": input.QuestionID.String()},
				"language":    map[string]any{"new": lang},
				"text":        map[string]any{"new": text},
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

	s.log.InfoContext(ctx, "translation created",
		slog.String("actor_id", actorID.String()),
		slog.String("question_id", input.QuestionID.String()),
		slog.String("language", lang),
	)

	return tr, nil
}

// UpdateTranslation applies a partial update to a translation.
func (s *Service) UpdateTranslation(ctx context.Context, input UpdateTranslationInput) (*domain.QuestionTranslation, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.TranslationUpdateParams{Comments: clearable(input.Comments)}
	if input.Text != nil {
		params.Text = ptr(strings.TrimSpace(*input.Text))
	}
	if input.Model != nil {
		model := parseModel(input.Model)
		params.Model = &model
	}

	var updated *domain.QuestionTranslation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.translations.GetByID(txCtx, input.TranslationID)
		if getErr != nil {
			return fmt.Errorf("get translation: %w", getErr)
		}

		var updateErr error
		updated, updateErr = s.translations.Update(txCtx, input.TranslationID, params)
		if updateErr != nil {
			return fmt.Errorf("update translation: %w", updateErr)
		}

		changes := buildTranslationChanges(old, updated)
		if len(changes) > 0 {
			if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
				ActorID:    actorID,
				EntityType: domain.EntityTypeTranslation,
				EntityID:   &input.TranslationID,
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

	s.log.InfoContext(ctx, "translation updated",
		slog.String("actor_id", actorID.String()),
		slog.String("translation_id", input.TranslationID.String()),
	)

	return updated, nil
}

// DeleteTranslation removes a single translation.
func (s *Service) DeleteTranslation(ctx context.Context, translationID uuid.UUID) error {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if translationID == uuid.Nil {
		return domain.NewValidationError("translation_id", "required")
	}

	tr, err := s.translations.GetByID(ctx, translationID)
	if err != nil {
		return fmt.Errorf("get translation: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.translations.Delete(txCtx, translationID); deleteErr != nil {
			return fmt.Errorf("delete translation: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID,
			EntityType: domain.EntityTypeTranslation,
			EntityID:   &translationID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"language": map[string]any{"old": tr.Language},
				"text":     map[string]any{"old": tr.Text},
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

	s.log.InfoContext(ctx, "translation deleted",
		slog.String("actor_id", actorID.String()),
		slog.String("translation_id", translationID.String()),
		slog.String("language", tr.Language),
	)

	return nil
}

// ListTranslations returns the translations of a question ordered by language.
func (s *Service) ListTranslations(ctx context.Context, questionID uuid.UUID) ([]domain.QuestionTranslation, error) {
	if questionID == uuid.Nil {
		return nil, domain.NewValidationError("question_id", "required")
	}

	if _, err := s.questions.GetByID(ctx, questionID); err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}

	return s.translations.ListByQuestion(ctx, questionID)
}

// buildTranslationChanges returns only changed fields for audit.
func buildTranslationChanges(old, updated *domain.QuestionTranslation) map[string]any {
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
