// Package dataloader provides per-request DataLoaders that batch question and
// translation lookups of the answer surface into single SQL calls.
// DataLoaders call repositories directly, bypassing the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type questionRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Question, error)
}

type translationRepo interface {
	GetByQuestionIDs(ctx context.Context, questionIDs []uuid.UUID, lang string) ([]domain.QuestionTranslation, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Question    questionRepo
	Translation translationRepo
}

// TranslationKey identifies the translation of one question into one language.
type TranslationKey struct {
	QuestionID uuid.UUID
	Language   string
}

// Loaders contains all DataLoaders. Created per-request via NewLoaders.
type Loaders struct {
	QuestionByID          *dataloader.Loader[uuid.UUID, *domain.Question]
	TranslationByQuestion *dataloader.Loader[TranslationKey, *domain.QuestionTranslation]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		QuestionByID:          newLoader(newQuestionsBatchFn(repos.Question)),
		TranslationByQuestion: newLoader(newTranslationsBatchFn(repos.Translation)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[K comparable, V any](batchFn dataloader.BatchFunc[K, V]) *dataloader.Loader[K, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[K, V](wait),
		dataloader.WithBatchCapacity[K, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
