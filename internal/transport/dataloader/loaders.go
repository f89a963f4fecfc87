package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Questions by ID
// ---------------------------------------------------------------------------

func newQuestionsBatchFn(repo questionRepo) dataloader.BatchFunc[uuid.UUID, *domain.Question] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Question] {
		questions, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Question](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Question, len(questions))
		for i := range questions {
			byID[questions[i].ID] = &questions[i]
		}

		return mapResults(keys, byID, nilValue[*domain.Question])
	}
}

// ---------------------------------------------------------------------------
// Translations by (QuestionID, Language)
// ---------------------------------------------------------------------------

// newTranslationsBatchFn issues one query per distinct language in the batch.
func newTranslationsBatchFn(repo translationRepo) dataloader.BatchFunc[TranslationKey, *domain.QuestionTranslation] {
	return func(ctx context.Context, keys []TranslationKey) []*dataloader.Result[*domain.QuestionTranslation] {
		byLang := make(map[string][]uuid.UUID)
		var langs []string
		for _, k := range keys {
			if _, ok := byLang[k.Language]; !ok {
				langs = append(langs, k.Language)
			}
			byLang[k.Language] = append(byLang[k.Language], k.QuestionID)
		}

		found := make(map[TranslationKey]*domain.QuestionTranslation, len(keys))
		for _, lang := range langs {
			translations, err := repo.GetByQuestionIDs(ctx, byLang[lang], lang)
			if err != nil {
				return errorResults[*domain.QuestionTranslation](len(keys), err)
			}
			for i := range translations {
				tr := &translations[i]
				found[TranslationKey{QuestionID: tr.QuestionID, Language: lang}] = tr
			}
		}

		return mapResults(keys, found, nilValue[*domain.QuestionTranslation])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results that all carry err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[K comparable, V any](keys []K, grouped map[K]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func nilValue[T any]() T {
	var zero T
	return zero
}
