package resolver

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/internal/service/collection"
	"github.com/heartmarshall/datacollect-backend/internal/transport/dataloader"
	"github.com/heartmarshall/datacollect-backend/internal/transport/graphql/model"
)

func (r *queryResolver) Question(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	return r.questions.GetQuestion(ctx, id)
}

func (r *queryResolver) Translations(ctx context.Context, questionID uuid.UUID) ([]domain.QuestionTranslation, error) {
	return r.questions.ListTranslations(ctx, questionID)
}

func (r *queryResolver) Template(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	return r.templates.GetTemplate(ctx, id)
}

func (r *queryResolver) Templates(ctx context.Context, publicOnly bool) ([]domain.Template, error) {
	return r.templates.ListTemplates(ctx, publicOnly)
}

func (r *queryResolver) Collection(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	return r.collections.GetCollection(ctx, id)
}

func (r *queryResolver) Collections(ctx context.Context, limit, offset int) (*model.CollectionPage, error) {
	page, err := r.collections.ListCollections(ctx, collection.ListCollectionsInput{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &model.CollectionPage{Items: page.Items, Total: page.Total, Limit: limit, Offset: offset}, nil
}

func (r *queryResolver) Answers(ctx context.Context, collectionID uuid.UUID) ([]domain.SlotAnswer, error) {
	return r.answers.GetQuestions(ctx, collectionID)
}

// AnswerSurface returns the widget descriptor of a collection. Question texts
// are localized through the request's dataloaders when lang has a translation.
func (r *queryResolver) AnswerSurface(ctx context.Context, collectionID uuid.UUID, lang *string) (*model.AnswerSurface, error) {
	var code string
	if lang != nil && *lang != "" {
		normalized, err := r.languages.Normalize(*lang)
		if err != nil {
			return nil, domain.NewValidationError("lang", "unknown language")
		}
		code = normalized
	}

	surface, err := r.answers.GetAnswerSurface(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	questions, err := localize(ctx, surface.QuestionIDs, code)
	if err != nil {
		return nil, err
	}

	return &model.AnswerSurface{
		WidgetID:     surface.WidgetID,
		CollectionID: surface.CollectionID,
		QuestionIDs:  surface.QuestionIDs,
		Questions:    questions,
	}, nil
}

func (r *queryResolver) CollectionHistory(ctx context.Context, collectionID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	return r.collections.History(ctx, collectionID, limit)
}

// localize resolves the text of every question, preferring its translation
// into lang. Both lookups go through one dataloader batch each.
func localize(ctx context.Context, ids []uuid.UUID, lang string) ([]model.SurfaceQuestion, error) {
	out := make([]model.SurfaceQuestion, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	loaders := dataloader.FromContext(ctx)

	questions, errs := loaders.QuestionByID.LoadMany(ctx, ids)()
	if err := firstError(errs); err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	var translations []*domain.QuestionTranslation
	if lang != "" {
		keys := make([]dataloader.TranslationKey, len(ids))
		for i, qid := range ids {
			keys[i] = dataloader.TranslationKey{QuestionID: qid, Language: lang}
		}
		translations, errs = loaders.TranslationByQuestion.LoadMany(ctx, keys)()
		if err := firstError(errs); err != nil {
			return nil, fmt.Errorf("load translations: %w", err)
		}
	}

	for i, qid := range ids {
		out[i].ID = qid
		if questions[i] != nil {
			out[i].Text = questions[i].Text
		}
		if translations != nil && translations[i] != nil {
			out[i].Text = translations[i].Text
			language := translations[i].Language
			out[i].Language = &language
		}
	}
	return out, nil
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
