package resolver

import (
	"context"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/internal/transport/dataloader"
)

func (r *questionResolver) Translations(ctx context.Context, obj *domain.Question) ([]domain.QuestionTranslation, error) {
	return r.questions.ListTranslations(ctx, obj.ID)
}

func (r *templateResolver) Questions(ctx context.Context, obj *domain.Template) ([]domain.TemplateQuestion, error) {
	return r.templates.ListTemplateQuestions(ctx, obj.ID)
}

// Question is batched with its siblings through the request's dataloader.
func (r *templateQuestionResolver) Question(ctx context.Context, obj *domain.TemplateQuestion) (*domain.Question, error) {
	return dataloader.FromContext(ctx).QuestionByID.Load(ctx, obj.QuestionID)()
}

func (r *collectionResolver) Answers(ctx context.Context, obj *domain.Collection) ([]domain.SlotAnswer, error) {
	return r.answers.GetQuestions(ctx, obj.ID)
}

func (r *slotAnswerResolver) Question(ctx context.Context, obj *domain.SlotAnswer) (*domain.Question, error) {
	return dataloader.FromContext(ctx).QuestionByID.Load(ctx, obj.QuestionID)()
}
