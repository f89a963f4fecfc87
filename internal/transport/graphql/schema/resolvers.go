package schema

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/internal/transport/graphql/model"
)

// Config configures the executable schema.
type Config struct {
	Resolvers ResolverRoot
}

// ResolverRoot gives access to the resolvers of every type with resolved fields.
type ResolverRoot interface {
	Query() QueryResolver
	Mutation() MutationResolver
	Question() QuestionResolver
	Template() TemplateResolver
	TemplateQuestion() TemplateQuestionResolver
	Collection() CollectionResolver
	SlotAnswer() SlotAnswerResolver
}

type QueryResolver interface {
	Question(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	Translations(ctx context.Context, questionID uuid.UUID) ([]domain.QuestionTranslation, error)
	Template(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	Templates(ctx context.Context, publicOnly bool) ([]domain.Template, error)
	Collection(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	Collections(ctx context.Context, limit, offset int) (*model.CollectionPage, error)
	Answers(ctx context.Context, collectionID uuid.UUID) ([]domain.SlotAnswer, error)
	AnswerSurface(ctx context.Context, collectionID uuid.UUID, lang *string) (*model.AnswerSurface, error)
	CollectionHistory(ctx context.Context, collectionID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type MutationResolver interface {
	CreateQuestion(ctx context.Context, input model.CreateQuestionInput) (*domain.Question, error)
	UpdateQuestion(ctx context.Context, id uuid.UUID, input model.UpdateQuestionInput) (*domain.Question, error)
	DeleteQuestion(ctx context.Context, id uuid.UUID) (bool, error)
	CreateTranslation(ctx context.Context, input model.CreateTranslationInput) (*domain.QuestionTranslation, error)
	UpdateTranslation(ctx context.Context, id uuid.UUID, input model.UpdateTranslationInput) (*domain.QuestionTranslation, error)
	DeleteTranslation(ctx context.Context, id uuid.UUID) (bool, error)

	CreateTemplate(ctx context.Context, input model.CreateTemplateInput) (*domain.Template, error)
	UpdateTemplate(ctx context.Context, id uuid.UUID, input model.UpdateTemplateInput) (*domain.Template, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) (bool, error)
	AttachTemplateQuestion(ctx context.Context, templateID, questionID uuid.UUID) (bool, error)
	DetachTemplateQuestion(ctx context.Context, templateID, questionID uuid.UUID) (bool, error)

	CreateCollection(ctx context.Context, input model.CreateCollectionInput) (*model.CreateCollectionPayload, error)
	UpdateCollection(ctx context.Context, id uuid.UUID, input model.UpdateCollectionInput) (*domain.Collection, error)
	DeleteCollection(ctx context.Context, id uuid.UUID) (bool, error)
	AttachQuestion(ctx context.Context, collectionID, questionID uuid.UUID) (*domain.Slot, error)
	DetachQuestion(ctx context.Context, collectionID, questionID uuid.UUID) (bool, error)
	Rematerialize(ctx context.Context, collectionID uuid.UUID) (*domain.MaterializeResult, error)

	SubmitAnswers(ctx context.Context, collectionID uuid.UUID, answers []model.AnswerInput) (*model.SubmitAnswersPayload, error)
}

type QuestionResolver interface {
	Translations(ctx context.Context, obj *domain.Question) ([]domain.QuestionTranslation, error)
}

type TemplateResolver interface {
	Questions(ctx context.Context, obj *domain.Template) ([]domain.TemplateQuestion, error)
}

type TemplateQuestionResolver interface {
	Question(ctx context.Context, obj *domain.TemplateQuestion) (*domain.Question, error)
}

type CollectionResolver interface {
	Answers(ctx context.Context, obj *domain.Collection) ([]domain.SlotAnswer, error)
}

type SlotAnswerResolver interface {
	Question(ctx context.Context, obj *domain.SlotAnswer) (*domain.Question, error)
}
