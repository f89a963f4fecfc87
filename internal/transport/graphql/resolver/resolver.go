package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/internal/service/answer"
	"github.com/heartmarshall/datacollect-backend/internal/service/collection"
	"github.com/heartmarshall/datacollect-backend/internal/service/question"
	"github.com/heartmarshall/datacollect-backend/internal/service/template"
	"github.com/heartmarshall/datacollect-backend/internal/transport/graphql/schema"
)

// questionService defines what resolver needs from Question service.
type questionService interface {
	CreateQuestion(ctx context.Context, input question.CreateQuestionInput) (*domain.Question, error)
	GetQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Question, error)
	UpdateQuestion(ctx context.Context, input question.UpdateQuestionInput) (*domain.Question, error)
	DeleteQuestion(ctx context.Context, questionID uuid.UUID) error
	CreateTranslation(ctx context.Context, input question.CreateTranslationInput) (*domain.QuestionTranslation, error)
	UpdateTranslation(ctx context.Context, input question.UpdateTranslationInput) (*domain.QuestionTranslation, error)
	DeleteTranslation(ctx context.Context, translationID uuid.UUID) error
	ListTranslations(ctx context.Context, questionID uuid.UUID) ([]domain.QuestionTranslation, error)
}

// templateService defines what resolver needs from Template service.
type templateService interface {
	CreateTemplate(ctx context.Context, input template.CreateTemplateInput) (*domain.Template, error)
	GetTemplate(ctx context.Context, templateID uuid.UUID) (*domain.Template, error)
	ListTemplates(ctx context.Context, publicOnly bool) ([]domain.Template, error)
	UpdateTemplate(ctx context.Context, input template.UpdateTemplateInput) (*domain.Template, error)
	DeleteTemplate(ctx context.Context, templateID uuid.UUID) error
	AttachQuestion(ctx context.Context, input template.QuestionLinkInput) error
	DetachQuestion(ctx context.Context, input template.QuestionLinkInput) error
	ListTemplateQuestions(ctx context.Context, templateID uuid.UUID) ([]domain.TemplateQuestion, error)
}

// collectionService defines what resolver needs from Collection service.
type collectionService interface {
	CreateCollection(ctx context.Context, input collection.CreateCollectionInput) (*collection.CreateResult, error)
	GetCollection(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error)
	ListCollections(ctx context.Context, input collection.ListCollectionsInput) (*collection.ListResult, error)
	UpdateCollection(ctx context.Context, input collection.UpdateCollectionInput) (*domain.Collection, error)
	DeleteCollection(ctx context.Context, collectionID uuid.UUID) error
	AttachQuestion(ctx context.Context, input collection.SlotInput) (*domain.Slot, error)
	DetachQuestion(ctx context.Context, input collection.SlotInput) error
	History(ctx context.Context, collectionID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

// materializeService defines what resolver needs from the materializer.
type materializeService interface {
	Rematerialize(ctx context.Context, collectionID uuid.UUID) (domain.MaterializeResult, error)
}

// answerService defines what resolver needs from Answer service.
type answerService interface {
	GetQuestions(ctx context.Context, collectionID uuid.UUID) ([]domain.SlotAnswer, error)
	SubmitAnswers(ctx context.Context, input answer.SubmitAnswersInput) (int, error)
	GetAnswerSurface(ctx context.Context, collectionID uuid.UUID) (*domain.AnswerSurface, error)
}

type languageRegistry interface {
	Normalize(code string) (string, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	questions    questionService
	templates    templateService
	collections  collectionService
	materializer materializeService
	answers      answerService
	languages    languageRegistry
	log          *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	questions questionService,
	templates templateService,
	collections collectionService,
	materializer materializeService,
	answers answerService,
	languages languageRegistry,
) *Resolver {
	return &Resolver{
		questions:    questions,
		templates:    templates,
		collections:  collections,
		materializer: materializer,
		answers:      answers,
		languages:    languages,
		log:          log.With("component", "graphql"),
	}
}

type (
	queryResolver            struct{ *Resolver }
	mutationResolver         struct{ *Resolver }
	questionResolver         struct{ *Resolver }
	templateResolver         struct{ *Resolver }
	templateQuestionResolver struct{ *Resolver }
	collectionResolver       struct{ *Resolver }
	slotAnswerResolver       struct{ *Resolver }
)

func (r *Resolver) Query() schema.QueryResolver       { return &queryResolver{r} }
func (r *Resolver) Mutation() schema.MutationResolver { return &mutationResolver{r} }
func (r *Resolver) Question() schema.QuestionResolver { return &questionResolver{r} }
func (r *Resolver) Template() schema.TemplateResolver { return &templateResolver{r} }
func (r *Resolver) Collection() schema.CollectionResolver {
	return &collectionResolver{r}
}
func (r *Resolver) SlotAnswer() schema.SlotAnswerResolver { return &slotAnswerResolver{r} }
func (r *Resolver) TemplateQuestion() schema.TemplateQuestionResolver {
	return &templateQuestionResolver{r}
}
