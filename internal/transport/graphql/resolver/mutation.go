package resolver

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/internal/service/answer"
	"github.com/heartmarshall/datacollect-backend/internal/service/collection"
	"github.com/heartmarshall/datacollect-backend/internal/service/question"
	"github.com/heartmarshall/datacollect-backend/internal/service/template"
	"github.com/heartmarshall/datacollect-backend/internal/transport/graphql/model"
)

// ---------------------------------------------------------------------------
// Questions
// ---------------------------------------------------------------------------

func (r *mutationResolver) CreateQuestion(ctx context.Context, input model.CreateQuestionInput) (*domain.Question, error) {
	return r.questions.CreateQuestion(ctx, question.CreateQuestionInput{
		Text:     input.Text,
		Model:    input.Model,
		Comments: input.Comments,
	})
}

func (r *mutationResolver) UpdateQuestion(ctx context.Context, id uuid.UUID, input model.UpdateQuestionInput) (*domain.Question, error) {
	return r.questions.UpdateQuestion(ctx, question.UpdateQuestionInput{
		QuestionID: id,
		Text:       input.Text,
		Model:      input.Model,
		Comments:   input.Comments,
	})
}

func (r *mutationResolver) DeleteQuestion(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.questions.DeleteQuestion(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) CreateTranslation(ctx context.Context, input model.CreateTranslationInput) (*domain.QuestionTranslation, error) {
	return r.questions.CreateTranslation(ctx, question.CreateTranslationInput{
		QuestionID: input.QuestionID,
		Language:   input.Language,
		Text:       input.Text,
		Model:      input.Model,
		Comments:   input.Comments,
	})
}

func (r *mutationResolver) UpdateTranslation(ctx context.Context, id uuid.UUID, input model.UpdateTranslationInput) (*domain.QuestionTranslation, error) {
	return r.questions.UpdateTranslation(ctx, question.UpdateTranslationInput{
		TranslationID: id,
		Text:          input.Text,
		Model:         input.Model,
		Comments:      input.Comments,
	})
}

func (r *mutationResolver) DeleteTranslation(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.questions.DeleteTranslation(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// ---------------------------------------------------------------------------
// Templates
// ---------------------------------------------------------------------------

func (r *mutationResolver) CreateTemplate(ctx context.Context, input model.CreateTemplateInput) (*domain.Template, error) {
	return r.templates.CreateTemplate(ctx, template.CreateTemplateInput{
		Name:     input.Name,
		Public:   input.Public != nil && *input.Public,
		Comments: input.Comments,
	})
}

func (r *mutationResolver) UpdateTemplate(ctx context.Context, id uuid.UUID, input model.UpdateTemplateInput) (*domain.Template, error) {
	return r.templates.UpdateTemplate(ctx, template.UpdateTemplateInput{
		TemplateID: id,
		Name:       input.Name,
		Public:     input.Public,
		Comments:   input.Comments,
	})
}

func (r *mutationResolver) DeleteTemplate(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.templates.DeleteTemplate(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) AttachTemplateQuestion(ctx context.Context, templateID, questionID uuid.UUID) (bool, error) {
	err := r.templates.AttachQuestion(ctx, template.QuestionLinkInput{TemplateID: templateID, QuestionID: questionID})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) DetachTemplateQuestion(ctx context.Context, templateID, questionID uuid.UUID) (bool, error) {
	err := r.templates.DetachQuestion(ctx, template.QuestionLinkInput{TemplateID: templateID, QuestionID: questionID})
	if err != nil {
		return false, err
	}
	return true, nil
}

// ---------------------------------------------------------------------------
// Collections
// ---------------------------------------------------------------------------

func (r *mutationResolver) CreateCollection(ctx context.Context, input model.CreateCollectionInput) (*model.CreateCollectionPayload, error) {
	res, err := r.collections.CreateCollection(ctx, collection.CreateCollectionInput{
		TemplateID:     input.TemplateID,
		Date:           input.Date,
		LocationID:     input.LocationID,
		OrganisationID: input.OrganisationID,
		ActorID:        input.ActorID,
		Comments:       input.Comments,
	})
	if err != nil {
		return nil, err
	}
	return &model.CreateCollectionPayload{Collection: res.Collection, Materialization: res.Slots}, nil
}

func (r *mutationResolver) UpdateCollection(ctx context.Context, id uuid.UUID, input model.UpdateCollectionInput) (*domain.Collection, error) {
	return r.collections.UpdateCollection(ctx, collection.UpdateCollectionInput{
		CollectionID:   id,
		TemplateID:     input.TemplateID,
		Date:           input.Date,
		LocationID:     input.LocationID,
		OrganisationID: input.OrganisationID,
		ActorID:        input.ActorID,
		Comments:       input.Comments,
	})
}

func (r *mutationResolver) DeleteCollection(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.collections.DeleteCollection(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) AttachQuestion(ctx context.Context, collectionID, questionID uuid.UUID) (*domain.Slot, error) {
	return r.collections.AttachQuestion(ctx, collection.SlotInput{CollectionID: collectionID, QuestionID: questionID})
}

func (r *mutationResolver) DetachQuestion(ctx context.Context, collectionID, questionID uuid.UUID) (bool, error) {
	err := r.collections.DetachQuestion(ctx, collection.SlotInput{CollectionID: collectionID, QuestionID: questionID})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) Rematerialize(ctx context.Context, collectionID uuid.UUID) (*domain.MaterializeResult, error) {
	res, err := r.materializer.Rematerialize(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ---------------------------------------------------------------------------
// Answers
// ---------------------------------------------------------------------------

// SubmitAnswers writes all answers or none. A question listed twice is
// rejected instead of letting the later entry win.
func (r *mutationResolver) SubmitAnswers(ctx context.Context, collectionID uuid.UUID, answers []model.AnswerInput) (*model.SubmitAnswersPayload, error) {
	byQuestion := make(map[uuid.UUID]json.RawMessage, len(answers))
	var dup []domain.FieldError
	for _, a := range answers {
		if _, seen := byQuestion[a.QuestionID]; seen {
			dup = append(dup, domain.FieldError{Field: "answers." + a.QuestionID.String(), Message: "duplicate question id"})
			continue
		}
		byQuestion[a.QuestionID] = a.Answer
	}
	if len(dup) > 0 {
		return nil, domain.NewValidationErrors(dup)
	}

	n, err := r.answers.SubmitAnswers(ctx, answer.SubmitAnswersInput{CollectionID: collectionID, Answers: byQuestion})
	if err != nil {
		return nil, err
	}
	return &model.SubmitAnswersPayload{Updated: n}, nil
}
