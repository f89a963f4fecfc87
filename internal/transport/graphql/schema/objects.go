package schema

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/internal/transport/graphql/model"
)

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

var questionImplementors = []string{"Question"}

func (ec *executionContext) marshalQuestion(ctx context.Context, sel ast.SelectionSet, obj *domain.Question) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, questionImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Question")
		case "id":
			out.Values[i] = model.MarshalUUID(obj.ID)
		case "text":
			out.Values[i] = graphql.MarshalString(obj.Text)
		case "model":
			out.Values[i] = model.MarshalJSON(obj.Model)
		case "comments":
			out.Values[i] = marshalOptString(obj.Comments)
		case "createdAt":
			out.Values[i] = model.MarshalDateTime(obj.CreatedAt)
		case "updatedAt":
			out.Values[i] = model.MarshalDateTime(obj.UpdatedAt)
		case "translations":
			out.Values[i] = ec.resolve(ctx, "Question", field, func(ctx context.Context, _ args) (graphql.Marshaler, error) {
				list, err := ec.resolvers.Question().Translations(ctx, obj)
				if err != nil {
					return nil, err
				}
				return ec.marshalTranslations(ctx, field.Selections, list), nil
			})
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return out
}

var questionTranslationImplementors = []string{"QuestionTranslation"}

func (ec *executionContext) marshalQuestionTranslation(ctx context.Context, sel ast.SelectionSet, obj *domain.QuestionTranslation) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, questionTranslationImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("QuestionTranslation")
		case "id":
			out.Values[i] = model.MarshalUUID(obj.ID)
		case "questionId":
			out.Values[i] = model.MarshalUUID(obj.QuestionID)
		case "language":
			out.Values[i] = graphql.MarshalString(obj.Language)
		case "text":
			out.Values[i] = graphql.MarshalString(obj.Text)
		case "model":
			out.Values[i] = model.MarshalJSON(obj.Model)
		case "comments":
			out.Values[i] = marshalOptString(obj.Comments)
		case "createdAt":
			out.Values[i] = model.MarshalDateTime(obj.CreatedAt)
		case "updatedAt":
			out.Values[i] = model.MarshalDateTime(obj.UpdatedAt)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return out
}

func (ec *executionContext) marshalTranslations(ctx context.Context, sel ast.SelectionSet, list []domain.QuestionTranslation) graphql.Marshaler {
	return marshalList(ctx, len(list), func(ctx context.Context, i int) graphql.Marshaler {
		return ec.marshalQuestionTranslation(ctx, sel, &list[i])
	})
}

var templateImplementors = []string{"Template"}

func (ec *executionContext) marshalTemplate(ctx context.Context, sel ast.SelectionSet, obj *domain.Template) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, templateImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Template")
		case "id":
			out.Values[i] = model.MarshalUUID(obj.ID)
		case "name":
			out.Values[i] = graphql.MarshalString(obj.Name)
		case "public":
			out.Values[i] = graphql.MarshalBoolean(obj.Public)
		case "comments":
			out.Values[i] = marshalOptString(obj.Comments)
		case "questionCount":
			out.Values[i] = graphql.MarshalInt(obj.QuestionCount)
		case "createdAt":
			out.Values[i] = model.MarshalDateTime(obj.CreatedAt)
		case "updatedAt":
			out.Values[i] = model.MarshalDateTime(obj.UpdatedAt)
		case "questions":
			out.Values[i] = ec.resolve(ctx, "Template", field, func(ctx context.Context, _ args) (graphql.Marshaler, error) {
				list, err := ec.resolvers.Template().Questions(ctx, obj)
				if err != nil {
					return nil, err
				}
				return marshalList(ctx, len(list), func(ctx context.Context, i int) graphql.Marshaler {
					return ec.marshalTemplateQuestion(ctx, field.Selections, &list[i])
				}), nil
			})
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return out
}

func (ec *executionContext) marshalTemplates(ctx context.Context, sel ast.SelectionSet, list []domain.Template) graphql.Marshaler {
	return marshalList(ctx, len(list), func(ctx context.Context, i int) graphql.Marshaler {
		return ec.marshalTemplate(ctx, sel, &list[i])
	})
}

var templateQuestionImplementors = []string{"TemplateQuestion"}

func (ec *executionContext) marshalTemplateQuestion(ctx context.Context, sel ast.SelectionSet, obj *domain.TemplateQuestion) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, templateQuestionImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("TemplateQuestion")
		case "id":
			out.Values[i] = model.MarshalUUID(obj.ID)
		case "templateId":
			out.Values[i] = model.MarshalUUID(obj.TemplateID)
		case "questionId":
			out.Values[i] = model.MarshalUUID(obj.QuestionID)
		case "position":
			out.Values[i] = graphql.MarshalInt(int(obj.Position))
		case "createdAt":
			out.Values[i] = model.MarshalDateTime(obj.CreatedAt)
		case "question":
			out.Values[i] = ec.resolve(ctx, "TemplateQuestion", field, func(ctx context.Context, _ args) (graphql.Marshaler, error) {
				q, err := ec.resolvers.TemplateQuestion().Question(ctx, obj)
				if err != nil || q == nil {
					return nil, err
				}
				return ec.marshalQuestion(ctx, field.Selections, q), nil
			})
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Collections and answers
// ---------------------------------------------------------------------------

var collectionImplementors = []string{"Collection"}

func (ec *executionContext) marshalCollection(ctx context.Context, sel ast.SelectionSet, obj *domain.Collection) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, collectionImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Collection")
		case "id":
			out.Values[i] = model.MarshalUUID(obj.ID)
		case "docId":
			out.Values[i] = model.MarshalUUID(obj.DocID)
		case "templateId":
			out.Values[i] = marshalOptUUID(obj.TemplateID)
		case "date":
			out.Values[i] = model.MarshalDateTime(obj.Date)
		case "locationId":
			out.Values[i] = model.MarshalUUID(obj.LocationID)
		case "organisationId":
			out.Values[i] = model.MarshalUUID(obj.OrganisationID)
		case "actorId":
			out.Values[i] = model.MarshalUUID(obj.ActorID)
		case "comments":
			out.Values[i] = marshalOptString(obj.Comments)
		case "createdAt":
			out.Values[i] = model.MarshalDateTime(obj.CreatedAt)
		case "updatedAt":
			out.Values[i] = model.MarshalDateTime(obj.UpdatedAt)
		case "answers":
			out.Values[i] = ec.resolve(ctx, "Collection", field, func(ctx context.Context, _ args) (graphql.Marshaler, error) {
				list, err := ec.resolvers.Collection().Answers(ctx, obj)
				if err != nil {
					return nil, err
				}
				return ec.marshalSlotAnswers(ctx, field.Selections, list), nil
			})
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return out
}

var slotImplementors = []string{"Slot"}

func (ec *executionContext) marshalSlot(_ context.Context, sel ast.SelectionSet, obj *domain.Slot) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, slotImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Slot")
		case "id":
			out.Values[i] = model.MarshalUUID(obj.ID)
		case "collectionId":
			out.Values[i] = model.MarshalUUID(obj.CollectionID)
		case "questionId":
			out.Values[i] = model.MarshalUUID(obj.QuestionID)
		case "answer":
			out.Values[i] = marshalAnswer(obj.Answer)
		case "origin":
			out.Values[i] = graphql.MarshalString(obj.Origin.String())
		case "position":
			out.Values[i] = graphql.MarshalInt(int(obj.Position))
		case "createdAt":
			out.Values[i] = model.MarshalDateTime(obj.CreatedAt)
		case "updatedAt":
			out.Values[i] = model.MarshalDateTime(obj.UpdatedAt)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return out
}

var slotAnswerImplementors = []string{"SlotAnswer"}

func (ec *executionContext) marshalSlotAnswer(ctx context.Context, sel ast.SelectionSet, obj *domain.SlotAnswer) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, slotAnswerImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("SlotAnswer")
		case "questionId":
			out.Values[i] = model.MarshalUUID(obj.QuestionID)
		case "answer":
			out.Values[i] = marshalAnswer(obj.Answer)
		case "origin":
			out.Values[i] = graphql.MarshalString(obj.Origin.String())
		case "question":
			out.Values[i] = ec.resolve(ctx, "SlotAnswer", field, func(ctx context.Context, _ args) (graphql.Marshaler, error) {
				q, err := ec.resolvers.SlotAnswer().Question(ctx, obj)
				if err != nil || q == nil {
					return nil, err
				}
				return ec.marshalQuestion(ctx, field.Selections, q), nil
			})
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return out
}

func (ec *executionContext) marshalSlotAnswers(ctx context.Context, sel ast.SelectionSet, list []domain.SlotAnswer) graphql.Marshaler {
	return marshalList(ctx, len(list), func(ctx context.Context, i int) graphql.Marshaler {
		return ec.marshalSlotAnswer(ctx, sel, &list[i])
	})
}

var materializeResultImplementors = []string{"MaterializeResult"}

func (ec *executionContext) marshalMaterializeResult(_ context.Context, sel ast.SelectionSet, obj *domain.MaterializeResult) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, materializeResultImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("MaterializeResult")
		case "expected":
			out.Values[i] = graphql.MarshalInt(obj.Expected)
		case "created":
			out.Values[i] = graphql.MarshalInt(obj.Created)
		case "skipped":
			out.Values[i] = graphql.MarshalInt(obj.Skipped())
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return out
}

var createCollectionPayloadImplementors = []string{"CreateCollectionPayload"}

func (ec *executionContext) marshalCreateCollectionPayload(ctx context.Context, sel ast.SelectionSet, obj *model.CreateCollectionPayload) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, createCollectionPayloadImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("CreateCollectionPayload")
		case "collection":
			out.Values[i] = ec.marshalCollection(ctx, field.Selections, obj.Collection)
		case "materialization":
			out.Values[i] = ec.marshalMaterializeResult(ctx, field.Selections, &obj.Materialization)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return out
}

var collectionPageImplementors = []string{"CollectionPage"}

func (ec *executionContext) marshalCollectionPage(ctx context.Context, sel ast.SelectionSet, obj *model.CollectionPage) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, collectionPageImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("CollectionPage")
		case "items":
			out.Values[i] = marshalList(ctx, len(obj.Items), func(ctx context.Context, j int) graphql.Marshaler {
				return ec.marshalCollection(ctx, field.Selections, &obj.Items[j])
			})
		case "total":
			out.Values[i] = graphql.MarshalInt(obj.Total)
		case "limit":
			out.Values[i] = graphql.MarshalInt(obj.Limit)
		case "offset":
			out.Values[i] = graphql.MarshalInt(obj.Offset)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return out
}

var surfaceQuestionImplementors = []string{"SurfaceQuestion"}

func (ec *executionContext) marshalSurfaceQuestion(_ context.Context, sel ast.SelectionSet, obj *model.SurfaceQuestion) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, surfaceQuestionImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("SurfaceQuestion")
		case "id":
			out.Values[i] = model.MarshalUUID(obj.ID)
		case "text":
			out.Values[i] = graphql.MarshalString(obj.Text)
		case "language":
			out.Values[i] = marshalOptString(obj.Language)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return out
}

var answerSurfaceImplementors = []string{"AnswerSurface"}

func (ec *executionContext) marshalAnswerSurface(ctx context.Context, sel ast.SelectionSet, obj *model.AnswerSurface) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, answerSurfaceImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("AnswerSurface")
		case "widgetId":
			out.Values[i] = graphql.MarshalString(obj.WidgetID)
		case "collectionId":
			out.Values[i] = model.MarshalUUID(obj.CollectionID)
		case "questionIds":
			ids := make(graphql.Array, len(obj.QuestionIDs))
			for j, id := range obj.QuestionIDs {
				ids[j] = model.MarshalUUID(id)
			}
			out.Values[i] = ids
		case "questions":
			questions := make(graphql.Array, len(obj.Questions))
			for j := range obj.Questions {
				questions[j] = ec.marshalSurfaceQuestion(ctx, field.Selections, &obj.Questions[j])
			}
			out.Values[i] = questions
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return out
}

var submitAnswersPayloadImplementors = []string{"SubmitAnswersPayload"}

func (ec *executionContext) marshalSubmitAnswersPayload(_ context.Context, sel ast.SelectionSet, obj *model.SubmitAnswersPayload) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, submitAnswersPayloadImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("SubmitAnswersPayload")
		case "updated":
			out.Values[i] = graphql.MarshalInt(obj.Updated)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return out
}

var auditRecordImplementors = []string{"AuditRecord"}

func (ec *executionContext) marshalAuditRecord(ctx context.Context, sel ast.SelectionSet, obj *domain.AuditRecord) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, auditRecordImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("AuditRecord")
		case "id":
			out.Values[i] = model.MarshalUUID(obj.ID)
		case "actorId":
			out.Values[i] = model.MarshalUUID(obj.ActorID)
		case "entityType":
			out.Values[i] = graphql.MarshalString(obj.EntityType.String())
		case "entityId":
			out.Values[i] = marshalOptUUID(obj.EntityID)
		case "action":
			out.Values[i] = graphql.MarshalString(obj.Action.String())
		case "changes":
			out.Values[i] = ec.marshalChanges(ctx, obj.Changes)
		case "createdAt":
			out.Values[i] = model.MarshalDateTime(obj.CreatedAt)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return out
}

// marshalChanges encodes an audit diff. A diff that cannot be encoded is
// reported on the field and rendered as null.
func (ec *executionContext) marshalChanges(ctx context.Context, changes map[string]any) graphql.Marshaler {
	if changes == nil {
		return graphql.Null
	}
	raw, err := json.Marshal(changes)
	if err != nil {
		ec.Error(ctx, err)
		return graphql.Null
	}
	return model.MarshalJSON(domain.Value(raw))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func marshalOptString(s *string) graphql.Marshaler {
	if s == nil {
		return graphql.Null
	}
	return graphql.MarshalString(*s)
}

func marshalOptUUID(id *uuid.UUID) graphql.Marshaler {
	if id == nil {
		return graphql.Null
	}
	return model.MarshalUUID(*id)
}

// marshalAnswer renders an absent answer as the empty object, matching
// the stored default of a slot.
func marshalAnswer(v domain.Value) graphql.Marshaler {
	if v.IsZero() {
		v = domain.EmptyObject()
	}
	return model.MarshalJSON(v)
}

// marshalList marshals n list elements concurrently so dataloader lookups
// of sibling elements land in one batch.
func marshalList(ctx context.Context, n int, fn func(ctx context.Context, i int) graphql.Marshaler) graphql.Marshaler {
	ret := make(graphql.Array, n)
	if n == 1 {
		ret[0] = fn(withIndex(ctx, 0), 0)
		return ret
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		go func() {
			defer wg.Done()
			ret[i] = fn(withIndex(ctx, i), i)
		}()
	}
	wg.Wait()
	return ret
}

func withIndex(ctx context.Context, i int) context.Context {
	return graphql.WithFieldContext(ctx, &graphql.FieldContext{Index: &i})
}
