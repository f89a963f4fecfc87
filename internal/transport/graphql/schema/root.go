package schema

import (
	"context"
	"strconv"

	"github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2/ast"
)

// ---------------------------------------------------------------------------
// Query
// ---------------------------------------------------------------------------

var queryImplementors = []string{"Query"}

func (ec *executionContext) execQuery(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, queryImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		out.Values[i] = ec.queryField(ctx, field)
	}
	return out
}

func (ec *executionContext) queryField(ctx context.Context, field graphql.CollectedField) graphql.Marshaler {
	q := ec.resolvers.Query()
	sel := field.Selections

	var fn resolveFunc
	switch field.Name {
	case "__typename":
		return graphql.MarshalString("Query")
	case "__schema", "__type":
		fn = func(context.Context, args) (graphql.Marshaler, error) { return nil, introspectionError() }
	case "question":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			id, err := a.id("id")
			if err != nil {
				return nil, err
			}
			obj, err := q.Question(ctx, id)
			if err != nil || obj == nil {
				return nil, err
			}
			return ec.marshalQuestion(ctx, sel, obj), nil
		}
	case "translations":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			id, err := a.id("questionId")
			if err != nil {
				return nil, err
			}
			list, err := q.Translations(ctx, id)
			if err != nil {
				return nil, err
			}
			return ec.marshalTranslations(ctx, sel, list), nil
		}
	case "template":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			id, err := a.id("id")
			if err != nil {
				return nil, err
			}
			obj, err := q.Template(ctx, id)
			if err != nil || obj == nil {
				return nil, err
			}
			return ec.marshalTemplate(ctx, sel, obj), nil
		}
	case "templates":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			publicOnly, err := a.optBool("publicOnly")
			if err != nil {
				return nil, err
			}
			list, err := q.Templates(ctx, publicOnly != nil && *publicOnly)
			if err != nil {
				return nil, err
			}
			return ec.marshalTemplates(ctx, sel, list), nil
		}
	case "collection":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			id, err := a.id("id")
			if err != nil {
				return nil, err
			}
			obj, err := q.Collection(ctx, id)
			if err != nil || obj == nil {
				return nil, err
			}
			return ec.marshalCollection(ctx, sel, obj), nil
		}
	case "collections":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			limit, err := a.intOr("limit", 0)
			if err != nil {
				return nil, err
			}
			offset, err := a.intOr("offset", 0)
			if err != nil {
				return nil, err
			}
			page, err := q.Collections(ctx, limit, offset)
			if err != nil || page == nil {
				return nil, err
			}
			return ec.marshalCollectionPage(ctx, sel, page), nil
		}
	case "answers":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			id, err := a.id("collectionId")
			if err != nil {
				return nil, err
			}
			list, err := q.Answers(ctx, id)
			if err != nil {
				return nil, err
			}
			return ec.marshalSlotAnswers(ctx, sel, list), nil
		}
	case "answerSurface":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			id, err := a.id("collectionId")
			if err != nil {
				return nil, err
			}
			lang, err := a.optStr("lang")
			if err != nil {
				return nil, err
			}
			surface, err := q.AnswerSurface(ctx, id, lang)
			if err != nil || surface == nil {
				return nil, err
			}
			return ec.marshalAnswerSurface(ctx, sel, surface), nil
		}
	case "collectionHistory":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			id, err := a.id("collectionId")
			if err != nil {
				return nil, err
			}
			limit, err := a.intOr("limit", 0)
			if err != nil {
				return nil, err
			}
			records, err := q.CollectionHistory(ctx, id, limit)
			if err != nil {
				return nil, err
			}
			return marshalList(ctx, len(records), func(ctx context.Context, i int) graphql.Marshaler {
				return ec.marshalAuditRecord(ctx, sel, &records[i])
			}), nil
		}
	default:
		panic("unknown field " + strconv.Quote(field.Name))
	}

	return ec.resolve(ctx, "Query", field, fn)
}

// ---------------------------------------------------------------------------
// Mutation
// ---------------------------------------------------------------------------

var mutationImplementors = []string{"Mutation"}

// execMutation executes root fields one after another, in document order.
func (ec *executionContext) execMutation(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, mutationImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		out.Values[i] = ec.mutationField(ctx, field)
	}
	return out
}

func (ec *executionContext) mutationField(ctx context.Context, field graphql.CollectedField) graphql.Marshaler {
	m := ec.resolvers.Mutation()
	sel := field.Selections

	var fn resolveFunc
	switch field.Name {
	case "__typename":
		return graphql.MarshalString("Mutation")

	case "createQuestion":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			obj, err := a.object("input")
			if err != nil {
				return nil, err
			}
			in, err := unmarshalCreateQuestionInput(obj)
			if err != nil {
				return nil, err
			}
			q, err := m.CreateQuestion(ctx, in)
			if err != nil || q == nil {
				return nil, err
			}
			return ec.marshalQuestion(ctx, sel, q), nil
		}
	case "updateQuestion":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			id, err := a.id("id")
			if err != nil {
				return nil, err
			}
			obj, err := a.object("input")
			if err != nil {
				return nil, err
			}
			in, err := unmarshalUpdateQuestionInput(obj)
			if err != nil {
				return nil, err
			}
			q, err := m.UpdateQuestion(ctx, id, in)
			if err != nil || q == nil {
				return nil, err
			}
			return ec.marshalQuestion(ctx, sel, q), nil
		}
	case "deleteQuestion":
		fn = byID("id", m.DeleteQuestion)
	case "createTranslation":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			obj, err := a.object("input")
			if err != nil {
				return nil, err
			}
			in, err := unmarshalCreateTranslationInput(obj)
			if err != nil {
				return nil, err
			}
			tr, err := m.CreateTranslation(ctx, in)
			if err != nil || tr == nil {
				return nil, err
			}
			return ec.marshalQuestionTranslation(ctx, sel, tr), nil
		}
	case "updateTranslation":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			id, err := a.id("id")
			if err != nil {
				return nil, err
			}
			obj, err := a.object("input")
			if err != nil {
				return nil, err
			}
			in, err := unmarshalUpdateTranslationInput(obj)
			if err != nil {
				return nil, err
			}
			tr, err := m.UpdateTranslation(ctx, id, in)
			if err != nil || tr == nil {
				return nil, err
			}
			return ec.marshalQuestionTranslation(ctx, sel, tr), nil
		}
	case "deleteTranslation":
		fn = byID("id", m.DeleteTranslation)

	case "createTemplate":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			obj, err := a.object("input")
			if err != nil {
				return nil, err
			}
			in, err := unmarshalCreateTemplateInput(obj)
			if err != nil {
				return nil, err
			}
			t, err := m.CreateTemplate(ctx, in)
			if err != nil || t == nil {
				return nil, err
			}
			return ec.marshalTemplate(ctx, sel, t), nil
		}
	case "updateTemplate":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			id, err := a.id("id")
			if err != nil {
				return nil, err
			}
			obj, err := a.object("input")
			if err != nil {
				return nil, err
			}
			in, err := unmarshalUpdateTemplateInput(obj)
			if err != nil {
				return nil, err
			}
			t, err := m.UpdateTemplate(ctx, id, in)
			if err != nil || t == nil {
				return nil, err
			}
			return ec.marshalTemplate(ctx, sel, t), nil
		}
	case "deleteTemplate":
		fn = byID("id", m.DeleteTemplate)
	case "attachTemplateQuestion":
		fn = byPair("templateId", "questionId", m.AttachTemplateQuestion)
	case "detachTemplateQuestion":
		fn = byPair("templateId", "questionId", m.DetachTemplateQuestion)

	case "createCollection":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			obj, err := a.object("input")
			if err != nil {
				return nil, err
			}
			in, err := unmarshalCreateCollectionInput(obj)
			if err != nil {
				return nil, err
			}
			payload, err := m.CreateCollection(ctx, in)
			if err != nil || payload == nil {
				return nil, err
			}
			return ec.marshalCreateCollectionPayload(ctx, sel, payload), nil
		}
	case "updateCollection":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			id, err := a.id("id")
			if err != nil {
				return nil, err
			}
			obj, err := a.object("input")
			if err != nil {
				return nil, err
			}
			in, err := unmarshalUpdateCollectionInput(obj)
			if err != nil {
				return nil, err
			}
			c, err := m.UpdateCollection(ctx, id, in)
			if err != nil || c == nil {
				return nil, err
			}
			return ec.marshalCollection(ctx, sel, c), nil
		}
	case "deleteCollection":
		fn = byID("id", m.DeleteCollection)
	case "attachQuestion":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			collectionID, err := a.id("collectionId")
			if err != nil {
				return nil, err
			}
			questionID, err := a.id("questionId")
			if err != nil {
				return nil, err
			}
			slot, err := m.AttachQuestion(ctx, collectionID, questionID)
			if err != nil || slot == nil {
				return nil, err
			}
			return ec.marshalSlot(ctx, sel, slot), nil
		}
	case "detachQuestion":
		fn = byPair("collectionId", "questionId", m.DetachQuestion)
	case "rematerialize":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			id, err := a.id("collectionId")
			if err != nil {
				return nil, err
			}
			res, err := m.Rematerialize(ctx, id)
			if err != nil || res == nil {
				return nil, err
			}
			return ec.marshalMaterializeResult(ctx, sel, res), nil
		}

	case "submitAnswers":
		fn = func(ctx context.Context, a args) (graphql.Marshaler, error) {
			id, err := a.id("collectionId")
			if err != nil {
				return nil, err
			}
			answers, err := unmarshalAnswerInputs(a.list("answers"))
			if err != nil {
				return nil, err
			}
			payload, err := m.SubmitAnswers(ctx, id, answers)
			if err != nil || payload == nil {
				return nil, err
			}
			return ec.marshalSubmitAnswersPayload(ctx, sel, payload), nil
		}
	default:
		panic("unknown field " + strconv.Quote(field.Name))
	}

	return ec.resolve(ctx, "Mutation", field, fn)
}

// byID adapts a boolean mutation keyed by one id argument.
func byID(name string, call func(context.Context, uuid.UUID) (bool, error)) resolveFunc {
	return func(ctx context.Context, a args) (graphql.Marshaler, error) {
		id, err := a.id(name)
		if err != nil {
			return nil, err
		}
		ok, err := call(ctx, id)
		if err != nil {
			return nil, err
		}
		return graphql.MarshalBoolean(ok), nil
	}
}

// byPair adapts a boolean mutation keyed by two id arguments.
func byPair(first, second string, call func(context.Context, uuid.UUID, uuid.UUID) (bool, error)) resolveFunc {
	return func(ctx context.Context, a args) (graphql.Marshaler, error) {
		a1, err := a.id(first)
		if err != nil {
			return nil, err
		}
		a2, err := a.id(second)
		if err != nil {
			return nil, err
		}
		ok, err := call(ctx, a1, a2)
		if err != nil {
			return nil, err
		}
		return graphql.MarshalBoolean(ok), nil
	}
}
