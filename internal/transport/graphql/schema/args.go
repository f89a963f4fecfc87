package schema

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/internal/transport/graphql/model"
)

// args is a field's argument map or an input object. Values come either from
// query literals (int64, float64, string, bool, []any, map[string]any) or from
// JSON variables, where numbers arrive as json.Number.
type args map[string]any

func (a args) id(name string) (uuid.UUID, error) {
	id, err := model.UnmarshalUUID(a[name])
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

// optID returns nil when the value is absent or null.
func (a args) optID(name string) (*uuid.UUID, error) {
	if a[name] == nil {
		return nil, nil
	}
	id, err := a.id(name)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (a args) str(name string) (string, error) {
	s, ok := a[name].(string)
	if !ok {
		return "", domain.NewValidationError(name, "must be a string")
	}
	return s, nil
}

// optStr returns nil when the value is absent or null.
func (a args) optStr(name string) (*string, error) {
	if a[name] == nil {
		return nil, nil
	}
	s, err := a.str(name)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// clearableStr distinguishes an absent value (nil) from an explicit null,
// which is returned as "" and clears the field.
func (a args) clearableStr(name string) (*string, error) {
	v, present := a[name]
	if !present {
		return nil, nil
	}
	if v == nil {
		empty := ""
		return &empty, nil
	}
	return a.optStr(name)
}

func (a args) optBool(name string) (*bool, error) {
	if a[name] == nil {
		return nil, nil
	}
	b, ok := a[name].(bool)
	if !ok {
		return nil, domain.NewValidationError(name, "must be a boolean")
	}
	return &b, nil
}

// intOr returns def when the value is absent or null.
func (a args) intOr(name string, def int) (int, error) {
	var (
		n   int64
		err error
	)
	switch v := a[name].(type) {
	case nil:
		return def, nil
	case int:
		return v, nil
	case int64:
		n = v
	case float64:
		if v != math.Trunc(v) {
			err = strconv.ErrSyntax
		}
		n = int64(v)
	case json.Number:
		n, err = v.Int64()
	default:
		err = strconv.ErrSyntax
	}
	if err != nil || n > math.MaxInt32 || n < math.MinInt32 {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return int(n), nil
}

func (a args) optTime(name string) (*time.Time, error) {
	if a[name] == nil {
		return nil, nil
	}
	t, err := model.UnmarshalDateTime(a[name])
	if err != nil {
		return nil, domain.NewValidationError(name, "must be an RFC 3339 timestamp")
	}
	return &t, nil
}

// rawJSON returns nil when the value is absent and the literal `null` when it is
// explicitly null.
func (a args) rawJSON(name string) (json.RawMessage, error) {
	v, present := a[name]
	if !present {
		return nil, nil
	}
	raw, err := model.UnmarshalJSON(v)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be JSON")
	}
	return raw, nil
}

func (a args) object(name string) (args, error) {
	m, ok := a[name].(map[string]any)
	if !ok {
		return nil, domain.NewValidationError(name, "must be an object")
	}
	return args(m), nil
}

// list applies input coercion: a single value stands for a list of one.
func (a args) list(name string) []any {
	switch v := a[name].(type) {
	case nil:
		return nil
	case []any:
		return v
	default:
		return []any{v}
	}
}

// ---------------------------------------------------------------------------
// Input objects
// ---------------------------------------------------------------------------

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func unmarshalCreateQuestionInput(in args) (model.CreateQuestionInput, error) {
	var (
		out                      model.CreateQuestionInput
		errText, errMod, errComm error
	)
	out.Text, errText = in.str("text")
	out.Model, errMod = in.rawJSON("model")
	out.Comments, errComm = in.optStr("comments")
	return out, firstErr(errText, errMod, errComm)
}

func unmarshalUpdateQuestionInput(in args) (model.UpdateQuestionInput, error) {
	var (
		out                      model.UpdateQuestionInput
		errText, errMod, errComm error
	)
	out.Text, errText = in.optStr("text")
	out.Model, errMod = in.rawJSON("model")
	out.Comments, errComm = in.clearableStr("comments")
	return out, firstErr(errText, errMod, errComm)
}

func unmarshalCreateTranslationInput(in args) (model.CreateTranslationInput, error) {
	var (
		out                                    model.CreateTranslationInput
		errQID, errLang, errText, errMod, errC error
	)
	out.QuestionID, errQID = in.id("questionId")
	out.Language, errLang = in.str("language")
	out.Text, errText = in.str("text")
	out.Model, errMod = in.rawJSON("model")
	out.Comments, errC = in.optStr("comments")
	return out, firstErr(errQID, errLang, errText, errMod, errC)
}

func unmarshalUpdateTranslationInput(in args) (model.UpdateTranslationInput, error) {
	var (
		out                      model.UpdateTranslationInput
		errText, errMod, errComm error
	)
	out.Text, errText = in.optStr("text")
	out.Model, errMod = in.rawJSON("model")
	out.Comments, errComm = in.clearableStr("comments")
	return out, firstErr(errText, errMod, errComm)
}

func unmarshalCreateTemplateInput(in args) (model.CreateTemplateInput, error) {
	var (
		out                      model.CreateTemplateInput
		errName, errPub, errComm error
	)
	out.Name, errName = in.str("name")
	out.Public, errPub = in.optBool("public")
	out.Comments, errComm = in.optStr("comments")
	return out, firstErr(errName, errPub, errComm)
}

func unmarshalUpdateTemplateInput(in args) (model.UpdateTemplateInput, error) {
	var (
		out                      model.UpdateTemplateInput
		errName, errPub, errComm error
	)
	out.Name, errName = in.optStr("name")
	out.Public, errPub = in.optBool("public")
	out.Comments, errComm = in.clearableStr("comments")
	return out, firstErr(errName, errPub, errComm)
}

func unmarshalCreateCollectionInput(in args) (model.CreateCollectionInput, error) {
	var (
		out                                       model.CreateCollectionInput
		errTpl, errDate, errLoc, errOrg, errActor error
		errComm                                   error
	)
	out.TemplateID, errTpl = in.optID("templateId")
	out.Date, errDate = in.optTime("date")
	out.LocationID, errLoc = in.id("locationId")
	out.OrganisationID, errOrg = in.id("organisationId")
	out.ActorID, errActor = in.optID("actorId")
	out.Comments, errComm = in.optStr("comments")
	return out, firstErr(errTpl, errDate, errLoc, errOrg, errActor, errComm)
}

func unmarshalUpdateCollectionInput(in args) (model.UpdateCollectionInput, error) {
	var (
		out                                       model.UpdateCollectionInput
		errTpl, errDate, errLoc, errOrg, errActor error
		errComm                                   error
	)
	out.TemplateID, errTpl = in.optID("templateId")
	out.Date, errDate = in.optTime("date")
	out.LocationID, errLoc = in.optID("locationId")
	out.OrganisationID, errOrg = in.optID("organisationId")
	out.ActorID, errActor = in.optID("actorId")
	out.Comments, errComm = in.clearableStr("comments")
	return out, firstErr(errTpl, errDate, errLoc, errOrg, errActor, errComm)
}

func unmarshalAnswerInputs(values []any) ([]model.AnswerInput, error) {
	out := make([]model.AnswerInput, len(values))
	for i, v := range values {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, domain.NewValidationError("answers", "must be a list of objects")
		}
		in := args(m)

		qid, err := in.id("questionId")
		if err != nil {
			return nil, err
		}
		answer, err := in.rawJSON("answer")
		if err != nil {
			return nil, err
		}
		if answer == nil {
			answer = json.RawMessage("null")
		}
		out[i] = model.AnswerInput{QuestionID: qid, Answer: answer}
	}
	return out, nil
}
