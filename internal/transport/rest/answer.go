package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/internal/service/answer"
	"github.com/heartmarshall/datacollect-backend/internal/transport/dataloader"
)

type answerService interface {
	GetQuestions(ctx context.Context, collectionID uuid.UUID) ([]domain.SlotAnswer, error)
	SubmitAnswers(ctx context.Context, input answer.SubmitAnswersInput) (int, error)
	GetAnswerSurface(ctx context.Context, collectionID uuid.UUID) (*domain.AnswerSurface, error)
}

type languageRegistry interface {
	Normalize(code string) (string, error)
}

// AnswerHandler serves the answer view of a collection and the answer widget
// descriptor. The descriptor route needs dataloader.Middleware.
type AnswerHandler struct {
	svc       answerService
	languages languageRegistry
	log       *slog.Logger
}

// NewAnswerHandler creates an AnswerHandler.
func NewAnswerHandler(svc answerService, languages languageRegistry, logger *slog.Logger) *AnswerHandler {
	return &AnswerHandler{svc: svc, languages: languages, log: logger.With("handler", "answer")}
}

// Register mounts the answer routes on r. submit wraps only the write route.
func (h *AnswerHandler) Register(r chi.Router, submit ...func(http.Handler) http.Handler) {
	r.Get("/collections/{id}/answers", h.List)
	r.With(submit...).Post("/collections/{id}/answers", h.Submit)
	r.Get("/collections/{id}/answer-surface", h.Surface)
}

type submitAnswersRequest struct {
	Answers map[string]json.RawMessage `json:"answers"`
}

type submitAnswersResponse struct {
	Updated int `json:"updated"`
}

type answersResponse struct {
	CollectionID uuid.UUID            `json:"collection_id"`
	Answers      []slotAnswerResponse `json:"answers"`
}

type surfaceQuestion struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
	// Language is set when Text comes from a translation.
	Language string `json:"language,omitempty"`
}

type surfaceResponse struct {
	WidgetID     string            `json:"widget_id"`
	CollectionID uuid.UUID         `json:"collection_id"`
	QuestionIDs  []uuid.UUID       `json:"question_ids"`
	Questions    []surfaceQuestion `json:"questions"`
}

// List handles GET /collections/{id}/answers.
func (h *AnswerHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	answers, err := h.svc.GetQuestions(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := answersResponse{CollectionID: id, Answers: make([]slotAnswerResponse, len(answers))}
	for i, a := range answers {
		resp.Answers[i] = slotAnswerResponse{QuestionID: a.QuestionID, Answer: a.Answer, Origin: a.Origin.String()}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Submit handles POST /collections/{id}/answers with body
// {"answers": {"<question id>": <json>}}. Either every answer is written or none.
func (h *AnswerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req submitAnswersRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	answers, err := parseAnswerKeys(req.Answers)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	n, err := h.svc.SubmitAnswers(r.Context(), answer.SubmitAnswersInput{CollectionID: id, Answers: answers})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, submitAnswersResponse{Updated: n})
}

// Surface handles GET /collections/{id}/answer-surface?lang=xx.
// Question texts are localized when a translation for lang exists.
func (h *AnswerHandler) Surface(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	lang := r.URL.Query().Get("lang")
	if lang != "" {
		lang, err = h.languages.Normalize(lang)
		if err != nil {
			writeServiceError(w, r, h.log, domain.NewValidationError("lang", "unknown language"))
			return
		}
	}

	surface, err := h.svc.GetAnswerSurface(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	questions, err := localizeQuestions(r.Context(), surface.QuestionIDs, lang)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, surfaceResponse{
		WidgetID:     surface.WidgetID,
		CollectionID: surface.CollectionID,
		QuestionIDs:  surface.QuestionIDs,
		Questions:    questions,
	})
}

// localizeQuestions batches question and translation lookups through the
// request's dataloaders.
func localizeQuestions(ctx context.Context, ids []uuid.UUID, lang string) ([]surfaceQuestion, error) {
	out := make([]surfaceQuestion, len(ids))
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
			out[i].Language = translations[i].Language
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

// parseAnswerKeys converts the question id keys of a submission.
// All malformed keys are reported together.
func parseAnswerKeys(raw map[string]json.RawMessage) (map[uuid.UUID]json.RawMessage, error) {
	answers := make(map[uuid.UUID]json.RawMessage, len(raw))
	var fieldErrs []domain.FieldError
	for key, payload := range raw {
		qid, err := uuid.Parse(key)
		if err != nil {
			fieldErrs = append(fieldErrs, domain.FieldError{Field: "answers." + key, Message: "key must be a question UUID"})
			continue
		}
		answers[qid] = payload
	}
	if len(fieldErrs) > 0 {
		slices.SortFunc(fieldErrs, func(a, b domain.FieldError) int { return strings.Compare(a.Field, b.Field) })
		return nil, domain.NewValidationErrors(fieldErrs)
	}
	return answers, nil
}
