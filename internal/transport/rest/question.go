package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/internal/service/question"
)

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

// QuestionHandler serves the question catalog and its translations.
type QuestionHandler struct {
	svc questionService
	log *slog.Logger
}

// NewQuestionHandler creates a QuestionHandler.
func NewQuestionHandler(svc questionService, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{svc: svc, log: logger.With("handler", "question")}
}

// Register mounts the question routes on r.
func (h *QuestionHandler) Register(r chi.Router) {
	r.Post("/questions", h.Create)
	r.Get("/questions/{id}", h.Get)
	r.Patch("/questions/{id}", h.Update)
	r.Delete("/questions/{id}", h.Delete)
	r.Get("/questions/{id}/translations", h.ListTranslations)
	r.Post("/questions/{id}/translations", h.CreateTranslation)
	r.Patch("/translations/{id}", h.UpdateTranslation)
	r.Delete("/translations/{id}", h.DeleteTranslation)
}

type createQuestionRequest struct {
	Text     string          `json:"text"`
	Model    json.RawMessage `json:"model"`
	Comments *string         `json:"comments"`
}

// updateQuestionRequest leaves absent fields unchanged.
// "model": null clears the model; "comments": "" clears the comments.
type updateQuestionRequest struct {
	Text     *string         `json:"text"`
	Model    json.RawMessage `json:"model"`
	Comments *string         `json:"comments"`
}

type createTranslationRequest struct {
	Language string          `json:"language"`
	Text     string          `json:"text"`
	Model    json.RawMessage `json:"model"`
	Comments *string         `json:"comments"`
}

// Create handles POST /questions.
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	q, err := h.svc.CreateQuestion(r.Context(), question.CreateQuestionInput{
		Text:     req.Text,
		Model:    req.Model,
		Comments: req.Comments,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toQuestionResponse(q))
}

// Get handles GET /questions/{id}.
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	q, err := h.svc.GetQuestion(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuestionResponse(q))
}

// Update handles PATCH /questions/{id}.
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req updateQuestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	q, err := h.svc.UpdateQuestion(r.Context(), question.UpdateQuestionInput{
		QuestionID: id,
		Text:       req.Text,
		Model:      req.Model,
		Comments:   req.Comments,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuestionResponse(q))
}

// Delete handles DELETE /questions/{id}.
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTranslations handles GET /questions/{id}/translations.
func (h *QuestionHandler) ListTranslations(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	translations, err := h.svc.ListTranslations(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapList(translations, toTranslationResponse))
}

// CreateTranslation handles POST /questions/{id}/translations.
func (h *QuestionHandler) CreateTranslation(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req createTranslationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	tr, err := h.svc.CreateTranslation(r.Context(), question.CreateTranslationInput{
		QuestionID: id,
		Language:   req.Language,
		Text:       req.Text,
		Model:      req.Model,
		Comments:   req.Comments,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTranslationResponse(tr))
}

// UpdateTranslation handles PATCH /translations/{id}.
func (h *QuestionHandler) UpdateTranslation(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req updateQuestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	tr, err := h.svc.UpdateTranslation(r.Context(), question.UpdateTranslationInput{
		TranslationID: id,
		Text:          req.Text,
		Model:         req.Model,
		Comments:      req.Comments,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTranslationResponse(tr))
}

// DeleteTranslation handles DELETE /translations/{id}.
func (h *QuestionHandler) DeleteTranslation(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteTranslation(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
