package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/internal/service/template"
)

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

// TemplateHandler serves templates and their question links.
type TemplateHandler struct {
	svc templateService
	log *slog.Logger
}

// NewTemplateHandler creates a TemplateHandler.
func NewTemplateHandler(svc templateService, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{svc: svc, log: logger.With("handler", "template")}
}

// Register mounts the template routes on r.
func (h *TemplateHandler) Register(r chi.Router) {
	r.Post("/templates", h.Create)
	r.Get("/templates", h.List)
	r.Get("/templates/{id}", h.Get)
	r.Patch("/templates/{id}", h.Update)
	r.Delete("/templates/{id}", h.Delete)
	r.Get("/templates/{id}/questions", h.ListQuestions)
	r.Put("/templates/{id}/questions/{question_id}", h.AttachQuestion)
	r.Delete("/templates/{id}/questions/{question_id}", h.DetachQuestion)
}

type createTemplateRequest struct {
	Name     string  `json:"name"`
	Public   bool    `json:"public"`
	Comments *string `json:"comments"`
}

type updateTemplateRequest struct {
	Name     *string `json:"name"`
	Public   *bool   `json:"public"`
	Comments *string `json:"comments"`
}

// Create handles POST /templates.
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	t, err := h.svc.CreateTemplate(r.Context(), template.CreateTemplateInput{
		Name:     req.Name,
		Public:   req.Public,
		Comments: req.Comments,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTemplateResponse(t))
}

// List handles GET /templates?public=true.
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	publicOnly, err := boolQuery(r, "public")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	templates, err := h.svc.ListTemplates(r.Context(), publicOnly)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapList(templates, toTemplateResponse))
}

// Get handles GET /templates/{id}.
func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	t, err := h.svc.GetTemplate(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTemplateResponse(t))
}

// Update handles PATCH /templates/{id}.
func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req updateTemplateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	t, err := h.svc.UpdateTemplate(r.Context(), template.UpdateTemplateInput{
		TemplateID: id,
		Name:       req.Name,
		Public:     req.Public,
		Comments:   req.Comments,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTemplateResponse(t))
}

// Delete handles DELETE /templates/{id}.
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteTemplate(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListQuestions handles GET /templates/{id}/questions.
func (h *TemplateHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	links, err := h.svc.ListTemplateQuestions(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapList(links, func(l *domain.TemplateQuestion) templateQuestionResponse {
		return templateQuestionResponse{QuestionID: l.QuestionID, Position: l.Position, AttachedAt: l.CreatedAt}
	}))
}

// AttachQuestion handles PUT /templates/{id}/questions/{question_id}.
// Attaching an already linked question succeeds without change.
func (h *TemplateHandler) AttachQuestion(w http.ResponseWriter, r *http.Request) {
	input, err := h.linkInput(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.AttachQuestion(r.Context(), input); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DetachQuestion handles DELETE /templates/{id}/questions/{question_id}.
func (h *TemplateHandler) DetachQuestion(w http.ResponseWriter, r *http.Request) {
	input, err := h.linkInput(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.DetachQuestion(r.Context(), input); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TemplateHandler) linkInput(r *http.Request) (template.QuestionLinkInput, error) {
	templateID, err := uuidParam(r, "id")
	if err != nil {
		return template.QuestionLinkInput{}, err
	}
	questionID, err := uuidParam(r, "question_id")
	if err != nil {
		return template.QuestionLinkInput{}, err
	}
	return template.QuestionLinkInput{TemplateID: templateID, QuestionID: questionID}, nil
}
