package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/internal/service/collection"
)

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

type materializeService interface {
	Rematerialize(ctx context.Context, collectionID uuid.UUID) (domain.MaterializeResult, error)
}

// CollectionHandler serves collections, their slots and their history.
type CollectionHandler struct {
	svc          collectionService
	materializer materializeService
	log          *slog.Logger
}

// NewCollectionHandler creates a CollectionHandler.
func NewCollectionHandler(svc collectionService, materializer materializeService, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{
		svc:          svc,
		materializer: materializer,
		log:          logger.With("handler", "collection"),
	}
}

// Register mounts the collection routes on r.
func (h *CollectionHandler) Register(r chi.Router) {
	r.Post("/collections", h.Create)
	r.Get("/collections", h.List)
	r.Get("/collections/{id}", h.Get)
	r.Patch("/collections/{id}", h.Update)
	r.Delete("/collections/{id}", h.Delete)
	r.Get("/collections/{id}/history", h.History)
	r.Post("/collections/{id}/materialize", h.Materialize)
	r.Put("/collections/{id}/questions/{question_id}", h.AttachQuestion)
	r.Delete("/collections/{id}/questions/{question_id}", h.DetachQuestion)
}

type createCollectionRequest struct {
	TemplateID     *uuid.UUID `json:"template_id"`
	Date           *time.Time `json:"date"`
	LocationID     uuid.UUID  `json:"location_id"`
	OrganisationID uuid.UUID  `json:"organisation_id"`
	ActorID        *uuid.UUID `json:"actor_id"`
	Comments       *string    `json:"comments"`
}

// updateCollectionRequest accepts template_id only to reject changes to it.
type updateCollectionRequest struct {
	TemplateID     *uuid.UUID `json:"template_id"`
	Date           *time.Time `json:"date"`
	LocationID     *uuid.UUID `json:"location_id"`
	OrganisationID *uuid.UUID `json:"organisation_id"`
	ActorID        *uuid.UUID `json:"actor_id"`
	Comments       *string    `json:"comments"`
}

type createCollectionResponse struct {
	Collection      collectionResponse  `json:"collection"`
	Materialization materializeResponse `json:"materialization"`
}

type collectionPageResponse struct {
	Items  []collectionResponse `json:"items"`
	Total  int                  `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

// Create handles POST /collections. Template questions are materialized
// into slots in the same transaction.
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCollectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	res, err := h.svc.CreateCollection(r.Context(), collection.CreateCollectionInput{
		TemplateID:     req.TemplateID,
		Date:           req.Date,
		LocationID:     req.LocationID,
		OrganisationID: req.OrganisationID,
		ActorID:        req.ActorID,
		Comments:       req.Comments,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, createCollectionResponse{
		Collection:      toCollectionResponse(res.Collection),
		Materialization: toMaterializeResponse(res.Slots),
	})
}

// List handles GET /collections?limit=&offset=.
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	offset, err := intQuery(r, "offset", 0)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListCollections(r.Context(), collection.ListCollectionsInput{Limit: limit, Offset: offset})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	items := mapList(page.Items, toCollectionResponse).Items
	writeJSON(w, http.StatusOK, collectionPageResponse{
		Items:  items,
		Total:  page.Total,
		Limit:  limit,
		Offset: offset,
	})
}

// Get handles GET /collections/{id}.
func (h *CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	c, err := h.svc.GetCollection(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCollectionResponse(c))
}

// Update handles PATCH /collections/{id}.
func (h *CollectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req updateCollectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	c, err := h.svc.UpdateCollection(r.Context(), collection.UpdateCollectionInput{
		CollectionID:   id,
		TemplateID:     req.TemplateID,
		Date:           req.Date,
		LocationID:     req.LocationID,
		OrganisationID: req.OrganisationID,
		ActorID:        req.ActorID,
		Comments:       req.Comments,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCollectionResponse(c))
}

// Delete handles DELETE /collections/{id}. Slots are removed with the collection.
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteCollection(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /collections/{id}/history?limit=.
func (h *CollectionHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	records, err := h.svc.History(r.Context(), id, limit)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapList(records, toAuditResponse))
}

// Materialize handles POST /collections/{id}/materialize. Re-running it never
// duplicates slots; it only adds questions attached to the template since.
func (h *CollectionHandler) Materialize(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	res, err := h.materializer.Rematerialize(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMaterializeResponse(res))
}

// AttachQuestion handles PUT /collections/{id}/questions/{question_id}.
func (h *CollectionHandler) AttachQuestion(w http.ResponseWriter, r *http.Request) {
	input, err := slotInput(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	slot, err := h.svc.AttachQuestion(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSlotResponse(slot))
}

// DetachQuestion handles DELETE /collections/{id}/questions/{question_id}.
func (h *CollectionHandler) DetachQuestion(w http.ResponseWriter, r *http.Request) {
	input, err := slotInput(r)
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

func slotInput(r *http.Request) (collection.SlotInput, error) {
	collectionID, err := uuidParam(r, "id")
	if err != nil {
		return collection.SlotInput{}, err
	}
	questionID, err := uuidParam(r, "question_id")
	if err != nil {
		return collection.SlotInput{}, err
	}
	return collection.SlotInput{CollectionID: collectionID, QuestionID: questionID}, nil
}
