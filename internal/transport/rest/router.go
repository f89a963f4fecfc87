// Package rest is the JSON HTTP API of the data-collection engine.
package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/datacollect-backend/internal/config"
	"github.com/heartmarshall/datacollect-backend/internal/transport/dataloader"
	"github.com/heartmarshall/datacollect-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

type httpRecorder interface {
	ObserveHTTPRequest(method, route string, status int, d time.Duration)
}

// RouterConfig carries the cross-cutting dependencies of the router.
type RouterConfig struct {
	Logger      *slog.Logger
	CORS        config.CORSConfig
	Tokens      tokenValidator
	HTTPMetrics httpRecorder
	Gatherer    prometheus.Gatherer
	Loaders     *dataloader.Repos
	// AnswerLimit throttles answer submissions; nil disables throttling.
	AnswerLimit middleware.Middleware
}

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Question   *QuestionHandler
	Template   *TemplateHandler
	Collection *CollectionHandler
	Answer     *AnswerHandler
	// GraphQL serves POST /api/v1/graphql; nil leaves the route unmounted.
	GraphQL http.Handler
}

// NewRouter builds the HTTP handler: health endpoints and /metrics at the root, the
// REST and GraphQL APIs under /api/v1 behind actor authentication.
func NewRouter(cfg RouterConfig, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(),
		middleware.Recovery(cfg.Logger),
		middleware.Logger(cfg.Logger),
		middleware.Instrument(cfg.HTTPMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: codeNotFound, Message: "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: codeBadRequest, Message: "method not allowed"})
	})

	h.Health.Register(r)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(
			chimw.AllowContentType("application/json"),
			middleware.Auth(cfg.Tokens, cfg.Logger),
			dataloader.Middleware(cfg.Loaders),
		)

		h.Question.Register(api)
		h.Template.Register(api)
		h.Collection.Register(api)

		var submit []func(http.Handler) http.Handler
		if cfg.AnswerLimit != nil {
			submit = append(submit, cfg.AnswerLimit)
		}
		h.Answer.Register(api, submit...)

		if h.GraphQL != nil {
			api.Method(http.MethodPost, "/graphql", h.GraphQL)
		}
	})

	return r
}
