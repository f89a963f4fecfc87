package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// checkTimeout bounds every dependency check.
const checkTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the health endpoints.
type HealthHandler struct {
	deps    map[string]pinger
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler. db is reported as the
// "database" component.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{
		deps:    map[string]pinger{"database": db},
		version: version,
		now:     time.Now,
	}
}

// Register mounts /live, /ready and /health on r.
func (h *HealthHandler) Register(r chi.Router) {
	r.Get("/live", h.Live)
	r.Get("/ready", h.Ready)
	r.Get("/health", h.Health)
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentStatus is the state of one dependency.
type ComponentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always reports ok while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready reports 503 until every dependency answers.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.check(r.Context())
	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: h.now()})
}

// Health reports every dependency with its latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())
	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) (map[string]ComponentStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	components := make(map[string]ComponentStatus, len(h.deps))
	healthy := true
	for name, dep := range h.deps {
		start := time.Now()
		if err := dep.Ping(ctx); err != nil {
			components[name] = ComponentStatus{Status: "down", Error: err.Error()}
			healthy = false
			continue
		}
		components[name] = ComponentStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return components, healthy
}
