//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/datacollect-backend/internal/adapter/langcode"
	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres"
	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres/collection"
	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres/question"
	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres/slot"
	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres/template"
	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres/translation"
	"github.com/heartmarshall/datacollect-backend/internal/auth"
	"github.com/heartmarshall/datacollect-backend/internal/config"
	"github.com/heartmarshall/datacollect-backend/internal/metrics"
	answersvc "github.com/heartmarshall/datacollect-backend/internal/service/answer"
	collectionsvc "github.com/heartmarshall/datacollect-backend/internal/service/collection"
	"github.com/heartmarshall/datacollect-backend/internal/service/materializer"
	questionsvc "github.com/heartmarshall/datacollect-backend/internal/service/question"
	templatesvc "github.com/heartmarshall/datacollect-backend/internal/service/template"
	"github.com/heartmarshall/datacollect-backend/internal/transport/dataloader"
	gqlpkg "github.com/heartmarshall/datacollect-backend/internal/transport/graphql"
	"github.com/heartmarshall/datacollect-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/datacollect-backend/internal/transport/middleware"
	"github.com/heartmarshall/datacollect-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	tokens *auth.TokenManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

type serverOptions struct {
	answersPerMinute int
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	return setupTestServerWith(t, serverOptions{answersPerMinute: 1000})
}

func setupTestServerWith(t *testing.T, opts serverOptions) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	collectionCfg := config.CollectionConfig{
		MaxAnswersPerSubmission: 500,
		MaxAnswerBytes:          65536,
		DefaultPageSize:         50,
		MaxPageSize:             200,
	}

	languages, err := langcode.New(nil)
	require.NoError(t, err)

	questionRepo := question.New(pool)
	translationRepo := translation.New(pool)
	templateRepo := template.New(pool)
	collectionRepo := collection.New(pool)
	slotRepo := slot.New(pool)
	auditRepo := audit.New(pool)

	questionService := questionsvc.NewService(logger, questionRepo, translationRepo, languages, auditRepo, txm)
	templateService := templatesvc.NewService(logger, templateRepo, questionRepo, auditRepo, txm)
	materializerService := materializer.NewService(logger, slotRepo, collectionRepo, auditRepo, txm, m)
	collectionService := collectionsvc.NewService(
		logger, collectionRepo, slotRepo, questionRepo, templateRepo,
		materializerService, auditRepo, m, txm, collectionCfg,
	)
	answerService := answersvc.NewService(logger, slotRepo, collectionRepo, auditRepo, txm, m, collectionCfg)

	resolvers := resolver.NewResolver(
		logger, questionService, templateService, collectionService,
		materializerService, answerService, languages,
	)

	tokens := auth.NewTokenManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := rest.NewRouter(rest.RouterConfig{
		Logger:      logger,
		CORS:        config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT,PATCH,DELETE", AllowedHeaders: "Authorization,Content-Type"},
		Tokens:      tokens,
		HTTPMetrics: m,
		Gatherer:    registry,
		Loaders:     &dataloader.Repos{Question: questionRepo, Translation: translationRepo},
		AnswerLimit: limiter.Limit(opts.answersPerMinute),
	}, rest.Handlers{
		Health:     rest.NewHealthHandler(pool, "e2e"),
		Question:   rest.NewQuestionHandler(questionService, logger),
		Template:   rest.NewTemplateHandler(templateService, logger),
		Collection: rest.NewCollectionHandler(collectionService, materializerService, logger),
		Answer:     rest.NewAnswerHandler(answerService, languages, logger),
		GraphQL:    gqlpkg.NewHandler(logger, resolvers),
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		tokens: tokens,
	}
}

// newActor issues a token for a fresh actor id.
func (ts *testServer) newActor(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	actorID := uuid.New()
	token, err := ts.tokens.IssueToken(actorID)
	require.NoError(t, err)
	return actorID, token
}

// ---------------------------------------------------------------------------
// HTTP helpers
// ---------------------------------------------------------------------------

// do sends a request to /api/v1+path. body is JSON-encoded unless nil.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+"/api/v1"+path, rdr)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

// mustDo is do that requires the expected status and decodes the body into a map.
func (ts *testServer) mustDo(t *testing.T, want int, method, path string, body any, token string) map[string]any {
	t.Helper()
	status, raw := ts.do(t, method, path, body, token)
	require.Equal(t, want, status, "%s %s: %s", method, path, raw)
	if len(raw) == 0 {
		return nil
	}
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m), "body: %s", raw)
	return m
}

// gqlResponse is the GraphQL response envelope.
type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message    string         `json:"message"`
		Path       []any          `json:"path"`
		Extensions map[string]any `json:"extensions"`
	} `json:"errors"`
}

// graphql posts a query to /api/v1/graphql and decodes the envelope.
func (ts *testServer) graphql(t *testing.T, token, query string, variables map[string]any) gqlResponse {
	t.Helper()
	status, raw := ts.do(t, http.MethodPost, "/graphql", map[string]any{
		"query":     query,
		"variables": variables,
	}, token)
	require.Equal(t, http.StatusOK, status, "graphql: %s", raw)

	var resp gqlResponse
	require.NoError(t, json.Unmarshal(raw, &resp), "body: %s", raw)
	return resp
}

func errorCode(t *testing.T, raw []byte) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp), "body: %s", raw)
	return resp.Error
}

func items(t *testing.T, m map[string]any) []map[string]any {
	t.Helper()
	raw, ok := m["items"].([]any)
	require.True(t, ok, "expected items array")
	out := make([]map[string]any, len(raw))
	for i, it := range raw {
		out[i] = it.(map[string]any)
	}
	return out
}

// createQuestion creates a question and returns its id.
func (ts *testServer) createQuestion(t *testing.T, token, text string) string {
	t.Helper()
	q := ts.mustDo(t, http.StatusCreated, http.MethodPost, "/questions", map[string]any{
		"text":  text,
		"model": map[string]any{"type": "string"},
	}, token)
	return q["id"].(string)
}

// createTemplate creates a template with the given questions attached in order.
func (ts *testServer) createTemplate(t *testing.T, token, name string, questionIDs ...string) string {
	t.Helper()
	tpl := ts.mustDo(t, http.StatusCreated, http.MethodPost, "/templates", map[string]any{
		"name":   name,
		"public": true,
	}, token)
	id := tpl["id"].(string)
	for _, qid := range questionIDs {
		ts.mustDo(t, http.StatusNoContent, http.MethodPut, "/templates/"+id+"/questions/"+qid, nil, token)
	}
	return id
}

func collectionBody(templateID string) map[string]any {
	body := map[string]any{
		"location_id":     uuid.NewString(),
		"organisation_id": uuid.NewString(),
	}
	if templateID != "" {
		body["template_id"] = templateID
	}
	return body
}
