package rest

//go:generate moq -out question_service_mock_test.go -pkg rest . questionService
//go:generate moq -out template_service_mock_test.go -pkg rest . templateService
//go:generate moq -out collection_service_mock_test.go -pkg rest . collectionService
//go:generate moq -out materialize_service_mock_test.go -pkg rest . materializeService
//go:generate moq -out answer_service_mock_test.go -pkg rest . answerService
//go:generate moq -out language_registry_mock_test.go -pkg rest . languageRegistry

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/datacollect-backend/internal/config"
	"github.com/heartmarshall/datacollect-backend/internal/domain"
	"github.com/heartmarshall/datacollect-backend/internal/metrics"
	"github.com/heartmarshall/datacollect-backend/internal/transport/dataloader"
	"github.com/heartmarshall/datacollect-backend/internal/transport/middleware"
)

const actorToken = "actor-token"

var testActorID = uuid.MustParse("7d1b7c44-7a8e-4f55-9d55-0c7f3c1f0a01")

type staticTokens struct{}

func (staticTokens) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	if token == actorToken {
		return testActorID, nil
	}
	return uuid.Nil, errors.New("invalid token")
}

type fakeQuestionRepo struct {
	questions map[uuid.UUID]domain.Question
}

func (f *fakeQuestionRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Question, error) {
	var out []domain.Question
	for _, id := range ids {
		if q, ok := f.questions[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

type fakeTranslationRepo struct {
	translations []domain.QuestionTranslation
	err          error
}

func (f *fakeTranslationRepo) GetByQuestionIDs(_ context.Context, ids []uuid.UUID, lang string) ([]domain.QuestionTranslation, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []domain.QuestionTranslation
	for _, tr := range f.translations {
		if want[tr.QuestionID] && tr.Language == lang {
			out = append(out, tr)
		}
	}
	return out, nil
}

type pingerStub struct{ err error }

func (p pingerStub) Ping(context.Context) error { return p.err }

// routerDeps holds every collaborator of the router so tests only configure
// the mocks they exercise.
type routerDeps struct {
	questions    *questionServiceMock
	templates    *templateServiceMock
	collections  *collectionServiceMock
	materializer *materializeServiceMock
	answers      *answerServiceMock
	languages    *languageRegistryMock
	questionRepo *fakeQuestionRepo
	translations *fakeTranslationRepo
	answerLimit  middleware.Middleware
	graphql      http.Handler
	registry     *prometheus.Registry
}

func newDeps() *routerDeps {
	return &routerDeps{
		questions:    &questionServiceMock{},
		templates:    &templateServiceMock{},
		collections:  &collectionServiceMock{},
		materializer: &materializeServiceMock{},
		answers:      &answerServiceMock{},
		languages:    &languageRegistryMock{},
		questionRepo: &fakeQuestionRepo{questions: map[uuid.UUID]domain.Question{}},
		translations: &fakeTranslationRepo{},
		registry:     prometheus.NewRegistry(),
	}
}

func (d *routerDeps) router() http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(RouterConfig{
		Logger:      log,
		CORS:        config.CORSConfig{AllowedOrigins: "*"},
		Tokens:      staticTokens{},
		HTTPMetrics: metrics.New(d.registry),
		Gatherer:    d.registry,
		Loaders:     &dataloader.Repos{Question: d.questionRepo, Translation: d.translations},
		AnswerLimit: d.answerLimit,
	}, Handlers{
		Health:     NewHealthHandler(pingerStub{}, "test"),
		Question:   NewQuestionHandler(d.questions, log),
		Template:   NewTemplateHandler(d.templates, log),
		Collection: NewCollectionHandler(d.collections, d.materializer, log),
		Answer:     NewAnswerHandler(d.answers, d.languages, log),
		GraphQL:    d.graphql,
	})
}

// call sends an authenticated request; an empty body sends no body.
func call(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+actorToken)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func ptr[T any](v T) *T { return &v }

func extractJSONField(t *testing.T, body []byte, field string) string {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &m))
	return string(m[field])
}
