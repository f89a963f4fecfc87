package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/datacollect-backend/internal/adapter/langcode"
	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres"
	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres/collection"
	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres/question"
	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres/slot"
	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres/template"
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
	"github.com/heartmarshall/datacollect-backend/internal/transport/graphql"
	"github.com/heartmarshall/datacollect-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/datacollect-backend/internal/transport/middleware"
	"github.com/heartmarshall/datacollect-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and transport, and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		n, migErr := postgres.Migrate(ctx, pool)
		if migErr != nil {
			return migErr
		}
		logger.Info("migrations applied", slog.Int("count", n))
	}

	languages, err := langcode.New(cfg.I18n.Languages())
	if err != nil {
		return fmt.Errorf("language registry: %w", err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := newHandler(cfg, logger, pool, languages, m, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// newHandler builds repositories, services, the GraphQL resolvers and the
// HTTP router on top of pool.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	languages *langcode.Registry,
	m *metrics.Metrics,
	limiter *middleware.RateLimiter,
) http.Handler {
	txm := postgres.NewTxManager(pool)

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
		materializerService, auditRepo, m, txm, cfg.Collection,
	)
	answerService := answersvc.NewService(logger, slotRepo, collectionRepo, auditRepo, txm, m, cfg.Collection)

	resolvers := resolver.NewResolver(
		logger, questionService, templateService, collectionService,
		materializerService, answerService, languages,
	)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return rest.NewRouter(rest.RouterConfig{
		Logger:      logger,
		CORS:        cfg.CORS,
		Tokens:      tokens,
		HTTPMetrics: m,
		Gatherer:    prometheus.DefaultGatherer,
		Loaders:     &dataloader.Repos{Question: questionRepo, Translation: translationRepo},
		AnswerLimit: limiter.Limit(cfg.RateLimit.AnswersPerMinute),
	}, rest.Handlers{
		Health:     rest.NewHealthHandler(pool, Version),
		Question:   rest.NewQuestionHandler(questionService, logger),
		Template:   rest.NewTemplateHandler(templateService, logger),
		Collection: rest.NewCollectionHandler(collectionService, materializerService, logger),
		Answer:     rest.NewAnswerHandler(answerService, languages, logger),
		GraphQL:    graphql.NewHandler(logger, resolvers),
	})
}
