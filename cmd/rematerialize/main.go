// Command rematerialize re-runs template materialization for existing
// collections, adding slots for questions attached to their template after
// the collection was created. Existing slots and answers are never touched.
//
// Usage:
//
//	rematerialize --actor=<uuid> --collections=<uuid>[,<uuid>...]
//
// The actor is recorded in the audit log of every collection that changes.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres"
	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres/collection"
	"github.com/heartmarshall/datacollect-backend/internal/adapter/postgres/slot"
	"github.com/heartmarshall/datacollect-backend/internal/app"
	"github.com/heartmarshall/datacollect-backend/internal/config"
	"github.com/heartmarshall/datacollect-backend/internal/metrics"
	"github.com/heartmarshall/datacollect-backend/internal/service/materializer"
	"github.com/heartmarshall/datacollect-backend/pkg/ctxutil"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the command and returns the process exit code. Deferred
// cleanup runs before main exits.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("rematerialize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	actorFlag := fs.String("actor", "", "actor id recorded in the audit log")
	collectionsFlag := fs.String("collections", "", "comma-separated collection ids")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	actorID, ids, err := parseFlags(*actorFlag, *collectionsFlag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, "Usage: rematerialize --actor=<uuid> --collections=<uuid>[,<uuid>...]")
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		return 1
	}
	defer pool.Close()

	svc := materializer.NewService(
		logger,
		slot.New(pool),
		collection.New(pool),
		audit.New(pool),
		postgres.NewTxManager(pool),
		metrics.New(prometheus.NewRegistry()),
	)

	ctx = ctxutil.WithActorID(ctx, actorID)

	failed := 0
	for _, id := range ids {
		result, matErr := svc.Rematerialize(ctx, id)
		if matErr != nil {
			failed++
			logger.Error("rematerialize failed",
				slog.String("collection_id", id.String()),
				slog.String("error", matErr.Error()),
			)
			continue
		}
		logger.Info("rematerialized",
			slog.String("collection_id", id.String()),
			slog.Int("expected", result.Expected),
			slog.Int("created", result.Created),
			slog.Int("skipped", result.Skipped()),
		)
	}

	if failed > 0 {
		logger.Error("rematerialize completed with failures", slog.Int("failed", failed), slog.Int("total", len(ids)))
		return 1
	}
	return 0
}

func parseFlags(actor, collections string) (uuid.UUID, []uuid.UUID, error) {
	actorID, err := uuid.Parse(actor)
	if err != nil || actorID == uuid.Nil {
		return uuid.Nil, nil, fmt.Errorf("invalid --actor %q", actor)
	}

	var ids []uuid.UUID
	for _, raw := range strings.Split(collections, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			return uuid.Nil, nil, fmt.Errorf("invalid collection id %q", raw)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return uuid.Nil, nil, fmt.Errorf("--collections is required")
	}
	return actorID, ids, nil
}
