package worker

import (
	"brandkit/internal/provisioner"
	"brandkit/pkg/logger"
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the River client started by Start.
type Options struct {
	// MaxWorkers bounds how many provisions run concurrently.
	MaxWorkers int
}

func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	provisioner provisioner.Provisioner,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewProvisionWorker(provisioner))

	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 10
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
