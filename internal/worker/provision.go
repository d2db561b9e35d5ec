package worker

import (
	"brandkit/internal/provisioner"
	"brandkit/pkg/domain"
	"brandkit/pkg/logger"
	"brandkit/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// rateLimitSnooze is how long a job waits after the registrar rate limited it.
const rateLimitSnooze = time.Minute

// ProvisionWorker is a River worker that runs the remaining steps of a
// provision. Errors that a retry cannot fix cancel the job; everything else
// is returned so River retries it with its own backoff.
type ProvisionWorker struct {
	river.WorkerDefaults[provisioner.JobArgs]

	provisioner provisioner.Provisioner
}

// NewProvisionWorker constructs a ProvisionWorker using the provided provisioner.
func NewProvisionWorker(provisioner provisioner.Provisioner) *ProvisionWorker {
	return &ProvisionWorker{provisioner: provisioner}
}

// Work executes a single provisioning job.
func (w *ProvisionWorker) Work(ctx context.Context, job *river.Job[provisioner.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("provisionId", job.Args.ProvisionID))

	id, err := uuid.Parse(job.Args.ProvisionID)
	if err != nil {
		logger.Error(ctx, "invalid provision ID in job", zap.Error(err))

		return river.JobCancel(fmt.Errorf("invalid provision ID: %w", err)) //nolint: wrapcheck
	}

	provision, err := w.provisioner.Run(ctx, domain.ProvisionID(id))
	if err != nil {
		if permanent(err) || (provision == nil && errors.Is(err, serrors.ErrNotFound)) {
			logger.Warn(ctx, "provision cancelled", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in running provision", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			return river.JobSnooze(rateLimitSnooze) //nolint: wrapcheck
		}

		return fmt.Errorf("could not run provision: %w", err)
	}

	logger.Info(ctx, "provision completed", zap.String("domain", provision.Domain))

	return nil
}

// permanent reports whether err will fail again on every retry. A registrar
// 404 is not permanent, the zone of a fresh registration may not exist yet.
func permanent(err error) bool {
	return errors.Is(err, serrors.ErrBadRequest) ||
		errors.Is(err, serrors.ErrNotConfigured)
}
