package worker_test

import (
	"brandkit/internal/provisioner"
	mockprovisioner "brandkit/internal/provisioner/mock"
	"brandkit/internal/worker"
	"brandkit/pkg/domain"
	"brandkit/pkg/logger"
	"brandkit/pkg/serrors"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, provisionID string) *river.Job[provisioner.JobArgs] {
	return &river.Job[provisioner.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   provisioner.JobArgs{ProvisionID: provisionID},
	}
}

func newTestWorker(t *testing.T) (*mockprovisioner.MockProvisioner, *worker.ProvisionWorker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mock := mockprovisioner.NewMockProvisioner(ctrl)

	return mock, worker.NewProvisionWorker(mock)
}

func TestProvisionWorker_Work_Success(t *testing.T) {
	mock, w := newTestWorker(t)
	id := uuid.New()

	mock.EXPECT().Run(gomock.Any(), domain.ProvisionID(id)).
		Return(&domain.Provision{Domain: "acme.cv", Status: domain.ProvisionStatusCompleted}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, id.String())))
}

func TestProvisionWorker_Work_InvalidIDCancels(t *testing.T) {
	_, w := newTestWorker(t)

	err := w.Work(context.Background(), makeJob(2, "not-a-uuid"))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestProvisionWorker_Work_PermanentErrorsCancel(t *testing.T) {
	tests := []struct {
		name      string
		provision *domain.Provision
		err       error
	}{
		{"validation", &domain.Provision{}, serrors.With(serrors.ErrBadRequest, "Missing required fields: email")},
		{"configuration", &domain.Provision{}, serrors.With(serrors.ErrNotConfigured, "Registrar API token not configured")},
		{"provision gone", nil, serrors.With(serrors.ErrNotFound, "provision not found")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, w := newTestWorker(t)
			mock.EXPECT().Run(gomock.Any(), gomock.Any()).Return(tt.provision, tt.err)

			err := w.Work(context.Background(), makeJob(3, uuid.NewString()))
			var cancelErr *river.JobCancelError
			require.ErrorAs(t, err, &cancelErr)
		})
	}
}

func TestProvisionWorker_Work_UpstreamNotFoundRetries(t *testing.T) {
	mock, w := newTestWorker(t)
	mock.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(&domain.Provision{Status: domain.ProvisionStatusFailed},
			serrors.With(serrors.ErrNotFound, "Failed to get DNS zone"))

	err := w.Work(context.Background(), makeJob(4, uuid.NewString()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
}

func TestProvisionWorker_Work_RateLimitedSnoozes(t *testing.T) {
	mock, w := newTestWorker(t)
	mock.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(&domain.Provision{}, serrors.With(serrors.ErrRateLimited, "Failed to register domain"))

	err := w.Work(context.Background(), makeJob(5, uuid.NewString()))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, time.Minute, snoozeErr.Duration)
}

func TestProvisionWorker_Work_GenericErrorWrapped(t *testing.T) {
	mock, w := newTestWorker(t)
	runErr := errors.New("boom")
	mock.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&domain.Provision{}, runErr)

	err := w.Work(context.Background(), makeJob(6, uuid.NewString()))
	require.ErrorIs(t, err, runErr)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "did not expect JobSnoozeError")
}
