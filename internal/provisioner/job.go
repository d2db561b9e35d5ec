package provisioner

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for a provisioning job submitted to River.
type JobArgs struct {
	// ProvisionID is the provision to run. It is unique so a provision is
	// never processed by two jobs at once.
	ProvisionID string `json:"provisionId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the provision worker.
func (args JobArgs) Kind() string { return "ProvisionDomainJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
