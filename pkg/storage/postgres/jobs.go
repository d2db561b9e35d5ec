package postgres

import (
	"brandkit/pkg/storage"
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

// insertClient is an insert-only River client. It has no workers and no
// pool of its own; every insert runs on a caller supplied transaction.
var insertClient = sync.OnceValues(func() (*river.Client[*sql.Tx], error) { //nolint: gochecknoglobals
	return river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
})

// AddJob implements storage.JobStorage. On a transactional handle the job
// becomes visible when the transaction commits; otherwise it is inserted in
// a transaction of its own.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		var inserted bool
		err := p.WithTx(ctx, func(s storage.AllStorage) error {
			var err error
			inserted, err = s.AddJob(ctx, args, opts)

			return err //nolint: wrapcheck
		})

		return inserted, err
	}

	client, err := insertClient()
	if err != nil {
		return false, fmt.Errorf("could not create river insert client: %w", err)
	}

	res, err := client.InsertTx(ctx, tx, args, opts)
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
