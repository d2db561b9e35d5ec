package postgres_test

import (
	"brandkit/pkg/storage/postgres"
	"context"
	"database/sql"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

type txJobArgs struct{}

func (txJobArgs) Kind() string { return "test_tx_job" }

type poolJobArgs struct{}

func (poolJobArgs) Kind() string { return "test_pool_job" }

type uniqueJobArgs struct {
	Key string `json:"key"`
}

func (uniqueJobArgs) Kind() string { return "test_unique_job" }

func countJobs(t *testing.T, kind string) int {
	t.Helper()

	return countRows(t, `SELECT COUNT(*) FROM river_job WHERE kind = $1`, kind)
}

func TestPgSQL_AddJob_InTxVisibleAfterCommit(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	inserted, err := tx.AddJob(ctx, txJobArgs{}, nil)
	require.NoError(t, err)
	require.True(t, inserted)
	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](ctx, t,
		tx.(*postgres.PgSQL).DB.(*sql.Tx), &txJobArgs{}, nil)
	require.Zero(t, countJobs(t, txJobArgs{}.Kind()))

	require.NoError(t, tx.Commit())
	require.Equal(t, 1, countJobs(t, txJobArgs{}.Kind()))
}

func TestPgSQL_AddJob_InTxDiscardedOnRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.AddJob(ctx, txJobArgs{}, nil)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	require.Zero(t, countJobs(t, txJobArgs{}.Kind()))
}

func TestPgSQL_AddJob_OutsideTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	inserted, err := pg.AddJob(ctx, poolJobArgs{}, &river.InsertOpts{MaxAttempts: 3})
	require.NoError(t, err)
	require.True(t, inserted)

	job := rivertest.RequireInserted[*riverdatabasesql.Driver](ctx, t,
		riverdatabasesql.New(pg.DB.(*sql.DB)), &poolJobArgs{}, nil)
	require.Equal(t, 3, job.MaxAttempts)
}

func TestPgSQL_AddJob_UniqueDuplicateSkipped(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	opts := &river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true}}

	inserted, err := pg.AddJob(ctx, uniqueJobArgs{Key: "foo.cv"}, opts)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = pg.AddJob(ctx, uniqueJobArgs{Key: "foo.cv"}, opts)
	require.NoError(t, err)
	require.False(t, inserted)

	require.Equal(t, 1, countJobs(t, uniqueJobArgs{}.Kind()))
}
