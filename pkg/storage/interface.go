// Package storage declares the persistence contract of the provisioning
// workflow: provision rows, River job insertion and transactions spanning
// both. pkg/storage/postgres implements it.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is everything a caller can do on either a pooled or a
// transactional handle.
type AllStorage interface {
	ProvisionStorage
	JobStorage
}

// TxStorage is a handle bound to one transaction. It must not be used after
// Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the pooled handle.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	// Begin opens a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when it returns nil and
	// rolling back otherwise. A provision stored together with its job is
	// never visible without it.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
