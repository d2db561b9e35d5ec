package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already bound to
	// a transaction.
	ErrAlreadyInTx = errors.New("storage is already in a transaction")
	// ErrNotInTx is returned by Commit and Rollback on a handle that is not
	// bound to a transaction.
	ErrNotInTx = errors.New("storage is not in a transaction")
)
