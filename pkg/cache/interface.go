// Package cache defines short-lived lookaside caches consulted before
// upstream calls.
package cache

import (
	"brandkit/pkg/domain"
	"context"
)

// Availability caches availability answers of the registrar by canonical
// domain.
//
//go:generate mockgen -package mockcache -source=interface.go -destination=mock/mockcache.go *
type Availability interface {
	// GetAvailability returns the cached entries among domains. Misses are
	// absent from the returned map.
	GetAvailability(ctx context.Context, domains []string) (map[string]domain.Availability, error)
	// SetAvailability stores entries until the cache TTL elapses.
	SetAvailability(ctx context.Context, entries []domain.Availability) error
}
