package brand

import (
	"brandkit/pkg/domain"
	"context"
)

//go:generate mockgen -package mockbrand -source=interface.go -destination=mock/mockbrand.go *
type Generator interface {
	Generate(ctx context.Context, bio, name string) ([]domain.BrandIdentity, error)
}
