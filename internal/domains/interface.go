package domains

import (
	"brandkit/pkg/domain"
	"context"
)

//go:generate mockgen -package mockdomains -source=interface.go -destination=mock/mockdomains.go *
type Service interface {
	CheckAvailability(ctx context.Context, domains []string) ([]domain.Availability, error)
	CheckSingle(ctx context.Context, name string) (domain.Availability, error)
	Register(ctx context.Context, name, contactID string) (domain.Registration, error)
	Get(ctx context.Context, domainID string) (domain.Registration, error)
}
