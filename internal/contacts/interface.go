package contacts

import (
	"brandkit/pkg/domain"
	"context"
)

//go:generate mockgen -package mockcontacts -source=interface.go -destination=mock/mockcontacts.go *
type Service interface {
	Create(ctx context.Context, contact domain.Contact) (domain.Contact, error)
	Get(ctx context.Context, contactID string) (domain.Contact, error)
}
