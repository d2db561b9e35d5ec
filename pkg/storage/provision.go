package storage

import (
	"brandkit/pkg/domain"
	"context"
)

// ProvisionUpdates describes the fields applied to an existing provision.
// Nil pointers and a nil Steps slice leave the stored value unchanged.
type ProvisionUpdates struct {
	// Status is the new status. Empty keeps the current one.
	Status domain.ProvisionStatus
	// ContactID, RegistrationID and ZoneID record IDs produced by steps.
	ContactID      *string
	RegistrationID *string
	ZoneID         *string
	// Steps replaces the stored step outcomes.
	Steps []domain.Step
	// IncrementAttempts bumps the attempts counter by one.
	IncrementAttempts bool
}

// ProvisionStorage persists provisioning runs.
type ProvisionStorage interface {
	// StoreProvision inserts a provision and returns it with its generated
	// fields.
	StoreProvision(ctx context.Context, provision domain.Provision) (*domain.Provision, error)
	// ProvisionByID returns the provision or nil when it does not exist.
	ProvisionByID(ctx context.Context, ID domain.ProvisionID) (*domain.Provision, error)
	// UpdateProvision applies updates and returns the updated row, or nil when
	// the provision does not exist. updated_at is set automatically.
	UpdateProvision(ctx context.Context, ID domain.ProvisionID, updates ProvisionUpdates) (*domain.Provision, error)
}
