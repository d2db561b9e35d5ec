package provisioner

import (
	"brandkit/pkg/domain"
	"context"
)

// Request asks for a domain to be registered for a new contact and its zone
// prepared.
type Request struct {
	Domain      string         `json:"domain"`
	Contact     domain.Contact `json:"contact"`
	EmailPreset bool           `json:"emailPreset"`
}

//go:generate mockgen -package mockprovisioner -source=interface.go -destination=mock/mockprovisioner.go *
type Provisioner interface {
	// Start validates req, stores a pending provision and queues its job.
	Start(ctx context.Context, req Request) (*domain.Provision, error)
	// Run executes the remaining steps of a provision.
	Run(ctx context.Context, ID domain.ProvisionID) (*domain.Provision, error)
	// Get returns a provision or a not-found error.
	Get(ctx context.Context, ID domain.ProvisionID) (*domain.Provision, error)
}
