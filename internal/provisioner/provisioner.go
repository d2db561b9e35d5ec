// Package provisioner sequences contact creation, domain registration and
// zone setup for one domain as a resumable background job.
package provisioner

import (
	"brandkit/internal/config"
	"brandkit/internal/contacts"
	"brandkit/internal/dns"
	"brandkit/internal/domains"
	"brandkit/pkg/domain"
	"brandkit/pkg/logger"
	"brandkit/pkg/serrors"
	"brandkit/pkg/storage"
	"context"
	"fmt"

	"go.uber.org/zap"
)

var errDomainRequired = serrors.With(serrors.ErrBadRequest, "Domain is required") //nolint: gochecknoglobals

// Readiness reports whether the registrar credentials are configured.
type Readiness interface {
	Ready() error
}

// Services are the operations a provision is made of.
type Services struct {
	Registrar Readiness
	Contacts  contacts.Service
	Domains   domains.Service
	DNS       dns.Service
}

// Options configure how provisioning jobs are enqueued.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker
	// makes before giving up on a provision.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Worker.MaxAttempts,
	}
}

type provisioner struct {
	options  Options
	storage  storage.Storage
	services Services
}

// New creates a Provisioner backed by the provided storage and services.
func New(storage storage.Storage, services Services, options Options) Provisioner {
	return &provisioner{
		options:  options,
		storage:  storage,
		services: services,
	}
}

// Start validates the request up front so invalid provisions never reach the
// queue, then stores the provision and its job in one transaction.
func (p *provisioner) Start(ctx context.Context, req Request) (*domain.Provision, error) {
	if err := p.services.Registrar.Ready(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	name := domains.Normalize(req.Domain)
	if name == "" {
		return nil, errDomainRequired
	}
	contact := contacts.Trim(req.Contact)
	contact.ID = ""
	if err := contacts.Validate(contact); err != nil {
		return nil, err //nolint: wrapcheck
	}

	presetStatus := domain.StepStatusSkipped
	if req.EmailPreset {
		presetStatus = domain.StepStatusPending
	}

	var provision *domain.Provision
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreProvision(ctx, domain.Provision{
			Domain:      name,
			Status:      domain.ProvisionStatusPending,
			Contact:     contact,
			EmailPreset: req.EmailPreset,
			Steps: []domain.Step{
				{Name: domain.StepContact, Status: domain.StepStatusPending},
				{Name: domain.StepRegister, Status: domain.StepStatusPending},
				{Name: domain.StepZone, Status: domain.StepStatusPending},
				{Name: domain.StepEmailPreset, Status: presetStatus},
			},
		})
		if err != nil {
			return fmt.Errorf("could not store provision: %w", err)
		}
		provision = stored

		if _, err := tx.AddJob(ctx, JobArgs{
			ProvisionID: stored.ID.String(),
			maxAttempts: p.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not start provision: %w", err)
	}

	logger.Info(ctx, "provision queued",
		zap.String("provisionId", provision.ID.String()),
		zap.String("domain", provision.Domain))

	return provision, nil
}

// Get fetches a single provision by ID.
func (p *provisioner) Get(ctx context.Context, id domain.ProvisionID) (*domain.Provision, error) {
	res, err := p.storage.ProvisionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get provision: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "provision not found")
	}

	return res, nil
}
