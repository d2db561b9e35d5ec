package provisioner

import (
	"brandkit/internal/dns"
	"brandkit/pkg/domain"
	"brandkit/pkg/logger"
	"brandkit/pkg/serrors"
	"brandkit/pkg/storage"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// stepResult is what a step reports back to Run.
type stepResult struct {
	status  domain.StepStatus
	message string
	updates storage.ProvisionUpdates
}

type stepFunc func(ctx context.Context, p *domain.Provision) (stepResult, error)

// Run executes the steps of a provision in order. Steps already done are
// skipped so a retried job resumes after the last completed one. A failing
// step stops the run and marks both the step and the provision failed; the
// error is returned so the caller can decide whether to retry.
func (p *provisioner) Run(ctx context.Context, id domain.ProvisionID) (*domain.Provision, error) {
	ctx = logger.WithFields(ctx, zap.String("provisionId", id.String()))

	provision, err := p.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if provision.Status == domain.ProvisionStatusCompleted {
		return provision, nil
	}

	provision, err = p.update(ctx, id, storage.ProvisionUpdates{
		Status:            domain.ProvisionStatusRunning,
		IncrementAttempts: true,
	})
	if err != nil {
		return nil, err
	}

	steps := map[domain.StepName]stepFunc{
		domain.StepContact:     p.createContact,
		domain.StepRegister:    p.registerDomain,
		domain.StepZone:        p.fetchZone,
		domain.StepEmailPreset: p.applyEmailPreset,
	}

	for i := range provision.Steps {
		step := provision.Steps[i]
		if step.Status.Done() {
			continue
		}
		run, ok := steps[step.Name]
		if !ok {
			return provision, serrors.With(serrors.ErrInternal, "unknown provision step %q", step.Name)
		}

		res, stepErr := run(ctx, provision)
		if stepErr != nil {
			logger.Warn(ctx, "provision step failed", zap.String("step", string(step.Name)), zap.Error(stepErr))

			provision.Steps[i] = domain.Step{
				Name:    step.Name,
				Status:  domain.StepStatusFailed,
				Message: serrors.MessageOf(stepErr),
				Error:   stepErr.Error(),
			}
			failed, err := p.update(ctx, id, storage.ProvisionUpdates{
				Status: domain.ProvisionStatusFailed,
				Steps:  provision.Steps,
			})
			if err != nil {
				return provision, err
			}

			return failed, fmt.Errorf("step %s failed: %w", step.Name, stepErr)
		}

		provision.Steps[i] = domain.Step{Name: step.Name, Status: res.status, Message: res.message}
		res.updates.Steps = provision.Steps
		provision, err = p.update(ctx, id, res.updates)
		if err != nil {
			return nil, err
		}
		logger.Info(ctx, "provision step done", zap.String("step", string(step.Name)), zap.String("status", string(res.status)))
	}

	return p.update(ctx, id, storage.ProvisionUpdates{Status: domain.ProvisionStatusCompleted})
}

func (p *provisioner) update(ctx context.Context,
	id domain.ProvisionID,
	updates storage.ProvisionUpdates) (*domain.Provision, error) {
	res, err := p.storage.UpdateProvision(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update provision: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "provision not found")
	}

	return res, nil
}

func (p *provisioner) createContact(ctx context.Context, provision *domain.Provision) (stepResult, error) {
	contact, err := p.services.Contacts.Create(ctx, provision.Contact)
	if err != nil {
		return stepResult{}, err //nolint: wrapcheck
	}

	return stepResult{
		status:  domain.StepStatusCompleted,
		message: "Contact created",
		updates: storage.ProvisionUpdates{ContactID: &contact.ID},
	}, nil
}

func (p *provisioner) registerDomain(ctx context.Context, provision *domain.Provision) (stepResult, error) {
	reg, err := p.services.Domains.Register(ctx, provision.Domain, provision.ContactID)
	if err != nil {
		return stepResult{}, err //nolint: wrapcheck
	}

	return stepResult{
		status:  domain.StepStatusCompleted,
		message: "Domain registered",
		updates: storage.ProvisionUpdates{RegistrationID: &reg.ID},
	}, nil
}

func (p *provisioner) fetchZone(ctx context.Context, provision *domain.Provision) (stepResult, error) {
	zone, err := p.services.DNS.GetZone(ctx, provision.RegistrationID)
	if err != nil {
		return stepResult{}, err //nolint: wrapcheck
	}

	return stepResult{
		status:  domain.StepStatusCompleted,
		message: "Zone ready",
		updates: storage.ProvisionUpdates{ZoneID: &zone.ID},
	}, nil
}

// applyEmailPreset records a partial preset as done; only a preset where
// every record failed fails the step.
func (p *provisioner) applyEmailPreset(ctx context.Context, provision *domain.Provision) (stepResult, error) {
	res, err := p.services.DNS.AddPreset(ctx, provision.ZoneID, dns.Gmail)
	if err != nil {
		return stepResult{}, err //nolint: wrapcheck
	}

	msg := res.Message(dns.Gmail.Name)
	switch res.Outcome {
	case domain.BulkAllSucceeded:
		return stepResult{status: domain.StepStatusCompleted, message: msg}, nil
	case domain.BulkPartial:
		return stepResult{status: domain.StepStatusPartial, message: msg}, nil
	default:
		return stepResult{}, serrors.With(serrors.ErrUpstream, "%s", msg)
	}
}
