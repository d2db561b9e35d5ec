package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProvisionID uniquely identifies a provisioning run.
type ProvisionID uuid.UUID

// String returns the canonical UUID text of id.
func (id ProvisionID) String() string { return uuid.UUID(id).String() }

// MarshalText implements encoding.TextMarshaler.
func (id ProvisionID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText() //nolint: wrapcheck
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ProvisionID) UnmarshalText(b []byte) error {
	var u uuid.UUID
	if err := u.UnmarshalText(b); err != nil {
		return err //nolint: wrapcheck
	}
	*id = ProvisionID(u)

	return nil
}

// ProvisionStatus is the lifecycle state of a provisioning run.
type ProvisionStatus string

const (
	// ProvisionStatusPending indicates the run is queued.
	ProvisionStatusPending ProvisionStatus = "PENDING"
	// ProvisionStatusRunning indicates a worker is executing the steps.
	ProvisionStatusRunning ProvisionStatus = "RUNNING"
	// ProvisionStatusCompleted indicates every step finished.
	ProvisionStatusCompleted ProvisionStatus = "COMPLETED"
	// ProvisionStatusFailed indicates a step failed; see Steps for which one.
	ProvisionStatusFailed ProvisionStatus = "FAILED"
)

// StepName names one step of the provisioning sequence.
type StepName string

const (
	StepContact     StepName = "contact"
	StepRegister    StepName = "register"
	StepZone        StepName = "zone"
	StepEmailPreset StepName = "email_preset"
)

// StepStatus is the outcome of a single step.
type StepStatus string

const (
	StepStatusPending   StepStatus = "PENDING"
	StepStatusCompleted StepStatus = "COMPLETED"
	StepStatusPartial   StepStatus = "PARTIAL"
	StepStatusFailed    StepStatus = "FAILED"
	StepStatusSkipped   StepStatus = "SKIPPED"
)

// Done reports whether a step in this status must not run again.
func (s StepStatus) Done() bool {
	return s == StepStatusCompleted || s == StepStatusPartial || s == StepStatusSkipped
}

// Step records the outcome of one provisioning step.
type Step struct {
	Name    StepName   `json:"name"`
	Status  StepStatus `json:"status"`
	Message string     `json:"message,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// Provision tracks the contact → registration → zone → email sequence for one
// domain. IDs produced by completed steps are kept so a retried run resumes
// after the last completed step.
type Provision struct {
	ID     ProvisionID     `json:"id"`
	Domain string          `json:"domain"`
	Status ProvisionStatus `json:"status"`

	// Contact is the registrant submitted with the request.
	Contact Contact `json:"contact"`
	// EmailPreset requests the Gmail MX preset once the zone is known.
	EmailPreset bool `json:"emailPreset"`

	ContactID      string `json:"contactId,omitempty"`
	RegistrationID string `json:"registrationId,omitempty"`
	ZoneID         string `json:"zoneId,omitempty"`

	Steps    []Step `json:"steps"`
	Attempts uint   `json:"attempts"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Step returns the step with the given name, or nil.
func (p *Provision) Step(name StepName) *Step {
	for i := range p.Steps {
		if p.Steps[i].Name == name {
			return &p.Steps[i]
		}
	}

	return nil
}
