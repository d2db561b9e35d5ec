package postgres

import (
	"brandkit/pkg/domain"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PgProvision struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Domain      string          `db:"domain"`
	Status      string          `db:"status"`
	Contact     json.RawMessage `db:"contact"`
	EmailPreset bool            `db:"email_preset"`

	ContactID      sql.NullString `db:"contact_id"`
	RegistrationID sql.NullString `db:"registration_id"`
	ZoneID         sql.NullString `db:"zone_id"`

	Steps    json.RawMessage `db:"steps"`
	Attempts uint            `db:"attempts" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (p *PgProvision) ToDomain() (*domain.Provision, error) {
	var contact domain.Contact
	if len(p.Contact) > 0 {
		if err := json.Unmarshal(p.Contact, &contact); err != nil {
			return nil, fmt.Errorf("could not unmarshal provision contact: %w", err)
		}
	}
	var steps []domain.Step
	if len(p.Steps) > 0 {
		if err := json.Unmarshal(p.Steps, &steps); err != nil {
			return nil, fmt.Errorf("could not unmarshal provision steps: %w", err)
		}
	}

	return &domain.Provision{
		ID:             domain.ProvisionID(p.ID),
		Domain:         p.Domain,
		Status:         domain.ProvisionStatus(p.Status),
		Contact:        contact,
		EmailPreset:    p.EmailPreset,
		ContactID:      p.ContactID.String,
		RegistrationID: p.RegistrationID.String,
		ZoneID:         p.ZoneID.String,
		Steps:          steps,
		Attempts:       p.Attempts,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
	}, nil
}

func (p *PgProvision) FromDomain(provision domain.Provision) error {
	contact, err := json.Marshal(provision.Contact)
	if err != nil {
		return fmt.Errorf("could not marshal provision contact: %w", err)
	}
	steps := provision.Steps
	if steps == nil {
		steps = []domain.Step{}
	}
	stepsJSON, err := json.Marshal(steps)
	if err != nil {
		return fmt.Errorf("could not marshal provision steps: %w", err)
	}

	*p = PgProvision{
		ID:             uuid.UUID(provision.ID),
		Domain:         provision.Domain,
		Status:         string(provision.Status),
		Contact:        contact,
		EmailPreset:    provision.EmailPreset,
		ContactID:      nullString(provision.ContactID),
		RegistrationID: nullString(provision.RegistrationID),
		ZoneID:         nullString(provision.ZoneID),
		Steps:          stepsJSON,
		Attempts:       provision.Attempts,
		CreatedAt:      provision.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  provision.UpdatedAt,
			Valid: !provision.UpdatedAt.IsZero(),
		},
	}

	return nil
}
