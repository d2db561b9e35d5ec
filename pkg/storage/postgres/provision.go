package postgres

import (
	"brandkit/pkg/domain"
	"brandkit/pkg/storage"
	"context"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	provisionsTable = "provisions"
)

func (p *PgSQL) StoreProvision(ctx context.Context, provision domain.Provision) (*domain.Provision, error) {
	var row PgProvision
	if err := row.FromDomain(provision); err != nil {
		return nil, err
	}

	var stored PgProvision
	if _, err := p.Builder.Insert(provisionsTable).
		Rows(row).
		Returning(&PgProvision{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store provision into pg: %w", err)
	}

	return stored.ToDomain()
}

func (p *PgSQL) ProvisionByID(ctx context.Context, id domain.ProvisionID) (*domain.Provision, error) {
	var row PgProvision
	found, err := p.Builder.From(provisionsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch provision by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdateProvision sets only the fields present in updates.
func (p *PgSQL) UpdateProvision(ctx context.Context,
	id domain.ProvisionID,
	updates storage.ProvisionUpdates) (*domain.Provision, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.ContactID != nil {
		rec["contact_id"] = nullString(*updates.ContactID)
	}
	if updates.RegistrationID != nil {
		rec["registration_id"] = nullString(*updates.RegistrationID)
	}
	if updates.ZoneID != nil {
		rec["zone_id"] = nullString(*updates.ZoneID)
	}
	if updates.Steps != nil {
		b, err := json.Marshal(updates.Steps)
		if err != nil {
			return nil, fmt.Errorf("could not marshal steps: %w", err)
		}
		rec["steps"] = b
	}
	if updates.IncrementAttempts {
		rec["attempts"] = goqu.L("attempts + 1")
	}

	var row PgProvision
	found, err := p.Builder.Update(provisionsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgProvision{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update provision in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
