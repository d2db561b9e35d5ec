package dns

import (
	"brandkit/pkg/domain"
	"context"
)

//go:generate mockgen -package mockdns -source=interface.go -destination=mock/mockdns.go *
type Service interface {
	GetZone(ctx context.Context, domainID string) (domain.Zone, error)
	ListRecords(ctx context.Context, zoneID string) ([]domain.DNSRecord, error)
	CreateRecord(ctx context.Context, zoneID string, record domain.DNSRecord) (domain.DNSRecord, error)
	UpdateRecord(ctx context.Context, zoneID, recordID string, record *domain.DNSRecord) (domain.DNSRecord, error)
	DeleteRecord(ctx context.Context, zoneID, recordID string) error
	// AddPreset creates every record of the preset, tolerating individual
	// failures.
	AddPreset(ctx context.Context, zoneID string, preset Preset) (domain.BulkResult, error)
}
