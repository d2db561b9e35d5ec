// Package dns manages the zones and records of registered domains.
package dns

import (
	"brandkit/pkg/domain"
	"brandkit/pkg/logger"
	"brandkit/pkg/metrics"
	"brandkit/pkg/registrar"
	"brandkit/pkg/serrors"
	"context"
	"strings"

	"go.uber.org/zap"
)

//nolint: gochecknoglobals
var (
	errZoneIDRequired   = serrors.With(serrors.ErrBadRequest, "Zone ID is required")
	errDomainIDRequired = serrors.With(serrors.ErrBadRequest, "Domain ID is required")
	errUpdateParams     = serrors.With(serrors.ErrBadRequest, "Zone ID, record ID, and record are required")
	errDeleteParams     = serrors.With(serrors.ErrBadRequest, "Zone ID and record ID are required")
)

type service struct {
	client registrar.Client
}

// New creates a dns Service backed by client.
func New(client registrar.Client) Service {
	return &service{client: client}
}

func (s *service) GetZone(ctx context.Context, domainID string) (domain.Zone, error) {
	if err := s.client.Ready(); err != nil {
		return domain.Zone{}, err //nolint: wrapcheck
	}
	domainID = strings.TrimSpace(domainID)
	if domainID == "" {
		return domain.Zone{}, errDomainIDRequired
	}

	z, err := s.client.GetZone(ctx, domainID)
	if err != nil {
		return domain.Zone{}, registrar.WrapError(err, "Failed to get DNS zone")
	}

	return z, nil
}

func (s *service) ListRecords(ctx context.Context, zoneID string) ([]domain.DNSRecord, error) {
	if err := s.client.Ready(); err != nil {
		return nil, err //nolint: wrapcheck
	}
	zoneID = strings.TrimSpace(zoneID)
	if zoneID == "" {
		return nil, errZoneIDRequired
	}

	records, err := s.client.ListRecords(ctx, zoneID)
	if err != nil {
		return nil, registrar.WrapError(err, "Failed to list DNS records")
	}
	if records == nil {
		records = []domain.DNSRecord{}
	}

	return records, nil
}

// CreateRecord validates record, applies the default TTL and creates it.
func (s *service) CreateRecord(ctx context.Context, zoneID string, record domain.DNSRecord) (domain.DNSRecord, error) {
	if err := s.client.Ready(); err != nil {
		return domain.DNSRecord{}, err //nolint: wrapcheck
	}
	zoneID = strings.TrimSpace(zoneID)
	if zoneID == "" {
		return domain.DNSRecord{}, errZoneIDRequired
	}
	if err := Validate(record); err != nil {
		return domain.DNSRecord{}, err
	}

	return s.create(ctx, zoneID, record)
}

func (s *service) create(ctx context.Context, zoneID string, record domain.DNSRecord) (domain.DNSRecord, error) {
	record.ID = ""
	if record.TTL <= 0 {
		record.TTL = domain.DefaultTTL
	}

	created, err := s.client.CreateRecord(ctx, zoneID, record)
	if err != nil {
		return domain.DNSRecord{}, registrar.WrapError(err, "Failed to create DNS record")
	}

	return created, nil
}

func (s *service) UpdateRecord(ctx context.Context,
	zoneID, recordID string,
	record *domain.DNSRecord) (domain.DNSRecord, error) {
	if err := s.client.Ready(); err != nil {
		return domain.DNSRecord{}, err //nolint: wrapcheck
	}
	zoneID, recordID = strings.TrimSpace(zoneID), strings.TrimSpace(recordID)
	if zoneID == "" || recordID == "" || record == nil {
		return domain.DNSRecord{}, errUpdateParams
	}

	updated, err := s.client.UpdateRecord(ctx, zoneID, recordID, *record)
	if err != nil {
		return domain.DNSRecord{}, registrar.WrapError(err, "Failed to update DNS record")
	}

	return updated, nil
}

func (s *service) DeleteRecord(ctx context.Context, zoneID, recordID string) error {
	if err := s.client.Ready(); err != nil {
		return err //nolint: wrapcheck
	}
	zoneID, recordID = strings.TrimSpace(zoneID), strings.TrimSpace(recordID)
	if zoneID == "" || recordID == "" {
		return errDeleteParams
	}

	if err := s.client.DeleteRecord(ctx, zoneID, recordID); err != nil {
		return registrar.WrapError(err, "Failed to delete DNS record")
	}

	return nil
}

// AddPreset creates the preset's records one after another. A failing
// record is logged and skipped; the remaining ones are still attempted.
// The returned error is only set when nothing could be attempted.
func (s *service) AddPreset(ctx context.Context, zoneID string, preset Preset) (domain.BulkResult, error) {
	if err := s.client.Ready(); err != nil {
		return domain.BulkResult{}, err //nolint: wrapcheck
	}
	zoneID = strings.TrimSpace(zoneID)
	if zoneID == "" {
		return domain.BulkResult{}, errZoneIDRequired
	}

	ctx = logger.WithFields(ctx, zap.String("zoneId", zoneID), zap.String("preset", preset.Name))

	var (
		created []domain.DNSRecord
		failed  []domain.FailedRecord
	)
	for _, record := range preset.Records {
		rec, err := s.create(ctx, zoneID, record)
		if err != nil {
			logger.Warn(ctx, "could not create preset record",
				zap.String("content", record.Content),
				zap.Error(err))
			metrics.PresetRecords.WithLabelValues(preset.Name, "failed").Inc()
			failed = append(failed, domain.FailedRecord{Record: record, Error: err.Error()})

			continue
		}
		metrics.PresetRecords.WithLabelValues(preset.Name, "created").Inc()
		created = append(created, rec)
	}

	res := domain.NewBulkResult(len(preset.Records), created, failed)
	logger.Info(ctx, "preset applied",
		zap.Int("created", len(res.Created)),
		zap.Int("failed", len(res.Failed)),
		zap.String("outcome", string(res.Outcome)))

	return res, nil
}
