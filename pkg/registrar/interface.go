// Package registrar defines the capability contract of a domain registrar:
// availability checks, registrant contacts, registrations and DNS zones.
// Concrete providers live in subpackages.
package registrar

import (
	"brandkit/pkg/domain"
	"brandkit/pkg/serrors"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// RegisterRequest is the payload of a domain registration.
type RegisterRequest struct {
	// Domain is the canonical domain to register.
	Domain string
	// ContactID is the registrant contact created beforehand.
	ContactID string
	// Nameservers delegated for the new domain.
	Nameservers []string
	// AutoRenew enables automatic renewal at expiry.
	AutoRenew bool
}

// APIError is returned when the registrar answered with a non-2xx status.
// Body keeps the raw response so callers can surface the server's own error
// document.
type APIError struct {
	StatusCode int
	Body       json.RawMessage
}

// Error implements the error interface.
func (e *APIError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if body == "" {
		return fmt.Sprintf("registrar responded with status %d", e.StatusCode)
	}

	return fmt.Sprintf("registrar responded with status %d: %s", e.StatusCode, body)
}

// ResponseBody returns the raw body of the failed response.
func (e *APIError) ResponseBody() json.RawMessage { return e.Body }

// Client is the abstraction for registrar providers. Every method performs
// authenticated network I/O and retries transient failures; input validation
// is the caller's job.
//
//go:generate mockgen -package mockregistrar -source=interface.go -destination=mock/mockregistrar.go *
type Client interface {
	// Ready returns a configuration error when the client has no credential.
	// It never performs I/O.
	Ready() error

	// CheckDomains checks availability of the given canonical domains in one
	// batch. Entries may omit Domain when the provider does not echo it.
	CheckDomains(ctx context.Context, domains []string) ([]domain.Availability, error)
	// RegisterDomain registers a domain for an existing contact.
	RegisterDomain(ctx context.Context, req RegisterRequest) (domain.Registration, error)
	// GetDomain fetches a registration by its registrar ID.
	GetDomain(ctx context.Context, domainID string) (domain.Registration, error)

	// CreateContact creates a registrant contact.
	CreateContact(ctx context.Context, contact domain.Contact) (domain.Contact, error)
	// GetContact fetches a contact by ID.
	GetContact(ctx context.Context, contactID string) (domain.Contact, error)

	// GetZone fetches the DNS zone of a registered domain.
	GetZone(ctx context.Context, domainID string) (domain.Zone, error)
	// ListRecords lists the records of a zone.
	ListRecords(ctx context.Context, zoneID string) ([]domain.DNSRecord, error)
	// CreateRecord adds a record to a zone.
	CreateRecord(ctx context.Context, zoneID string, record domain.DNSRecord) (domain.DNSRecord, error)
	// UpdateRecord replaces a record of a zone.
	UpdateRecord(ctx context.Context, zoneID, recordID string, record domain.DNSRecord) (domain.DNSRecord, error)
	// DeleteRecord removes a record from a zone.
	DeleteRecord(ctx context.Context, zoneID, recordID string) error
}

// WrapError attaches a semantic kind to a failed registrar call. Errors that
// already carry a configuration kind keep it. 404 responses become
// serrors.ErrNotFound, 409 serrors.ErrConflict, 429 serrors.ErrRateLimited;
// every other failure is serrors.ErrUpstream. msg is the generic text
// reported to callers.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, serrors.ErrNotConfigured) {
		return err
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusNotFound:
			return serrors.Wrap(serrors.ErrNotFound, err, "%s", msg)
		case http.StatusConflict:
			return serrors.Wrap(serrors.ErrConflict, err, "%s", msg)
		case http.StatusTooManyRequests:
			return serrors.Wrap(serrors.ErrRateLimited, err, "%s", msg)
		}
	}

	return serrors.Wrap(serrors.ErrUpstream, err, "%s", msg)
}
