package cvapi

import (
	"brandkit/pkg/domain"
	"brandkit/pkg/registrar"
	"context"
	"net/http"
	"net/url"
)

// CheckDomains implements registrar.Client.
func (c *Client) CheckDomains(ctx context.Context, domains []string) ([]domain.Availability, error) {
	var entries []checkEntry
	if err := c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/domains/check",
		path:     "/domains/check?fees=all",
		body:     checkRequest{Domains: domains},
		out:      &entries,
	}); err != nil {
		return nil, err
	}

	out := make([]domain.Availability, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.toDomain())
	}

	return out, nil
}

// RegisterDomain implements registrar.Client.
func (c *Client) RegisterDomain(ctx context.Context, req registrar.RegisterRequest) (domain.Registration, error) {
	var reg registration
	if err := c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/domains",
		path:     "/domains",
		body: registerRequest{
			Domain:      req.Domain,
			ContactID:   req.ContactID,
			Nameservers: req.Nameservers,
			AutoRenew:   req.AutoRenew,
		},
		out: &reg,
	}); err != nil {
		return domain.Registration{}, err
	}

	return reg.toDomain(), nil
}

// GetDomain implements registrar.Client.
func (c *Client) GetDomain(ctx context.Context, domainID string) (domain.Registration, error) {
	var reg registration
	if err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "/domains/{id}",
		path:     "/domains/" + url.PathEscape(domainID),
		out:      &reg,
	}); err != nil {
		return domain.Registration{}, err
	}

	return reg.toDomain(), nil
}

// CreateContact implements registrar.Client.
func (c *Client) CreateContact(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	var created contactPayload
	if err := c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/contacts",
		path:     "/contacts",
		body:     contactFromDomain(contact),
		out:      &created,
	}); err != nil {
		return domain.Contact{}, err
	}

	return created.toDomain(), nil
}

// GetContact implements registrar.Client.
func (c *Client) GetContact(ctx context.Context, contactID string) (domain.Contact, error) {
	var contact contactPayload
	if err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "/contacts/{id}",
		path:     "/contacts/" + url.PathEscape(contactID),
		out:      &contact,
	}); err != nil {
		return domain.Contact{}, err
	}

	return contact.toDomain(), nil
}

// GetZone implements registrar.Client.
func (c *Client) GetZone(ctx context.Context, domainID string) (domain.Zone, error) {
	var z zone
	if err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "/domains/{id}/zone",
		path:     "/domains/" + url.PathEscape(domainID) + "/zone",
		out:      &z,
	}); err != nil {
		return domain.Zone{}, err
	}

	return z.toDomain(), nil
}

// ListRecords implements registrar.Client.
func (c *Client) ListRecords(ctx context.Context, zoneID string) ([]domain.DNSRecord, error) {
	var records []record
	if err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "/zones/{id}/records",
		path:     "/zones/" + url.PathEscape(zoneID) + "/records",
		out:      &records,
	}); err != nil {
		return nil, err
	}

	return recordsToDomain(records), nil
}

// CreateRecord implements registrar.Client.
func (c *Client) CreateRecord(ctx context.Context, zoneID string, rec domain.DNSRecord) (domain.DNSRecord, error) {
	var created record
	if err := c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/zones/{id}/records",
		path:     "/zones/" + url.PathEscape(zoneID) + "/records",
		body:     recordFromDomain(rec),
		out:      &created,
	}); err != nil {
		return domain.DNSRecord{}, err
	}

	return created.toDomain(), nil
}

// UpdateRecord implements registrar.Client.
func (c *Client) UpdateRecord(ctx context.Context,
	zoneID, recordID string,
	rec domain.DNSRecord) (domain.DNSRecord, error) {
	var updated record
	if err := c.do(ctx, call{
		method:   http.MethodPut,
		endpoint: "/zones/{id}/records/{recordId}",
		path:     "/zones/" + url.PathEscape(zoneID) + "/records/" + url.PathEscape(recordID),
		body:     recordFromDomain(rec),
		out:      &updated,
	}); err != nil {
		return domain.DNSRecord{}, err
	}

	return updated.toDomain(), nil
}

// DeleteRecord implements registrar.Client. The response body, if any, is
// ignored.
func (c *Client) DeleteRecord(ctx context.Context, zoneID, recordID string) error {
	return c.do(ctx, call{
		method:   http.MethodDelete,
		endpoint: "/zones/{id}/records/{recordId}",
		path:     "/zones/" + url.PathEscape(zoneID) + "/records/" + url.PathEscape(recordID),
	})
}
