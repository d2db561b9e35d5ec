package cvapi

import (
	"brandkit/pkg/domain"
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// flexString decodes identifiers sent either as JSON strings or numbers.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = ""

		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err //nolint: wrapcheck
		}
		*s = flexString(v)

		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("identifier is neither string nor number: %w", err)
	}
	*s = flexString(n.String())

	return nil
}

// flexFloat decodes prices sent either as JSON numbers or decimal strings.
type flexFloat struct {
	value *float64
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		f.value = nil

		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err //nolint: wrapcheck
		}
		if raw == "" {
			f.value = nil

			return nil
		}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("could not parse price %q: %w", raw, err)
	}
	f.value = &v

	return nil
}

// checkRequest is the body of POST /domains/check.
type checkRequest struct {
	Domains []string `json:"domains"`
}

type checkEntry struct {
	Domain    string `json:"domain"`
	Available bool   `json:"available"`
	Premium   bool   `json:"premium"`
	Fees      struct {
		Registration flexFloat `json:"registration"`
		Renewal      flexFloat `json:"renewal"`
		Currency     string    `json:"currency"`
	} `json:"fees"`
}

func (e checkEntry) toDomain() domain.Availability {
	currency := e.Fees.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	return domain.Availability{
		Domain:          e.Domain,
		Available:       e.Available,
		Premium:         e.Premium,
		RegistrationFee: e.Fees.Registration.value,
		RenewalFee:      e.Fees.Renewal.value,
		Currency:        currency,
	}
}

type contactPayload struct {
	ID           flexString `json:"id,omitempty"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Organization string     `json:"organization,omitempty"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	State        string     `json:"state,omitempty"`
	Postcode     string     `json:"postcode"`
	Country      string     `json:"country"`
}

func contactFromDomain(c domain.Contact) contactPayload {
	return contactPayload{
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Organization: c.Organization,
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		Postcode:     c.Postcode,
		Country:      c.Country,
	}
}

func (c contactPayload) toDomain() domain.Contact {
	return domain.Contact{
		ID:           string(c.ID),
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Organization: c.Organization,
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		Postcode:     c.Postcode,
		Country:      c.Country,
	}
}

type registerRequest struct {
	Domain      string   `json:"domain"`
	ContactID   string   `json:"contact_id"`
	Nameservers []string `json:"nameservers"`
	AutoRenew   bool     `json:"auto_renew"`
}

type registration struct {
	ID           flexString `json:"id"`
	Domain       string     `json:"domain"`
	Status       string     `json:"status"`
	RegisteredAt time.Time  `json:"registered_at"`
	ExpiresAt    time.Time  `json:"expires_at"`
}

func (r registration) toDomain() domain.Registration {
	return domain.Registration{
		ID:           string(r.ID),
		Domain:       r.Domain,
		Status:       r.Status,
		RegisteredAt: r.RegisteredAt,
		ExpiresAt:    r.ExpiresAt,
	}
}

type record struct {
	ID       flexString `json:"id,omitempty"`
	Type     string     `json:"type"`
	Name     string     `json:"name"`
	Content  string     `json:"content"`
	TTL      int        `json:"ttl"`
	Priority *int       `json:"priority,omitempty"`
	Comment  string     `json:"comment"`
}

func recordFromDomain(r domain.DNSRecord) record {
	return record{
		Type:     string(r.Type),
		Name:     r.Name,
		Content:  r.Content,
		TTL:      r.TTL,
		Priority: r.Priority,
		Comment:  r.Comment,
	}
}

func (r record) toDomain() domain.DNSRecord {
	return domain.DNSRecord{
		ID:       string(r.ID),
		Type:     domain.RecordType(r.Type),
		Name:     r.Name,
		Content:  r.Content,
		TTL:      r.TTL,
		Priority: r.Priority,
		Comment:  r.Comment,
	}
}

func recordsToDomain(in []record) []domain.DNSRecord {
	out := make([]domain.DNSRecord, 0, len(in))
	for _, r := range in {
		out = append(out, r.toDomain())
	}

	return out
}

type zone struct {
	ID       flexString `json:"id"`
	DomainID flexString `json:"domain_id"`
	Name     string     `json:"name"`
	Records  []record   `json:"records"`
}

func (z zone) toDomain() domain.Zone {
	var records []domain.DNSRecord
	if len(z.Records) > 0 {
		records = recordsToDomain(z.Records)
	}

	return domain.Zone{
		ID:       string(z.ID),
		DomainID: string(z.DomainID),
		Name:     z.Name,
		Records:  records,
	}
}
