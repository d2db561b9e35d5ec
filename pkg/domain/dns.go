package domain

import "fmt"

// RecordType is a DNS resource record type supported by the registrar.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeMX    RecordType = "MX"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeSRV   RecordType = "SRV"
)

// RecordTypes lists the supported record types in display order.
var RecordTypes = []RecordType{ //nolint: gochecknoglobals
	RecordTypeA, RecordTypeAAAA, RecordTypeCNAME, RecordTypeMX, RecordTypeTXT, RecordTypeSRV,
}

// DefaultTTL is applied to records created without a TTL.
const DefaultTTL = 3600

// DNSRecord is a single record of a zone. ID is empty until the record has
// been created. Priority is mandatory for MX records.
type DNSRecord struct {
	ID       string     `json:"id,omitempty"`
	Type     RecordType `json:"type"`
	Name     string     `json:"name"`
	Content  string     `json:"content"`
	TTL      int        `json:"ttl"`
	Priority *int       `json:"priority,omitempty"`
	Comment  string     `json:"comment"`
}

// Zone is the DNS namespace of one registered domain.
type Zone struct {
	ID       string      `json:"id"`
	DomainID string      `json:"domainId,omitempty"`
	Name     string      `json:"name"`
	Records  []DNSRecord `json:"records,omitempty"`
}

// BulkOutcome summarizes a bulk operation made of independent steps.
type BulkOutcome string

const (
	BulkAllSucceeded BulkOutcome = "all_succeeded"
	BulkPartial      BulkOutcome = "partial"
	BulkAllFailed    BulkOutcome = "all_failed"
)

// FailedRecord is a record a bulk operation could not create.
type FailedRecord struct {
	Record DNSRecord `json:"record"`
	Error  string    `json:"error"`
}

// BulkResult reports every record a bulk insert attempted.
type BulkResult struct {
	Attempted int            `json:"attempted"`
	Created   []DNSRecord    `json:"created"`
	Failed    []FailedRecord `json:"failed,omitempty"`
	Outcome   BulkOutcome    `json:"outcome"`
}

// NewBulkResult builds a BulkResult and derives its outcome.
func NewBulkResult(attempted int, created []DNSRecord, failed []FailedRecord) BulkResult {
	outcome := BulkPartial
	switch {
	case len(created) == attempted:
		outcome = BulkAllSucceeded
	case len(created) == 0:
		outcome = BulkAllFailed
	}
	if created == nil {
		created = []DNSRecord{}
	}

	return BulkResult{Attempted: attempted, Created: created, Failed: failed, Outcome: outcome}
}

// Message describes how many records of the given kind were created.
func (b BulkResult) Message(kind string) string {
	return fmt.Sprintf("Created %d %s DNS records", len(b.Created), kind)
}
