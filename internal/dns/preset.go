package dns

import "brandkit/pkg/domain"

// Preset is a named set of records created together.
type Preset struct {
	Name    string
	Records []domain.DNSRecord
}

func mx(host string, priority int) domain.DNSRecord {
	return domain.DNSRecord{
		Type:     domain.RecordTypeMX,
		Name:     "@",
		Content:  host,
		TTL:      domain.DefaultTTL,
		Priority: &priority,
	}
}

// Gmail routes mail for the zone apex to Google Workspace.
var Gmail = Preset{ //nolint: gochecknoglobals
	Name: "Gmail",
	Records: []domain.DNSRecord{
		mx("aspmx.l.google.com", 1),
		mx("alt1.aspmx.l.google.com", 5),
		mx("alt2.aspmx.l.google.com", 5),
		mx("alt3.aspmx.l.google.com", 10),
		mx("alt4.aspmx.l.google.com", 10),
	},
}
