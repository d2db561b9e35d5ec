package dns

import (
	"brandkit/pkg/domain"
	"brandkit/pkg/serrors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New() //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	errRecordFields = serrors.With(serrors.ErrBadRequest, "Type, name, and content are required")
	errRecordType   = serrors.With(serrors.ErrBadRequest,
		"Invalid record type. Must be one of: %s", strings.Join(recordTypeNames(), ", "))
	errMXPriority = serrors.With(serrors.ErrBadRequest, "Priority is required for MX records")

	recordTypeRule = "oneof=" + strings.Join(recordTypeNames(), " ")
)

func recordTypeNames() []string {
	out := make([]string, len(domain.RecordTypes))
	for i, t := range domain.RecordTypes {
		out[i] = string(t)
	}

	return out
}

type recordFields struct {
	Type    string `validate:"required"`
	Name    string `validate:"required"`
	Content string `validate:"required"`
}

type recordPriority struct {
	Type     string
	Priority *int `validate:"required_if=Type MX"`
}

// Validate checks a record before it is sent to the registrar: type, name
// and content must be present, the type must be supported and MX records
// need a priority.
func Validate(record domain.DNSRecord) error {
	if err := validate.Struct(recordFields{
		Type:    strings.TrimSpace(string(record.Type)),
		Name:    strings.TrimSpace(record.Name),
		Content: strings.TrimSpace(record.Content),
	}); err != nil {
		return errRecordFields
	}
	if err := validate.Var(string(record.Type), recordTypeRule); err != nil {
		return errRecordType
	}
	if err := validate.Struct(recordPriority{Type: string(record.Type), Priority: record.Priority}); err != nil {
		return errMXPriority
	}

	return nil
}
