package brand

import (
	"brandkit/pkg/domain"
	"regexp"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

var (
	brandNameRegex = regexp.MustCompile(`^[A-Za-z0-9 ]+$`) //nolint: gochecknoglobals

	errNoArray      = errors.New("response contains no JSON array")
	errInvalidArray = errors.New("response array is not valid JSON")
)

const (
	maxBrandNameWords = 2
	maxTaglineWords   = 10
)

// extractArray returns the text between the first '[' and the last ']'.
func extractArray(text string) (string, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end < start {
		return "", errNoArray
	}

	return text[start : end+1], nil
}

// parseIdentities decodes an array of brand objects. Unknown keys are
// ignored and fields of an unexpected type are left empty.
func parseIdentities(raw string) ([]domain.BrandIdentity, error) {
	if !jx.Valid([]byte(raw)) {
		return nil, errInvalidArray
	}

	var out []domain.BrandIdentity
	d := jx.DecodeStr(raw)
	err := d.Arr(func(d *jx.Decoder) error {
		if d.Next() != jx.Object {
			return d.Skip()
		}

		var b domain.BrandIdentity
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "brandName":
				return decodeString(d, &b.BrandName)
			case "tagline":
				return decodeString(d, &b.Tagline)
			case "colors":
				return decodeColors(d, &b.Colors)
			default:
				return d.Skip()
			}
		}); err != nil {
			return err
		}
		out = append(out, b)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode brand identities")
	}

	return out, nil
}

func decodeColors(d *jx.Decoder, c *domain.BrandColors) error {
	if d.Next() != jx.Object {
		return d.Skip()
	}

	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "primary":
			return decodeString(d, &c.Primary)
		case "accent":
			return decodeString(d, &c.Accent)
		case "neutral":
			return decodeString(d, &c.Neutral)
		default:
			return d.Skip()
		}
	})
}

func decodeString(d *jx.Decoder, dst *string) error {
	if d.Next() != jx.String {
		return d.Skip()
	}
	s, err := d.Str()
	if err != nil {
		return err
	}
	*dst = s

	return nil
}

// Acceptable reports whether a generated identity is usable as a domain
// friendly brand: a one or two word alphanumeric name and a tagline of at
// most ten words.
func Acceptable(b domain.BrandIdentity) bool {
	name := strings.TrimSpace(b.BrandName)
	words := len(strings.Fields(name))
	if words < 1 || words > maxBrandNameWords || !brandNameRegex.MatchString(name) {
		return false
	}

	return len(strings.Fields(b.Tagline)) <= maxTaglineWords
}

func filter(in []domain.BrandIdentity) []domain.BrandIdentity {
	out := make([]domain.BrandIdentity, 0, len(in))
	for _, b := range in {
		if Acceptable(b) {
			b.BrandName = strings.TrimSpace(b.BrandName)
			b.Tagline = strings.TrimSpace(b.Tagline)
			out = append(out, b)
		}
	}

	return out
}
