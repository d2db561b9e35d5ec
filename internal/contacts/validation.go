package contacts

import (
	"brandkit/pkg/domain"
	"brandkit/pkg/serrors"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate   = validator.New(validator.WithRequiredStructEnabled()) //nolint: gochecknoglobals
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)    //nolint: gochecknoglobals

	errInvalidEmail = serrors.With(serrors.ErrBadRequest, "Invalid email format") //nolint: gochecknoglobals
)

func init() {
	// report fields by their JSON names
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	if err := validate.RegisterValidation("contactemail", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic("could not register contactemail validation: " + err.Error())
	}
}

// contactInput mirrors domain.Contact with the registrar's presence rules.
type contactInput struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
	Address  string `json:"address"  validate:"required"`
	City     string `json:"city"     validate:"required"`
	Postcode string `json:"postcode" validate:"required"`
	Country  string `json:"country"  validate:"required"`
}

// Trim returns c with surrounding whitespace removed from every field.
func Trim(c domain.Contact) domain.Contact {
	return domain.Contact{
		ID:           strings.TrimSpace(c.ID),
		Name:         strings.TrimSpace(c.Name),
		Email:        strings.TrimSpace(c.Email),
		Phone:        strings.TrimSpace(c.Phone),
		Organization: strings.TrimSpace(c.Organization),
		Address:      strings.TrimSpace(c.Address),
		City:         strings.TrimSpace(c.City),
		State:        strings.TrimSpace(c.State),
		Postcode:     strings.TrimSpace(c.Postcode),
		Country:      strings.TrimSpace(c.Country),
	}
}

// Validate checks a trimmed contact. Every missing required field is listed
// in a single error; the email format is checked only once all fields are
// present.
func Validate(c domain.Contact) error {
	err := validate.Struct(contactInput{
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Address:  c.Address,
		City:     c.City,
		Postcode: c.Postcode,
		Country:  c.Country,
	})
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return serrors.Wrap(serrors.ErrInternal, err, "could not validate contact")
		}

		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, fe.Field())
		}

		return serrors.With(serrors.ErrBadRequest, "Missing required fields: %s", strings.Join(missing, ", "))
	}

	if err := validate.Var(c.Email, "contactemail"); err != nil {
		return errInvalidEmail
	}

	return nil
}
