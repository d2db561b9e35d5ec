package domain

// DefaultCurrency is reported for availability entries the registrar did not
// price.
const DefaultCurrency = "USD"

// Availability describes whether a single canonical domain can be
// registered and at what price.
type Availability struct {
	// Domain is the canonical (lowercase, suffixed) domain name.
	Domain string `json:"domain"`
	// Available reports whether the domain can be registered.
	Available bool `json:"available"`
	// Premium reports whether the registry prices the domain as premium.
	Premium bool `json:"premium"`
	// RegistrationFee is the first-year price, when the registrar quoted one.
	RegistrationFee *float64 `json:"registrationFee,omitempty"`
	// RenewalFee is the yearly renewal price, when the registrar quoted one.
	RenewalFee *float64 `json:"renewalFee,omitempty"`
	// Currency is the ISO currency of the fees.
	Currency string `json:"currency"`
}

// Unavailable is the placeholder used when the registrar returned no entry
// for a requested domain.
func Unavailable(domain string) Availability {
	return Availability{Domain: domain, Available: false, Currency: DefaultCurrency}
}
