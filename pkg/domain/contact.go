package domain

// Contact is a registrant contact as stored by the registrar. Organization
// and State are optional; every other field is mandatory.
type Contact struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization,omitempty"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	Postcode     string `json:"postcode"`
	Country      string `json:"country"`
}
