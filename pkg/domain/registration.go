package domain

import "time"

// Registration is the registrar's record of a registered domain. It is
// created once per successful registration and never modified here.
type Registration struct {
	ID           string    `json:"id"`
	Domain       string    `json:"domain"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registeredAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
