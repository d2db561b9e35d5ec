package v1handler

import (
	"brandkit/pkg/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type checkAvailabilityRequest struct {
	Domains []string `json:"domains"`
}

type registerDomainRequest struct {
	Domain    string `json:"domain"`
	ContactID string `json:"contactId"`
}

// CheckAvailability checks a batch of names in one registrar call.
func (h *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req checkAvailabilityRequest
	if err := decode(w, r, &req); err != nil {
		writeResult[[]domain.Availability](w, r, http.StatusOK, nil, "", err)

		return
	}

	res, err := h.deps.Domains.CheckAvailability(r.Context(), req.Domains)
	writeResult(w, r, http.StatusOK, res, "", err)
}

// CheckSingle checks one name given in the path.
func (h *Handler) CheckSingle(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Domains.CheckSingle(r.Context(), chi.URLParam(r, "domain"))
	writeResult(w, r, http.StatusOK, res, "", err)
}

// RegisterDomain registers a domain for an existing contact.
func (h *Handler) RegisterDomain(w http.ResponseWriter, r *http.Request) {
	var req registerDomainRequest
	if err := decode(w, r, &req); err != nil {
		writeResult(w, r, http.StatusCreated, domain.Registration{}, "", err)

		return
	}

	res, err := h.deps.Domains.Register(r.Context(), req.Domain, req.ContactID)
	writeResult(w, r, http.StatusCreated, res, "Domain registered", err)
}

// GetDomain fetches a registration.
func (h *Handler) GetDomain(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Domains.Get(r.Context(), chi.URLParam(r, "domainId"))
	writeResult(w, r, http.StatusOK, res, "", err)
}

// GetZone fetches the DNS zone of a registered domain.
func (h *Handler) GetZone(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.DNS.GetZone(r.Context(), chi.URLParam(r, "domainId"))
	writeResult(w, r, http.StatusOK, res, "", err)
}
