package v1handler

import (
	"brandkit/pkg/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req domain.Contact
	if err := decode(w, r, &req); err != nil {
		writeResult(w, r, http.StatusCreated, domain.Contact{}, "", err)

		return
	}

	res, err := h.deps.Contacts.Create(r.Context(), req)
	writeResult(w, r, http.StatusCreated, res, "Contact created", err)
}

func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Contacts.Get(r.Context(), chi.URLParam(r, "contactId"))
	writeResult(w, r, http.StatusOK, res, "", err)
}
