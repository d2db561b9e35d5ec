package v1handler

import (
	"brandkit/internal/dns"
	"brandkit/pkg/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.DNS.ListRecords(r.Context(), chi.URLParam(r, "zoneId"))
	writeResult(w, r, http.StatusOK, res, "", err)
}

func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req domain.DNSRecord
	if err := decode(w, r, &req); err != nil {
		writeResult(w, r, http.StatusCreated, domain.DNSRecord{}, "", err)

		return
	}

	res, err := h.deps.DNS.CreateRecord(r.Context(), chi.URLParam(r, "zoneId"), req)
	writeResult(w, r, http.StatusCreated, res, "DNS record created", err)
}

// UpdateRecord replaces a record. A "null" body reaches the service as a nil
// record, which it rejects.
func (h *Handler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	var req *domain.DNSRecord
	if err := decode(w, r, &req); err != nil {
		writeResult(w, r, http.StatusOK, domain.DNSRecord{}, "", err)

		return
	}

	res, err := h.deps.DNS.UpdateRecord(r.Context(), chi.URLParam(r, "zoneId"), chi.URLParam(r, "recordId"), req)
	writeResult(w, r, http.StatusOK, res, "DNS record updated", err)
}

func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	err := h.deps.DNS.DeleteRecord(r.Context(), chi.URLParam(r, "zoneId"), chi.URLParam(r, "recordId"))
	if err != nil {
		respond(r.Context(), w, http.StatusOK, domain.Fail[struct{}](err), err)

		return
	}

	respond(r.Context(), w, http.StatusOK, domain.Result[struct{}]{Success: true, Message: "DNS record deleted"}, nil)
}

// AddGmailPreset creates the Gmail MX records. Partial failures still answer
// 200 with the failed records listed next to the created ones.
func (h *Handler) AddGmailPreset(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.DNS.AddPreset(r.Context(), chi.URLParam(r, "zoneId"), dns.Gmail)
	respond(r.Context(), w, http.StatusCreated, domain.BulkResultOf(res, dns.Gmail.Name, err), err)
}
