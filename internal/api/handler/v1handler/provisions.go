package v1handler

import (
	"brandkit/internal/provisioner"
	"brandkit/pkg/domain"
	"brandkit/pkg/serrors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// StartProvision queues a provision and answers 202 with its initial state.
func (h *Handler) StartProvision(w http.ResponseWriter, r *http.Request) {
	var req provisioner.Request
	if err := decode(w, r, &req); err != nil {
		writeResult[*domain.Provision](w, r, http.StatusAccepted, nil, "", err)

		return
	}

	res, err := h.deps.Provisioner.Start(r.Context(), req)
	writeResult(w, r, http.StatusAccepted, res, "Provision queued", err)
}

func (h *Handler) GetProvision(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "provisionId"))
	if err != nil {
		writeResult[*domain.Provision](w, r, http.StatusOK, nil, "",
			serrors.Wrap(serrors.ErrBadRequest, err, "Invalid provision ID"))

		return
	}

	res, err := h.deps.Provisioner.Get(r.Context(), domain.ProvisionID(id))
	writeResult(w, r, http.StatusOK, res, "", err)
}
