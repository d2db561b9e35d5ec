package v1handler

import (
	"brandkit/pkg/domain"
	"net/http"
)

type generateBrandRequest struct {
	Bio  string `json:"bio"`
	Name string `json:"name"`
}

func (h *Handler) GenerateBrand(w http.ResponseWriter, r *http.Request) {
	var req generateBrandRequest
	if err := decode(w, r, &req); err != nil {
		writeResult[[]domain.BrandIdentity](w, r, http.StatusOK, nil, "", err)

		return
	}

	res, err := h.deps.Brand.Generate(r.Context(), req.Bio, req.Name)
	if res == nil && err == nil {
		res = []domain.BrandIdentity{}
	}
	writeResult(w, r, http.StatusOK, res, "", err)
}
