package v1handler

import (
	"brandkit/internal/brand"
	"brandkit/internal/contacts"
	"brandkit/internal/dns"
	"brandkit/internal/domains"
	"brandkit/internal/provisioner"
	"brandkit/pkg/domain"
	"brandkit/pkg/logger"
	"brandkit/pkg/serrors"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies read by the handlers.
const maxBodyBytes = 1 << 20

// Deps are the services the v1 routes are backed by.
type Deps struct {
	Domains     domains.Service
	Contacts    contacts.Service
	DNS         dns.Service
	Brand       brand.Generator
	Provisioner provisioner.Provisioner
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers every v1 route on r. Paths are relative to the v1 prefix.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/domains", func(r chi.Router) {
		r.Post("/check", h.CheckAvailability)
		r.Get("/check/{domain}", h.CheckSingle)
		r.Post("/", h.RegisterDomain)
		r.Get("/{domainId}", h.GetDomain)
		r.Get("/{domainId}/zone", h.GetZone)
	})
	r.Route("/contacts", func(r chi.Router) {
		r.Post("/", h.CreateContact)
		r.Get("/{contactId}", h.GetContact)
	})
	r.Route("/zones/{zoneId}", func(r chi.Router) {
		r.Get("/records", h.ListRecords)
		r.Post("/records", h.CreateRecord)
		r.Put("/records/{recordId}", h.UpdateRecord)
		r.Delete("/records/{recordId}", h.DeleteRecord)
		r.Post("/presets/gmail", h.AddGmailPreset)
	})
	r.Post("/brands", h.GenerateBrand)
	r.Route("/provisions", func(r chi.Router) {
		r.Post("/", h.StartProvision)
		r.Get("/{provisionId}", h.GetProvision)
	})
}

// StatusCode maps the semantic kind of err to an HTTP status.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, serrors.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, serrors.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, serrors.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, serrors.ErrUpstream), errors.Is(err, serrors.ErrBadData):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respond writes res as JSON. successStatus is used when err is nil.
func respond[T any](ctx context.Context, w http.ResponseWriter, successStatus int, res T, err error) {
	status := successStatus
	if err != nil {
		status = StatusCode(err)
		if status >= http.StatusInternalServerError {
			logger.Error(ctx, "request failed", zap.Int("status", status), zap.Error(err))
		} else {
			logger.Debug(ctx, "request rejected", zap.Int("status", status), zap.Error(err))
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(res); encErr != nil {
		logger.Warn(ctx, "could not write response", zap.Error(encErr))
	}
}

// writeResult converts (data, err) into a Result envelope and writes it.
func writeResult[T any](w http.ResponseWriter, r *http.Request, successStatus int, data T, message string, err error) {
	respond(r.Context(), w, successStatus, domain.ResultOf(data, message, err), err)
}

// decode reads a JSON body into out. Malformed bodies are validation errors.
func decode(w http.ResponseWriter, r *http.Request, out any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return serrors.With(serrors.ErrBadRequest, "Request body is required")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "Invalid JSON body")
	}

	return nil
}

// NotFound answers unknown routes with a failed Result.
func NotFound(w http.ResponseWriter, r *http.Request) {
	err := serrors.With(serrors.ErrNotFound, "Route not found")
	respond(r.Context(), w, http.StatusNotFound, domain.Fail[struct{}](err), err)
}

// MethodNotAllowed answers known routes called with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	_ = json.NewEncoder(w).Encode(domain.Result[struct{}]{Success: false, Error: "Method not allowed"})
}
