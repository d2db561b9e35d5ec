package controller

import (
	"net/http"
	"slices"
	"strings"
)

var corsAllowedHeaders = strings.Join([]string{ //nolint: gochecknoglobals
	"Accept", "Accept-Encoding", "Authorization", "Cache-Control",
	"Content-Length", "Content-Type", "Origin", RequestIDHeader,
}, ", ")

var corsAllowedMethods = strings.Join([]string{ //nolint: gochecknoglobals
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
}, ", ")

// CORSOptions configure WithCORS.
type CORSOptions struct {
	// AllowedOrigins are echoed back with credentials allowed. When empty any
	// origin may call the API, without credentials.
	AllowedOrigins []string
}

// WithCORS sets CORS headers on every response and answers OPTIONS
// preflight requests with 204 No Content. Requests from origins outside
// AllowedOrigins get no Allow-Origin header.
func WithCORS(next http.Handler, options CORSOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		switch origin := r.Header.Get("Origin"); {
		case len(options.AllowedOrigins) == 0:
			h.Set("Access-Control-Allow-Origin", "*")
		case slices.Contains(options.AllowedOrigins, origin):
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")
		}
		h.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
		h.Set("Access-Control-Allow-Methods", corsAllowedMethods)
		h.Set("Access-Control-Expose-Headers", RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
