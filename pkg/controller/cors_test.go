package controller_test

import (
	"brandkit/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func serveCORS(t *testing.T, options controller.CORSOptions, method, origin string) (*http.Response, bool) {
	t.Helper()
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(method, "/v1/domains", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	controller.WithCORS(next, options).ServeHTTP(rec, req)

	return rec.Result(), called
}

func TestWithCORS_Preflight(t *testing.T) {
	res, called := serveCORS(t, controller.CORSOptions{}, http.MethodOptions, "https://app.example")

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Empty(t, res.Header.Get("Access-Control-Allow-Credentials"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "Authorization")
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), http.MethodDelete)
	require.Equal(t, controller.RequestIDHeader, res.Header.Get("Access-Control-Expose-Headers"))
}

func TestWithCORS_NormalRequest(t *testing.T) {
	res, called := serveCORS(t, controller.CORSOptions{}, http.MethodGet, "")

	require.True(t, called, "next handler should be called for non-OPTIONS request")
	require.Equal(t, http.StatusTeapot, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestWithCORS_AllowedOrigins(t *testing.T) {
	options := controller.CORSOptions{AllowedOrigins: []string{"https://app.example"}}

	res, _ := serveCORS(t, options, http.MethodGet, "https://app.example")
	require.Equal(t, "https://app.example", res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
	require.Equal(t, "Origin", res.Header.Get("Vary"))

	res, called := serveCORS(t, options, http.MethodGet, "https://evil.example")
	require.True(t, called)
	require.Empty(t, res.Header.Get("Access-Control-Allow-Origin"))
	require.Empty(t, res.Header.Get("Access-Control-Allow-Credentials"))
}
