package registrar_test

import (
	"brandkit/pkg/registrar"
	"brandkit/pkg/serrors"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	require.NoError(t, registrar.WrapError(nil, "Failed"))

	notConfigured := serrors.With(serrors.ErrNotConfigured, "Registrar API token not configured")
	require.Same(t, notConfigured, registrar.WrapError(notConfigured, "Failed"))

	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"not found", &registrar.APIError{StatusCode: http.StatusNotFound}, serrors.ErrNotFound},
		{"conflict", &registrar.APIError{StatusCode: http.StatusConflict}, serrors.ErrConflict},
		{"rate limited", &registrar.APIError{StatusCode: http.StatusTooManyRequests}, serrors.ErrRateLimited},
		{"server error", &registrar.APIError{StatusCode: http.StatusBadGateway}, serrors.ErrUpstream},
		{"wrapped api error", fmt.Errorf("call: %w", &registrar.APIError{StatusCode: http.StatusNotFound}), serrors.ErrNotFound},
		{"transport", errors.New("connection reset"), serrors.ErrUpstream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := registrar.WrapError(tt.err, "Failed to get domain")
			require.ErrorIs(t, err, tt.kind)
			require.ErrorIs(t, err, tt.err)
			require.Equal(t, "Failed to get domain", serrors.MessageOf(err))
		})
	}
}

func TestAPIError(t *testing.T) {
	err := &registrar.APIError{StatusCode: http.StatusBadRequest, Body: []byte(`{"error":"bad"}`)}
	require.Equal(t, `registrar responded with status 400: {"error":"bad"}`, err.Error())
	require.JSONEq(t, `{"error":"bad"}`, string(err.ResponseBody()))

	require.Equal(t, "registrar responded with status 500", (&registrar.APIError{StatusCode: 500}).Error())
}
