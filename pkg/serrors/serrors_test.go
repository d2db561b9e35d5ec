package serrors_test

import (
	"brandkit/pkg/serrors"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrBadRequest,
		serrors.ErrNotConfigured,
		serrors.ErrUpstream,
		serrors.ErrBadData,
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection refused")

	e1 := serrors.With(serrors.ErrBadRequest, "Missing required fields: %s", "name")
	require.Equal(t, "Missing required fields: name", e1.Error())

	e2 := serrors.Wrap(serrors.ErrUpstream, base, "Failed to check domain availability")
	require.Equal(t, "Failed to check domain availability: connection refused", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrNotConfigured)
	require.Equal(t, "NOT_CONFIGURED", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrUpstream, base, "creating contact")

	require.ErrorIs(t, e, serrors.ErrUpstream)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrBadRequest)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOfAndMessageOf(t *testing.T) {
	inner := serrors.Wrap(serrors.ErrUpstream, errors.New("dial tcp"), "Failed to create contact")
	wrapped := fmt.Errorf("provision step: %w", inner)

	require.Equal(t, serrors.ErrUpstream, serrors.KindOf(wrapped))
	require.Equal(t, "Failed to create contact", serrors.MessageOf(wrapped))

	plain := errors.New("plain")
	require.Nil(t, serrors.KindOf(plain))
	require.Equal(t, "plain", serrors.MessageOf(plain))
	require.Empty(t, serrors.MessageOf(nil))
}
