package splunkerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/splunkerr"
)

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		kind splunkerr.Kind
		code int
	}{
		{splunkerr.KindAuthFailed, 2},
		{splunkerr.KindTransport, 3},
		{splunkerr.KindNotFound, 4},
		{splunkerr.KindForbidden, 6},
		{splunkerr.KindRateLimited, 7},
		{splunkerr.KindServiceUnavailable, 8},
		{splunkerr.KindCancelled, 130},
		{splunkerr.KindUnknown, 1},
		{splunkerr.KindInvalidRequest, 1},
	}
	for _, tt := range cases {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := splunkerr.New(tt.kind, errors.New("boom"))
			require.Equal(t, tt.code, err.ExitCode())
			require.Equal(t, tt.code, tt.kind.ExitCode())
		})
	}
}

func TestWrapPreservesKind(t *testing.T) {
	base := splunkerr.New(splunkerr.KindNotFound, errors.New("no such index"))
	wrapped := splunkerr.Wrap(base, "failed to delete index %q", "main")

	require.Equal(t, splunkerr.KindNotFound, wrapped.Kind())
	require.Contains(t, wrapped.Error(), "failed to delete index")
	require.Contains(t, wrapped.Error(), "no such index")
}

func TestAsExtractsThroughChain(t *testing.T) {
	base := splunkerr.New(splunkerr.KindRateLimited, errors.New("429"))
	outer := splunkerr.Wrap(base, "listing jobs")

	found, ok := splunkerr.As(outer)
	require.True(t, ok)
	require.Equal(t, splunkerr.KindRateLimited, found.Kind())
	require.Equal(t, splunkerr.KindRateLimited, splunkerr.KindOf(outer))
}

func TestRetryable(t *testing.T) {
	require.True(t, splunkerr.KindTransport.Retryable())
	require.True(t, splunkerr.KindTimeout.Retryable())
	require.True(t, splunkerr.KindRateLimited.Retryable())
	require.True(t, splunkerr.KindServiceUnavailable.Retryable())
	require.False(t, splunkerr.KindAuthFailed.Retryable())
	require.False(t, splunkerr.KindNotFound.Retryable())
	require.False(t, splunkerr.KindForbidden.Retryable())
}
