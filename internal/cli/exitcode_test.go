package cli_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/cli"
	"github.com/fitchmultz/splunk-tui/internal/splunkerr"
)

func TestExitCodeForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"auth failed", splunkerr.New(splunkerr.KindAuthFailed, errors.New("401")), cli.ExitAuthFailed},
		{"not found", splunkerr.New(splunkerr.KindNotFound, errors.New("404")), cli.ExitNotFound},
		{"rate limited", splunkerr.New(splunkerr.KindRateLimited, errors.New("429")), cli.ExitRateLimited},
		{"cancelled context", context.Canceled, cli.ExitCancelled},
		{"generic error", errors.New("boom"), cli.ExitGeneral},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.code, cli.ExitCodeForError(tt.err))
		})
	}
}
