package cli

import (
	"context"
	"errors"

	"github.com/fitchmultz/splunk-tui/internal/splunkerr"
)

// Process exit codes (spec.md §4.6). Every subcommand handler funnels its
// terminal error through ExitCodeForError rather than hard-coding a number
// at the call site.
const (
	ExitSuccess            = 0
	ExitGeneral            = 1
	ExitAuthFailed         = 2
	ExitConnectionRefused  = 3
	ExitNotFound           = 4
	ExitPermissionDenied   = 6
	ExitRateLimited        = 7
	ExitServiceUnavailable = 8
	ExitCancelled          = 130
)

// ExitCodeForError maps err onto the exit-code taxonomy. A *splunkerr.Error
// defers to Kind.ExitCode; a bare context.Canceled (Ctrl-C during a
// long-running fetch that never reached the REST layer) maps to the same
// cancellation code the taxonomy gives KindCancelled. Anything else is a
// general error.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if se, ok := splunkerr.As(err); ok {
		return se.Kind().ExitCode()
	}
	if errors.Is(err, context.Canceled) {
		return ExitCancelled
	}
	return ExitGeneral
}
