// Package sideeffects turns actions into bubbletea Cmds that perform
// network I/O against a splunkclient.Client and feed the result back in as
// a follow-up action.Action. Every loader here follows the same steps as
// the teacher's runtime/side_effects modules: emit Loading(true), make the
// call, and emit a typed completion action carrying the offset (> 0 for a
// pagination append). A failed load is not turned into a Notify toast: the
// error travels in the completion action's Err, and the reducer stores it
// on the screen's cache, where the screen renders it (spec.md §4.5).
package sideeffects

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitchmultz/splunk-tui/internal/tui/action"
)

// LoadingCmd immediately signals the busy indicator should turn on; it is
// always batched alongside the Cmd that performs the actual fetch.
func LoadingCmd() tea.Cmd {
	return func() tea.Msg { return action.Loading{Busy: true} }
}

// Load runs fetch against ctx and wraps its result in a LoadedMsg[T],
// generalizing every resource kind's "fetch then report" shape. T is
// inferred as either a slice (list screens) or a pointer (single-object
// screens); applyList/applySingle in internal/tui/update.go handle both
// uniformly via Go's instantiation-per-type behavior.
func Load[T any](ctx context.Context, offset int, fetch func(context.Context) (T, error)) tea.Cmd {
	return func() tea.Msg {
		items, err := fetch(ctx)
		return action.LoadedMsg[T]{Items: items, Offset: offset, Err: err}
	}
}

// Dispatch batches LoadingCmd with a Load call, the pattern every resource
// loader in this package uses.
func Dispatch[T any](ctx context.Context, offset int, fetch func(context.Context) (T, error)) tea.Cmd {
	return tea.Batch(LoadingCmd(), Load(ctx, offset, fetch))
}

// NotifyCmd wraps a Notify action as a Cmd, for dispatchers that need to
// surface an error without going through Loading/Loaded.
func NotifyCmd(level action.ToastLevel, message string) tea.Cmd {
	return func() tea.Msg { return action.Notify{Level: level, Message: message} }
}

// OperationCmd runs op and reports its outcome as OperationComplete or
// OperationFailed, the shape every mutation dispatcher (create/modify/
// delete/cancel) shares.
func OperationCmd(resource string, op func() error, successMessage string) tea.Cmd {
	return func() tea.Msg {
		if err := op(); err != nil {
			return action.OperationFailed{Resource: resource, Message: err.Error()}
		}
		return action.OperationComplete{Resource: resource, Message: successMessage}
	}
}
