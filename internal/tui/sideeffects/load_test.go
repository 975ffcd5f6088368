package sideeffects

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/tui/action"
)

func runBatch(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	require.True(t, ok, "expected a batched Cmd, got %T", msg)
	out := make([]tea.Msg, len(batch))
	for i, c := range batch {
		out[i] = c()
	}
	return out
}

func TestDispatchEmitsLoadingThenLoadedOnSuccess(t *testing.T) {
	cmd := Dispatch(context.Background(), 0, func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})

	msgs := runBatch(t, cmd)
	require.Equal(t, action.Loading{Busy: true}, msgs[0])

	loaded, ok := msgs[1].(action.LoadedMsg[[]string])
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, loaded.Items)
	require.NoError(t, loaded.Err)
}

func TestDispatchCarriesFetchErrorIntoLoadedMsg(t *testing.T) {
	boom := errors.New("boom")
	cmd := Dispatch(context.Background(), 5, func(ctx context.Context) ([]string, error) {
		return nil, boom
	})

	msgs := runBatch(t, cmd)
	loaded, ok := msgs[1].(action.LoadedMsg[[]string])
	require.True(t, ok)
	require.Equal(t, boom, loaded.Err)
	require.Equal(t, 5, loaded.Offset)
}

func TestOperationCmdReportsSuccess(t *testing.T) {
	cmd := OperationCmd("jobs", func() error { return nil }, "did the thing")
	msg := cmd()
	complete, ok := msg.(action.OperationComplete)
	require.True(t, ok)
	require.Equal(t, "jobs", complete.Resource)
	require.Equal(t, "did the thing", complete.Message)
}

func TestOperationCmdReportsFailure(t *testing.T) {
	cmd := OperationCmd("jobs", func() error { return errors.New("nope") }, "unused")
	msg := cmd()
	failed, ok := msg.(action.OperationFailed)
	require.True(t, ok)
	require.Equal(t, "jobs", failed.Resource)
	require.Equal(t, "nope", failed.Message)
}

func TestNotifyCmdWrapsLevelAndMessage(t *testing.T) {
	msg := NotifyCmd(action.ToastWarning, "careful")()
	notify, ok := msg.(action.Notify)
	require.True(t, ok)
	require.Equal(t, action.ToastWarning, notify.Level)
	require.Equal(t, "careful", notify.Message)
}
