// Package inbox wraps a bubbletea program's message delivery with the
// producer discipline spec.md §4.5 requires: keyboard input, resize events,
// and shell-completion results must never be dropped, while mouse motion
// and periodic ticks may be, since a dropped tick is simply caught by the
// next one and a dropped mouse event is imperceptible. Grounded on the
// teacher's lib/events bounded-fanout channel, adapted from "emit" to
// "deliver to a single UI loop".
package inbox

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Sender is the subset of *tea.Program this package depends on, so tests
// can substitute a recording fake instead of driving a real terminal.
type Sender interface {
	Send(msg tea.Msg)
}

// Inbox funnels actions into a bubbletea program, enforcing at the call
// site which delivery discipline applies.
type Inbox struct {
	program Sender
}

// New wraps program. program is typically a *tea.Program once Run has been
// called; sends before that point are safe, bubbletea buffers them.
func New(program Sender) *Inbox {
	return &Inbox{program: program}
}

// SendBlocking delivers msg, blocking the caller until the program's loop
// accepts it. Use for keyboard input, window resizes, and any message that
// must never be silently lost.
func (b *Inbox) SendBlocking(msg tea.Msg) {
	b.program.Send(msg)
}

// TrySend delivers msg on a best-effort basis: it never blocks the caller
// for longer than ctx allows cancellation to be observed, and it never
// panics if the program has already shut down. Use for mouse events and
// timer ticks.
func (b *Inbox) TrySend(ctx context.Context, msg tea.Msg) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		b.program.Send(msg)
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}
}
