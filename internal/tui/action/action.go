package action

import "time"

// Action is the marker interface implemented by every message the reducer
// accepts. The set of concrete implementations is closed: Update type-
// switches over them and ignores an unhandled type, in tests and in
// production alike (spec.md §4.5).
type Action interface {
	isAction()
}

// ToastLevel classifies a Notify action for styling (spec.md §4.5).
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// Navigate switches the active screen, closing any open popup.
type Navigate struct{ To Screen }

func (Navigate) isAction() {}

// PopupOpen pushes a popup onto the (depth-1) popup stack, replacing
// whatever was open.
type PopupOpen struct{ Popup Popup }

func (PopupOpen) isAction() {}

// PopupClose pops the currently open popup, if any.
type PopupClose struct{}

func (PopupClose) isAction() {}

// Notify enqueues a toast message with an auto-dismiss duration.
type Notify struct {
	Level   ToastLevel
	Message string
	TTL     time.Duration
}

func (Notify) isAction() {}

// Loading toggles the global busy indicator shown while a side effect's
// network call is in flight.
type Loading struct{ Busy bool }

func (Loading) isAction() {}

// Progress updates the fractional completion (0..1) of a long-running
// operation, such as a polling search job.
type Progress struct{ Fraction float64 }

func (Progress) isAction() {}

// Quit requests the program exit the event loop.
type Quit struct{}

func (Quit) isAction() {}

// Cancel requests the currently in-flight operation be abandoned; the main
// loop cancels the shared context every in-flight Cmd derives from. It does
// not itself ask the server to cancel a job; that is
// sideeffects.CancelSearch (spec.md §4.5 search screen).
type Cancel struct{}

func (Cancel) isAction() {}

// ClearAllData wipes every screen's cached resource data, issued when
// switching profiles so stale data from the old profile can never leak into
// the new one's view.
type ClearAllData struct{}

func (ClearAllData) isAction() {}

// OnboardingMilestone records that the named onboarding step occurred.
type OnboardingMilestone struct{ Step string }

func (OnboardingMilestone) isAction() {}

// ExportWrite requests the export popup serialize its target data to disk.
type ExportWrite struct {
	Path   string
	Format string
}

func (ExportWrite) isAction() {}

// ExportComplete reports the outcome of an ExportWrite.
type ExportComplete struct {
	Path string
	Err  error
}

func (ExportComplete) isAction() {}

// ProfileSwitch requests the active profile change; the side effect layer
// rebuilds the client, re-authenticates if the profile's auth is session-
// based, and emits ClearAllData on success.
type ProfileSwitch struct{ Profile string }

func (ProfileSwitch) isAction() {}

// ProfileSwitched reports the outcome of a ProfileSwitch.
type ProfileSwitched struct {
	Profile string
	BaseURL string
	Err     error
}

func (ProfileSwitched) isAction() {}

// Tick drives periodic polling (job status, auto-refresh); producers send it
// with TrySend since a dropped tick is harmless.
type Tick struct{ At time.Time }

func (Tick) isAction() {}

// Resized reports a terminal resize; bubbletea delivers this natively as
// tea.WindowSizeMsg, and Program.Update translates it into this type so the
// reducer only ever sees action.Action values.
type Resized struct{ Width, Height int }

func (Resized) isAction() {}

// MultiInstanceRun requests a fan-out aggregation across the named
// resources and profiles.
type MultiInstanceRun struct {
	Resources []string
	Profiles  []string
}

func (MultiInstanceRun) isAction() {}

// MultiInstanceComplete reports one aggregation run's rendered summary, or
// Err when the run couldn't even start (unknown resource or profile name).
type MultiInstanceComplete struct {
	Summary string
	Err     error
}

func (MultiInstanceComplete) isAction() {}
