// Package onboarding tracks the first-run checklist shown to new users and
// rate-limits the hints nudging them through it (spec.md §4.5).
package onboarding

// Milestone is one bit in the checklist bitflag. The set is closed at five
// bits; completion is "all five set".
type Milestone uint8

const (
	ProfileReady Milestone = 1 << iota
	ConnectionVerified
	FirstSearchRun
	NavigationCycleCompleted
	HelpOpened

	allMilestones = ProfileReady | ConnectionVerified | FirstSearchRun | NavigationCycleCompleted | HelpOpened
)

// milestoneNames maps the action.OnboardingMilestone action's Step
// string to its bit, so the reducer can translate a string action payload
// into the bitflag without the action package depending on this one.
var milestoneNames = map[string]Milestone{
	"profile_ready":              ProfileReady,
	"connection_verified":        ConnectionVerified,
	"first_search_run":           FirstSearchRun,
	"navigation_cycle_completed": NavigationCycleCompleted,
	"help_opened":                HelpOpened,
}

// MaxHintsPerSession caps how many onboarding hints are shown in one run,
// so a user who ignores them isn't nagged indefinitely.
const MaxHintsPerSession = 3

// HideAfterSessions is how many completed sessions must pass after the
// checklist is finished before hints stop being considered at all.
const HideAfterSessions = 1

// State tracks one session's onboarding progress.
type State struct {
	Completed     Milestone
	HintsShown    int
	SessionsSince int
}

// Record sets the bit for step, if recognized. An unrecognized step name is
// ignored rather than erroring, since it typically means a user is running
// a newer or older TUI build than the hint text was written for.
func (s *State) Record(step string) {
	if bit, ok := milestoneNames[step]; ok {
		s.Completed |= bit
	}
}

// Done reports whether every milestone has been recorded.
func (s *State) Done() bool {
	return s.Completed&allMilestones == allMilestones
}

// ShouldHint reports whether another onboarding hint may be shown right
// now: the checklist isn't finished, the per-session cap hasn't been hit,
// and enough sessions haven't passed since completion to have auto-hidden
// it.
func (s *State) ShouldHint() bool {
	if s.Done() {
		return false
	}
	if s.SessionsSince >= HideAfterSessions {
		return false
	}
	return s.HintsShown < MaxHintsPerSession
}

// NoteHintShown records that a hint was just displayed, counting toward
// MaxHintsPerSession.
func (s *State) NoteHintShown() {
	s.HintsShown++
}

// AdvanceSession resets the per-session hint counter and, once the
// checklist is complete, advances the session counter used by
// HideAfterSessions.
func (s *State) AdvanceSession() {
	s.HintsShown = 0
	if s.Done() {
		s.SessionsSince++
	}
}

// Pending returns the names of milestones not yet recorded, in a fixed
// order, for rendering the checklist popup.
func (s *State) Pending() []string {
	order := []struct {
		name string
		bit  Milestone
	}{
		{"profile_ready", ProfileReady},
		{"connection_verified", ConnectionVerified},
		{"first_search_run", FirstSearchRun},
		{"navigation_cycle_completed", NavigationCycleCompleted},
		{"help_opened", HelpOpened},
	}
	var pending []string
	for _, m := range order {
		if s.Completed&m.bit == 0 {
			pending = append(pending, m.name)
		}
	}
	return pending
}
