package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/models"
	"github.com/fitchmultz/splunk-tui/internal/tui/action"
	"github.com/fitchmultz/splunk-tui/internal/tui/keymap"
)

func newTestApp() App {
	return NewApp("prod", "https://splunk.example.com:8089", []string{"prod", "staging"}, keymap.Default())
}

func TestNavigateSwitchesScreenAndClosesPopup(t *testing.T) {
	app := newTestApp()
	app.Popup = action.PopupHelp

	app = Update(app, action.Navigate{To: action.ScreenJobs})

	require.Equal(t, action.ScreenJobs, app.Screen)
	require.Equal(t, action.PopupNone, app.Popup)
}

func TestLoadIndexesSetsLoadingThenIndexesLoadedPopulatesItems(t *testing.T) {
	app := newTestApp()

	app = Update(app, action.LoadIndexes{Count: 100, Offset: 0})
	require.True(t, app.Indexes.Loading)

	items := []*models.Index{{Name: "main"}, {Name: "internal"}}
	app = Update(app, action.IndexesLoaded{Items: items, Offset: 0})

	require.False(t, app.Indexes.Loading)
	require.Empty(t, app.Indexes.Err)
	require.Len(t, app.Indexes.Items, 2)
}

func TestIndexesLoadedWithOffsetAppendsRatherThanReplaces(t *testing.T) {
	app := newTestApp()
	app.Indexes.Items = []*models.Index{{Name: "main"}}

	app = Update(app, action.IndexesLoaded{Items: []*models.Index{{Name: "internal"}}, Offset: 1})

	require.Len(t, app.Indexes.Items, 2)
	require.Equal(t, "main", app.Indexes.Items[0].Name)
	require.Equal(t, "internal", app.Indexes.Items[1].Name)
}

func TestIndexesLoadedErrorSurfacesAndClearsLoading(t *testing.T) {
	app := newTestApp()
	app.Indexes.Loading = true

	app = Update(app, action.IndexesLoaded{Err: errors.New("boom")})

	require.False(t, app.Indexes.Loading)
	require.Equal(t, "boom", app.Indexes.Err)
}

func TestHealthLoadedSingleItemReplacesNotAppends(t *testing.T) {
	app := newTestApp()

	app = Update(app, action.HealthLoaded{Items: &models.HealthCheckOutput{Health: "green"}})

	require.Equal(t, "green", app.Health.Items.Health)
}

func TestNotifyAppendsToastWithDefaultTTLWhenUnset(t *testing.T) {
	app := newTestApp()

	app = Update(app, action.Notify{Level: action.ToastInfo, Message: "hello"})

	require.Len(t, app.Toasts, 1)
	require.Equal(t, "hello", app.Toasts[0].Message)
	require.False(t, app.Toasts[0].Expires.IsZero())
}

func TestOperationCompleteClearsLoadingAndAddsSuccessToast(t *testing.T) {
	app := newTestApp()
	app.Loading = true

	app = Update(app, action.OperationComplete{Resource: "jobs", Message: "cancelled job sid123"})

	require.False(t, app.Loading)
	require.Len(t, app.Toasts, 1)
	require.Equal(t, action.ToastSuccess, app.Toasts[0].Level)
}

func TestClearAllDataResetsCachesButPreservesProfileAndScreen(t *testing.T) {
	app := newTestApp()
	app.Indexes.Items = []*models.Index{{Name: "main"}}
	app.Screen = action.ScreenJobs
	app.Width, app.Height = 120, 40

	app = Update(app, action.ClearAllData{})

	require.Empty(t, app.Indexes.Items)
	require.Equal(t, "prod", app.Profile)
	require.Equal(t, action.ScreenJobs, app.Screen)
	require.Equal(t, 120, app.Width)
}

func TestProfileSwitchedErrorLeavesProfileUnchanged(t *testing.T) {
	app := newTestApp()

	app = Update(app, action.ProfileSwitched{Profile: "staging", Err: errors.New("bad credentials")})

	require.Equal(t, "prod", app.Profile)
	require.Len(t, app.Toasts, 1)
	require.Equal(t, action.ToastError, app.Toasts[0].Level)
}

func TestProfileSwitchedSuccessUpdatesProfileAndClosesPopup(t *testing.T) {
	app := newTestApp()
	app.Popup = action.PopupProfileSelector

	app = Update(app, action.ProfileSwitched{Profile: "staging", BaseURL: "https://staging:8089"})

	require.Equal(t, "staging", app.Profile)
	require.Equal(t, "https://staging:8089", app.BaseURL)
	require.Equal(t, action.PopupNone, app.Popup)
}

func TestSearchExecuteResetsPriorResults(t *testing.T) {
	app := newTestApp()
	app.Search.Rows = []map[string]string{{"foo": "bar"}}
	app.Search.Err = "stale error"

	app = Update(app, action.SearchExecute{Query: "index=main error"})

	require.True(t, app.Search.Running)
	require.Empty(t, app.Search.Rows)
	require.Empty(t, app.Search.Err)
}

func TestSearchResultsLoadedPaginatesByOffset(t *testing.T) {
	app := newTestApp()
	app.Search.Rows = []map[string]string{{"n": "1"}}

	app = Update(app, action.SearchResultsLoaded{Rows: []map[string]string{{"n": "2"}}, Offset: 1})

	require.Len(t, app.Search.Rows, 2)
}

func TestCancelStopsSearchAndClearsLoading(t *testing.T) {
	app := newTestApp()
	app.Loading = true
	app.Search.Running = true

	app = Update(app, action.Cancel{})

	require.False(t, app.Loading)
	require.False(t, app.Search.Running)
}

func TestQuitSetsQuitting(t *testing.T) {
	app := newTestApp()
	app = Update(app, action.Quit{})
	require.True(t, app.Quitting)
}

func TestOnboardingMilestoneRecordsKnownStep(t *testing.T) {
	app := newTestApp()
	app = Update(app, action.OnboardingMilestone{Step: "profile_ready"})
	require.False(t, app.Onboarding.Done())
	require.NotZero(t, app.Onboarding.Completed)
}

func TestUnknownActionIsIgnored(t *testing.T) {
	app := newTestApp()
	before := app
	app = Update(app, action.Tick{})
	require.Equal(t, before.Screen, app.Screen)
}
