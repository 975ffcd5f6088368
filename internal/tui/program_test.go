package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/tui/action"
	"github.com/fitchmultz/splunk-tui/internal/tui/keymap"
)

func newTestProgram() *Program {
	app := NewApp("prod", "https://prod.example.com", []string{"prod", "staging"}, keymap.Default())
	return NewProgram(app, nil, nil, map[string]bool{"prod": true, "staging": true})
}

func TestActionForKeyMapsQuit(t *testing.T) {
	p := newTestProgram()
	a, ok := p.actionForKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.True(t, ok)
	require.Equal(t, action.Quit{}, a)
}

func TestActionForKeyMapsNextScreen(t *testing.T) {
	p := newTestProgram()
	a, ok := p.actionForKey(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, ok)
	nav, ok := a.(action.Navigate)
	require.True(t, ok)
	require.Equal(t, action.NextScreen(p.app.Screen), nav.To)
}

func TestActionForKeyIgnoresUnboundKey(t *testing.T) {
	p := newTestProgram()
	_, ok := p.actionForKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")})
	require.False(t, ok)
}

func TestUpdateHandlesWindowSizeMsg(t *testing.T) {
	p := newTestProgram()
	_, cmd := p.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Nil(t, cmd)
	require.Equal(t, 120, p.app.Width)
	require.Equal(t, 40, p.app.Height)
}

func TestUpdateOnQuitReturnsQuitCmd(t *testing.T) {
	p := newTestProgram()
	_, cmd := p.Update(action.Quit{})
	require.NotNil(t, cmd)
	require.True(t, p.app.Quitting)
}

func TestUpdateOnNavigateToUnloadableScreenReturnsNilCmd(t *testing.T) {
	p := newTestProgram()
	_, cmd := p.Update(action.Navigate{To: action.ScreenSettings})
	require.Nil(t, cmd)
	require.Equal(t, action.ScreenSettings, p.app.Screen)
}

func TestLoadCmdForNavigateReturnsNilForParameterizedScreens(t *testing.T) {
	require.Nil(t, loadCmdForNavigate(context.Background(), nil, action.ScreenSearch))
	require.Nil(t, loadCmdForNavigate(context.Background(), nil, action.ScreenJobInspect))
	require.Nil(t, loadCmdForNavigate(context.Background(), nil, action.ScreenSettings))
}

func TestReloadCmdForResourceReturnsNilForUnknownResource(t *testing.T) {
	require.Nil(t, reloadCmdForResource(context.Background(), nil, "not-a-resource"))
}

func TestRenderIncludesProfileAndScreenName(t *testing.T) {
	p := newTestProgram()
	out := Render(p.app)
	require.Contains(t, out, "prod")
	require.Contains(t, out, p.app.Screen.String())
}

func TestRenderShowsPopupWhenOpen(t *testing.T) {
	app := NewApp("prod", "https://prod.example.com", []string{"prod"}, keymap.Default())
	app.Popup = action.PopupHelp
	out := Render(app)
	require.Contains(t, out, "keybindings")
}
