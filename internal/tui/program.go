package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/fitchmultz/splunk-tui/internal/splunkclient"
	"github.com/fitchmultz/splunk-tui/internal/tui/action"
	"github.com/fitchmultz/splunk-tui/internal/tui/inbox"
	"github.com/fitchmultz/splunk-tui/internal/tui/sideeffects"
)

// Program is the bubbletea tea.Model wrapping App: it owns the one
// *splunkclient.Client in use, the context every in-flight Cmd derives
// from (so Cancel and profile switches can tear down outstanding work),
// and the dispatch tables in dispatch.go that decide which follow-up Cmd
// a given action implies.
type Program struct {
	app     App
	client  *splunkclient.Client
	builder sideeffects.ClientBuilder
	catalog map[string]bool

	ctx    context.Context
	cancel context.CancelFunc
	inbox  *inbox.Inbox
}

// NewProgram builds the initial Program. client is the already-constructed
// client for the starting profile; builder rebuilds a client for any other
// profile (used by ProfileSwitch and MultiInstanceRun).
func NewProgram(app App, client *splunkclient.Client, builder sideeffects.ClientBuilder, catalog map[string]bool) *Program {
	ctx, cancel := context.WithCancel(context.Background())
	return &Program{
		app:     app,
		client:  client,
		builder: builder,
		catalog: catalog,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// BindSender wires the running *tea.Program into the Program's inbox, so
// side effects that need to push a message from outside the normal
// Update/Cmd cycle (ExecuteSearch's progress callback) have somewhere to
// send it. Must be called after tea.NewProgram, before Run, since the
// *tea.Program doesn't exist until the model that needs it has already
// been constructed.
func (p *Program) BindSender(sender inbox.Sender) {
	p.inbox = inbox.New(sender)
}

// Init loads the health snapshot the Overview screen opens on.
func (p *Program) Init() tea.Cmd {
	return sideeffects.LoadHealth(p.ctx, p.client)
}

// Update is bubbletea's entry point: native key/resize messages are
// translated into action.Action first, then every action.Action (native
// or self-produced) flows through the pure reducer, followed by whatever
// follow-up Cmd dispatch.go says that action implies.
func (p *Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		return p.apply(action.Resized{Width: m.Width, Height: m.Height})

	case tea.KeyMsg:
		if a, ok := p.actionForKey(m); ok {
			return p.apply(a)
		}
		return p, nil

	case action.Action:
		return p.apply(m)

	default:
		return p, nil
	}
}

// apply runs Update and layers on whatever follow-up Cmd the action
// implies (an initial screen load, a reload after a mutation, tearing
// down in-flight work on Cancel/Quit).
func (p *Program) apply(a action.Action) (tea.Model, tea.Cmd) {
	p.app = Update(p.app, a)

	switch m := a.(type) {
	case action.Navigate:
		return p, loadCmdForNavigate(p.ctx, p.client, m.To)

	case action.OperationComplete:
		return p, reloadCmdForResource(p.ctx, p.client, m.Resource)

	case action.Cancel:
		p.cancel()
		p.ctx, p.cancel = context.WithCancel(context.Background())
		return p, nil

	case action.Quit:
		return p, tea.Quit

	case action.ProfileSwitch:
		return p, sideeffects.SwitchProfile(p.ctx, p.builder, m.Profile)

	case action.ProfileSwitched:
		if m.Err == nil {
			p.app = clearAllData(p.app)
		}
		return p, nil

	case action.SearchExecute:
		return p, sideeffects.ExecuteSearch(p.ctx, p.client, p.senderOrNil(), m.Query, m.EarliestTime, m.LatestTime, 100)

	case action.MultiInstanceRun:
		return p, sideeffects.RunMultiInstance(p.ctx, p.builder, p.catalog, m.Resources, m.Profiles)

	default:
		return p, nil
	}
}

func (p *Program) senderOrNil() inbox.Sender {
	if p.inbox == nil {
		return nil
	}
	return trySender{ctx: p.ctx, inbox: p.inbox}
}

// trySender delivers through Inbox.TrySend, so a progress update is
// best-effort and stops waiting once the context is cancelled.
type trySender struct {
	ctx   context.Context
	inbox *inbox.Inbox
}

func (s trySender) Send(msg tea.Msg) { s.inbox.TrySend(s.ctx, msg) }

// actionForKey matches a key press against the active keymap, translating
// it into the action the currently focused screen/popup expects. A key that
// matches no binding is dropped by Update; there is no text-entry handling
// for the search query or the create/modify popups.
func (p *Program) actionForKey(m tea.KeyMsg) (action.Action, bool) {
	km := p.app.Keymap
	switch {
	case key.Matches(m, km.Quit):
		return action.Quit{}, true
	case key.Matches(m, km.Help):
		return action.PopupOpen{Popup: action.PopupHelp}, true
	case key.Matches(m, km.Refresh):
		return action.Navigate{To: p.app.Screen}, true
	case key.Matches(m, km.NextScreen):
		return action.Navigate{To: action.NextScreen(p.app.Screen)}, true
	case key.Matches(m, km.PrevScreen):
		return action.Navigate{To: action.PrevScreen(p.app.Screen)}, true
	case key.Matches(m, km.Back):
		return action.PopupClose{}, true
	case key.Matches(m, km.Export):
		return action.PopupOpen{Popup: action.PopupExportSearch}, true
	default:
		return nil, false
	}
}

// View renders the current App state.
func (p *Program) View() string {
	return Render(p.app)
}
