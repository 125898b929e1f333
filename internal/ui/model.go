// Package ui is the bubbletea front end: it feeds key events through the
// resolver and dispatcher and renders the shared state.
package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"traxor/internal/config"
	"traxor/internal/domain"
	"traxor/internal/eventbus"
	"traxor/internal/ui/commands"
	"traxor/internal/ui/input"
	"traxor/internal/ui/input/lineedit"
	"traxor/internal/ui/state"
	"traxor/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	ctx    context.Context
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // shared with the refresh poller

	// UI-specific state not in AppState
	width  int
	height int

	resolver   *input.Resolver
	dispatcher *commands.Dispatcher
	renderer   *views.Renderer
}

// NewModel creates a new UI model. st must already hold the tabs from cfg.
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, st *state.AppState,
	client commands.TorrentClient, completer lineedit.Completer) *Model {
	m := &Model{
		ctx:        ctx,
		bus:        bus,
		config:     cfg,
		state:      st,
		dispatcher: commands.NewDispatcher(st, client, completer, bus),
		renderer:   views.NewRenderer(cfg.Colors),
	}
	m.resolver = m.newResolver(cfg.Keybinds)
	return m
}

// newResolver builds the keybind table and reports unparseable keybinds in
// the status bar
func (m *Model) newResolver(keys config.KeybindsConfig) *input.Resolver {
	r := input.NewResolver(input.BindingsFromConfig(keys))
	if errs := r.Errors(); len(errs) > 0 {
		m.state.Lock()
		m.state.SetError(fmt.Errorf("%d keybind(s) do not parse, see traxor keys", len(errs)))
		m.state.Unlock()
	}
	return r
}

// Tabs converts configured tabs to domain tabs
func Tabs(cfg []config.TabConfig) []domain.Tab {
	tabs := make([]domain.Tab, 0, len(cfg))
	for _, t := range cfg {
		tabs = append(tabs, domain.Tab{Name: t.Name, Columns: domain.ParseColumns(t.Columns)})
	}
	return tabs
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.state.Lock()
		m.state.Navigation.SetViewportHeight(views.TableHeight(msg.Height))
		m.state.Unlock()

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case EventMsg:
		m.handleEvent(msg.Event)
	}
	return m, nil
}

// handleKey resolves and dispatches one key event under the state lock
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// ctrl+c always quits, whatever is bound
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	m.state.Lock()
	defer m.state.Unlock()

	res := m.resolver.Resolve(msg, m.state.Mode, &m.state.Editor)
	if res.Complete {
		m.dispatcher.Complete(m.ctx)
	}
	if m.state.Mode.IsText() {
		m.dispatcher.Edited()
	}
	if res.HasAction {
		if err := m.dispatcher.Apply(m.ctx, res.Action); err != nil {
			m.state.SetError(err)
		}
	}

	if !m.state.Running {
		return tea.Quit
	}
	return nil
}

func (m *Model) handleEvent(e eventbus.DomainEvent) {
	switch event := e.(type) {
	case eventbus.ConfigChangedEvent:
		cfg, ok := event.Config.(*config.Config)
		if !ok || cfg == nil {
			return
		}
		m.applyConfig(cfg)
		log.WithField("path", event.Path).Info("ui: config reloaded")
	case eventbus.ErrorEvent:
		if event.Err != nil {
			m.state.Lock()
			m.state.SetError(event.Err)
			m.state.Unlock()
		}
	}
}

// applyConfig swaps in a reloaded config. The keybind table is rebuilt
// rather than edited in place.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg.RPC != m.config.RPC {
		log.Warn("ui: rpc settings changed, restart to apply")
	}
	m.config = cfg
	m.resolver = m.newResolver(cfg.Keybinds)
	m.renderer = views.NewRenderer(cfg.Colors)

	m.state.Lock()
	m.state.SetTabs(Tabs(cfg.Tabs))
	m.state.Unlock()
}

// View renders the current state
func (m *Model) View() string {
	m.state.Lock()
	vs := m.viewState()
	m.state.Unlock()
	return m.renderer.Render(vs)
}

// viewState snapshots what the renderer needs. Callers hold the lock.
func (m *Model) viewState() views.ViewState {
	st := m.state
	visible := st.Visible()
	filter := st.ActiveFilter()


	return views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Tabs:           st.Tabs,
		TabIndex:       st.TabIndex,
		Torrents:       visible,
		Selected:       st.Selection.Set(),
		Cursor:         st.Navigation.GetCursor(),
		ViewportOffset: st.Navigation.GetViewportOffset(),
		Status: views.StatusInfo{
			Mode:     st.Mode,
			Filter:   filter,
			Hints:    m.hints(),
			Total:    len(st.Torrents),
			Visible:  len(visible),
			Selected: st.Selection.GetCount(),
			Totals:   views.Sum(st.Torrents),
			Message:  st.StatusMessage,
			Error:    st.LastError,
			Updated:  st.LastRefresh,
		},
		Input: views.InputInfo{
			Mode:           st.Mode,
			Text:           st.Editor.Text(),
			Cursor:         st.Editor.Cursor(),
			Candidates:     len(st.Editor.Candidates()),
			CandidateIndex: st.Editor.Index(),
			DeleteCount:    len(st.PendingIDs),
		},
		ShowHelp: st.ShowHelp,
		Help:     m.helpSections(),
	}
}
