package state

import (
	"sync"
	"time"

	"traxor/internal/domain"
	"traxor/internal/ui/input/lineedit"
	"traxor/internal/ui/input/types"
	"traxor/internal/ui/logic"
	"traxor/internal/ui/services/navigation"
	"traxor/internal/ui/services/selection"
)

// RenameTarget is the torrent a rename prompt was opened for
type RenameTarget struct {
	ID   int64
	Name string
}

// AppState contains all the application state. Everything is guarded by one
// mutex: the UI and the background refresh take it around whole updates so
// neither ever sees the other half done. Methods do not lock; callers do.
type AppState struct {
	mu sync.Mutex

	// Torrent data
	Torrents    []domain.Torrent
	LastRefresh time.Time
	// Bumped by every command that changed torrents on the daemon, so a
	// fetch that started earlier can be recognised as stale
	Generation  uint64

	// Tabs
	Tabs     []domain.Tab
	TabIndex int

	// Selection and cursor
	Selection  *selection.Service
	Navigation *navigation.Service

	// Input state
	Mode         types.Mode
	Editor       lineedit.Editor
	RenameTarget *RenameTarget
	// Torrents a move or delete prompt acts on, fixed when it opened
	PendingIDs   []int64

	// Saved filter, applied outside the filter prompt
	FilterQuery string

	// UI state
	ShowHelp      bool
	StatusMessage string // status bar message
	LastError     string
	Running       bool
}

// NewAppState creates a new application state
func NewAppState(tabs []domain.Tab) *AppState {
	if len(tabs) == 0 {
		tabs = []domain.Tab{{Name: "All", Columns: []domain.Column{domain.ColumnName}}}
	}
	return &AppState{
		Tabs:       tabs,
		Selection:  selection.NewService(),
		Navigation: navigation.NewService(),
		Mode:       types.Normal,
		Running:    true,
	}
}

// Lock takes the state lock
func (s *AppState) Lock() { s.mu.Lock() }

// Unlock releases the state lock
func (s *AppState) Unlock() { s.mu.Unlock() }

// Torrent operations

// SetTorrents swaps in a fresh torrent list. The cursor stays on the same
// torrent when it is still visible and is clamped otherwise. Torrents that
// disappeared leave the explicit selection.
func (s *AppState) SetTorrents(torrents []domain.Torrent) {
	current, hadCurrent := s.Highlighted()

	s.Torrents = torrents
	s.LastRefresh = time.Now()

	present := make(map[int64]bool, len(torrents))
	for _, t := range torrents {
		present[t.ID] = true
	}
	s.Selection.Retain(func(id int64) bool { return present[id] })

	if hadCurrent {
		for i, t := range s.Visible() {
			if t.ID == current.ID {
				s.Navigation.MoveToIndex(i, len(s.Visible()))
				return
			}
		}
	}
	s.ClampCursor()
}

// TorrentByID looks a torrent up in the full list
func (s *AppState) TorrentByID(id int64) (domain.Torrent, bool) {
	for _, t := range s.Torrents {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Torrent{}, false
}

// ActiveFilter is the filter in effect: the edit buffer while the filter
// prompt is open, the saved filter otherwise
func (s *AppState) ActiveFilter() string {
	if s.Mode.Kind == types.ModeFilter {
		return s.Editor.Text()
	}
	return s.FilterQuery
}

// Visible returns the torrents that pass the active filter
func (s *AppState) Visible() []domain.Torrent {
	return logic.FilterTorrents(s.Torrents, s.ActiveFilter())
}

// Highlighted returns the torrent under the cursor
func (s *AppState) Highlighted() (domain.Torrent, bool) {
	visible := s.Visible()
	cursor := s.Navigation.GetCursor()
	if cursor < 0 || cursor >= len(visible) {
		return domain.Torrent{}, false
	}
	return visible[cursor], true
}

// Selected resolves what an action applies to
func (s *AppState) Selected(preferHighlighted bool) selection.Selected {
	t, ok := s.Highlighted()
	return s.Selection.Resolve(t.ID, ok, preferHighlighted)
}

// Navigation

// NextItem moves the cursor down, wrapping
func (s *AppState) NextItem() {
	s.Navigation.Navigate(navigation.DirectionDown, len(s.Visible()))
}

// PrevItem moves the cursor up, wrapping
func (s *AppState) PrevItem() {
	s.Navigation.Navigate(navigation.DirectionUp, len(s.Visible()))
}

// FirstItem puts the cursor on the first visible torrent
func (s *AppState) FirstItem() {
	s.Navigation.Navigate(navigation.DirectionHome, len(s.Visible()))
}

// ClampCursor keeps the cursor inside the visible list
func (s *AppState) ClampCursor() {
	s.Navigation.Clamp(len(s.Visible()))
}

// NextTab switches to the next tab, wrapping
func (s *AppState) NextTab() {
	s.TabIndex = (s.TabIndex + 1) % len(s.Tabs)
}

// PrevTab switches to the previous tab, wrapping
func (s *AppState) PrevTab() {
	if s.TabIndex > 0 {
		s.TabIndex--
	} else {
		s.TabIndex = len(s.Tabs) - 1
	}
}

// SwitchTab jumps to the tab at index. Out of range indexes are ignored.
func (s *AppState) SwitchTab(index int) {
	if index >= 0 && index < len(s.Tabs) {
		s.TabIndex = index
	}
}

// SetTabs replaces the tab list, keeping the index in range
func (s *AppState) SetTabs(tabs []domain.Tab) {
	if len(tabs) == 0 {
		return
	}
	s.Tabs = tabs
	if s.TabIndex >= len(tabs) {
		s.TabIndex = len(tabs) - 1
	}
}

// Modes

// EnterMode opens a modal state with the edit buffer set to text. Any help
// overlay is closed.
func (s *AppState) EnterMode(mode types.Mode, text string) {
	s.Mode = mode
	s.ShowHelp = false
	s.Editor.Clear()
	s.Editor.SetText(text)
}

// ExitMode returns to normal mode and discards the edit buffer
func (s *AppState) ExitMode() {
	s.Mode = types.Normal
	s.Editor.Clear()
	s.RenameTarget = nil
	s.PendingIDs = nil
	s.ClampCursor()
}

// Status

// SetError shows err in the status bar
func (s *AppState) SetError(err error) {
	if err == nil {
		s.LastError = ""
		return
	}
	s.LastError = err.Error()
}

// SetStatus shows msg in the status bar and clears any error
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.LastError = ""
}
