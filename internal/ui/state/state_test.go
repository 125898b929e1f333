package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traxor/internal/domain"
	"traxor/internal/ui/input/types"
	"traxor/internal/ui/services/selection"
)

func torrents(names ...string) []domain.Torrent {
	out := make([]domain.Torrent, len(names))
	for i, n := range names {
		out[i] = domain.Torrent{ID: int64(i + 1), Name: n, DownloadDir: "/data"}
	}
	return out
}

func threeTabs() []domain.Tab {
	return []domain.Tab{{Name: "All"}, {Name: "Active"}, {Name: "Downloading"}}
}

func TestNewAppState(t *testing.T) {
	s := NewAppState(nil)
	assert.True(t, s.Running)
	assert.True(t, s.Mode.IsNormal())
	require.Len(t, s.Tabs, 1)
	_, ok := s.Highlighted()
	assert.False(t, ok)
}

func TestTabs(t *testing.T) {
	s := NewAppState(threeTabs())

	s.PrevTab()
	assert.Equal(t, 2, s.TabIndex)
	s.NextTab()
	assert.Equal(t, 0, s.TabIndex)

	s.SwitchTab(1)
	assert.Equal(t, "Active", s.Tabs[s.TabIndex].Name)

	s.SwitchTab(9)
	assert.Equal(t, 1, s.TabIndex, "out of range is ignored")
	s.SwitchTab(-1)
	assert.Equal(t, 1, s.TabIndex)

	s.SetTabs([]domain.Tab{{Name: "Only"}})
	assert.Equal(t, 0, s.TabIndex)
}

func TestNextPrevItem(t *testing.T) {
	s := NewAppState(nil)
	s.NextItem()
	_, ok := s.Highlighted()
	assert.False(t, ok, "no torrents, no cursor")

	s.SetTorrents(torrents("a", "b", "c"))
	s.NextItem()
	cur, ok := s.Highlighted()
	require.True(t, ok)
	assert.Equal(t, "a", cur.Name)

	s.PrevItem()
	cur, _ = s.Highlighted()
	assert.Equal(t, "c", cur.Name)
}

func TestSetTorrentsKeepsCursorOnSameTorrent(t *testing.T) {
	s := NewAppState(nil)
	s.SetTorrents(torrents("a", "b", "c"))
	s.NextItem()
	s.NextItem()

	// b moves to the end of the list
	s.SetTorrents([]domain.Torrent{{ID: 1, Name: "a"}, {ID: 3, Name: "c"}, {ID: 2, Name: "b"}})
	cur, ok := s.Highlighted()
	require.True(t, ok)
	assert.Equal(t, int64(2), cur.ID)
}

func TestSetTorrentsClampsAndPrunesSelection(t *testing.T) {
	s := NewAppState(nil)
	s.SetTorrents(torrents("a", "b", "c"))
	s.Navigation.MoveToIndex(2, 3)
	s.Selection.Toggle(3)
	s.Selection.Toggle(1)

	s.SetTorrents(torrents("a", "b"))
	cur, ok := s.Highlighted()
	require.True(t, ok)
	assert.Equal(t, "b", cur.Name)
	assert.Equal(t, []int64{1}, s.Selection.Set().Sorted())

	s.SetTorrents(nil)
	_, ok = s.Highlighted()
	assert.False(t, ok)
}

func TestActiveFilter(t *testing.T) {
	s := NewAppState(nil)
	s.SetTorrents(torrents("ubuntu", "debian", "arch"))
	s.FilterQuery = "deb"
	assert.Len(t, s.Visible(), 1)

	s.EnterMode(types.Mode{Kind: types.ModeFilter}, s.FilterQuery)
	s.Editor.Backspace()
	s.Editor.Backspace()
	s.Editor.Backspace()
	assert.Equal(t, "", s.ActiveFilter(), "prompt edits apply live")
	assert.Len(t, s.Visible(), 3)

	s.ExitMode()
	assert.Equal(t, "deb", s.ActiveFilter(), "cancel keeps the saved filter")
}

func TestEnterModeClosesHelp(t *testing.T) {
	s := NewAppState(nil)
	s.ShowHelp = true
	s.EnterMode(types.Mode{Kind: types.ModeMove}, "/data")
	assert.False(t, s.ShowHelp)
	assert.Equal(t, "/data", s.Editor.Text())
	assert.Equal(t, len("/data"), s.Editor.Cursor())

	s.ExitMode()
	assert.True(t, s.Mode.IsNormal())
	assert.Equal(t, "", s.Editor.Text())
}

func TestSelected(t *testing.T) {
	s := NewAppState(nil)
	assert.Empty(t, s.Selected(false).IDs())

	s.SetTorrents(torrents("a", "b", "c"))
	s.NextItem()
	assert.Equal(t, selection.Current{ID: 1}, s.Selected(false))

	s.Selection.Toggle(3)
	assert.Equal(t, []int64{3}, s.Selected(false).IDs())
	assert.Equal(t, selection.Current{ID: 1}, s.Selected(true))
}

func TestStatus(t *testing.T) {
	s := NewAppState(nil)
	s.SetError(errors.New("connection refused"))
	assert.Equal(t, "connection refused", s.LastError)

	s.SetStatus("moved 2 torrents")
	assert.Equal(t, "", s.LastError)
	assert.Equal(t, "moved 2 torrents", s.StatusMessage)
}
