package config

// KeybindsConfig maps action names to keybind strings. An empty string
// leaves the action unbound.
type KeybindsConfig struct {
	Quit          string `toml:"quit"`
	NextTab       string `toml:"next_tab"`
	PrevTab       string `toml:"prev_tab"`
	NextTorrent   string `toml:"next_torrent"`
	PrevTorrent   string `toml:"prev_torrent"`
	SwitchTab1    string `toml:"switch_tab_1"`
	SwitchTab2    string `toml:"switch_tab_2"`
	SwitchTab3    string `toml:"switch_tab_3"`
	SwitchTab4    string `toml:"switch_tab_4"`
	SwitchTab5    string `toml:"switch_tab_5"`
	SwitchTab6    string `toml:"switch_tab_6"`
	SwitchTab7    string `toml:"switch_tab_7"`
	SwitchTab8    string `toml:"switch_tab_8"`
	SwitchTab9    string `toml:"switch_tab_9"`
	SwitchTab10   string `toml:"switch_tab_10"`
	ToggleTorrent string `toml:"toggle_torrent"`
	ToggleAll     string `toml:"toggle_all"`
	Delete        string `toml:"delete"`
	DeleteForce   string `toml:"delete_force"`
	Select        string `toml:"select"`
	ToggleHelp    string `toml:"toggle_help"`
	MoveTorrent   string `toml:"move_torrent"`
	RenameTorrent string `toml:"rename_torrent"`
	Filter        string `toml:"filter"`
	ClearFilter   string `toml:"clear_filter"`
	PauseAll      string `toml:"pause_all"`
	StartAll      string `toml:"start_all"`
}

// DefaultKeybinds returns the built-in key table
func DefaultKeybinds() KeybindsConfig {
	return KeybindsConfig{
		Quit:          "q",
		NextTab:       "l",
		PrevTab:       "h",
		NextTorrent:   "j",
		PrevTorrent:   "k",
		SwitchTab1:    "1",
		SwitchTab2:    "2",
		SwitchTab3:    "3",
		SwitchTab4:    "4",
		SwitchTab5:    "5",
		SwitchTab6:    "6",
		SwitchTab7:    "7",
		SwitchTab8:    "8",
		SwitchTab9:    "9",
		SwitchTab10:   "0",
		ToggleTorrent: "enter",
		ToggleAll:     "a",
		Delete:        "d",
		DeleteForce:   "D",
		Select:        " ",
		ToggleHelp:    "?",
		MoveTorrent:   "m",
		RenameTorrent: "r",
		Filter:        "/",
		ClearFilter:   "esc",
		PauseAll:      "P",
		StartAll:      "S",
	}
}

// KeybindEntry is one configured action name and its keybind string
type KeybindEntry struct {
	Name string
	Keys string
}

// Entries lists the keybinds in matching order. Earlier entries win when two
// keybinds resolve to the same key.
func (k KeybindsConfig) Entries() []KeybindEntry {
	return []KeybindEntry{
		{"quit", k.Quit},
		{"next_tab", k.NextTab},
		{"prev_tab", k.PrevTab},
		{"next_torrent", k.NextTorrent},
		{"prev_torrent", k.PrevTorrent},
		{"switch_tab_1", k.SwitchTab1},
		{"switch_tab_2", k.SwitchTab2},
		{"switch_tab_3", k.SwitchTab3},
		{"switch_tab_4", k.SwitchTab4},
		{"switch_tab_5", k.SwitchTab5},
		{"switch_tab_6", k.SwitchTab6},
		{"switch_tab_7", k.SwitchTab7},
		{"switch_tab_8", k.SwitchTab8},
		{"switch_tab_9", k.SwitchTab9},
		{"switch_tab_10", k.SwitchTab10},
		{"toggle_torrent", k.ToggleTorrent},
		{"toggle_all", k.ToggleAll},
		{"delete", k.Delete},
		{"delete_force", k.DeleteForce},
		{"select", k.Select},
		{"toggle_help", k.ToggleHelp},
		{"move_torrent", k.MoveTorrent},
		{"rename_torrent", k.RenameTorrent},
		{"filter", k.Filter},
		{"clear_filter", k.ClearFilter},
		{"pause_all", k.PauseAll},
		{"start_all", k.StartAll},
	}
}
