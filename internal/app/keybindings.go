package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vidyasagar/bhist/internal/report"
)

// KeyMap defines the normal-mode keybindings.
type KeyMap struct {
	// Scrolling
	ScrollDown   key.Binding
	ScrollUp     key.Binding
	HalfPageDown key.Binding
	HalfPageUp   key.Binding
	GotoTop      key.Binding
	GotoBottom   key.Binding

	// Navigation
	OpenURL key.Binding
	Back    key.Binding
	Forward key.Binding
	Current key.Binding

	// History and bookmarks
	Search        key.Binding
	HistoryToggle key.Binding
	Summary       key.Binding
	Bookmark      key.Binding
	Bookmarks     key.Binding

	// Session
	Incognito   key.Binding
	CommandMode key.Binding
	Leader      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default vim-style keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "scroll down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "scroll up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("Ctrl+d", "half page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("Ctrl+u", "half page up"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "go to top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		OpenURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "visit URL"),
		),
		Back: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "go back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "go forward"),
		),
		Current: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "current page and stacks"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search history"),
		),
		HistoryToggle: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("Ctrl+h", "toggle history panel"),
		),
		Summary: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "session summary"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "bookmark page"),
		),
		Bookmarks: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "list bookmarks"),
		),
		Incognito: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "toggle incognito"),
		),
		CommandMode: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command mode"),
		),
		Leader: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "leader palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// helpRows lists the bindings in display order for the help page.
func (k KeyMap) helpRows() []report.Binding {
	bindings := []key.Binding{
		k.OpenURL, k.Back, k.Forward, k.Current,
		k.Search, k.HistoryToggle, k.Summary,
		k.Bookmark, k.Bookmarks, k.Incognito,
		k.ScrollDown, k.ScrollUp, k.HalfPageDown, k.HalfPageUp, k.GotoTop, k.GotoBottom,
		k.CommandMode, k.Leader, k.Help, k.Quit,
	}
	rows := make([]report.Binding, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		rows = append(rows, report.Binding{Keys: h.Key, Desc: h.Desc})
	}
	return rows
}

// commandRows documents the : commands.
var commandRows = []report.Binding{
	{Keys: ":open <url>", Desc: "Visit a URL"},
	{Keys: ":back / :forward", Desc: "Navigate the stacks"},
	{Keys: ":current", Desc: "Current page and both stacks"},
	{Keys: ":history", Desc: "Full history"},
	{Keys: ":search <keyword>", Desc: "Visits whose URL contains keyword"},
	{Keys: ":delete <url>", Desc: "Remove every visit to url"},
	{Keys: ":bookmark <category>", Desc: "Bookmark the current page"},
	{Keys: ":bookmarks", Desc: "List bookmarks (password required)"},
	{Keys: ":importbm <file>", Desc: "Import a bookmarks.html export"},
	{Keys: ":export [file]", Desc: "Write history to file"},
	{Keys: ":import [file]", Desc: "Append history from file"},
	{Keys: ":summary", Desc: "Totals and top sites"},
	{Keys: ":incognito", Desc: "Toggle incognito mode"},
	{Keys: ":theme [name]", Desc: "Show or change theme"},
	{Keys: ":help", Desc: "This page"},
	{Keys: ":q", Desc: "Quit"},
}
