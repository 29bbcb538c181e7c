package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vidyasagar/bhist/internal/theme"
)

// LeaderBinding is one shortcut in the palette.
type LeaderBinding struct {
	Key  string
	Desc string
}

// LeaderGroup is a named column of shortcuts.
type LeaderGroup struct {
	Name     string
	Bindings []LeaderBinding
}

// LeaderPanel is the popup palette shown after the leader key.
type LeaderPanel struct {
	visible bool
	width   int
	height  int
	groups  []LeaderGroup
}

// NewLeaderPanel creates a leader panel with the default groups.
func NewLeaderPanel() LeaderPanel {
	return LeaderPanel{
		groups: DefaultLeaderGroups(),
	}
}

// DefaultLeaderGroups returns the built-in shortcut groups.
func DefaultLeaderGroups() []LeaderGroup {
	return []LeaderGroup{
		{
			Name: "Navigate",
			Bindings: []LeaderBinding{
				{Key: "o", Desc: "Visit URL"},
				{Key: "b", Desc: "Back"},
				{Key: "f", Desc: "Forward"},
				{Key: "c", Desc: "Current page"},
			},
		},
		{
			Name: "History",
			Bindings: []LeaderBinding{
				{Key: "h", Desc: "Full history"},
				{Key: "H", Desc: "History panel"},
				{Key: "/", Desc: "Search"},
				{Key: "d", Desc: "Delete URL"},
				{Key: "s", Desc: "Summary"},
			},
		},
		{
			Name: "Bookmarks",
			Bindings: []LeaderBinding{
				{Key: "B", Desc: "Bookmark page"},
				{Key: "l", Desc: "List"},
				{Key: "m", Desc: "Import HTML"},
			},
		},
		{
			Name: "Session",
			Bindings: []LeaderBinding{
				{Key: "e", Desc: "Export"},
				{Key: "i", Desc: "Import"},
				{Key: "I", Desc: "Incognito"},
				{Key: "T", Desc: "Next theme"},
				{Key: "?", Desc: "Help"},
			},
		},
	}
}

// Groups returns the palette contents.
func (lp *LeaderPanel) Groups() []LeaderGroup {
	return lp.groups
}

// Show makes the panel visible.
func (lp *LeaderPanel) Show() {
	lp.visible = true
}

// Hide closes the panel.
func (lp *LeaderPanel) Hide() {
	lp.visible = false
}

// IsVisible reports whether the panel is shown.
func (lp *LeaderPanel) IsVisible() bool {
	return lp.visible
}

// SetSize sets the available area for rendering.
func (lp *LeaderPanel) SetSize(w, h int) {
	lp.width = w
	lp.height = h
}

// View renders the palette as a bordered box of columns.
func (lp *LeaderPanel) View() string {
	if !lp.visible {
		return ""
	}

	t := theme.Current

	groupNameStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Underline(true)
	keyBadgeStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Background).Background(t.Secondary).Padding(0, 1)
	descStyle := lipgloss.NewStyle().Foreground(t.Text)
	separatorStyle := lipgloss.NewStyle().Foreground(t.Border)
	colStyle := lipgloss.NewStyle().Width(18)

	rows := 0
	for _, g := range lp.groups {
		rows = max(rows, len(g.Bindings))
	}

	var columns []string
	for i, group := range lp.groups {
		lines := []string{groupNameStyle.Render(group.Name), ""}
		for _, b := range group.Bindings {
			lines = append(lines, keyBadgeStyle.Render(b.Key)+descStyle.Render(" "+b.Desc))
		}
		for range rows - len(group.Bindings) {
			lines = append(lines, "")
		}
		col := colStyle.Render(strings.Join(lines, "\n"))
		columns = append(columns, col)

		if i < len(lp.groups)-1 {
			sep := strings.Repeat(separatorStyle.Render(" │ ")+"\n", lipgloss.Height(col))
			columns = append(columns, strings.TrimSuffix(sep, "\n"))
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	rule := separatorStyle.Render(strings.Repeat("─", lipgloss.Width(body)))

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("Leader"),
		rule,
		"",
		body,
		"",
		rule,
		lipgloss.NewStyle().Foreground(t.TextDim).Italic(true).Render("press a key or Esc to dismiss"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Render(content)
}
