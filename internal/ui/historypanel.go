package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vidyasagar/bhist/internal/storage"
	"github.com/vidyasagar/bhist/internal/theme"
)

// HistoryPanel displays a scrollable list of recorded visits with vim navigation.
type HistoryPanel struct {
	entries  []storage.VisitRecord
	cursor   int
	offset   int
	width    int
	height   int
	visible  bool
	lastGKey bool
}

// NewHistoryPanel creates a new history panel.
func NewHistoryPanel() HistoryPanel {
	return HistoryPanel{}
}

// SetEntries replaces the listed visits, keeping the cursor in range.
func (hp *HistoryPanel) SetEntries(entries []storage.VisitRecord) {
	hp.entries = entries
	if hp.cursor >= len(entries) {
		hp.cursor = max(len(entries)-1, 0)
	}
	hp.ensureVisible()
}

// Len returns the number of listed visits.
func (hp *HistoryPanel) Len() int {
	return len(hp.entries)
}

// SetSize updates the panel dimensions.
func (hp *HistoryPanel) SetSize(w, h int) {
	hp.width = w
	hp.height = h
}

// Show makes the panel visible with the cursor on the first entry.
func (hp *HistoryPanel) Show() {
	hp.visible = true
	hp.cursor = 0
	hp.offset = 0
	hp.lastGKey = false
}

// Hide closes the panel.
func (hp *HistoryPanel) Hide() {
	hp.visible = false
	hp.lastGKey = false
}

// IsVisible reports whether the panel is shown.
func (hp *HistoryPanel) IsVisible() bool {
	return hp.visible
}

// CursorUp moves the cursor up one entry.
func (hp *HistoryPanel) CursorUp() {
	hp.lastGKey = false
	if hp.cursor > 0 {
		hp.cursor--
		hp.ensureVisible()
	}
}

// CursorDown moves the cursor down one entry.
func (hp *HistoryPanel) CursorDown() {
	hp.lastGKey = false
	if hp.cursor < len(hp.entries)-1 {
		hp.cursor++
		hp.ensureVisible()
	}
}

// GotoTop moves to the first entry.
func (hp *HistoryPanel) GotoTop() {
	hp.lastGKey = false
	hp.cursor = 0
	hp.offset = 0
}

// GotoBottom moves to the last entry.
func (hp *HistoryPanel) GotoBottom() {
	hp.lastGKey = false
	if len(hp.entries) > 0 {
		hp.cursor = len(hp.entries) - 1
		hp.ensureVisible()
	}
}

// HalfPageDown moves the cursor down half a page.
func (hp *HistoryPanel) HalfPageDown() {
	hp.lastGKey = false
	hp.cursor = min(hp.cursor+hp.visibleCount()/2, max(len(hp.entries)-1, 0))
	hp.ensureVisible()
}

// HalfPageUp moves the cursor up half a page.
func (hp *HistoryPanel) HalfPageUp() {
	hp.lastGKey = false
	hp.cursor = max(hp.cursor-hp.visibleCount()/2, 0)
	hp.ensureVisible()
}

// HandleGKey handles "g"; returns true when "gg" completed.
func (hp *HistoryPanel) HandleGKey() bool {
	if hp.lastGKey {
		hp.GotoTop()
		return true
	}
	hp.lastGKey = true
	return false
}

// ResetGKey clears a pending "g".
func (hp *HistoryPanel) ResetGKey() {
	hp.lastGKey = false
}

// Selected returns the visit under the cursor.
func (hp *HistoryPanel) Selected() (storage.VisitRecord, bool) {
	if hp.cursor < 0 || hp.cursor >= len(hp.entries) {
		return storage.VisitRecord{}, false
	}
	return hp.entries[hp.cursor], true
}

// visibleCount is how many two-line entries fit under the two-line header.
func (hp *HistoryPanel) visibleCount() int {
	return max((hp.height-3)/2, 1)
}

func (hp *HistoryPanel) ensureVisible() {
	visible := hp.visibleCount()
	if hp.cursor < hp.offset {
		hp.offset = hp.cursor
	}
	if hp.cursor >= hp.offset+visible {
		hp.offset = hp.cursor - visible + 1
	}
	hp.offset = max(hp.offset, 0)
}

// View renders the history panel.
func (hp *HistoryPanel) View() string {
	if !hp.visible {
		return ""
	}

	t := theme.Current

	panelStyle := lipgloss.NewStyle().
		Width(hp.width).
		Height(hp.height).
		Background(t.Background)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Background(t.Surface).
		Width(hp.width).
		Padding(0, 1)

	rowStyle := lipgloss.NewStyle().Width(hp.width).Padding(0, 1)
	selectedStyle := rowStyle.Foreground(t.TextBright).Background(t.Selection).Bold(true)
	selectedTimeStyle := rowStyle.Foreground(t.Timestamp).Background(t.Selection)
	normalStyle := rowStyle.Foreground(t.URL)
	timeStyle := rowStyle.Foreground(t.Timestamp)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Padding(0, 1)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("History (%d)", len(hp.entries))))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", max(hp.width-2, 1))))
	sb.WriteString("\n")

	if len(hp.entries) == 0 {
		sb.WriteString(dimStyle.Render("History is empty."))
		sb.WriteString("\n")
		return panelStyle.Render(sb.String())
	}

	end := min(hp.offset+hp.visibleCount(), len(hp.entries))
	maxLen := max(hp.width-4, 10)

	for i := hp.offset; i < end; i++ {
		rec := hp.entries[i]
		url := truncate(rec.URL, maxLen)
		ts := truncate(rec.Timestamp, maxLen-2)

		if i == hp.cursor {
			sb.WriteString(selectedStyle.Render("▸ " + url))
			sb.WriteString("\n")
			sb.WriteString(selectedTimeStyle.Render("  " + ts))
		} else {
			sb.WriteString(normalStyle.Render("  " + url))
			sb.WriteString("\n")
			sb.WriteString(timeStyle.Render("  " + ts))
		}
		sb.WriteString("\n")
	}

	linesUsed := 2 + (end-hp.offset)*2
	if remaining := hp.height - linesUsed; remaining > 1 {
		sb.WriteString(strings.Repeat("\n", remaining-1))
		sb.WriteString(lipgloss.NewStyle().
			Foreground(t.TextDim).
			Italic(true).
			Padding(0, 1).
			Render("j/k:move  Enter:visit  d:delete url  Esc:close"))
	}

	return panelStyle.Render(sb.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 4 {
		return s
	}
	return string(r[:n-3]) + "..."
}
