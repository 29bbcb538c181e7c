package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyasagar/bhist/internal/storage"
)

func typeInto(c *CommandBar, s string) {
	c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestCommandBarRecallsExCommandsOnly(t *testing.T) {
	c := NewCommandBar()
	c.SetWidth(80)

	c.Open(CommandEx)
	typeInto(&c, "history")
	assert.Equal(t, CommandResult{Type: CommandEx, Value: "history"}, c.Submit())
	assert.False(t, c.IsActive())

	c.Open(CommandPassword)
	assert.Equal(t, textinput.EchoPassword, c.input.EchoMode)
	typeInto(&c, "admin")
	assert.Equal(t, CommandResult{Type: CommandPassword, Value: "admin"}, c.Submit())

	c.Open(CommandEx)
	assert.Equal(t, textinput.EchoNormal, c.input.EchoMode)
	c.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "history", c.input.Value())
	c.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, c.input.Value())
}

func TestCommandBarKeepsPromptWhitespace(t *testing.T) {
	c := NewCommandBar()
	c.SetWidth(80)

	c.Open(CommandEx)
	typeInto(&c, "  history ")
	assert.Equal(t, "history", c.Submit().Value)

	for _, typ := range []CommandType{CommandSearch, CommandCategory, CommandPassword} {
		c.Open(typ)
		typeInto(&c, " admin ")
		assert.Equal(t, CommandResult{Type: typ, Value: " admin "}, c.Submit())
	}
}

func TestHistoryPanelCursor(t *testing.T) {
	hp := NewHistoryPanel()
	hp.SetSize(30, 11)
	hp.Show()

	_, ok := hp.Selected()
	assert.False(t, ok)

	entries := make([]storage.VisitRecord, 10)
	for i := range entries {
		entries[i] = storage.VisitRecord{URL: string(rune('a' + i)), Timestamp: "t"}
	}
	hp.SetEntries(entries)

	hp.GotoBottom()
	rec, ok := hp.Selected()
	require.True(t, ok)
	assert.Equal(t, "j", rec.URL)
	assert.Equal(t, 6, hp.offset)

	assert.False(t, hp.HandleGKey())
	assert.True(t, hp.HandleGKey())
	rec, _ = hp.Selected()
	assert.Equal(t, "a", rec.URL)

	hp.GotoBottom()
	hp.SetEntries(entries[:3])
	rec, _ = hp.Selected()
	assert.Equal(t, "c", rec.URL)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "https:...", truncate("https://example.com", 9))
}
