package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vidyasagar/bhist/internal/theme"
)

// CommandType identifies the kind of command bar interaction.
type CommandType int

const (
	CommandNone     CommandType = iota
	CommandEx                   // : commands
	CommandSearch               // / history search
	CommandCategory             // bookmark category prompt
	CommandPassword             // bookmark listing credential
)

// CommandResult is emitted when a command is submitted.
type CommandResult struct {
	Type  CommandType
	Value string
}

// CommandBar is the one-line prompt at the bottom of the screen. Only ex
// commands are kept in its recall history; passwords are masked.
type CommandBar struct {
	input      textinput.Model
	active     bool
	cmdType    CommandType
	width      int
	history    []string
	historyPos int
}

// NewCommandBar creates a new command bar.
func NewCommandBar() CommandBar {
	ti := textinput.New()
	ti.CharLimit = 2048

	return CommandBar{
		input:      ti,
		historyPos: -1,
	}
}

// SetWidth sets the command bar width.
func (c *CommandBar) SetWidth(w int) {
	c.width = w
	c.input.Width = w - 4
}

// Open activates the command bar in the given mode.
func (c *CommandBar) Open(ct CommandType) tea.Cmd {
	c.active = true
	c.cmdType = ct
	c.input.Reset()
	c.input.EchoMode = textinput.EchoNormal
	c.historyPos = -1

	switch ct {
	case CommandEx:
		c.input.Placeholder = "command..."
		c.input.Prompt = ":"
	case CommandSearch:
		c.input.Placeholder = "keyword..."
		c.input.Prompt = "/"
	case CommandCategory:
		c.input.Placeholder = "category..."
		c.input.Prompt = "bookmark under: "
	case CommandPassword:
		c.input.Placeholder = ""
		c.input.Prompt = "password: "
		c.input.EchoMode = textinput.EchoPassword
		c.input.EchoCharacter = '•'
	}

	return c.input.Focus()
}

// Close deactivates the command bar.
func (c *CommandBar) Close() {
	c.active = false
	c.cmdType = CommandNone
	c.input.Blur()
	c.input.Reset()
}

// IsActive reports whether the command bar is open.
func (c *CommandBar) IsActive() bool {
	return c.active
}

// SetValue pre-fills the input.
func (c *CommandBar) SetValue(val string) {
	c.input.SetValue(val)
	c.input.SetCursor(len(val))
}

// Type returns the current command type.
func (c *CommandBar) Type() CommandType {
	return c.cmdType
}

// Submit returns the command result and closes the bar. Only ex commands
// are trimmed; search keywords, categories and passwords are passed as typed.
func (c *CommandBar) Submit() CommandResult {
	val := c.input.Value()
	if c.cmdType == CommandEx {
		val = strings.TrimSpace(val)
	}
	result := CommandResult{
		Type:  c.cmdType,
		Value: val,
	}

	if val != "" && c.cmdType == CommandEx {
		c.history = append(c.history, val)
	}

	c.Close()
	return result
}

// Update processes messages for the command bar.
func (c *CommandBar) Update(msg tea.Msg) (*CommandBar, tea.Cmd) {
	if !c.active {
		return c, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && c.cmdType == CommandEx {
		switch msg.Type {
		case tea.KeyUp:
			if len(c.history) > 0 {
				if c.historyPos < len(c.history)-1 {
					c.historyPos++
				}
				c.SetValue(c.history[len(c.history)-1-c.historyPos])
			}
			return c, nil
		case tea.KeyDown:
			switch {
			case c.historyPos > 0:
				c.historyPos--
				c.SetValue(c.history[len(c.history)-1-c.historyPos])
			case c.historyPos == 0:
				c.historyPos = -1
				c.input.Reset()
			}
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// View renders the command bar.
func (c *CommandBar) View() string {
	if !c.active {
		return ""
	}

	t := theme.Current

	barStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Width(c.width)

	return barStyle.Render(c.input.View())
}
