package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vidyasagar/bhist/internal/theme"
)

// Level colors a status message.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// StatusBar shows the mode, the current page and navigation depth.
type StatusBar struct {
	page       string
	mode       string
	message    string
	level      Level
	incognito  bool
	back       int
	forward    int
	scrollInfo string
	width      int
}

// NewStatusBar creates a new status bar.
func NewStatusBar() StatusBar {
	return StatusBar{
		mode: "NORMAL",
	}
}

// SetWidth sets the status bar width.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetPage sets the current page; empty means no page is loaded.
func (s *StatusBar) SetPage(url string) {
	s.page = url
}

// SetDepth sets the back and forward stack sizes.
func (s *StatusBar) SetDepth(back, forward int) {
	s.back, s.forward = back, forward
}

// SetIncognito toggles the incognito badge.
func (s *StatusBar) SetIncognito(on bool) {
	s.incognito = on
}

// SetScrollInfo sets the scroll position string (e.g. "42%", "TOP", "BOT").
func (s *StatusBar) SetScrollInfo(info string) {
	s.scrollInfo = info
}

// SetMode sets the current mode indicator.
func (s *StatusBar) SetMode(mode string) {
	s.mode = mode
}

// Mode returns the current mode indicator.
func (s *StatusBar) Mode() string {
	return s.mode
}

// SetMessage sets an informational status message.
func (s *StatusBar) SetMessage(msg string) {
	s.message, s.level = msg, LevelInfo
}

// Flash sets a status message with an explicit level.
func (s *StatusBar) Flash(level Level, msg string) {
	s.message, s.level = msg, level
}

// Message returns the current status message.
func (s *StatusBar) Message() string {
	return s.message
}

// View renders the status bar.
func (s *StatusBar) View() string {
	t := theme.Current

	modeBg := t.Primary
	switch s.mode {
	case "INSERT":
		modeBg = t.Success
	case "COMMAND":
		modeBg = t.Accent
	case "HISTORY":
		modeBg = t.Secondary
	case "LEADER":
		modeBg = t.Info
	}
	mode := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(t.Background).
		Background(modeBg).
		Render(s.mode)

	var badge string
	if s.incognito {
		badge = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(t.Background).
			Background(t.Incognito).
			Render("INCOGNITO")
	}

	var left string
	switch {
	case s.message != "":
		fg := t.Info
		switch s.level {
		case LevelSuccess:
			fg = t.Success
		case LevelError:
			fg = t.Error
		}
		left = lipgloss.NewStyle().Foreground(fg).Background(t.Surface).Padding(0, 1).Render(s.message)
	case s.page != "":
		left = lipgloss.NewStyle().Foreground(t.URL).Background(t.Surface).Padding(0, 1).Render(s.page)
	default:
		left = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Padding(0, 1).Render("no page loaded")
	}

	rightStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface).
		Padding(0, 1)
	right := rightStyle.Render(fmt.Sprintf("◀ %d  %d ▶", s.back, s.forward))
	if s.scrollInfo != "" {
		right += lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary).
			Background(t.Surface).
			Padding(0, 1).
			Render(s.scrollInfo)
	}

	used := lipgloss.Width(mode) + lipgloss.Width(badge) + lipgloss.Width(left) + lipgloss.Width(right)
	spacer := lipgloss.NewStyle().
		Background(t.Surface).
		Render(strings.Repeat(" ", max(s.width-used, 0)))

	return mode + badge + left + spacer + right
}
