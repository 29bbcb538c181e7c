// Package theme holds the color palettes used by the interactive driver.
package theme

import (
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name string

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Text       lipgloss.Color
	TextDim    lipgloss.Color
	TextBright lipgloss.Color

	Background  lipgloss.Color
	Surface     lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color

	URL       lipgloss.Color
	Timestamp lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Info      lipgloss.Color

	// Incognito tints the status bar while visits are not recorded.
	Incognito lipgloss.Color
}

var themes = map[string]Theme{
	"default":    Default,
	"gruvbox":    Gruvbox,
	"nord":       Nord,
	"dracula":    Dracula,
	"tokyonight": TokyoNight,
}

var Default = Theme{
	Name:        "default",
	Primary:     lipgloss.Color("#7C3AED"),
	Secondary:   lipgloss.Color("#06B6D4"),
	Accent:      lipgloss.Color("#F59E0B"),
	Text:        lipgloss.Color("#E2E8F0"),
	TextDim:     lipgloss.Color("#64748B"),
	TextBright:  lipgloss.Color("#F8FAFC"),
	Background:  lipgloss.Color("#0F172A"),
	Surface:     lipgloss.Color("#1E293B"),
	Border:      lipgloss.Color("#334155"),
	BorderFocus: lipgloss.Color("#7C3AED"),
	Selection:   lipgloss.Color("#4C1D95"),
	URL:         lipgloss.Color("#38BDF8"),
	Timestamp:   lipgloss.Color("#94A3B8"),
	Error:       lipgloss.Color("#EF4444"),
	Success:     lipgloss.Color("#22C55E"),
	Warning:     lipgloss.Color("#F59E0B"),
	Info:        lipgloss.Color("#3B82F6"),
	Incognito:   lipgloss.Color("#A855F7"),
}

var Gruvbox = Theme{
	Name:        "gruvbox",
	Primary:     lipgloss.Color("#D65D0E"),
	Secondary:   lipgloss.Color("#458588"),
	Accent:      lipgloss.Color("#D79921"),
	Text:        lipgloss.Color("#EBDBB2"),
	TextDim:     lipgloss.Color("#928374"),
	TextBright:  lipgloss.Color("#FBF1C7"),
	Background:  lipgloss.Color("#282828"),
	Surface:     lipgloss.Color("#3C3836"),
	Border:      lipgloss.Color("#504945"),
	BorderFocus: lipgloss.Color("#D65D0E"),
	Selection:   lipgloss.Color("#665C54"),
	URL:         lipgloss.Color("#83A598"),
	Timestamp:   lipgloss.Color("#A89984"),
	Error:       lipgloss.Color("#FB4934"),
	Success:     lipgloss.Color("#B8BB26"),
	Warning:     lipgloss.Color("#FABD2F"),
	Info:        lipgloss.Color("#83A598"),
	Incognito:   lipgloss.Color("#D3869B"),
}

var Nord = Theme{
	Name:        "nord",
	Primary:     lipgloss.Color("#88C0D0"),
	Secondary:   lipgloss.Color("#81A1C1"),
	Accent:      lipgloss.Color("#EBCB8B"),
	Text:        lipgloss.Color("#ECEFF4"),
	TextDim:     lipgloss.Color("#4C566A"),
	TextBright:  lipgloss.Color("#ECEFF4"),
	Background:  lipgloss.Color("#2E3440"),
	Surface:     lipgloss.Color("#3B4252"),
	Border:      lipgloss.Color("#434C5E"),
	BorderFocus: lipgloss.Color("#88C0D0"),
	Selection:   lipgloss.Color("#5E81AC"),
	URL:         lipgloss.Color("#8FBCBB"),
	Timestamp:   lipgloss.Color("#D8DEE9"),
	Error:       lipgloss.Color("#BF616A"),
	Success:     lipgloss.Color("#A3BE8C"),
	Warning:     lipgloss.Color("#EBCB8B"),
	Info:        lipgloss.Color("#5E81AC"),
	Incognito:   lipgloss.Color("#B48EAD"),
}

var Dracula = Theme{
	Name:        "dracula",
	Primary:     lipgloss.Color("#BD93F9"),
	Secondary:   lipgloss.Color("#8BE9FD"),
	Accent:      lipgloss.Color("#F1FA8C"),
	Text:        lipgloss.Color("#F8F8F2"),
	TextDim:     lipgloss.Color("#6272A4"),
	TextBright:  lipgloss.Color("#F8F8F2"),
	Background:  lipgloss.Color("#282A36"),
	Surface:     lipgloss.Color("#44475A"),
	Border:      lipgloss.Color("#6272A4"),
	BorderFocus: lipgloss.Color("#BD93F9"),
	Selection:   lipgloss.Color("#6272A4"),
	URL:         lipgloss.Color("#8BE9FD"),
	Timestamp:   lipgloss.Color("#BFBFBF"),
	Error:       lipgloss.Color("#FF5555"),
	Success:     lipgloss.Color("#50FA7B"),
	Warning:     lipgloss.Color("#F1FA8C"),
	Info:        lipgloss.Color("#8BE9FD"),
	Incognito:   lipgloss.Color("#FF79C6"),
}

var TokyoNight = Theme{
	Name:        "tokyonight",
	Primary:     lipgloss.Color("#7AA2F7"),
	Secondary:   lipgloss.Color("#7DCFFF"),
	Accent:      lipgloss.Color("#E0AF68"),
	Text:        lipgloss.Color("#C0CAF5"),
	TextDim:     lipgloss.Color("#565F89"),
	TextBright:  lipgloss.Color("#C0CAF5"),
	Background:  lipgloss.Color("#1A1B26"),
	Surface:     lipgloss.Color("#24283B"),
	Border:      lipgloss.Color("#3B4261"),
	BorderFocus: lipgloss.Color("#7AA2F7"),
	Selection:   lipgloss.Color("#364A82"),
	URL:         lipgloss.Color("#7DCFFF"),
	Timestamp:   lipgloss.Color("#A9B1D6"),
	Error:       lipgloss.Color("#F7768E"),
	Success:     lipgloss.Color("#9ECE6A"),
	Warning:     lipgloss.Color("#E0AF68"),
	Info:        lipgloss.Color("#7AA2F7"),
	Incognito:   lipgloss.Color("#BB9AF7"),
}

// Current is the active theme.
var Current = Default

// Set changes the active theme by name.
func Set(name string) bool {
	if t, ok := themes[name]; ok {
		Current = t
		return true
	}
	return false
}

// Exists reports whether name is a known theme.
func Exists(name string) bool {
	_, ok := themes[name]
	return ok
}

// List returns all available theme names, sorted.
func List() []string {
	return slices.Sorted(maps.Keys(themes))
}

// Next returns the theme after the current one in List order.
func Next() string {
	names := List()
	i := slices.Index(names, Current.Name)
	return names[(i+1)%len(names)]
}
