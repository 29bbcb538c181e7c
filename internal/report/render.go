package report

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// AutoStyle picks a dark or light style from the terminal background.
const AutoStyle = "auto"

// Renderer renders markdown with glamour, reusing the term renderer until the
// width changes.
type Renderer struct {
	mu    sync.Mutex
	style string
	width int
	tr    *glamour.TermRenderer
}

// NewRenderer creates a renderer for a glamour standard style name, or AutoStyle.
func NewRenderer(style string) *Renderer {
	if style == "" {
		style = AutoStyle
	}
	return &Renderer{style: style}
}

// Render converts markdown into styled terminal text wrapped at width.
func (r *Renderer) Render(markdown string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tr == nil || r.width != width {
		styleOpt := glamour.WithStandardStyle(r.style)
		if r.style == AutoStyle {
			styleOpt = glamour.WithAutoStyle()
		}
		tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
		if err != nil {
			return "", err
		}
		r.tr = tr
		r.width = width
	}

	return r.tr.Render(markdown)
}
