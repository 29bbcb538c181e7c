package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vidyasagar/bhist/internal/report"
	"github.com/vidyasagar/bhist/internal/session"
	"github.com/vidyasagar/bhist/internal/storage"
	"github.com/vidyasagar/bhist/internal/theme"
	"github.com/vidyasagar/bhist/internal/ui"
)

func (m *Model) visit(url string) {
	recorded := m.sess.Visit(url)
	if recorded {
		m.recent.Add(url, struct{}{})
		m.refreshSuggestions()
		m.statusBar.Flash(ui.LevelSuccess, "Visited: "+url)
	} else {
		m.statusBar.SetMessage("Visited: " + url + " (incognito, not recorded)")
	}
	m.showNavigation()
}

func (m *Model) back() {
	url, err := m.sess.Back()
	if err != nil {
		m.statusBar.Flash(ui.LevelError, "No pages to go back to.")
		return
	}
	m.statusBar.SetMessage("Current Page: " + url)
	m.showNavigation()
}

func (m *Model) forward() {
	url, err := m.sess.Forward()
	if err != nil {
		m.statusBar.Flash(ui.LevelError, "No pages to go forward to.")
		return
	}
	m.statusBar.SetMessage("Current Page: " + url)
	m.showNavigation()
}

// startBookmark asks for a category when a page is loaded.
func (m *Model) startBookmark() tea.Cmd {
	if _, err := m.sess.CurrentPage(); err != nil {
		m.statusBar.Flash(ui.LevelError, "No page loaded to bookmark.")
		return nil
	}
	return m.openPrompt(ui.CommandCategory, "")
}

func (m *Model) bookmark(category string) {
	if category == "" {
		m.statusBar.Flash(ui.LevelError, "Category cannot be empty.")
		return
	}
	url, added, err := m.sess.Bookmark(category)
	switch {
	case errors.Is(err, session.ErrNoPage):
		m.statusBar.Flash(ui.LevelError, "No page loaded to bookmark.")
	case err != nil:
		m.statusBar.Flash(ui.LevelError, err.Error())
	case !added:
		m.statusBar.SetMessage(fmt.Sprintf("'%s' is already bookmarked under '%s'.", url, category))
	default:
		m.statusBar.Flash(ui.LevelSuccess, fmt.Sprintf("Bookmarked '%s' under category '%s'.", url, category))
	}
}

func (m *Model) listBookmarks(credential string) {
	cats, err := m.sess.ListBookmarks(credential)
	if err != nil {
		m.statusBar.Flash(ui.LevelError, "Incorrect password. Access denied.")
		return
	}
	m.statusBar.SetMessage("")
	m.showDoc(report.Bookmarks(cats))
}

func (m *Model) importBookmarks(path string) {
	if path == "" {
		m.statusBar.Flash(ui.LevelError, "Usage: :importbm <file>")
		return
	}
	n, err := m.sess.ImportBookmarks(path)
	if err != nil {
		m.statusBar.Flash(ui.LevelError, "Could not import bookmarks from "+path)
		return
	}
	m.statusBar.Flash(ui.LevelSuccess, fmt.Sprintf("Imported %d bookmark(s) from %s", n, path))
}

func (m *Model) search(keyword string) {
	if keyword == "" {
		m.statusBar.Flash(ui.LevelError, "Usage: :search <keyword>")
		return
	}
	found := slices.Collect(m.sess.Search(keyword))
	m.statusBar.SetMessage(fmt.Sprintf("%d match(es) for %q", len(found), keyword))
	m.showDoc(report.Search(keyword, found))
}

func (m *Model) deleteURL(url string) {
	n := m.sess.DeleteURL(url)
	m.recent.Remove(url)
	m.refreshSuggestions()
	if m.historyPanel.IsVisible() {
		m.refreshHistoryPanel()
	}
	if n == 0 {
		m.statusBar.SetMessage("No history entries for " + url)
		return
	}
	m.statusBar.Flash(ui.LevelSuccess, "Deleted: "+url+" from history.")
}

func (m *Model) exportHistory(path string) {
	if path == "" {
		path = m.cfg.ExportFile
	}
	n, err := m.sess.ExportHistory(path)
	if err != nil {
		m.statusBar.Flash(ui.LevelError, "Could not export history to "+path)
		return
	}
	m.statusBar.Flash(ui.LevelSuccess, fmt.Sprintf("History exported to %s (%d records)", path, n))
}

func (m *Model) importHistory(path string) {
	if path == "" {
		path = m.cfg.ExportFile
	}
	res, err := m.sess.ImportHistory(path)
	if storage.IsNotExist(err) {
		m.statusBar.Flash(ui.LevelError, "Could not import history from "+path+": no such file")
		return
	}
	if err != nil {
		m.statusBar.Flash(ui.LevelError, "Could not import history from "+path)
		return
	}
	for _, rec := range m.sess.FullHistory() {
		m.recent.Add(rec.URL, struct{}{})
	}
	m.refreshSuggestions()

	msg := fmt.Sprintf("History imported from %s (%d records)", path, res.Imported)
	if res.Skipped > 0 {
		msg += fmt.Sprintf(", skipped %d malformed line(s)", res.Skipped)
	}
	m.statusBar.Flash(ui.LevelSuccess, msg)
}

func (m *Model) toggleIncognito() {
	if m.sess.ToggleIncognito() {
		m.statusBar.SetMessage("Incognito Mode Enabled")
		return
	}
	m.statusBar.SetMessage("Incognito Mode Disabled")
}

func (m *Model) setTheme(name string) {
	if !theme.Set(name) {
		m.statusBar.Flash(ui.LevelError, fmt.Sprintf("Unknown theme: %s (available: %s)", name, strings.Join(theme.List(), ", ")))
		return
	}
	m.statusBar.SetMessage("Theme: " + name)
	m.rerender()
}

// applyConfig takes over a reloaded config file.
func (m *Model) applyConfig(cfg *storage.Config) {
	m.cfg = cfg
	if !theme.Set(cfg.Theme) {
		m.log.Warn("unknown theme in config", "theme", cfg.Theme)
	}
	if evicted := m.recent.Resize(cfg.RecentURLs); evicted > 0 {
		m.log.Debug("recent urls trimmed", "evicted", evicted)
	}
	m.refreshSuggestions()
	m.rerender()
	m.log.Info("config reloaded", "path", cfg.Path())
	m.statusBar.SetMessage("Config reloaded")
}

func (m *Model) showNavigation() {
	cur, _ := m.sess.CurrentPage()
	m.showDoc(report.Navigation(cur, m.sess.BackStack(), m.sess.ForwardStack()))
}

func (m *Model) showHistory() {
	m.showDoc(report.History(m.sess.FullHistory()))
}

func (m *Model) showSummary() {
	m.showDoc(report.Summary(m.sess.Summary()))
}

func (m *Model) showHelp() {
	m.showDoc(report.Help(m.keys.helpRows(), commandRows))
}

func (m *Model) showDoc(markdown string) {
	m.doc = markdown
	m.rerender()
}

// rerender draws doc at the current viewport width.
func (m *Model) rerender() {
	if m.doc == "" || !m.ready {
		return
	}
	out, err := m.renderer.Render(m.doc, m.viewport.Width())
	if err != nil {
		m.log.Warn("markdown render failed", "error", err)
		out = m.doc
	}
	m.viewport.SetContent(out)
}
