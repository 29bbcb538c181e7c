// Package app is the interactive bubbletea driver for a browsing session.
package app

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vidyasagar/bhist/internal/logger"
	"github.com/vidyasagar/bhist/internal/report"
	"github.com/vidyasagar/bhist/internal/session"
	"github.com/vidyasagar/bhist/internal/storage"
	"github.com/vidyasagar/bhist/internal/theme"
	"github.com/vidyasagar/bhist/internal/ui"
)

// Mode represents the current input mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeInsert       // URL bar focused
	ModeCommand      // command bar active
	ModeHistory      // history panel active
	ModeLeader       // leader palette active
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	case ModeHistory:
		return "HISTORY"
	case ModeLeader:
		return "LEADER"
	default:
		return "NORMAL"
	}
}

// Options configures a Model.
type Options struct {
	// StartURL is visited once the program starts.
	StartURL string

	Config  *storage.Config
	Logger  logger.Logger
	Watcher *storage.ConfigWatcher

	// GlamourStyle is a glamour standard style name; empty picks one from
	// the terminal background.
	GlamourStyle string
}

// Model is the top-level bubbletea model.
type Model struct {
	urlBar       ui.URLBar
	statusBar    ui.StatusBar
	commandBar   ui.CommandBar
	viewport     ui.PageViewport
	historyPanel ui.HistoryPanel
	leaderPanel  ui.LeaderPanel

	sess     *session.Session
	cfg      *storage.Config
	log      logger.Logger
	watcher  *storage.ConfigWatcher
	renderer *report.Renderer

	// recent feeds URL bar completions, most recently visited first.
	recent *lru.Cache[string, struct{}]

	keys     KeyMap
	mode     Mode
	width    int
	height   int
	lastGKey bool
	ready    bool
	startURL string

	// leaderSeq identifies the latest palette open; older timeouts are ignored.
	leaderSeq int

	// doc is the markdown currently shown, kept for re-rendering on resize.
	doc string
}

type visitMsg struct{ url string }

type configReloadedMsg struct{ cfg *storage.Config }

type configErrorMsg struct{ err error }

// leaderTimeoutMsg is sent when the leader palette opened as seq times out.
type leaderTimeoutMsg struct{ seq int }

// New creates a Model driving sess.
func New(sess *session.Session, opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		def := storage.DefaultConfig()
		cfg = &def
	}
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}

	recent, err := lru.New[string, struct{}](cfg.RecentURLs)
	if err != nil {
		recent, _ = lru.New[string, struct{}](storage.DefaultConfig().RecentURLs)
	}

	return Model{
		urlBar:       ui.NewURLBar(),
		statusBar:    ui.NewStatusBar(),
		commandBar:   ui.NewCommandBar(),
		viewport:     ui.NewPageViewport(),
		historyPanel: ui.NewHistoryPanel(),
		leaderPanel:  ui.NewLeaderPanel(),
		sess:         sess,
		cfg:          cfg,
		log:          log,
		watcher:      opts.Watcher,
		renderer:     report.NewRenderer(opts.GlamourStyle),
		recent:       recent,
		keys:         DefaultKeyMap(),
		mode:         ModeNormal,
		startURL:     opts.StartURL,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.watcher != nil {
		cmds = append(cmds, waitForConfig(m.watcher), waitForConfigError(m.watcher))
	}
	if m.startURL != "" {
		url := m.startURL
		cmds = append(cmds, func() tea.Msg { return visitMsg{url: url} })
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		m.rerender()

	case visitMsg:
		m.visit(msg.url)

	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		cmd = waitForConfig(m.watcher)

	case configErrorMsg:
		m.log.Warn("config reload failed", "error", msg.err)
		m.statusBar.Flash(ui.LevelError, "Config reload failed: "+msg.err.Error())
		cmd = waitForConfigError(m.watcher)

	case leaderTimeoutMsg:
		if m.mode == ModeLeader && msg.seq == m.leaderSeq {
			m.leaderPanel.Hide()
			m.mode = ModeNormal
		}

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)
		m.layout()

	default:
		vp, vcmd := m.viewport.Update(msg)
		m.viewport = *vp
		cmd = vcmd
	}

	m.syncStatusBar()
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  Loading bhist..."
	}

	sections := []string{m.urlBar.View()}

	if m.historyPanel.IsVisible() {
		divider := lipgloss.NewStyle().
			Foreground(theme.Current.Border).
			Background(theme.Current.Background).
			Render(strings.TrimSuffix(strings.Repeat("│\n", m.contentHeight()), "\n"))
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
			m.historyPanel.View(),
			divider,
			m.viewport.View(),
		))
	} else {
		sections = append(sections, m.viewport.View())
	}

	sections = append(sections, m.statusBar.View())
	if m.commandBar.IsActive() {
		sections = append(sections, m.commandBar.View())
	}

	result := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.leaderPanel.IsVisible() {
		result = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.leaderPanel.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(theme.Current.Background),
		)
	}

	return result
}

// contentHeight is the height left for the viewport and history panel.
func (m *Model) contentHeight() int {
	const urlBarHeight, statusBarHeight = 3, 1
	h := m.height - urlBarHeight - statusBarHeight
	if m.commandBar.IsActive() {
		h--
	}
	return max(h, 1)
}

// layout recalculates dimensions for all components.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	m.urlBar.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.commandBar.SetWidth(m.width)
	m.leaderPanel.SetSize(m.width, m.height)

	height := m.contentHeight()
	width := m.width
	if m.historyPanel.IsVisible() {
		panelWidth := max(m.width*35/100, 24)
		m.historyPanel.SetSize(panelWidth, height)
		width = m.width - panelWidth - 1
	}
	m.viewport.SetSize(width, height)
}

// handleKeyMsg dispatches a key event by mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeInsert:
		return m.handleInsertMode(msg)
	case ModeCommand:
		return m.handleCommandMode(msg)
	case ModeHistory:
		return m.handleHistoryMode(msg)
	case ModeLeader:
		return m.handleLeaderMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

func (m Model) handleNormalMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	// gg goes to top; any other key cancels a pending g.
	if msg.String() == "g" {
		if m.lastGKey {
			m.lastGKey = false
			m.viewport.GotoTop()
			return m, nil
		}
		m.lastGKey = true
		return m, nil
	}
	m.lastGKey = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Leader):
		m.leaderPanel.Show()
		m.mode = ModeLeader
		m.leaderSeq++
		seq := m.leaderSeq
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return leaderTimeoutMsg{seq: seq}
		})

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.GotoBottom):
		m.viewport.GotoBottom()

	case key.Matches(msg, m.keys.OpenURL):
		return m, m.focusURLBar()
	case key.Matches(msg, m.keys.Back):
		m.back()
	case key.Matches(msg, m.keys.Forward):
		m.forward()
	case key.Matches(msg, m.keys.Current):
		m.showNavigation()

	case key.Matches(msg, m.keys.Search):
		return m, m.openPrompt(ui.CommandSearch, "")
	case key.Matches(msg, m.keys.HistoryToggle):
		m.toggleHistoryPanel()
	case key.Matches(msg, m.keys.Summary):
		m.showSummary()

	case key.Matches(msg, m.keys.Bookmark):
		return m, m.startBookmark()
	case key.Matches(msg, m.keys.Bookmarks):
		return m, m.openPrompt(ui.CommandPassword, "")

	case key.Matches(msg, m.keys.Incognito):
		m.toggleIncognito()
	case key.Matches(msg, m.keys.CommandMode):
		return m, m.openPrompt(ui.CommandEx, "")
	case key.Matches(msg, m.keys.Help):
		m.showHelp()

	default:
		vp, cmd := m.viewport.Update(msg)
		m.viewport = *vp
		return m, cmd
	}

	return m, nil
}

func (m Model) handleHistoryMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() != "g" {
		m.historyPanel.ResetGKey()
	}

	switch msg.String() {
	case "j", "down":
		m.historyPanel.CursorDown()
	case "k", "up":
		m.historyPanel.CursorUp()
	case "g":
		m.historyPanel.HandleGKey()
	case "G":
		m.historyPanel.GotoBottom()
	case "ctrl+d":
		m.historyPanel.HalfPageDown()
	case "ctrl+u":
		m.historyPanel.HalfPageUp()

	case "d":
		if rec, ok := m.historyPanel.Selected(); ok {
			m.deleteURL(rec.URL)
		}

	case "enter":
		if rec, ok := m.historyPanel.Selected(); ok {
			m.closeHistoryPanel()
			m.visit(rec.URL)
		}

	case "esc", "ctrl+h", "q":
		m.closeHistoryPanel()
	}

	return m, nil
}

// handleLeaderMode runs one palette action and returns to normal mode.
func (m Model) handleLeaderMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.leaderPanel.Hide()
	m.mode = ModeNormal

	switch msg.String() {
	case "o":
		return m, m.focusURLBar()
	case "b":
		m.back()
	case "f":
		m.forward()
	case "c":
		m.showNavigation()

	case "h":
		m.showHistory()
	case "H":
		m.toggleHistoryPanel()
	case "/":
		return m, m.openPrompt(ui.CommandSearch, "")
	case "d":
		return m, m.openPrompt(ui.CommandEx, "delete ")
	case "s":
		m.showSummary()

	case "B":
		return m, m.startBookmark()
	case "l":
		return m, m.openPrompt(ui.CommandPassword, "")
	case "m":
		return m, m.openPrompt(ui.CommandEx, "importbm ")

	case "e":
		m.exportHistory("")
	case "i":
		m.importHistory("")
	case "I":
		m.toggleIncognito()
	case "T":
		m.setTheme(theme.Next())
	case "?":
		m.showHelp()
	}

	return m, nil
}

func (m Model) handleInsertMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.urlBar.Blur()
		return m, nil

	case tea.KeyEnter:
		url := strings.TrimSpace(m.urlBar.Value())
		m.mode = ModeNormal
		m.urlBar.Blur()
		if url != "" {
			m.visit(url)
		}
		return m, nil
	}

	ub, cmd := m.urlBar.Update(msg)
	m.urlBar = *ub
	return m, cmd
}

func (m Model) handleCommandMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.commandBar.Close()
		m.mode = ModeNormal
		return m, nil

	case tea.KeyEnter:
		result := m.commandBar.Submit()
		m.mode = ModeNormal
		return m.handleCommandResult(result)
	}

	cb, cmd := m.commandBar.Update(msg)
	m.commandBar = *cb
	return m, cmd
}

func (m Model) handleCommandResult(result ui.CommandResult) (Model, tea.Cmd) {
	switch result.Type {
	case ui.CommandEx:
		return m.executeCommand(result.Value)
	case ui.CommandSearch:
		m.search(result.Value)
	case ui.CommandCategory:
		m.bookmark(result.Value)
	case ui.CommandPassword:
		m.listBookmarks(result.Value)
	}
	return m, nil
}

// executeCommand handles :commands.
func (m Model) executeCommand(line string) (Model, tea.Cmd) {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)
	if name == "" {
		return m, nil
	}
	m.log.Debug("command", "name", name)

	switch name {
	case "q", "quit":
		return m, tea.Quit
	case "o", "open", "visit":
		if arg == "" {
			m.statusBar.Flash(ui.LevelError, "Usage: :open <url>")
			break
		}
		m.visit(arg)
	case "back":
		m.back()
	case "forward":
		m.forward()
	case "current":
		m.showNavigation()
	case "history":
		m.showHistory()
	case "search":
		m.search(arg)
	case "delete":
		if arg == "" {
			m.statusBar.Flash(ui.LevelError, "Usage: :delete <url>")
			break
		}
		m.deleteURL(arg)
	case "bookmark":
		if arg == "" {
			return m, m.startBookmark()
		}
		m.bookmark(arg)
	case "bookmarks", "bm":
		return m, m.openPrompt(ui.CommandPassword, "")
	case "importbm":
		m.importBookmarks(arg)
	case "export":
		m.exportHistory(arg)
	case "import":
		m.importHistory(arg)
	case "summary":
		m.showSummary()
	case "incognito":
		m.toggleIncognito()
	case "theme":
		if arg == "" {
			m.statusBar.SetMessage("Current: " + theme.Current.Name + " | Available: " + strings.Join(theme.List(), ", "))
			break
		}
		m.setTheme(arg)
	case "help":
		m.showHelp()
	default:
		m.statusBar.Flash(ui.LevelError, "Unknown command: "+name)
	}

	return m, nil
}

func (m *Model) focusURLBar() tea.Cmd {
	m.mode = ModeInsert
	m.urlBar.Reset()
	return m.urlBar.Focus()
}

func (m *Model) openPrompt(ct ui.CommandType, prefill string) tea.Cmd {
	m.mode = ModeCommand
	cmd := m.commandBar.Open(ct)
	if prefill != "" {
		m.commandBar.SetValue(prefill)
	}
	return cmd
}

func (m *Model) toggleHistoryPanel() {
	if m.historyPanel.IsVisible() {
		m.closeHistoryPanel()
		return
	}
	m.refreshHistoryPanel()
	m.historyPanel.Show()
	m.mode = ModeHistory
	m.layout()
}

func (m *Model) closeHistoryPanel() {
	m.historyPanel.Hide()
	m.mode = ModeNormal
	m.layout()
}

// refreshHistoryPanel lists the ledger most recent first.
func (m *Model) refreshHistoryPanel() {
	hist := m.sess.FullHistory()
	slices.Reverse(hist)
	m.historyPanel.SetEntries(hist)
}

// refreshSuggestions hands the recent-URL cache to the URL bar, newest first.
func (m *Model) refreshSuggestions() {
	urls := m.recent.Keys()
	slices.Reverse(urls)
	m.urlBar.SetSuggestions(urls)
}

// syncStatusBar mirrors session state into the status bar.
func (m *Model) syncStatusBar() {
	cur, _ := m.sess.CurrentPage()
	m.statusBar.SetPage(cur)
	m.statusBar.SetDepth(len(m.sess.BackStack()), len(m.sess.ForwardStack()))
	m.statusBar.SetIncognito(m.sess.Incognito())
	m.statusBar.SetMode(m.mode.String())
	m.statusBar.SetScrollInfo(m.viewport.ScrollInfo())
}

func waitForConfig(w *storage.ConfigWatcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-w.Changes()
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

func waitForConfigError(w *storage.ConfigWatcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		err, ok := <-w.Errors()
		if !ok {
			return nil
		}
		return configErrorMsg{err: err}
	}
}
