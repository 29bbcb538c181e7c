// Package session composes navigation, the history ledger and bookmarks into
// the single object drivers talk to.
package session

import (
	"fmt"
	"iter"

	"github.com/vidyasagar/bhist/internal/browser"
	"github.com/vidyasagar/bhist/internal/logger"
	"github.com/vidyasagar/bhist/internal/storage"
)

// Credential gates bookmark listing. It is a fixed placeholder compared by
// equality, not a security mechanism.
const Credential = "admin"

// Session is one user's browsing session.
type Session struct {
	nav       *browser.NavigationState
	ledger    *storage.HistoryLedger
	bookmarks *storage.BookmarkStore
	clock     Clock
	log       logger.Logger
	incognito bool
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the timestamp source.
func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Session) { s.log = l }
}

// New creates a session with empty state and incognito off.
func New(opts ...Option) *Session {
	s := &Session{
		nav:       browser.NewNavigationState(),
		ledger:    storage.NewHistoryLedger(),
		bookmarks: storage.NewBookmarkStore(Credential),
		clock:     SystemClock{},
		log:       logger.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Visit navigates to url. Unless incognito is on, the visit is also recorded
// in the ledger. Returns whether it was recorded.
func (s *Session) Visit(url string) bool {
	s.nav.Visit(url)
	if s.incognito {
		s.log.Debug("visit", "url", url, "incognito", true)
		return false
	}
	s.ledger.Record(url, s.clock.Now())
	s.log.Debug("visit", "url", url, "incognito", false)
	return true
}

// Back moves to the previous page.
func (s *Session) Back() (string, error) {
	url, err := s.nav.Back()
	if err != nil {
		s.log.Debug("navigation failed", "direction", "back", "error", err)
		return "", err
	}
	return url, nil
}

// Forward moves to the next page.
func (s *Session) Forward() (string, error) {
	url, err := s.nav.Forward()
	if err != nil {
		s.log.Debug("navigation failed", "direction", "forward", "error", err)
		return "", err
	}
	return url, nil
}

// CurrentPage returns the loaded page or ErrNoPage.
func (s *Session) CurrentPage() (string, error) {
	url, ok := s.nav.Current()
	if !ok {
		return "", ErrNoPage
	}
	return url, nil
}

// BackStack returns the back stack, most recent first.
func (s *Session) BackStack() []string { return s.nav.BackStack() }

// ForwardStack returns the forward stack, most recent first.
func (s *Session) ForwardStack() []string { return s.nav.ForwardStack() }

// CanGoBack reports whether Back would succeed.
func (s *Session) CanGoBack() bool { return s.nav.CanGoBack() }

// CanGoForward reports whether Forward would succeed.
func (s *Session) CanGoForward() bool { return s.nav.CanGoForward() }

// FullHistory returns every recorded visit in order.
func (s *Session) FullHistory() []storage.VisitRecord {
	return s.ledger.Entries()
}

// Search yields recorded visits whose URL contains keyword.
func (s *Session) Search(keyword string) iter.Seq[storage.VisitRecord] {
	return s.ledger.Search(keyword)
}

// VisitCount returns how often url was recorded, and whether it has a counter.
func (s *Session) VisitCount(url string) (int, bool) {
	return s.ledger.VisitCount(url)
}

// Bookmark files the current page under category. Returns the page and
// whether it was newly added.
func (s *Session) Bookmark(category string) (string, bool, error) {
	url, _ := s.nav.Current()
	added, err := s.bookmarks.Add(category, url)
	if err != nil {
		return "", false, err
	}
	s.log.Debug("bookmark", "category", category, "url", url, "added", added)
	return url, added, nil
}

// ListBookmarks returns all categories if credential matches.
func (s *Session) ListBookmarks(credential string) ([]storage.Category, error) {
	cats, err := s.bookmarks.List(credential)
	if err != nil {
		s.log.Warn("bookmark listing denied")
		return nil, err
	}
	return cats, nil
}

// DeleteURL removes url from history and returns how many visits went.
func (s *Session) DeleteURL(url string) int {
	n := s.ledger.DeleteURL(url)
	s.log.Debug("history delete", "url", url, "removed", n)
	return n
}

// ExportHistory writes the ledger to path. Failures wrap ErrIO.
func (s *Session) ExportHistory(path string) (int, error) {
	n, err := storage.ExportFile(s.ledger, path)
	if err != nil {
		s.log.Warn("export failed", "path", path, "error", err)
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}
	s.log.Info("history exported", "path", path, "records", n)
	return n, nil
}

// ImportHistory appends the records in path to the ledger. Failures wrap ErrIO.
func (s *Session) ImportHistory(path string) (storage.ImportResult, error) {
	res, err := storage.ImportFile(s.ledger, path)
	if err != nil {
		s.log.Warn("import failed", "path", path, "error", err)
		return storage.ImportResult{}, fmt.Errorf("%w: %w", ErrIO, err)
	}
	s.log.Info("history imported", "path", path, "imported", res.Imported, "skipped", res.Skipped)
	return res, nil
}

// ImportBookmarks merges a Netscape bookmark file. Failures wrap ErrIO.
func (s *Session) ImportBookmarks(path string) (int, error) {
	n, err := s.bookmarks.ImportBookmarksFile(path)
	if err != nil {
		s.log.Warn("bookmark import failed", "path", path, "error", err)
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}
	s.log.Info("bookmarks imported", "path", path, "added", n)
	return n, nil
}

// Summary reports totals, the most recent visit and the top sites.
func (s *Session) Summary() storage.Summary {
	return s.ledger.Summary()
}

// ToggleIncognito flips incognito mode and returns the new state.
func (s *Session) ToggleIncognito() bool {
	s.incognito = !s.incognito
	s.log.Info("incognito toggled", "enabled", s.incognito)
	return s.incognito
}

// Incognito reports whether incognito mode is on.
func (s *Session) Incognito() bool {
	return s.incognito
}
