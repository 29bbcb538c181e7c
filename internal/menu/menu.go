// Package menu is the numbered, line-oriented driver used when bhist is not
// attached to a terminal (or -plain is given).
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vidyasagar/bhist/internal/logger"
	"github.com/vidyasagar/bhist/internal/session"
)

const banner = `
==============================
Browser History Manager
==============================
1. Visit Site
2. Go Back
3. Go Forward
4. Show Current Page
5. Show History
6. Search History
7. Bookmark Current Site
8. Show Bookmarks (Password Required)
9. Delete from History
10. Export History to File
11. Import History from File
12. Session Summary
13. Toggle Incognito Mode
14. Import Bookmarks from HTML File
0. Exit
Enter your choice: `

const maxChoice = 14

// Menu reads choices from in and writes prompts and results to out.
type Menu struct {
	sess        *session.Session
	in          *bufio.Reader
	inErr       error
	out         io.Writer
	defaultFile string
	log         logger.Logger
}

// New creates a menu over sess. defaultFile is offered when an export or
// import prompt is left blank.
func New(sess *session.Session, in io.Reader, out io.Writer, defaultFile string, log logger.Logger) *Menu {
	if log == nil {
		log = logger.Noop()
	}
	return &Menu{
		sess:        sess,
		in:          bufio.NewReader(in),
		out:         out,
		defaultFile: defaultFile,
		log:         log,
	}
}

// Run loops until the user exits or input ends.
func (m *Menu) Run() error {
	for {
		fmt.Fprint(m.out, banner)
		line, ok := m.readLine()
		if !ok {
			return m.inErr
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 0 || choice > maxChoice {
			if m.confirmExit() {
				return nil
			}
			continue
		}
		if choice == 0 {
			m.println("Exiting browser history manager. Goodbye!")
			return nil
		}
		if !m.dispatch(choice) {
			return m.inErr
		}
	}
}

// dispatch runs one menu action. Returns false if input ended mid-prompt.
func (m *Menu) dispatch(choice int) bool {
	m.log.Debug("menu choice", "choice", choice)

	switch choice {
	case 1:
		url, ok := m.prompt("Enter URL to visit: ")
		if !ok {
			return false
		}
		m.sess.Visit(url)
		m.printf("Visited: %s\n", url)

	case 2:
		m.navigate(m.sess.Back)

	case 3:
		m.navigate(m.sess.Forward)

	case 4:
		if url, err := m.sess.CurrentPage(); err != nil {
			m.println("No page loaded.")
		} else {
			m.printf("Current Page: %s\n", url)
		}

	case 5:
		m.showHistory()

	case 6:
		keyword, ok := m.prompt("Enter keyword to search in history: ")
		if !ok {
			return false
		}
		found := false
		for rec := range m.sess.Search(keyword) {
			m.printf("Found: %s at %s\n", rec.URL, rec.Timestamp)
			found = true
		}
		if !found {
			m.println("No matching entries found.")
		}

	case 7:
		if _, err := m.sess.CurrentPage(); err != nil {
			m.println("No page loaded to bookmark.")
			break
		}
		category, ok := m.prompt("Enter category for this bookmark: ")
		if !ok {
			return false
		}
		url, _, err := m.sess.Bookmark(category)
		if err != nil {
			m.println("No page loaded to bookmark.")
			break
		}
		m.printf("Bookmarked '%s' under category '%s'.\n", url, category)

	case 8:
		password, ok := m.prompt("Enter bookmark password: ")
		if !ok {
			return false
		}
		m.showBookmarks(password)

	case 9:
		url, ok := m.prompt("Enter URL to delete from history: ")
		if !ok {
			return false
		}
		m.sess.DeleteURL(url)
		m.printf("Deleted: %s from history.\n", url)

	case 10:
		path, ok := m.promptFile("Enter filename to export history to")
		if !ok {
			return false
		}
		if _, err := m.sess.ExportHistory(path); err != nil {
			m.printf("Could not export history to %s: %v\n", path, err)
			break
		}
		m.printf("History exported to %s\n", path)

	case 11:
		path, ok := m.promptFile("Enter filename to import history from")
		if !ok {
			return false
		}
		res, err := m.sess.ImportHistory(path)
		if err != nil {
			m.printf("Could not import history from %s: %v\n", path, err)
			break
		}
		m.printf("History imported from %s\n", path)
		if res.Skipped > 0 {
			m.printf("Skipped %d malformed line(s).\n", res.Skipped)
		}

	case 12:
		m.showSummary()

	case 13:
		if m.sess.ToggleIncognito() {
			m.println("Incognito Mode Enabled")
		} else {
			m.println("Incognito Mode Disabled")
		}

	case 14:
		path, ok := m.prompt("Enter bookmark HTML file to import: ")
		if !ok {
			return false
		}
		n, err := m.sess.ImportBookmarks(path)
		if err != nil {
			m.printf("Could not import bookmarks from %s: %v\n", path, err)
			break
		}
		m.printf("Imported %d new bookmark(s) from %s\n", n, path)
	}
	return true
}

func (m *Menu) navigate(step func() (string, error)) {
	url, err := step()
	switch {
	case errors.Is(err, session.ErrNoBack):
		m.println("No pages to go back to.")
	case errors.Is(err, session.ErrNoForward):
		m.println("No pages to go forward to.")
	default:
		m.printf("Current Page: %s\n", url)
	}
}

func (m *Menu) showHistory() {
	history := m.sess.FullHistory()
	if len(history) == 0 {
		m.println("History is empty.")
		return
	}
	m.println("Full Browsing History:")
	for _, rec := range history {
		m.printf("%s at %s\n", rec.URL, rec.Timestamp)
	}
}

func (m *Menu) showBookmarks(password string) {
	cats, err := m.sess.ListBookmarks(password)
	if err != nil {
		m.println("Incorrect password. Access denied.")
		return
	}
	if len(cats) == 0 {
		m.println("No bookmarks saved.")
		return
	}
	for _, c := range cats {
		m.printf("Category: %s\n", c.Name)
		for _, url := range c.URLs {
			m.printf(" - %s\n", url)
		}
	}
}

func (m *Menu) showSummary() {
	sum := m.sess.Summary()
	m.printf("Total sites visited: %d\n", sum.Total)
	if sum.Total > 0 {
		m.printf("Most recent visit: %s\n", sum.MostRecent)
	}
	m.println("Top 3 most visited sites:")
	for _, site := range sum.Top {
		m.printf("%s - %d times\n", site.URL, site.Visits)
	}
}

func (m *Menu) confirmExit() bool {
	answer, ok := m.prompt("Invalid input. Are you sure you want to exit? (yes/no): ")
	if !ok {
		return true
	}
	switch answer {
	case "yes", "Yes", "YES":
		m.println("Exiting browser history manager. Goodbye!")
		return true
	}
	m.println("Continuing...")
	return false
}

func (m *Menu) promptFile(label string) (string, bool) {
	if m.defaultFile == "" {
		return m.prompt(label + ": ")
	}
	path, ok := m.prompt(fmt.Sprintf("%s [%s]: ", label, m.defaultFile))
	if ok && strings.TrimSpace(path) == "" {
		path = m.defaultFile
	}
	return path, ok
}

func (m *Menu) prompt(text string) (string, bool) {
	fmt.Fprint(m.out, text)
	return m.readLine()
}

// readLine returns the next line without its line ending. A URL may be any
// length, so lines are not capped.
func (m *Menu) readLine() (string, bool) {
	line, err := m.in.ReadString('\n')
	if err != nil && err != io.EOF {
		m.inErr = err
		return "", false
	}
	if line == "" && err == io.EOF {
		return "", false
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
