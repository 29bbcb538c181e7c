package menu

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyasagar/bhist/internal/session"
)

func run(t *testing.T, sess *session.Session, defaultFile string, lines ...string) string {
	t.Helper()
	var out strings.Builder
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	m := New(sess, in, &out, defaultFile, nil)
	require.NoError(t, m.Run())
	return out.String()
}

func fixedSession() *session.Session {
	return session.New(session.WithClock(session.ClockFunc(func() string { return "Mon Jan  2 15:04:05 2006" })))
}

func TestVisitBackForward(t *testing.T) {
	out := run(t, fixedSession(), "",
		"2",
		"1", "a.com",
		"1", "b.com",
		"2",
		"3",
		"3",
		"4",
		"0",
	)

	assert.Contains(t, out, "No pages to go back to.")
	assert.Contains(t, out, "Visited: a.com")
	assert.Contains(t, out, "Visited: b.com")
	assert.Contains(t, out, "Current Page: a.com")
	assert.Contains(t, out, "No pages to go forward to.")
	assert.True(t, strings.HasSuffix(out, "Current Page: b.com\n"+banner+"Exiting browser history manager. Goodbye!\n"))
}

func TestHistorySearchDeleteSummary(t *testing.T) {
	out := run(t, fixedSession(), "",
		"5",
		"1", "a", "1", "a", "1", "a", "1", "b", "1", "b", "1", "c",
		"6", "zzz",
		"6", "b",
		"12",
		"9", "a",
		"12",
		"0",
	)

	assert.Contains(t, out, "History is empty.")
	assert.Contains(t, out, "No matching entries found.")
	assert.Equal(t, 2, strings.Count(out, "Found: b at Mon Jan  2 15:04:05 2006"))
	assert.Contains(t, out, "Total sites visited: 6\nMost recent visit: c\nTop 3 most visited sites:\na - 3 times\nb - 2 times\nc - 1 times\n")
	assert.Contains(t, out, "Deleted: a from history.")
	assert.Contains(t, out, "Total sites visited: 3\nMost recent visit: c\nTop 3 most visited sites:\nb - 2 times\nc - 1 times\n")
}

func TestBookmarks(t *testing.T) {
	out := run(t, fixedSession(), "",
		"7",
		"1", "go.dev",
		"7", "dev",
		"1", "lwn.net",
		"7", "news",
		"8", "wrong",
		"8", session.Credential,
		"0",
	)

	assert.Contains(t, out, "No page loaded to bookmark.")
	assert.Contains(t, out, "Bookmarked 'go.dev' under category 'dev'.")
	assert.Contains(t, out, "Incorrect password. Access denied.")
	assert.Contains(t, out, "Category: dev\n - go.dev\nCategory: news\n - lwn.net\n")
}

func TestEmptyBookmarks(t *testing.T) {
	out := run(t, fixedSession(), "", "8", session.Credential, "0")
	assert.Contains(t, out, "No bookmarks saved.")
}

func TestIncognitoToggle(t *testing.T) {
	sess := fixedSession()
	out := run(t, sess, "",
		"13",
		"1", "a.com",
		"13",
		"1", "b.com",
		"0",
	)

	assert.Contains(t, out, "Incognito Mode Enabled")
	assert.Contains(t, out, "Incognito Mode Disabled")
	hist := sess.FullHistory()
	require.Len(t, hist, 1)
	assert.Equal(t, "b.com", hist[0].URL)
}

func TestExportImportWithDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")

	src := fixedSession()
	out := run(t, src, path, "1", "a.com", "10", "", "0")
	assert.Contains(t, out, "History exported to "+path)

	require.NoError(t, os.WriteFile(path+".bad", []byte("a.com,t1\ngarbage\n"), 0o644))

	dst := fixedSession()
	out = run(t, dst, path, "11", "", "11", path+".bad", "11", path+".missing", "0")
	assert.Contains(t, out, "History imported from "+path+"\n")
	assert.Contains(t, out, "Skipped 1 malformed line(s).")
	assert.Contains(t, out, "Could not import history from "+path+".missing")
	assert.Len(t, dst.FullHistory(), 2)
}

func TestInvalidChoiceConfirmsExit(t *testing.T) {
	out := run(t, fixedSession(), "", "abc", "no", "99", "yes")
	assert.Contains(t, out, "Invalid input. Are you sure you want to exit? (yes/no): ")
	assert.Contains(t, out, "Continuing...")
	assert.True(t, strings.HasSuffix(out, "Exiting browser history manager. Goodbye!\n"))
}

func TestEndOfInputStopsCleanly(t *testing.T) {
	var out strings.Builder
	m := New(fixedSession(), strings.NewReader("1\n"), &out, "", nil)
	require.NoError(t, m.Run())
	assert.True(t, strings.HasSuffix(out.String(), "Enter URL to visit: "))
}

func TestVisitVeryLongURL(t *testing.T) {
	sess := fixedSession()
	long := "https://example.com/" + strings.Repeat("a", 70*1024)

	out := run(t, sess, "", "1", long, "4", "0")

	assert.Contains(t, out, "Current Page: "+long+"\n")
	assert.True(t, strings.HasSuffix(out, "Exiting browser history manager. Goodbye!\n"))
	hist := sess.FullHistory()
	require.Len(t, hist, 1)
	assert.Equal(t, long, hist[0].URL)
}
