package session

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyasagar/bhist/internal/storage"
)

func tickClock() Clock {
	n := 0
	return ClockFunc(func() string {
		n++
		return fmt.Sprintf("tick-%d", n)
	})
}

func newTestSession() *Session {
	return New(WithClock(tickClock()))
}

func TestVisitRecordsWithClock(t *testing.T) {
	s := newTestSession()
	s.Visit("a.com")
	s.Visit("b.com")

	assert.Equal(t, []storage.VisitRecord{
		{URL: "a.com", Timestamp: "tick-1"},
		{URL: "b.com", Timestamp: "tick-2"},
	}, s.FullHistory())

	cur, err := s.CurrentPage()
	require.NoError(t, err)
	assert.Equal(t, "b.com", cur)
	assert.Equal(t, []string{"a.com"}, s.BackStack())
}

func TestCurrentPageEmpty(t *testing.T) {
	_, err := newTestSession().CurrentPage()
	assert.ErrorIs(t, err, ErrNoPage)
}

func TestIncognitoScenario(t *testing.T) {
	s := newTestSession()

	assert.True(t, s.ToggleIncognito())
	assert.False(t, s.Visit("a.com"))
	assert.False(t, s.ToggleIncognito())
	assert.True(t, s.Visit("b.com"))

	hist := s.FullHistory()
	require.Len(t, hist, 1)
	assert.Equal(t, "b.com", hist[0].URL)

	_, ok := s.VisitCount("a.com")
	assert.False(t, ok)

	cur, err := s.CurrentPage()
	require.NoError(t, err)
	assert.Equal(t, "b.com", cur)
	assert.Equal(t, []string{"a.com"}, s.BackStack())
}

func TestIncognitoNavigationStillWorks(t *testing.T) {
	s := newTestSession()
	s.ToggleIncognito()
	s.Visit("a.com")
	s.Visit("b.com")

	url, err := s.Back()
	require.NoError(t, err)
	assert.Equal(t, "a.com", url)

	url, err = s.Forward()
	require.NoError(t, err)
	assert.Equal(t, "b.com", url)

	assert.Empty(t, s.FullHistory())
}

func TestBackForwardExhausted(t *testing.T) {
	s := newTestSession()

	_, err := s.Back()
	assert.ErrorIs(t, err, ErrNoBack)
	_, err = s.Forward()
	assert.ErrorIs(t, err, ErrNoForward)
	assert.ErrorIs(t, err, ErrStackExhausted)
}

func TestBookmarkCurrentPage(t *testing.T) {
	s := newTestSession()

	_, _, err := s.Bookmark("dev")
	assert.ErrorIs(t, err, ErrNoPage)

	s.Visit("go.dev")
	url, added, err := s.Bookmark("dev")
	require.NoError(t, err)
	assert.Equal(t, "go.dev", url)
	assert.True(t, added)

	_, added, err = s.Bookmark("dev")
	require.NoError(t, err)
	assert.False(t, added)

	_, err = s.ListBookmarks("wrong")
	assert.ErrorIs(t, err, ErrAccessDenied)

	cats, err := s.ListBookmarks(Credential)
	require.NoError(t, err)
	assert.Equal(t, []storage.Category{{Name: "dev", URLs: []string{"go.dev"}}}, cats)
}

func TestSearchAndDelete(t *testing.T) {
	s := newTestSession()
	for _, u := range []string{"go.dev", "example.com", "go.dev/doc", "go.dev"} {
		s.Visit(u)
	}

	got := slices.Collect(s.Search("go.dev"))
	assert.Len(t, got, 3)

	assert.Equal(t, 2, s.DeleteURL("go.dev"))
	_, ok := s.VisitCount("go.dev")
	assert.False(t, ok)
	assert.Equal(t, 0, s.DeleteURL("go.dev"))
	assert.Len(t, s.FullHistory(), 2)

	// Navigation is unaffected by history deletes.
	cur, _ := s.CurrentPage()
	assert.Equal(t, "go.dev", cur)
}

func TestSummaryScenario(t *testing.T) {
	s := newTestSession()
	for _, u := range []string{"a", "a", "a", "b", "b", "c"} {
		s.Visit(u)
	}

	sum := s.Summary()
	assert.Equal(t, 6, sum.Total)
	assert.Equal(t, "c", sum.MostRecent)
	assert.Equal(t, []storage.SiteCount{
		{URL: "a", Visits: 3},
		{URL: "b", Visits: 2},
		{URL: "c", Visits: 1},
	}, sum.Top)
}

func TestExportImportIntoFreshSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")

	src := newTestSession()
	src.Visit("a.com")
	src.Visit("b.com")
	n, err := src.ExportHistory(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dst := New(WithClock(ClockFunc(func() string { return "unused" })))
	res, err := dst.ImportHistory(path)
	require.NoError(t, err)
	assert.Equal(t, storage.ImportResult{Imported: 2}, res)
	assert.Equal(t, src.FullHistory(), dst.FullHistory())
}

func TestIOFailuresWrapErrIO(t *testing.T) {
	s := newTestSession()
	dir := t.TempDir()

	_, err := s.ImportHistory(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = s.ExportHistory(filepath.Join(dir, "missing-dir", "out.txt"))
	assert.ErrorIs(t, err, ErrIO)

	_, err = s.ImportBookmarks(filepath.Join(dir, "missing.html"))
	assert.ErrorIs(t, err, ErrIO)
}

func TestImportBookmarksFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.html")
	html := `<DL><p><DT><H3>News</H3><DL><p><DT><A HREF="https://lwn.net/">LWN</A></DL><p></DL>`
	require.NoError(t, os.WriteFile(path, []byte(html), 0o644))

	s := newTestSession()
	n, err := s.ImportBookmarks(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	cats, err := s.ListBookmarks(Credential)
	require.NoError(t, err)
	assert.Equal(t, []storage.Category{{Name: "News", URLs: []string{"https://lwn.net/"}}}, cats)
}
