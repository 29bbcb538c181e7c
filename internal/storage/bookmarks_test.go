package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkAddRejectsEmptyURL(t *testing.T) {
	bs := NewBookmarkStore("admin")

	added, err := bs.Add("news", "")
	assert.ErrorIs(t, err, ErrNoPage)
	assert.False(t, added)
	assert.Equal(t, 0, bs.Count())
}

func TestBookmarkSetSemantics(t *testing.T) {
	bs := NewBookmarkStore("admin")

	added, err := bs.Add("dev", "go.dev")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = bs.Add("dev", "go.dev")
	require.NoError(t, err)
	assert.False(t, added)

	added, err = bs.Add("docs", "go.dev")
	require.NoError(t, err)
	assert.True(t, added)

	assert.True(t, bs.Has("dev", "go.dev"))
	assert.False(t, bs.Has("Dev", "go.dev"))
	assert.Equal(t, 2, bs.Count())
}

func TestBookmarkListSortedRegardlessOfInsertOrder(t *testing.T) {
	bs := NewBookmarkStore("admin")
	for _, pair := range [][2]string{
		{"zeta", "z.com"},
		{"alpha", "c.com"},
		{"alpha", "a.com"},
		{"mid", "m.com"},
		{"alpha", "b.com"},
	} {
		_, err := bs.Add(pair[0], pair[1])
		require.NoError(t, err)
	}

	got, err := bs.List("admin")
	require.NoError(t, err)
	assert.Equal(t, []Category{
		{Name: "alpha", URLs: []string{"a.com", "b.com", "c.com"}},
		{Name: "mid", URLs: []string{"m.com"}},
		{Name: "zeta", URLs: []string{"z.com"}},
	}, got)
}

func TestBookmarkListWrongCredential(t *testing.T) {
	bs := NewBookmarkStore("admin")
	_, err := bs.Add("dev", "go.dev")
	require.NoError(t, err)

	got, err := bs.List("Admin")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, got)

	// Nothing was mutated by the failed attempt.
	got, err = bs.List("admin")
	require.NoError(t, err)
	assert.Equal(t, []Category{{Name: "dev", URLs: []string{"go.dev"}}}, got)
}

func TestBookmarkListEmpty(t *testing.T) {
	got, err := NewBookmarkStore("admin").List("admin")
	require.NoError(t, err)
	assert.Empty(t, got)
}

const netscapeExport = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><H3 ADD_DATE="1700000000">Dev</H3>
    <DL><p>
        <DT><A HREF="https://go.dev/">Go</A>
        <DT><A HREF="https://github.com/">GitHub</A>
        <DT><H3>Docs</H3>
        <DL><p>
            <DT><A HREF="https://pkg.go.dev/">pkg.go.dev</A>
        </DL><p>
        <DT><A HREF="https://go.dev/">Go again</A>
    </DL><p>
    <DT><A HREF="https://news.ycombinator.com/">HN</A>
</DL><p>
`

func TestImportBookmarksHTML(t *testing.T) {
	bs := NewBookmarkStore("admin")

	added, err := bs.ImportBookmarksHTML(strings.NewReader(netscapeExport))
	require.NoError(t, err)
	assert.Equal(t, 4, added)

	got, err := bs.List("admin")
	require.NoError(t, err)
	assert.Equal(t, []Category{
		{Name: "Dev", URLs: []string{"https://github.com/", "https://go.dev/"}},
		{Name: "Docs", URLs: []string{"https://pkg.go.dev/"}},
		{Name: UnsortedCategory, URLs: []string{"https://news.ycombinator.com/"}},
	}, got)
}

func TestImportBookmarksFileMissing(t *testing.T) {
	_, err := NewBookmarkStore("admin").ImportBookmarksFile(t.TempDir() + "/nope.html")
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
}
