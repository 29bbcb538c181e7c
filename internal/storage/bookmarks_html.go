package storage

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// UnsortedCategory receives imported links that sit outside any folder.
const UnsortedCategory = "Unsorted"

// ImportBookmarksHTML reads a Netscape bookmark file (the format browsers
// export) and files every link under its innermost folder name. Returns the
// number of bookmarks that were new.
func (bs *BookmarkStore) ImportBookmarksHTML(r io.Reader) (int, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return 0, fmt.Errorf("parsing bookmark file: %w", err)
	}

	added := 0
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" {
			return
		}
		if ok, _ := bs.Add(folderOf(s), href); ok {
			added++
		}
	})
	return added, nil
}

// ImportBookmarksFile opens path and imports it with ImportBookmarksHTML.
func (bs *BookmarkStore) ImportBookmarksFile(path string) (int, error) {
	f, err := os.Open(path) // nolint:gosec
	if err != nil {
		return 0, fmt.Errorf("opening bookmark file: %w", err)
	}
	defer f.Close()

	return bs.ImportBookmarksHTML(f)
}

// folderOf finds the <H3> heading that introduces the <DL> holding a link.
func folderOf(link *goquery.Selection) string {
	list := link.Closest("dl")
	name := strings.TrimSpace(list.PrevAllFiltered("h3").First().Text())
	if name == "" {
		return UnsortedCategory
	}
	return name
}
