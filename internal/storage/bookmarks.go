package storage

import (
	"maps"
	"slices"
)

// Category is a named group of bookmarked URLs, sorted ascending.
type Category struct {
	Name string
	URLs []string
}

// BookmarkStore maps category names to sets of URLs. Listing is gated by a
// fixed credential compared by plain equality; it is not a security boundary.
type BookmarkStore struct {
	categories map[string]map[string]struct{}
	credential string
}

// NewBookmarkStore creates an empty bookmark store guarded by credential.
func NewBookmarkStore(credential string) *BookmarkStore {
	return &BookmarkStore{
		categories: make(map[string]map[string]struct{}),
		credential: credential,
	}
}

// Add files url under category, creating the category if needed. Returns
// false if url was already in that category. An empty url yields ErrNoPage.
func (bs *BookmarkStore) Add(category, url string) (bool, error) {
	if url == "" {
		return false, ErrNoPage
	}

	urls, ok := bs.categories[category]
	if !ok {
		urls = make(map[string]struct{})
		bs.categories[category] = urls
	}
	if _, exists := urls[url]; exists {
		return false, nil
	}
	urls[url] = struct{}{}
	return true, nil
}

// Has reports whether url is bookmarked under category.
func (bs *BookmarkStore) Has(category, url string) bool {
	_, ok := bs.categories[category][url]
	return ok
}

// Count returns the number of categories.
func (bs *BookmarkStore) Count() int {
	return len(bs.categories)
}

// List returns every category in ascending name order, each with its URLs in
// ascending order. A credential mismatch yields ErrAccessDenied and nothing else.
func (bs *BookmarkStore) List(credential string) ([]Category, error) {
	if credential != bs.credential {
		return nil, ErrAccessDenied
	}

	names := slices.Sorted(maps.Keys(bs.categories))
	result := make([]Category, 0, len(names))
	for _, name := range names {
		result = append(result, Category{
			Name: name,
			URLs: slices.Sorted(maps.Keys(bs.categories[name])),
		})
	}
	return result, nil
}
