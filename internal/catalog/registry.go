// Package catalog holds the learning-sample catalog: a read-only registry of
// categories and the pages filed under them.
//
// A Registry is built once and never mutated. Every accessor returns copies,
// so a Registry is safe for concurrent use without locking.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrInvalidCatalog is wrapped by every validation failure reported by NewRegistry.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Registry is an immutable collection of categories and pages.
type Registry struct {
	categories []Category
	pages      []Page
	pageIndex  map[string]int
}

// NewRegistry validates the given tables and returns a registry over copies of them.
// All violations are reported together.
func NewRegistry(categories []Category, pages []Page) (*Registry, error) {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidCatalog, fmt.Sprintf(format, args...)))
	}

	known := make(map[CategoryID]struct{}, len(categories))
	for i, c := range categories {
		switch {
		case c.ID == "":
			invalid("category #%d has an empty id", i)
			continue
		case !c.ID.IsValid():
			invalid("category %q is not a known category id", c.ID)
		}
		if _, dup := known[c.ID]; dup {
			invalid("duplicate category id %q", c.ID)
		}
		known[c.ID] = struct{}{}
	}

	index := make(map[string]int, len(pages))
	for i, p := range pages {
		if strings.TrimSpace(p.ID) == "" {
			invalid("page #%d has an empty id", i)
			continue
		}
		if !isPathSegment(p.ID) {
			invalid("page id %q must be a single path segment", p.ID)
		}
		if _, dup := index[p.ID]; dup {
			invalid("duplicate page id %q", p.ID)
		} else {
			index[p.ID] = i
		}
		if _, ok := known[p.Category]; !ok {
			invalid("page %q references unknown category %q", p.ID, p.Category)
		}
		if !p.Difficulty.IsValid() {
			invalid("page %q has invalid difficulty %q", p.ID, p.Difficulty)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Registry{
		categories: append([]Category(nil), categories...),
		pages:      clonePages(pages),
		pageIndex:  index,
	}, nil
}

// isPathSegment reports whether id can stand alone as the last segment of
// /examples/{category}/{id} and as a directory name in a static build.
func isPathSegment(id string) bool {
	if id == "." || strings.Contains(id, "..") {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}

// MustNewRegistry is like NewRegistry but panics on invalid input.
func MustNewRegistry(categories []Category, pages []Page) *Registry {
	r, err := NewRegistry(categories, pages)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return MustNewRegistry(builtinCategories, builtinPages)
})

// Default returns the built-in catalog.
func Default() *Registry {
	return defaultRegistry()
}

// Categories returns all categories in declaration order.
func (r *Registry) Categories() []Category {
	return append([]Category(nil), r.categories...)
}

// Pages returns all pages in declaration order.
func (r *Registry) Pages() []Page {
	return clonePages(r.pages)
}

// Category looks up a category by id.
func (r *Registry) Category(id CategoryID) (Category, bool) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// PagesByCategory returns the pages filed under id, in declaration order.
// The result is empty, never nil, when nothing matches.
func (r *Registry) PagesByCategory(id CategoryID) []Page {
	out := make([]Page, 0)
	for _, p := range r.pages {
		if p.Category == id {
			out = append(out, p.clone())
		}
	}
	return out
}

// PageByID returns the page with the given id. The second result is false on a miss.
func (r *Registry) PageByID(id string) (Page, bool) {
	i, ok := r.pageIndex[id]
	if !ok {
		return Page{}, false
	}
	return r.pages[i].clone(), true
}

// Len returns the number of pages.
func (r *Registry) Len() int {
	return len(r.pages)
}

// Categories returns the built-in categories.
func Categories() []Category { return Default().Categories() }

// Pages returns the built-in pages.
func Pages() []Page { return Default().Pages() }

// PagesByCategory queries the built-in catalog.
func PagesByCategory(id CategoryID) []Page { return Default().PagesByCategory(id) }

// PageByID queries the built-in catalog.
func PageByID(id string) (Page, bool) { return Default().PageByID(id) }
