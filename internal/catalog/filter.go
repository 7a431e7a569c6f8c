package catalog

import "strings"

// Filter selects pages. Zero-valued fields match everything.
type Filter struct {
	Category   CategoryID
	Difficulty Difficulty
	Tag        string
}

func (f Filter) IsZero() bool {
	return f.Category == "" && f.Difficulty == "" && strings.TrimSpace(f.Tag) == ""
}

// Match reports whether p satisfies every set field of f.
func (f Filter) Match(p Page) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Difficulty != "" && p.Difficulty != f.Difficulty {
		return false
	}
	if tag := strings.TrimSpace(f.Tag); tag != "" && !p.HasTag(tag) {
		return false
	}
	return true
}

// FilterPages returns the pages matching f, preserving their order.
func FilterPages(pages []Page, f Filter) []Page {
	if f.IsZero() {
		return clonePages(pages)
	}
	out := make([]Page, 0, len(pages))
	for _, p := range pages {
		if f.Match(p) {
			out = append(out, p.clone())
		}
	}
	return out
}

// Stats summarizes a catalog for the landing page.
type Stats struct {
	PageCount     int                `json:"page_count"`
	CategoryCount int                `json:"category_count"`
	ByDifficulty  map[Difficulty]int `json:"by_difficulty"`
	ByCategory    map[CategoryID]int `json:"by_category"`
}

// Summarize counts pages per difficulty and per category. Every known level and
// every given category appears in the maps, with zero when empty.
func Summarize(categories []Category, pages []Page) Stats {
	s := Stats{
		PageCount:     len(pages),
		CategoryCount: len(categories),
		ByDifficulty:  make(map[Difficulty]int, len(difficulties)),
		ByCategory:    make(map[CategoryID]int, len(categories)),
	}
	for _, d := range difficulties {
		s.ByDifficulty[d] = 0
	}
	for _, c := range categories {
		s.ByCategory[c.ID] = 0
	}
	for _, p := range pages {
		s.ByDifficulty[p.Difficulty]++
		s.ByCategory[p.Category]++
	}
	return s
}
