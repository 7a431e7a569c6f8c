package catalog

import "strings"

// CategoryID identifies a category. The set of valid ids is closed.
type CategoryID string

const (
	CategoryUIBasics     CategoryID = "ui-basics"
	CategoryLayout       CategoryID = "layout"
	CategoryAnimation    CategoryID = "animation"
	CategoryReactHooks   CategoryID = "react-hooks"
	CategoryNextFeatures CategoryID = "next-features"
)

var categoryIDs = []CategoryID{
	CategoryUIBasics,
	CategoryLayout,
	CategoryAnimation,
	CategoryReactHooks,
	CategoryNextFeatures,
}

// CategoryIDs returns every valid category id in declaration order.
func CategoryIDs() []CategoryID {
	return append([]CategoryID(nil), categoryIDs...)
}

func (c CategoryID) String() string {
	return string(c)
}

// IsValid reports whether c is one of the known category ids.
func (c CategoryID) IsValid() bool {
	for _, id := range categoryIDs {
		if id == c {
			return true
		}
	}
	return false
}

// ParseCategoryID converts untyped input into a CategoryID.
func ParseCategoryID(s string) (CategoryID, bool) {
	id := CategoryID(s)
	if !id.IsValid() {
		return "", false
	}
	return id, true
}

// Difficulty is the learning level of a page.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

var difficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
}

// Difficulties returns the difficulty levels in ascending order.
func Difficulties() []Difficulty {
	return append([]Difficulty(nil), difficulties...)
}

func (d Difficulty) String() string {
	return string(d)
}

// Rank orders difficulties from 1 (beginner) to 3 (advanced). Unknown values rank 0.
func (d Difficulty) Rank() int {
	for i, v := range difficulties {
		if v == d {
			return i + 1
		}
	}
	return 0
}

func (d Difficulty) IsValid() bool {
	return d.Rank() > 0
}

// Label is the display name of the level.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	}
	return string(d)
}

// ParseDifficulty accepts the canonical value in any letter case.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", false
	}
	return d, true
}

// Category is a top-level grouping of learning pages.
type Category struct {
	ID          CategoryID `json:"id" yaml:"id"`
	Label       string     `json:"label" yaml:"label"`
	Description string     `json:"description" yaml:"description"`
}

// Page is a single catalog entry describing one learning example.
type Page struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Category    CategoryID `json:"category" yaml:"category"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	Tags        []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// HasTag reports whether the page carries tag, ignoring case.
func (p Page) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func (p Page) clone() Page {
	if p.Tags != nil {
		p.Tags = append([]string{}, p.Tags...)
	}
	return p
}

func clonePages(pages []Page) []Page {
	out := make([]Page, len(pages))
	for i, p := range pages {
		out[i] = p.clone()
	}
	return out
}
