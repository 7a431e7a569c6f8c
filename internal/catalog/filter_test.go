package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterPages(t *testing.T) {
	pages := Pages()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "zero filter keeps everything",
			filter: Filter{},
			want:   pageIDs(pages),
		},
		{
			name:   "category and difficulty",
			filter: Filter{Category: CategoryNextFeatures, Difficulty: DifficultyIntermediate},
			want:   []string{"server-components", "server-actions"},
		},
		{
			name:   "tag ignores case",
			filter: Filter{Tag: "tailwind css"},
			want:   []string{"button-basics", "form-input", "flexbox-layout", "grid-layout", "fade-transition"},
		},
		{
			name:   "no match",
			filter: Filter{Category: CategoryAnimation, Difficulty: DifficultyAdvanced},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, pageIDs(FilterPages(pages, tt.filter)))
		})
	}
}

func TestFilter_IsZero(t *testing.T) {
	assert.True(t, Filter{Tag: "  "}.IsZero())
	assert.False(t, Filter{Difficulty: DifficultyBeginner}.IsZero())
}

func TestFilterPages_ZeroFilterCopies(t *testing.T) {
	pages := Pages()
	got := FilterPages(pages, Filter{Tag: " "})
	require.Equal(t, pages, got)

	got[0].Tags[0] = "mutated"
	require.NotEqual(t, "mutated", pages[0].Tags[0])
	require.NotNil(t, FilterPages(nil, Filter{}))
}

func TestSummarize(t *testing.T) {
	s := Summarize(Categories(), Pages())

	require.Equal(t, 13, s.PageCount)
	require.Equal(t, 5, s.CategoryCount)
	require.Equal(t, map[Difficulty]int{
		DifficultyBeginner:     6,
		DifficultyIntermediate: 5,
		DifficultyAdvanced:     2,
	}, s.ByDifficulty)
	require.Equal(t, map[CategoryID]int{
		CategoryUIBasics:     3,
		CategoryLayout:       2,
		CategoryAnimation:    1,
		CategoryReactHooks:   4,
		CategoryNextFeatures: 3,
	}, s.ByCategory)
}

func TestSummarize_EmptyCategoryStillListed(t *testing.T) {
	s := Summarize([]Category{{ID: CategoryAnimation}}, nil)
	require.Equal(t, 0, s.ByCategory[CategoryAnimation])
	require.Contains(t, s.ByCategory, CategoryAnimation)
	require.Len(t, s.ByDifficulty, 3)
}

func TestParseHelpers(t *testing.T) {
	id, ok := ParseCategoryID("react-hooks")
	require.True(t, ok)
	require.Equal(t, CategoryReactHooks, id)

	_, ok = ParseCategoryID("React-Hooks")
	require.False(t, ok)

	d, ok := ParseDifficulty(" Advanced ")
	require.True(t, ok)
	require.Equal(t, DifficultyAdvanced, d)
	require.Equal(t, 3, d.Rank())
	require.Less(t, DifficultyBeginner.Rank(), DifficultyIntermediate.Rank())

	_, ok = ParseDifficulty("expert")
	require.False(t, ok)
	require.Equal(t, 0, Difficulty("expert").Rank())
}
