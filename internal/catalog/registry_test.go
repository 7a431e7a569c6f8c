package catalog

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func scenarioRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(
		[]Category{
			{ID: CategoryUIBasics, Label: "UI Basics"},
			{ID: CategoryLayout, Label: "Layout"},
		},
		[]Page{
			{ID: "a", Title: "A", Category: CategoryUIBasics, Difficulty: DifficultyBeginner},
			{ID: "b", Title: "B", Category: CategoryLayout, Difficulty: DifficultyIntermediate},
			{ID: "c", Title: "C", Category: CategoryUIBasics, Difficulty: DifficultyAdvanced, Tags: []string{"x"}},
		},
	)
	require.NoError(t, err)
	return r
}

func pageIDs(pages []Page) []string {
	ids := make([]string, 0, len(pages))
	for _, p := range pages {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestPagesByCategory_Scenarios(t *testing.T) {
	r := scenarioRegistry(t)

	require.Equal(t, []string{"a", "c"}, pageIDs(r.PagesByCategory(CategoryUIBasics)))
	require.Equal(t, []string{"b"}, pageIDs(r.PagesByCategory(CategoryLayout)))

	none := r.PagesByCategory(CategoryAnimation)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestPageByID_Scenarios(t *testing.T) {
	r := scenarioRegistry(t)

	p, ok := r.PageByID("b")
	require.True(t, ok)
	require.Equal(t, "b", p.ID)
	require.Equal(t, CategoryLayout, p.Category)

	_, ok = r.PageByID("nonexistent")
	require.False(t, ok)
}

func TestDefault_CategoryFilterProperties(t *testing.T) {
	r := Default()
	all := r.Pages()

	for _, id := range CategoryIDs() {
		got := r.PagesByCategory(id)
		for _, p := range got {
			require.Equal(t, id, p.Category, "page %s", p.ID)
		}

		// got must be a subsequence of all, in the same relative order
		j := 0
		for _, p := range all {
			if j < len(got) && got[j].ID == p.ID {
				j++
			}
		}
		require.Equal(t, len(got), j, "category %s is not an ordered subsequence", id)
	}
}

func TestDefault_PageByIDRoundTrip(t *testing.T) {
	r := Default()
	for _, p := range r.Pages() {
		got, ok := r.PageByID(p.ID)
		require.True(t, ok, p.ID)
		if diff := cmp.Diff(p, got); diff != "" {
			t.Errorf("PageByID(%q) mismatch (-want +got):\n%s", p.ID, diff)
		}
	}
}

func TestDefault_Contents(t *testing.T) {
	require.Len(t, Categories(), 5)
	require.Len(t, Pages(), 13)

	var ids []CategoryID
	for _, c := range Categories() {
		ids = append(ids, c.ID)
	}
	require.Equal(t, CategoryIDs(), ids)

	p, ok := PageByID("suspense-loading")
	require.True(t, ok)
	require.Equal(t, CategoryNextFeatures, p.Category)
	require.Equal(t, DifficultyAdvanced, p.Difficulty)

	require.Equal(t,
		[]string{"use-state-counter", "use-effect-lifecycle", "custom-hooks", "compound-components"},
		pageIDs(PagesByCategory(CategoryReactHooks)))
}

func TestQueriesAreIdempotent(t *testing.T) {
	r := Default()

	first := r.PagesByCategory(CategoryUIBasics)
	first[0].Title = "mutated"
	first[0].Tags[0] = "mutated"

	second := r.PagesByCategory(CategoryUIBasics)
	require.NotEqual(t, "mutated", second[0].Title)
	require.NotEqual(t, "mutated", second[0].Tags[0])
	require.Equal(t, second, r.PagesByCategory(CategoryUIBasics))

	p1, ok1 := r.PageByID("grid-layout")
	p2, ok2 := r.PageByID("grid-layout")
	require.Equal(t, ok1, ok2)
	require.Equal(t, p1, p2)
}

func TestRegistryIgnoresCallerMutation(t *testing.T) {
	cats := []Category{{ID: CategoryLayout, Label: "Layout"}}
	pages := []Page{{ID: "a", Category: CategoryLayout, Difficulty: DifficultyBeginner, Tags: []string{"t"}}}
	r, err := NewRegistry(cats, pages)
	require.NoError(t, err)

	pages[0].ID = "changed"
	pages[0].Tags[0] = "changed"
	cats[0].Label = "changed"

	p, ok := r.PageByID("a")
	require.True(t, ok)
	require.Equal(t, []string{"t"}, p.Tags)
	c, ok := r.Category(CategoryLayout)
	require.True(t, ok)
	require.Equal(t, "Layout", c.Label)
}

func TestNewRegistry_Validation(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
		pages      []Page
		wantErr    []string
	}{
		{
			name:       "unknown category id",
			categories: []Category{{ID: "cooking"}},
			wantErr:    []string{`category "cooking" is not a known category id`},
		},
		{
			name:       "duplicate category",
			categories: []Category{{ID: CategoryLayout}, {ID: CategoryLayout}},
			wantErr:    []string{`duplicate category id "layout"`},
		},
		{
			name:       "duplicate page and dangling reference",
			categories: []Category{{ID: CategoryLayout}},
			pages: []Page{
				{ID: "a", Category: CategoryLayout, Difficulty: DifficultyBeginner},
				{ID: "a", Category: CategoryLayout, Difficulty: DifficultyBeginner},
				{ID: "b", Category: CategoryAnimation, Difficulty: DifficultyBeginner},
			},
			wantErr: []string{
				`duplicate page id "a"`,
				`page "b" references unknown category "animation"`,
			},
		},
		{
			name:       "bad difficulty and empty id",
			categories: []Category{{ID: CategoryLayout}},
			pages: []Page{
				{ID: "a", Category: CategoryLayout, Difficulty: "expert"},
				{ID: " ", Category: CategoryLayout, Difficulty: DifficultyBeginner},
			},
			wantErr: []string{
				`page "a" has invalid difficulty "expert"`,
				`page #1 has an empty id`,
			},
		},
		{
			name:       "page ids that are not a single path segment",
			categories: []Category{{ID: CategoryLayout}},
			pages: []Page{
				{ID: "../../../escaped", Category: CategoryLayout, Difficulty: DifficultyBeginner},
				{ID: "nested/page", Category: CategoryLayout, Difficulty: DifficultyBeginner},
				{ID: `win\page`, Category: CategoryLayout, Difficulty: DifficultyBeginner},
				{ID: ".", Category: CategoryLayout, Difficulty: DifficultyBeginner},
			},
			wantErr: []string{
				`page id "../../../escaped" must be a single path segment`,
				`page id "nested/page" must be a single path segment`,
				`page id "win\\page" must be a single path segment`,
				`page id "." must be a single path segment`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegistry(tt.categories, tt.pages)
			require.Error(t, err)
			require.Nil(t, r)
			require.True(t, errors.Is(err, ErrInvalidCatalog))
			for _, want := range tt.wantErr {
				require.ErrorContains(t, err, want)
			}
		})
	}
}

func TestMustNewRegistryPanics(t *testing.T) {
	require.Panics(t, func() {
		MustNewRegistry([]Category{{ID: "nope"}}, nil)
	})
}

func TestConcurrentReads(t *testing.T) {
	r := Default()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range CategoryIDs() {
				_ = r.PagesByCategory(id)
			}
			_, _ = r.PageByID("hello-world")
		}()
	}
	wg.Wait()
}
