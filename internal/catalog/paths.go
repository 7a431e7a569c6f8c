package catalog

const (
	HomePath    = "/"
	CatalogPath = "/catalog"
)

// ExamplePath is the link to a page's example: /examples/{category}/{id}.
func ExamplePath(p Page) string {
	return "/examples/" + string(p.Category) + "/" + p.ID
}

// CategoryPath is the catalog listing filtered to one category.
func CategoryPath(id CategoryID) string {
	return CatalogPath + "/category/" + string(id)
}

// MatchesExample reports whether p is the page addressed by
// /examples/{category}/{p.ID}. A page filed under another category is a miss.
func MatchesExample(p Page, category string) bool {
	return string(p.Category) == category
}

// ResolveExample finds the page addressed by an example path.
func (r *Registry) ResolveExample(category, pageID string) (Page, bool) {
	p, ok := r.PageByID(pageID)
	if !ok || !MatchesExample(p, category) {
		return Page{}, false
	}
	return p, true
}

// Crumb is one breadcrumb entry. The current location has no Href.
type Crumb struct {
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

func CatalogCrumbs() []Crumb {
	return []Crumb{
		{Label: "Home", Href: HomePath},
		{Label: "Catalog"},
	}
}

func CategoryCrumbs(c Category) []Crumb {
	return []Crumb{
		{Label: "Home", Href: HomePath},
		{Label: "Catalog", Href: CatalogPath},
		{Label: c.Label},
	}
}

func ExampleCrumbs(c Category, p Page) []Crumb {
	return []Crumb{
		{Label: "Home", Href: HomePath},
		{Label: "Catalog", Href: CatalogPath},
		{Label: c.Label, Href: CategoryPath(c.ID)},
		{Label: p.Title},
	}
}
