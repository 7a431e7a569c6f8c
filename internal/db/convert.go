package db

import (
	"encoding/json"
	"fmt"

	"github.com/shaibs3/pagecatalog/internal/catalog"
)

// RecordsFromRegistry flattens a registry into rows, numbering positions in declaration order
func RecordsFromRegistry(registry *catalog.Registry) ([]CategoryRecord, []PageRecord, error) {
	categories := registry.Categories()
	catRecs := make([]CategoryRecord, 0, len(categories))
	for i, c := range categories {
		catRecs = append(catRecs, CategoryRecord{
			ID:          string(c.ID),
			Position:    i,
			Label:       c.Label,
			Description: c.Description,
		})
	}

	pages := registry.Pages()
	pageRecs := make([]PageRecord, 0, len(pages))
	for i, p := range pages {
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		encoded, err := json.Marshal(tags)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode tags of page %s: %w", p.ID, err)
		}
		pageRecs = append(pageRecs, PageRecord{
			ID:          p.ID,
			Position:    i,
			Title:       p.Title,
			Description: p.Description,
			CategoryID:  string(p.Category),
			Difficulty:  string(p.Difficulty),
			Tags:        string(encoded),
		})
	}
	return catRecs, pageRecs, nil
}

// ToCategory converts a row back into a catalog category
func (r CategoryRecord) ToCategory() catalog.Category {
	return catalog.Category{
		ID:          catalog.CategoryID(r.ID),
		Label:       r.Label,
		Description: r.Description,
	}
}

// ToPage converts a row back into a catalog page. An empty tag list comes back as nil.
func (r PageRecord) ToPage() (catalog.Page, error) {
	var tags []string
	if r.Tags != "" {
		if err := json.Unmarshal([]byte(r.Tags), &tags); err != nil {
			return catalog.Page{}, fmt.Errorf("failed to decode tags of page %s: %w", r.ID, err)
		}
	}
	if len(tags) == 0 {
		tags = nil
	}
	return catalog.Page{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    catalog.CategoryID(r.CategoryID),
		Difficulty:  catalog.Difficulty(r.Difficulty),
		Tags:        tags,
	}, nil
}

// ToPages converts a slice of rows, keeping their order
func ToPages(recs []PageRecord) ([]catalog.Page, error) {
	pages := make([]catalog.Page, 0, len(recs))
	for _, rec := range recs {
		p, err := rec.ToPage()
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, nil
}
