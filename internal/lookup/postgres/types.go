package postgres

import (
	"github.com/lib/pq"
	"github.com/shaibs3/pagecatalog/internal/catalog"
)

// GormCategory mirrors catalog.Category
type GormCategory struct {
	ID          string `gorm:"primaryKey"`
	Position    int    `gorm:"not null;index"`
	Label       string `gorm:"not null"`
	Description string
}

func (GormCategory) TableName() string {
	return "categories"
}

// GormPage mirrors catalog.Page
type GormPage struct {
	ID          string         `gorm:"primaryKey"`
	Position    int            `gorm:"not null;index"`
	Title       string         `gorm:"not null"`
	Description string
	CategoryID  string         `gorm:"not null;index"`
	Difficulty  string         `gorm:"not null"`
	Tags        pq.StringArray `gorm:"type:text[]"`
}

func (GormPage) TableName() string {
	return "pages"
}

func rowsFromRegistry(registry *catalog.Registry) ([]GormCategory, []GormPage) {
	categories := registry.Categories()
	catRows := make([]GormCategory, len(categories))
	for i, c := range categories {
		catRows[i] = GormCategory{
			ID:          string(c.ID),
			Position:    i,
			Label:       c.Label,
			Description: c.Description,
		}
	}

	pages := registry.Pages()
	pageRows := make([]GormPage, len(pages))
	for i, p := range pages {
		pageRows[i] = GormPage{
			ID:          p.ID,
			Position:    i,
			Title:       p.Title,
			Description: p.Description,
			CategoryID:  string(p.Category),
			Difficulty:  string(p.Difficulty),
			Tags:        pq.StringArray(p.Tags),
		}
	}
	return catRows, pageRows
}

func categoryIDs(rows []GormCategory) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func pageIDs(rows []GormPage) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func (c GormCategory) toCategory() catalog.Category {
	return catalog.Category{
		ID:          catalog.CategoryID(c.ID),
		Label:       c.Label,
		Description: c.Description,
	}
}

func (p GormPage) toPage() catalog.Page {
	var tags []string
	if len(p.Tags) > 0 {
		tags = append(tags, p.Tags...)
	}
	return catalog.Page{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    catalog.CategoryID(p.CategoryID),
		Difficulty:  catalog.Difficulty(p.Difficulty),
		Tags:        tags,
	}
}

func toPages(rows []GormPage) []catalog.Page {
	pages := make([]catalog.Page, len(rows))
	for i, r := range rows {
		pages[i] = r.toPage()
	}
	return pages
}
