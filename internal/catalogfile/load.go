// Package catalogfile reads and writes catalog definitions.
//
// Catalog files are HCL:
//
//	category "layout" {
//	  label       = "Layout"
//	  description = "Flexbox, Grid and responsive design."
//	}
//
//	page "grid-layout" {
//	  title      = "Grid Layout"
//	  category   = "layout"
//	  difficulty = "intermediate"
//	  tags       = ["Grid", "Tailwind CSS"]
//	}
//
// Blocks keep their file order, which becomes the registry's declaration order.
package catalogfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shaibs3/pagecatalog/internal/catalog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type hclCatalogFile struct {
	Categories []*hclCategory `hcl:"category,block"`
	Pages      []*hclPage     `hcl:"page,block"`
}

type hclCategory struct {
	ID          string `hcl:"id,label"`
	Label       string `hcl:"label,optional"`
	Description string `hcl:"description,optional"`
}

type hclPage struct {
	ID          string   `hcl:"id,label"`
	Title       string   `hcl:"title"`
	Description string   `hcl:"description,optional"`
	Category    string   `hcl:"category"`
	Difficulty  string   `hcl:"difficulty"`
	Tags        []string `hcl:"tags,optional"`
}

// Load reads an HCL catalog file and returns a validated registry.
func Load(path string) (*catalog.Registry, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(src, path)
}

// Parse decodes HCL catalog source. filename is used in diagnostics only.
func Parse(src []byte, filename string) (*catalog.Registry, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", filename, diags)
	}

	var parsed hclCatalogFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", filename, diags)
	}

	categories := make([]catalog.Category, 0, len(parsed.Categories))
	for _, c := range parsed.Categories {
		label := c.Label
		if label == "" {
			label = labelFromID(c.ID)
		}
		categories = append(categories, catalog.Category{
			ID:          catalog.CategoryID(c.ID),
			Label:       label,
			Description: c.Description,
		})
	}

	pages := make([]catalog.Page, 0, len(parsed.Pages))
	for _, p := range parsed.Pages {
		difficulty, ok := catalog.ParseDifficulty(p.Difficulty)
		if !ok {
			// left as written so NewRegistry reports it alongside other problems
			difficulty = catalog.Difficulty(p.Difficulty)
		}
		pages = append(pages, catalog.Page{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Category:    catalog.CategoryID(p.Category),
			Difficulty:  difficulty,
			Tags:        p.Tags,
		})
	}

	registry, err := catalog.NewRegistry(categories, pages)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", filename, err)
	}
	return registry, nil
}

func labelFromID(id string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(id)
	return cases.Title(language.English).String(words)
}
