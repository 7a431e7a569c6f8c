// Package site renders the catalog as HTML, either per request or as a static build.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/shaibs3/pagecatalog/internal/catalog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	catalogTemplate  = "catalog.html"
	categoryTemplate = "category.html"
	exampleTemplate  = "example.html"
)

// Renderer executes the embedded page templates
type Renderer struct {
	pages map[string]*template.Template
	md    goldmark.Markdown
}

func NewRenderer() (*Renderer, error) {
	base, err := template.ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout template: %w", err)
	}

	pages := make(map[string]*template.Template, 3)
	for _, name := range []string{catalogTemplate, categoryTemplate, exampleTemplate} {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout template: %w", err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{
		pages: pages,
		// without html.WithUnsafe raw HTML in descriptions is omitted
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
	}, nil
}

type difficultyCount struct {
	Label string
	Count int
	Style catalog.DifficultyStyle
}

type categoryCard struct {
	Category catalog.Category
	Style    catalog.CategoryStyle
	Count    int
	Path     string
}

type pageCard struct {
	Page            catalog.Page
	Path            string
	Difficulty      catalog.DifficultyStyle
	DifficultyLabel string
	DescriptionHTML template.HTML
}

type catalogView struct {
	Title        string
	Crumbs       []catalog.Crumb
	Stats        catalog.Stats
	Difficulties []difficultyCount
	Categories   []categoryCard
}

type categoryView struct {
	Title       string
	Crumbs      []catalog.Crumb
	Category    catalog.Category
	Style       catalog.CategoryStyle
	Pages       []pageCard
	CatalogPath string
}

type exampleView struct {
	Card         pageCard
	Title        string
	Crumbs       []catalog.Crumb
	Category     catalog.Category
	CategoryPath string
}

// RenderCatalog writes the catalog landing page
func (r *Renderer) RenderCatalog(w io.Writer, categories []catalog.Category, pages []catalog.Page) error {
	stats := catalog.Summarize(categories, pages)

	view := catalogView{
		Title:  "Catalog",
		Crumbs: catalog.CatalogCrumbs(),
		Stats:  stats,
	}
	for _, d := range catalog.Difficulties() {
		view.Difficulties = append(view.Difficulties, difficultyCount{
			Label: d.Label(),
			Count: stats.ByDifficulty[d],
			Style: d.Style(),
		})
	}
	for _, c := range categories {
		view.Categories = append(view.Categories, categoryCard{
			Category: c,
			Style:    catalog.StyleFor(c.ID),
			Count:    stats.ByCategory[c.ID],
			Path:     catalog.CategoryPath(c.ID),
		})
	}
	return r.execute(w, catalogTemplate, view)
}

// RenderCategory writes the listing of one category. pages must already be filtered to it.
func (r *Renderer) RenderCategory(w io.Writer, category catalog.Category, pages []catalog.Page) error {
	view := categoryView{
		Title:       category.Label,
		Crumbs:      catalog.CategoryCrumbs(category),
		Category:    category,
		Style:       catalog.StyleFor(category.ID),
		CatalogPath: catalog.CatalogPath,
	}
	for _, p := range pages {
		card, err := r.card(p)
		if err != nil {
			return err
		}
		view.Pages = append(view.Pages, card)
	}
	return r.execute(w, categoryTemplate, view)
}

// RenderExample writes the page of a single example
func (r *Renderer) RenderExample(w io.Writer, category catalog.Category, page catalog.Page) error {
	card, err := r.card(page)
	if err != nil {
		return err
	}
	return r.execute(w, exampleTemplate, exampleView{
		Card:         card,
		Title:        page.Title,
		Crumbs:       catalog.ExampleCrumbs(category, page),
		Category:     category,
		CategoryPath: catalog.CategoryPath(category.ID),
	})
}

func (r *Renderer) card(p catalog.Page) (pageCard, error) {
	desc, err := r.markdown(p.Description)
	if err != nil {
		return pageCard{}, fmt.Errorf("failed to render description of %s: %w", p.ID, err)
	}
	return pageCard{
		Page:            p,
		Path:            catalog.ExamplePath(p),
		Difficulty:      p.Difficulty.Style(),
		DifficultyLabel: p.Difficulty.Label(),
		DescriptionHTML: desc,
	}, nil
}

func (r *Renderer) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// execute buffers the whole page and writes it to w only on success
func (r *Renderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
