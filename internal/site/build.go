package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shaibs3/pagecatalog/internal/catalog"
)

// Build writes the catalog as a static site under dir:
//
//	catalog/index.html
//	catalog/category/{id}/index.html
//	examples/{category}/{id}/index.html
//
// It returns the number of files written.
func (r *Renderer) Build(dir string, categories []catalog.Category, pages []catalog.Page) (int, error) {
	written := 0
	write := func(urlPath string, render func(*bytes.Buffer) error) error {
		var buf bytes.Buffer
		if err := render(&buf); err != nil {
			return err
		}
		target, err := targetPath(dir, urlPath)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", urlPath, err)
		}
		if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		written++
		return nil
	}

	err := write(catalog.CatalogPath, func(buf *bytes.Buffer) error {
		return r.RenderCatalog(buf, categories, pages)
	})
	if err != nil {
		return written, err
	}

	for _, c := range categories {
		members := catalog.FilterPages(pages, catalog.Filter{Category: c.ID})
		err := write(catalog.CategoryPath(c.ID), func(buf *bytes.Buffer) error {
			return r.RenderCategory(buf, c, members)
		})
		if err != nil {
			return written, err
		}

		for _, p := range members {
			err := write(catalog.ExamplePath(p), func(buf *bytes.Buffer) error {
				return r.RenderExample(buf, c, p)
			})
			if err != nil {
				return written, err
			}
		}
	}

	return written, nil
}

// targetPath maps a site path to its index.html under dir, refusing paths that
// would resolve outside dir
func targetPath(dir, urlPath string) (string, error) {
	root := filepath.Clean(dir)
	target := filepath.Join(root, filepath.FromSlash(urlPath), "index.html")
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("refusing to write %s outside %s", urlPath, dir)
	}
	return target, nil
}
