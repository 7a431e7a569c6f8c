package lookup

import (
	"context"

	"github.com/shaibs3/pagecatalog/internal/catalog"
)

// InMemoryProvider answers straight from an immutable registry
type InMemoryProvider struct {
	registry *catalog.Registry
}

func NewInMemoryProvider(registry *catalog.Registry) *InMemoryProvider {
	if registry == nil {
		registry = catalog.Default()
	}
	return &InMemoryProvider{registry: registry}
}

func (m *InMemoryProvider) Categories(ctx context.Context) ([]catalog.Category, error) {
	return m.registry.Categories(), nil
}

func (m *InMemoryProvider) Pages(ctx context.Context) ([]catalog.Page, error) {
	return m.registry.Pages(), nil
}

func (m *InMemoryProvider) PagesByCategory(ctx context.Context, id catalog.CategoryID) ([]catalog.Page, error) {
	return m.registry.PagesByCategory(id), nil
}

func (m *InMemoryProvider) PageByID(ctx context.Context, id string) (catalog.Page, bool, error) {
	p, ok := m.registry.PageByID(id)
	return p, ok, nil
}

func (m *InMemoryProvider) Close() error {
	return nil
}
