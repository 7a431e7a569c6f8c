package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shaibs3/pagecatalog/internal/catalog"
	"github.com/shaibs3/pagecatalog/internal/lookup/shared"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProvider(t *testing.T, details map[string]interface{}) *SQLiteProvider {
	t.Helper()
	p, err := NewSQLiteProvider(shared.DbProviderConfig{
		DbType:       shared.DbTypeSQLite,
		ExtraDetails: details,
	}, catalog.Default(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestSQLiteProvider_MatchesRegistry(t *testing.T) {
	p := newProvider(t, nil)
	ctx := context.Background()
	registry := catalog.Default()

	cats, err := p.Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, registry.Categories(), cats)

	pages, err := p.Pages(ctx)
	require.NoError(t, err)
	require.Equal(t, registry.Pages(), pages)

	for _, id := range catalog.CategoryIDs() {
		got, err := p.PagesByCategory(ctx, id)
		require.NoError(t, err)
		require.Equal(t, registry.PagesByCategory(id), got, id)
	}

	page, ok, err := p.PageByID(ctx, "server-actions")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, catalog.CategoryNextFeatures, page.Category)

	_, ok, err = p.PageByID(ctx, "nonexistent")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSQLiteProvider_FileDatabaseReseeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	first := newProvider(t, map[string]interface{}{"path": path})
	require.NoError(t, first.Close())

	second := newProvider(t, map[string]interface{}{"path": path})
	pages, err := second.Pages(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, 13)
}

func TestSQLiteProvider_BadPathDetail(t *testing.T) {
	_, err := NewSQLiteProvider(shared.DbProviderConfig{
		DbType:       shared.DbTypeSQLite,
		ExtraDetails: map[string]interface{}{"path": 42.0},
	}, catalog.Default(), zap.NewNop())
	require.ErrorContains(t, err, "extra_details.path must be a string")
}
