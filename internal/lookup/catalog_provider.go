package lookup

import (
	"context"

	"github.com/shaibs3/pagecatalog/internal/catalog"
	"github.com/shaibs3/pagecatalog/internal/lookup/shared"
)

// Backend selection lives in the shared package so that backends can import it
type (
	DbType           = shared.DbType
	DbProviderConfig = shared.DbProviderConfig
)

const (
	DbTypeMemory   = shared.DbTypeMemory
	DbTypePostgres = shared.DbTypePostgres
	DbTypeSQLite   = shared.DbTypeSQLite
)

// CatalogProvider serves the catalog queries. A lookup miss is reported through
// the boolean result of PageByID, never as an error; errors mean the backend failed.
type CatalogProvider interface {
	Categories(ctx context.Context) ([]catalog.Category, error)
	Pages(ctx context.Context) ([]catalog.Page, error)
	PagesByCategory(ctx context.Context, id catalog.CategoryID) ([]catalog.Page, error)
	PageByID(ctx context.Context, id string) (catalog.Page, bool, error)
	Close() error
}
