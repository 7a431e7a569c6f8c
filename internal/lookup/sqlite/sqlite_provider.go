package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shaibs3/pagecatalog/internal/catalog"
	"github.com/shaibs3/pagecatalog/internal/db"
	"github.com/shaibs3/pagecatalog/internal/lookup/shared"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const defaultPath = ":memory:"

// SQLiteProvider serves the catalog from a SQLite database seeded from a registry
type SQLiteProvider struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSQLiteProvider(config shared.DbProviderConfig, registry *catalog.Registry, logger *zap.Logger) (*SQLiteProvider, error) {
	sqliteLogger := logger.Named("sqlite")

	path, ok, err := config.StringDetail("path")
	if err != nil {
		return nil, err
	}
	if !ok {
		path = defaultPath
	}
	sqliteLogger.Info("initializing SQLite provider", zap.String("path", path))

	dbConn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// every connection to ":memory:" would otherwise see its own empty database
	dbConn.SetMaxOpenConns(1)

	ctx := context.Background()
	if err := dbConn.PingContext(ctx); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping SQLite: %w", err)
	}

	if _, err := dbConn.ExecContext(ctx, db.Schema); err != nil {
		_ = dbConn.Close()
		sqliteLogger.Error("failed to create tables", zap.Error(err))
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	categories, pages, err := db.RecordsFromRegistry(registry)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}
	if err := db.ReplaceCatalog(ctx, dbConn, categories, pages); err != nil {
		_ = dbConn.Close()
		sqliteLogger.Error("failed to seed catalog", zap.Error(err))
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	sqliteLogger.Info("SQLite provider initialized successfully",
		zap.Int("categories", len(categories)),
		zap.Int("pages", len(pages)))
	return &SQLiteProvider{
		db:     dbConn,
		logger: sqliteLogger,
	}, nil
}

func (p *SQLiteProvider) Categories(ctx context.Context) ([]catalog.Category, error) {
	recs, err := db.GetCategories(ctx, p.db)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	categories := make([]catalog.Category, 0, len(recs))
	for _, rec := range recs {
		categories = append(categories, rec.ToCategory())
	}
	return categories, nil
}

func (p *SQLiteProvider) Pages(ctx context.Context) ([]catalog.Page, error) {
	recs, err := db.GetPages(ctx, p.db)
	if err != nil {
		return nil, err
	}
	return db.ToPages(recs)
}

func (p *SQLiteProvider) PagesByCategory(ctx context.Context, id catalog.CategoryID) ([]catalog.Page, error) {
	recs, err := db.GetPagesByCategory(ctx, p.db, string(id))
	if err != nil {
		return nil, err
	}
	return db.ToPages(recs)
}

func (p *SQLiteProvider) PageByID(ctx context.Context, id string) (catalog.Page, bool, error) {
	rec, err := db.GetPageByID(ctx, p.db, id)
	if err != nil {
		return catalog.Page{}, false, err
	}
	if rec == nil {
		return catalog.Page{}, false, nil
	}
	page, err := rec.ToPage()
	if err != nil {
		return catalog.Page{}, false, err
	}
	return page, true, nil
}

func (p *SQLiteProvider) Close() error {
	return p.db.Close()
}
