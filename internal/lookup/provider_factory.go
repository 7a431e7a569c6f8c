package lookup

import (
	"encoding/json"
	"fmt"

	"github.com/shaibs3/pagecatalog/internal/catalog"
	"github.com/shaibs3/pagecatalog/internal/catalogfile"
	"github.com/shaibs3/pagecatalog/internal/lookup/postgres"
	"github.com/shaibs3/pagecatalog/internal/lookup/shared"
	"github.com/shaibs3/pagecatalog/internal/lookup/sqlite"
	"github.com/shaibs3/pagecatalog/internal/telemetry"
	"go.uber.org/zap"
)

// ProviderFactory defines the interface for creating catalog providers
type ProviderFactory interface {
	CreateProvider(configJSON string) (CatalogProvider, error)
}

// DbProviderFactory builds providers from a JSON configuration
type DbProviderFactory struct {
	logger    *zap.Logger
	telemetry *telemetry.Telemetry
}

func NewDbProviderFactory(logger *zap.Logger, tel *telemetry.Telemetry) *DbProviderFactory {
	return &DbProviderFactory{
		logger:    logger.Named("factory"),
		telemetry: tel,
	}
}

// DefaultConfigJSON selects the in-memory provider over the built-in catalog
func DefaultConfigJSON() string {
	b, _ := json.Marshal(DbProviderConfig{
		DbType:       DbTypeMemory,
		ExtraDetails: map[string]interface{}{},
	})
	return string(b)
}

func (f *DbProviderFactory) CreateProvider(configJSON string) (CatalogProvider, error) {
	var config shared.DbProviderConfig
	f.logger.Debug("parsing configuration", zap.String("configJSON", configJSON))

	if err := json.Unmarshal([]byte(configJSON), &config); err != nil {
		return nil, fmt.Errorf("failed to parse database configuration JSON: %w", err)
	}

	if !config.DbType.IsValid() {
		return nil, fmt.Errorf("unsupported database type: %s", config.DbType)
	}

	f.logger.Info("creating catalog provider", zap.String("db_type", config.DbType.String()))

	registry, err := f.sourceRegistry(config)
	if err != nil {
		return nil, err
	}

	var provider CatalogProvider
	switch config.DbType {
	case shared.DbTypePostgres:
		provider, err = postgres.NewPostgresProvider(config, registry, f.logger)
	case shared.DbTypeSQLite:
		provider, err = sqlite.NewSQLiteProvider(config, registry, f.logger)
	case shared.DbTypeMemory:
		f.logger.Info("using InMemoryProvider for catalog")
		provider = NewInMemoryProvider(registry)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", config.DbType)
	}
	if err != nil {
		return nil, err
	}

	if f.telemetry == nil {
		return provider, nil
	}
	metrics, err := initLookupMetrics(f.telemetry.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to init lookup metrics: %w", err)
	}
	return newInstrumentedProvider(provider, config.DbType, metrics), nil
}

// sourceRegistry is the catalog every backend serves: the built-in one, or the
// file named by extra_details.catalog_file
func (f *DbProviderFactory) sourceRegistry(config shared.DbProviderConfig) (*catalog.Registry, error) {
	path, ok, err := config.StringDetail("catalog_file")
	if err != nil {
		return nil, err
	}
	if !ok {
		return catalog.Default(), nil
	}
	f.logger.Info("loading catalog file", zap.String("path", path))
	registry, err := catalogfile.Load(path)
	if err != nil {
		return nil, err
	}
	return registry, nil
}
