package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/shaibs3/pagecatalog/internal/catalog"
	"github.com/shaibs3/pagecatalog/internal/lookup/shared"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// PostgresProvider serves the catalog from a Postgres read replica of the registry
type PostgresProvider struct {
	gormDB *gorm.DB
	logger *zap.Logger
	cb     *gobreaker.CircuitBreaker
}

func NewPostgresProvider(config shared.DbProviderConfig, registry *catalog.Registry, logger *zap.Logger) (*PostgresProvider, error) {
	pgLogger := logger.Named("postgres")

	connStr, ok, err := config.StringDetail("conn_str")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("conn_str is required for Postgres provider")
	}
	pgLogger.Info("initializing Postgres provider")

	gormDB, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger: gormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open GORM connection: %w", err)
	}
	if err := gormDB.AutoMigrate(&GormCategory{}, &GormPage{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate: %w", err)
	}

	p := &PostgresProvider{
		gormDB: gormDB,
		logger: pgLogger,
		cb:     newBreaker(pgLogger),
	}

	if err := p.seed(context.Background(), registry); err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	pgLogger.Info("Postgres provider initialized successfully")
	return p, nil
}

func gormLogger() logger.Interface {
	return logger.Default.LogMode(logger.Warn)
}

func newBreaker(l *zap.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "PostgresDB",
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			l.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
}

// seed upserts the registry rows by id and then drops rows whose ids the
// registry no longer has, all in one transaction
func (p *PostgresProvider) seed(ctx context.Context, registry *catalog.Registry) error {
	categories, pages := rowsFromRegistry(registry)
	return p.gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(categories) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&categories).Error; err != nil {
				return err
			}
		}
		if len(pages) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&pages).Error; err != nil {
				return err
			}
		}
		if err := deleteStale(tx, &GormPage{}, pageIDs(pages)); err != nil {
			return err
		}
		return deleteStale(tx, &GormCategory{}, categoryIDs(categories))
	})
}

func deleteStale(tx *gorm.DB, model interface{}, keep []string) error {
	if len(keep) == 0 {
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error
	}
	return tx.Where("id NOT IN ?", keep).Delete(model).Error
}

// execute runs fn behind the circuit breaker, retrying transient failures with backoff
func (p *PostgresProvider) execute(ctx context.Context, op string, fn func(db *gorm.DB) error) error {
	return retry.Do(
		func() error {
			_, err := p.cb.Execute(func() (interface{}, error) {
				return nil, fn(p.gormDB.WithContext(ctx))
			})
			return err
		},
		retry.Attempts(3),
		retry.Delay(50*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			p.logger.Warn("retrying "+op, zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
}

func isRetryable(err error) bool {
	return !errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded) &&
		!errors.Is(err, gobreaker.ErrOpenState) &&
		!errors.Is(err, gobreaker.ErrTooManyRequests)
}

func (p *PostgresProvider) Categories(ctx context.Context) ([]catalog.Category, error) {
	var rows []GormCategory
	err := p.execute(ctx, "Categories", func(db *gorm.DB) error {
		return db.Order("position").Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	categories := make([]catalog.Category, len(rows))
	for i, r := range rows {
		categories[i] = r.toCategory()
	}
	return categories, nil
}

func (p *PostgresProvider) Pages(ctx context.Context) ([]catalog.Page, error) {
	var rows []GormPage
	err := p.execute(ctx, "Pages", func(db *gorm.DB) error {
		return db.Order("position").Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return toPages(rows), nil
}

func (p *PostgresProvider) PagesByCategory(ctx context.Context, id catalog.CategoryID) ([]catalog.Page, error) {
	var rows []GormPage
	err := p.execute(ctx, "PagesByCategory", func(db *gorm.DB) error {
		return db.Where("category_id = ?", string(id)).Order("position").Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return toPages(rows), nil
}

func (p *PostgresProvider) PageByID(ctx context.Context, id string) (catalog.Page, bool, error) {
	var rows []GormPage
	err := p.execute(ctx, "PageByID", func(db *gorm.DB) error {
		// Find with Limit instead of First: a miss is not an error
		return db.Where("id = ?", id).Order("position").Limit(1).Find(&rows).Error
	})
	if err != nil {
		return catalog.Page{}, false, err
	}
	if len(rows) == 0 {
		return catalog.Page{}, false, nil
	}
	return rows[0].toPage(), true, nil
}

func (p *PostgresProvider) Close() error {
	sqlDB, err := p.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
