package db

import (
	"context"
	"database/sql"
	"fmt"
)

// ReplaceCatalog swaps the table contents for the given rows in one transaction
func ReplaceCatalog(ctx context.Context, db *sql.DB, categories []CategoryRecord, pages []PageRecord) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pages`); err != nil {
		return fmt.Errorf("failed to clear pages: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("failed to clear categories: %w", err)
	}
	for _, rec := range categories {
		if err := insertCategory(ctx, tx, rec); err != nil {
			return fmt.Errorf("failed to insert category %s: %w", rec.ID, err)
		}
	}
	for _, rec := range pages {
		if err := insertPage(ctx, tx, rec); err != nil {
			return fmt.Errorf("failed to insert page %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertCategory(ctx context.Context, tx *sql.Tx, rec CategoryRecord) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO categories (id, position, label, description) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.Position, rec.Label, rec.Description,
	)
	return err
}

func insertPage(ctx context.Context, tx *sql.Tx, rec PageRecord) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO pages (id, position, title, description, category_id, difficulty, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Position, rec.Title, rec.Description, rec.CategoryID, rec.Difficulty, rec.Tags)
	return err
}

// GetCategories returns all category rows in declaration order
func GetCategories(ctx context.Context, db *sql.DB) ([]CategoryRecord, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, position, label, description
		FROM categories
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []CategoryRecord
	for rows.Next() {
		var rec CategoryRecord
		if err := rows.Scan(&rec.ID, &rec.Position, &rec.Label, &rec.Description); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

const pageColumns = `id, position, title, description, category_id, difficulty, tags`

// GetPages returns all page rows in declaration order
func GetPages(ctx context.Context, db *sql.DB) ([]PageRecord, error) {
	return queryPages(ctx, db, `SELECT `+pageColumns+` FROM pages ORDER BY position ASC`)
}

// GetPagesByCategory returns the page rows of one category in declaration order
func GetPagesByCategory(ctx context.Context, db *sql.DB, categoryID string) ([]PageRecord, error) {
	return queryPages(ctx, db, `
		SELECT `+pageColumns+`
		FROM pages
		WHERE category_id = ?
		ORDER BY position ASC
	`, categoryID)
}

// GetPageByID returns the first page row with the given id, or nil when absent
func GetPageByID(ctx context.Context, db *sql.DB, id string) (*PageRecord, error) {
	recs, err := queryPages(ctx, db, `
		SELECT `+pageColumns+`
		FROM pages
		WHERE id = ?
		ORDER BY position ASC
		LIMIT 1
	`, id)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

func queryPages(ctx context.Context, db *sql.DB, query string, args ...interface{}) ([]PageRecord, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pages: %w", err)
	}
	defer rows.Close()

	var records []PageRecord
	for rows.Next() {
		var rec PageRecord
		err := rows.Scan(&rec.ID, &rec.Position, &rec.Title, &rec.Description, &rec.CategoryID, &rec.Difficulty, &rec.Tags)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
