package db

// CategoryRecord is a row of the categories table
type CategoryRecord struct {
	ID          string `db:"id" json:"id"`
	Position    int    `db:"position" json:"position"`
	Label       string `db:"label" json:"label"`
	Description string `db:"description" json:"description"`
}

// PageRecord is a row of the pages table. Tags holds a JSON array.
type PageRecord struct {
	ID          string `db:"id" json:"id"`
	Position    int    `db:"position" json:"position"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	CategoryID  string `db:"category_id" json:"category_id"`
	Difficulty  string `db:"difficulty" json:"difficulty"`
	Tags        string `db:"tags" json:"tags"`
}

// Schema is the SQL schema for the categories and pages tables.
// position keeps the declaration order of the source registry.
const Schema = `
CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    label TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS pages (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category_id TEXT NOT NULL REFERENCES categories(id),
    difficulty TEXT NOT NULL,
    tags TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_pages_category ON pages (category_id, position);
`
