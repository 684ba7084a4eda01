// internal/directory/sqlite.go
package directory

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDriver implements Driver for SQLite
type SQLiteDriver struct {
	db    *sql.DB
	table string
}

// Connect establishes connection to SQLite
func (d *SQLiteDriver) Connect(params ConnectParams) error {
	table, err := tableName(params.Table)
	if err != nil {
		return WrapConnectionError(err)
	}

	// For SQLite, the database string is the filepath
	// Strip sqlite:// prefix if present
	dsn := params.Database
	if len(dsn) > 9 && dsn[:9] == "sqlite://" {
		dsn = dsn[9:]
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return WrapConnectionError(err)
	}
	// :memory: databases are per connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 10000"); err != nil {
		db.Close()
		return WrapConnectionError(fmt.Errorf("pragma busy_timeout: %w", err))
	}

	d.db = db
	d.table = table
	return nil
}

// Close closes the database connection
func (d *SQLiteDriver) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Ping checks if database is reachable
func (d *SQLiteDriver) Ping(ctx context.Context) error {
	if d.db == nil {
		return WrapConnectionError(fmt.Errorf("not connected"))
	}
	return d.db.PingContext(ctx)
}

// Type returns the driver type
func (d *SQLiteDriver) Type() DriverType {
	return SQLite
}

// Search returns matching people. SQLite LIKE is case-insensitive for ASCII.
func (d *SQLiteDriver) Search(ctx context.Context, query string, limit int) ([]Person, error) {
	contains, prefix := patterns(query)
	stmt := fmt.Sprintf(`
		SELECT id, handle, display_name, title FROM %s
		WHERE handle LIKE ? ESCAPE '\' OR display_name LIKE ? ESCAPE '\'
		ORDER BY
			CASE WHEN handle LIKE ? ESCAPE '\' OR display_name LIKE ? ESCAPE '\' THEN 0 ELSE 1 END,
			display_name
		LIMIT ?`, d.table)
	return searchPeople(ctx, d.db, stmt, contains, contains, prefix, prefix, limit)
}

// EnsureSchema creates the people table if it does not exist
func (d *SQLiteDriver) EnsureSchema(ctx context.Context) error {
	if d.db == nil {
		return WrapConnectionError(fmt.Errorf("not connected"))
	}
	_, err := d.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %[1]s (
			id TEXT PRIMARY KEY,
			handle TEXT NOT NULL UNIQUE,
			display_name TEXT NOT NULL,
			title TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_%[1]s_display_name ON %[1]s(display_name);
	`, d.table))
	if err != nil {
		return WrapQueryError(err)
	}
	return nil
}

// Seed upserts people into the directory
func (d *SQLiteDriver) Seed(ctx context.Context, people []Person) error {
	if d.db == nil {
		return WrapConnectionError(fmt.Errorf("not connected"))
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return WrapQueryError(err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT OR REPLACE INTO %s (id, handle, display_name, title) VALUES (?, ?, ?, ?)", d.table))
	if err != nil {
		return WrapQueryError(err)
	}
	defer stmt.Close()

	for _, p := range people {
		if _, err := stmt.ExecContext(ctx, p.ID, p.Handle, p.DisplayName, p.Title); err != nil {
			return WrapQueryError(fmt.Errorf("insert %s: %w", p.ID, err))
		}
	}
	if err := tx.Commit(); err != nil {
		return WrapQueryError(err)
	}
	return nil
}

// SamplePeople is the directory written by the seed command
var SamplePeople = []Person{
	{ID: "u-001", Handle: "ada", DisplayName: "Ada Lovelace", Title: "Analyst"},
	{ID: "u-002", Handle: "alan", DisplayName: "Alan Turing", Title: "Cryptography"},
	{ID: "u-003", Handle: "barbara", DisplayName: "Barbara Liskov", Title: "Languages"},
	{ID: "u-004", Handle: "bjarne", DisplayName: "Bjarne Stroustrup", Title: "Languages"},
	{ID: "u-005", Handle: "donald", DisplayName: "Donald Knuth", Title: "Algorithms"},
	{ID: "u-006", Handle: "edsger", DisplayName: "Edsger Dijkstra", Title: "Algorithms"},
	{ID: "u-007", Handle: "grace", DisplayName: "Grace Hopper", Title: "Compilers"},
	{ID: "u-008", Handle: "ken", DisplayName: "Ken Thompson", Title: "Systems"},
	{ID: "u-009", Handle: "linus", DisplayName: "Linus Torvalds", Title: "Kernel"},
	{ID: "u-010", Handle: "margaret", DisplayName: "Margaret Hamilton", Title: "Flight software"},
	{ID: "u-011", Handle: "rob", DisplayName: "Rob Pike", Title: "Systems"},
	{ID: "u-012", Handle: "robert", DisplayName: "Robert Griesemer", Title: "Languages"},
}
