// internal/directory/postgres.go
package directory

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// PostgresDriver implements Driver for PostgreSQL
type PostgresDriver struct {
	db    *sql.DB
	table string
}

// Connect establishes connection to PostgreSQL
func (d *PostgresDriver) Connect(params ConnectParams) error {
	table, err := tableName(params.Table)
	if err != nil {
		return WrapConnectionError(err)
	}

	// Build connection string safely with url.URL
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(params.User, params.Password),
		Host:   fmt.Sprintf("%s:%d", params.Host, params.Port),
		Path:   "/" + params.Database,
	}

	connConfig, err := pgx.ParseConfig(u.String())
	if err != nil {
		return WrapConnectionError(err)
	}

	// Register the driver configuration with stdlib
	db, err := sql.Open("pgx", stdlib.RegisterConnConfig(connConfig))
	if err != nil {
		return WrapConnectionError(err)
	}

	// Configure connection pooling
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return WrapConnectionError(err)
	}

	d.db = db
	d.table = table
	return nil
}

// Close closes the database connection
func (d *PostgresDriver) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Ping checks if database is reachable
func (d *PostgresDriver) Ping(ctx context.Context) error {
	if d.db == nil {
		return WrapConnectionError(fmt.Errorf("not connected"))
	}
	return d.db.PingContext(ctx)
}

// Type returns the driver type
func (d *PostgresDriver) Type() DriverType {
	return Postgres
}

// Search returns matching people using ILIKE
func (d *PostgresDriver) Search(ctx context.Context, query string, limit int) ([]Person, error) {
	contains, prefix := patterns(query)
	stmt := fmt.Sprintf(`
		SELECT id::text, handle, display_name, title FROM %s
		WHERE handle ILIKE $1 OR display_name ILIKE $1
		ORDER BY
			CASE WHEN handle ILIKE $2 OR display_name ILIKE $2 THEN 0 ELSE 1 END,
			display_name
		LIMIT $3`, d.table)
	return searchPeople(ctx, d.db, stmt, contains, prefix, limit)
}
