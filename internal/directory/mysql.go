// internal/directory/mysql.go
package directory

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// MySQLDriver implements Driver for MySQL
type MySQLDriver struct {
	db    *sql.DB
	table string
}

// Connect establishes connection to MySQL
func (d *MySQLDriver) Connect(params ConnectParams) error {
	table, err := tableName(params.Table)
	if err != nil {
		return WrapConnectionError(err)
	}

	cfg := mysql.NewConfig()
	cfg.User = params.User
	cfg.Passwd = params.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", params.Host, params.Port)
	cfg.DBName = params.Database
	cfg.Timeout = 15 * time.Second

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return WrapConnectionError(err)
	}
	db := sql.OpenDB(connector)

	// Configure connection pooling
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection immediately (sql.OpenDB is lazy)
	if err := db.Ping(); err != nil {
		db.Close()
		return WrapConnectionError(err)
	}

	d.db = db
	d.table = table
	return nil
}

// Close closes the database connection
func (d *MySQLDriver) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Ping checks if database is reachable
func (d *MySQLDriver) Ping(ctx context.Context) error {
	if d.db == nil {
		return WrapConnectionError(fmt.Errorf("not connected"))
	}
	return d.db.PingContext(ctx)
}

// Type returns the driver type
func (d *MySQLDriver) Type() DriverType {
	return MySQL
}

// Search returns matching people. The default collation makes LIKE
// case-insensitive and backslash is the default escape.
func (d *MySQLDriver) Search(ctx context.Context, query string, limit int) ([]Person, error) {
	contains, prefix := patterns(query)
	stmt := fmt.Sprintf(`
		SELECT CAST(id AS CHAR), handle, display_name, title FROM %s
		WHERE handle LIKE ? OR display_name LIKE ?
		ORDER BY
			CASE WHEN handle LIKE ? OR display_name LIKE ? THEN 0 ELSE 1 END,
			display_name
		LIMIT ?`, d.table)
	return searchPeople(ctx, d.db, stmt, contains, contains, prefix, prefix, limit)
}
