// internal/directory/driver.go
package directory

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
)

// DriverType represents supported database types
type DriverType string

const (
	Postgres DriverType = "postgres"
	MySQL    DriverType = "mysql"
	SQLite   DriverType = "sqlite"
)

// DefaultTable is the table searched when none is configured.
const DefaultTable = "people"

// Person is one mentionable row of the directory
type Person struct {
	ID          string
	Handle      string
	DisplayName string
	Title       string
}

// ConnectParams holds database connection details
type ConnectParams struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Table    string
}

// Driver defines the interface for directory lookups
type Driver interface {
	Connect(params ConnectParams) error
	Close() error
	Ping(ctx context.Context) error
	Type() DriverType
	// Search returns people whose handle or display name contains query,
	// prefix matches first.
	Search(ctx context.Context, query string, limit int) ([]Person, error)
}

// NewDriver creates a new driver instance by type
func NewDriver(driverType DriverType) (Driver, error) {
	switch driverType {
	case Postgres:
		return &PostgresDriver{}, nil
	case MySQL:
		return &MySQLDriver{}, nil
	case SQLite:
		return &SQLiteDriver{}, nil
	default:
		return nil, fmt.Errorf("unknown driver type: %s", driverType)
	}
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// tableName validates a configured table name so it can be spliced into SQL
func tableName(name string) (string, error) {
	if name == "" {
		return DefaultTable, nil
	}
	if !identRe.MatchString(name) {
		return "", fmt.Errorf("invalid table name %q", name)
	}
	return name, nil
}

// likeEscaper escapes LIKE wildcards with a backslash
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// patterns returns the contains and prefix LIKE patterns for query
func patterns(query string) (contains, prefix string) {
	q := likeEscaper.Replace(strings.TrimSpace(query))
	return "%" + q + "%", q + "%"
}

// searchPeople runs a search statement whose columns are
// id, handle, display_name, title
func searchPeople(ctx context.Context, db *sql.DB, stmt string, args ...any) ([]Person, error) {
	if db == nil {
		return nil, WrapConnectionError(fmt.Errorf("not connected"))
	}

	rows, err := db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, WrapQueryError(err)
	}
	defer rows.Close()

	var people []Person
	for rows.Next() {
		var (
			p     Person
			title sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Handle, &p.DisplayName, &title); err != nil {
			return nil, WrapQueryError(err)
		}
		p.Title = title.String
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, WrapQueryError(err)
	}
	return people, nil
}
