// internal/history/store.go
package history

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"
)

// perTriggerLimit caps how many mentions are kept for each trigger
const perTriggerLimit = 500

// Store manages mention history persistence
type Store struct {
	db *sql.DB
}

// NewStore creates a history store at the XDG data path
func NewStore() (*Store, error) {
	dbPath, err := xdg.DataFile("mentions/history.db")
	if err != nil {
		return nil, err
	}
	return Open(dbPath)
}

// Open creates a history store backed by the SQLite file at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, err
	}

	// Create table and indexes
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS mentions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			trigger_char TEXT NOT NULL,
			source TEXT NOT NULL,
			entity_id TEXT NOT NULL,
			display TEXT NOT NULL,
			is_record BOOLEAN NOT NULL DEFAULT 0,
			mentioned_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_mentions_trigger ON mentions(trigger_char);
		CREATE INDEX IF NOT EXISTS idx_mentions_mentioned_at ON mentions(mentioned_at);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	store := &Store{db: db}
	// Old entries are best-effort pruned; a failure here is not fatal
	_ = store.cleanup()
	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a committed mention
func (s *Store) Add(entry *Entry) error {
	res, err := s.db.Exec(`
		INSERT INTO mentions (trigger_char, source, entity_id, display, is_record, mentioned_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		entry.Trigger,
		entry.Source,
		entry.EntityID,
		entry.Display,
		entry.IsRecord,
		entry.MentionedAt,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	entry.ID = id

	return s.enforceLimit(entry.Trigger, perTriggerLimit)
}

// enforceLimit keeps only the most recent N entries per trigger
func (s *Store) enforceLimit(trigger string, limit int) error {
	_, err := s.db.Exec(`
		DELETE FROM mentions
		WHERE trigger_char = ?
		AND id NOT IN (
			SELECT id FROM mentions
			WHERE trigger_char = ?
			ORDER BY mentioned_at DESC, id DESC
			LIMIT ?
		)
	`, trigger, trigger, limit)
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Recent returns the latest mention of each distinct entity for a trigger
// whose display or id starts with prefix, newest first
func (s *Store) Recent(trigger, prefix string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	pattern := likeEscaper.Replace(prefix) + "%"
	rows, err := s.db.Query(`
		SELECT id, trigger_char, source, entity_id, display, is_record, mentioned_at
		FROM mentions
		WHERE id IN (
			SELECT MAX(id) FROM mentions
			WHERE trigger_char = ?
			AND (display LIKE ? ESCAPE '\' OR entity_id LIKE ? ESCAPE '\')
			GROUP BY entity_id
		)
		ORDER BY mentioned_at DESC, id DESC
		LIMIT ?
	`, trigger, pattern, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// List returns paginated history entries, newest first
func (s *Store) List(limit, offset int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, trigger_char, source, entity_id, display, is_record, mentioned_at
		FROM mentions
		ORDER BY mentioned_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// scanEntries scans rows into Entry slice
func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Trigger, &e.Source, &e.EntityID, &e.Display, &e.IsRecord, &e.MentionedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetByID retrieves a single history entry by ID
func (s *Store) GetByID(id int64) (*Entry, error) {
	row := s.db.QueryRow(`
		SELECT id, trigger_char, source, entity_id, display, is_record, mentioned_at
		FROM mentions WHERE id = ?
	`, id)

	var e Entry
	err := row.Scan(&e.ID, &e.Trigger, &e.Source, &e.EntityID, &e.Display, &e.IsRecord, &e.MentionedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete removes a history entry by ID
func (s *Store) Delete(id int64) error {
	_, err := s.db.Exec("DELETE FROM mentions WHERE id = ?", id)
	return err
}

// cleanup removes mentions older than 90 days
func (s *Store) cleanup() error {
	_, err := s.db.Exec(`
		DELETE FROM mentions
		WHERE mentioned_at < datetime('now', '-90 days')
	`)
	return err
}

// Count returns the total number of stored mentions
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM mentions`).Scan(&count)
	return count, err
}
