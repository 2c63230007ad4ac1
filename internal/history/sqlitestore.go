package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/andrechen77/icoraw/internal/paths"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) a SQLite database at path and creates
// the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Set PRAGMAs before any DDL.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS conversions (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp   TEXT    NOT NULL,
    source      TEXT    NOT NULL,
    format      TEXT    NOT NULL DEFAULT '',
    width       INTEGER NOT NULL,
    height      INTEGER NOT NULL,
    bytes       INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_conversions_timestamp ON conversions(timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_conversions_format    ON conversions(format);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) Log(rec Record) error {
	_, err := s.db.Exec(
		`INSERT INTO conversions (timestamp, source, format, width, height, bytes, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Format(time.RFC3339), rec.Source, rec.Format,
		rec.Width, rec.Height, rec.Bytes, rec.Duration.Milliseconds(),
	)
	return err
}

func (s *SQLiteStore) Entries(days int) ([]Entry, error) {
	query := `SELECT timestamp, source, format, width, height, bytes, duration_ms
	          FROM conversions`
	var args []any
	if days > 0 {
		query += ` WHERE timestamp >= ?`
		args = append(args, DayCutoff(days).Format(time.RFC3339))
	}
	query += ` ORDER BY id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		var ms int64
		if err := rows.Scan(&ts, &e.Source, &e.Format, &e.Width, &e.Height, &e.Bytes, &ms); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			continue // malformed row, skip
		}
		e.Time = t
		e.Duration = time.Duration(ms) * time.Millisecond
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) Summary(days int) ([]FormatCount, error) {
	query := `SELECT format, COUNT(*) FROM conversions`
	var args []any
	if days > 0 {
		query += ` WHERE timestamp >= ?`
		args = append(args, DayCutoff(days).Format(time.RFC3339))
	}
	query += ` GROUP BY format ORDER BY COUNT(*) DESC, MIN(id)`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FormatCount
	for rows.Next() {
		var fc FormatCount
		if err := rows.Scan(&fc.Format, &fc.Count); err != nil {
			return nil, err
		}
		out = append(out, fc)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Clean(days int) (int, error) {
	res, err := s.db.Exec(
		`DELETE FROM conversions WHERE timestamp < ?`,
		DayCutoff(days).Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM conversions`)
	return err
}
