// Package catalog keeps a SQLite index of generated documents: one row
// per build with the artifact path, a BLAKE3 checksum, and metadata.
// The driver is the pure Go modernc.org/sqlite implementation, so the
// CLI builds with CGO disabled.
package catalog

import (
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
	_ "modernc.org/sqlite"

	"github.com/xavi-mat/simplertf/core/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id       TEXT PRIMARY KEY,
	title    TEXT NOT NULL,
	author   TEXT NOT NULL,
	path     TEXT NOT NULL,
	checksum TEXT NOT NULL,
	created  TEXT NOT NULL
);`

// Entry is one catalog row.
type Entry struct {
	ID       string    // build id (UUID)
	Title    string    // document title
	Author   string    // document author
	Path     string    // artifact path as written
	Checksum string    // BLAKE3 hash of the artifact bytes, hex
	Created  time.Time // record time, UTC
}

// Catalog is an open catalog database.
type Catalog struct {
	db *sql.DB
}

// Open opens (or creates) the catalog at path.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.NewIO("initialize", path, err)
	}
	return &Catalog{db: db}, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Checksum returns the hex BLAKE3 hash of data.
func Checksum(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Record inserts a row for a freshly written artifact and returns it.
func (c *Catalog) Record(title, author, path string, data []byte) (*Entry, error) {
	e := &Entry{
		ID:       uuid.New().String(),
		Title:    title,
		Author:   author,
		Path:     path,
		Checksum: Checksum(data),
		Created:  time.Now().UTC(),
	}

	_, err := c.db.Exec(
		`INSERT INTO documents (id, title, author, path, checksum, created) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Author, e.Path, e.Checksum, e.Created.Format(time.RFC3339),
	)
	if err != nil {
		return nil, errors.NewIO("record", path, err)
	}
	return e, nil
}

// List returns all entries, newest first.
func (c *Catalog) List() ([]Entry, error) {
	rows, err := c.db.Query(
		`SELECT id, title, author, path, checksum, created FROM documents ORDER BY created DESC, id`)
	if err != nil {
		return nil, errors.NewIO("query", "documents", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &e.Title, &e.Author, &e.Path, &e.Checksum, &created); err != nil {
			return nil, errors.NewIO("scan", "documents", err)
		}
		t, err := time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, errors.NewParse(created, "invalid created timestamp")
		}
		e.Created = t
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
