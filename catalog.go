package uotex

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// CatalogEntry describes a single extracted image
type CatalogEntry struct {
	Entry int
	File  string
	Size  int64
	SHA1  string
}

// Catalog is a SQLite database of extracted images
type Catalog struct {
	db *sql.DB
}

// NewCatalog opens, or creates, the catalog at file
func NewCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS texture (entry INTEGER PRIMARY KEY NOT NULL, file TEXT NOT NULL, size INTEGER NOT NULL, sha1 TEXT NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

// Close closes the database
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Add records e, replacing any previous image for the same entry
func (c *Catalog) Add(e CatalogEntry) error {
	if _, err := c.db.Exec("INSERT OR REPLACE INTO texture (entry, file, size, sha1) VALUES (?, ?, ?, ?)", e.Entry, e.File, e.Size, e.SHA1); err != nil {
		return err
	}
	return nil
}

// Find returns the image recorded for entry, or nil
func (c *Catalog) Find(entry int) (*CatalogEntry, error) {
	e := CatalogEntry{Entry: entry}
	switch err := c.db.QueryRow("SELECT file, size, sha1 FROM texture WHERE entry = ?", entry).Scan(&e.File, &e.Size, &e.SHA1); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return &e, nil
	default:
		return nil, err
	}
}

// List returns every recorded image in entry order
func (c *Catalog) List() ([]CatalogEntry, error) {
	rows, err := c.db.Query("SELECT entry, file, size, sha1 FROM texture ORDER BY entry")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []CatalogEntry
	for rows.Next() {
		var e CatalogEntry
		if err := rows.Scan(&e.Entry, &e.File, &e.Size, &e.SHA1); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Duplicates returns groups of entries whose images are byte-identical
func (c *Catalog) Duplicates() ([][]int, error) {
	rows, err := c.db.Query("SELECT sha1, entry FROM texture WHERE sha1 IN (SELECT sha1 FROM texture GROUP BY sha1 HAVING COUNT(*) > 1) ORDER BY sha1, entry")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		groups [][]int
		last   string
	)
	for rows.Next() {
		var (
			sha   string
			entry int
		)
		if err := rows.Scan(&sha, &entry); err != nil {
			return nil, err
		}
		if sha != last || len(groups) == 0 {
			groups = append(groups, nil)
			last = sha
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], entry)
	}

	return groups, rows.Err()
}
