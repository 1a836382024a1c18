package page

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/folioapp/folio/internal/errors"
	"github.com/folioapp/folio/internal/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS pages (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	body       TEXT NOT NULL DEFAULT '',
	position   INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_pages_position ON pages(position, created_at);
`

// Store is the SQLite-backed page collection. It implements Registry and
// adds the CRUD side used by the editing surfaces.
type Store struct {
	db *sql.DB
}

// DefaultDBPath returns the default database location, ~/.folio/folio.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".folio", "folio.db"), nil
}

// Open opens (creating if necessary) the page database at path. Pass
// ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, errors.StoreOpenFailed(path, err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.StoreOpenFailed(path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.StoreOpenFailed(path, err)
	}

	logger.WithComponent("page").Info("store opened", "path", path)
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create inserts a new page with the given title at the end of the list
// and returns it.
func (s *Store) Create(title string) (*Page, error) {
	now := time.Now().UTC()
	p := &Page{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var maxPos sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(position) FROM pages`).Scan(&maxPos); err != nil {
		return nil, errors.StoreQueryFailed("page.Create", err)
	}
	if maxPos.Valid {
		p.Position = int(maxPos.Int64) + 1
	}

	_, err := s.db.Exec(
		`INSERT INTO pages(id, title, body, position, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Body, p.Position, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return nil, errors.StoreQueryFailed("page.Create", err)
	}
	return p, nil
}

// GetPage returns the page with the given id, or a not-found error.
func (s *Store) GetPage(id string) (*Page, error) {
	var p Page
	err := s.db.QueryRow(
		`SELECT id, title, body, position, created_at, updated_at FROM pages WHERE id = ?`, id,
	).Scan(&p.ID, &p.Title, &p.Body, &p.Position, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.PageNotFound(id)
	}
	if err != nil {
		return nil, errors.StoreQueryFailed("page.Get", err)
	}
	return &p, nil
}

// ListPages returns every page in registry order.
func (s *Store) ListPages() ([]Page, error) {
	rows, err := s.db.Query(
		`SELECT id, title, body, position, created_at, updated_at FROM pages ORDER BY position, created_at`,
	)
	if err != nil {
		return nil, errors.StoreQueryFailed("page.List", err)
	}
	defer rows.Close()

	var pages []Page
	for rows.Next() {
		var p Page
		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &p.Position, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, errors.StoreQueryFailed("page.List", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// Rename updates a page's title. Returns a not-found error for unknown
// ids.
func (s *Store) Rename(id, title string) error {
	return s.update(id, `UPDATE pages SET title = ?, updated_at = ? WHERE id = ?`, title)
}

// UpdateBody replaces a page's body. Returns a not-found error for
// unknown ids.
func (s *Store) UpdateBody(id, body string) error {
	return s.update(id, `UPDATE pages SET body = ?, updated_at = ? WHERE id = ?`, body)
}

func (s *Store) update(id, query, value string) error {
	res, err := s.db.Exec(query, value, time.Now().UTC(), id)
	if err != nil {
		return errors.StoreQueryFailed("page.Update", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.StoreQueryFailed("page.Update", err)
	}
	if n == 0 {
		return errors.PageNotFound(id)
	}
	return nil
}

// Delete removes a page. Returns a not-found error for unknown ids.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM pages WHERE id = ?`, id)
	if err != nil {
		return errors.StoreQueryFailed("page.Delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.StoreQueryFailed("page.Delete", err)
	}
	if n == 0 {
		return errors.PageNotFound(id)
	}
	return nil
}

// MovePage sets a page's position in the registry order.
func (s *Store) MovePage(id string, position int) error {
	res, err := s.db.Exec(`UPDATE pages SET position = ?, updated_at = ? WHERE id = ?`,
		position, time.Now().UTC(), id)
	if err != nil {
		return errors.StoreQueryFailed("page.Move", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.StoreQueryFailed("page.Move", err)
	}
	if n == 0 {
		return errors.PageNotFound(id)
	}
	return nil
}

// Count returns the number of pages in the store.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM pages`).Scan(&n); err != nil {
		return 0, errors.StoreQueryFailed("page.Count", err)
	}
	return n, nil
}
