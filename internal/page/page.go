// Package page defines the page model, the registry contract surfaces
// read pages through, and the SQLite-backed store that implements it.
package page

import "time"

// Page is one document page. The navigation core never sees a Page; it
// tracks ids only, and surfaces look pages up at render time.
type Page struct {
	ID        string
	Title     string
	Body      string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Registry is the read side of the page collection. GetPage returns a
// not-found error for unknown ids; callers handle that at render time
// (typically with a placeholder page). ListPages returns pages in
// registry order: explicit position, then creation time.
type Registry interface {
	GetPage(id string) (*Page, error)
	ListPages() ([]Page, error)
}
