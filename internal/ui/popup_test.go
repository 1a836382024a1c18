package ui

import (
	"strings"
	"testing"

	"github.com/folioapp/folio/internal/nav"
	"github.com/folioapp/folio/internal/page"
)

type stubRegistry map[string]*page.Page

func (r stubRegistry) GetPage(id string) (*page.Page, error) {
	if p, ok := r[id]; ok {
		return p, nil
	}
	return nil, &missingErr{id}
}

func (r stubRegistry) ListPages() ([]page.Page, error) {
	var out []page.Page
	for _, p := range r {
		out = append(out, *p)
	}
	return out, nil
}

type missingErr struct{ id string }

func (e *missingErr) Error() string { return "no page " + e.id }

func TestPopupSurfaceComposeEmptyStack(t *testing.T) {
	s := NewPopupSurface(stubRegistry{})
	base := strings.Repeat(strings.Repeat(".", 80)+"\n", 23) + strings.Repeat(".", 80)
	out := s.Compose(base, nil, 80, 24, false)
	if out != base {
		t.Error("empty stack should leave the base untouched")
	}
}

func TestPopupSurfaceRendersTitle(t *testing.T) {
	reg := stubRegistry{"a": {ID: "a", Title: "Glossary", Body: "terms"}}
	s := NewPopupSurface(reg)
	base := strings.Repeat(strings.Repeat(" ", 80)+"\n", 23) + strings.Repeat(" ", 80)

	out := s.Compose(base, []nav.PopupEntry{{PageID: "a", Pos: nav.Position{X: 4, Y: 2}}}, 80, 24, true)
	if !strings.Contains(out, "Glossary") {
		t.Error("popup title should appear in the composed view")
	}
	if !strings.Contains(out, "terms") {
		t.Error("popup body should appear in the composed view")
	}
}

func TestPopupSurfaceMissingPage(t *testing.T) {
	s := NewPopupSurface(stubRegistry{})
	base := strings.Repeat(strings.Repeat(" ", 80)+"\n", 23) + strings.Repeat(" ", 80)
	out := s.Compose(base, []nav.PopupEntry{{PageID: "ghost", Pos: nav.Position{X: 0, Y: 0}}}, 80, 24, false)
	if !strings.Contains(out, "missing page") {
		t.Error("a deleted target should render a placeholder card")
	}
}

func TestPopupBodyStripsMarkup(t *testing.T) {
	body := popupBody("see [FAQ](page://abc?mode=popup)", 40, 5)
	if strings.Contains(body, "page://") {
		t.Errorf("markup should be stripped, got %q", body)
	}
	if !strings.Contains(body, "[FAQ]") {
		t.Errorf("label should survive as [FAQ], got %q", body)
	}
}

func TestPopupBodyClipsHeight(t *testing.T) {
	body := popupBody(strings.Repeat("line\n", 40), 40, 5)
	if got := len(strings.Split(body, "\n")); got > 5 {
		t.Errorf("body should clip to 5 rows, got %d", got)
	}
}
