package page

import (
	"strings"
	"testing"

	"github.com/folioapp/folio/internal/nav"
)

func TestParseLinks_SingleWithMode(t *testing.T) {
	body := "Read the [FAQ](page://4a7b1c2d-0000-1111-2222-333344445555?mode=split) first."
	refs := ParseLinks(body)
	if len(refs) != 1 {
		t.Fatalf("got %d links, want 1", len(refs))
	}
	r := refs[0]
	if r.Label != "FAQ" {
		t.Errorf("label = %q", r.Label)
	}
	if r.PageID != "4a7b1c2d-0000-1111-2222-333344445555" {
		t.Errorf("page id = %q", r.PageID)
	}
	if r.Mode != nav.ModeSplit {
		t.Errorf("mode = %v, want split", r.Mode)
	}
	if body[r.Start:r.End] != "[FAQ](page://4a7b1c2d-0000-1111-2222-333344445555?mode=split)" {
		t.Errorf("offsets select %q", body[r.Start:r.End])
	}
}

func TestParseLinks_ModeDefaultsToPopup(t *testing.T) {
	refs := ParseLinks("See [terms](page://aaaa1111-2222-3333-4444-555566667777).")
	if len(refs) != 1 {
		t.Fatalf("got %d links, want 1", len(refs))
	}
	if refs[0].Mode != nav.ModePopup {
		t.Errorf("mode = %v, want popup default", refs[0].Mode)
	}
}

func TestParseLinks_MultipleInOrder(t *testing.T) {
	body := strings.Join([]string{
		FormatLink("one", "11111111-1111-1111-1111-111111111111", nav.ModePopup),
		"middle text",
		FormatLink("two", "22222222-2222-2222-2222-222222222222", nav.ModeNewPage),
	}, "\n")

	refs := ParseLinks(body)
	if len(refs) != 2 {
		t.Fatalf("got %d links, want 2", len(refs))
	}
	if refs[0].Label != "one" || refs[1].Label != "two" {
		t.Errorf("order wrong: %q then %q", refs[0].Label, refs[1].Label)
	}
	if refs[1].Mode != nav.ModeNewPage {
		t.Errorf("second link mode = %v, want newpage", refs[1].Mode)
	}
}

func TestParseLinks_IgnoresPlainMarkdownLinks(t *testing.T) {
	refs := ParseLinks("An [external](https://example.com) link and plain text.")
	if len(refs) != 0 {
		t.Errorf("got %d links from non-page markup, want 0", len(refs))
	}
}

func TestParseLinks_Empty(t *testing.T) {
	if refs := ParseLinks(""); refs != nil {
		t.Errorf("got %v from empty body, want nil", refs)
	}
}

func TestFormatLink_RoundTrips(t *testing.T) {
	id := "99999999-8888-7777-6666-555544443333"
	body := FormatLink("Glossary", id, nav.ModeSplit)
	refs := ParseLinks(body)
	if len(refs) != 1 {
		t.Fatalf("formatted link did not parse: %q", body)
	}
	if refs[0].PageID != id || refs[0].Label != "Glossary" || refs[0].Mode != nav.ModeSplit {
		t.Errorf("round trip lost data: %+v", refs[0])
	}
}

func TestLinkRef_Link(t *testing.T) {
	r := LinkRef{Label: "Home", PageID: "abc", Mode: nav.ModeNewPage}
	l := r.Link()
	if l.PageID != "abc" || l.PageName != "Home" || l.Mode != nav.ModeNewPage {
		t.Errorf("Link() = %+v", l)
	}
}
