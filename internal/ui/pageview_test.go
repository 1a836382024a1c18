package ui

import (
	"strings"
	"testing"

	"github.com/folioapp/folio/internal/page"
)

func testPage(body string) *page.Page {
	return &page.Page{ID: "p1", Title: "Test Page", Body: body}
}

func TestPageViewSetPageParsesLinks(t *testing.T) {
	v := NewPageView()
	v.SetPage(testPage("See [FAQ](page://aaa?mode=popup) and [Terms](page://bbb?mode=split)."))

	if len(v.Links()) != 2 {
		t.Fatalf("expected 2 links, got %d", len(v.Links()))
	}
	link, ok := v.FocusedLink()
	if !ok {
		t.Fatal("first link should be focused after SetPage")
	}
	if link.PageID != "aaa" {
		t.Errorf("focused link = %q, want aaa", link.PageID)
	}
}

func TestPageViewCycleLinkWraps(t *testing.T) {
	v := NewPageView()
	v.SetPage(testPage("[A](page://aaa) [B](page://bbb) [C](page://ccc)"))

	v.CycleLink(1)
	v.CycleLink(1)
	if link, _ := v.FocusedLink(); link.PageID != "ccc" {
		t.Errorf("after two forward cycles, focused = %q, want ccc", link.PageID)
	}
	v.CycleLink(1)
	if link, _ := v.FocusedLink(); link.PageID != "aaa" {
		t.Errorf("cycle should wrap to first link, got %q", link.PageID)
	}
	v.CycleLink(-1)
	if link, _ := v.FocusedLink(); link.PageID != "ccc" {
		t.Errorf("backward cycle should wrap to last link, got %q", link.PageID)
	}
}

func TestPageViewCycleLinkNoLinks(t *testing.T) {
	v := NewPageView()
	v.SetPage(testPage("plain text only"))
	v.CycleLink(1)
	if _, ok := v.FocusedLink(); ok {
		t.Error("page without links should never report a focused link")
	}
}

func TestPageViewMissingPlaceholder(t *testing.T) {
	v := NewPageView()
	v.SetSize(60, 20)
	v.SetMissing("dead-id")

	out := v.View(false)
	if !strings.Contains(out, "dead-id") {
		t.Errorf("missing-page view should mention the page id:\n%s", out)
	}
	if v.PageID() != "dead-id" {
		t.Errorf("PageID() = %q, want dead-id", v.PageID())
	}
}

func TestPageViewRendersLinkLabels(t *testing.T) {
	v := NewPageView()
	v.SetSize(60, 20)
	v.SetPage(testPage("Go to [the FAQ](page://aaa?mode=popup) now."))

	out := v.View(true)
	if !strings.Contains(out, "[the FAQ]") {
		t.Errorf("link label should render bracketed:\n%s", out)
	}
	if strings.Contains(out, "page://") {
		t.Errorf("raw link markup must not leak into the render:\n%s", out)
	}
}

func TestPageViewCodeBlockStripsFence(t *testing.T) {
	v := NewPageView()
	v.SetSize(60, 20)
	v.SetPage(testPage("intro\n```go\nfmt.Println(1)\n```\noutro"))

	out := v.View(false)
	if strings.Contains(out, "```") {
		t.Errorf("fence markers should not render:\n%s", out)
	}
	if !strings.Contains(out, "intro") || !strings.Contains(out, "outro") {
		t.Errorf("text around the code block should survive:\n%s", out)
	}
}

func TestPageViewScrollClamped(t *testing.T) {
	v := NewPageView()
	v.SetSize(40, 8)
	v.SetPage(testPage(strings.Repeat("line\n", 50)))

	v.ScrollBy(-10)
	if v.scroll != 0 {
		t.Errorf("scroll should clamp at 0, got %d", v.scroll)
	}
	v.ScrollBy(1000)
	v.View(false) // View clamps to content length
	if v.scroll >= 50 {
		t.Errorf("scroll should clamp to content, got %d", v.scroll)
	}
}

func TestHardWrap(t *testing.T) {
	rows := hardWrap("abcdefghij", 4)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %v", len(rows), rows)
	}
	if rows[0] != "abcd" || rows[1] != "efgh" || rows[2] != "ij" {
		t.Errorf("rows = %v", rows)
	}
}

func TestHardWrapWideRunes(t *testing.T) {
	rows := hardWrap("日本語テキスト", 4)
	for _, row := range rows {
		if w := len([]rune(row)); w > 2 {
			t.Errorf("row %q exceeds 2 double-width runes", row)
		}
	}
}

func TestTruncateTitle(t *testing.T) {
	if got := truncateTitle("short", 10); got != "short" {
		t.Errorf("short titles should pass through, got %q", got)
	}
	got := truncateTitle("a very long page title", 10)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("long titles should end with ellipsis, got %q", got)
	}
}
