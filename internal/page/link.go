package page

import (
	"fmt"
	"regexp"

	"github.com/folioapp/folio/internal/nav"
)

// Hyperlinks are embedded in page bodies as markdown-style links with a
// page scheme: [label](page://<id>?mode=popup|split|newpage). The mode
// query is optional; absent or unknown modes read as popup.
var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(page://([0-9a-fA-F-]+)(?:\?mode=([a-z]+))?\)`)

// LinkRef is one hyperlink occurrence in a body, with its byte offsets so
// renderers can replace the markup in place.
type LinkRef struct {
	Label  string
	PageID string
	Mode   nav.Mode
	Start  int
	End    int
}

// ParseLinks returns every hyperlink in body, in document order.
func ParseLinks(body string) []LinkRef {
	matches := linkPattern.FindAllStringSubmatchIndex(body, -1)
	if len(matches) == 0 {
		return nil
	}

	refs := make([]LinkRef, 0, len(matches))
	for _, m := range matches {
		ref := LinkRef{
			Label:  body[m[2]:m[3]],
			PageID: body[m[4]:m[5]],
			Mode:   nav.ModePopup,
			Start:  m[0],
			End:    m[1],
		}
		if m[6] >= 0 {
			ref.Mode = nav.ParseMode(body[m[6]:m[7]])
		}
		refs = append(refs, ref)
	}
	return refs
}

// Link converts the reference into the activation the navigation core
// consumes.
func (r LinkRef) Link() nav.Link {
	return nav.Link{PageID: r.PageID, PageName: r.Label, Mode: r.Mode}
}

// FormatLink builds the body markup for a hyperlink.
func FormatLink(label, pageID string, mode nav.Mode) string {
	return fmt.Sprintf("[%s](page://%s?mode=%s)", label, pageID, mode)
}
