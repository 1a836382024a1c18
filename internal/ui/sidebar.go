package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	"github.com/folioapp/folio/internal/page"
)

// pageSource adapts a page slice for fuzzy matching over titles.
type pageSource []page.Page

func (s pageSource) String(i int) string { return s[i].Title }
func (s pageSource) Len() int            { return len(s) }

// Sidebar lists pages in user order with incremental fuzzy filtering.
type Sidebar struct {
	width  int
	height int

	pages     []page.Page
	filtered  []int
	cursor    int
	search    textinput.Model
	searching bool
}

func NewSidebar() *Sidebar {
	ti := textinput.New()
	ti.Placeholder = "search pages"
	ti.CharLimit = 64
	return &Sidebar{search: ti}
}

func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.search.SetWidth(width - 4)
}

// SetPages replaces the list, keeping the cursor on the same page when
// it survives the update.
func (s *Sidebar) SetPages(pages []page.Page) {
	selectedID := ""
	if p, ok := s.Selected(); ok {
		selectedID = p.ID
	}
	s.pages = pages
	s.refilter()
	if selectedID != "" {
		s.SelectID(selectedID)
	}
}

func (s *Sidebar) MoveCursor(delta int) {
	if len(s.filtered) == 0 {
		return
	}
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= len(s.filtered) {
		s.cursor = len(s.filtered) - 1
	}
}

// Selected returns the page under the cursor.
func (s *Sidebar) Selected() (page.Page, bool) {
	if s.cursor < 0 || s.cursor >= len(s.filtered) {
		return page.Page{}, false
	}
	return s.pages[s.filtered[s.cursor]], true
}

// SelectID moves the cursor to the page with the given id if visible.
func (s *Sidebar) SelectID(id string) {
	for i, idx := range s.filtered {
		if s.pages[idx].ID == id {
			s.cursor = i
			return
		}
	}
}

func (s *Sidebar) StartSearch() {
	s.searching = true
	s.search.SetValue("")
	s.search.Focus()
	s.refilter()
}

func (s *Sidebar) EndSearch() {
	s.searching = false
	s.search.Blur()
	s.search.SetValue("")
	s.refilter()
}

func (s *Sidebar) Searching() bool {
	return s.searching
}

// Update feeds key input to the search field and refilters.
func (s *Sidebar) Update(msg tea.Msg) tea.Cmd {
	if !s.searching {
		return nil
	}
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.refilter()
	return cmd
}

func (s *Sidebar) refilter() {
	query := s.search.Value()
	if query == "" {
		s.filtered = make([]int, len(s.pages))
		for i := range s.pages {
			s.filtered[i] = i
		}
	} else {
		matches := fuzzy.FindFrom(query, pageSource(s.pages))
		s.filtered = make([]int, len(matches))
		for i, m := range matches {
			s.filtered[i] = m.Index
		}
	}
	if s.cursor >= len(s.filtered) {
		s.cursor = len(s.filtered) - 1
	}
	if s.cursor < 0 && len(s.filtered) > 0 {
		s.cursor = 0
	}
}

func (s *Sidebar) View(focused bool) string {
	if s.width <= 2 || s.height <= 2 {
		return ""
	}
	innerWidth := s.width - 2
	innerHeight := s.height - 2

	style := PanelStyle
	if focused {
		style = PanelFocusedStyle
	}

	var b strings.Builder
	b.WriteString(PanelTitleStyle.Render("Pages"))
	rowsUsed := 1
	if s.searching {
		b.WriteString("\n")
		b.WriteString(ansi.Truncate(s.search.View(), innerWidth, ""))
		rowsUsed++
	}

	visible := innerHeight - rowsUsed
	start := 0
	if s.cursor >= visible {
		start = s.cursor - visible + 1
	}
	for i := start; i < len(s.filtered) && i < start+visible; i++ {
		p := s.pages[s.filtered[i]]
		label := truncateTitle(p.Title, innerWidth-2)
		b.WriteString("\n")
		if i == s.cursor {
			b.WriteString(SidebarSelectedStyle.Render(label))
		} else {
			b.WriteString(SidebarItemStyle.Render(label))
		}
	}
	if len(s.filtered) == 0 {
		b.WriteString("\n")
		b.WriteString(PlaceholderStyle.Render(" no matches"))
	}
	return style.Width(innerWidth).Height(innerHeight).Render(b.String())
}
