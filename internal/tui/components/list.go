package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bakerskart/kart/internal/search"
	"github.com/bakerskart/kart/internal/tui/styles"
)

// Row is a single entry in a List
type Row struct {
	ID      string
	Title   string
	Detail  string
	Trailer string
}

// List is a scrollable, locally filterable list of rows
type List struct {
	title  string
	rows   []Row
	view   []int // indexes into rows after filtering
	cursor int
	offset int

	width  int
	height int

	filterInput  textinput.Model
	filterTyping bool
	filterActive bool

	loading bool
	theme   styles.Theme
}

// NewList creates a list with a title
func NewList(title string, theme styles.Theme) List {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.CharLimit = 60
	ti.Prompt = "/ "
	ti.PromptStyle = theme.FormPrompt

	return List{
		title:       title,
		filterInput: ti,
		theme:       theme,
	}
}

// SetTheme swaps the list's theme
func (l *List) SetTheme(theme styles.Theme) {
	l.theme = theme
	l.filterInput.PromptStyle = theme.FormPrompt
}

// SetRows replaces the list content and resets the cursor
func (l *List) SetRows(rows []Row) {
	l.rows = rows
	l.loading = false
	l.applyFilter()
	l.cursor = 0
	l.offset = 0
}

// SetLoading marks the list as waiting for data
func (l *List) SetLoading(loading bool) {
	l.loading = loading
}

// SetSize sets the rendered dimensions
func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.filterInput.Width = width - 6
}

// SetTitle updates the list header
func (l *List) SetTitle(title string) {
	l.title = title
}

// Selected returns the row under the cursor, or nil when empty
func (l *List) Selected() *Row {
	if len(l.view) == 0 || l.cursor >= len(l.view) {
		return nil
	}
	return &l.rows[l.view[l.cursor]]
}

// Len returns the number of visible rows
func (l *List) Len() int {
	return len(l.view)
}

// IsFilterTyping reports whether the filter input owns the keyboard
func (l *List) IsFilterTyping() bool {
	return l.filterTyping
}

// IsFiltering reports whether a filter is applied
func (l *List) IsFiltering() bool {
	return l.filterActive || l.filterTyping
}

// ToggleFilter opens the filter input
func (l *List) ToggleFilter() {
	l.filterTyping = true
	l.filterInput.Focus()
}

// ClearFilter removes any active filter
func (l *List) ClearFilter() {
	l.filterTyping = false
	l.filterActive = false
	l.filterInput.SetValue("")
	l.filterInput.Blur()
	l.applyFilter()
	l.cursor = 0
	l.offset = 0
}

func (l *List) applyFilter() {
	query := strings.TrimSpace(l.filterInput.Value())
	if query == "" {
		l.view = make([]int, len(l.rows))
		for i := range l.rows {
			l.view[i] = i
		}
		return
	}
	labels := make([]string, len(l.rows))
	for i, r := range l.rows {
		labels[i] = r.Title + " " + r.Detail
	}
	matches := search.Rank(query, labels)
	l.view = make([]int, len(matches))
	for i, match := range matches {
		l.view[i] = match.Index
	}
}

// Update handles key events for cursor movement and filtering
func (l List) Update(msg tea.Msg) (List, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	if l.filterTyping {
		switch keyMsg.String() {
		case "enter":
			l.filterTyping = false
			l.filterActive = l.filterInput.Value() != ""
			l.filterInput.Blur()
			return l, nil
		case "esc":
			l.ClearFilter()
			return l, nil
		}
		var cmd tea.Cmd
		l.filterInput, cmd = l.filterInput.Update(msg)
		l.applyFilter()
		if l.cursor >= len(l.view) {
			l.cursor = 0
			l.offset = 0
		}
		return l, cmd
	}

	switch keyMsg.String() {
	case "j", "down":
		if l.cursor < len(l.view)-1 {
			l.cursor++
		}
	case "k", "up":
		if l.cursor > 0 {
			l.cursor--
		}
	case "g", "home":
		l.cursor = 0
	case "G", "end":
		if len(l.view) > 0 {
			l.cursor = len(l.view) - 1
		}
	case "ctrl+d":
		l.cursor += l.pageSize() / 2
		if l.cursor >= len(l.view) {
			l.cursor = len(l.view) - 1
		}
		if l.cursor < 0 {
			l.cursor = 0
		}
	case "ctrl+u":
		l.cursor -= l.pageSize() / 2
		if l.cursor < 0 {
			l.cursor = 0
		}
	}
	l.scrollToCursor()
	return l, nil
}

func (l *List) pageSize() int {
	h := l.height - 3 // header + filter line + padding
	if h < 1 {
		return 1
	}
	return h
}

func (l *List) scrollToCursor() {
	page := l.pageSize()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+page {
		l.offset = l.cursor - page + 1
	}
}

// View renders the list
func (l List) View() string {
	var b strings.Builder

	b.WriteString(l.theme.Title.Render(l.title))
	if l.filterActive || l.filterTyping {
		b.WriteString("  ")
		b.WriteString(l.filterInput.View())
	}
	b.WriteString("\n")

	if l.loading {
		b.WriteString(l.theme.Dim.Render("Loading..."))
		return lipgloss.NewStyle().Width(l.width).Render(b.String())
	}

	if len(l.view) == 0 {
		b.WriteString(l.theme.Dim.Render("Nothing here"))
		return lipgloss.NewStyle().Width(l.width).Render(b.String())
	}

	page := l.pageSize()
	end := l.offset + page
	if end > len(l.view) {
		end = len(l.view)
	}

	innerWidth := l.width - 4
	for i := l.offset; i < end; i++ {
		row := l.rows[l.view[i]]
		line := styles.Pad(styles.Truncate(row.Title, innerWidth*2/3), innerWidth*2/3)
		if row.Trailer != "" {
			line += " " + row.Trailer
		}
		if row.Detail != "" {
			line += "  " + l.theme.Dim.Render(styles.Truncate(row.Detail, innerWidth/3))
		}
		if i == l.cursor {
			b.WriteString(l.theme.SelectedItem.Render(line))
		} else {
			b.WriteString(l.theme.NormalItem.Render(line))
		}
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(l.width).Render(b.String())
}
