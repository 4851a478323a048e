package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bakerskart/kart/internal/domain"
	"github.com/bakerskart/kart/internal/format"
	"github.com/bakerskart/kart/internal/tui/components"
	"github.com/bakerskart/kart/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var body string
	switch {
	case m.confirmKind != "":
		body = m.renderConfirm()
	case m.kind != formNone:
		body = m.form.View()
	case m.route == RouteHelp:
		body = m.renderHelp()
	case m.route == RouteProductDetail:
		body = m.renderProductDetail()
	case m.route == RouteOrderDetail:
		body = m.renderOrderDetail()
	default:
		body = m.renderListScreen()
	}

	content := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - ChromeHeight).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderFooter())
}

func (m Model) renderListScreen() string {
	var b strings.Builder
	if m.searching {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}
	b.WriteString(m.list.View())

	if meta, ok := m.paginated(); ok && meta.PageCount > 1 {
		b.WriteString("\n")
		b.WriteString(m.theme.Dim.Render(
			"page " + strconv.Itoa(meta.Page) + "/" + strconv.Itoa(meta.PageCount) + "  [ prev · ] next"))
	}
	return b.String()
}

func (m Model) renderProductDetail() string {
	p := m.product
	if p.ID == "" {
		return m.theme.Dim.Render("Loading...")
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(p.Company))
	b.WriteString("\n\n")

	if p.SellingPrice > 0 && p.SellingPrice < p.Price {
		b.WriteString(m.theme.Accent.Render(format.Price(p.SellingPrice)))
		b.WriteString("  ")
		b.WriteString(m.theme.Dim.Strikethrough(true).Render(format.Price(p.Price)))
	} else {
		b.WriteString(m.theme.Accent.Render(format.Price(p.UnitPrice())))
	}
	b.WriteString("\n\n")

	if p.Category != "" {
		b.WriteString(m.theme.DimBadge.Render(p.Category))
		b.WriteString("\n\n")
	}
	if p.Description != "" {
		b.WriteString(lipgloss.NewStyle().Width(m.width - 4).Render(p.Description))
		b.WriteString("\n\n")
	}

	b.WriteString(m.theme.Dim.Render("qty "))
	for _, q := range format.Amounts(detailQtyMax) {
		label := itoa(q)
		if q == m.qty {
			b.WriteString(m.theme.Accent.Render("[" + label + "]"))
		} else {
			b.WriteString(m.theme.Dim.Render(" " + label + " "))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.Dim.Render("a: add to cart · +/-: quantity · h: back"))
	return b.String()
}

func (m Model) renderOrderDetail() string {
	o := m.order
	if o.ID == "" {
		return m.theme.Dim.Render("Loading...")
	}

	var b strings.Builder
	title := "Order"
	if o.OrderID != "" {
		title = "Order " + o.OrderID
	}
	b.WriteString(m.theme.Title.Render(title))
	if o.Status != "" {
		b.WriteString("  ")
		b.WriteString(m.theme.Badge.Render(o.Status))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(o.Name + " · " + o.Address + ", " + o.City + ", " + o.State))
	b.WriteString("\n\n")

	for _, l := range o.Lines {
		line := styles.Pad(styles.Truncate(l.Name, 40), 40) +
			"  ×" + strconv.Itoa(l.Amount) +
			"  " + format.Price(l.Price*float64(l.Amount))
		b.WriteString(m.theme.NormalItem.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Title.Render("Total  " + format.Price(o.Total)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Dim.Render("i: download invoice · h: back"))
	return b.String()
}

func (m Model) renderConfirm() string {
	prompt := "Delete this " + m.confirmKind + "? (y/n)"
	return lipgloss.Place(m.width, m.height-ChromeHeight,
		lipgloss.Center, lipgloss.Center,
		m.theme.ActiveBorder.Padding(1, 3).Render(
			m.theme.Title.Render(prompt)))
}

func (m Model) renderHelp() string {
	rows := [][2]string{
		{"H", "home"},
		{"p", "products"},
		{"f", "search catalog"},
		{"/", "filter list"},
		{"c", "cart"},
		{"a", "add to cart"},
		{"+/-", "change quantity"},
		{"x", "remove from cart"},
		{"C", "checkout"},
		{"o", "orders"},
		{"i", "download invoice (order)"},
		{"L", "login"},
		{"R", "register"},
		{"A", "admin area"},
		{"1-5", "admin tabs"},
		{"n/e/D", "new / edit / delete (admin)"},
		{"[ ]", "prev / next page"},
		{"t", "toggle theme"},
		{"Q", "logout"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Key Bindings"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString("  ")
		b.WriteString(m.theme.HelpKey.Render(styles.Pad(r[0], 7)))
		b.WriteString(m.theme.HelpDesc.Render(r[1]))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFooter() string {
	sess := m.Creds.Get()

	var left string
	if m.statusMsg != "" {
		if m.statusIsErr {
			left = m.theme.Error.Render(m.statusMsg)
		} else {
			left = m.theme.Success.Render(m.statusMsg)
		}
	} else {
		left = m.theme.Dim.Render(m.route.String() + " · ? for help")
	}

	var parts []string
	count := m.Ledger.Snapshot().ItemCount()
	parts = append(parts, m.theme.Accent.Render("cart "+strconv.Itoa(count)))
	if sess.User != nil {
		parts = append(parts, m.theme.Subtitle.Render(sess.User.User.Username))
	} else {
		parts = append(parts, m.theme.Dim.Render("guest"))
	}
	if sess.Admin != nil {
		parts = append(parts, m.theme.Badge.Render("admin:"+string(sess.Admin.Admin.Role)))
	}
	parts = append(parts, m.theme.Dim.Render(m.theme.Palette.Name))
	right := strings.Join(parts, m.theme.Dim.Render(" · "))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return "\n" + left + strings.Repeat(" ", gap) + right
}

// Row builders

func productRows(products []domain.Product) []components.Row {
	rows := make([]components.Row, len(products))
	for i, p := range products {
		rows[i] = components.Row{
			ID:      p.ID,
			Title:   p.Title,
			Detail:  p.Company,
			Trailer: format.Price(p.UnitPrice()),
		}
	}
	return rows
}

func orderRows(orders []domain.Order) []components.Row {
	rows := make([]components.Row, len(orders))
	for i, o := range orders {
		title := o.OrderID
		if title == "" {
			title = o.ID
		}
		detail := o.Status
		if o.CreatedAt != "" {
			if detail != "" {
				detail += " · "
			}
			detail += o.CreatedAt
		}
		rows[i] = components.Row{
			ID:      o.ID,
			Title:   title,
			Detail:  detail,
			Trailer: format.Price(o.Total) + "  ×" + strconv.Itoa(o.ItemCount),
		}
	}
	return rows
}

func listTitle(base string, meta domain.Pagination, admin bool) string {
	if admin {
		base = "Admin · " + base
	}
	if meta.Total > 0 {
		base += " (" + strconv.Itoa(meta.Total) + ")"
	}
	return base
}

func trimZero(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func trimZeroInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
