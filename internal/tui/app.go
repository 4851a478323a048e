package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bakerskart/kart/internal/api"
	"github.com/bakerskart/kart/internal/cart"
	"github.com/bakerskart/kart/internal/domain"
	"github.com/bakerskart/kart/internal/format"
	"github.com/bakerskart/kart/internal/service"
	"github.com/bakerskart/kart/internal/session"
	"github.com/bakerskart/kart/internal/tui/components"
	"github.com/bakerskart/kart/internal/tui/styles"
)

// formKind identifies which form is on screen
type formKind int

const (
	formNone formKind = iota
	formLogin
	formRegister
	formAdminLogin
	formAdminRegister
	formCheckout
	formOTP
	formReset
	formProduct
	formCategory
	formUser
	formAdmin
)

// ChromeHeight is the footer line
const ChromeHeight = 2

// detailQtyMax caps the quantity picker on the product detail screen
const detailQtyMax = 10

// Model is the main Bubble Tea model for the application
type Model struct {
	// Services
	Account *service.AccountService
	Catalog *service.CatalogService
	Orders  *service.OrderService
	Admin   *service.AdminService

	Creds  *session.Store
	Ledger *cart.Ledger

	PageSize int

	// Navigation. seq increments on every navigation; async loader
	// results carry the seq they were fired with and are dropped when
	// it no longer matches.
	route Route
	seq   int64
	back  []Route

	// Route parameters
	productID string
	qty       int // quantity picker on the product detail screen
	orderID   string
	editID    string

	// UI components
	theme styles.Theme
	list  components.List
	form  components.Form
	kind  formKind

	searchInput textinput.Model
	searching   bool

	// Pending delete confirmation
	confirmKind string
	confirmID   string

	// Data
	featured []domain.Product
	products service.ProductPage
	product  domain.Product
	orders   service.OrderPage
	order    domain.Order
	users    service.UserPage
	admins   service.AdminPage
	cats     service.CategoryPage
	page     int

	// Dimensions
	width  int
	height int
	ready  bool

	// UI state
	statusMsg    string
	statusIsErr  bool
	loading      bool
	spinnerFrame int
}

// NewModel creates the application model
func NewModel(
	account *service.AccountService,
	catalog *service.CatalogService,
	orders *service.OrderService,
	admin *service.AdminService,
	creds *session.Store,
	ledger *cart.Ledger,
	pageSize int,
) Model {
	theme := styles.ForName(string(creds.Theme()))

	si := textinput.New()
	si.Placeholder = "search the catalog..."
	si.CharLimit = 60
	si.Prompt = "? "
	si.PromptStyle = theme.FormPrompt

	return Model{
		Account:     account,
		Catalog:     catalog,
		Orders:      orders,
		Admin:       admin,
		Creds:       creds,
		Ledger:      ledger,
		PageSize:    pageSize,
		theme:       theme,
		list:        components.NewList("BakersKart", theme),
		searchInput: si,
		route:       RouteLanding,
		page:        1,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	cmd := m.loaderFor(RouteLanding, m.seq)
	return tea.Batch(cmd, TickCmd(100*time.Millisecond))
}

// navigate runs the access check and, when admitted, fires the route's
// loader under a fresh sequence. A denied route never loads: only the
// redirect target's screen is prepared.
func (m *Model) navigate(route Route) tea.Cmd {
	d := CheckAccess(route, m.Creds.Get())
	m.statusMsg = ""
	m.statusIsErr = false
	var warnCmd tea.Cmd
	if d.Redirect {
		m.statusMsg = d.Warning
		m.statusIsErr = true
		warnCmd = ClearStatusCmd(4 * time.Second)
		route = d.Route
	}

	if route != m.route {
		m.back = append(m.back, m.route)
	}
	m.route = route
	m.seq++
	m.page = 1
	m.searching = false
	m.confirmKind = ""
	m.prepareScreen(route)

	loader := m.loaderFor(route, m.seq)
	if warnCmd != nil {
		return tea.Batch(loader, warnCmd)
	}
	return loader
}

// reload refetches the current route's data without touching history
func (m *Model) reload() tea.Cmd {
	m.seq++
	m.prepareScreen(m.route)
	return m.loaderFor(m.route, m.seq)
}

// goBack pops the navigation history
func (m *Model) goBack() tea.Cmd {
	if len(m.back) == 0 {
		return nil
	}
	route := m.back[len(m.back)-1]
	m.back = m.back[:len(m.back)-1]
	m.route = route
	m.seq++
	m.page = 1
	m.searching = false
	m.confirmKind = ""
	m.prepareScreen(route)
	return m.loaderFor(route, m.seq)
}

// prepareScreen resets the per-route UI (list titles, forms) before data
// arrives
func (m *Model) prepareScreen(route Route) {
	m.kind = formNone
	switch route {
	case RouteLanding:
		m.list = components.NewList("Featured Products", m.theme)
		m.list.SetLoading(true)
	case RouteProducts:
		m.list = components.NewList("Products", m.theme)
		m.list.SetLoading(true)
	case RouteOrders:
		m.list = components.NewList("Your Orders", m.theme)
		m.list.SetLoading(true)
	case RouteAdminProducts:
		m.list = components.NewList("Admin · Products", m.theme)
		m.list.SetLoading(true)
	case RouteAdminCategories:
		m.list = components.NewList("Admin · Categories", m.theme)
		m.list.SetLoading(true)
	case RouteAdminOrders:
		m.list = components.NewList("Admin · Orders", m.theme)
		m.list.SetLoading(true)
	case RouteAdminUsers:
		m.list = components.NewList("Admin · Users", m.theme)
		m.list.SetLoading(true)
	case RouteAdminAdmins:
		m.list = components.NewList("Admin · Admins", m.theme)
		m.list.SetLoading(true)
	case RouteProductDetail:
		m.product = domain.Product{}
		m.qty = 1
	case RouteOrderDetail:
		m.order = domain.Order{}
	case RouteCart:
		m.list = components.NewList("Shopping Cart", m.theme)
		m.refreshCartRows()
	case RouteLogin:
		m.kind = formLogin
		m.form = components.NewForm("Sign In", m.theme,
			components.Field{Label: "Email or username", Placeholder: "you@example.in"},
			components.Field{Label: "Password", Secret: true},
		)
	case RouteRegister:
		m.kind = formRegister
		m.form = components.NewForm("Create Account", m.theme,
			components.Field{Label: "Username"},
			components.Field{Label: "Email", Placeholder: "you@example.in"},
			components.Field{Label: "Mobile"},
			components.Field{Label: "Password", Secret: true},
		)
	case RouteAdminLogin:
		m.kind = formAdminLogin
		m.form = components.NewForm("Admin Sign In", m.theme,
			components.Field{Label: "Email or username"},
			components.Field{Label: "Password", Secret: true},
		)
	case RouteAdminRegister:
		m.kind = formAdminRegister
		m.form = components.NewForm("Register Admin", m.theme,
			components.Field{Label: "Username"},
			components.Field{Label: "Email"},
			components.Field{Label: "Mobile"},
			components.Field{Label: "Password", Secret: true},
		)
	case RouteCheckout:
		user := domain.User{}
		if sess := m.Creds.Get(); sess.User != nil {
			user = sess.User.User
		}
		m.kind = formCheckout
		m.form = components.NewForm("Checkout · Shipping", m.theme,
			components.Field{Label: "Name", Value: user.Username},
			components.Field{Label: "Address", Value: user.Address},
			components.Field{Label: "City", Value: user.City},
			components.Field{Label: "State", Value: user.State},
			components.Field{Label: "Company", Value: user.Company},
		)
	}
	m.sizeComponents()
}

// loaderFor returns the async load for a route, nil for static screens
func (m *Model) loaderFor(route Route, seq int64) tea.Cmd {
	q := api.ListQuery{Page: m.page, Limit: m.PageSize}
	switch route {
	case RouteLanding:
		return LoadFeaturedCmd(m.Catalog, seq)
	case RouteProducts, RouteAdminProducts:
		return LoadProductsCmd(m.Catalog, q, seq)
	case RouteProductDetail:
		return LoadProductCmd(m.Catalog, m.productID, seq)
	case RouteOrders:
		return LoadOrdersCmd(m.Orders, q, seq)
	case RouteOrderDetail:
		return LoadOrderCmd(m.Orders, m.orderID, seq)
	case RouteAdminCategories:
		return LoadCategoriesCmd(m.Catalog, q, seq)
	case RouteAdminOrders:
		return LoadAdminOrdersCmd(m.Admin, q, seq)
	case RouteAdminUsers:
		return LoadUsersCmd(m.Admin, q, seq)
	case RouteAdminAdmins:
		return LoadAdminsCmd(m.Admin, q, seq)
	}
	return nil
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.sizeComponents()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.spinnerFrame++
		return m, TickCmd(100 * time.Millisecond)

	case FeaturedLoadedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.featured = msg.Products
		m.list.SetRows(productRows(msg.Products))
		return m, nil

	case ProductsLoadedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.products = msg.Page
		m.list.SetRows(productRows(msg.Page.Products))
		m.list.SetTitle(listTitle("Products", msg.Page.Meta, m.route == RouteAdminProducts))
		return m, nil

	case ProductLoadedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.product = msg.Product
		return m, nil

	case CategoriesLoadedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.cats = msg.Page
		rows := make([]components.Row, len(msg.Page.Categories))
		for i, c := range msg.Page.Categories {
			rows[i] = components.Row{ID: c.ID, Title: c.Name}
		}
		m.list.SetRows(rows)
		return m, nil

	case SearchResultsMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.products = service.ProductPage{Products: msg.Products}
		m.list.SetRows(productRows(msg.Products))
		m.list.SetTitle("Search: " + msg.Query)
		return m, nil

	case OrdersLoadedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.orders = msg.Page
		m.list.SetRows(orderRows(msg.Page.Orders))
		return m, nil

	case OrderLoadedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.order = msg.Order
		return m, nil

	case UsersLoadedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.users = msg.Page
		rows := make([]components.Row, len(msg.Page.Users))
		for i, u := range msg.Page.Users {
			rows[i] = components.Row{ID: u.ID, Title: u.Username, Detail: u.Email}
		}
		m.list.SetRows(rows)
		return m, nil

	case AdminsLoadedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.admins = msg.Page
		rows := make([]components.Row, len(msg.Page.Admins))
		for i, a := range msg.Page.Admins {
			rows[i] = components.Row{ID: a.ID, Title: a.Username, Detail: a.Email, Trailer: string(a.Role)}
		}
		m.list.SetRows(rows)
		return m, nil

	case UserAuthMsg:
		cmd := m.navigate(RouteLanding)
		m.statusMsg = "Welcome back, " + msg.Username
		m.statusIsErr = false
		return m, tea.Batch(cmd, ClearStatusCmd(3*time.Second))

	case AdminAuthMsg:
		cmd := m.navigate(RouteAdminProducts)
		m.statusMsg = "Admin session started"
		m.statusIsErr = false
		return m, tea.Batch(cmd, ClearStatusCmd(3*time.Second))

	case CheckoutDoneMsg:
		cmd := m.navigate(RouteOrders)
		m.statusMsg = "Order placed"
		m.statusIsErr = false
		return m, tea.Batch(cmd, ClearStatusCmd(3*time.Second))

	case InvoiceSavedMsg:
		m.statusMsg = "Invoice saved to " + msg.Path
		m.statusIsErr = false
		return m, ClearStatusCmd(5 * time.Second)

	case OTPSentMsg:
		m.kind = formReset
		m.form = components.NewForm("Reset Password", m.theme,
			components.Field{Label: "Email or username", Value: msg.Identifier},
			components.Field{Label: "OTP"},
			components.Field{Label: "New password", Secret: true},
		)
		m.form.SetSize(m.width)
		m.statusMsg = "OTP sent, check your inbox"
		m.statusIsErr = false
		return m, ClearStatusCmd(5 * time.Second)

	case PasswordResetMsg:
		cmd := m.navigate(RouteLogin)
		m.statusMsg = "Password updated, sign in again"
		m.statusIsErr = false
		return m, tea.Batch(cmd, ClearStatusCmd(5*time.Second))

	case EntitySavedMsg:
		m.statusMsg = "Saved " + msg.Kind
		m.statusIsErr = false
		return m, tea.Batch(m.goBack(), ClearStatusCmd(3*time.Second))

	case EntityDeletedMsg:
		m.statusMsg = "Deleted " + msg.Kind
		m.statusIsErr = false
		return m, tea.Batch(m.reload(), ClearStatusCmd(3*time.Second))

	case ErrMsg:
		if msg.Seq != 0 && msg.Seq != m.seq {
			return m, nil
		}
		m.statusMsg = domain.UserMessage(msg.Err, msg.Error())
		m.statusIsErr = true
		m.list.SetLoading(false)
		return m, ClearStatusCmd(5 * time.Second)

	case StatusMsg:
		m.statusMsg = msg.Message
		m.statusIsErr = msg.IsError
		return m, ClearStatusCmd(3 * time.Second)

	case ClearStatusMsg:
		m.statusMsg = ""
		m.statusIsErr = false
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Delete confirmation owns the keyboard
	if m.confirmKind != "" {
		switch {
		case key.Matches(msg, Keys.Confirm):
			kind, id := m.confirmKind, m.confirmID
			m.confirmKind = ""
			return m, m.deleteCmd(kind, id)
		case key.Matches(msg, Keys.Deny):
			m.confirmKind = ""
		}
		return m, nil
	}

	// Forms own the keyboard apart from esc
	if m.kind != formNone {
		if msg.String() == "esc" {
			return m, m.goBack()
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Forgot-password entry point from the login form
		if m.kind == formLogin && msg.String() == "ctrl+o" {
			m.kind = formOTP
			m.form = components.NewForm("Forgot Password", m.theme,
				components.Field{Label: "Email or username"},
			)
			m.form.SetSize(m.width)
			return m, nil
		}
		var cmd tea.Cmd
		var submitted bool
		m.form, cmd, submitted = m.form.Update(msg)
		if submitted {
			return m, m.submitForm()
		}
		return m, cmd
	}

	// Live search input
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		case "enter":
			query := m.searchInput.Value()
			m.searching = false
			m.searchInput.Blur()
			if query == "" {
				return m, nil
			}
			m.seq++
			m.list.SetLoading(true)
			return m, SearchCmd(m.Catalog, query, m.seq)
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		// Narrow the loaded page locally on every keystroke; enter
		// replaces it with the server result.
		if m.route == RouteProducts {
			local := m.Catalog.FilterLoaded(m.searchInput.Value(), m.products.Products)
			m.list.SetRows(productRows(local))
		}
		return m, cmd
	}

	// Local list filter typing
	if m.list.IsFilterTyping() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		if m.route == RouteHelp {
			return m, m.goBack()
		}
		return m, m.navigate(RouteHelp)

	case key.Matches(msg, Keys.Escape):
		if m.list.IsFiltering() {
			m.list.ClearFilter()
			return m, nil
		}
		if m.route == RouteHelp {
			return m, m.goBack()
		}
		return m, nil

	case key.Matches(msg, Keys.Back):
		return m, m.goBack()

	case key.Matches(msg, Keys.Landing):
		return m, m.navigate(RouteLanding)

	case key.Matches(msg, Keys.Products):
		return m, m.navigate(RouteProducts)

	case key.Matches(msg, Keys.Cart):
		return m, m.navigate(RouteCart)

	case key.Matches(msg, Keys.Checkout):
		return m, m.navigate(RouteCheckout)

	case key.Matches(msg, Keys.Orders):
		return m, m.navigate(RouteOrders)

	case key.Matches(msg, Keys.Admin):
		return m, m.navigate(RouteAdminProducts)

	case key.Matches(msg, Keys.Login):
		return m, m.navigate(RouteLogin)

	case msg.String() == "R":
		return m, m.navigate(RouteRegister)

	case key.Matches(msg, Keys.Theme):
		theme, err := m.Creds.ToggleTheme()
		if err == nil {
			m.theme = styles.ForName(string(theme))
			m.list.SetTheme(m.theme)
			m.searchInput.PromptStyle = m.theme.FormPrompt
		}
		return m, nil

	case key.Matches(msg, Keys.Logout):
		admin := m.route.requiresAdmin() || m.route == RouteAdminLogin
		if admin {
			m.Account.LogoutAdmin()
		} else {
			m.Account.LogoutUser()
		}
		cmd := m.navigate(RouteLanding)
		if admin {
			m.statusMsg = "Admin session ended"
		} else {
			m.statusMsg = "Logged out"
		}
		m.statusIsErr = false
		return m, tea.Batch(cmd, ClearStatusCmd(3*time.Second))

	case key.Matches(msg, Keys.Refresh):
		return m, m.reload()

	case key.Matches(msg, Keys.Filter):
		if m.hasList() {
			m.list.ToggleFilter()
		}
		return m, nil

	case key.Matches(msg, Keys.Search):
		if m.route == RouteLanding || m.route == RouteProducts {
			m.searching = true
			m.searchInput.SetValue("")
			return m, m.searchInput.Focus()
		}
		return m, nil

	case key.Matches(msg, Keys.Next):
		return m, m.nextPage()

	case key.Matches(msg, Keys.Prev):
		return m, m.prevPage()
	}

	// Route-specific keys
	switch m.route {
	case RouteLanding, RouteProducts:
		switch {
		case key.Matches(msg, Keys.Enter):
			if row := m.list.Selected(); row != nil {
				m.productID = row.ID
				return m, m.navigate(RouteProductDetail)
			}
			return m, nil
		case key.Matches(msg, Keys.Add):
			return m, m.addSelectedToCart(1)
		}

	case RouteProductDetail:
		switch {
		case key.Matches(msg, Keys.More):
			if opts := format.Amounts(detailQtyMax); m.qty < len(opts) {
				m.qty++
			}
			return m, nil
		case key.Matches(msg, Keys.Less):
			if m.qty > 1 {
				m.qty--
			}
			return m, nil
		case key.Matches(msg, Keys.Add):
			if err := m.Ledger.Add(m.product, m.qty); err == nil {
				m.statusMsg = m.product.Title + " ×" + itoa(m.qty) + " added to cart"
				m.statusIsErr = false
				return m, ClearStatusCmd(3 * time.Second)
			}
			return m, nil
		}

	case RouteCart:
		switch {
		case key.Matches(msg, Keys.More):
			return m, m.bumpSelectedQuantity(1)
		case key.Matches(msg, Keys.Less):
			return m, m.bumpSelectedQuantity(-1)
		case key.Matches(msg, Keys.Remove):
			if row := m.list.Selected(); row != nil {
				m.Ledger.Remove(row.ID)
				m.refreshCartRows()
			}
			return m, nil
		case key.Matches(msg, Keys.Enter):
			return m, m.navigate(RouteCheckout)
		}

	case RouteOrders, RouteAdminOrders:
		switch {
		case key.Matches(msg, Keys.Enter):
			if row := m.list.Selected(); row != nil {
				m.orderID = row.ID
				return m, m.navigate(RouteOrderDetail)
			}
			return m, nil
		case key.Matches(msg, Keys.Delete):
			if m.route == RouteAdminOrders {
				return m, m.confirmDelete("order")
			}
		}

	case RouteOrderDetail:
		if key.Matches(msg, Keys.Invoice) {
			return m, DownloadInvoiceCmd(m.Orders, m.order)
		}

	case RouteAdminProducts:
		switch {
		case key.Matches(msg, Keys.New):
			return m, m.openProductForm(domain.Product{})
		case key.Matches(msg, Keys.Edit), key.Matches(msg, Keys.Enter):
			if p := m.selectedProduct(); p != nil {
				return m, m.openProductForm(*p)
			}
			return m, nil
		case key.Matches(msg, Keys.Delete):
			return m, m.confirmDelete("product")
		}

	case RouteAdminCategories:
		switch {
		case key.Matches(msg, Keys.New):
			return m, m.openCategoryForm("", "")
		case key.Matches(msg, Keys.Edit), key.Matches(msg, Keys.Enter):
			if row := m.list.Selected(); row != nil {
				return m, m.openCategoryForm(row.ID, row.Title)
			}
			return m, nil
		case key.Matches(msg, Keys.Delete):
			return m, m.confirmDelete("category")
		}

	case RouteAdminUsers:
		switch {
		case key.Matches(msg, Keys.New):
			return m, m.openUserForm(domain.User{})
		case key.Matches(msg, Keys.Edit), key.Matches(msg, Keys.Enter):
			if u := m.selectedUser(); u != nil {
				return m, m.openUserForm(*u)
			}
			return m, nil
		case key.Matches(msg, Keys.Delete):
			return m, m.confirmDelete("user")
		}

	case RouteAdminAdmins:
		switch {
		case key.Matches(msg, Keys.New):
			return m, m.openAdminForm(domain.Admin{})
		case key.Matches(msg, Keys.Edit), key.Matches(msg, Keys.Enter):
			if a := m.selectedAdmin(); a != nil {
				return m, m.openAdminForm(*a)
			}
			return m, nil
		case key.Matches(msg, Keys.Delete):
			return m, m.confirmDelete("admin")
		}
	}

	// Admin tab switching
	if m.route.requiresAdmin() {
		switch msg.String() {
		case "1":
			return m, m.navigate(RouteAdminProducts)
		case "2":
			return m, m.navigate(RouteAdminCategories)
		case "3":
			return m, m.navigate(RouteAdminOrders)
		case "4":
			return m, m.navigate(RouteAdminUsers)
		case "5":
			return m, m.navigate(RouteAdminAdmins)
		}
	}

	// Let the list handle remaining keys (j/k/g/G navigation)
	if m.hasList() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

// submitForm dispatches the active form's values
func (m *Model) submitForm() tea.Cmd {
	vals := m.form.Values()
	kind := m.kind

	switch kind {
	case formLogin:
		m.statusMsg = "Signing in..."
		m.statusIsErr = false
		return LoginUserCmd(m.Account, vals[0], vals[1])

	case formRegister:
		return RegisterUserCmd(m.Account, api.Registration{
			Username: vals[0], Email: vals[1], Mobile: vals[2], Password: vals[3],
		})

	case formAdminLogin:
		m.statusMsg = "Signing in..."
		m.statusIsErr = false
		return LoginAdminCmd(m.Account, vals[0], vals[1])

	case formAdminRegister:
		return RegisterAdminCmd(m.Account, api.Registration{
			Username: vals[0], Email: vals[1], Mobile: vals[2], Password: vals[3],
		})

	case formCheckout:
		return CheckoutCmd(m.Orders, domain.ShippingInfo{
			Name: vals[0], Address: vals[1], City: vals[2], State: vals[3], Company: vals[4],
		})

	case formOTP:
		return RequestOTPCmd(m.Account, vals[0])

	case formReset:
		return ResetPasswordCmd(m.Account, vals[0], vals[1], vals[2])

	case formProduct:
		fields := api.ProductFields{
			Title: vals[0], Company: vals[1], Category: vals[2],
			Price: vals[3], SellingPrice: vals[4], Stock: vals[5],
			Code: vals[6], Description: vals[7],
		}
		id := m.editID
		if id == "" {
			return SaveEntityCmd("product", func(ctx context.Context) error {
				return m.Admin.CreateProduct(ctx, fields, nil)
			})
		}
		return SaveEntityCmd("product", func(ctx context.Context) error {
			return m.Admin.UpdateProduct(ctx, id, fields, nil)
		})

	case formCategory:
		name := vals[0]
		id := m.editID
		if id == "" {
			return SaveEntityCmd("category", func(ctx context.Context) error {
				return m.Admin.CreateCategory(ctx, name)
			})
		}
		return SaveEntityCmd("category", func(ctx context.Context) error {
			return m.Admin.UpdateCategory(ctx, id, name)
		})

	case formUser:
		fields := api.UserFields{
			Username: vals[0], Email: vals[1], Mobile: vals[2],
			Address: vals[3], City: vals[4], State: vals[5],
			Password: vals[6],
		}
		id := m.editID
		if id == "" {
			return SaveEntityCmd("user", func(ctx context.Context) error {
				return m.Admin.CreateUser(ctx, fields)
			})
		}
		return SaveEntityCmd("user", func(ctx context.Context) error {
			return m.Admin.UpdateUser(ctx, id, fields)
		})

	case formAdmin:
		fields := api.AdminFields{
			Username: vals[0], Email: vals[1], Role: vals[2], Password: vals[3],
		}
		id := m.editID
		if id == "" {
			return SaveEntityCmd("admin", func(ctx context.Context) error {
				return m.Admin.CreateAdmin(ctx, fields)
			})
		}
		return SaveEntityCmd("admin", func(ctx context.Context) error {
			return m.Admin.UpdateAdmin(ctx, id, fields)
		})
	}

	return nil
}

// deleteCmd builds the delete command for a confirmed entity
func (m *Model) deleteCmd(kind, id string) tea.Cmd {
	switch kind {
	case "product":
		return DeleteEntityCmd(kind, id, func(ctx context.Context) error {
			return m.Admin.DeleteProduct(ctx, id)
		})
	case "category":
		return DeleteEntityCmd(kind, id, func(ctx context.Context) error {
			return m.Admin.DeleteCategory(ctx, id)
		})
	case "order":
		return DeleteEntityCmd(kind, id, func(ctx context.Context) error {
			return m.Admin.DeleteOrder(ctx, id)
		})
	case "user":
		return DeleteEntityCmd(kind, id, func(ctx context.Context) error {
			return m.Admin.DeleteUser(ctx, id)
		})
	case "admin":
		return DeleteEntityCmd(kind, id, func(ctx context.Context) error {
			return m.Admin.DeleteAdmin(ctx, id)
		})
	}
	return nil
}

func (m *Model) confirmDelete(kind string) tea.Cmd {
	row := m.list.Selected()
	if row == nil {
		return nil
	}
	m.confirmKind = kind
	m.confirmID = row.ID
	return nil
}

// Admin form openers

func (m *Model) openProductForm(p domain.Product) tea.Cmd {
	m.editID = p.ID
	title := "New Product"
	if p.ID != "" {
		title = "Edit Product"
	}
	m.back = append(m.back, m.route)
	m.route = RouteAdminProductForm
	m.seq++
	m.kind = formProduct
	m.form = components.NewForm(title, m.theme,
		components.Field{Label: "Title", Value: p.Title},
		components.Field{Label: "Company", Value: p.Company},
		components.Field{Label: "Category", Value: p.Category},
		components.Field{Label: "Price", Value: trimZero(p.Price)},
		components.Field{Label: "Selling price", Value: trimZero(p.SellingPrice)},
		components.Field{Label: "Stock", Value: trimZeroInt(p.Stock)},
		components.Field{Label: "Code", Value: p.Code},
		components.Field{Label: "Description", Value: p.Description},
	)
	m.form.SetSize(m.width)
	return nil
}

func (m *Model) openCategoryForm(id, name string) tea.Cmd {
	m.editID = id
	title := "New Category"
	if id != "" {
		title = "Edit Category"
	}
	m.back = append(m.back, m.route)
	m.route = RouteAdminCategoryForm
	m.seq++
	m.kind = formCategory
	m.form = components.NewForm(title, m.theme,
		components.Field{Label: "Name", Value: name},
	)
	m.form.SetSize(m.width)
	return nil
}

func (m *Model) openUserForm(u domain.User) tea.Cmd {
	m.editID = u.ID
	title := "New User"
	if u.ID != "" {
		title = "Edit User"
	}
	m.back = append(m.back, m.route)
	m.route = RouteAdminForm
	m.seq++
	m.kind = formUser
	m.form = components.NewForm(title, m.theme,
		components.Field{Label: "Username", Value: u.Username},
		components.Field{Label: "Email", Value: u.Email},
		components.Field{Label: "Mobile", Value: u.Mobile},
		components.Field{Label: "Address", Value: u.Address},
		components.Field{Label: "City", Value: u.City},
		components.Field{Label: "State", Value: u.State},
		components.Field{Label: "Password", Secret: true},
	)
	m.form.SetSize(m.width)
	return nil
}

func (m *Model) openAdminForm(a domain.Admin) tea.Cmd {
	m.editID = a.ID
	title := "New Admin"
	if a.ID != "" {
		title = "Edit Admin"
	}
	m.back = append(m.back, m.route)
	m.route = RouteAdminForm
	m.seq++
	m.kind = formAdmin
	m.form = components.NewForm(title, m.theme,
		components.Field{Label: "Username", Value: a.Username},
		components.Field{Label: "Email", Value: a.Email},
		components.Field{Label: "Role", Value: string(a.Role), Placeholder: "staff | admin | superadmin"},
		components.Field{Label: "Password", Secret: true},
	)
	m.form.SetSize(m.width)
	return nil
}

// Cart helpers

func (m *Model) addSelectedToCart(qty int) tea.Cmd {
	p := m.selectedProduct()
	if p == nil {
		return nil
	}
	if err := m.Ledger.Add(*p, qty); err != nil {
		m.statusMsg = err.Error()
		m.statusIsErr = true
		return ClearStatusCmd(3 * time.Second)
	}
	m.statusMsg = p.Title + " added to cart"
	m.statusIsErr = false
	return ClearStatusCmd(3 * time.Second)
}

func (m *Model) bumpSelectedQuantity(delta int) tea.Cmd {
	row := m.list.Selected()
	if row == nil {
		return nil
	}
	for _, l := range m.Ledger.Snapshot().Lines {
		if l.ProductID == row.ID {
			m.Ledger.SetQuantity(row.ID, l.Quantity+delta)
			break
		}
	}
	m.refreshCartRows()
	return nil
}

func (m *Model) refreshCartRows() {
	snap := m.Ledger.Snapshot()
	rows := make([]components.Row, len(snap.Lines))
	for i, l := range snap.Lines {
		rows[i] = components.Row{
			ID:      l.ProductID,
			Title:   l.Title,
			Detail:  l.Company,
			Trailer: format.Price(l.Subtotal()) + "  ×" + itoa(l.Quantity),
		}
	}
	m.list.SetRows(rows)
}

// Pagination

func (m *Model) paginated() (domain.Pagination, bool) {
	switch m.route {
	case RouteProducts, RouteAdminProducts:
		return m.products.Meta, true
	case RouteOrders:
		return m.orders.Meta, true
	case RouteAdminOrders:
		return m.orders.Meta, true
	case RouteAdminCategories:
		return m.cats.Meta, true
	case RouteAdminUsers:
		return m.users.Meta, true
	case RouteAdminAdmins:
		return m.admins.Meta, true
	}
	return domain.Pagination{}, false
}

func (m *Model) nextPage() tea.Cmd {
	meta, ok := m.paginated()
	if !ok || !meta.HasNext() {
		return nil
	}
	m.page++
	m.seq++
	m.list.SetLoading(true)
	return m.loaderFor(m.route, m.seq)
}

func (m *Model) prevPage() tea.Cmd {
	meta, ok := m.paginated()
	if !ok || !meta.HasPrev() {
		return nil
	}
	m.page--
	m.seq++
	m.list.SetLoading(true)
	return m.loaderFor(m.route, m.seq)
}

// Selection lookups

func (m *Model) selectedProduct() *domain.Product {
	row := m.list.Selected()
	if row == nil {
		return nil
	}
	if m.route == RouteLanding {
		for i := range m.featured {
			if m.featured[i].ID == row.ID {
				return &m.featured[i]
			}
		}
		return nil
	}
	for i := range m.products.Products {
		if m.products.Products[i].ID == row.ID {
			return &m.products.Products[i]
		}
	}
	return nil
}

func (m *Model) selectedUser() *domain.User {
	row := m.list.Selected()
	if row == nil {
		return nil
	}
	for i := range m.users.Users {
		if m.users.Users[i].ID == row.ID {
			return &m.users.Users[i]
		}
	}
	return nil
}

func (m *Model) selectedAdmin() *domain.Admin {
	row := m.list.Selected()
	if row == nil {
		return nil
	}
	for i := range m.admins.Admins {
		if m.admins.Admins[i].ID == row.ID {
			return &m.admins.Admins[i]
		}
	}
	return nil
}

func (m *Model) hasList() bool {
	switch m.route {
	case RouteLanding, RouteProducts, RouteCart, RouteOrders,
		RouteAdminProducts, RouteAdminCategories, RouteAdminOrders,
		RouteAdminUsers, RouteAdminAdmins:
		return true
	}
	return false
}

func (m *Model) sizeComponents() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.list.SetSize(m.width, m.height-ChromeHeight)
	m.form.SetSize(m.width)
	m.searchInput.Width = m.width - 10
}
