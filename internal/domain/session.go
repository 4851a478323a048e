package domain

// Role is an administrative access level. Access checks are pure set
// membership against AdminRoles; there is no ordering between roles.
type Role string

const (
	RoleStaff      Role = "staff"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// AdminRoles is the allow-list of roles admitted to the back office.
var AdminRoles = []Role{RoleStaff, RoleAdmin, RoleSuperadmin}

// IsAdminRole reports whether r is in the back-office allow-list.
func IsAdminRole(r Role) bool {
	for _, allowed := range AdminRoles {
		if r == allowed {
			return true
		}
	}
	return false
}

// UserSession is an authenticated shopper identity plus its bearer token
type UserSession struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// AdminSession is an authenticated back-office identity plus its bearer token
type AdminSession struct {
	Admin Admin  `json:"admin"`
	Token string `json:"token"`
}

// Session is the full client-side authentication state. The user and admin
// sessions are independent; a single client may hold both at once.
// A nil pointer means anonymous for that surface.
type Session struct {
	User  *UserSession
	Admin *AdminSession
}

// Theme is the UI theme preference, independent of authentication state
type Theme string

const (
	ThemeWinter  Theme = "winter"
	ThemeDracula Theme = "dracula"
)

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == ThemeDracula {
		return ThemeWinter
	}
	return ThemeDracula
}
