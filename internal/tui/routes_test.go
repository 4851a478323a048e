package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bakerskart/kart/internal/domain"
)

func userSession() domain.Session {
	return domain.Session{
		User: &domain.UserSession{
			User:  domain.User{ID: "u1", Username: "asha"},
			Token: "user-token",
		},
	}
}

func adminSession(role domain.Role) domain.Session {
	return domain.Session{
		Admin: &domain.AdminSession{
			Admin: domain.Admin{ID: "a1", Username: "dev", Role: role},
			Token: "admin-token",
		},
	}
}

func TestCheckAccessAnonymous(t *testing.T) {
	anon := domain.Session{}

	tests := []struct {
		route    Route
		redirect bool
		target   Route
	}{
		{RouteLanding, false, RouteLanding},
		{RouteProducts, false, RouteProducts},
		{RouteProductDetail, false, RouteProductDetail},
		{RouteCart, false, RouteCart},
		{RouteLogin, false, RouteLogin},
		{RouteRegister, false, RouteRegister},
		{RouteCheckout, true, RouteLogin},
		{RouteOrders, true, RouteLogin},
		{RouteOrderDetail, true, RouteLogin},
		{RouteAdminProducts, true, RouteAdminLogin},
		{RouteAdminOrders, true, RouteAdminLogin},
		{RouteAdminAdmins, true, RouteAdminLogin},
	}

	for _, tt := range tests {
		t.Run(tt.route.String(), func(t *testing.T) {
			d := CheckAccess(tt.route, anon)
			assert.Equal(t, tt.redirect, d.Redirect)
			assert.Equal(t, tt.target, d.Route)
			if tt.redirect {
				assert.NotEmpty(t, d.Warning)
			} else {
				assert.Empty(t, d.Warning)
			}
		})
	}
}

func TestCheckAccessUserSession(t *testing.T) {
	sess := userSession()

	d := CheckAccess(RouteCheckout, sess)
	assert.False(t, d.Redirect)
	assert.Equal(t, RouteCheckout, d.Route)

	d = CheckAccess(RouteOrders, sess)
	assert.False(t, d.Redirect)

	// A storefront session gets no admin access
	d = CheckAccess(RouteAdminProducts, sess)
	assert.True(t, d.Redirect)
	assert.Equal(t, RouteAdminLogin, d.Route)
}

func TestCheckAccessAdminRoles(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleStaff, domain.RoleAdmin, domain.RoleSuperadmin} {
		d := CheckAccess(RouteAdminAdmins, adminSession(role))
		assert.False(t, d.Redirect, "role %s should be admitted", role)
	}

	// Unknown role is treated as unauthorized
	d := CheckAccess(RouteAdminAdmins, adminSession(domain.Role("intern")))
	assert.True(t, d.Redirect)
	assert.Equal(t, RouteAdminLogin, d.Route)
}

func TestCheckAccessAdminSessionDoesNotUnlockCheckout(t *testing.T) {
	d := CheckAccess(RouteCheckout, adminSession(domain.RoleSuperadmin))
	assert.True(t, d.Redirect)
	assert.Equal(t, RouteLogin, d.Route)
}

func TestCheckAccessBothSessions(t *testing.T) {
	sess := userSession()
	admin := adminSession(domain.RoleStaff)
	sess.Admin = admin.Admin

	assert.False(t, CheckAccess(RouteCheckout, sess).Redirect)
	assert.False(t, CheckAccess(RouteAdminUsers, sess).Redirect)
}
