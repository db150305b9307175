package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campusevents/internal/auth"
	"campusevents/internal/model"
	"campusevents/internal/repository"
)

// Context keys for the resolved identities.
const (
	ContextUserKey  = "current_user"
	ContextAdminKey = "current_admin"
)

// Login pages the guards redirect to.
const (
	UserLoginPath  = "/user/login"
	AdminLoginPath = "/admin/login"
)

// LoadIdentity resolves the session cookie into at most one user and one admin
// identity on the request context. It is registered globally and runs on every
// route, public ones included, so guards and handlers can consult identity
// state without re-reading the cookie. A missing cookie, an invalid token, or
// a lookup miss resolves the slot to anonymous; none of these are errors.
func LoadIdentity(sessions *auth.SessionService, users repository.UserRepository, admins repository.AdminRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(auth.CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			claims, err := sessions.Parse(cookie.Value)
			if err != nil {
				return next(c)
			}

			ctx := c.Request().Context()
			if claims.UserID != 0 {
				if user, err := users.FindByID(ctx, claims.UserID); err == nil {
					c.Set(ContextUserKey, user)
				}
			}
			if claims.AdminID != 0 {
				if admin, err := admins.FindByID(ctx, claims.AdminID); err == nil {
					c.Set(ContextAdminKey, admin)
				}
			}
			return next(c)
		}
	}
}

// RequireUser redirects to the user login page unless a user identity was
// resolved. The wrapped handler is never invoked on redirect.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			return c.Redirect(http.StatusFound, UserLoginPath)
		}
		return next(c)
	}
}

// RequireAdmin redirects to the admin login page unless an admin identity was
// resolved.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentAdmin(c) == nil {
			return c.Redirect(http.StatusFound, AdminLoginPath)
		}
		return next(c)
	}
}

// CurrentUser returns the resolved user identity, or nil for anonymous.
func CurrentUser(c echo.Context) *model.User {
	if user, ok := c.Get(ContextUserKey).(*model.User); ok {
		return user
	}
	return nil
}

// CurrentAdmin returns the resolved admin identity, or nil for anonymous.
func CurrentAdmin(c echo.Context) *model.Admin {
	if admin, ok := c.Get(ContextAdminKey).(*model.Admin); ok {
		return admin
	}
	return nil
}
