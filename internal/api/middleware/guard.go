// Package middleware contains the route guard: the per-request authorization
// check gating every protected view on the current session snapshot.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localspot/directory-gateway/internal/api/metrics"
	"github.com/localspot/directory-gateway/internal/core/domain"
	"github.com/localspot/directory-gateway/internal/core/ports"
)

// SessionKey is the echo context key the guard stores the snapshot under.
const SessionKey = "session"

const (
	loginPath = "/login"
	homePath  = "/"
)

// RequireSession gates a route on an authenticated session. The decision is
// re-evaluated on every request from a fresh snapshot, so a logout revokes
// access immediately.
//
// While the session is still loading the guard answers 503 with Retry-After.
// It never redirects in that window, so startup hydration cannot flash a
// false "not authenticated".
func RequireSession(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snap := sessions.Snapshot()

			if snap.IsLoading() {
				metrics.GuardDecisionsTotal.WithLabelValues("placeholder").Inc()
				c.Response().Header().Set("Retry-After", "1")
				return c.NoContent(http.StatusServiceUnavailable)
			}
			if !snap.IsAuthenticated() {
				metrics.GuardDecisionsTotal.WithLabelValues("redirect_login").Inc()
				return c.Redirect(http.StatusSeeOther, loginPath)
			}

			metrics.GuardDecisionsTotal.WithLabelValues("allow").Inc()
			c.Set(SessionKey, snap)
			return next(c)
		}
	}
}

// RequireAdmin gates a route on an authenticated session carrying the ADMIN
// role. Under-privileged users are sent home rather than to the login view;
// they are logged in, just not allowed here.
func RequireAdmin(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snap := sessions.Snapshot()

			if snap.IsLoading() {
				metrics.GuardDecisionsTotal.WithLabelValues("placeholder").Inc()
				c.Response().Header().Set("Retry-After", "1")
				return c.NoContent(http.StatusServiceUnavailable)
			}
			if !snap.IsAuthenticated() {
				metrics.GuardDecisionsTotal.WithLabelValues("redirect_login").Inc()
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			if !snap.User.IsAdmin() {
				metrics.GuardDecisionsTotal.WithLabelValues("redirect_forbidden").Inc()
				return c.Redirect(http.StatusSeeOther, homePath)
			}

			metrics.GuardDecisionsTotal.WithLabelValues("allow").Inc()
			c.Set(SessionKey, snap)
			return next(c)
		}
	}
}

// Session extracts the snapshot the guard stored for the current request.
// The zero snapshot is returned on unguarded routes.
func Session(c echo.Context) domain.SessionSnapshot {
	snap, _ := c.Get(SessionKey).(domain.SessionSnapshot)
	return snap
}
