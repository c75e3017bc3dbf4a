package middleware

// session.go attaches the visitor's session to the request context.
// The session id travels in an HttpOnly cookie; the state itself is
// looked up in the session store on every request.  A missing,
// unknown or expired cookie simply yields the zero session - the
// visitor is anonymous, never an error.

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/hotsauce86/Stream-TV/internal/session"
)

// sessionContextKey is the echo context key the loaded session is
// stored under.
const sessionContextKey = "session"

// LoadSession returns middleware that resolves the session cookie
// against the store and exposes the result via CurrentSession.
func LoadSession(store session.Store, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
				s, err := store.Get(c.Request().Context(), cookie.Value)
				switch {
				case err == nil:
					c.Set(sessionContextKey, s)
				case errors.Is(err, session.ErrNoSession):
					// Stale cookie; fall through as anonymous.
				default:
					// Store trouble must not lock visitors out of
					// public pages; log-worthy errors surface when
					// the session is actually needed.
					c.Logger().Warnf("session lookup failed: %v", err)
				}
			}
			return next(c)
		}
	}
}

// CurrentSession returns the session attached to the request, or the
// zero (unauthenticated) session.
func CurrentSession(c echo.Context) session.Session {
	if v := c.Get(sessionContextKey); v != nil {
		if s, ok := v.(session.Session); ok {
			return s
		}
	}
	return session.Session{}
}
