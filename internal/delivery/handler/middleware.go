package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"studytrack/internal/application/session"
)

const (
	sessionCookieName = "st_session"
	sessionContextKey = "st.session"
	tokenContextKey   = "st.token"
)

// SessionMiddleware gives every client connection its own Session, bound to
// an opaque cookie token. Sessions live in process memory only; a server
// restart starts every client unauthenticated again.
func SessionMiddleware(registry *session.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string
			var sess *session.Session

			if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
				token = cookie.Value
				sess = registry.Get(token)
			} else {
				token, sess = registry.Issue()
				c.SetCookie(&http.Cookie{
					Name:     sessionCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(sessionContextKey, sess)
			c.Set(tokenContextKey, token)
			return next(c)
		}
	}
}

func currentSession(c echo.Context) *session.Session {
	return c.Get(sessionContextKey).(*session.Session)
}

func currentToken(c echo.Context) string {
	return c.Get(tokenContextKey).(string)
}
