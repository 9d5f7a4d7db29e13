package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"control-horas/internal/domain/account"
	"control-horas/internal/infrastructure/session"
)

const (
	ctxSessionID = "session_id"
	ctxSession   = "session"
)

// currentSession resolves the cookie against the session store; nil when
// there is no live session.
func (h *Handler) currentSession(c echo.Context) *session.Session {
	cookie, err := c.Cookie(h.cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	sess, err := h.sessions.Get(c.Request().Context(), cookie.Value)
	if err != nil {
		return nil
	}
	c.Set(ctxSessionID, cookie.Value)
	return sess
}

// requireRole gates a route on a live session; with no roles given any
// authenticated user passes. Failures redirect to the login page, matching
// the rest of the UI's behavior.
func (h *Handler) requireRole(roles ...account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := h.currentSession(c)
			if sess == nil {
				return c.Redirect(http.StatusFound, "/login")
			}
			if len(roles) > 0 {
				allowed := false
				for _, r := range roles {
					if account.Role(sess.Role) == r {
						allowed = true
						break
					}
				}
				if !allowed {
					return c.Redirect(http.StatusFound, "/login")
				}
			}
			c.Set(ctxSession, sess)
			return next(c)
		}
	}
}

func sessionFrom(c echo.Context) *session.Session {
	sess, _ := c.Get(ctxSession).(*session.Session)
	return sess
}

func (h *Handler) setSessionCookie(c echo.Context, id string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// flash queues a one-shot message on the caller's session; failures only
// cost the message, never the request.
func (h *Handler) flash(c echo.Context, level, message string) {
	id, _ := c.Get(ctxSessionID).(string)
	if id == "" {
		return
	}
	if err := h.sessions.PushFlash(c.Request().Context(), id, session.Flash{Level: level, Message: message}); err != nil {
		log.Warn().Err(err).Msg("flash not stored")
	}
}

func (h *Handler) popFlashes(c echo.Context) []session.Flash {
	id, _ := c.Get(ctxSessionID).(string)
	if id == "" {
		return nil
	}
	flashes, err := h.sessions.PopFlashes(c.Request().Context(), id)
	if err != nil {
		return nil
	}
	return flashes
}
