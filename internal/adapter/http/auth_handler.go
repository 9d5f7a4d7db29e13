package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"control-horas/internal/infrastructure/session"
)

const invalidCredentialsMsg = "Credenciales inválidas. Por favor, inténtalo de nuevo."

type loginPageData struct {
	Error string
}

type loginForm struct {
	Usuario  string `form:"usuario" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (h *Handler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", loginPageData{})
}

func (h *Handler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login.html", loginPageData{Error: invalidCredentialsMsg})
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusOK, "login.html", loginPageData{Error: invalidCredentialsMsg})
	}

	id, err := h.auth.Authenticate(c.Request().Context(), form.Usuario, form.Password)
	if err != nil {
		// Unknown user and wrong password read identically on purpose.
		return c.Render(http.StatusOK, "login.html", loginPageData{Error: invalidCredentialsMsg})
	}

	sid, err := h.sessions.Create(c.Request().Context(), session.Session{
		Username: id.Username,
		Role:     string(id.Role),
	})
	if err != nil {
		log.Error().Err(err).Msg("session create failed")
		return c.Render(http.StatusOK, "login.html", loginPageData{Error: invalidCredentialsMsg})
	}
	h.setSessionCookie(c, sid)
	return c.Redirect(http.StatusFound, "/"+string(id.Role))
}

func (h *Handler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(c.Request().Context(), cookie.Value); err != nil && !errors.Is(err, session.ErrNotFound) {
			log.Warn().Err(err).Msg("session delete failed")
		}
	}
	h.clearSessionCookie(c)
	return c.Redirect(http.StatusFound, "/login")
}
