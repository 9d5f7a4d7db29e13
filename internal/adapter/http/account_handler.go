package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"control-horas/internal/infrastructure/session"
	ucAccount "control-horas/internal/usecase/account"
)

type addUserPageData struct {
	Nombre  string
	Rol     string
	Flashes []session.Flash
}

func (h *Handler) AddUserPage(c echo.Context) error {
	sess := sessionFrom(c)
	return c.Render(http.StatusOK, "agregar_usuario.html", addUserPageData{
		Nombre:  sess.Username,
		Rol:     sess.Role,
		Flashes: h.popFlashes(c),
	})
}

type addUserForm struct {
	Nombre       string `form:"nombre"`
	Password     string `form:"password"`
	Rol          string `form:"rol"`
	SaldoInicial string `form:"saldo_inicial" validate:"omitempty,decimalcomma"`
}

func (h *Handler) AddUser(c echo.Context) error {
	sess := sessionFrom(c)

	var form addUserForm
	if err := c.Bind(&form); err != nil {
		h.flash(c, "error", "Datos del formulario inválidos.")
		return c.Redirect(http.StatusFound, "/agregar_usuario")
	}
	if err := c.Validate(&form); err != nil {
		h.flash(c, "error", "El saldo inicial debe ser un número.")
		return c.Redirect(http.StatusFound, "/agregar_usuario")
	}

	err := h.accounts.Create(c.Request().Context(), ucAccount.CreateInput{
		Actor:        sess.Username,
		Name:         form.Nombre,
		Password:     form.Password,
		Role:         form.Rol,
		InitialHours: form.SaldoInicial,
	})
	switch {
	case errors.Is(err, ucAccount.ErrMissingFields):
		h.flash(c, "error", "Nombre y contraseña son obligatorios.")
		return c.Redirect(http.StatusFound, "/agregar_usuario")
	case err != nil:
		log.Error().Err(err).Msg("add user failed")
		h.flash(c, "error", "Error al agregar el usuario.")
		return c.Redirect(http.StatusFound, "/agregar_usuario")
	}
	h.flash(c, "success", fmt.Sprintf("Usuario %s agregado exitosamente.", strings.TrimSpace(form.Nombre)))
	return c.Redirect(http.StatusFound, "/gestor")
}
