package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	domainRequest "control-horas/internal/domain/request"
	"control-horas/internal/infrastructure/session"
	ucRequest "control-horas/internal/usecase/request"
	"control-horas/pkg/num"
)

type employeePageData struct {
	Nombre      string
	Rol         string
	Saldo       float64
	Solicitudes []domainRequest.Request
	Flashes     []session.Flash
}

func (h *Handler) EmployeePage(c echo.Context) error {
	sess := sessionFrom(c)
	dto := h.requests.Overview(c.Request().Context(), sess.Username)
	return c.Render(http.StatusOK, "empleado.html", employeePageData{
		Nombre:      sess.Username,
		Rol:         sess.Role,
		Saldo:       dto.Balance,
		Solicitudes: dto.Requests,
		Flashes:     h.popFlashes(c),
	})
}

type submitForm struct {
	Fecha  string `form:"fecha" validate:"required,datetime=2006-01-02"`
	Horas  string `form:"horas" validate:"required,decimalcomma"`
	Motivo string `form:"motivo"`
}

// SubmitRequest always redirects back to the employee page; the outcome is
// reported via flash message.
func (h *Handler) SubmitRequest(c echo.Context) error {
	sess := sessionFrom(c)

	var form submitForm
	if err := c.Bind(&form); err != nil {
		h.flash(c, "error", "Datos del formulario inválidos.")
		return c.Redirect(http.StatusFound, "/empleado")
	}
	if err := c.Validate(&form); err != nil {
		fe := ToFieldErrors(err)
		h.flash(c, "error", "Solicitud no enviada: "+fe[0].Field+" "+fe[0].Message+".")
		return c.Redirect(http.StatusFound, "/empleado")
	}

	hours, _ := num.ParseComma(form.Horas)
	err := h.requests.Submit(c.Request().Context(), ucRequest.SubmitInput{
		Employee: sess.Username,
		Date:     form.Fecha,
		Hours:    hours,
		Reason:   form.Motivo,
	})
	switch {
	case errors.Is(err, ucRequest.ErrInvalidInput):
		h.flash(c, "error", "Las horas deben ser mayores que cero.")
	case err != nil:
		log.Error().Err(err).Str("employee", sess.Username).Msg("submit failed")
		h.flash(c, "error", "Error al enviar la solicitud.")
	default:
		h.flash(c, "success", "Solicitud enviada para aprobación.")
	}
	return c.Redirect(http.StatusFound, "/empleado")
}
