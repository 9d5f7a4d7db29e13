package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"control-horas/internal/domain/audit"
	domainRequest "control-horas/internal/domain/request"
	"control-horas/internal/infrastructure/sheet"
	"control-horas/internal/infrastructure/session"
	ucApproval "control-horas/internal/usecase/approval"
)

type managerPageData struct {
	Nombre      string
	Rol         string
	Solicitudes []domainRequest.Request
	Actividad   []audit.Entry
	Flashes     []session.Flash
}

func (h *Handler) ManagerPage(c echo.Context) error {
	sess := sessionFrom(c)
	ctx := c.Request().Context()

	all, err := h.approvals.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("cannot list requests")
	}

	var activity []audit.Entry
	if h.audit != nil {
		if activity, err = h.audit.Recent(ctx, 10); err != nil {
			log.Warn().Err(err).Msg("cannot read audit trail")
			activity = nil
		}
	}

	return c.Render(http.StatusOK, "gestor.html", managerPageData{
		Nombre:      sess.Username,
		Rol:         sess.Role,
		Solicitudes: all,
		Actividad:   activity,
		Flashes:     h.popFlashes(c),
	})
}

type decideForm struct {
	Fila   int    `form:"fila" validate:"required,gte=2"`
	Accion string `form:"accion" validate:"required"`
}

// Decide acts on a request by its 1-based sheet row. A failed balance
// deduction after a successful approval is surfaced as-is; the status is
// not rolled back.
func (h *Handler) Decide(c echo.Context) error {
	sess := sessionFrom(c)

	var form decideForm
	if err := c.Bind(&form); err != nil {
		h.flash(c, "error", "Datos del formulario inválidos.")
		return c.Redirect(http.StatusFound, "/gestor")
	}
	if err := c.Validate(&form); err != nil {
		h.flash(c, "error", "Número de fila inválido (la fila 1 es el encabezado).")
		return c.Redirect(http.StatusFound, "/gestor")
	}

	dto, err := h.approvals.Decide(c.Request().Context(), ucApproval.DecideInput{
		Actor:  sess.Username,
		Row:    form.Fila,
		Action: form.Accion,
	})

	var balanceErr *ucApproval.BalanceUpdateError
	var missingCol *sheet.MissingColumnError
	switch {
	case err == nil && dto.Status == domainRequest.StatusApproved:
		h.flash(c, "success", fmt.Sprintf("Solicitud aprobada y %v horas restadas del saldo de %s.", dto.Hours, dto.Employee))
	case err == nil:
		h.flash(c, "warning", "Solicitud rechazada.")
	case errors.As(err, &balanceErr):
		h.flash(c, "error", fmt.Sprintf("Error al restar %v horas del saldo de %s.", balanceErr.Hours, balanceErr.Employee))
	case errors.Is(err, domainRequest.ErrRowNotFound):
		h.flash(c, "error", "La fila indicada no existe.")
	case errors.Is(err, domainRequest.ErrBadHours), errors.As(err, &missingCol):
		h.flash(c, "error", "Error al leer los datos de la solicitud. Verifique los encabezados.")
	default:
		log.Error().Err(err).Int("row", form.Fila).Msg("decide failed")
		h.flash(c, "error", "Error al actualizar la solicitud.")
	}
	return c.Redirect(http.StatusFound, "/gestor")
}
