package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	ucCalendar "control-horas/internal/usecase/calendar"
)

type calendarPageData struct {
	Rol    string
	Grupos []ucCalendar.DayGroup
}

func (h *Handler) CalendarPage(c echo.Context) error {
	sess := sessionFrom(c)

	groups, err := h.calendar.ApprovedByDate(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("cannot build calendar")
		groups = nil
	}
	return c.Render(http.StatusOK, "calendario.html", calendarPageData{
		Rol:    sess.Role,
		Grupos: groups,
	})
}
