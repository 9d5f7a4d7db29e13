package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"control-horas/internal/domain/account"
	"control-horas/internal/domain/audit"
	"control-horas/internal/infrastructure/session"
	"control-horas/internal/logging"
	ucAccount "control-horas/internal/usecase/account"
	ucApproval "control-horas/internal/usecase/approval"
	ucAuth "control-horas/internal/usecase/auth"
	ucCalendar "control-horas/internal/usecase/calendar"
	ucRequest "control-horas/internal/usecase/request"
)

const DefaultCookieName = "controlhoras_session"

var log = logging.Component("http")

type Handler struct {
	auth      *ucAuth.Usecase
	requests  *ucRequest.Usecase
	approvals *ucApproval.Usecase
	calendar  *ucCalendar.Usecase
	accounts  *ucAccount.Usecase
	audit     audit.Repository // nil hides the activity panel
	sessions  session.Store

	cookieName string
}

func NewHandler(
	auth *ucAuth.Usecase,
	requests *ucRequest.Usecase,
	approvals *ucApproval.Usecase,
	calendar *ucCalendar.Usecase,
	accounts *ucAccount.Usecase,
	trail audit.Repository,
	sessions session.Store,
	cookieName string,
) *Handler {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Handler{
		auth:       auth,
		requests:   requests,
		approvals:  approvals,
		calendar:   calendar,
		accounts:   accounts,
		audit:      trail,
		sessions:   sessions,
		cookieName: cookieName,
	}
}

// Register wires every route. All pages are server-rendered and mutations
// follow POST-redirect-GET.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.Health)

	e.GET("/", h.Home)
	e.GET("/login", h.LoginPage)
	e.POST("/login", h.Login)
	e.GET("/logout", h.Logout)

	e.GET("/empleado", h.EmployeePage, h.requireRole(account.RoleEmployee))
	e.POST("/empleado", h.SubmitRequest, h.requireRole(account.RoleEmployee))

	e.GET("/gestor", h.ManagerPage, h.requireRole(account.RoleManager))
	e.POST("/gestor", h.Decide, h.requireRole(account.RoleManager))

	e.GET("/calendario", h.CalendarPage, h.requireRole())

	e.GET("/agregar_usuario", h.AddUserPage, h.requireRole(account.RoleManager))
	e.POST("/agregar_usuario", h.AddUser, h.requireRole(account.RoleManager))
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Home sends an authenticated user to their role's page.
func (h *Handler) Home(c echo.Context) error {
	if sess := h.currentSession(c); sess != nil {
		return c.Redirect(http.StatusFound, "/"+sess.Role)
	}
	return c.Redirect(http.StatusFound, "/login")
}
