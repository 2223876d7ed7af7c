package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heatseek/attendance-system/internal/api/metrics"
	"github.com/heatseek/attendance-system/internal/core/domain"
	"github.com/heatseek/attendance-system/internal/core/ports"
)

// SessionHandler exposes login, logout, and the current-session probe the UI
// uses to decide whether to route to its login entry point.
type SessionHandler struct {
	sessions ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type loginRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Employee *domain.Employee `json:"employee"`
}

// Login handles POST /session/login.
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.sessions.Login(c.Request().Context(), req.EmployeeID, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, sessionResponse{Employee: employee})
}

// Logout handles POST /session/logout.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Current handles GET /session.
func (h *SessionHandler) Current(c echo.Context) error {
	session := h.sessions.Current()
	if !session.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	return c.JSON(http.StatusOK, sessionResponse{Employee: session.Subject})
}
