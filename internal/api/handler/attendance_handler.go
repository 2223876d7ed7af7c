package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heatseek/attendance-system/internal/api/metrics"
	"github.com/heatseek/attendance-system/internal/core/domain"
	"github.com/heatseek/attendance-system/internal/core/ports"
)

// AttendanceHandler exposes the monthly attendance view and the status
// transition operation.
type AttendanceHandler struct {
	engine ports.AttendanceService
}

func NewAttendanceHandler(engine ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{engine: engine}
}

type attendanceResponse struct {
	Month               string             `json:"month"`
	EmployeeID          string             `json:"employee_id"`
	Logs                []domain.DayRecord `json:"logs"`
	AbsentThisMonth     int                `json:"absent_this_month"`
	AbsentLastMonth     int                `json:"absent_last_month"`
	AvailablePaidLeaves int                `json:"available_paid_leaves"`
	UsedPaidLeaves      int                `json:"used_paid_leaves"`
}

func toAttendanceResponse(view *ports.AttendanceView) attendanceResponse {
	return attendanceResponse{
		Month:               view.Month,
		EmployeeID:          view.EmployeeID,
		Logs:                view.Data.Logs,
		AbsentThisMonth:     view.Data.AbsentThisMonth,
		AbsentLastMonth:     view.Data.AbsentLastMonth,
		AvailablePaidLeaves: view.Data.AvailablePaidLeaves,
		UsedPaidLeaves:      view.Data.UsedPaidLeaves(),
	}
}

// Get handles GET /attendance. Optional query parameters scope the view:
// month (yyyy-mm, defaults to the current month) and employee_id (defaults to
// the acting subject; meaningful for privileged actors only).
func (h *AttendanceHandler) Get(c echo.Context) error {
	if err := h.engine.SelectMonth(c.QueryParam("month")); err != nil {
		return err
	}
	h.engine.SelectEmployee(c.QueryParam("employee_id"))

	view, err := h.engine.Refresh(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAttendanceResponse(view))
}

type setStatusRequest struct {
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Status     string `json:"status" validate:"required,oneof=PRESENT LATE ABSENT ON_LEAVE"`
	EmployeeID string `json:"employee_id" validate:"required"`
	Month      string `json:"month,omitempty"`
}

// SetStatus handles POST /attendance/status. The engine rejects self-edits,
// on-leave days, and manual ON_LEAVE targets before any remote call; a
// successful transition returns the refetched monthly view.
func (h *AttendanceHandler) SetStatus(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.engine.SelectMonth(req.Month); err != nil {
		return err
	}
	h.engine.SelectEmployee(req.EmployeeID)

	view, mutation, err := h.engine.SetStatus(c.Request().Context(), req.Date, domain.AttendanceStatus(req.Status))
	if err != nil {
		if reason := rejectionReason(err); reason != "" {
			metrics.TransitionsRejectedTotal.WithLabelValues(reason).Inc()
		}
		return err
	}

	// A same-status request resolves to no remote mutation; only count
	// transitions that were actually applied.
	if mutation != domain.MutationNone {
		metrics.TransitionsTotal.WithLabelValues(req.Status).Inc()
	}
	return c.JSON(http.StatusOK, toAttendanceResponse(view))
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrSelfEdit):
		return "self_edit"
	case errors.Is(err, domain.ErrOnLeaveLocked):
		return "on_leave"
	case errors.Is(err, domain.ErrManualOnLeave):
		return "manual_on_leave"
	case errors.Is(err, domain.ErrScopeDenied):
		return "scope"
	}
	return ""
}
