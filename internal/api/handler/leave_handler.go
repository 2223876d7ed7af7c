package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heatseek/attendance-system/internal/api/metrics"
	"github.com/heatseek/attendance-system/internal/core/domain"
	"github.com/heatseek/attendance-system/internal/core/ports"
)

// LeaveHandler exposes the leave-request list, submission, and the decision
// endpoints. A decision request stages and confirms in one round trip: the
// UI's confirmation dialog is the staging step, and closing it without
// submitting simply never calls the endpoint.
type LeaveHandler struct {
	lifecycle ports.LeaveService
}

func NewLeaveHandler(lifecycle ports.LeaveService) *LeaveHandler {
	return &LeaveHandler{lifecycle: lifecycle}
}

type leaveListResponse struct {
	Results []domain.LeaveRequest `json:"results"`
}

// List handles GET /leave-requests.
func (h *LeaveHandler) List(c echo.Context) error {
	requests, err := h.lifecycle.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, leaveListResponse{Results: requests})
}

type submitLeaveRequest struct {
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Message string `json:"message" validate:"max=500"`
}

// Submit handles POST /leave-requests.
func (h *LeaveHandler) Submit(c echo.Context) error {
	var req submitLeaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.lifecycle.Submit(c.Request().Context(), req.Date, req.Message); err != nil {
		metrics.LeaveSubmissionsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.LeaveSubmissionsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusCreated, leaveListResponse{Results: h.lifecycle.Cached()})
}

type decideLeaveRequest struct {
	ResponseMessage string `json:"response_message" validate:"max=500"`
}

// Approve handles POST /leave-requests/:uuid/approve.
func (h *LeaveHandler) Approve(c echo.Context) error {
	return h.decide(c, domain.DecisionApprove)
}

// Deny handles POST /leave-requests/:uuid/deny.
func (h *LeaveHandler) Deny(c echo.Context) error {
	return h.decide(c, domain.DecisionDeny)
}

func (h *LeaveHandler) decide(c echo.Context, decision domain.LeaveDecision) error {
	var req decideLeaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.lifecycle.StageDecision(c.Param("uuid"), decision); err != nil {
		return err
	}
	patched, err := h.lifecycle.ConfirmDecision(c.Request().Context(), req.ResponseMessage)
	if err != nil {
		return err
	}

	metrics.LeaveDecisionsTotal.WithLabelValues(string(decision)).Inc()
	return c.JSON(http.StatusOK, patched)
}
