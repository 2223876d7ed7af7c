package remote

import (
	"context"
	"net/http"

	"github.com/heatseek/attendance-system/internal/core/domain"
)

// FetchMonthlyAttendance retrieves the monthly view. An empty employeeID uses
// the self-scoped path; otherwise the privileged per-employee path.
func (c *Client) FetchMonthlyAttendance(ctx context.Context, token, month, employeeID string) (*domain.MonthlyAttendance, error) {
	path := "/api/attendances/" + escape(month) + "/"
	if employeeID != "" {
		path += escape(employeeID) + "/"
	}
	var view domain.MonthlyAttendance
	if err := c.do(ctx, http.MethodGet, path, token, nil, &view, "failed to fetch attendance data"); err != nil {
		return nil, err
	}
	return &view, nil
}

type createAttendanceRequest struct {
	Status     domain.AttendanceStatus `json:"status"`
	EmployeeID string                  `json:"employee_id"`
	Date       string                  `json:"date"`
}

// CreateAttendance persists a new row for a previously implicit-ABSENT day.
func (c *Client) CreateAttendance(ctx context.Context, token, employeeID, date string, status domain.AttendanceStatus) error {
	body := createAttendanceRequest{Status: status, EmployeeID: employeeID, Date: date}
	return c.do(ctx, http.MethodPost, "/api/attendances/", token, body, nil, "failed to update attendance status")
}

type updateAttendanceRequest struct {
	Status domain.AttendanceStatus `json:"status"`
}

// UpdateAttendance patches the status of an existing row in place.
func (c *Client) UpdateAttendance(ctx context.Context, token, employeeID, date string, status domain.AttendanceStatus) error {
	path := "/api/attendances/" + escape(date) + "/" + escape(employeeID) + "/"
	return c.do(ctx, http.MethodPatch, path, token, updateAttendanceRequest{Status: status}, nil, "failed to update attendance status")
}

// DeleteAttendance removes the row, reverting the day to implicit ABSENT.
func (c *Client) DeleteAttendance(ctx context.Context, token, employeeID, date string) error {
	path := "/api/attendances/" + escape(date) + "/" + escape(employeeID) + "/"
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, "failed to delete attendance record")
}
