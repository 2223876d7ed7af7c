package ports

import (
	"context"

	"github.com/heatseek/attendance-system/internal/core/domain"
)

// AttendanceView is the engine's local state snapshot: the last successfully
// fetched monthly view plus the effective scoping that produced it.
type AttendanceView struct {
	Month      string
	EmployeeID string
	Data       *domain.MonthlyAttendance
}

// AttendanceService is the state machine governing per-day attendance status.
// The effective target employee is the directory selection when set, else the
// acting subject; the effective month is the explicit selection when set,
// else the current calendar month.
type AttendanceService interface {
	// SelectEmployee pivots the engine onto another employee's records.
	// An empty id reverts to the acting subject.
	SelectEmployee(id string)
	// SelectMonth pins the month window (yyyy-mm). An empty month reverts to
	// the current calendar month.
	SelectMonth(month string) error
	// Refresh refetches the monthly view for the current scoping, replacing
	// local state wholesale. On failure the prior view is left intact.
	Refresh(ctx context.Context) (*AttendanceView, error)
	// SetStatus validates the transition for the day's record and issues the
	// minimal remote mutation, then refetches. Scope and state-machine
	// rejections never reach the network. The returned mutation tells the
	// caller what was issued; MutationNone means the day already held the
	// requested status and nothing was sent.
	SetStatus(ctx context.Context, date string, target domain.AttendanceStatus) (*AttendanceView, domain.Mutation, error)
	// View returns the last successful view without touching the network.
	View() *AttendanceView
}
