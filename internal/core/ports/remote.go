package ports

import (
	"context"

	"github.com/heatseek/attendance-system/internal/core/domain"
)

// LoginResult is the credential exchange outcome. The token is opaque to the
// client; the employee ID echoes back the authenticated subject so the full
// profile can be hydrated in a second call.
type LoginResult struct {
	Token      string
	EmployeeID string
}

// SubmitLeaveInput carries a new leave request. Status is always PENDING on
// submission; the server owns every transition after that.
type SubmitLeaveInput struct {
	EmployeeID string
	Date       string
	Message    string
}

// RemoteAPI is the contract the client core requires from the remote
// persistence service. Every call except Login carries the session token.
// Implementations translate non-2xx responses into *domain.RemoteError with
// the server-provided message when one is present.
type RemoteAPI interface {
	Login(ctx context.Context, employeeID, password string) (*LoginResult, error)
	FetchEmployee(ctx context.Context, token, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, token string) ([]domain.Employee, error)

	// FetchMonthlyAttendance retrieves the month view. An empty employeeID
	// uses the self-scoped path; a non-empty one the privileged per-employee
	// path. Month is yyyy-mm.
	FetchMonthlyAttendance(ctx context.Context, token, month, employeeID string) (*domain.MonthlyAttendance, error)
	CreateAttendance(ctx context.Context, token, employeeID, date string, status domain.AttendanceStatus) error
	UpdateAttendance(ctx context.Context, token, employeeID, date string, status domain.AttendanceStatus) error
	DeleteAttendance(ctx context.Context, token, employeeID, date string) error

	// ListLeaveRequests returns requests ordered by descending date. An empty
	// employeeID lists all requests (privileged scope); a non-empty one
	// filters to that employee.
	ListLeaveRequests(ctx context.Context, token, employeeID string) ([]domain.LeaveRequest, error)
	SubmitLeaveRequest(ctx context.Context, token string, in SubmitLeaveInput) error
	DecideLeaveRequest(ctx context.Context, token, uuid string, decision domain.LeaveDecision, responseMessage string) error
}
