package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/heatseek/attendance-system/internal/core/domain"
	"github.com/heatseek/attendance-system/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Stub remote API
// ---------------------------------------------------------------------------

// remoteCall records one mutation issued against the stub, so tests can
// assert exactly which remote operations were (or were not) reached.
type remoteCall struct {
	op         string // "create", "update", "delete", "decide", "submit"
	employeeID string
	date       string
	status     domain.AttendanceStatus
	uuid       string
	decision   domain.LeaveDecision
	response   string
}

type stubRemote struct {
	loginResult *ports.LoginResult
	loginErr    error

	profiles  map[string]*domain.Employee
	directory []domain.Employee

	// monthly views keyed by "month|employeeID" ("" for the self path)
	monthly  map[string]*domain.MonthlyAttendance
	fetchErr error

	leaves  []domain.LeaveRequest
	listErr error

	mutationErr error
	submitErr   error
	decideErr   error

	// decideHook runs inside DecideLeaveRequest before it returns, letting a
	// test change state while the remote call is in flight.
	decideHook func()

	calls      []remoteCall
	lastToken  string
	fetchCount int
}

func newStubRemote() *stubRemote {
	return &stubRemote{
		profiles: make(map[string]*domain.Employee),
		monthly:  make(map[string]*domain.MonthlyAttendance),
	}
}

func (r *stubRemote) Login(_ context.Context, _, _ string) (*ports.LoginResult, error) {
	if r.loginErr != nil {
		return nil, r.loginErr
	}
	return r.loginResult, nil
}

func (r *stubRemote) FetchEmployee(_ context.Context, token, employeeID string) (*domain.Employee, error) {
	r.lastToken = token
	emp, ok := r.profiles[employeeID]
	if !ok {
		return nil, &domain.RemoteError{StatusCode: 404, Message: "employee not found"}
	}
	clone := *emp
	return &clone, nil
}

func (r *stubRemote) ListEmployees(_ context.Context, token string) ([]domain.Employee, error) {
	r.lastToken = token
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Employee, len(r.directory))
	copy(out, r.directory)
	return out, nil
}

func (r *stubRemote) FetchMonthlyAttendance(_ context.Context, token, month, employeeID string) (*domain.MonthlyAttendance, error) {
	r.lastToken = token
	r.fetchCount++
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	view, ok := r.monthly[month+"|"+employeeID]
	if !ok {
		return nil, &domain.RemoteError{StatusCode: 404, Message: "no attendance data"}
	}
	clone := *view
	clone.Logs = append([]domain.DayRecord(nil), view.Logs...)
	return &clone, nil
}

func (r *stubRemote) CreateAttendance(_ context.Context, token, employeeID, date string, status domain.AttendanceStatus) error {
	r.lastToken = token
	if r.mutationErr != nil {
		return r.mutationErr
	}
	r.calls = append(r.calls, remoteCall{op: "create", employeeID: employeeID, date: date, status: status})
	return nil
}

func (r *stubRemote) UpdateAttendance(_ context.Context, token, employeeID, date string, status domain.AttendanceStatus) error {
	r.lastToken = token
	if r.mutationErr != nil {
		return r.mutationErr
	}
	r.calls = append(r.calls, remoteCall{op: "update", employeeID: employeeID, date: date, status: status})
	return nil
}

func (r *stubRemote) DeleteAttendance(_ context.Context, token, employeeID, date string) error {
	r.lastToken = token
	if r.mutationErr != nil {
		return r.mutationErr
	}
	r.calls = append(r.calls, remoteCall{op: "delete", employeeID: employeeID, date: date})
	return nil
}

func (r *stubRemote) ListLeaveRequests(_ context.Context, token, employeeID string) ([]domain.LeaveRequest, error) {
	r.lastToken = token
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.LeaveRequest
	for _, lr := range r.leaves {
		if employeeID != "" && lr.Employee.EmployeeID != employeeID {
			continue
		}
		out = append(out, lr)
	}
	return out, nil
}

func (r *stubRemote) SubmitLeaveRequest(_ context.Context, token string, in ports.SubmitLeaveInput) error {
	r.lastToken = token
	if r.submitErr != nil {
		return r.submitErr
	}
	r.calls = append(r.calls, remoteCall{op: "submit", employeeID: in.EmployeeID, date: in.Date})
	r.leaves = append(r.leaves, domain.LeaveRequest{
		UUID:     "generated-" + in.Date,
		Employee: domain.Employee{EmployeeID: in.EmployeeID},
		Date:     in.Date,
		Message:  in.Message,
		Status:   domain.LeavePending,
	})
	return nil
}

func (r *stubRemote) DecideLeaveRequest(_ context.Context, token, uuid string, decision domain.LeaveDecision, responseMessage string) error {
	r.lastToken = token
	if r.decideErr != nil {
		return r.decideErr
	}
	r.calls = append(r.calls, remoteCall{op: "decide", uuid: uuid, decision: decision, response: responseMessage})
	if r.decideHook != nil {
		r.decideHook()
	}
	return nil
}

// ---------------------------------------------------------------------------
// Stub durable storage
// ---------------------------------------------------------------------------

type stubStorage struct {
	token    string
	employee *domain.Employee

	saveErr  error
	loadErr  error
	clearErr error
}

func (s *stubStorage) Save(_ context.Context, token string, employee domain.Employee) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	clone := employee
	s.token, s.employee = token, &clone
	return nil
}

func (s *stubStorage) Load(_ context.Context) (string, *domain.Employee, error) {
	if s.loadErr != nil {
		return "", nil, s.loadErr
	}
	if s.token == "" || s.employee == nil {
		return "", nil, nil
	}
	clone := *s.employee
	return s.token, &clone, nil
}

func (s *stubStorage) Clear(_ context.Context) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.token, s.employee = "", nil
	return nil
}

// ---------------------------------------------------------------------------
// Fixed session, for engines that only read the snapshot
// ---------------------------------------------------------------------------

type staticSession struct {
	session domain.Session
}

func sessionFor(e domain.Employee) *staticSession {
	return &staticSession{session: domain.Session{Token: "tok-1", Subject: &e}}
}

func (s *staticSession) Login(context.Context, string, string) (*domain.Employee, error) {
	return s.session.Subject, nil
}
func (s *staticSession) Logout(context.Context) error  { return nil }
func (s *staticSession) Restore(context.Context) error { return nil }
func (s *staticSession) Current() domain.Session       { return s.session }

// ---------------------------------------------------------------------------
// Common fixtures
// ---------------------------------------------------------------------------

var (
	manager = domain.Employee{EmployeeID: "E900", FirstName: "Ada", LastName: "Vale", EmployeeType: domain.TypePrivileged, AvailablePaidLeaves: 12}
	worker  = domain.Employee{EmployeeID: "E001", FirstName: "Sam", LastName: "Reyes", EmployeeType: domain.TypeStandard, AvailablePaidLeaves: 9}
)
