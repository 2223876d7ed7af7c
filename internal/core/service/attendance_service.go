package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/heatseek/attendance-system/internal/core/domain"
	"github.com/heatseek/attendance-system/internal/core/ports"
)

const monthLayout = "2006-01"

// AttendanceEngine is the state machine governing per-day attendance status.
// It validates a requested transition against the day's current status and
// the actor's scope, issues the minimal remote mutation, and reconciles by
// refetching the full monthly view — the summary aggregates are computed
// server-side and are never patched locally.
type AttendanceEngine struct {
	session ports.SessionService
	remote  ports.RemoteAPI
	log     zerolog.Logger

	mu               sync.Mutex
	selectedEmployee string
	selectedMonth    string
	view             *ports.AttendanceView
}

func NewAttendanceEngine(session ports.SessionService, remote ports.RemoteAPI, log zerolog.Logger) *AttendanceEngine {
	return &AttendanceEngine{session: session, remote: remote, log: log}
}

// SelectEmployee pivots the engine onto another employee's records. The
// directory only offers this to privileged actors; scope is still re-checked
// on every fetch and mutation.
func (e *AttendanceEngine) SelectEmployee(id string) {
	e.mu.Lock()
	e.selectedEmployee = id
	e.mu.Unlock()
}

// SelectMonth pins the month window. Empty reverts to the current month.
func (e *AttendanceEngine) SelectMonth(month string) error {
	if month != "" {
		if _, err := time.Parse(monthLayout, month); err != nil {
			return domain.ErrInvalidMonth
		}
	}
	e.mu.Lock()
	e.selectedMonth = month
	e.mu.Unlock()
	return nil
}

// scoping resolves the effective target employee and month for the current
// session and selections. Scope is evaluated fresh on each call.
func (e *AttendanceEngine) scoping() (session domain.Session, targetID, month string, err error) {
	session = e.session.Current()
	if !session.Authenticated() {
		return session, "", "", domain.ErrNotAuthenticated
	}

	e.mu.Lock()
	targetID = e.selectedEmployee
	month = e.selectedMonth
	e.mu.Unlock()

	if targetID == "" {
		targetID = session.Subject.EmployeeID
	}
	if month == "" {
		month = time.Now().UTC().Format(monthLayout)
	}

	if !domain.ScopeFor(*session.Subject, targetID).CanView {
		return session, "", "", domain.ErrScopeDenied
	}
	return session, targetID, month, nil
}

// Refresh refetches the monthly view for the current scoping and replaces
// local state wholesale. On failure the previous view is left intact.
func (e *AttendanceEngine) Refresh(ctx context.Context) (*ports.AttendanceView, error) {
	session, targetID, month, err := e.scoping()
	if err != nil {
		return nil, err
	}

	// Non-privileged subjects use the self-scoped endpoint; privileged ones
	// always address the target explicitly.
	fetchID := ""
	if session.Subject.Privileged() {
		fetchID = targetID
	}

	data, err := e.remote.FetchMonthlyAttendance(ctx, session.Token, month, fetchID)
	if err != nil {
		e.log.Error().Err(err).Str("month", month).Str("employee_id", targetID).Msg("attendance fetch failed")
		return nil, err
	}

	view := &ports.AttendanceView{Month: month, EmployeeID: targetID, Data: data}
	e.mu.Lock()
	e.view = view
	e.mu.Unlock()
	return view, nil
}

// SetStatus requests a status transition for one day of the scoped employee.
// Rejections (self-edit, on-leave lock, manual ON_LEAVE, missing scope) are
// resolved before any network call. A successful mutation is followed by a
// full refetch of the monthly view.
func (e *AttendanceEngine) SetStatus(ctx context.Context, date string, target domain.AttendanceStatus) (*ports.AttendanceView, domain.Mutation, error) {
	if !target.Valid() {
		return nil, domain.MutationNone, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, target)
	}

	session, targetID, month, err := e.scoping()
	if err != nil {
		return nil, domain.MutationNone, err
	}

	scope := domain.ScopeFor(*session.Subject, targetID)
	if scope.IsSelf {
		return nil, domain.MutationNone, domain.ErrSelfEdit
	}
	if !scope.CanMutate {
		return nil, domain.MutationNone, domain.ErrScopeDenied
	}

	record, err := e.recordFor(ctx, date, targetID, month)
	if err != nil {
		return nil, domain.MutationNone, err
	}

	mutation, err := domain.PlanTransition(*record, target, session.Subject.EmployeeID, targetID)
	if err != nil {
		return nil, domain.MutationNone, err
	}

	switch mutation {
	case domain.MutationNone:
		return e.View(), mutation, nil
	case domain.MutationCreate:
		err = e.remote.CreateAttendance(ctx, session.Token, targetID, date, target)
	case domain.MutationDelete:
		err = e.remote.DeleteAttendance(ctx, session.Token, targetID, date)
	case domain.MutationUpdate:
		err = e.remote.UpdateAttendance(ctx, session.Token, targetID, date, target)
	}
	if err != nil {
		e.log.Error().Err(err).Str("date", date).Str("employee_id", targetID).Str("target", string(target)).Msg("attendance mutation failed")
		return nil, mutation, err
	}

	e.log.Info().Str("date", date).Str("employee_id", targetID).
		Str("from", string(record.Status)).Str("to", string(target)).
		Msg("attendance transition applied")

	view, err := e.Refresh(ctx)
	return view, mutation, err
}

// recordFor finds the day's record in the loaded view. The view is refetched
// when none is loaded yet or when the loaded one belongs to a different
// employee or month than the current scoping, so a transition is never
// planned against a stale day state.
func (e *AttendanceEngine) recordFor(ctx context.Context, date, targetID, month string) (*domain.DayRecord, error) {
	view := e.View()
	if view == nil || view.EmployeeID != targetID || view.Month != month {
		refreshed, err := e.Refresh(ctx)
		if err != nil {
			return nil, err
		}
		view = refreshed
	}

	for i := range view.Data.Logs {
		if view.Data.Logs[i].Date == date {
			record := view.Data.Logs[i]
			return &record, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrDayNotInView, date)
}

// View returns the last successful view, or nil before the first fetch.
func (e *AttendanceEngine) View() *ports.AttendanceView {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view
}
