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

const dateLayout = "2006-01-02"

type stagedDecision struct {
	uuid     string
	decision domain.LeaveDecision
}

// LeaveLifecycle governs leave-request submission and the approve/deny flow.
// A decision is a two-step interaction: staging selects the action, a
// distinct confirm step carries the optional response message and only then
// issues the mutation. Confirmed decisions patch the cached entry in place;
// submissions refetch the whole list.
type LeaveLifecycle struct {
	session ports.SessionService
	remote  ports.RemoteAPI
	log     zerolog.Logger

	mu     sync.Mutex
	cache  []domain.LeaveRequest
	staged *stagedDecision
}

func NewLeaveLifecycle(session ports.SessionService, remote ports.RemoteAPI, log zerolog.Logger) *LeaveLifecycle {
	return &LeaveLifecycle{session: session, remote: remote, log: log}
}

// List refetches the actor's requests and replaces the cache. Privileged
// actors see all requests; standard actors only their own. Scoping derives
// purely from the actor's type, never from a directory selection.
func (l *LeaveLifecycle) List(ctx context.Context) ([]domain.LeaveRequest, error) {
	session := l.session.Current()
	if !session.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}

	filterID := session.Subject.EmployeeID
	if session.Subject.Privileged() {
		filterID = ""
	}

	requests, err := l.remote.ListLeaveRequests(ctx, session.Token, filterID)
	if err != nil {
		l.log.Error().Err(err).Msg("leave request fetch failed")
		return nil, err
	}

	l.mu.Lock()
	l.cache = requests
	l.mu.Unlock()
	return l.Cached(), nil
}

// Cached returns a copy of the cached list without touching the network.
func (l *LeaveLifecycle) Cached() []domain.LeaveRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.LeaveRequest, len(l.cache))
	copy(out, l.cache)
	return out
}

// Submit files a new request, always on behalf of the acting subject. The
// server assigns PENDING; success triggers a full list refetch.
func (l *LeaveLifecycle) Submit(ctx context.Context, date, message string) error {
	session := l.session.Current()
	if !session.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return domain.ErrInvalidDate
	}

	err := l.remote.SubmitLeaveRequest(ctx, session.Token, ports.SubmitLeaveInput{
		EmployeeID: session.Subject.EmployeeID,
		Date:       date,
		Message:    message,
	})
	if err != nil {
		l.log.Warn().Err(err).Str("date", date).Msg("leave submission rejected")
		return err
	}

	l.log.Info().Str("employee_id", session.Subject.EmployeeID).Str("date", date).Msg("leave request submitted")

	if _, err := l.List(ctx); err != nil {
		return fmt.Errorf("refresh after submit: %w", err)
	}
	return nil
}

// StageDecision stages an approve/deny for a cached request. The decision is
// validated here so an impossible one is never offered for confirmation, and
// re-validated on confirm against the then-current session.
func (l *LeaveLifecycle) StageDecision(uuid string, decision domain.LeaveDecision) error {
	if decision != domain.DecisionApprove && decision != domain.DecisionDeny {
		return domain.ErrDecisionNotAllowed
	}

	session := l.session.Current()
	if !session.Authenticated() {
		return domain.ErrNotAuthenticated
	}

	request, err := l.cached(uuid)
	if err != nil {
		return err
	}
	if !domain.CanDecide(*session.Subject, *request) {
		return domain.ErrDecisionNotAllowed
	}

	l.mu.Lock()
	l.staged = &stagedDecision{uuid: uuid, decision: decision}
	l.mu.Unlock()
	return nil
}

// CancelDecision discards the staged action with no remote effect.
func (l *LeaveLifecycle) CancelDecision() {
	l.mu.Lock()
	l.staged = nil
	l.mu.Unlock()
}

// ConfirmDecision issues the staged decision with the optional response
// message, then applies a targeted patch to the cached entry: only status and
// response message change, list order and every other entry are preserved.
func (l *LeaveLifecycle) ConfirmDecision(ctx context.Context, responseMessage string) (*domain.LeaveRequest, error) {
	l.mu.Lock()
	staged := l.staged
	l.mu.Unlock()
	if staged == nil {
		return nil, domain.ErrNoStagedDecision
	}

	session := l.session.Current()
	if !session.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}

	request, err := l.cached(staged.uuid)
	if err != nil {
		return nil, err
	}
	if !domain.CanDecide(*session.Subject, *request) {
		return nil, domain.ErrDecisionNotAllowed
	}

	if err := l.remote.DecideLeaveRequest(ctx, session.Token, staged.uuid, staged.decision, responseMessage); err != nil {
		l.log.Error().Err(err).Str("uuid", staged.uuid).Str("decision", string(staged.decision)).Msg("leave decision failed")
		return nil, err
	}

	l.mu.Lock()
	l.staged = nil
	var patched *domain.LeaveRequest
	for i := range l.cache {
		if l.cache[i].UUID == staged.uuid {
			l.cache[i].Status = domain.LeaveStatus(staged.decision)
			l.cache[i].ResponseMessage = responseMessage
			clone := l.cache[i]
			patched = &clone
			break
		}
	}
	l.mu.Unlock()

	// The cache may have been replaced while the remote call was in flight.
	// The decision stuck remotely, but there is no entry left to report.
	if patched == nil {
		l.log.Warn().Str("uuid", staged.uuid).Msg("decided request no longer cached")
		return nil, fmt.Errorf("%w: %s", domain.ErrRequestNotFound, staged.uuid)
	}

	l.log.Info().Str("uuid", staged.uuid).Str("decision", string(staged.decision)).Msg("leave decision applied")
	return patched, nil
}

func (l *LeaveLifecycle) cached(uuid string) (*domain.LeaveRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.cache {
		if l.cache[i].UUID == uuid {
			clone := l.cache[i]
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrRequestNotFound, uuid)
}
