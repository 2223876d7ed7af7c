package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/heatseek/attendance-system/internal/core/domain"
	"github.com/heatseek/attendance-system/internal/core/ports"
)

// SessionStore owns the process-wide session: the remote API token plus the
// authenticated subject's profile. It is the only writer; dependents read the
// latest snapshot through Current on every operation.
type SessionStore struct {
	remote  ports.RemoteAPI
	storage ports.SessionStorage
	log     zerolog.Logger

	mu      sync.RWMutex
	session domain.Session
}

func NewSessionStore(remote ports.RemoteAPI, storage ports.SessionStorage, log zerolog.Logger) *SessionStore {
	return &SessionStore{remote: remote, storage: storage, log: log}
}

// Login exchanges credentials for a token, hydrates the full profile with
// that token, and persists the pair. The in-memory session is only replaced
// once durable storage has accepted the new one, so a storage failure leaves
// the prior session intact.
func (s *SessionStore) Login(ctx context.Context, employeeID, password string) (*domain.Employee, error) {
	if employeeID == "" || password == "" {
		return nil, &domain.RemoteError{StatusCode: 400, Message: "employee id and password are required"}
	}

	result, err := s.remote.Login(ctx, employeeID, password)
	if err != nil {
		s.log.Warn().Err(err).Str("employee_id", employeeID).Msg("login rejected")
		return nil, err
	}

	employee, err := s.remote.FetchEmployee(ctx, result.Token, result.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("hydrate profile: %w", err)
	}

	if err := s.storage.Save(ctx, result.Token, *employee); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.session = domain.Session{Token: result.Token, Subject: employee}
	s.mu.Unlock()

	s.log.Info().Str("employee_id", employee.EmployeeID).Str("type", string(employee.EmployeeType)).Msg("session opened")
	return employee, nil
}

// Logout clears the in-memory session unconditionally, then durable storage.
// Any view relying on the old session observes it gone on its next check.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.session = domain.Session{}
	s.mu.Unlock()

	if err := s.storage.Clear(ctx); err != nil {
		return fmt.Errorf("clear session storage: %w", err)
	}
	s.log.Info().Msg("session closed")
	return nil
}

// Restore loads a persisted session on startup. A row missing either the
// token or a well-formed profile yields an absent session, never a partial
// one. Storage failures leave the in-memory state untouched.
func (s *SessionStore) Restore(ctx context.Context) error {
	token, employee, err := s.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("load session storage: %w", err)
	}
	if token == "" || employee == nil {
		return nil
	}

	s.mu.Lock()
	s.session = domain.Session{Token: token, Subject: employee}
	s.mu.Unlock()

	s.log.Info().Str("employee_id", employee.EmployeeID).Msg("session restored")
	return nil
}

// Current returns the latest session snapshot.
func (s *SessionStore) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}
