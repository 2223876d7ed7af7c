package ports

import (
	"context"

	"github.com/heatseek/attendance-system/internal/core/domain"
)

// SessionService owns the process-wide session. It is the single writer;
// every dependent component reads the latest snapshot through Current on each
// operation rather than caching it.
type SessionService interface {
	// Login exchanges credentials for a token, hydrates the subject's full
	// profile, and persists both. On failure the prior session is untouched.
	Login(ctx context.Context, employeeID, password string) (*domain.Employee, error)
	// Logout clears memory and durable storage unconditionally.
	Logout(ctx context.Context) error
	// Restore loads a previously persisted session, if any.
	Restore(ctx context.Context) error
	// Current returns the latest session snapshot.
	Current() domain.Session
}
