package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/heatseek/attendance-system/internal/core/domain"
	"github.com/heatseek/attendance-system/internal/core/ports"
)

// EmployeeDirectory lists the employees a privileged actor may pivot into.
// Lookup only; selection state lives in the attendance engine. A short-TTL
// cache may sit in front of the remote list; cache failures degrade to a
// direct lookup.
type EmployeeDirectory struct {
	session ports.SessionService
	remote  ports.RemoteAPI
	cache   ports.DirectoryCache
	log     zerolog.Logger
}

// NewEmployeeDirectory builds the directory. cache may be nil to disable
// caching entirely.
func NewEmployeeDirectory(session ports.SessionService, remote ports.RemoteAPI, cache ports.DirectoryCache, log zerolog.Logger) *EmployeeDirectory {
	return &EmployeeDirectory{session: session, remote: remote, cache: cache, log: log}
}

// List returns all employees. Privileged-only: a standard actor is rejected
// before any network call.
func (d *EmployeeDirectory) List(ctx context.Context) ([]domain.Employee, error) {
	session := d.session.Current()
	if !session.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	if !session.Subject.Privileged() {
		return nil, domain.ErrScopeDenied
	}

	if d.cache != nil {
		cached, err := d.cache.Get(ctx)
		if err != nil {
			d.log.Warn().Err(err).Msg("directory cache read failed, falling through")
		} else if cached != nil {
			return cached, nil
		}
	}

	employees, err := d.remote.ListEmployees(ctx, session.Token)
	if err != nil {
		d.log.Error().Err(err).Msg("employee directory fetch failed")
		return nil, err
	}

	if d.cache != nil {
		if err := d.cache.Set(ctx, employees); err != nil {
			d.log.Warn().Err(err).Msg("directory cache write failed")
		}
	}
	return employees, nil
}
