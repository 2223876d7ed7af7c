package ports

import (
	"context"

	"github.com/heatseek/attendance-system/internal/core/domain"
)

// SessionStorage persists the session across process restarts. Save and Clear
// are atomic over the token+employee pair; Load reports an absent session as
// ("", nil, nil) — a row missing either half is treated as absent, never as a
// partial session.
type SessionStorage interface {
	Save(ctx context.Context, token string, employee domain.Employee) error
	Load(ctx context.Context) (string, *domain.Employee, error)
	Clear(ctx context.Context) error
}
