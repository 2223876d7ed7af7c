package ports

import (
	"context"

	"github.com/heatseek/attendance-system/internal/core/domain"
)

// DirectoryService supplies the employees a privileged actor may pivot into.
// Pure lookup, no mutation.
type DirectoryService interface {
	List(ctx context.Context) ([]domain.Employee, error)
}

// DirectoryCache is an optional short-TTL cache in front of the employee
// directory. Get reports a miss as (nil, nil); cache failures degrade to a
// direct lookup, never to an error surfaced to the caller.
type DirectoryCache interface {
	Get(ctx context.Context) ([]domain.Employee, error)
	Set(ctx context.Context, employees []domain.Employee) error
}
