package ports

import (
	"context"

	"github.com/heatseek/attendance-system/internal/core/domain"
)

// LeaveService governs leave-request creation and the two-step approve/deny
// flow. Decisions reconcile the cached list with a targeted patch instead of
// a full reload; submissions trigger a full list refetch.
type LeaveService interface {
	// List refetches requests for the actor's scope (all when privileged,
	// own otherwise) ordered by descending date, and replaces the cache.
	List(ctx context.Context) ([]domain.LeaveRequest, error)
	// Cached returns the current cached list without a network call.
	Cached() []domain.LeaveRequest
	// Submit files a new request on behalf of the acting subject.
	Submit(ctx context.Context, date, message string) error
	// StageDecision stages an approve/deny for a cached request. Nothing is
	// sent until ConfirmDecision; CancelDecision discards the staged action.
	StageDecision(uuid string, decision domain.LeaveDecision) error
	ConfirmDecision(ctx context.Context, responseMessage string) (*domain.LeaveRequest, error)
	CancelDecision()
}
