package service

import (
	"context"
	"errors"
	"testing"

	"github.com/heatseek/attendance-system/internal/core/domain"
)

func seedLeaves() []domain.LeaveRequest {
	return []domain.LeaveRequest{
		{UUID: "u3", Employee: worker, Date: "2024-07-04", Message: "family visit", Status: domain.LeavePending},
		{UUID: "u2", Employee: manager, Date: "2024-06-20", Status: domain.LeavePending},
		{UUID: "u1", Employee: worker, Date: "2024-05-02", Status: domain.LeaveApproved, ResponseMessage: "enjoy"},
	}
}

func TestLeaveLifecycle_List_PrivilegedSeesAll(t *testing.T) {
	remote := newStubRemote()
	remote.leaves = seedLeaves()
	lifecycle := NewLeaveLifecycle(sessionFor(manager), remote, discardLogger)

	requests, err := lifecycle.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(requests) != 3 {
		t.Fatalf("privileged actor must see all requests, got %d", len(requests))
	}
}

func TestLeaveLifecycle_List_StandardSeesOnlyOwn(t *testing.T) {
	remote := newStubRemote()
	remote.leaves = seedLeaves()
	lifecycle := NewLeaveLifecycle(sessionFor(worker), remote, discardLogger)

	requests, err := lifecycle.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(requests) != 2 {
		t.Fatalf("expected only own requests, got %d", len(requests))
	}
	for _, r := range requests {
		if r.Employee.EmployeeID != worker.EmployeeID {
			t.Errorf("foreign request leaked into the list: %+v", r)
		}
	}
}

func TestLeaveLifecycle_Submit_RefetchesList(t *testing.T) {
	remote := newStubRemote()
	lifecycle := NewLeaveLifecycle(sessionFor(worker), remote, discardLogger)

	if err := lifecycle.Submit(context.Background(), "2024-07-04", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cached := lifecycle.Cached()
	if len(cached) != 1 {
		t.Fatalf("expected the new request in the refetched cache, got %d entries", len(cached))
	}
	entry := cached[0]
	if entry.Status != domain.LeavePending || entry.Message != "" || entry.ResponseMessage != "" {
		t.Errorf("fresh submission must be pending with no messages, got %+v", entry)
	}
	if entry.Employee.EmployeeID != worker.EmployeeID {
		t.Errorf("submission must be scoped to the acting subject, got %q", entry.Employee.EmployeeID)
	}
}

func TestLeaveLifecycle_Submit_SurfacesServerDetail(t *testing.T) {
	remote := newStubRemote()
	remote.submitErr = &domain.RemoteError{StatusCode: 400, Message: "A leave request already exists for this date."}
	lifecycle := NewLeaveLifecycle(sessionFor(worker), remote, discardLogger)

	err := lifecycle.Submit(context.Background(), "2024-07-04", "")
	var remoteErr *domain.RemoteError
	if !errors.As(err, &remoteErr) || remoteErr.Message != "A leave request already exists for this date." {
		t.Fatalf("expected the server detail to surface, got %v", err)
	}
}

func TestLeaveLifecycle_Submit_RejectsMalformedDate(t *testing.T) {
	remote := newStubRemote()
	lifecycle := NewLeaveLifecycle(sessionFor(worker), remote, discardLogger)

	if err := lifecycle.Submit(context.Background(), "04-07-2024", ""); !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if len(remote.calls) != 0 {
		t.Fatal("malformed input must not reach the network")
	}
}

func TestLeaveLifecycle_Decision_TargetedPatchPreservesOrder(t *testing.T) {
	remote := newStubRemote()
	remote.leaves = seedLeaves()
	lifecycle := NewLeaveLifecycle(sessionFor(manager), remote, discardLogger)
	if _, err := lifecycle.List(context.Background()); err != nil {
		t.Fatalf("seed list: %v", err)
	}

	if err := lifecycle.StageDecision("u3", domain.DecisionApprove); err != nil {
		t.Fatalf("stage: %v", err)
	}
	patched, err := lifecycle.ConfirmDecision(context.Background(), "approved, enjoy your day")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if patched.Status != domain.LeaveApproved || patched.ResponseMessage != "approved, enjoy your day" {
		t.Errorf("patched entry wrong: %+v", patched)
	}

	if len(remote.calls) != 1 {
		t.Fatalf("expected exactly one decision call, got %d", len(remote.calls))
	}
	if call := remote.calls[0]; call.op != "decide" || call.uuid != "u3" || call.decision != domain.DecisionApprove {
		t.Errorf("wrong remote call: %+v", call)
	}

	cached := lifecycle.Cached()
	if len(cached) != 3 {
		t.Fatalf("list length must be unchanged, got %d", len(cached))
	}
	wantOrder := []string{"u3", "u2", "u1"}
	for i, uuid := range wantOrder {
		if cached[i].UUID != uuid {
			t.Fatalf("list order changed: got %q at %d", cached[i].UUID, i)
		}
	}
	if cached[0].Status != domain.LeaveApproved {
		t.Errorf("decided entry must show the new status, got %s", cached[0].Status)
	}
	if cached[1].Status != domain.LeavePending || cached[2].Status != domain.LeaveApproved || cached[2].ResponseMessage != "enjoy" {
		t.Error("other entries must be untouched by the patch")
	}
}

func TestLeaveLifecycle_Decision_DenyPath(t *testing.T) {
	remote := newStubRemote()
	remote.leaves = seedLeaves()
	lifecycle := NewLeaveLifecycle(sessionFor(manager), remote, discardLogger)
	if _, err := lifecycle.List(context.Background()); err != nil {
		t.Fatalf("seed list: %v", err)
	}

	if err := lifecycle.StageDecision("u3", domain.DecisionDeny); err != nil {
		t.Fatalf("stage: %v", err)
	}
	patched, err := lifecycle.ConfirmDecision(context.Background(), "short staffed that week")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if patched.Status != domain.LeaveDenied {
		t.Errorf("expected DENIED, got %s", patched.Status)
	}
}

func TestLeaveLifecycle_StageDecision_Rejections(t *testing.T) {
	remote := newStubRemote()
	remote.leaves = seedLeaves()

	t.Run("standard actor", func(t *testing.T) {
		lifecycle := NewLeaveLifecycle(sessionFor(worker), remote, discardLogger)
		if _, err := lifecycle.List(context.Background()); err != nil {
			t.Fatalf("seed list: %v", err)
		}
		if err := lifecycle.StageDecision("u3", domain.DecisionApprove); !errors.Is(err, domain.ErrDecisionNotAllowed) {
			t.Fatalf("expected ErrDecisionNotAllowed, got %v", err)
		}
	})

	t.Run("own request", func(t *testing.T) {
		lifecycle := NewLeaveLifecycle(sessionFor(manager), remote, discardLogger)
		if _, err := lifecycle.List(context.Background()); err != nil {
			t.Fatalf("seed list: %v", err)
		}
		if err := lifecycle.StageDecision("u2", domain.DecisionApprove); !errors.Is(err, domain.ErrDecisionNotAllowed) {
			t.Fatalf("expected ErrDecisionNotAllowed, got %v", err)
		}
	})

	t.Run("already decided", func(t *testing.T) {
		lifecycle := NewLeaveLifecycle(sessionFor(manager), remote, discardLogger)
		if _, err := lifecycle.List(context.Background()); err != nil {
			t.Fatalf("seed list: %v", err)
		}
		if err := lifecycle.StageDecision("u1", domain.DecisionApprove); !errors.Is(err, domain.ErrDecisionNotAllowed) {
			t.Fatalf("expected ErrDecisionNotAllowed, got %v", err)
		}
	})

	t.Run("unknown uuid", func(t *testing.T) {
		lifecycle := NewLeaveLifecycle(sessionFor(manager), remote, discardLogger)
		if _, err := lifecycle.List(context.Background()); err != nil {
			t.Fatalf("seed list: %v", err)
		}
		if err := lifecycle.StageDecision("nope", domain.DecisionApprove); !errors.Is(err, domain.ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})
}

func TestLeaveLifecycle_CancelDecision_NoRemoteEffect(t *testing.T) {
	remote := newStubRemote()
	remote.leaves = seedLeaves()
	lifecycle := NewLeaveLifecycle(sessionFor(manager), remote, discardLogger)
	if _, err := lifecycle.List(context.Background()); err != nil {
		t.Fatalf("seed list: %v", err)
	}

	if err := lifecycle.StageDecision("u3", domain.DecisionDeny); err != nil {
		t.Fatalf("stage: %v", err)
	}
	lifecycle.CancelDecision()

	if _, err := lifecycle.ConfirmDecision(context.Background(), ""); !errors.Is(err, domain.ErrNoStagedDecision) {
		t.Fatalf("expected ErrNoStagedDecision after cancel, got %v", err)
	}
	if len(remote.calls) != 0 {
		t.Fatal("a cancelled decision must never reach the network")
	}
	if lifecycle.Cached()[0].Status != domain.LeavePending {
		t.Fatal("cache must be untouched by a cancelled decision")
	}
}

func TestLeaveLifecycle_Decision_CacheReplacedMidFlightReportsNotFound(t *testing.T) {
	remote := newStubRemote()
	remote.leaves = seedLeaves()
	lifecycle := NewLeaveLifecycle(sessionFor(manager), remote, discardLogger)
	if _, err := lifecycle.List(context.Background()); err != nil {
		t.Fatalf("seed list: %v", err)
	}

	if err := lifecycle.StageDecision("u3", domain.DecisionApprove); err != nil {
		t.Fatalf("stage: %v", err)
	}

	// Another goroutine replaces the cache while the decision is in flight.
	remote.decideHook = func() {
		lifecycle.mu.Lock()
		lifecycle.cache = []domain.LeaveRequest{
			{UUID: "u9", Employee: worker, Date: "2024-08-01", Status: domain.LeavePending},
		}
		lifecycle.mu.Unlock()
	}

	patched, err := lifecycle.ConfirmDecision(context.Background(), "ok")
	if !errors.Is(err, domain.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound when the entry vanished, got %v", err)
	}
	if patched != nil {
		t.Fatalf("no patched entry must be reported, got %+v", patched)
	}
	if len(remote.calls) != 1 || remote.calls[0].op != "decide" {
		t.Fatalf("the remote decision must still have been issued, got %+v", remote.calls)
	}
}

func TestLeaveLifecycle_Decision_FailureLeavesCacheUntouched(t *testing.T) {
	remote := newStubRemote()
	remote.leaves = seedLeaves()
	lifecycle := NewLeaveLifecycle(sessionFor(manager), remote, discardLogger)
	if _, err := lifecycle.List(context.Background()); err != nil {
		t.Fatalf("seed list: %v", err)
	}

	if err := lifecycle.StageDecision("u3", domain.DecisionApprove); err != nil {
		t.Fatalf("stage: %v", err)
	}
	remote.decideErr = &domain.RemoteError{StatusCode: 502, Message: "upstream unavailable"}
	if _, err := lifecycle.ConfirmDecision(context.Background(), "ok"); err == nil {
		t.Fatal("expected decision failure to surface")
	}
	if lifecycle.Cached()[0].Status != domain.LeavePending {
		t.Fatal("cache must not be patched when the remote call fails")
	}
}
