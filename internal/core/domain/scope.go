package domain

// Scope is the computed permission set for an actor against a target
// employee's attendance records. It is derived fresh for every operation so
// a logout is observed on the next check, never from a cached copy.
type Scope struct {
	IsSelf    bool
	CanView   bool
	CanMutate bool
}

// ScopeFor computes the actor's scope against targetEmployeeID.
//
// Viewing requires self or privilege. Mutating attendance requires privilege
// AND a target other than the actor: self-mutation of day-to-day status is
// always rejected, independent of employee type.
func ScopeFor(subject Employee, targetEmployeeID string) Scope {
	isSelf := subject.EmployeeID == targetEmployeeID
	return Scope{
		IsSelf:    isSelf,
		CanView:   isSelf || subject.Privileged(),
		CanMutate: subject.Privileged() && !isSelf,
	}
}

// CanDecide reports whether subject may approve or deny the given leave
// request: privileged, not the requester, and the request still pending.
func CanDecide(subject Employee, request LeaveRequest) bool {
	return subject.Privileged() &&
		request.Employee.EmployeeID != subject.EmployeeID &&
		request.Status == LeavePending
}
