package domain

// AttendanceStatus represents the per-day attendance state of one employee.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusLate    AttendanceStatus = "LATE"
	StatusAbsent  AttendanceStatus = "ABSENT"
	StatusOnLeave AttendanceStatus = "ON_LEAVE"
)

// Valid reports whether s is one of the four known statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusAbsent, StatusOnLeave:
		return true
	}
	return false
}

// DayRecord is one day in the monthly attendance view. A day with no persisted
// row on the remote service is reported as ABSENT; Persisted distinguishes a
// real row from that implicit variant so transition planning is a total match
// rather than a null check.
type DayRecord struct {
	Date    string           `json:"date"`
	Weekday string           `json:"day"`
	Status  AttendanceStatus `json:"status"`
}

// Persisted reports whether the record is backed by a remote row. ABSENT is
// the implicit no-row state: a delete reverts a day to ABSENT and a create is
// the only path out of it.
func (r DayRecord) Persisted() bool {
	return r.Status != StatusAbsent
}

// AttendanceSummary holds the server-computed aggregates attached to a
// monthly view. Never recomputed client-side.
type AttendanceSummary struct {
	AbsentThisMonth     int `json:"absent_this_month"`
	AbsentLastMonth     int `json:"absent_last_month"`
	AvailablePaidLeaves int `json:"available_paid_leaves"`
}

// PaidLeaveBaseline is the yearly paid-leave allotment that "used up" is
// derived from. The figure is fixed upstream, not configurable per employee.
const PaidLeaveBaseline = 15

// UsedPaidLeaves derives the consumed allotment from the remaining balance.
func (s AttendanceSummary) UsedPaidLeaves() int {
	return PaidLeaveBaseline - s.AvailablePaidLeaves
}

// MonthlyAttendance is the full monthly view for one employee, replaced
// wholesale after every successful mutation.
type MonthlyAttendance struct {
	Logs []DayRecord `json:"logs"`
	AttendanceSummary
}

// Mutation identifies the minimal remote operation a transition maps to.
type Mutation int

const (
	// MutationNone means the day already holds the requested status.
	MutationNone Mutation = iota
	// MutationCreate persists a new row for an implicit-ABSENT day.
	MutationCreate
	// MutationUpdate patches the status of an existing row in place.
	MutationUpdate
	// MutationDelete removes the row, reverting the day to implicit ABSENT.
	MutationDelete
)

func (m Mutation) String() string {
	switch m {
	case MutationNone:
		return "none"
	case MutationCreate:
		return "create"
	case MutationUpdate:
		return "update"
	case MutationDelete:
		return "delete"
	}
	return "unknown"
}

// PlanTransition validates a requested status transition and returns the
// remote mutation it maps to. Checks run in order and the first failure wins;
// a failed plan must never reach the network.
func PlanTransition(record DayRecord, target AttendanceStatus, actorID, targetEmployeeID string) (Mutation, error) {
	if actorID == targetEmployeeID {
		return MutationNone, ErrSelfEdit
	}
	if record.Status == StatusOnLeave {
		return MutationNone, ErrOnLeaveLocked
	}
	if target == StatusOnLeave {
		return MutationNone, ErrManualOnLeave
	}
	switch {
	case record.Status == target:
		return MutationNone, nil
	case !record.Persisted():
		return MutationCreate, nil
	case target == StatusAbsent:
		return MutationDelete, nil
	default:
		return MutationUpdate, nil
	}
}
