package domain

// EmployeeType distinguishes ordinary employees from those with elevated rights.
type EmployeeType string

const (
	TypeStandard   EmployeeType = "STANDARD"
	TypePrivileged EmployeeType = "PRIVILEGED"
)

// Employee is the profile snapshot fetched at login time. It is immutable for
// the lifetime of a session; profiles of other employees are only re-fetched
// through directory lookups.
type Employee struct {
	EmployeeID          string       `json:"employee_id"`
	FirstName           string       `json:"first_name"`
	LastName            string       `json:"last_name"`
	EmployeeType        EmployeeType `json:"employee_type"`
	AvailablePaidLeaves int          `json:"available_paid_leaves"`
}

// Privileged reports whether the employee may act on other employees' records.
func (e Employee) Privileged() bool {
	return e.EmployeeType == TypePrivileged
}
