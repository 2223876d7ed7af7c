package domain

// LeaveStatus represents the lifecycle state of a leave request.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveDenied   LeaveStatus = "DENIED"
)

// LeaveDecision is the outcome a privileged actor applies to a pending request.
type LeaveDecision string

const (
	DecisionApprove LeaveDecision = "APPROVED"
	DecisionDeny    LeaveDecision = "DENIED"
)

// LeaveRequest is a single leave request. The authoritative copy lives on the
// remote service; the cached list is patched in place after a decision.
type LeaveRequest struct {
	UUID            string      `json:"uuid"`
	Employee        Employee    `json:"employee"`
	Date            string      `json:"date"`
	Message         string      `json:"message,omitempty"`
	Status          LeaveStatus `json:"status"`
	ResponseMessage string      `json:"response_message,omitempty"`
}
