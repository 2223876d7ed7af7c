package domain

import "errors"

var ErrNotAuthenticated = errors.New("not authenticated")
var ErrScopeDenied = errors.New("operation not permitted for this actor")
var ErrSelfEdit = errors.New("attendance self-edit is forbidden")
var ErrOnLeaveLocked = errors.New("record is on leave and immutable")
var ErrManualOnLeave = errors.New("on-leave status is set only through leave approval")
var ErrDecisionNotAllowed = errors.New("leave decision not permitted")
var ErrNoStagedDecision = errors.New("no leave decision staged")
var ErrRequestNotFound = errors.New("leave request not found")
var ErrDayNotInView = errors.New("date not present in the loaded monthly view")
var ErrInvalidMonth = errors.New("month must be formatted yyyy-mm")
var ErrInvalidStatus = errors.New("unknown attendance status")
var ErrInvalidDate = errors.New("date must be formatted yyyy-mm-dd")

// RemoteError carries a failure reported by the remote persistence service:
// either a transport/non-2xx failure or a server-side validation rejection.
// Message holds the server-provided text when one could be decoded, else a
// generic operation-specific fallback.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// Validation reports whether the remote rejection is a client-correctable
// validation failure rather than an infrastructure problem.
func (e *RemoteError) Validation() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
