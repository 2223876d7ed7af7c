package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/heatseek/attendance-system/internal/core/domain"
	"github.com/heatseek/attendance-system/internal/core/ports"
)

type leaveListResponse struct {
	Results []domain.LeaveRequest `json:"results"`
}

// ListLeaveRequests returns requests ordered by descending date. A non-empty
// employeeID filters to that employee's own requests.
func (c *Client) ListLeaveRequests(ctx context.Context, token, employeeID string) ([]domain.LeaveRequest, error) {
	query := url.Values{"ordering": {"-date"}}
	if employeeID != "" {
		query.Set("employee_id", employeeID)
	}
	var resp leaveListResponse
	path := "/api/leave-requests/?" + query.Encode()
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp, "failed to fetch leave requests"); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

type submitLeaveRequest struct {
	EmployeeID string             `json:"employee_id"`
	Date       string             `json:"date"`
	Message    string             `json:"message"`
	Status     domain.LeaveStatus `json:"status"`
}

// SubmitLeaveRequest files a new request. The status field is always PENDING;
// the server owns every later transition.
func (c *Client) SubmitLeaveRequest(ctx context.Context, token string, in ports.SubmitLeaveInput) error {
	body := submitLeaveRequest{
		EmployeeID: in.EmployeeID,
		Date:       in.Date,
		Message:    in.Message,
		Status:     domain.LeavePending,
	}
	return c.do(ctx, http.MethodPost, "/api/leave-requests/", token, body, nil, "failed to submit leave request")
}

type decideLeaveRequest struct {
	ResponseMessage string `json:"response_message"`
}

// DecideLeaveRequest posts to the approve or deny endpoint for the request.
func (c *Client) DecideLeaveRequest(ctx context.Context, token, uuid string, decision domain.LeaveDecision, responseMessage string) error {
	action := "approve"
	fallback := "failed to approve leave request"
	if decision == domain.DecisionDeny {
		action = "deny"
		fallback = "failed to deny leave request"
	}
	path := "/api/leave-requests/" + escape(uuid) + "/" + action + "/"
	return c.do(ctx, http.MethodPost, path, token, decideLeaveRequest{ResponseMessage: responseMessage}, nil, fallback)
}
