package remote

import (
	"context"
	"net/http"

	"github.com/heatseek/attendance-system/internal/core/domain"
	"github.com/heatseek/attendance-system/internal/core/ports"
)

type loginResponse struct {
	Token      string `json:"token"`
	EmployeeID string `json:"employee_id"`
}

// Login exchanges credentials for an opaque token. The only unauthenticated
// call in the contract.
func (c *Client) Login(ctx context.Context, employeeID, password string) (*ports.LoginResult, error) {
	body := map[string]string{"employee_id": employeeID, "password": password}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/login/", "", body, &resp, "login failed"); err != nil {
		return nil, err
	}
	return &ports.LoginResult{Token: resp.Token, EmployeeID: resp.EmployeeID}, nil
}

// FetchEmployee hydrates a full employee profile by id.
func (c *Client) FetchEmployee(ctx context.Context, token, employeeID string) (*domain.Employee, error) {
	var employee domain.Employee
	path := "/api/employees/" + escape(employeeID) + "/"
	if err := c.do(ctx, http.MethodGet, path, token, nil, &employee, "failed to fetch employee"); err != nil {
		return nil, err
	}
	return &employee, nil
}

type employeeListResponse struct {
	Results []domain.Employee `json:"results"`
}

// ListEmployees returns the full directory. Privileged-scope endpoint; the
// server enforces that independently of the client-side check.
func (c *Client) ListEmployees(ctx context.Context, token string) ([]domain.Employee, error) {
	var resp employeeListResponse
	if err := c.do(ctx, http.MethodGet, "/api/employees/", token, nil, &resp, "failed to fetch employees"); err != nil {
		return nil, err
	}
	return resp.Results, nil
}
