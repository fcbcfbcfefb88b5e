// Package directory reads staffing records from the hosted relational backend
// through its PostgREST interface.
package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"smarthrms/internal/employees"
	"smarthrms/internal/matching"
	"smarthrms/internal/staffing"
	"smarthrms/internal/tasks"
)

const (
	employeesPath  = "/rest/v1/employees"
	tasksPath      = "/rest/v1/tasks"
	employeeSelect = "*,employee_skills(level,skills(name,category))"
	taskSelect     = "*,task_required_skills(level,importance,skills(name,category))"
	maxErrorBody   = 512
)

// Error is a non-2xx response from the directory.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	return fmt.Sprintf("directory: status %d: %s", e.Status, body)
}

// Options configures a Client.
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Retries int
}

// Client is a read-only directory client. It implements staffing.Source.
type Client struct {
	http *resty.Client
}

var _ staffing.Source = (*Client)(nil)

// New constructs a Client.
func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, errors.New("directory: base URL is required")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	httpClient := resty.New().
		SetBaseURL(base).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(opts.Retries).
		SetRetryWaitTime(200 * time.Millisecond)
	if opts.APIKey != "" {
		httpClient.SetHeader("apikey", opts.APIKey).SetAuthToken(opts.APIKey)
	}
	return &Client{http: httpClient}, nil
}

// EmployeeRecords returns every employee with normalized fields.
func (c *Client) EmployeeRecords(ctx context.Context) ([]employees.Employee, error) {
	body, err := c.get(ctx, employeesPath, map[string]string{
		"select": employeeSelect,
		"order":  "created_at.asc",
	})
	if err != nil {
		return nil, fmt.Errorf("directory: list employees: %w", err)
	}
	out := make([]employees.Employee, 0)
	gjson.Parse(body).ForEach(func(_, value gjson.Result) bool {
		out = append(out, normalizeEmployee(value))
		return true
	})
	return out, nil
}

// TaskRecords returns every task with normalized fields.
func (c *Client) TaskRecords(ctx context.Context) ([]tasks.Task, error) {
	body, err := c.get(ctx, tasksPath, map[string]string{
		"select": taskSelect,
		"order":  "created_at.asc",
	})
	if err != nil {
		return nil, fmt.Errorf("directory: list tasks: %w", err)
	}
	out := make([]tasks.Task, 0)
	gjson.Parse(body).ForEach(func(_, value gjson.Result) bool {
		out = append(out, normalizeTask(value))
		return true
	})
	return out, nil
}

// ListEmployees implements staffing.Source.
func (c *Client) ListEmployees(ctx context.Context) ([]matching.Employee, error) {
	records, err := c.EmployeeRecords(ctx)
	if err != nil {
		return nil, err
	}
	return employees.Profiles(records), nil
}

// ListTasks implements staffing.Source.
func (c *Client) ListTasks(ctx context.Context) ([]matching.Task, error) {
	records, err := c.TaskRecords(ctx)
	if err != nil {
		return nil, err
	}
	return tasks.Requirements(records), nil
}

// GetTask implements staffing.Source.
func (c *Client) GetTask(ctx context.Context, id string) (matching.Task, error) {
	body, err := c.get(ctx, tasksPath, map[string]string{
		"select": taskSelect,
		"id":     "eq." + id,
		"limit":  "1",
	})
	if err != nil {
		return matching.Task{}, fmt.Errorf("directory: get task: %w", err)
	}
	first := gjson.Get(body, "0")
	if !first.Exists() {
		return matching.Task{}, staffing.ErrTaskNotFound
	}
	return normalizeTask(first).Requirement(), nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", &Error{Status: resp.StatusCode(), Body: resp.String()}
	}
	body := resp.String()
	if !gjson.Valid(body) || !gjson.Parse(body).IsArray() {
		return "", errors.New("unexpected response body")
	}
	return body, nil
}
