// Package client is a typed HTTP client for the expense API, used by the
// tracker CLI. Every call is terminal: failures are returned to the caller
// and never retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spendwise/expense-tracker/internal/domain"
)

// StatusError reports a non-success response from the API
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// Client talks to a running expense API server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:3000"
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// List fetches all expenses
func (c *Client) List(ctx context.Context) ([]domain.ExpenseDTO, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/expenses", nil)
	if err != nil {
		return nil, err
	}

	var expenses []domain.ExpenseDTO
	if err := c.do(req, http.StatusOK, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// Create adds a new expense and returns it with its server-assigned id
func (c *Client) Create(ctx context.Context, req domain.CreateExpenseRequest) (*domain.ExpenseDTO, error) {
	httpReq, err := c.newJSONRequest(ctx, http.MethodPost, c.baseURL+"/expenses", req)
	if err != nil {
		return nil, err
	}

	var expense domain.ExpenseDTO
	if err := c.do(httpReq, http.StatusCreated, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// Update applies the given fields to the expense with the given id
func (c *Client) Update(ctx context.Context, id uint, req domain.UpdateExpenseRequest) (*domain.ExpenseDTO, error) {
	url := fmt.Sprintf("%s/expenses/%d", c.baseURL, id)
	httpReq, err := c.newJSONRequest(ctx, http.MethodPut, url, req)
	if err != nil {
		return nil, err
	}

	var expense domain.ExpenseDTO
	if err := c.do(httpReq, http.StatusOK, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// Delete removes the expense with the given id
func (c *Client) Delete(ctx context.Context, id uint) error {
	url := fmt.Sprintf("%s/expenses/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	return c.do(req, http.StatusNoContent, nil)
}

func (c *Client) newJSONRequest(ctx context.Context, method, url string, body interface{}) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, wantStatus int, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return c.statusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var apiErr domain.ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return &StatusError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}
	return &StatusError{StatusCode: resp.StatusCode}
}
