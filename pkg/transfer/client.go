package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the payment provider's REST API.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

var _ Provider = (*Client)(nil)

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-2xx response from the provider. The escrow row stays in
// its transient settlement status until the caller reverts it.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("transfer provider returned %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("transfer provider returned %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return ErrTransferFailed
}

// IsNotFound reports whether err is the provider saying the resource does not
// exist, e.g. a contractor with no payout account yet.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func (c *Client) Release(ctx context.Context, req ReleaseRequest) (*Result, error) {
	var result Result
	err := c.doRequest(ctx, http.MethodPost, "/v1/transfers", req.EscrowTransactionId, req, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Refund(ctx context.Context, req RefundRequest) (*Result, error) {
	var result Result
	err := c.doRequest(ctx, http.MethodPost, "/v1/refunds", req.EscrowTransactionId, req, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateAccountLink(ctx context.Context, contractorID string) (*AccountLink, error) {
	var link AccountLink
	path := fmt.Sprintf("/v1/accounts/%s/links", contractorID)
	err := c.doRequest(ctx, http.MethodPost, path, "", nil, &link)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (c *Client) GetAccountStatus(ctx context.Context, contractorID string) (*AccountStatus, error) {
	var status AccountStatus
	path := fmt.Sprintf("/v1/accounts/%s", contractorID)
	err := c.doRequest(ctx, http.MethodGet, path, "", nil, &status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// doRequest sends one API call and decodes the response into out. A non-empty
// idempotencyKey is forwarded so the provider deduplicates retried money
// movement.
func (c *Client) doRequest(ctx context.Context, method, path, idempotencyKey string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach transfer provider: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(respBody, apiErr); err != nil {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to unmarshal provider response: %w", err)
		}
	}
	return nil
}
