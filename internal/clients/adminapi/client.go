// Package adminapi is a thin client for the external admin REST backend.
// The hosted admin panel manages brands, types and motorcycles through
// this API; the client forwards the caller's bearer token unchanged.
package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"ridercritic/internal/config"
	"ridercritic/pkg/logger"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(cfg *config.AdminAPIConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: log,
	}
}

// TokenRequest carries the admin panel login form.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AccountInfo struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ListParams maps onto the backend's offset pagination.
type ListParams struct {
	Skip  int
	Limit int
}

func (p ListParams) query() url.Values {
	values := url.Values{}
	values.Set("skip", strconv.Itoa(p.Skip))
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	return values
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("admin api returned %d: %s", e.StatusCode, e.Body)
}

// GetToken exchanges credentials for a bearer token.
func (c *Client) GetToken(ctx context.Context, username, password string) (*TokenResponse, error) {
	var token TokenResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/token", "", TokenRequest{
		Username: username,
		Password: password,
	}, &token)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Me returns the account behind the given token.
func (c *Client) Me(ctx context.Context, bearerToken string) (*AccountInfo, error) {
	var info AccountInfo
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", bearerToken, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) ListBrands(ctx context.Context, bearerToken string, params ListParams) (json.RawMessage, error) {
	return c.list(ctx, "/api/brands", bearerToken, params)
}

func (c *Client) ListTypes(ctx context.Context, bearerToken string, params ListParams) (json.RawMessage, error) {
	return c.list(ctx, "/api/types", bearerToken, params)
}

func (c *Client) ListMotorcycles(ctx context.Context, bearerToken string, params ListParams) (json.RawMessage, error) {
	return c.list(ctx, "/api/motorcycles", bearerToken, params)
}

func (c *Client) CreateResource(ctx context.Context, path, bearerToken string, body json.RawMessage) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.do(ctx, http.MethodPost, path, bearerToken, body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) UpdateResource(ctx context.Context, path, bearerToken string, body json.RawMessage) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.do(ctx, http.MethodPut, path, bearerToken, body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) DeleteResource(ctx context.Context, path, bearerToken string) error {
	return c.do(ctx, http.MethodDelete, path, bearerToken, nil, nil)
}

func (c *Client) list(ctx context.Context, path, bearerToken string, params ListParams) (json.RawMessage, error) {
	var result json.RawMessage
	fullPath := path + "?" + params.query().Encode()
	if err := c.do(ctx, http.MethodGet, fullPath, bearerToken, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) do(ctx context.Context, method, path, bearerToken string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("admin api request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WithFields(map[string]interface{}{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Warn("Admin API request rejected")
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
