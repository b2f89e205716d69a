// Package remote implements storage.ResourceStore against the REST lists
// backend served by package resource.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmynk/shoppinglist/internal/models"
	"github.com/mmynk/shoppinglist/internal/storage"
)

var _ storage.ResourceStore = (*Client)(nil)

// Client talks to a lists backend at a base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client. A zero timeout leaves requests bounded only
// by their context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchAll returns every list.
func (c *Client) FetchAll(ctx context.Context) (models.Collection, error) {
	var out models.Collection
	if err := c.do(ctx, http.MethodGet, "/lists", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = models.Collection{}
	}
	return out, nil
}

// FetchOne returns one list.
func (c *Client) FetchOne(ctx context.Context, id string) (models.ShoppingList, error) {
	var out models.ShoppingList
	if err := c.do(ctx, http.MethodGet, listPath(id), nil, &out); err != nil {
		return models.ShoppingList{}, err
	}
	return out, nil
}

// Create posts a new list.
func (c *Client) Create(ctx context.Context, l models.ShoppingList) error {
	return c.do(ctx, http.MethodPost, "/lists", l, nil)
}

// Patch sends a merge patch.
func (c *Client) Patch(ctx context.Context, id string, p storage.Patch) error {
	return c.do(ctx, http.MethodPatch, listPath(id), p, nil)
}

// Delete removes a list.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, listPath(id), nil, nil)
}

func listPath(id string) string {
	return "/lists/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", storage.ErrNotFound, path)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", storage.ErrExists, path)
	case resp.StatusCode >= 300:
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		msg := strings.TrimSpace(string(text))
		if msg == "" {
			msg = "request failed"
		}
		return fmt.Errorf("%s %s: %s (status %d)", method, path, msg, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
