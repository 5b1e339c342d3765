package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"blossom/internal/domain"

	"github.com/google/uuid"
)

// ErrAccessDenied is returned on a 403 from the catalog store. It means the
// token is invalid, not that the request was malformed.
var ErrAccessDenied = errors.New("store: access denied")

// Client talks to the remote product catalog store. The endpoint is a single
// URL dispatched by method, authorized via the X-Admin-Token header.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTP: &http.Client{}}
}

func (c *Client) ListAll(ctx context.Context, token string) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, c.BaseURL+"?all=true", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts a product without an id; the store assigns one.
func (c *Client) Create(ctx context.Context, token string, p domain.Product) (domain.Product, error) {
	p.ID = 0
	var out domain.Product
	if err := c.do(ctx, http.MethodPost, c.BaseURL, token, &p, &out); err != nil {
		return domain.Product{}, err
	}
	return out, nil
}

func (c *Client) Update(ctx context.Context, token string, p domain.Product) (domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, http.MethodPut, c.BaseURL, token, &p, &out); err != nil {
		return domain.Product{}, err
	}
	return out, nil
}

func (c *Client) Delete(ctx context.Context, token string, id int64) error {
	url := c.BaseURL + "?id=" + strconv.FormatInt(id, 10)
	return c.do(ctx, http.MethodDelete, url, token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, url, token string, body, out any) error {
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("store: encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return fmt.Errorf("store: build request: %w", err)
	}
	req.Header.Set("X-Admin-Token", token)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("store: %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return ErrAccessDenied
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("store: %s returned status %d", method, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("store: decode response: %w", err)
		}
	}
	return nil
}
