package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"record-importer/core/reconcile"

	"github.com/gofiber/fiber/v2"
)

// Fetcher retrieves a whole remote collection.
type Fetcher interface {
	Fetch(ctx context.Context, resource string) ([]reconcile.Record, error)
}

// Client reads collections from the JSONPlaceholder-style REST API.
type Client struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a client from the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: time.Duration(timeout) * time.Second,
	}
}

// Fetch issues GET <base>/<resource> and decodes the JSON array body.
// It never retries.
func (c *Client) Fetch(ctx context.Context, resource string) ([]reconcile.Record, error) {
	url := c.baseURL + "/" + strings.TrimLeft(resource, "/")

	if err := ctx.Err(); err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	agent := fiber.Get(url).
		Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON).
		Timeout(timeout)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, &NetworkError{URL: url, Err: errors.Join(errs...)}
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return nil, &HTTPError{URL: url, StatusCode: code}
	}

	var records []reconcile.Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &DecodeError{URL: url, Err: err}
	}
	for i, rec := range records {
		if rec == nil {
			return nil, &DecodeError{URL: url, Err: fmt.Errorf("element %d is not an object", i)}
		}
	}

	return records, nil
}

// FetchUsers returns the raw user collection.
func (c *Client) FetchUsers(ctx context.Context) ([]reconcile.Record, error) {
	return c.Fetch(ctx, ResourceUsers)
}

// FetchPosts returns the raw post collection.
func (c *Client) FetchPosts(ctx context.Context) ([]reconcile.Record, error) {
	return c.Fetch(ctx, ResourcePosts)
}

// Resource binds one remote collection to the reconcile.Source interface.
func Resource(f Fetcher, resource string) reconcile.Source {
	return reconcile.SourceFunc(func(ctx context.Context) ([]reconcile.Record, error) {
		return f.Fetch(ctx, resource)
	})
}
