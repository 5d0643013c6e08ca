// Package catalog provides a client for searching the Google Books volume API.
package catalog

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/rootsapp/roots-server/internal/config"
)

const (
	defaultBaseURL = "https://www.googleapis.com/books/v1/volumes"

	// HTTP client settings
	defaultTimeout = 30 * time.Second
)

// Client is a rate-limited Google Books search client.
type Client struct {
	http     *http.Client
	limiter  *rate.Limiter
	logger   *slog.Logger
	baseURL  string
	language string
	pageSize int
}

// New creates a new catalog client. The Google Books API allows roughly
// 100 unauthenticated requests per 100 seconds; one per second with a
// small burst stays comfortably inside that.
func New(cfg config.CatalogConfig, logger *slog.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter:  rate.NewLimiter(rate.Every(time.Second), 5),
		logger:   logger,
		baseURL:  defaultBaseURL,
		language: cfg.Language,
		pageSize: cfg.PageSize,
	}
}

// NewWithBase creates a catalog client against a non-default endpoint.
// Used for tests and for self-hosted API proxies.
func NewWithBase(cfg config.CatalogConfig, baseURL string, logger *slog.Logger) *Client {
	c := New(cfg, logger)
	c.baseURL = baseURL
	return c
}

// Close releases resources. Currently a no-op but included for interface consistency.
func (c *Client) Close() {
	// No persistent resources to close
}

// wait blocks until the rate limiter allows a request.
func (c *Client) wait(ctx context.Context) error {
	return c.limiter.Wait(ctx)
}
