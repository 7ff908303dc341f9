// Package scenario fetches anchorage scenarios from the remote fleet
// service or from a JSON file on disk.
package scenario

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/anchorage/internal/model"
)

var (
	// ErrUnavailable covers network failures and unexpected status codes.
	ErrUnavailable = errors.New("scenario service unavailable")
	// ErrMalformed covers payloads that cannot be decoded or fail validation.
	ErrMalformed = errors.New("malformed scenario")
)

// RandomPath is the endpoint that returns a random scenario.
const RandomPath = "api/fleets/random"

// Client talks to the fleet scenario service.
type Client struct {
	BaseURL  string
	Attempts int           // total tries per request, at least 1
	Delay    time.Duration // first backoff delay, doubled per retry

	http   *http.Client
	logger *log.Logger
}

// NewClient creates a client for baseURL. A nil logger uses the package
// default.
func NewClient(baseURL string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		BaseURL:  baseURL,
		Attempts: 3,
		Delay:    time.Second,
		http:     &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
	}
}

// Random fetches and validates a random scenario.
func (c *Client) Random(ctx context.Context) (*model.Scenario, error) {
	endpoint, err := c.endpoint(RandomPath)
	if err != nil {
		return nil, err
	}

	var sc model.Scenario
	err = c.withRetry(ctx, endpoint, func() error {
		return c.get(ctx, endpoint, &sc)
	})
	if err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	c.logger.Info("scenario fetched",
		"fleets", len(sc.Fleets),
		"vessels", sc.TotalVessels(),
		"anchorage", fmt.Sprintf("%.0fx%.0f", sc.Anchorage.Width, sc.Anchorage.Height))
	return &sc, nil
}

// TryRandom is Random for callers that only care whether a scenario
// arrived. Failures are logged and reported as false.
func (c *Client) TryRandom(ctx context.Context) (*model.Scenario, bool) {
	sc, err := c.Random(ctx)
	if err != nil {
		c.logger.Warn("no scenario available", "err", err)
		return nil, false
	}
	return sc, true
}

func (c *Client) endpoint(path string) (string, error) {
	base, err := url.Parse(c.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("%w: invalid base URL %q", ErrUnavailable, c.BaseURL)
	}
	ref, _ := url.Parse(path)
	if base.Path != "" && base.Path[len(base.Path)-1] != '/' {
		base.Path += "/"
	}
	return base.ResolveReference(ref).String(), nil
}

func (c *Client) get(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("requesting scenario", "url", endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		return &transientError{err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		c.logger.Debug("scenario request failed", "status", resp.StatusCode)
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code >= 500:
		return &transientError{err: fmt.Errorf("%w: status %d", ErrUnavailable, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrUnavailable, code)
	}
}
