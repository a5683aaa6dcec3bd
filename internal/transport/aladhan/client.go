// Package aladhan resolves a user's timezone from coordinates via the
// Aladhan timings API and maps the local hour to a greeting. Every failure
// path falls back to a default, so a greeting lookup can never fail a
// request.
package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/amanahlab/sahabat/internal/metrics"
)

const (
	defaultBaseURL  = "https://api.aladhan.com"
	defaultTimezone = "Asia/Jakarta"
	defaultTimeout  = 3 * time.Second

	// fallbackGreeting is used when even the local clock cannot be resolved.
	fallbackGreeting = "Selamat datang"
)

// Config holds the timezone lookup settings.
type Config struct {
	BaseURL         string
	Timeout         time.Duration
	DefaultTimezone string
	Logger          *zap.Logger
	Now             func() time.Time // test hook, defaults to time.Now
}

// Client looks up timezones with a hard timeout and a guaranteed default.
type Client struct {
	httpClient      *http.Client
	baseURL         string
	defaultTimezone string
	logger          *zap.Logger
	now             func() time.Time
}

// NewClient creates an Aladhan client. Zero-value config fields get the
// production defaults.
func NewClient(cfg *Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	zone := cfg.DefaultTimezone
	if zone == "" {
		zone = defaultTimezone
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Client{
		httpClient:      &http.Client{Timeout: timeout},
		baseURL:         baseURL,
		defaultTimezone: zone,
		logger:          logger,
		now:             now,
	}
}

// timingsResponse mirrors the slice of the Aladhan payload we read.
type timingsResponse struct {
	Data struct {
		Meta struct {
			Timezone string `json:"timezone"`
		} `json:"meta"`
	} `json:"data"`
}

// Timezone returns the IANA zone name for the coordinates. Any failure —
// network, timeout, non-200, bad payload — returns the default zone.
func (c *Client) Timezone(ctx context.Context, lat, lng float64) string {
	url := fmt.Sprintf("%s/v1/timings?latitude=%f&longitude=%f&method=11", c.baseURL, lat, lng)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return c.fallback("build timezone request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fallback("timezone lookup", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return c.fallback("timezone lookup", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return c.fallback("decode timezone response", err)
	}
	if payload.Data.Meta.Timezone == "" {
		return c.fallback("timezone lookup", fmt.Errorf("empty timezone in response"))
	}

	return payload.Data.Meta.Timezone
}

// Greeting implements the chat Greeter contract: resolve the timezone (when
// coordinates are given) and map the current local hour to a time-of-day
// greeting.
func (c *Client) Greeting(ctx context.Context, lat, lng *float64) string {
	zone := c.defaultTimezone
	if lat != nil && lng != nil {
		zone = c.Timezone(ctx, *lat, *lng)
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		c.logger.Warn("unknown timezone", zap.String("zone", zone), zap.Error(err))
		return fallbackGreeting
	}

	switch hour := c.now().In(loc).Hour(); {
	case hour >= 5 && hour < 11:
		return "Selamat pagi"
	case hour >= 11 && hour < 15:
		return "Selamat siang"
	case hour >= 15 && hour < 18:
		return "Selamat sore"
	default:
		return "Selamat malam"
	}
}

func (c *Client) fallback(msg string, err error) string {
	metrics.TimezoneFallbacksTotal.Inc()
	c.logger.Warn(msg+" failed, using default timezone",
		zap.String("default", c.defaultTimezone),
		zap.Error(err),
	)
	return c.defaultTimezone
}
