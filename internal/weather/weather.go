// Package weather looks up the current air temperature for a city.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the public OpenWeatherMap API root.
const DefaultEndpoint = "https://api.openweathermap.org"

// ErrUnresolved means the temperature for a city could not be determined.
var ErrUnresolved = errors.New("temperature unresolved")

// Client queries the OpenWeatherMap current-weather endpoint.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
	timeout  time.Duration
}

const defaultTimeout = 10 * time.Second

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the API root.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = strings.TrimRight(endpoint, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. The client is copied,
// so a later WithTimeout never touches the caller's value.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewClient creates a Client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	hc := *c.http
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	c.http = &hc
	return c
}

type currentWeather struct {
	Main struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

// CurrentTemperature returns the current temperature in Celsius for city.
func (c *Client) CurrentTemperature(ctx context.Context, city string) (float64, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return 0, fmt.Errorf("%w: empty city", ErrUnresolved)
	}
	if c.apiKey == "" {
		return 0, fmt.Errorf("%w: no api key", ErrUnresolved)
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	u := c.endpoint + "/data/2.5/weather?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnresolved, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnresolved, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("%w: status %d", ErrUnresolved, resp.StatusCode)
	}

	var body currentWeather
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return 0, fmt.Errorf("%w: decoding: %w", ErrUnresolved, err)
	}
	if body.Main.Temp == nil {
		return 0, fmt.Errorf("%w: main.temp missing", ErrUnresolved)
	}
	return *body.Main.Temp, nil
}
