package apifootball

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/infootball/internal/domain/competition"
	"github.com/riskibarqy/infootball/internal/platform/logging"
	"github.com/riskibarqy/infootball/internal/platform/resilience"
	"github.com/riskibarqy/infootball/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	defaultBaseURL = "https://v3.football.api-sports.io"
	apiKeyHeader   = "x-apisports-key"
	maxBodyBytes   = 6 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	// Timeout bounds each request. Zero means no timeout.
	Timeout        time.Duration
	FallbackSeason string
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to API-Football and returns normalized domain records.
type Client struct {
	httpClient       *http.Client
	baseURL          string
	apiKey           string
	logger           *logging.Logger
	breaker          *resilience.CircuitBreaker
	competitionRules []fieldRule[leagueItem, competition.Competition]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	fallbackSeason := strings.TrimSpace(cfg.FallbackSeason)
	if fallbackSeason == "" {
		fallbackSeason = competition.DefaultFallbackSeason
	}

	return &Client{
		httpClient:       httpClient,
		baseURL:          baseURL,
		apiKey:           cfg.APIKey,
		logger:           logger,
		breaker:          resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		competitionRules: competitionRules(fallbackSeason),
	}
}

// Fetch issues one GET against endpoint and decodes the envelope's response value into target.
// Any non-2xx status is reported as usecase.ErrUpstreamFailure.
func (c *Client) Fetch(ctx context.Context, endpoint string, params map[string]string, target any) error {
	err := c.breaker.Do(ctx, func(ctx context.Context) error {
		return c.fetch(ctx, endpoint, params, target)
	})
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "endpoint", endpoint, "state", c.breaker.State())
		return crerr.Wrapf(usecase.ErrUpstreamFailure, "endpoint=%s: %v", endpoint, err)
	}
	return err
}

func (c *Client) fetch(ctx context.Context, endpoint string, params map[string]string, target any) error {
	fullURL := c.buildURL(endpoint, params)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return crerr.Wrap(err, "build request")
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("accept", "application/json")

	c.logger.DebugContext(ctx, "api-football request", "url", fullURL, "api_key_length", len(c.apiKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return crerr.Wrapf(usecase.ErrUpstreamFailure, "send request endpoint=%s: %s", endpoint, sanitizeSensitiveText(err.Error(), c.apiKey))
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return crerr.Wrapf(usecase.ErrUpstreamFailure, "read response body endpoint=%s: %v", endpoint, err)
	}

	c.logger.DebugContext(ctx, "api-football response", "endpoint", endpoint, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "api-football request failed",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"body", abbreviateBody(buf.B),
		)
		return fmt.Errorf("%w: api-football endpoint=%s status=%d", usecase.ErrUpstreamFailure, endpoint, resp.StatusCode)
	}

	var env envelope
	if err := sonic.Unmarshal(buf.B, &env); err != nil {
		return crerr.Wrapf(usecase.ErrUpstreamFailure, "decode envelope endpoint=%s: %v", endpoint, err)
	}
	if hasProviderErrors(env.Errors) {
		c.logger.WarnContext(ctx, "api-football reported errors", "endpoint", endpoint, "errors", env.Errors)
	}
	if len(env.Response) == 0 || string(env.Response) == "null" {
		return nil
	}
	if err := sonic.Unmarshal(env.Response, target); err != nil {
		return crerr.Wrapf(usecase.ErrUpstreamFailure, "decode response endpoint=%s: %v", endpoint, err)
	}
	return nil
}

func (c *Client) buildURL(endpoint string, params map[string]string) string {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	fullURL := c.baseURL + endpoint

	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}
	return fullURL
}

// hasProviderErrors reports whether the envelope's errors field is non-empty. The upstream
// sends either an empty array or an object keyed by error name.
func hasProviderErrors(raw any) bool {
	switch v := raw.(type) {
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	case string:
		return v != ""
	default:
		return false
	}
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if value == "" || key == "" {
		return value
	}
	return strings.ReplaceAll(value, key, "REDACTED")
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
