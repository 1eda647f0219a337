package footballdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/scorehub/scorehub/internal/platform/logging"
	"github.com/scorehub/scorehub/internal/platform/resilience"
)

const (
	defaultBaseURL = "https://api.football-data.org/v4"
	maxBodyBytes   = 6 << 20
)

// waitSecondsRegex matches the upstream's 429 body, e.g.
// "You reached your request limit. Wait 12 seconds."
var waitSecondsRegex = regexp.MustCompile(`Wait (\d+) seconds`)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	// ProxyURL, when set, prefixes every escaped upstream URL. Only needed
	// when running behind a browser-style CORS proxy; server deployments
	// call the upstream directly.
	ProxyURL       string
	Token          string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client issues read-only requests against the football data API. It does no
// caching; callers own that.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	proxyURL       string
	token          string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
	sleep          func(context.Context, time.Duration) error
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
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		proxyURL:       cfg.ProxyURL,
		token:          cfg.Token,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
		sleep:          sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) requestURL(path string, query url.Values) string {
	full := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		full += "?" + encoded
	}
	if c.proxyURL != "" {
		return c.proxyURL + url.QueryEscape(full)
	}
	return full
}

func (c *Client) doJSON(ctx context.Context, path string, query url.Values, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "football data circuit breaker rejected request", "state", c.breaker.State())
			return crerr.Mark(crerr.New("sport data provider is temporarily unavailable"), ErrNetwork)
		}
	}

	key := path
	if encoded := query.Encode(); encoded != "" {
		key += "?" + encoded
	}

	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.execute(ctx, c.requestURL(path, query))
		if c.circuitEnabled {
			if reqErr != nil && isTransient(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode upstream payload: %w", err)
	}

	return nil
}

// execute performs one request, honouring the upstream's rate limit
// protocol: a 429 advertising "Wait N seconds" is retried exactly once after
// sleeping N+1 seconds. A second failure surfaces as ErrRateLimited with the
// retry response's message; there is never a retry loop.
func (c *Client) execute(ctx context.Context, fullURL string) ([]byte, error) {
	raw, status, err := c.fetch(ctx, fullURL)
	if err != nil {
		return nil, err
	}
	if status >= 200 && status < 300 {
		return raw, nil
	}

	if status == http.StatusTooManyRequests {
		if wait, ok := parseWaitSeconds(bodyMessage(raw)); ok {
			delay := time.Duration(wait+1) * time.Second
			c.logger.WarnContext(ctx, "rate limit hit, retrying once",
				"url", redactURL(fullURL),
				"wait", delay,
			)
			if err := c.sleep(ctx, delay); err != nil {
				return nil, err
			}

			raw, status, err = c.fetch(ctx, fullURL)
			if err != nil {
				return nil, err
			}
			if status >= 200 && status < 300 {
				return raw, nil
			}

			message := bodyMessage(raw)
			if message == "" {
				message = fmt.Sprintf("retry failed with status %d", status)
			}
			return nil, crerr.Mark(crerr.New(message), ErrRateLimited)
		}
	}

	return nil, newAPIError(status, bodyMessage(raw))
}

func (c *Client) fetch(ctx context.Context, fullURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("X-Auth-Token", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, crerr.Mark(crerr.Newf("send request: %v", err), ErrNetwork)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, 0, crerr.Mark(crerr.Newf("read response body: %v", err), ErrNetwork)
	}

	return raw, resp.StatusCode, nil
}

func isTransient(err error) bool {
	if IsNetwork(err) || IsRateLimited(err) {
		return true
	}
	var apiErr *APIError
	if crerr.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}
	return false
}

func bodyMessage(raw []byte) string {
	var envelope errorEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}

func parseWaitSeconds(message string) (int, bool) {
	groups := waitSecondsRegex.FindStringSubmatch(message)
	if len(groups) != 2 {
		return 0, false
	}
	wait, err := strconv.Atoi(groups[1])
	if err != nil {
		return 0, false
	}
	return wait, true
}

func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return parsed.Scheme + "://" + parsed.Host + parsed.Path
}
