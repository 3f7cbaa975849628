package requester

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the EnsembleData API root.
	DefaultBaseURL = "https://ensembledata.com/apis"

	// DefaultTimeout bounds a single attempt when no override is given.
	DefaultTimeout = 600 * time.Second

	// DefaultMaxNetworkRetries is the number of attempts made before a call
	// fails with a TimeoutError.
	DefaultMaxNetworkRetries = 3

	// TokenParam is the query key carrying the credential.
	TokenParam = "token"

	// UnitsChargedHeader carries the number of billed units for a call.
	UnitsChargedHeader = "units_charged"

	// RequestIDHeader carries the per-call correlation id.
	RequestIDHeader = "X-Request-Id"

	defaultUserAgent = "ensembledata-go"
)

// HTTPClient is the subset of *http.Client used by the Requester.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Requester. Use DefaultConfig() as a baseline.
type Config struct {
	// BaseURL is the API root; paths are joined to it with a single '/'.
	BaseURL string

	// Timeout is the hard deadline for each attempt (connect + full response).
	Timeout time.Duration

	// MaxNetworkRetries is the total number of attempts per call. Only attempts
	// that time out are retried.
	MaxNetworkRetries int

	// HTTPClient performs the requests. Its own Timeout should be zero; the
	// per-attempt deadline is carried by the request context.
	HTTPClient HTTPClient

	// Backoff is the pause between a timed-out attempt and the next one.
	// Nil retries immediately.
	Backoff Backoff

	// Logger receives debug output. Nil means no logging.
	Logger *zap.Logger

	// Hooks are notified of every attempt and every finished call.
	Hooks []Hooks

	// UserAgent is sent on every request.
	UserAgent string
}

// DefaultConfig returns the configuration a client gets when no options are set.
func DefaultConfig() Config {
	return Config{
		BaseURL:           DefaultBaseURL,
		Timeout:           DefaultTimeout,
		MaxNetworkRetries: DefaultMaxNetworkRetries,
		HTTPClient:        &http.Client{},
		UserAgent:         defaultUserAgent,
	}
}

type Option interface{ apply(*Config) }

type optionFunc func(*Config)

func (f optionFunc) apply(c *Config) { f(c) }

func WithBaseURL(baseURL string) Option {
	return optionFunc(func(c *Config) { c.BaseURL = baseURL })
}

// WithDefaultTimeout sets the per-attempt timeout used when a call gives no override.
func WithDefaultTimeout(d time.Duration) Option {
	return optionFunc(func(c *Config) { c.Timeout = d })
}

func WithMaxNetworkRetries(n int) Option {
	return optionFunc(func(c *Config) { c.MaxNetworkRetries = n })
}

func WithHTTPClient(hc HTTPClient) Option {
	return optionFunc(func(c *Config) { c.HTTPClient = hc })
}

func WithBackoff(b Backoff) Option {
	return optionFunc(func(c *Config) { c.Backoff = b })
}

func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *Config) { c.Logger = l })
}

// WithHooks appends h to the hooks run for every call.
func WithHooks(h Hooks) Option {
	return optionFunc(func(c *Config) { c.Hooks = append(c.Hooks, h) })
}

func WithUserAgent(ua string) Option {
	return optionFunc(func(c *Config) { c.UserAgent = ua })
}

// callOptions are the per-call settings.
type callOptions struct {
	timeout            time.Duration
	returnTopLevelData bool
}

// RequestOption adjusts a single Get call.
type RequestOption func(*callOptions)

// WithTimeout overrides the per-attempt timeout for this call only.
// Non-positive values are ignored.
func WithTimeout(d time.Duration) RequestOption {
	return func(o *callOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithTopLevelData makes Response.Data hold the whole JSON body instead of its
// nested "data" field. Used by endpoints that return pagination cursors next
// to the payload.
func WithTopLevelData() RequestOption {
	return func(o *callOptions) { o.returnTopLevelData = true }
}
