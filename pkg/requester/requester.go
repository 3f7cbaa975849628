// Package requester performs GET calls against the EnsembleData API.
//
// A Requester owns the credential and the immutable request configuration.
// Each call appends the credential to the parameter set, runs a bounded
// attempt loop with a hard per-attempt deadline, retries only attempts that
// ran out of time, and classifies the received body:
//
//   - a JSON object with a "data" field yields a *Response;
//   - a JSON object with a "detail" field yields an *APIError;
//   - anything else yields a *MalformedResponseError.
//
// When every attempt times out the call fails with a *TimeoutError.
package requester

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ensembledata/ensembledata-go/pkg/params"
)

// Requester is safe for concurrent use.
type Requester struct {
	token      string
	baseURL    string
	timeout    time.Duration
	maxRetries int
	httpClient HTTPClient
	backoff    Backoff
	log        *zap.Logger
	hooks      []Hooks
	userAgent  string
}

// New builds a Requester for token.
func New(token string, opts ...Option) (*Requester, error) {
	cfg := DefaultConfig()
	for _, o := range opts {
		if o != nil {
			o.apply(&cfg)
		}
	}
	return NewFromConfig(token, cfg)
}

// NewFromConfig builds a Requester from an explicit Config.
func NewFromConfig(token string, cfg Config) (*Requester, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("ensembledata: token is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("ensembledata: base URL %q must be absolute", cfg.BaseURL)
	}
	if cfg.MaxNetworkRetries < 1 {
		return nil, fmt.Errorf("ensembledata: max network retries must be at least 1, got %d", cfg.MaxNetworkRetries)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("ensembledata: timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	return &Requester{
		token:      token,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxNetworkRetries,
		httpClient: cfg.HTTPClient,
		backoff:    cfg.Backoff,
		log:        cfg.Logger,
		hooks:      append([]Hooks(nil), cfg.Hooks...),
		userAgent:  cfg.UserAgent,
	}, nil
}

// BaseURL returns the base URL without a trailing slash.
func (r *Requester) BaseURL() string { return r.baseURL }

// Timeout returns the default per-attempt timeout.
func (r *Requester) Timeout() time.Duration { return r.timeout }

// MaxNetworkRetries returns the number of attempts made per call.
func (r *Requester) MaxNetworkRetries() int { return r.maxRetries }

// Get calls GET {baseURL}/{path} with set plus the credential.
func (r *Requester) Get(ctx context.Context, path string, set params.Set, opts ...RequestOption) (*Response, error) {
	co := callOptions{timeout: r.timeout}
	for _, o := range opts {
		if o != nil {
			o(&co)
		}
	}

	requestID := uuid.NewString()
	start := time.Now()
	log := r.log.With(zap.String("path", path), zap.String("request_id", requestID))

	result := ResultInfo{Path: path, RequestID: requestID}
	finish := func(resp *Response, err error) (*Response, error) {
		result.Duration = time.Since(start)
		result.Err = err
		result.Outcome = outcomeOf(err)
		if resp != nil {
			result.StatusCode = resp.StatusCode
			result.UnitsCharged = resp.UnitsCharged
		}
		log.Debug("ensembledata call finished",
			zap.String("outcome", string(result.Outcome)),
			zap.Int("attempts", result.Attempts),
			zap.Int("status", result.StatusCode),
			zap.Int("units_charged", result.UnitsCharged),
			zap.Duration("duration", result.Duration),
		)
		r.resultDone(result)
		return resp, err
	}

	for attempt := 1; attempt <= r.maxRetries; attempt++ {
		result.Attempts = attempt

		// The credential wins over any caller-supplied "token" key.
		query := params.Merge(set, params.Set{TokenParam: r.token})
		rawURL := r.baseURL + "/" + strings.TrimLeft(path, "/") + "?" + query.Encode()

		log.Debug("ensembledata attempt", zap.Int("attempt", attempt), zap.Duration("timeout", co.timeout))
		out := r.do(ctx, rawURL, requestID, co.timeout)
		r.attemptDone(AttemptInfo{
			Path:       path,
			RequestID:  requestID,
			Attempt:    attempt,
			Duration:   out.duration,
			StatusCode: out.status,
			TimedOut:   out.timedOut,
			Err:        out.err,
		})

		switch {
		case out.timedOut:
			log.Debug("ensembledata attempt timed out", zap.Int("attempt", attempt), zap.Duration("duration", out.duration))
			if attempt < r.maxRetries && r.backoff != nil {
				if err := sleep(ctx, r.backoff.Next(attempt)); err != nil {
					return finish(nil, err)
				}
			}
			continue
		case out.err != nil && ctx.Err() != nil:
			return finish(nil, ctx.Err())
		case out.err != nil:
			return finish(nil, &TransportError{Path: path, Attempt: attempt, Err: out.err})
		}

		units, ok := parseUnits(out.header)
		if !ok {
			log.Debug("ensembledata units_charged header missing or invalid; using 0",
				zap.String("header", out.header.Get(UnitsChargedHeader)))
		}
		resp, err := classify(out.status, units, out.body, co.returnTopLevelData)
		if err != nil {
			var ae *APIError
			var me *MalformedResponseError
			switch {
			case errors.As(err, &ae):
				result.StatusCode, result.UnitsCharged = ae.StatusCode, ae.UnitsCharged
			case errors.As(err, &me):
				result.StatusCode, result.UnitsCharged = me.StatusCode, me.UnitsCharged
			}
		}
		return finish(resp, err)
	}

	return finish(nil, &TimeoutError{Path: path, Attempts: r.maxRetries, Timeout: co.timeout})
}

type attemptResult struct {
	status   int
	header   http.Header
	body     []byte
	duration time.Duration
	timedOut bool
	err      error
}

// do runs a single attempt. The deadline covers connect, headers and the full
// body read.
func (r *Requester) do(ctx context.Context, rawURL, requestID string, timeout time.Duration) attemptResult {
	start := time.Now()
	actx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	fail := func(err error) attemptResult {
		res := attemptResult{duration: time.Since(start), err: scrub(err)}
		if ctx.Err() == nil && errors.Is(actx.Err(), context.DeadlineExceeded) {
			res.timedOut = true
		}
		return res
	}

	req, err := http.NewRequestWithContext(actx, http.MethodGet, rawURL, nil)
	if err != nil {
		return attemptResult{duration: time.Since(start), err: scrub(err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fail(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(err)
	}

	return attemptResult{
		status:   resp.StatusCode,
		header:   resp.Header,
		body:     body,
		duration: time.Since(start),
	}
}

// scrub drops the *url.Error wrapper, whose message embeds the request URL and
// therefore the credential.
func scrub(err error) error {
	var ue *url.Error
	for errors.As(err, &ue) && ue.Err != nil {
		err = ue.Err
	}
	return err
}

func outcomeOf(err error) Outcome {
	var (
		ae *APIError
		me *MalformedResponseError
		te *TransportError
	)
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.As(err, &ae):
		return OutcomeAPIError
	case IsTimeout(err):
		return OutcomeTimeout
	case errors.As(err, &me):
		return OutcomeMalformed
	case errors.As(err, &te):
		return OutcomeTransport
	default:
		return OutcomeCanceled
	}
}
