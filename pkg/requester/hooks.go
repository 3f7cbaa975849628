package requester

import "time"

// Outcome classifies how a call (or attempt) ended.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeAPIError  Outcome = "api_error"
	OutcomeTimeout   Outcome = "timeout"
	OutcomeMalformed Outcome = "malformed_response"
	OutcomeTransport Outcome = "transport_error"
	OutcomeCanceled  Outcome = "canceled"
)

// AttemptInfo describes one HTTP attempt.
type AttemptInfo struct {
	Path      string
	RequestID string
	Attempt   int
	Duration  time.Duration
	// StatusCode is 0 when no response was received.
	StatusCode int
	TimedOut   bool
	Err        error
}

// ResultInfo describes a finished call.
type ResultInfo struct {
	Path         string
	RequestID    string
	Attempts     int
	Duration     time.Duration
	StatusCode   int
	UnitsCharged int
	Outcome      Outcome
	Err          error
}

// Hooks observe calls. Either field may be nil. Hooks run synchronously on
// the calling goroutine and must not block.
type Hooks struct {
	OnAttempt func(AttemptInfo)
	OnResult  func(ResultInfo)
}

func (r *Requester) attemptDone(info AttemptInfo) {
	for _, h := range r.hooks {
		if h.OnAttempt != nil {
			h.OnAttempt(info)
		}
	}
}

func (r *Requester) resultDone(info ResultInfo) {
	for _, h := range r.hooks {
		if h.OnResult != nil {
			h.OnResult(info)
		}
	}
}
