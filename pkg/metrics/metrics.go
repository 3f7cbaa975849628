// Package metrics exports Prometheus metrics for EnsembleData calls. A
// Collector is attached to a Requester through its hooks:
//
//	m, err := metrics.NewCollector(prometheus.DefaultRegisterer)
//	r, err := requester.New(token, requester.WithHooks(m.Hooks()))
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ensembledata/ensembledata-go/pkg/requester"
)

const namespace = "ensembledata"

// Attempt result label values.
const (
	AttemptOK      = "ok"
	AttemptTimeout = "timeout"
	AttemptError   = "error"
)

// DefaultDurationBuckets cover fast lookups up to the 600s default timeout.
var DefaultDurationBuckets = []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600}

type Collector struct {
	RequestsTotal   *prometheus.CounterVec
	AttemptsTotal   *prometheus.CounterVec
	UnitsCharged    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewCollector creates the metrics and registers them with reg. A collector
// already registered under the same name is reused.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Finished EnsembleData calls by outcome.",
		}, []string{"path", "outcome"}),
		AttemptsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attempts_total",
			Help:      "HTTP attempts made for EnsembleData calls.",
		}, []string{"path", "result"}),
		UnitsCharged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_charged_total",
			Help:      "Units billed by the API, including failed calls.",
		}, []string{"path"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of EnsembleData calls including retries.",
			Buckets:   DefaultDurationBuckets,
		}, []string{"path"}),
	}

	if reg == nil {
		return c, nil
	}
	var err error
	if c.RequestsTotal, err = register(reg, c.RequestsTotal); err != nil {
		return nil, err
	}
	if c.AttemptsTotal, err = register(reg, c.AttemptsTotal); err != nil {
		return nil, err
	}
	if c.UnitsCharged, err = register(reg, c.UnitsCharged); err != nil {
		return nil, err
	}
	if c.RequestDuration, err = register(reg, c.RequestDuration); err != nil {
		return nil, err
	}
	return c, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, col T) (T, error) {
	if err := reg.Register(col); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return col, fmt.Errorf("metrics: register: %w", err)
	}
	return col, nil
}

// Hooks returns requester hooks feeding c.
func (c *Collector) Hooks() requester.Hooks {
	return requester.Hooks{
		OnAttempt: c.ObserveAttempt,
		OnResult:  c.ObserveResult,
	}
}

func (c *Collector) ObserveAttempt(a requester.AttemptInfo) {
	result := AttemptOK
	switch {
	case a.TimedOut:
		result = AttemptTimeout
	case a.Err != nil:
		result = AttemptError
	}
	c.AttemptsTotal.WithLabelValues(a.Path, result).Inc()
}

func (c *Collector) ObserveResult(r requester.ResultInfo) {
	c.RequestsTotal.WithLabelValues(r.Path, string(r.Outcome)).Inc()
	c.RequestDuration.WithLabelValues(r.Path).Observe(r.Duration.Seconds())
	if r.UnitsCharged > 0 {
		c.UnitsCharged.WithLabelValues(r.Path).Add(float64(r.UnitsCharged))
	}
}
