// Package clientconfig loads EnsembleData client settings from a YAML file
// and ENSEMBLEDATA_* environment variables.
//
//	ENSEMBLEDATA_TOKEN=...                 credential (required)
//	ENSEMBLEDATA_TIMEOUT=30s               per-attempt timeout
//	ENSEMBLEDATA_MAX_NETWORK_RETRIES=5     attempts per call
//	ENSEMBLEDATA_LOG_LEVEL=debug           enables request logging
package clientconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ensembledata/ensembledata-go/pkg/logging"
	"github.com/ensembledata/ensembledata-go/pkg/requester"
)

const envPrefix = "ENSEMBLEDATA"

type Settings struct {
	Token             string          `mapstructure:"token"`
	BaseURL           string          `mapstructure:"base_url"`
	Timeout           time.Duration   `mapstructure:"timeout"`
	MaxNetworkRetries int             `mapstructure:"max_network_retries"`
	UserAgent         string          `mapstructure:"user_agent"`
	Backoff           BackoffSettings `mapstructure:"backoff"`

	// Log enables request logging when Log.Level is set.
	Log logging.LogConfig `mapstructure:"log"`
}

// BackoffSettings configure the pause between timed-out attempts. A zero Base
// keeps immediate retries.
type BackoffSettings struct {
	Base   time.Duration `mapstructure:"base"`
	Max    time.Duration `mapstructure:"max"`
	Jitter float64       `mapstructure:"jitter"`
}

// String hides the token.
func (s Settings) String() string {
	return fmt.Sprintf("Settings{BaseURL:%s Timeout:%s MaxNetworkRetries:%d Token:%s}",
		s.BaseURL, s.Timeout, s.MaxNetworkRetries, redact(s.Token))
}

func redact(token string) string {
	if token == "" {
		return "<unset>"
	}
	return "<redacted>"
}

// newViper registers every key with a default so AutomaticEnv can resolve it
// during Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("token", "")
	v.SetDefault("base_url", requester.DefaultBaseURL)
	v.SetDefault("timeout", requester.DefaultTimeout)
	v.SetDefault("max_network_retries", requester.DefaultMaxNetworkRetries)
	v.SetDefault("user_agent", "")
	v.SetDefault("backoff.base", time.Duration(0))
	v.SetDefault("backoff.max", time.Duration(0))
	v.SetDefault("backoff.jitter", 0.0)
	v.SetDefault("log.level", "")
	v.SetDefault("log.format", "")
	return v
}

// Load reads the YAML file at path, applies ENSEMBLEDATA_* overrides and
// validates the result.
func Load(path string) (*Settings, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("clientconfig: read %q: %w", path, err)
	}
	return finalize(v)
}

// LoadFromEnv builds Settings from ENSEMBLEDATA_* variables only.
func LoadFromEnv() (*Settings, error) {
	return finalize(newViper())
}

func finalize(v *viper.Viper) (*Settings, error) {
	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("clientconfig: unmarshal: %w", err)
	}
	s.Token = strings.TrimSpace(s.Token)
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("clientconfig: %w", err)
	}
	return s, nil
}

func (s *Settings) Validate() error {
	var errs []error
	if s.Token == "" {
		errs = append(errs, errors.New("token is required"))
	}
	if s.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", s.Timeout))
	}
	if s.MaxNetworkRetries < 1 {
		errs = append(errs, fmt.Errorf("max_network_retries must be at least 1, got %d", s.MaxNetworkRetries))
	}
	if s.Backoff.Jitter < 0 || s.Backoff.Jitter > 1 {
		errs = append(errs, fmt.Errorf("backoff.jitter must be within [0,1], got %v", s.Backoff.Jitter))
	}
	if _, err := logging.ParseLevel(s.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Options converts s into requester options. The token is passed separately
// to requester.New.
func (s *Settings) Options() ([]requester.Option, error) {
	opts := []requester.Option{
		requester.WithBaseURL(s.BaseURL),
		requester.WithDefaultTimeout(s.Timeout),
		requester.WithMaxNetworkRetries(s.MaxNetworkRetries),
	}
	if s.UserAgent != "" {
		opts = append(opts, requester.WithUserAgent(s.UserAgent))
	}
	if s.Backoff.Base > 0 {
		opts = append(opts, requester.WithBackoff(requester.ExponentialBackoff{
			Base:   s.Backoff.Base,
			Max:    s.Backoff.Max,
			Jitter: s.Backoff.Jitter,
		}))
	}
	if s.Log.Level != "" {
		l, err := logging.New(s.Log)
		if err != nil {
			return nil, fmt.Errorf("clientconfig: %w", err)
		}
		opts = append(opts, requester.WithLogger(l))
	}
	return opts, nil
}

// NewRequester builds a Requester from s. extra options are applied last.
func (s *Settings) NewRequester(extra ...requester.Option) (*requester.Requester, error) {
	opts, err := s.Options()
	if err != nil {
		return nil, err
	}
	return requester.New(s.Token, append(opts, extra...)...)
}
