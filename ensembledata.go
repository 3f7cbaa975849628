// Package ensembledata is a client for the EnsembleData social media data API.
//
// Quick Start:
//
//	import "github.com/ensembledata/ensembledata-go"
//
//	ed, err := ensembledata.New(os.Getenv("ENSEMBLEDATA_TOKEN"))
//	res, err := ed.TikTok.HashtagSearch(ctx, client.TikTokHashtagSearchParams{
//		Hashtag: "magic",
//		Cursor:  ensembledata.Some(0),
//	})
//	fmt.Println(res.UnitsCharged, string(res.Data))
//
// Every endpoint method sends the token, applies the per-attempt timeout and
// retries attempts that time out. See the client and requester packages for
// the full API, and cmd/edgen for regenerating the endpoint methods.
package ensembledata

import (
	"context"

	"github.com/ensembledata/ensembledata-go/pkg/client"
	"github.com/ensembledata/ensembledata-go/pkg/clientconfig"
	"github.com/ensembledata/ensembledata-go/pkg/generator"
	"github.com/ensembledata/ensembledata-go/pkg/params"
	"github.com/ensembledata/ensembledata-go/pkg/requester"
)

type (
	Client                 = client.Client
	Response               = requester.Response
	APIError               = requester.APIError
	TimeoutError           = requester.TimeoutError
	MalformedResponseError = requester.MalformedResponseError
	TransportError         = requester.TransportError
	Option                 = requester.Option
	CallOption             = client.CallOption
)

// ErrTimeout matches every error caused by all attempts timing out.
var ErrTimeout = requester.ErrTimeout

// New creates a client authenticating with token.
func New(token string, opts ...Option) (*Client, error) {
	return client.New(token, opts...)
}

// NewFromEnv creates a client from ENSEMBLEDATA_* environment variables.
// opts are applied after the environment settings.
func NewFromEnv(opts ...Option) (*Client, error) {
	s, err := clientconfig.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	return newFromSettings(s, opts)
}

// NewFromFile creates a client from a YAML settings file. ENSEMBLEDATA_*
// variables override the file.
func NewFromFile(path string, opts ...Option) (*Client, error) {
	s, err := clientconfig.Load(path)
	if err != nil {
		return nil, err
	}
	return newFromSettings(s, opts)
}

func newFromSettings(s *clientconfig.Settings, opts []Option) (*Client, error) {
	r, err := s.NewRequester(opts...)
	if err != nil {
		return nil, err
	}
	return client.NewWithGetter(r), nil
}

// Some marks an optional endpoint argument as provided.
func Some[T any](v T) params.Optional[T] {
	return params.Some(v)
}

// None leaves an optional endpoint argument out of the request.
func None[T any]() params.Optional[T] {
	return params.None[T]()
}

// AsAPIError returns the API error in err's chain, if any.
func AsAPIError(err error) (*APIError, bool) {
	return requester.AsAPIError(err)
}

// IsTimeout reports whether err is the result of every attempt timing out.
func IsTimeout(err error) bool {
	return requester.IsTimeout(err)
}

// GenerateFromConfig regenerates endpoint methods from an edgen.yaml file.
func GenerateFromConfig(ctx context.Context, configPath string, singleClient ...string) error {
	return generator.GenerateFromConfig(ctx, configPath, singleClient...)
}

// ValidateSpec validates an OpenAPI document file or URL.
func ValidateSpec(ctx context.Context, specPath string) error {
	return generator.ValidateSpec(ctx, specPath)
}
