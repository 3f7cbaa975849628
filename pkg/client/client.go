// Package client exposes the EnsembleData endpoints grouped by platform.
//
//	c, err := client.New(os.Getenv("ENSEMBLEDATA_TOKEN"))
//	if err != nil {
//		return err
//	}
//	res, err := c.TikTok.UserInfoFromUsername(ctx, client.TikTokUserInfoFromUsernameParams{
//		Username: "zachking",
//	})
//
// Every method returns the Request Core's *Response unchanged, or one of its
// typed errors (*APIError, *TimeoutError, ...).
package client

import (
	"context"
	"maps"
	"time"

	"github.com/ensembledata/ensembledata-go/pkg/params"
	"github.com/ensembledata/ensembledata-go/pkg/requester"
)

type (
	Response               = requester.Response
	APIError               = requester.APIError
	TimeoutError           = requester.TimeoutError
	MalformedResponseError = requester.MalformedResponseError
	TransportError         = requester.TransportError
)

// Getter is the single primitive every endpoint is built on.
// *requester.Requester implements it.
type Getter interface {
	Get(ctx context.Context, path string, set params.Set, opts ...requester.RequestOption) (*requester.Response, error)
}

// Client holds one endpoint group per platform. All groups share the same
// Getter and are safe for concurrent use.
type Client struct {
	getter Getter

	Customer  *CustomerEndpoints
	TikTok    *TikTokEndpoints
	YouTube   *YouTubeEndpoints
	Instagram *InstagramEndpoints
	Twitch    *TwitchEndpoints
	Reddit    *RedditEndpoints
	Threads   *ThreadsEndpoints
}

// New creates a Client backed by a new Requester.
func New(token string, opts ...requester.Option) (*Client, error) {
	r, err := requester.New(token, opts...)
	if err != nil {
		return nil, err
	}
	return NewWithGetter(r), nil
}

// NewWithGetter wires every endpoint group to g.
func NewWithGetter(g Getter) *Client {
	e := endpoints{getter: g}
	return &Client{
		getter:    g,
		Customer:  &CustomerEndpoints{e},
		TikTok:    &TikTokEndpoints{e},
		YouTube:   &YouTubeEndpoints{e},
		Instagram: &InstagramEndpoints{e},
		Twitch:    &TwitchEndpoints{e},
		Reddit:    &RedditEndpoints{e},
		Threads:   &ThreadsEndpoints{e},
	}
}

// Request calls an arbitrary path. Keys of args are sent verbatim; nil and
// unset Optional values are dropped.
func (c *Client) Request(ctx context.Context, path string, args map[string]any, opts ...CallOption) (*Response, error) {
	co := collect(opts)
	merged := make(map[string]any, len(co.extra)+len(args))
	maps.Copy(merged, co.extra)
	maps.Copy(merged, args)
	return c.getter.Get(ctx, path, params.FromMap(merged), co.requestOptions(false)...)
}

type callOptions struct {
	extra   map[string]any
	timeout time.Duration
}

// CallOption adjusts a single endpoint call.
type CallOption func(*callOptions)

// WithExtraParams adds query parameters the endpoint method does not expose.
// Endpoint arguments that are set take precedence over extras with the same
// wire key.
func WithExtraParams(extra map[string]any) CallOption {
	return func(o *callOptions) {
		if o.extra == nil {
			o.extra = make(map[string]any, len(extra))
		}
		maps.Copy(o.extra, extra)
	}
}

// WithTimeout overrides the per-attempt timeout for this call only.
func WithTimeout(d time.Duration) CallOption {
	return func(o *callOptions) { o.timeout = d }
}

func collect(opts []CallOption) callOptions {
	var co callOptions
	for _, o := range opts {
		if o != nil {
			o(&co)
		}
	}
	return co
}

func (co callOptions) requestOptions(topLevel bool) []requester.RequestOption {
	var out []requester.RequestOption
	if co.timeout > 0 {
		out = append(out, requester.WithTimeout(co.timeout))
	}
	if topLevel {
		out = append(out, requester.WithTopLevelData())
	}
	return out
}

// endpoints is embedded by every generated endpoint group.
type endpoints struct {
	getter Getter
}

func (e endpoints) get(ctx context.Context, path string, topLevel bool, opts []CallOption, args ...params.Arg) (*Response, error) {
	co := collect(opts)
	set := params.Merge(params.FromMap(co.extra), params.Normalize(args...))
	return e.getter.Get(ctx, path, set, co.requestOptions(topLevel)...)
}
