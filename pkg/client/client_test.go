package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensembledata/ensembledata-go/pkg/params"
	"github.com/ensembledata/ensembledata-go/pkg/requester"
)

const testToken = "tok"

type recorded struct {
	path  string
	query url.Values
}

type recorder struct {
	mu   sync.Mutex
	reqs []recorded
}

func (r *recorder) last(t *testing.T) recorded {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.reqs)
	return r.reqs[len(r.reqs)-1]
}

func newTestClient(t *testing.T, body string, opts ...requester.Option) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rec.mu.Lock()
		rec.reqs = append(rec.reqs, recorded{path: req.URL.Path, query: req.URL.Query()})
		rec.mu.Unlock()
		w.Header().Set("units_charged", "1")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := New(testToken, append([]requester.Option{requester.WithBaseURL(srv.URL)}, opts...)...)
	require.NoError(t, err)
	return c, rec
}

func TestEndpoints_WireMapping(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		call      func(c *Client) (*Response, error)
		wantPath  string
		wantQuery url.Values
		// wantData defaults to the nested "data" member.
		wantData string
	}{
		{
			name: "customer usage",
			call: func(c *Client) (*Response, error) {
				return c.Customer.GetUsage(ctx, CustomerGetUsageParams{Date: "2024-01-01"})
			},
			wantPath:  "/customer/get-used-units",
			wantQuery: url.Values{"date": {"2024-01-01"}},
		},
		{
			name: "tiktok hashtag renamed to name, unset cursor dropped",
			call: func(c *Client) (*Response, error) {
				return c.TikTok.HashtagSearch(ctx, TikTokHashtagSearchParams{Hashtag: "magic"})
			},
			wantPath:  "/tt/hashtag/posts",
			wantQuery: url.Values{"name": {"magic"}},
		},
		{
			name: "tiktok keyword search with zero-valued optionals",
			call: func(c *Client) (*Response, error) {
				return c.TikTok.KeywordSearch(ctx, TikTokKeywordSearchParams{
					Keyword:      "tesla",
					Period:       "180",
					Cursor:       params.Some(0),
					MatchExactly: params.Some(false),
				})
			},
			wantPath: "/tt/keyword/search",
			wantQuery: url.Values{
				"name":          {"tesla"},
				"period":        {"180"},
				"cursor":        {"0"},
				"match_exactly": {"false"},
			},
		},
		{
			name: "tiktok user posts cursor maps to start_cursor",
			call: func(c *Client) (*Response, error) {
				return c.TikTok.UserPostsFromUsername(ctx, TikTokUserPostsFromUsernameParams{
					Username:         "zachking",
					Depth:            1,
					Cursor:           params.Some(1700000000),
					OldestCreatetime: params.Some(1600000000),
				})
			},
			wantPath: "/tt/user/posts",
			wantData: `{"data":{"ok":true}}`,
			wantQuery: url.Values{
				"username":          {"zachking"},
				"depth":             {"1"},
				"start_cursor":      {"1700000000"},
				"oldest_createtime": {"1600000000"},
			},
		},
		{
			name: "tiktok secUid keeps its wire casing",
			call: func(c *Client) (*Response, error) {
				return c.TikTok.UserInfoFromSecuid(ctx, TikTokUserInfoFromSecuidParams{
					SecUID:            "MS4wLjABAAAA",
					AlternativeMethod: params.Some(true),
				})
			},
			wantPath:  "/tt/user/info-from-secuid",
			wantQuery: url.Values{"secUid": {"MS4wLjABAAAA"}, "alternative_method": {"true"}},
		},
		{
			name: "tiktok multi post info joins ids",
			call: func(c *Client) (*Response, error) {
				return c.TikTok.MultiPostInfo(ctx, TikTokMultiPostInfoParams{AwemeIDs: []string{"a", "b", "c"}})
			},
			wantPath:  "/tt/post/multi-info",
			wantQuery: url.Values{"ids": {"a;b;c"}},
		},
		{
			name: "tiktok music details sends id",
			call: func(c *Client) (*Response, error) {
				return c.TikTok.MusicDetails(ctx, TikTokMusicDetailsParams{MusicID: "7"})
			},
			wantPath:  "/tt/music/details",
			wantQuery: url.Values{"id": {"7"}},
		},
		{
			name: "tiktok followings page token",
			call: func(c *Client) (*Response, error) {
				return c.TikTok.UserFollowings(ctx, TikTokUserFollowingsParams{
					ID: "1", SecUID: "s", PageToken: params.Some("next"),
				})
			},
			wantPath:  "/tt/user/followings",
			wantQuery: url.Values{"id": {"1"}, "secUid": {"s"}, "page_token": {"next"}},
		},
		{
			name: "youtube channel id maps to browseId",
			call: func(c *Client) (*Response, error) {
				return c.YouTube.ChannelDetailedInfo(ctx, YouTubeChannelDetailedInfoParams{
					ChannelID: "UC123", FromURL: params.Some(true),
				})
			},
			wantPath:  "/youtube/channel/detailed-info",
			wantQuery: url.Values{"browseId": {"UC123"}, "from_url": {"true"}},
		},
		{
			name: "youtube keyword search string cursor",
			call: func(c *Client) (*Response, error) {
				return c.YouTube.KeywordSearch(ctx, YouTubeKeywordSearchParams{
					Keyword: "cats", Depth: 2, Cursor: params.Some("abc"), Sorting: params.Some("views"),
				})
			},
			wantPath: "/youtube/search",
			wantQuery: url.Values{
				"keyword":      {"cats"},
				"depth":        {"2"},
				"start_cursor": {"abc"},
				"sorting":      {"views"},
			},
		},
		{
			name: "instagram user posts",
			call: func(c *Client) (*Response, error) {
				return c.Instagram.UserPosts(ctx, InstagramUserPostsParams{
					UserID: 18527, Depth: 1, ChunkSize: params.Some(10),
				})
			},
			wantPath:  "/instagram/user/posts",
			wantQuery: url.Values{"user_id": {"18527"}, "depth": {"1"}, "chunk_size": {"10"}},
		},
		{
			name: "instagram post details comment count",
			call: func(c *Client) (*Response, error) {
				return c.Instagram.PostInfoAndComments(ctx, InstagramPostInfoAndCommentsParams{
					Code: "CxYz", NumComments: params.Some(25),
				})
			},
			wantPath:  "/instagram/post/details",
			wantQuery: url.Values{"code": {"CxYz"}, "n_comments_to_fetch": {"25"}},
		},
		{
			name: "twitch keyword search",
			call: func(c *Client) (*Response, error) {
				return c.Twitch.KeywordSearch(ctx, TwitchKeywordSearchParams{Keyword: "speedrun", Depth: 1, Type: "videos"})
			},
			wantPath:  "/twitch/search",
			wantQuery: url.Values{"keyword": {"speedrun"}, "depth": {"1"}, "type": {"videos"}},
		},
		{
			name: "reddit subreddit posts",
			call: func(c *Client) (*Response, error) {
				return c.Reddit.SubredditPosts(ctx, RedditSubredditPostsParams{Name: "golang", Sort: "top", Period: "week"})
			},
			wantPath:  "/reddit/subreddit/posts",
			wantQuery: url.Values{"name": {"golang"}, "sort": {"top"}, "period": {"week"}},
		},
		{
			name: "threads user posts",
			call: func(c *Client) (*Response, error) {
				return c.Threads.UserPosts(ctx, ThreadsUserPostsParams{ID: "314", ChunkSize: params.Some(5)})
			},
			wantPath:  "/threads/user/posts",
			wantQuery: url.Values{"id": {"314"}, "chunk_size": {"5"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestClient(t, `{"data":{"ok":true}}`)

			resp, err := tc.call(c)
			require.NoError(t, err)
			wantData := tc.wantData
			if wantData == "" {
				wantData = `{"ok":true}`
			}
			assert.JSONEq(t, wantData, string(resp.Data))
			assert.Equal(t, 1, resp.UnitsCharged)

			got := rec.last(t)
			assert.Equal(t, tc.wantPath, got.path)
			assert.Equal(t, testToken, got.query.Get("token"))
			got.query.Del("token")
			assert.Equal(t, tc.wantQuery, got.query)
		})
	}
}

func TestEndpoints_TopLevelData(t *testing.T) {
	body := `{"data":[{"aweme_id":"1"}],"nextCursor":42}`
	c, _ := newTestClient(t, body)

	byName, err := c.TikTok.UserPostsFromUsername(context.Background(), TikTokUserPostsFromUsernameParams{Username: "a", Depth: 1})
	require.NoError(t, err)
	assert.JSONEq(t, body, string(byName.Data))

	bySecUID, err := c.TikTok.UserPostsFromSecuid(context.Background(), TikTokUserPostsFromSecuidParams{SecUID: "s", Depth: 1})
	require.NoError(t, err)
	assert.JSONEq(t, body, string(bySecUID.Data))

	info, err := c.TikTok.UserInfoFromUsername(context.Background(), TikTokUserInfoFromUsernameParams{Username: "a"})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"aweme_id":"1"}]`, string(info.Data))
}

func TestEndpoints_ExtraParamsPrecedence(t *testing.T) {
	c, rec := newTestClient(t, `{"data":{}}`)

	_, err := c.TikTok.HashtagSearch(context.Background(),
		TikTokHashtagSearchParams{Hashtag: "magic", Cursor: params.Some(20)},
		WithExtraParams(map[string]any{"cursor": 10, "name": "ignored", "region": "us"}),
	)
	require.NoError(t, err)
	assert.Equal(t, url.Values{"name": {"magic"}, "cursor": {"20"}, "region": {"us"}, "token": {testToken}}, rec.last(t).query)

	_, err = c.TikTok.HashtagSearch(context.Background(),
		TikTokHashtagSearchParams{Hashtag: "magic"},
		WithExtraParams(map[string]any{"cursor": 10}),
	)
	require.NoError(t, err)
	assert.Equal(t, "10", rec.last(t).query.Get("cursor"), "absent argument leaves the extra intact")
}

func TestEndpoints_PerCallTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		select {
		case <-time.After(200 * time.Millisecond):
			_, _ = w.Write([]byte(`{"data":{}}`))
		case <-req.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)

	c, err := New(testToken, requester.WithBaseURL(srv.URL), requester.WithMaxNetworkRetries(2))
	require.NoError(t, err)

	_, err = c.Reddit.PostComments(context.Background(), RedditPostCommentsParams{ID: "x"}, WithTimeout(20*time.Millisecond))
	assert.True(t, requester.IsTimeout(err))

	_, err = c.Reddit.PostComments(context.Background(), RedditPostCommentsParams{ID: "x"})
	assert.NoError(t, err)
}

func TestEndpoints_APIErrorPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("units_charged", "1")
		w.WriteHeader(474)
		_, _ = w.Write([]byte(`{"detail":"profile unavailable"}`))
	}))
	t.Cleanup(srv.Close)

	c, err := New(testToken, requester.WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.Instagram.UserInfo(context.Background(), InstagramUserInfoParams{Username: "ghost"})

	var ae *APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 474, ae.StatusCode)
	assert.Equal(t, "profile unavailable", ae.Detail)
	assert.Equal(t, 1, ae.UnitsCharged)
}

func TestClient_Request(t *testing.T) {
	c, rec := newTestClient(t, `{"data":[1,2]}`)

	resp, err := c.Request(context.Background(), "/tt/keyword/full-search", map[string]any{
		"name":    "tesla",
		"period":  "30",
		"country": params.None[string](),
		"skip":    nil,
	}, WithExtraParams(map[string]any{"period": "7", "sorting": "1"}))

	require.NoError(t, err)
	assert.JSONEq(t, `[1,2]`, string(resp.Data))

	got := rec.last(t)
	assert.Equal(t, "/tt/keyword/full-search", got.path)
	assert.Equal(t, url.Values{
		"name":    {"tesla"},
		"period":  {"30"},
		"sorting": {"1"},
		"token":   {testToken},
	}, got.query)
}

type fakeGetter struct {
	path string
	set  params.Set
}

func (f *fakeGetter) Get(_ context.Context, path string, set params.Set, _ ...requester.RequestOption) (*requester.Response, error) {
	f.path, f.set = path, set
	return &requester.Response{StatusCode: http.StatusOK}, nil
}

func TestNewWithGetter(t *testing.T) {
	g := &fakeGetter{}
	c := NewWithGetter(g)

	_, err := c.YouTube.MusicIDToShorts(context.Background(), YouTubeMusicIDToShortsParams{MusicID: "m1"})
	require.NoError(t, err)

	assert.Equal(t, "/youtube/music/id-to-shorts", g.path)
	assert.Equal(t, params.Set{"id": "m1"}, g.set)
}

func TestNew_RejectsEmptyToken(t *testing.T) {
	c, err := New("")
	assert.Error(t, err)
	assert.Nil(t, c)
}
