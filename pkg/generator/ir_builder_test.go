package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensembledata/ensembledata-go/pkg/config"
	"github.com/ensembledata/ensembledata-go/pkg/ir"
	"github.com/ensembledata/ensembledata-go/pkg/openapi"
)

const fixture = "../openapi/testdata/openapi.json"

func loadFixture(t *testing.T) *openapi.Document {
	t.Helper()
	doc, err := openapi.LoadDocument(context.Background(), fixture)
	require.NoError(t, err)
	return doc
}

func findEndpoint(t *testing.T, in ir.IR, operationID string) ir.Endpoint {
	t.Helper()
	for _, g := range in.Groups {
		for _, ep := range g.Endpoints {
			if ep.OperationID == operationID {
				return ep
			}
		}
	}
	t.Fatalf("endpoint %s not found", operationID)
	return ir.Endpoint{}
}

func TestBuildIR_GroupsByFirstTagInOrder(t *testing.T) {
	in, err := buildIR(loadFixture(t), config.Client{})
	require.NoError(t, err)

	require.Len(t, in.Groups, 4)
	assert.Equal(t, "customer", in.Groups[0].Tag)
	assert.Equal(t, "Customer", in.Groups[0].Name)
	assert.Equal(t, "tiktok", in.Groups[1].Tag)
	assert.Equal(t, "TikTok", in.Groups[1].Name)
	assert.Equal(t, "youtube", in.Groups[2].Tag)
	assert.Equal(t, "YouTube", in.Groups[2].Name)
	assert.Equal(t, "internal", in.Groups[3].Tag)

	var names []string
	for _, ep := range in.Groups[1].Endpoints {
		names = append(names, ep.FunctionName)
	}
	assert.Equal(t, []string{"HashtagSearch", "KeywordSearch", "MultiPostInfo", "UserPostsFromUsername"}, names)
	assert.Equal(t, 7, in.EndpointCount())
}

func TestBuildIR_Params(t *testing.T) {
	in, err := buildIR(loadFixture(t), config.Client{})
	require.NoError(t, err)

	usage := findEndpoint(t, in, "customer_get_usage")
	assert.Equal(t, "GetUsage", usage.FunctionName)
	assert.Equal(t, []ir.Param{{Name: "date", Wire: "date", Kind: ir.KindString, Required: true}}, usage.Params)

	hashtag := findEndpoint(t, in, "tiktok_hashtag_search")
	require.Len(t, hashtag.Params, 2)
	assert.Equal(t, ir.Param{Name: "hashtag", Wire: "name", Kind: ir.KindString, Required: true}, hashtag.Params[0])
	assert.Equal(t, ir.Param{Name: "cursor", Wire: "cursor", Kind: ir.KindInteger}, hashtag.Params[1])

	keyword := findEndpoint(t, in, "tiktok_keyword_search")
	require.Len(t, keyword.Params, 4)
	assert.Equal(t, ir.KindEnum, keyword.Params[1].Kind)
	assert.True(t, keyword.Params[1].Required)
	assert.Equal(t, []string{`"0"`, `"1"`, `"7"`, `"30"`, `"90"`, `"180"`}, keyword.Params[1].Enum)
	assert.False(t, keyword.Params[2].Required)
	assert.Equal(t, "matchExactly", keyword.Params[3].Name)
	assert.Equal(t, ir.KindBoolean, keyword.Params[3].Kind)

	multi := findEndpoint(t, in, "tiktok_multi_post_info")
	assert.Equal(t, []ir.Param{{
		Name: "awemeIds", Wire: "ids", Kind: ir.KindList, Transform: ir.TransformJoinSemicolon, Required: true,
	}}, multi.Params)

	posts := findEndpoint(t, in, "tiktok_user_posts_from_username")
	assert.True(t, posts.ReturnTopLevelData)
	assert.Equal(t, "cursor", posts.Params[2].Name)
	assert.Equal(t, "start_cursor", posts.Params[2].Wire)
	assert.False(t, keyword.ReturnTopLevelData)

	channel := findEndpoint(t, in, "youtube_channel_id_to_username")
	assert.Equal(t, "ChannelIDToUsername", channel.FunctionName)
	assert.Equal(t, "channelId", channel.Params[0].Name)
	assert.Equal(t, "browseId", channel.Params[0].Wire)

	debug := findEndpoint(t, in, "internal_debug_dump")
	assert.Empty(t, debug.Params)
	assert.Equal(t, []string{"internal", "customer"}, debug.OriginalTags)
}

func TestBuildIR_TopLevelDataFromConfig(t *testing.T) {
	in, err := buildIR(loadFixture(t), config.Client{TopLevelData: []string{"customer_get_usage"}})
	require.NoError(t, err)

	assert.True(t, findEndpoint(t, in, "customer_get_usage").ReturnTopLevelData)
	assert.False(t, findEndpoint(t, in, "tiktok_user_posts_from_username").ReturnTopLevelData)
}

func TestBuildIR_UnknownTypeFails(t *testing.T) {
	spec := `{
  "openapi": "3.0.3",
  "info": {"title": "t", "version": "1"},
  "paths": {
    "/x": {"get": {"tags": ["x"], "operationId": "x_get", "parameters": [
      {"name": "ratio", "in": "query", "schema": {"type": "number"}}
    ], "responses": {"200": {"description": "ok"}}}}
  }
}`
	path := filepath.Join(t.TempDir(), "openapi.json")
	require.NoError(t, os.WriteFile(path, []byte(spec), 0o600))

	doc, err := openapi.LoadDocument(context.Background(), path)
	require.NoError(t, err)
	_, err = buildIR(doc, config.Client{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}

func TestFunctionName(t *testing.T) {
	tests := map[string]string{
		"tiktok_user_posts_from_secuid":  "UserPostsFromSecuid",
		"youtube_channel_id_to_username": "ChannelIDToUsername",
		"customer_get_usage":             "GetUsage",
		"ping":                           "Ping",
	}
	for in, want := range tests {
		assert.Equal(t, want, functionName(in), in)
	}
}

func TestFilterIR(t *testing.T) {
	full, err := buildIR(loadFixture(t), config.Client{})
	require.NoError(t, err)

	filtered, err := filterIR(full, config.Client{ExcludeTags: []string{"^internal$"}})
	require.NoError(t, err)
	require.Len(t, filtered.Groups, 3)
	assert.Equal(t, 6, filtered.EndpointCount())

	filtered, err = filterIR(full, config.Client{IncludeTags: []string{"^customer$"}})
	require.NoError(t, err)
	require.Len(t, filtered.Groups, 2)
	assert.Equal(t, "customer", filtered.Groups[0].Tag)
	assert.Equal(t, "internal", filtered.Groups[1].Tag, "secondary tags count for inclusion")

	_, err = filterIR(full, config.Client{IncludeTags: []string{"("}})
	assert.Error(t, err)
}
