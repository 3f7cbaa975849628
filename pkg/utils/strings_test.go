package utils

import (
	"testing"
)

func TestRemoveAccents(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "hello"},
		{"café", "cafe"},
		{"açúcar", "acucar"},
		{"São Paulo", "Sao Paulo"},
		{"résumé", "resume"},
		{"naïve", "naive"},
		{"piñata", "pinata"},
	}

	for _, test := range tests {
		result := RemoveAccents(test.input)
		if result != test.expected {
			t.Errorf("RemoveAccents(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"cursor", "cursor"},
		{"oldestCreatetime", "oldest_createtime"},
		{"alternativeMethod", "alternative_method"},
		{"awemeId", "aweme_id"},
		{"getAuthorStats", "get_author_stats"},
		{"already_snake", "already_snake"},
	}

	for _, test := range tests {
		result := SnakeCase(test.input)
		if result != test.expected {
			t.Errorf("SnakeCase(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"name", "name"},
		{"aweme_id", "awemeId"},
		{"n_comments_to_fetch", "nCommentsToFetch"},
		{"secUid", "secUid"},
		{"browseId", "browseId"},
		{"tiktok_user_posts_from_secuid", "tiktokUserPostsFromSecuid"},
		{"_leading", "leading"},
	}

	for _, test := range tests {
		result := CamelCase(test.input)
		if result != test.expected {
			t.Errorf("CamelCase(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestSnakeCaseInvertsCamelCase(t *testing.T) {
	for _, wire := range []string{"oldest_createtime", "max_cursor", "get_additional_info", "depth"} {
		if got := SnakeCase(CamelCase(wire)); got != wire {
			t.Errorf("SnakeCase(CamelCase(%q)) = %q", wire, got)
		}
	}
}

func TestSplitCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"hello", []string{"hello"}},
		{"helloWorld", []string{"hello", "World"}},
		{"XMLHttpRequest", []string{"XML", "Http", "Request"}},
		{"secUid", []string{"sec", "Uid"}},
	}

	for _, test := range tests {
		result := SplitCamelCase(test.input)
		if len(result) != len(test.expected) {
			t.Errorf("SplitCamelCase(%q) = %v, expected %v", test.input, result, test.expected)
			continue
		}
		for i := range result {
			if result[i] != test.expected[i] {
				t.Errorf("SplitCamelCase(%q) = %v, expected %v", test.input, result, test.expected)
				break
			}
		}
	}
}

func TestGoName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hashtag", "Hashtag"},
		{"userPostsFromSecuid", "UserPostsFromSecuid"},
		{"channelIdToUsername", "ChannelIDToUsername"},
		{"secUid", "SecUID"},
		{"awemeIds", "AwemeIDs"},
		{"aweme_ids", "AwemeIDs"},
		{"url", "URL"},
		{"get-used-units", "GetUsedUnits"},
		{"café", "Cafe"},
		{"7days", "N7days"},
	}

	for _, test := range tests {
		result := GoName(test.input)
		if result != test.expected {
			t.Errorf("GoName(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"customer", "customer"},
		{"TikTok", "tik_tok"},
		{"youtube", "youtube"},
		{"Reddit Posts", "reddit_posts"},
	}

	for _, test := range tests {
		result := FileName(test.input)
		if result != test.expected {
			t.Errorf("FileName(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}
