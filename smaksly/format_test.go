package smaksly

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimateReadTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "400 words is exactly two minutes",
			content: "<p>" + strings.Repeat("word ", 400) + "</p>",
			want:    "2 min read",
		},
		{
			name:    "single word rounds up to one minute",
			content: "<p>word</p>",
			want:    "1 min read",
		},
		{
			name:    "401 words rounds up to three minutes",
			content: "<p>" + strings.Repeat("word ", 401) + "</p>",
			want:    "3 min read",
		},
		{
			name:    "empty content still reports one minute",
			content: "",
			want:    "1 min read",
		},
		{
			name:    "tags and attributes do not count as words",
			content: `<div class="post"><h1>Title here</h1><img src="x.jpg"/><p>one two three</p></div>`,
			want:    "1 min read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateReadTime(tt.content))
		})
	}
}

func TestStripTagsKeepsTextOnly(t *testing.T) {
	got := stripTags("<p>hello <b>brave</b> world</p>")
	assert.Equal(t, 3, countWords(got))
	assert.NotContains(t, got, "<")
}

func TestFormatBlogDate(t *testing.T) {
	d := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "June 1, 2024", FormatBlogDate(d))
}
