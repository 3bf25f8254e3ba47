package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	type TestCase struct {
		description string
		content     string
		want        []string
	}

	testCases := []TestCase{
		{
			description: "single word",
			content:     "<ping",
			want:        []string{"<ping"},
		},
		{
			description: "command with arguments",
			content:     "<weather New York",
			want:        []string{"<weather", "New", "York"},
		},
		{
			description: "consecutive spaces keep empty tokens",
			content:     "<help  ping",
			want:        []string{"<help", "", "ping"},
		},
		{
			description: "empty content",
			content:     "",
			want:        []string{""},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.want, Tokenize(testCase.content))
		})
	}
}

func TestStripPrefix(t *testing.T) {
	type TestCase struct {
		description string
		token       string
		prefix      string
		want        string
		wantOK      bool
	}

	testCases := []TestCase{
		{
			description: "strips single character prefix",
			token:       "<ping",
			prefix:      "<",
			want:        "ping",
			wantOK:      true,
		},
		{
			description: "prefix compare ignores case",
			token:       "BOT!help",
			prefix:      "bot!",
			want:        "help",
			wantOK:      true,
		},
		{
			description: "bare prefix leaves empty name",
			token:       "<",
			prefix:      "<",
			want:        "",
			wantOK:      true,
		},
		{
			description: "missing prefix",
			token:       "ping",
			prefix:      "<",
			wantOK:      false,
		},
		{
			description: "token shorter than prefix",
			token:       "b",
			prefix:      "bot!",
			wantOK:      false,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			got, ok := StripPrefix(testCase.token, testCase.prefix)

			assert.Equal(t, testCase.wantOK, ok)
			assert.Equal(t, testCase.want, got)
		})
	}
}
