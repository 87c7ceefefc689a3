package keyword_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parley-server/chat-api/internal/domain/keyword"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		expected []string
	}{
		{
			name:     "empty history",
			messages: nil,
			expected: []string{},
		},
		{
			name:     "only stop words",
			messages: []string{"the a an"},
			expected: []string{},
		},
		{
			name:     "frequency ordering",
			messages: []string{"apple apple banana banana banana cherry"},
			expected: []string{"banana", "apple", "cherry"},
		},
		{
			name:     "short tokens are dropped",
			messages: []string{"go api dog cat kubernetes kubernetes"},
			expected: []string{"kubernetes"},
		},
		{
			name:     "punctuation is stripped",
			messages: []string{"docker, docker! compose?"},
			expected: []string{"docker", "compose"},
		},
		{
			name:     "punctuation inside words is removed not split",
			messages: []string{"don't don't don't worry"},
			expected: []string{"dont", "worry"},
		},
		{
			name:     "hyphenated words collapse to one token",
			messages: []string{"state-of-the-art tooling"},
			expected: []string{"stateoftheart", "tooling"},
		},
		{
			name:     "case folded and counted across messages",
			messages: []string{"Postgres tuning", "postgres indexes", "POSTGRES"},
			expected: []string{"postgres", "tuning", "indexes"},
		},
		{
			name:     "ties keep first occurrence order",
			messages: []string{"golang rust python"},
			expected: []string{"golang", "rust", "python"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keyword.Extract(tt.messages)
			if len(tt.expected) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtract_CapsAtTen(t *testing.T) {
	messages := []string{
		"alpha bravo charlie delta echoes foxtrot golfing hotels india juliet kilos limas",
	}
	got := keyword.Extract(messages)
	require.Len(t, got, keyword.MaxKeywords)
}

func TestExtract_NoDuplicatesNoStopWords(t *testing.T) {
	messages := []string{
		"deploy deploy deploy the service with the service mesh",
		"what about service discovery and about deploys",
	}
	got := keyword.Extract(messages)

	seen := make(map[string]bool)
	for _, kw := range got {
		assert.Falsef(t, seen[kw], "duplicate keyword %q", kw)
		seen[kw] = true
		assert.Greaterf(t, len(kw), 3, "short keyword %q", kw)
		assert.Equalf(t, strings.ToLower(kw), kw, "non-lowercase keyword %q", kw)
	}
	for _, stop := range []string{"the", "with", "what", "about"} {
		assert.Falsef(t, seen[stop], "stop word %q in keywords", stop)
	}
}
