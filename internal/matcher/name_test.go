package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofind-io/gofind/internal/matcher"
)

func TestNameMatcher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pattern  string
		path     string
		expected bool
	}{
		{
			name:     "star glob",
			pattern:  "a*c",
			path:     "testdata/abbbc",
			expected: true,
		},
		{
			name:     "case sensitive",
			pattern:  "a*c",
			path:     "testdata/sub/ABBBC",
			expected: false,
		},
		{
			name:     "exact name",
			pattern:  "abbbc",
			path:     "testdata/abbbc",
			expected: true,
		},
		{
			name:     "single character wildcard",
			pattern:  "?bbbc",
			path:     "testdata/abbbc",
			expected: true,
		},
		{
			name:     "extension glob ignores directories",
			pattern:  "*.go",
			path:     "src/cmd/main.go",
			expected: true,
		},
		{
			name:     "pattern with slash never matches a base name",
			pattern:  "sub/*",
			path:     "testdata/sub/abbbc",
			expected: false,
		},
		{
			name:     "no match",
			pattern:  "*.go",
			path:     "testdata/abbbc",
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := matcher.NewNameMatcher(tt.pattern)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, m.Matches(newFileEntry(tt.path)))
			assert.False(t, m.HasSideEffects())
		})
	}
}

func TestNameMatcherRejectsInvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := matcher.NewNameMatcher("[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")

	_, err = matcher.NewCaselessNameMatcher("[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestCaselessNameMatcher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pattern  string
		path     string
		expected bool
	}{
		{
			name:     "lower pattern matches upper name",
			pattern:  "a*c",
			path:     "testdata/sub/ABBBC",
			expected: true,
		},
		{
			name:     "upper pattern matches lower name",
			pattern:  "A*C",
			path:     "testdata/abbbc",
			expected: true,
		},
		{
			name:     "mixed case exact name",
			pattern:  "AbBbC",
			path:     "testdata/abbbc",
			expected: true,
		},
		{
			name:     "no match regardless of case",
			pattern:  "*.go",
			path:     "testdata/ABBBC",
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := matcher.NewCaselessNameMatcher(tt.pattern)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, m.Matches(newFileEntry(tt.path)))
			assert.False(t, m.HasSideEffects())
		})
	}
}
