package matcher

import (
	"strings"

	"github.com/gobwas/glob"

	"github.com/gofind-io/gofind/internal/errors"
)

// NameMatcher matches entries whose base name matches a shell glob pattern.
// It backs the -name flag. Only the final path element is matched, so the
// pattern `*.go` matches `src/main.go` but `src/*` matches nothing.
type NameMatcher struct {
	pattern glob.Glob
}

// NewNameMatcher compiles the given glob pattern. Compilation happens once at
// build time so that evaluation per entry is cheap.
func NewNameMatcher(pattern string) (*NameMatcher, error) {
	compiled, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Errorf("invalid pattern %q: %w", pattern, err)
	}

	return &NameMatcher{pattern: compiled}, nil
}

// Matches implements Matcher.
func (m *NameMatcher) Matches(entry Entry) bool {
	return m.pattern.Match(entry.BaseName())
}

// HasSideEffects implements Matcher.
func (m *NameMatcher) HasSideEffects() bool {
	return false
}

// CaselessNameMatcher is the case-insensitive variant of NameMatcher, backing
// the -iname flag. Both the pattern and the candidate base name are folded to
// lower case before matching.
type CaselessNameMatcher struct {
	pattern glob.Glob
}

// NewCaselessNameMatcher compiles the lower-cased form of the given glob pattern.
func NewCaselessNameMatcher(pattern string) (*CaselessNameMatcher, error) {
	compiled, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, errors.Errorf("invalid pattern %q: %w", pattern, err)
	}

	return &CaselessNameMatcher{pattern: compiled}, nil
}

// Matches implements Matcher.
func (m *CaselessNameMatcher) Matches(entry Entry) bool {
	return m.pattern.Match(strings.ToLower(entry.BaseName()))
}

// HasSideEffects implements Matcher.
func (m *CaselessNameMatcher) HasSideEffects() bool {
	return false
}
