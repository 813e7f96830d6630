package matcher

import (
	"io/fs"
	"path/filepath"
)

// Entry is a single filesystem entry presented to a matcher tree. Path is the
// path as it should appear in output, built from the starting point the walk
// began at, and DirEntry carries the metadata the walk already has so that
// matchers do not need to stat the entry again.
type Entry struct {
	DirEntry fs.DirEntry
	Path     string
}

// BaseName returns the final element of the entry's path.
func (e Entry) BaseName() string {
	return filepath.Base(e.Path)
}

// Matcher is a predicate over filesystem entries. A matcher tree is compiled
// once from the command line and then evaluated against every entry a walk
// produces.
type Matcher interface {
	// Matches reports whether the entry satisfies the predicate. Evaluation
	// may have observable side effects, such as printing the entry's path or
	// running a command, so callers must evaluate entries in the order they
	// should be observed.
	Matches(entry Entry) bool

	// HasSideEffects reports whether evaluating this matcher, or any matcher
	// below it, can produce a side effect. The builder uses this to decide
	// whether an expression needs an implicit print action appended.
	HasSideEffects() bool
}
