// Package walker traverses directory trees and feeds every entry to a
// compiled matcher tree.
package walker

import (
	"io/fs"
	"os"
	"strings"

	"github.com/gofind-io/gofind/internal/errors"
	"github.com/gofind-io/gofind/internal/matcher"
	"github.com/gofind-io/gofind/options"
)

// Walker visits every entry below a set of starting points, exactly once and
// in a deterministic order, and evaluates the matcher tree against each one.
// Symbolic links are reported as themselves and never followed, so the walk
// terminates even on link cycles.
type Walker struct {
	opts *options.Options
}

// New creates a Walker driven by the given options. The options are read per
// entry, so the DepthFirst flag applies even though the expression compiler
// sets it after the Walker has been created.
func New(opts *options.Options) *Walker {
	return &Walker{opts: opts}
}

// Walk traverses each starting point in order and evaluates the matcher tree
// against every entry found. Errors do not stop the walk: an unreadable
// starting point or directory is recorded and the walk moves on, so one bad
// subtree cannot suppress matches elsewhere. All recorded errors are returned
// together after the walk finishes.
func (w *Walker) Walk(startPaths []string, m matcher.Matcher) error {
	var errs *errors.MultiError

	for _, startPath := range startPaths {
		info, err := os.Lstat(startPath)
		if err != nil {
			errs = errs.Append(errors.WithStackTrace(err))

			continue
		}

		entry := matcher.Entry{
			Path:     startPath,
			DirEntry: fs.FileInfoToDirEntry(info),
		}

		errs = errs.Append(w.walkEntry(entry, m))
	}

	return errs.ErrorOrNil()
}

// walkEntry evaluates a single entry and, if it is a directory, recurses into
// its children. In pre-order mode the directory is evaluated before its
// children, in depth-first mode after them, so actions like -exec can remove
// a directory's contents before seeing the directory itself.
func (w *Walker) walkEntry(entry matcher.Entry, m matcher.Matcher) error {
	if !entry.DirEntry.IsDir() {
		m.Matches(entry)

		return nil
	}

	if !w.opts.DepthFirst {
		m.Matches(entry)
	}

	var errs *errors.MultiError

	children, err := os.ReadDir(entry.Path)
	if err != nil {
		errs = errs.Append(errors.WithStackTrace(err))
	}

	for _, child := range children {
		childEntry := matcher.Entry{
			Path:     joinEntryPath(entry.Path, child.Name()),
			DirEntry: child,
		}

		errs = errs.Append(w.walkEntry(childEntry, m))
	}

	if w.opts.DepthFirst {
		m.Matches(entry)
	}

	return errs.ErrorOrNil()
}

// joinEntryPath extends a parent path with a child name while preserving the
// starting point's spelling, so a walk rooted at `.` reports `./sub/name`
// rather than the cleaned `sub/name`.
func joinEntryPath(parent, name string) string {
	if strings.HasSuffix(parent, "/") {
		return parent + name
	}

	return parent + "/" + name
}
