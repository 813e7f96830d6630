package matcher_test

import (
	"io"
	"io/fs"
	"path/filepath"

	"github.com/gofind-io/gofind/internal/matcher"
	"github.com/gofind-io/gofind/options"
	"github.com/gofind-io/gofind/pkg/log"
)

// fakeDirEntry implements fs.DirEntry for entries that do not need to exist
// on disk.
type fakeDirEntry struct {
	name string
	mode fs.FileMode
}

func (e fakeDirEntry) Name() string               { return e.name }
func (e fakeDirEntry) IsDir() bool                { return e.mode.IsDir() }
func (e fakeDirEntry) Type() fs.FileMode          { return e.mode.Type() }
func (e fakeDirEntry) Info() (fs.FileInfo, error) { return nil, fs.ErrNotExist }

// newFileEntry returns an entry describing a regular file at the given path.
func newFileEntry(path string) matcher.Entry {
	return newTypedEntry(path, 0)
}

// newTypedEntry returns an entry at the given path with the given file mode.
func newTypedEntry(path string, mode fs.FileMode) matcher.Entry {
	return matcher.Entry{
		Path:     path,
		DirEntry: fakeDirEntry{name: filepath.Base(path), mode: mode},
	}
}

// recordingMatcher returns a fixed result and records how many times it was
// evaluated, so tests can observe short-circuiting.
type recordingMatcher struct {
	result      bool
	sideEffects bool
	invocations int
}

func (m *recordingMatcher) Matches(matcher.Entry) bool {
	m.invocations++

	return m.result
}

func (m *recordingMatcher) HasSideEffects() bool {
	return m.sideEffects
}

// newTestOptions returns options wired for tests: matched paths go to the
// given sink and diagnostics are discarded.
func newTestOptions(output io.Writer) *options.Options {
	opts := options.NewOptions()
	opts.Logger = discardLogger()
	opts.Writer = output
	opts.ErrWriter = io.Discard

	return opts
}

func discardLogger() log.Logger {
	return log.New(log.WithOutput(io.Discard))
}
