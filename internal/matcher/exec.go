package matcher

import (
	"io"
	"os/exec"
	"path/filepath"

	"github.com/gofind-io/gofind/internal/errors"
	"github.com/gofind-io/gofind/pkg/log"
)

// ExecMatcher runs an external command once per entry, backing the -exec and
// -execdir flags. Every argument that is exactly `{}` is replaced with the
// entry's path. The entry matches when the command exits with status zero, so
// commands double as predicates.
type ExecMatcher struct {
	logger     log.Logger
	output     io.Writer
	errOutput  io.Writer
	command    string
	args       []string
	inEntryDir bool
}

// NewExecMatcher creates a matcher running the given command. When inEntryDir
// is set the command runs from the directory containing the entry and sees
// the entry as ./name, which is how -execdir avoids handing untrusted leading
// path components to the command.
func NewExecMatcher(logger log.Logger, output, errOutput io.Writer, command string, args []string, inEntryDir bool) *ExecMatcher {
	return &ExecMatcher{
		logger:     logger,
		output:     output,
		errOutput:  errOutput,
		command:    command,
		args:       args,
		inEntryDir: inEntryDir,
	}
}

// Matches implements Matcher. A command that cannot be started at all is
// logged and treated the same as one exiting with a non-zero status.
func (m *ExecMatcher) Matches(entry Entry) bool {
	path := entry.Path
	dir := ""

	if m.inEntryDir {
		dir = filepath.Dir(entry.Path)
		path = "./" + entry.BaseName()
	}

	args := make([]string, 0, len(m.args))
	for _, arg := range m.args {
		if arg == "{}" {
			arg = path
		}

		args = append(args, arg)
	}

	cmd := exec.Command(m.command, args...)
	cmd.Dir = dir
	cmd.Stdout = m.output
	cmd.Stderr = m.errOutput

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			m.logger.Errorf("Failed to run %s: %v", m.command, err)
		}

		return false
	}

	return true
}

// HasSideEffects implements Matcher.
func (m *ExecMatcher) HasSideEffects() bool {
	return true
}
