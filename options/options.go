// Package options provides the set of options that configure the behavior of the gofind program.
package options

import (
	"io"
	"os"

	"github.com/gofind-io/gofind/pkg/log"
)

const (
	// LogLevelEnvName is the environment variable that overrides the default log level.
	LogLevelEnvName = "GOFIND_LOG_LEVEL"

	defaultLogLevel = log.InfoLevel
)

// Options represents the runtime configuration of a single gofind invocation.
// The expression compiler receives it mutable: traversal-ordering tokens such
// as `-depth` toggle fields here instead of producing a matcher.
type Options struct {
	// Logger used for diagnostics. Matched paths never go through it;
	// they are written to Writer.
	Logger log.Logger

	// Writer is the sink matched paths are printed to. Defaults to stdout.
	Writer io.Writer

	// ErrWriter is where diagnostics end up. Defaults to stderr.
	ErrWriter io.Writer

	// DepthFirst makes the walker process directory contents before the
	// directory itself. Toggled by the `-d`/`-depth` expression token.
	DepthFirst bool
}

// NewOptions returns Options with production defaults: diagnostics to stderr
// at the info level and match output to stdout.
func NewOptions() *Options {
	logger := log.New(
		log.WithOutput(os.Stderr),
		log.WithLevel(defaultLogLevel),
		log.WithFormatter(log.NewFormatter()),
	)

	return &Options{
		Logger:    logger,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}

// ParseLogLevelEnv applies the log level named by the GOFIND_LOG_LEVEL
// environment variable, e.g. to enable the TRACE level. Unset is not an error.
func (opts *Options) ParseLogLevelEnv() error {
	str := os.Getenv(LogLevelEnvName)
	if str == "" {
		return nil
	}

	level, err := log.ParseLevel(str)
	if err != nil {
		return err
	}

	opts.Logger.SetOptions(log.WithLevel(level))

	return nil
}

// Clone returns a copy of the options. The logger handle is shared; writers
// and scalar fields are copied so that tests can rewire them independently.
func (opts *Options) Clone() *Options {
	newOpts := *opts
	return &newOpts
}
