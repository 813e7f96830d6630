package options_test

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofind-io/gofind/options"
	"github.com/gofind-io/gofind/pkg/log"
)

func TestNewOptionsDefaults(t *testing.T) {
	t.Parallel()

	opts := options.NewOptions()

	assert.Equal(t, os.Stdout, opts.Writer)
	assert.Equal(t, os.Stderr, opts.ErrWriter)
	assert.NotNil(t, opts.Logger)
	assert.Equal(t, log.InfoLevel, opts.Logger.Level())
	assert.False(t, opts.DepthFirst)
}

func TestParseLogLevelEnv(t *testing.T) {
	t.Setenv(options.LogLevelEnvName, "trace")

	opts := options.NewOptions()
	require.NoError(t, opts.ParseLogLevelEnv())

	assert.Equal(t, log.TraceLevel, opts.Logger.Level())
}

func TestParseLogLevelEnvUnset(t *testing.T) {
	t.Setenv(options.LogLevelEnvName, "")

	opts := options.NewOptions()
	require.NoError(t, opts.ParseLogLevelEnv())

	assert.Equal(t, log.InfoLevel, opts.Logger.Level())
}

func TestParseLogLevelEnvRejectsUnknownLevel(t *testing.T) {
	t.Setenv(options.LogLevelEnvName, "shout")

	opts := options.NewOptions()

	err := opts.ParseLogLevelEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level")
}

func TestClone(t *testing.T) {
	t.Parallel()

	opts := options.NewOptions()

	clone := opts.Clone()
	clone.DepthFirst = true
	clone.Writer = io.Discard

	assert.False(t, opts.DepthFirst, "mutating the clone must not affect the original")
	assert.Equal(t, os.Stdout, opts.Writer)
}
