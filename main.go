package main

import (
	"os"

	"github.com/gofind-io/gofind/cli"
	"github.com/gofind-io/gofind/internal/errors"
	"github.com/gofind-io/gofind/options"
	"github.com/gofind-io/gofind/pkg/log"
)

// The main entrypoint for gofind.
func main() {
	opts := options.NewOptions()

	// Immediately parse the `GOFIND_LOG_LEVEL` environment variable, e.g. to enable the TRACE level.
	if err := opts.ParseLogLevelEnv(); err != nil {
		opts.Logger.Error(err.Error())
		os.Exit(1)
	}

	defer errors.Recover(checkForErrorsAndExit(opts.Logger))

	app := cli.NewApp(opts)

	checkForErrorsAndExit(opts.Logger)(app.Run(os.Args))
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit 0.
func checkForErrorsAndExit(logger log.Logger) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(0)
		}

		logger.Error(err.Error())

		if errStack := errors.ErrorStack(err); errStack != "" {
			logger.Trace(errStack)
		}

		os.Exit(1)
	}
}
