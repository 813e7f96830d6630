// Package cli wires the command line surface of gofind: splitting argv into
// starting points and expression tokens, help and version output, and the
// run loop connecting the expression compiler to the walker.
package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/gofind-io/gofind/internal/matcher"
	"github.com/gofind-io/gofind/internal/walker"
	"github.com/gofind-io/gofind/options"
)

// AppName is the name of the gofind binary.
const AppName = "gofind"

// NewApp creates the gofind CLI app. Flag parsing is skipped entirely: every
// token after the program name belongs either to the starting points or to
// the expression grammar, which owns the `-` prefixed tokens and must see
// them in their original order.
func NewApp(opts *options.Options) *cli.App {
	app := cli.NewApp()
	app.Name = AppName
	app.Usage = "Search for files in a directory hierarchy and evaluate an expression against each one."
	app.UsageText = AppName + " [starting-point...] [expression]"
	app.Version = Version()
	app.Writer = opts.Writer
	app.ErrWriter = opts.ErrWriter
	app.HideHelp = true
	app.HideHelpCommand = true
	app.HideVersion = true
	app.SkipFlagParsing = true
	app.Action = runAction(opts)

	return app
}

func runAction(opts *options.Options) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		args := ctx.Args().Slice()

		// With flag parsing skipped, help and version requests arrive as
		// ordinary tokens and are answered before the expression grammar
		// ever sees them.
		switch first(args) {
		case "-help", "--help":
			return cli.ShowAppHelp(ctx)
		case "-version", "--version":
			cli.ShowVersion(ctx)

			return nil
		}

		startPaths, expression := SplitArgs(args)

		m, err := matcher.BuildTopLevelMatcher(expression, opts)
		if err != nil {
			return err
		}

		opts.Logger.Debugf("Compiled %d expression tokens; walking %d starting points", len(expression), len(startPaths))

		return walker.New(opts).Walk(startPaths, m)
	}
}

func first(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}
