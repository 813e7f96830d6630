package cli

import (
	"strings"

	"github.com/gofind-io/gofind/util"
)

// punctuationTokens are the expression tokens that do not start with a dash.
var punctuationTokens = []string{"(", ")", "!", ","}

// SplitArgs separates the leading starting points from the expression. The
// expression begins at the first token that starts with `-` or is one of the
// grammar's punctuation tokens, so a starting point may be any path that does
// not look like an expression token. With no starting points at all the
// search is rooted at the current directory.
func SplitArgs(args []string) (startPaths, expression []string) {
	split := len(args)

	for i, arg := range args {
		if isExpressionToken(arg) {
			split = i

			break
		}
	}

	startPaths = args[:split]
	expression = args[split:]

	if len(startPaths) == 0 {
		startPaths = []string{"."}
	}

	return startPaths, expression
}

// isExpressionToken reports whether the token begins the expression rather
// than naming another starting point.
func isExpressionToken(arg string) bool {
	return strings.HasPrefix(arg, "-") || util.ListContainsElement(punctuationTokens, arg)
}
