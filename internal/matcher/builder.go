package matcher

import (
	"github.com/gofind-io/gofind/options"
)

// BuildTopLevelMatcher compiles expression tokens into a matcher tree. The
// tokens are the command line arguments left over after the starting points,
// already split by the shell, so no further lexing happens here.
//
// When the compiled tree contains no action at all, it is wrapped in a
// conjunction with a trailing print action. That is what makes a bare test
// like `-name foo` report its matches instead of silently evaluating them.
func BuildTopLevelMatcher(args []string, opts *options.Options) (Matcher, error) {
	builder := &treeBuilder{args: args, opts: opts}

	topLevel, _, err := builder.build(0, false)
	if err != nil {
		return nil, err
	}

	if !topLevel.HasSideEffects() {
		printing := NewAndMatcher()
		printing.Append(topLevel)
		printing.Append(NewPrinter(opts.Writer))

		return printing, nil
	}

	return topLevel, nil
}

// treeBuilder compiles a token slice into a matcher tree by recursive
// descent. Each parenthesis level owns one ListMatcher: operator tokens open
// branches and statements on it, every other token appends a leaf or a
// nested group.
type treeBuilder struct {
	opts          *options.Options
	args          []string
	sawExpression bool
}

// build consumes tokens from startIndex until the end of the input or, when
// expectingParen is set, until the `)` closing the group it was called for.
// It returns the compiled level and the index of the last token it consumed.
func (b *treeBuilder) build(startIndex int, expectingParen bool) (Matcher, int, error) {
	topLevel := NewListMatcher()
	invertNext := false

	i := startIndex
	for i < len(b.args) {
		var submatcher Matcher

		switch token := b.args[i]; token {
		case "-not", "!":
			if !b.moreExpressionsAfter(i) {
				return nil, 0, NewMissingExpressionError(token)
			}

			// Negation applies to the very next leaf or group, not to a chain.
			invertNext = true
		case "-or", "-o":
			if !b.moreExpressionsAfter(i) {
				return nil, 0, NewMissingExpressionError(token)
			}

			if err := topLevel.OpenBranch(token); err != nil {
				return nil, 0, err
			}
		case ",":
			if !b.moreExpressionsAfter(i) {
				return nil, 0, NewMissingExpressionError(token)
			}

			if err := topLevel.OpenStatement(); err != nil {
				return nil, 0, err
			}
		case "(":
			group, closeIndex, err := b.build(i+1, true)
			if err != nil {
				return nil, 0, err
			}

			submatcher = group
			i = closeIndex
		case ")":
			if !expectingParen {
				return nil, 0, NewUnexpectedClosingParenError()
			}

			return topLevel, i, nil
		case "-d", "-depth":
			if b.sawExpression {
				b.opts.Logger.Warnf("The %s option affects the whole search and should be specified before tests and actions", token)
			}

			b.opts.DepthFirst = true
		default:
			leaf, lastIndex, err := b.buildLeaf(i)
			if err != nil {
				return nil, 0, err
			}

			submatcher = leaf
			i = lastIndex
		}

		if submatcher != nil {
			if invertNext {
				submatcher = NewNotMatcher(submatcher)
				invertNext = false
			}

			topLevel.Append(submatcher)
			b.sawExpression = true
		}

		i++
	}

	if expectingParen {
		return nil, 0, NewMissingClosingParenError()
	}

	return topLevel, i, nil
}

// moreExpressionsAfter reports whether an expression token can still follow
// position i at the current level, meaning there is a next token and it does
// not immediately close the group.
func (b *treeBuilder) moreExpressionsAfter(i int) bool {
	return i < len(b.args)-1 && b.args[i+1] != ")"
}

// buildLeaf constructs the leaf matcher for the flag at position i, consuming
// any argument tokens the flag requires. It returns the leaf and the index of
// the last token consumed.
func (b *treeBuilder) buildLeaf(i int) (Matcher, int, error) {
	flag := b.args[i]

	switch flag {
	case "-print":
		return NewPrinter(b.opts.Writer), i, nil
	case "-true":
		return TrueMatcher{}, i, nil
	case "-false":
		return FalseMatcher{}, i, nil
	case "-name", "-iname":
		if i == len(b.args)-1 {
			return nil, 0, NewMissingArgumentError(flag)
		}

		var (
			leaf Matcher
			err  error
		)

		if flag == "-iname" {
			leaf, err = NewCaselessNameMatcher(b.args[i+1])
		} else {
			leaf, err = NewNameMatcher(b.args[i+1])
		}

		if err != nil {
			return nil, 0, err
		}

		return leaf, i + 1, nil
	case "-type":
		if i == len(b.args)-1 {
			return nil, 0, NewMissingArgumentError(flag)
		}

		leaf, err := NewTypeMatcher(b.args[i+1])
		if err != nil {
			return nil, 0, err
		}

		return leaf, i + 1, nil
	case "-exec", "-execdir":
		return b.buildExecLeaf(i)
	default:
		return nil, 0, NewUnrecognizedFlagError(flag)
	}
}

// buildExecLeaf consumes the command tokens following -exec or -execdir up to
// the terminating `;`, which the shell delivers as a token of its own.
func (b *treeBuilder) buildExecLeaf(i int) (Matcher, int, error) {
	flag := b.args[i]

	terminator := -1

	for j := i + 1; j < len(b.args); j++ {
		if b.args[j] == ";" {
			terminator = j

			break
		}
	}

	// Both a missing terminator and an empty command are fatal.
	if terminator <= i+1 {
		return nil, 0, NewMissingArgumentError(flag)
	}

	command := b.args[i+1]
	commandArgs := b.args[i+2 : terminator]

	leaf := NewExecMatcher(b.opts.Logger, b.opts.Writer, b.opts.ErrWriter, command, commandArgs, flag == "-execdir")

	return leaf, terminator, nil
}
