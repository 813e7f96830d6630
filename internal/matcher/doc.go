// Package matcher provides a compiler and evaluator for find-style expression
// arguments used to select filesystem entries.
//
// # Overview
//
// The matcher package implements a two-stage architecture:
//  1. Builder: Compiles command line tokens into a tree of matchers
//  2. Matchers: Evaluate the compiled tree once per filesystem entry
//
// There is no separate lexer: the shell has already split the command line,
// so each argv token is consumed as-is. This mirrors how the expression is
// actually delivered to the process and keeps quoting rules with the shell,
// where they belong.
//
// # Expression Syntax
//
// An expression is a sequence of tests, actions and operators:
//
//	-name PATTERN           # Entry base name matches a shell glob
//	-iname PATTERN          # Case-insensitive variant of -name
//	-type LETTER            # Entry is of the given file type (f, d, l, p, s, c, b)
//	-true                   # Always matches
//	-false                  # Never matches
//	-print                  # Prints the entry path; always matches
//	-exec CMD [ARG...] ;    # Runs CMD, substituting {} with the entry path;
//	                        # matches when CMD exits successfully
//	-execdir CMD [ARG...] ; # Like -exec, but runs from the entry's directory
//
// Tests and actions combine with operators:
//
//	EXPR1 EXPR2             # Implicit conjunction (AND)
//	EXPR1 -o EXPR2          # Disjunction (-o or -or)
//	EXPR1 , EXPR2           # Sequence: evaluates both, keeps the last result
//	! EXPR                  # Negation (! or -not)
//	( EXPR )                # Grouping
//
// # Operator Precedence
//
// Operators bind with the following precedence (tightest to loosest):
//  1. Juxtaposition (implicit AND)
//  2. Disjunction (-o, -or)
//  3. Sequence (,)
//
// So `-true -o -false , -print` reads as `((-true -o -false) , (-print))`.
// Negation applies to the single test, action or group that follows it, and
// parentheses override precedence as usual.
//
// # Evaluation Semantics
//
// Conjunctions stop at the first false operand and disjunctions stop at the
// first true operand, so actions positioned after the short-circuit point do
// not run. Sequences never short-circuit: every statement is evaluated for
// its side effects and the last statement's result becomes the result of the
// whole sequence. Negation inverts its operand's result while leaving the
// operand's side effects visible.
//
// If the compiled tree contains no action at all, BuildTopLevelMatcher wraps
// it in a conjunction with a trailing print action, which is why a bare
// `-name foo` still produces output.
//
// # Usage
//
//	m, err := matcher.BuildTopLevelMatcher(args, opts)
//	if err != nil {
//	    return err
//	}
//
//	// Evaluate the tree against entries produced by a directory walk.
//	m.Matches(matcher.Entry{Path: path, DirEntry: dirEntry})
//
// Evaluation is single-threaded: matchers write to shared sinks and rely on
// the caller presenting entries one at a time.
package matcher
