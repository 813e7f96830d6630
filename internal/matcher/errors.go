package matcher

import (
	"fmt"

	"github.com/gofind-io/gofind/internal/errors"
)

// MissingArgumentError is returned when a flag that requires an argument
// appears as the last token, or when -exec is not terminated by a `;`.
type MissingArgumentError struct {
	Flag string
}

func (e MissingArgumentError) Error() string {
	return "missing argument to " + e.Flag
}

// NewMissingArgumentError creates a new MissingArgumentError for the given flag.
func NewMissingArgumentError(flag string) error {
	return errors.New(MissingArgumentError{Flag: flag})
}

// MissingExpressionError is returned when an operator that requires a
// following expression, such as ! or -or, is the last token of its group.
type MissingExpressionError struct {
	Flag string
}

func (e MissingExpressionError) Error() string {
	return "expected an expression after " + e.Flag
}

// NewMissingExpressionError creates a new MissingExpressionError for the given flag.
func NewMissingExpressionError(flag string) error {
	return errors.New(MissingExpressionError{Flag: flag})
}

// DanglingOperatorError is returned when a binary operator appears without a
// left-hand operand, as in `-or -print` or `( , -print )`.
type DanglingOperatorError struct {
	Operator string
}

func (e DanglingOperatorError) Error() string {
	return fmt.Sprintf("invalid expression; you have used a binary operator '%s' with nothing before it.", e.Operator)
}

// NewDanglingOperatorError creates a new DanglingOperatorError for the given operator token.
func NewDanglingOperatorError(operator string) error {
	return errors.New(DanglingOperatorError{Operator: operator})
}

// UnexpectedClosingParenError is returned when a `)` token appears with no
// matching `(` before it.
type UnexpectedClosingParenError struct{}

func (e UnexpectedClosingParenError) Error() string {
	return "you have too many ')'"
}

// NewUnexpectedClosingParenError creates a new UnexpectedClosingParenError.
func NewUnexpectedClosingParenError() error {
	return errors.New(UnexpectedClosingParenError{})
}

// MissingClosingParenError is returned when the expression ends inside an
// unclosed `(` group.
type MissingClosingParenError struct{}

func (e MissingClosingParenError) Error() string {
	return "invalid expression; I was expecting to find a ')' somewhere but did not see one."
}

// NewMissingClosingParenError creates a new MissingClosingParenError.
func NewMissingClosingParenError() error {
	return errors.New(MissingClosingParenError{})
}

// UnrecognizedFlagError is returned when a token is neither an operator nor a
// known test or action.
type UnrecognizedFlagError struct {
	Flag string
}

func (e UnrecognizedFlagError) Error() string {
	return fmt.Sprintf("Unrecognized flag: '%s'", e.Flag)
}

// NewUnrecognizedFlagError creates a new UnrecognizedFlagError for the given token.
func NewUnrecognizedFlagError(flag string) error {
	return errors.New(UnrecognizedFlagError{Flag: flag})
}
