package dentaku

import "strconv"

// SyntaxError is an error indicating that a grammar rule could not match the
// input at some position. It implements InputError.
type SyntaxError struct {
	// Col is the column at which the rule failed.
	Col int
	// Prod is the rule that failed: "expr", "factor", "set", or "sum".
	Prod string
}

func (err *SyntaxError) Error() string {
	return "invalid syntax: " + err.Prod
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// NameError is an error from a lookup for a variable that has not been bound
// in the environment. It implements InputError.
type NameError struct {
	// Col is the position of the variable.
	Col int
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + err.Name
}

func (err *NameError) Pos() int {
	return err.Col
}

// LimitError is an error indicating that a line ran more sum iterations than
// the environment allows. It implements InputError.
type LimitError struct {
	// Col is the position of the sum body that was about to run again.
	Col int
	// Limit is the iteration limit that was reached.
	Limit int
}

func (err *LimitError) Error() string {
	return "iteration limit exceeded"
}

func (err *LimitError) Pos() int {
	return err.Col
}

// DepthError is an error indicating that brackets or function calls in a line
// are nested more deeply than the evaluator allows. It implements InputError.
type DepthError struct {
	// Col is the position of the bracket or function name that went too deep.
	Col int
	// Limit is the deepest nesting allowed.
	Limit int
}

func (err *DepthError) Error() string {
	return "expression nested too deeply"
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// Describe formats an error with its column when it is an InputError. Other
// errors are formatted as their plain message.
func Describe(err error) string {
	if ie, ok := err.(InputError); ok {
		return errpos(ie.Pos(), ie.Error())
	}
	return err.Error()
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based byte column in the
	// line after whitespace is removed.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*LimitError)(nil)
	_ InputError = (*DepthError)(nil)
)
