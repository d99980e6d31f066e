package uritemplate

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by template operations.
var (
	// ErrNoMatch indicates the URI does not match the template's pattern.
	ErrNoMatch = errors.New("uri does not match template")
)

// ParseError reports a malformed template. It is returned by Validate,
// Variables, Expand, and Extract when the template text itself is
// broken, as opposed to a URI or variable problem.
type ParseError struct {
	// Pos is the byte offset in the template where the problem starts.
	Pos int
	// Reason describes what is wrong.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed template at offset %d: %s", e.Pos, e.Reason)
}

// UndefinedVariableError is returned by ExpandStrict when one or more
// template variables have no defined value.
type UndefinedVariableError struct {
	// Names is the list of undefined variable names, in template order.
	Names []string
}

// Error implements the error interface.
func (e *UndefinedVariableError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("undefined variable: %s", e.Names[0])
	}
	return fmt.Sprintf("undefined variables: %s", strings.Join(e.Names, ", "))
}
