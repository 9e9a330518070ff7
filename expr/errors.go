package expr

import (
	"fmt"
	"strings"
)

// ParseError lists everything wrong with an expression source.
type ParseError struct {
	Source   string
	Messages []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expr: cannot compile %q: %s", e.Source, strings.Join(e.Messages, "; "))
}

// EvalError is returned when an expression refers to a variable that has no
// binding at evaluation time.
type EvalError struct {
	Source   string
	Variable string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("expr: %q: variable %q is not bound", e.Source, e.Variable)
}
