package filter

import "fmt"

// CompilationError indicates a filter expression could not be compiled.
type CompilationError struct {
	Expression string
	Reason     string
	Err        error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

// EvaluationError indicates a compiled filter could not be evaluated against
// a particular course or image.
type EvaluationError struct {
	Expression string
	Subject    string
	Reason     string
	Err        error
}

func (e *EvaluationError) Error() string {
	reason := e.Reason
	if reason == "" && e.Err != nil {
		reason = e.Err.Error()
	}
	return fmt.Sprintf("evaluation error for filter '%s' on '%s': %s", e.Expression, e.Subject, reason)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
