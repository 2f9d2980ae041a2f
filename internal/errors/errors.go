package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes, one per failure domain of the dashboard.
const (
	ErrConfig   = "CONFIG"   // config file missing, unreadable or invalid
	ErrGenerate = "GENERATE" // the sampler could not produce a snapshot
	ErrField    = "FIELD"    // a manual edit broke the field contract
	ErrRender   = "RENDER"   // the terminal can't show the dashboard
)

// Error is a categorized failure with an optional hint and cause. The CLI
// prints it in full:
//
//	✗ <Message>
//
//	  <Cause>
//
//	  <Suggestion>
//
// The dashboard status bar uses the single-line form from Line.
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates an error without a cause.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap attaches message to err. The code is taken from the nearest
// structured error in err's chain, falling back to ErrGenerate since
// sampling is where unstructured failures come from.
func Wrap(err error, message string) *Error {
	code := CodeOf(err)
	if code == "" {
		code = ErrGenerate
	}
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps err under an explicit code.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✗ %s\n", e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, "\n  %s\n", e.Cause.Error())
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  %s\n", e.Suggestion)
	}
	return b.String()
}

// Unwrap returns the cause for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Line renders err on one line: the message, then the suggestion in
// parentheses when there is one. Plain errors are flattened onto one line.
func Line(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Suggestion != "" {
			return fmt.Sprintf("%s (%s)", e.Message, e.Suggestion)
		}
		return e.Message
	}
	return strings.Join(strings.Fields(err.Error()), " ")
}

// IsCode reports whether err carries a structured Error with code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf returns the code of the outermost structured Error in the chain,
// or "" when there is none.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
