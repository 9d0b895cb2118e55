package argsert

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

var (
	// ErrAssertion is the kind of failures raised by user validators
	// that only supplied a message.
	ErrAssertion     = errors.New("argument assertion failed")
	ErrUnmetArgs     = errors.New("unmet arguments")
	ErrExtraArgs     = errors.New("extra arguments")
	ErrTypeMismatch  = errors.New("argument type mismatch")
	ErrInternalFault = errors.New("internal fault while asserting arguments")
)

var pkgPath = reflect.TypeOf((*Argsert)(nil)).Elem().PkgPath()

// AssertionError is the error reported for a failed validator that
// returned a message rather than an error of its own.
type AssertionError struct {
	Kind    error         // ErrUnmetArgs, ErrExtraArgs, ErrTypeMismatch or ErrAssertion
	Message string        // Formatted message, label included
	Label   string        // Label of the asserting call
	Arg     *Arg          // Offending argument, if any
	Caller  runtime.Frame // First frame outside this package
}

// Error implements the error interface
func (ae *AssertionError) Error() string {
	return ae.Message
}

// Unwrap exposes the failure kind to errors.Is.
func (ae *AssertionError) Unwrap() error {
	return ae.Kind
}

// InternalError reports a panic recovered while parsing, binding or
// validating. It is never subject to the error policy.
type InternalError struct {
	Label string
	Map   string
	Cause any
	Stack []byte
}

// Error implements the error interface
func (ie *InternalError) Error() string {
	if ie.Label != "" {
		return fmt.Sprintf("%s: %s %q: %v", ErrInternalFault, ie.Label, ie.Map, ie.Cause)
	}
	return fmt.Sprintf("%s: %q: %v", ErrInternalFault, ie.Map, ie.Cause)
}

// Unwrap returns ErrInternalFault and, when the panic value was an
// error, that error.
func (ie *InternalError) Unwrap() []error {
	if err, ok := ie.Cause.(error); ok {
		return []error{ErrInternalFault, err}
	}
	return []error{ErrInternalFault}
}

// callerFrame returns the first frame on the stack that does not
// belong to this package. Frames from this package's own tests count
// as callers.
func callerFrame() runtime.Frame {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	prefix := pkgPath + "."
	for {
		frame, more := frames.Next()
		inPkg := strings.HasPrefix(frame.Function, prefix) &&
			!strings.HasSuffix(frame.File, "_test.go")
		if !inPkg {
			return frame
		}
		if !more {
			return runtime.Frame{}
		}
	}
}
