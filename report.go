package argsert

import (
	"log/slog"

	"golang.org/x/text/message"
)

// ErrorHandler receives assertion failures under the Callback policy.
type ErrorHandler func(err error, result *Result)

type policyMode int

const (
	throwMode policyMode = iota
	suppressMode
	callbackMode
)

// ErrorPolicy decides how a validation failure reaches the caller.
// The zero value is Throw.
type ErrorPolicy struct {
	mode    policyMode
	handler ErrorHandler
}

var (
	// Throw returns the failure as the error of the assert call,
	// with a nil result.
	Throw = ErrorPolicy{mode: throwMode}

	// Suppress attaches the failure to the result and returns no error.
	Suppress = ErrorPolicy{mode: suppressMode}
)

// Callback hands the failure to h, then returns the result with the
// failure attached and no error. A nil h behaves as Suppress.
func Callback(h ErrorHandler) ErrorPolicy {
	if h == nil {
		return Suppress
	}
	return ErrorPolicy{mode: callbackMode, handler: h}
}

// PolicyFromBool maps true to Throw and false to Suppress.
func PolicyFromBool(throw bool) ErrorPolicy {
	if throw {
		return Throw
	}
	return Suppress
}

// String implements fmt.Stringer
func (p ErrorPolicy) String() string {
	switch p.mode {
	case suppressMode:
		return "suppress"
	case callbackMode:
		return "callback"
	default:
		return "throw"
	}
}

// report turns failure into an error, attaches it to result and
// dispatches it per the configured policy.
func report(opts *Options, result *Result, failure *Failure) (*Result, error) {
	if failure.Err == nil {
		kind := failure.kind
		if kind == nil {
			kind = ErrAssertion
		}
		failure.Err = &AssertionError{
			Kind:    kind,
			Message: failure.message,
			Label:   result.Name,
			Arg:     failure.Arg,
			Caller:  callerFrame(),
		}
	}

	result.Failure = failure

	switch opts.OnError.mode {
	case suppressMode:
		return result, nil
	case callbackMode:
		opts.OnError.handler(failure.Err, result)
		return result, nil
	default:
		return nil, failure.Err
	}
}

// printer returns the message printer for opts' language and catalog.
func (opts *Options) printer() *message.Printer {
	if opts.Catalog != nil {
		return message.NewPrinter(opts.Language, message.Catalog(opts.Catalog))
	}
	return message.NewPrinter(opts.Language)
}

// format renders template with args, prefixed by the call's label.
func (opts *Options) format(label, template string, args ...string) string {
	vals := make([]any, len(args))
	for i, a := range args {
		vals[i] = a
	}

	msg := opts.printer().Sprintf(template, vals...)
	if label != "" {
		return label + " " + msg
	}
	return msg
}

// warnUnknown logs that a validator name is not registered.
func (opts *Options) warnUnknown(name string) {
	opts.Logger.Warn(opts.format("", opts.Templates.Unknown, name), slog.String("validator", name))
}
