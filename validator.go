package argsert

import (
	"strconv"
	"strings"
)

// ValidatorFunc checks a bound Result. It returns nil to pass, or a
// Failure built with Fail, FailErr or FailArg.
type ValidatorFunc func(r *Result) *Failure

// Validator is a registry entry. Validators are enabled unless
// Disabled is set.
type Validator struct {
	Handler  ValidatorFunc
	Disabled bool
}

// Failure records why a validator rejected a Result.
type Failure struct {
	Err error // Reported error, built from the message when nil
	Arg *Arg  // Offending argument, if any

	message string
	kind    error
}

// Fail fails with a plain message.
func Fail(msg string) *Failure {
	return &Failure{message: msg}
}

// FailErr fails with err as the reported error.
func FailErr(err error) *Failure {
	return &Failure{Err: err}
}

// FailArg fails with a message and the offending argument.
func FailArg(msg string, arg *Arg) *Failure {
	return &Failure{message: msg, Arg: arg}
}

// Message returns the failure message.
func (f *Failure) Message() string {
	if f.Err != nil {
		return f.Err.Error()
	}
	return f.message
}

// Selector names the single validator to run for one call: either a
// registered one by name or an inline function.
type Selector struct {
	name string
	fn   ValidatorFunc
}

// ByName selects a registered validator.
func ByName(name string) Selector {
	return Selector{name: name}
}

// Inline selects fn, which need not be registered.
func Inline(fn ValidatorFunc) Selector {
	return Selector{fn: fn}
}

// IsZero reports whether s selects nothing.
func (s Selector) IsZero() bool {
	return s.name == "" && s.fn == nil
}

///////////////////////////////////////////////////////////////////////////////
// Built-in validators
///////////////////////////////////////////////////////////////////////////////

func builtinValidators() []NamedValidator {
	return []NamedValidator{
		{Name: UnmetValidatorName, Validator: Validator{Handler: UnmetArgs}},
		{Name: ExtraValidatorName, Validator: Validator{Handler: ExtraArgs}},
		{Name: MismatchValidatorName, Validator: Validator{Handler: MismatchArgs}},
	}
}

// UnmetArgs fails when fewer arguments were supplied than there are
// required positions.
func UnmetArgs(r *Result) *Failure {
	if r.Actual >= len(r.Required) {
		return nil
	}
	opts := r.options()
	msg := opts.format(r.Name, opts.Templates.Unmet,
		strconv.Itoa(len(r.Required)), strconv.Itoa(r.Actual))
	return &Failure{message: msg, kind: ErrUnmetArgs}
}

// ExtraArgs fails when more arguments were supplied than there are
// declared positions.
func ExtraArgs(r *Result) *Failure {
	if r.Actual <= r.Max {
		return nil
	}
	opts := r.options()
	msg := opts.format(r.Name, opts.Templates.Extra,
		strconv.Itoa(r.Max), strconv.Itoa(r.Actual))
	return &Failure{message: msg, kind: ErrExtraArgs}
}

// MismatchArgs fails on the first argument, required ones first, whose
// inferred type is not allowed at its position.
func MismatchArgs(r *Result) *Failure {
	opts := r.options()

	keys := make([]int, 0, len(r.Required)+len(r.Optional))
	keys = append(keys, r.Required...)
	keys = append(keys, r.Optional...)

	for _, key := range keys {
		arg := r.Arg(key)
		if arg == nil || arg.Allows(arg.Type, opts.Any) {
			continue
		}

		pos := arg.Name
		if pos == "" {
			pos = positionName(opts.Positions, arg.Index)
		}

		allowed := strings.Join(arg.Types, " "+opts.Templates.Or+" ")
		msg := opts.format(r.Name, opts.Templates.Mismatch, pos, arg.Type, allowed)
		return &Failure{message: msg, Arg: arg, kind: ErrTypeMismatch}
	}

	return nil
}
