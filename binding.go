package argsert

import (
	"slices"
	"strconv"
)

// Arg describes one bound argument position.
type Arg struct {
	Index    int      // Position of the argument
	Name     string   // Explicit token name, else the position's friendly name
	Required bool     // Token was declared with '<'
	Types    []string // Allowed type tags
	Value    any      // Supplied value, Undefined when not supplied
	Type     string   // Inferred type tag of Value
}

// Allows reports whether typ satisfies a's allowed types.
func (a *Arg) Allows(typ, anyType string) bool {
	return slices.ContainsFunc(a.Types, func(t string) bool {
		return t == anyType || t == typ
	})
}

// Result is the outcome of binding an assertion map to its values.
// It is created fresh for every call.
type Result struct {
	Name     string   // Label of the asserting call, may be empty
	Keys     []int    // Every position, in order
	Required []int    // Positions of required tokens
	Optional []int    // Positions of optional tokens
	Actual   int      // Number of supplied arguments
	Max      int      // Number of declared positions
	Args     []*Arg   // Descriptors, indexed by position
	Failure  *Failure // First failure, nil when every validator passed

	opts *Options
}

// Arg returns the descriptor at position i or nil.
func (r *Result) Arg(i int) *Arg {
	if i < 0 || i >= len(r.Args) {
		return nil
	}
	return r.Args[i]
}

// options returns the configuration r was bound with.
func (r *Result) options() *Options {
	if r.opts == nil {
		opts := Options{}.withDefaults()
		r.opts = &opts
	}
	return r.opts
}

// Failed reports whether a validator failed.
func (r *Result) Failed() bool {
	return r.Failure != nil
}

// Err returns the failure's error, or nil.
func (r *Result) Err() error {
	if r.Failure == nil {
		return nil
	}
	return r.Failure.Err
}

// bind pairs each normalized token with its value.
func bind(opts *Options, label string, norm normalized) *Result {
	result := &Result{
		Name:     label,
		Keys:     make([]int, 0, len(norm.expanded)),
		Required: []int{},
		Optional: []int{},
		Actual:   norm.length,
		Args:     make([]*Arg, 0, len(norm.expanded)),
		opts:     opts,
	}

	for i, raw := range norm.expanded {
		tok := DecodeToken(raw, opts.strip, opts.Separator)

		var value any = Undefined
		if i < len(norm.args) {
			value = norm.args[i]
		}

		name := tok.Name()
		if name == "" {
			name = positionName(opts.Positions, i)
		}

		arg := &Arg{
			Index:    i,
			Name:     name,
			Required: tok.Required,
			Types:    tok.Types,
			Value:    value,
			Type:     opts.Parser(value),
		}

		// [] or <> with no types.
		if len(arg.Types) == 0 && !opts.Strict {
			arg.Types = []string{opts.Any}
		}

		// Omitted optional arguments always match when not strict.
		if !arg.Required && !opts.Strict &&
			(arg.Type == TypeUndefined || arg.Type == TypeNull) {
			arg.Types = append(arg.Types, arg.Type)
		}

		if arg.Required {
			result.Required = append(result.Required, i)
		} else {
			result.Optional = append(result.Optional, i)
		}
		result.Keys = append(result.Keys, i)
		result.Args = append(result.Args, arg)
		result.Max++
	}

	return result
}

// positionName returns the friendly name for position i, falling back
// to a numeric ordinal past the configured names.
func positionName(positions []string, i int) string {
	if i < len(positions) && positions[i] != "" {
		return positions[i]
	}
	return ordinal(i + 1)
}

// ordinal formats n as an English ordinal, e.g. 1st, 12th, 23rd.
func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
