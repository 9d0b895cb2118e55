package argsert

import (
	"fmt"
	"runtime/debug"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

// Argsert asserts the arguments of function calls against assertion
// maps. Each instance owns its configuration and validator registry;
// independent instances never share state.
//
// Methods on Argsert are safe for concurrent use.
type Argsert struct {
	mu       sync.RWMutex
	opts     Options
	registry *validatorRegistry
	tokens   *TokenCache
}

// New creates an Argsert with opts merged onto the defaults.
func New(opts Options) *Argsert {
	opts = opts.withDefaults()

	validators := opts.Validators
	if validators == nil {
		validators = builtinValidators()
	}
	opts.Validators = nil

	a := &Argsert{
		opts:     opts,
		registry: newValidatorRegistry(validators),
		tokens:   NewTokenCache(),
	}

	if len(opts.Disabled) > 0 {
		for _, name := range a.registry.toggle(false, opts.Disabled) {
			a.opts.warnUnknown(name)
		}
		a.registry.markDefaults()
	}

	return a
}

///////////////////////////////////////////////////////////////////////////////
// Configuration
///////////////////////////////////////////////////////////////////////////////

// Option returns the current value of key, or nil for unknown keys.
func (a *Argsert) Option(key string) any {
	a.mu.RLock()
	defer a.mu.RUnlock()

	val, _ := a.opts.get(key)
	return val
}

// SetOption sets key to val and returns a for chaining.
func (a *Argsert) SetOption(key string, val any) (*Argsert, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.opts.set(key, val); err != nil {
		return a, err
	}

	if key == OptionExpander || key == OptionStripper {
		a.tokens.Clear()
	}
	return a, nil
}

// Add registers, or replaces, the validator name.
func (a *Argsert) Add(name string, v Validator) *Argsert {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.registry.add(name, v)
	return a
}

// Remove unregisters the validator name.
func (a *Argsert) Remove(name string) *Argsert {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.registry.remove(name)
	return a
}

///////////////////////////////////////////////////////////////////////////////
// Enablement
///////////////////////////////////////////////////////////////////////////////

// Enable enables the named validators, or all of them when none are
// named. Unknown names are logged and ignored.
func (a *Argsert) Enable(names ...string) *Argsert {
	return a.toggle(true, names)
}

// Disable disables the named validators, or all of them when none are
// named. Unknown names are logged and ignored.
func (a *Argsert) Disable(names ...string) *Argsert {
	return a.toggle(false, names)
}

func (a *Argsert) toggle(state bool, names []string) *Argsert {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, name := range a.registry.toggle(state, names) {
		a.opts.warnUnknown(name)
	}
	return a
}

// Enabled lists the enabled validators in execution order.
func (a *Argsert) Enabled() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.registry.names(true)
}

// Disabled lists the disabled validators in registration order.
func (a *Argsert) Disabled() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.registry.names(false)
}

// Reset restores the enabled and disabled validators to the state
// captured when they were configured.
func (a *Argsert) Reset() *Argsert {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.registry.reset()
	return a
}

// Once returns a call handle whose next assertion runs only the named
// validators, in the given order, then behaves like a itself. The
// restriction lives on the handle, so other callers of a are never
// affected by it.
func (a *Argsert) Once(names ...string) *Call {
	return &Call{argsert: a, only: slices.Clone(names)}
}

///////////////////////////////////////////////////////////////////////////////
// Assertion
///////////////////////////////////////////////////////////////////////////////

type callConfig struct {
	length   int
	selector Selector
	only     []string
}

// CallOption tunes a single assertion.
type CallOption func(*callConfig)

// WithLength overrides the number of actual arguments. Values of zero
// or less are ignored.
func WithLength(n int) CallOption {
	return func(cfg *callConfig) {
		cfg.length = n
	}
}

// WithValidator runs only s for this call, bypassing enablement.
func WithValidator(s Selector) CallOption {
	return func(cfg *callConfig) {
		cfg.selector = s
	}
}

// WithOnly runs only the named validators for this call, in the given
// order, bypassing enablement.
func WithOnly(names ...string) CallOption {
	return func(cfg *callConfig) {
		cfg.only = slices.Clone(names)
	}
}

// Assert validates values against mapStr.
//
// On success the bound Result is returned. On failure the outcome
// depends on the OnError policy: Throw returns the error and a nil
// Result, Suppress and Callback return the Result with Failure set.
// An empty mapStr asserts nothing and returns nil, nil.
func (a *Argsert) Assert(mapStr string, values []any, opts ...CallOption) (*Result, error) {
	return a.assert("", mapStr, values, newCallConfig(opts))
}

// AssertNamed is Assert with a label, usually the asserting function's
// name, that prefixes every failure message.
func (a *Argsert) AssertNamed(label, mapStr string, values []any, opts ...CallOption) (*Result, error) {
	return a.assert(label, mapStr, values, newCallConfig(opts))
}

// AssertLoose accepts the positional form
//
//	([label,] map, values [, length] [, validator])
//
// The first string is taken as the map when it contains '<' or '[',
// otherwise as the label. values may be []any or any other slice or
// array; validator may be a name, a Selector or a ValidatorFunc.
func (a *Argsert) AssertLoose(args ...any) (*Result, error) {
	label, mapStr, values, cfg, err := parseLoose(args)
	if err != nil {
		return nil, err
	}
	return a.assert(label, mapStr, values, cfg)
}

func newCallConfig(opts []CallOption) callConfig {
	var cfg callConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// snapshot copies the options and builds the validator chain for one
// call under the read lock.
func (a *Argsert) snapshot(cfg callConfig) (Options, *ValidationChain) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	opts := a.opts

	var (
		chain   *ValidationChain
		unknown []string
	)
	switch {
	case !cfg.selector.IsZero():
		chain, unknown = a.registry.selectorChain(cfg.selector)
	case len(cfg.only) > 0:
		chain, unknown = a.registry.explicitChain(cfg.only)
	default:
		chain = a.registry.implicitChain()
	}

	for _, name := range unknown {
		opts.warnUnknown(name)
	}

	return opts, chain
}

func (a *Argsert) assert(label, mapStr string, values []any, cfg callConfig) (result *Result, err error) {
	if mapStr == "" {
		return nil, nil
	}

	opts, chain := a.snapshot(cfg)

	defer func() {
		if rec := recover(); rec != nil {
			ie := &InternalError{Label: label, Map: mapStr, Cause: rec, Stack: debug.Stack()}
			opts.Logger.Error("Argument assertion fault",
				"err", ie,
				"stack", string(ie.Stack),
			)
			result, err = nil, ie
		}
	}()

	norm := normalize(&opts, a.expander(&opts), mapStr, values, cfg.length)
	result = bind(&opts, label, norm)

	failure := chain.Run(result)
	if failure == nil {
		return result, nil
	}

	return report(&opts, result, failure)
}

// expander returns the expansion function for opts. The built-in
// tokenizer goes through the token cache.
func (a *Argsert) expander(opts *Options) func(string) []string {
	if opts.Expander != nil {
		return func(mapStr string) []string {
			return slices.Clone(opts.Expander(mapStr))
		}
	}
	return func(mapStr string) []string {
		return a.tokens.GetOrCreate(mapStr, ExpandTokens)
	}
}

///////////////////////////////////////////////////////////////////////////////
// Call handles
///////////////////////////////////////////////////////////////////////////////

// Call is a call-scoped handle returned by Once.
type Call struct {
	argsert *Argsert
	only    []string
	spent   atomic.Bool
}

// Enabled returns the validators the next assertion through c will
// run.
func (c *Call) Enabled() []string {
	if len(c.only) > 0 && !c.spent.Load() {
		return slices.Clone(c.only)
	}
	return c.argsert.Enabled()
}

// Assert is Argsert.Assert restricted by c.
func (c *Call) Assert(mapStr string, values []any, opts ...CallOption) (*Result, error) {
	return c.AssertNamed("", mapStr, values, opts...)
}

// AssertNamed is Argsert.AssertNamed restricted by c.
func (c *Call) AssertNamed(label, mapStr string, values []any, opts ...CallOption) (*Result, error) {
	cfg := newCallConfig(opts)
	c.apply(&cfg)
	return c.argsert.assert(label, mapStr, values, cfg)
}

// AssertLoose is Argsert.AssertLoose restricted by c.
func (c *Call) AssertLoose(args ...any) (*Result, error) {
	label, mapStr, values, cfg, err := parseLoose(args)
	if err != nil {
		return nil, err
	}
	c.apply(&cfg)
	return c.argsert.assert(label, mapStr, values, cfg)
}

// apply consumes the restriction. An explicit validator passed with
// the call still wins.
func (c *Call) apply(cfg *callConfig) {
	if len(c.only) == 0 || !c.spent.CompareAndSwap(false, true) {
		return
	}
	if cfg.selector.IsZero() && len(cfg.only) == 0 {
		cfg.only = slices.Clone(c.only)
	}
}

///////////////////////////////////////////////////////////////////////////////
// Loose arguments
///////////////////////////////////////////////////////////////////////////////

// isMap reports whether s looks like an assertion map rather than a
// label.
func isMap(s string) bool {
	return strings.ContainsAny(s, openDecoration)
}

func parseLoose(args []any) (label, mapStr string, values []any, cfg callConfig, err error) {
	if len(args) == 0 {
		return "", "", nil, cfg, nil
	}

	first, ok := args[0].(string)
	if !ok {
		return "", "", nil, cfg, fmt.Errorf("%w: first argument must be a string, got %T", ErrInvalidLooseArgs, args[0])
	}

	rest := args[1:]
	if isMap(first) {
		mapStr = first
	} else {
		label = first
		if len(rest) == 0 {
			return label, "", nil, cfg, nil
		}
		if mapStr, ok = rest[0].(string); !ok {
			return "", "", nil, cfg, fmt.Errorf("%w: map must be a string, got %T", ErrInvalidLooseArgs, rest[0])
		}
		rest = rest[1:]
	}

	if len(rest) > 0 {
		if values, err = toValues(rest[0]); err != nil {
			return "", "", nil, cfg, err
		}
		rest = rest[1:]
	}

	for _, extra := range rest {
		switch v := extra.(type) {
		case nil:
		case int:
			cfg.length = v
		case string:
			cfg.selector = ByName(v)
		case Selector:
			cfg.selector = v
		case ValidatorFunc:
			cfg.selector = Inline(v)
		case func(*Result) *Failure:
			cfg.selector = Inline(v)
		default:
			return "", "", nil, cfg, fmt.Errorf("%w: unexpected %T", ErrInvalidLooseArgs, extra)
		}
	}

	return label, mapStr, values, cfg, nil
}

///////////////////////////////////////////////////////////////////////////////
// Global Singleton and Package Functions
///////////////////////////////////////////////////////////////////////////////

var _gArgsert *Argsert = nil

func init() {
	_gArgsert = New(Options{})
}

// Default returns the package-level instance used by the package
// functions.
func Default() *Argsert {
	return _gArgsert
}

// Assert validates values against mapStr with the package-level
// instance.
func Assert(mapStr string, values []any, opts ...CallOption) (*Result, error) {
	return _gArgsert.Assert(mapStr, values, opts...)
}

// AssertNamed is AssertNamed on the package-level instance.
func AssertNamed(label, mapStr string, values []any, opts ...CallOption) (*Result, error) {
	return _gArgsert.AssertNamed(label, mapStr, values, opts...)
}
