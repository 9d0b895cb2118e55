package argsert

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

var (
	ErrUnknownOption      = errors.New("unknown option")
	ErrInvalidOptionValue = errors.New("invalid value for option")
)

// Expander splits an assertion map into raw tokens, decorations included.
type Expander func(mapStr string) []string

// Stripper removes the required/optional decoration from a raw token.
type Stripper func(token string) string

// Templates are the message formats used by the built-in validators.
// Each one is handed to a golang.org/x/text/message printer, so a
// template may also be a key registered in Options.Catalog.
type Templates struct {
	Unmet    string // args: required count, actual count
	Extra    string // args: max count, actual count
	Mismatch string // args: position, inferred type, allowed types
	Unknown  string // args: validator name
	Or       string // conjunction between allowed types
}

// Options configures an Argsert instance. Zero valued fields keep
// their defaults.
type Options struct {
	Separator string
	Any       string
	Expander  Expander
	Stripper  Stripper
	Parser    TypeParser
	Strict    bool
	Positions []string
	Templates Templates
	OnError   ErrorPolicy

	// Validators replaces the built-in set (unmet, extra, mismatch)
	// when non-nil. Order is execution order.
	Validators []NamedValidator

	// Disabled lists validators that start disabled. Reset restores
	// this state.
	Disabled []string

	Language language.Tag
	Catalog  catalog.Catalog
	Logger   *slog.Logger
}

// NamedValidator pairs a registry name with its Validator.
type NamedValidator struct {
	Name string
	Validator
}

func defaultTemplates() Templates {
	return Templates{
		Unmet:    DefaultUnmetTemplate,
		Extra:    DefaultExtraTemplate,
		Mismatch: DefaultMismatchTemplate,
		Unknown:  DefaultUnknownTemplate,
		Or:       DefaultOrTemplate,
	}
}

// merge returns t with every empty field taken from def.
func (t Templates) merge(def Templates) Templates {
	if t.Unmet == "" {
		t.Unmet = def.Unmet
	}
	if t.Extra == "" {
		t.Extra = def.Extra
	}
	if t.Mismatch == "" {
		t.Mismatch = def.Mismatch
	}
	if t.Unknown == "" {
		t.Unknown = def.Unknown
	}
	if t.Or == "" {
		t.Or = def.Or
	}
	return t
}

// withDefaults merges opts onto the package defaults.
func (opts Options) withDefaults() Options {
	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}
	if opts.Any == "" {
		opts.Any = DefaultAny
	}
	if opts.Parser == nil {
		opts.Parser = TypeOf
	}
	if opts.Positions == nil {
		opts.Positions = slices.Clone(DefaultPositions)
	}
	opts.Templates = opts.Templates.merge(defaultTemplates())
	if opts.Language == language.Und {
		opts.Language = language.English
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return opts
}

// strip runs the configured stripper or the built-in one.
func (opts *Options) strip(token string) string {
	if opts.Stripper != nil {
		return opts.Stripper(token)
	}
	return StripToken(token)
}

// get returns the option stored under key, reporting whether the key
// is known.
func (opts *Options) get(key string) (any, bool) {
	switch key {
	case OptionSeparator:
		return opts.Separator, true
	case OptionAny:
		return opts.Any, true
	case OptionExpander:
		return opts.Expander, true
	case OptionStripper:
		return opts.Stripper, true
	case OptionParser:
		return opts.Parser, true
	case OptionStrict:
		return opts.Strict, true
	case OptionPositions:
		return opts.Positions, true
	case OptionTemplates:
		return opts.Templates, true
	case OptionOnError:
		return opts.OnError, true
	case OptionLanguage:
		return opts.Language, true
	case OptionCatalog:
		return opts.Catalog, true
	case OptionLogger:
		return opts.Logger, true
	default:
		return nil, false
	}
}

// set stores val under key. Function valued options accept either the
// named type or its underlying func signature.
func (opts *Options) set(key string, val any) error {
	switch key {
	case OptionSeparator:
		return setTyped(&opts.Separator, key, val)
	case OptionAny:
		return setTyped(&opts.Any, key, val)
	case OptionStrict:
		return setTyped(&opts.Strict, key, val)
	case OptionPositions:
		return setTyped(&opts.Positions, key, val)
	case OptionLanguage:
		return setTyped(&opts.Language, key, val)
	case OptionCatalog:
		return setTyped(&opts.Catalog, key, val)
	case OptionLogger:
		return setTyped(&opts.Logger, key, val)
	case OptionTemplates:
		t, ok := val.(Templates)
		if !ok {
			return fmt.Errorf("%w %s: %T", ErrInvalidOptionValue, key, val)
		}
		opts.Templates = t.merge(defaultTemplates())
		return nil
	case OptionOnError:
		switch v := val.(type) {
		case ErrorPolicy:
			opts.OnError = v
		case bool:
			opts.OnError = PolicyFromBool(v)
		case ErrorHandler:
			opts.OnError = Callback(v)
		case func(error, *Result):
			opts.OnError = Callback(v)
		default:
			return fmt.Errorf("%w %s: %T", ErrInvalidOptionValue, key, val)
		}
		return nil
	case OptionExpander:
		switch v := val.(type) {
		case Expander:
			opts.Expander = v
		case func(string) []string:
			opts.Expander = v
		case nil:
			opts.Expander = nil
		default:
			return fmt.Errorf("%w %s: %T", ErrInvalidOptionValue, key, val)
		}
		return nil
	case OptionStripper:
		switch v := val.(type) {
		case Stripper:
			opts.Stripper = v
		case func(string) string:
			opts.Stripper = v
		case nil:
			opts.Stripper = nil
		default:
			return fmt.Errorf("%w %s: %T", ErrInvalidOptionValue, key, val)
		}
		return nil
	case OptionParser:
		switch v := val.(type) {
		case TypeParser:
			opts.Parser = v
		case func(any) string:
			opts.Parser = v
		default:
			return fmt.Errorf("%w %s: %T", ErrInvalidOptionValue, key, val)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOption, key)
	}
}

func setTyped[T any](dst *T, key string, val any) error {
	v, ok := val.(T)
	if !ok {
		return fmt.Errorf("%w %s: %T", ErrInvalidOptionValue, key, val)
	}
	*dst = v
	return nil
}
