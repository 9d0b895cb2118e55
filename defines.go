package argsert

import (
	"reflect"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// constants for grammar decoration characters
const (
	RequiredOpen  = '<'
	RequiredClose = '>'
	OptionalOpen  = '['
	OptionalClose = ']'
	NameDelimiter = ":"
	RepeatMarker  = "..."
)

// defaults merged under caller supplied Options
const (
	DefaultSeparator = "|"
	DefaultAny       = "any"
)

// Type tags produced by TypeOf. These are the names used on the
// right-hand side of a token, e.g. <age:number>.
const (
	TypeUndefined = "undefined"
	TypeNull      = "null"
	TypeRegexp    = "regexp"
	TypeArray     = "array"
	TypeString    = "string"
	TypeNumber    = "number"
	TypeBoolean   = "boolean"
	TypeFunction  = "function"
	TypeObject    = "object"
	TypeUUID      = "uuid"
	TypeDate      = "date"
)

// Built-in validator names, in default execution order.
const (
	UnmetValidatorName    = "unmet"
	ExtraValidatorName    = "extra"
	MismatchValidatorName = "mismatch"
)

// Option keys understood by Option and SetOption.
const (
	OptionSeparator = "separator"
	OptionAny       = "any"
	OptionExpander  = "expander"
	OptionStripper  = "stripper"
	OptionParser    = "parser"
	OptionStrict    = "strict"
	OptionPositions = "positions"
	OptionTemplates = "templates"
	OptionOnError   = "onError"
	OptionLanguage  = "language"
	OptionCatalog   = "catalog"
	OptionLogger    = "logger"
)

// Default message templates. When replacing them keep the same
// number of %s verbs.
const (
	DefaultUnmetTemplate    = "expected at least %s argument(s) but got %s."
	DefaultExtraTemplate    = "expected no more than %s argument(s) but got %s."
	DefaultMismatchTemplate = "%s arg has type %s but only %s is allowed."
	DefaultUnknownTemplate  = "validator %s could not be found."
	DefaultOrTemplate       = "or"
)

// DefaultPositions are the friendly names for argument positions.
var DefaultPositions = []string{
	"first", "second", "third",
	"fourth", "fifth", "sixth",
	"seventh",
}

// reflect.TypeOf constants for type checks
var (
	RegexpType     = reflect.TypeOf(regexp.Regexp{})
	UUIDType       = reflect.TypeOf(uuid.UUID{})
	TimeType       = reflect.TypeOf(time.Time{})
	decorationSet  = string([]byte{RequiredOpen, RequiredClose, OptionalOpen, OptionalClose})
	openDecoration = string([]byte{RequiredOpen, OptionalOpen})
)
