package argsert

import (
	"errors"
	"fmt"
	"reflect"
)

///////////////////////////////////////////////////////////////////////////////
// Helpers
///////////////////////////////////////////////////////////////////////////////

var (
	ErrInvalidLooseArgs = errors.New("invalid loose assertion arguments")
)

// toValues converts the values argument of the loose form to []any.
//
// Currently supports:
//   - nil (no values)
//   - []any as is
//   - any other slice or array, element by element
//   - a pointer to a slice or array
func toValues(v any) ([]any, error) {
	if v == nil {
		return nil, nil
	}
	if values, ok := v.([]any); ok {
		return values, nil
	}

	value := reflect.ValueOf(v)
	if value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil, nil
		}
		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Slice, reflect.Array:
		values := make([]any, value.Len())
		for i := range values {
			values[i] = value.Index(i).Interface()
		}
		return values, nil
	default:
		return nil, fmt.Errorf("%w: values must be a slice or array, got %T", ErrInvalidLooseArgs, v)
	}
}

// Args is shorthand for building a values slice at a call site:
//
//	argsert.Assert("<string> <number>", argsert.Args(name, age))
func Args(values ...any) []any {
	return values
}
