package argsert

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJSONArgs = errors.New("JSON arguments must be a valid JSON array")
)

// JSONArgs decodes a JSON array into positional values, for example
// the params of a JSON-RPC request. Elements keep their JSON kind:
// strings, numbers (float64), booleans, null, arrays ([]any) and
// objects (map[string]any).
func JSONArgs(params string) ([]any, error) {
	if !gjson.Valid(params) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidJSONArgs, params)
	}

	parsed := gjson.Parse(params)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidJSONArgs, parsed.Type)
	}

	elems := parsed.Array()
	values := make([]any, len(elems))
	for i, elem := range elems {
		values[i] = elem.Value()
	}
	return values, nil
}

// AssertJSON is Assert over the elements of a JSON array.
func (a *Argsert) AssertJSON(mapStr, params string, opts ...CallOption) (*Result, error) {
	values, err := JSONArgs(params)
	if err != nil {
		return nil, err
	}
	return a.Assert(mapStr, values, opts...)
}

// AssertJSONNamed is AssertNamed over the elements of a JSON array.
func (a *Argsert) AssertJSONNamed(label, mapStr, params string, opts ...CallOption) (*Result, error) {
	values, err := JSONArgs(params)
	if err != nil {
		return nil, err
	}
	return a.AssertNamed(label, mapStr, values, opts...)
}
