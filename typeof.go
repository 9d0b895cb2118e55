package argsert

import (
	"reflect"

	"github.com/tidwall/gjson"
)

// UndefinedValue is the type of Undefined.
type UndefinedValue struct{}

// Undefined marks an argument that was not supplied at all, as opposed
// to one supplied as nil. Trailing Undefined values are not counted
// towards the number of actual arguments.
var Undefined = UndefinedValue{}

// TypeParser infers the type tag of a value.
type TypeParser func(val any) string

// TypeOf is the default TypeParser.
//
// Supported tags:
//   - undefined: Undefined
//   - null: untyped nil and nil pointers, maps, funcs, chans, interfaces
//   - regexp: regexp.Regexp and *regexp.Regexp
//   - uuid: uuid.UUID
//   - date: time.Time
//   - array: slices and arrays
//   - string, number, boolean, function
//   - object: everything else (structs, maps, pointers to them)
//
// A gjson.Result is tagged by the kind of JSON it holds.
func TypeOf(val any) string {
	if val == nil {
		return TypeNull
	}

	switch v := val.(type) {
	case UndefinedValue:
		return TypeUndefined
	case gjson.Result:
		return jsonTypeOf(v)
	case *gjson.Result:
		if v == nil {
			return TypeNull
		}
		return jsonTypeOf(*v)
	}

	value := reflect.ValueOf(val)
	typ := value.Type()

	if isSpecialType(typ) {
		return specialTypeTag(typ)
	}

	switch value.Kind() {
	case reflect.Ptr:
		if value.IsNil() {
			return TypeNull
		}
		if isSpecialType(typ.Elem()) {
			return specialTypeTag(typ.Elem())
		}
		return TypeObject
	case reflect.Interface, reflect.Map, reflect.Chan:
		if value.IsNil() {
			return TypeNull
		}
		return TypeObject
	case reflect.Func:
		if value.IsNil() {
			return TypeNull
		}
		return TypeFunction
	case reflect.Slice, reflect.Array:
		return TypeArray
	case reflect.String:
		return TypeString
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return TypeNumber
	default:
		return TypeObject
	}
}

// jsonTypeOf maps a gjson result onto the type tag vocabulary.
func jsonTypeOf(r gjson.Result) string {
	switch r.Type {
	case gjson.Null:
		if !r.Exists() {
			return TypeUndefined
		}
		return TypeNull
	case gjson.False, gjson.True:
		return TypeBoolean
	case gjson.Number:
		return TypeNumber
	case gjson.String:
		return TypeString
	default:
		if r.IsArray() {
			return TypeArray
		}
		return TypeObject
	}
}

// isSpecialType checks if a type should get its own tag rather than
// the one its kind implies. uuid.UUID would otherwise be an array and
// time.Time an object.
func isSpecialType(t reflect.Type) bool {
	switch t {
	case RegexpType, UUIDType, TimeType:
		return true
	default:
		return false
	}
}

func specialTypeTag(t reflect.Type) string {
	switch t {
	case RegexpType:
		return TypeRegexp
	case UUIDType:
		return TypeUUID
	case TimeType:
		return TypeDate
	default:
		return TypeObject
	}
}
