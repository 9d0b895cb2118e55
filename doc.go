// Package argsert provides lightweight, declarative runtime assertions
// for function arguments.
//
// An assertion map is a compact grammar describing the expected
// positional parameters of a call:
//
//	<name:string> <age:number|string> [tags:array...]
//
// Each whitespace separated token reads as follows:
//   - `<...>` declares a required argument, `[...]` an optional one.
//   - An optional `name:` prefix gives the argument a display name used in
//     failure messages. Without it, positions are called first, second,
//     third and so on.
//   - The type union is a list of type tags joined by the separator
//     (default `|`). The tag `any` matches every value.
//   - A trailing `...` repeats the token until every supplied argument
//     has one.
//
// Type tags are inferred from the supplied values by [TypeOf]:
// undefined, null, regexp, uuid, date, array, string, number, boolean,
// function and object. Pass [Undefined] for arguments that were not
// supplied at all; trailing Undefined values do not count as arguments.
//
// At call time the values are bound to the map and run through an
// ordered list of validators until one fails:
//   - unmet: fewer arguments than required positions
//   - extra: more arguments than declared positions
//   - mismatch: a value whose type tag is not allowed at its position
//
// Validators can be added, removed, enabled and disabled on an
// [Argsert] instance. A single call can be restricted to chosen
// validators with [WithValidator], [WithOnly] or a [Call] handle from
// [Argsert.Once], none of which touch the instance's shared state.
//
// How a failure reaches the caller is decided by the [ErrorPolicy]:
//   - Throw (default): the assertion returns the error.
//   - Suppress: the error is attached to [Result.Failure] and no error
//     is returned.
//   - Callback: a handler receives the error and the result, then the
//     result is returned as with Suppress.
//
// Panics raised while parsing, binding or validating (for instance by
// a custom expander or validator) are recovered, logged and returned as
// an [*InternalError] wrapping [ErrInternalFault], whatever the policy.
//
// Example:
//
//	func AddUser(args ...any) error {
//	    _, err := argsert.AssertNamed("AddUser", "<string> <age:number> [email:string]", args)
//	    return err
//	}
//
// Message templates are rendered with golang.org/x/text/message, so
// they can be localised through [Options.Language] and
// [Options.Catalog].
package argsert
