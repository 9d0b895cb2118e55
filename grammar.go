package argsert

import (
	"strings"
)

// This file contains the tokenizer for assertion maps. An assertion
// map describes the positional arguments of a single call:
//
// Map grammar:
//     <token> [<token>]^*          // whitespace separated
// token:
//     '<' <body> '>'              // required
//   | '[' <body> ']'              // optional
// body:
//     [<name> ':']^* <types> ['...']
// types:
//     <type> [<separator> <type>]^*  // separator defaults to '|'
//
// Example: "<name:string> <age:number|string> [tags:string...]"
//
// Characters outside the outermost brackets of a field are ignored,
// as are fields with no brackets at all.

// Token is a decoded assertion map token.
type Token struct {
	Raw      string   // Raw token, decorations included
	Required bool     // Opened with '<'
	Names    []string // Name segments before the last ':'
	Types    []string // Type union, empty members dropped
}

// ExpandTokens is the default Expander. It scans mapStr one
// whitespace separated field at a time and returns, for each field,
// the span from the first opening decoration to the last closing one.
func ExpandTokens(mapStr string) []string {
	var tokens []string

	i := 0
	for i < len(mapStr) {
		// Skip whitespace
		for i < len(mapStr) && isSpace(mapStr[i]) {
			i++
		}
		if i >= len(mapStr) {
			break
		}

		// Find the end of this field
		end := i
		for end < len(mapStr) && !isSpace(mapStr[end]) {
			end++
		}

		if token, ok := scanField(mapStr[i:end]); ok {
			tokens = append(tokens, token)
		}
		i = end
	}

	return tokens
}

// scanField extracts the decorated span of a single field.
func scanField(field string) (string, bool) {
	start := strings.IndexAny(field, openDecoration)
	if start == -1 {
		return "", false
	}

	end := -1
	for j := len(field) - 1; j > start; j-- {
		if field[j] == RequiredClose || field[j] == OptionalClose {
			end = j
			break
		}
	}
	if end == -1 {
		return "", false
	}

	return field[start : end+1], true
}

// StripToken is the default Stripper. It removes every decoration
// character and surrounding whitespace.
func StripToken(token string) string {
	var builder strings.Builder
	builder.Grow(len(token))

	for i := 0; i < len(token); i++ {
		if strings.IndexByte(decorationSet, token[i]) != -1 {
			continue
		}
		builder.WriteByte(token[i])
	}

	return strings.TrimSpace(builder.String())
}

// CutRepeat removes the first repeat marker from a raw token,
// reporting whether one was present.
func CutRepeat(raw string) (string, bool) {
	before, after, found := strings.Cut(raw, RepeatMarker)
	if !found {
		return raw, false
	}
	return before + after, true
}

// DecodeToken splits a raw token into its name segments and type
// union. strip removes decorations; sep separates union members.
func DecodeToken(raw string, strip Stripper, sep string) Token {
	tok := Token{
		Raw:      raw,
		Required: strings.HasPrefix(raw, string(RequiredOpen)),
	}

	body := strip(raw)

	typePart := body
	if idx := strings.LastIndex(body, NameDelimiter); idx >= 0 {
		tok.Names = strings.Split(body[:idx], NameDelimiter)
		typePart = body[idx+1:]
	}

	for _, t := range strings.Split(typePart, sep) {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		tok.Types = append(tok.Types, t)
	}

	return tok
}

// Name returns the first non-empty name segment, or "".
func (t Token) Name() string {
	for _, name := range t.Names {
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}
	return ""
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
