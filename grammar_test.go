package argsert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"basic", "<string> <number> [string]", []string{"<string>", "<number>", "[string]"}},
		{"named", "<name:string> [age:number|string]", []string{"<name:string>", "[age:number|string]"}},
		{"extra_whitespace", "  <a:string>\t[b]\n ", []string{"<a:string>", "[b]"}},
		{"undecorated_words_ignored", "foo <string> bar", []string{"<string>"}},
		{"outer_garbage_trimmed", "x<string>y", []string{"<string>"}},
		{"empty_tokens", "<> []", []string{"<>", "[]"}},
		{"repeat_marker_kept", "<string> [number...]", []string{"<string>", "[number...]"}},
		{"unterminated", "<string", nil},
		{"empty", "", nil},
		{"only_spaces", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandTokens(tt.in))
		})
	}
}

func TestStripToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<string>", "string"},
		{"[name:string|number]", "name:string|number"},
		{"[ any ]", "any"},
		{"<>", ""},
		{"string", "string"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripToken(tt.in))
		})
	}
}

func TestCutRepeat(t *testing.T) {
	t.Run("WithMarker", func(t *testing.T) {
		token, ok := CutRepeat("[string...]")
		assert.True(t, ok)
		assert.Equal(t, "[string]", token)
	})

	t.Run("OnlyFirstMarkerRemoved", func(t *testing.T) {
		token, ok := CutRepeat("[a...b...]")
		assert.True(t, ok)
		assert.Equal(t, "[ab...]", token)
	})

	t.Run("WithoutMarker", func(t *testing.T) {
		token, ok := CutRepeat("<string>")
		assert.False(t, ok)
		assert.Equal(t, "<string>", token)
	})
}

func TestDecodeToken(t *testing.T) {
	t.Run("Required", func(t *testing.T) {
		tok := DecodeToken("<string>", StripToken, "|")
		assert.True(t, tok.Required)
		assert.Empty(t, tok.Names)
		assert.Equal(t, []string{"string"}, tok.Types)
		assert.Equal(t, "", tok.Name())
	})

	t.Run("OptionalWithNameAndUnion", func(t *testing.T) {
		tok := DecodeToken("[age:number|string]", StripToken, "|")
		assert.False(t, tok.Required)
		assert.Equal(t, []string{"age"}, tok.Names)
		assert.Equal(t, []string{"number", "string"}, tok.Types)
		assert.Equal(t, "age", tok.Name())
	})

	t.Run("MultipleNamesSplitOnLastColon", func(t *testing.T) {
		tok := DecodeToken("<user:name:string>", StripToken, "|")
		assert.Equal(t, []string{"user", "name"}, tok.Names)
		assert.Equal(t, []string{"string"}, tok.Types)
		assert.Equal(t, "user", tok.Name())
	})

	t.Run("EmptyBody", func(t *testing.T) {
		tok := DecodeToken("[]", StripToken, "|")
		assert.False(t, tok.Required)
		assert.Empty(t, tok.Types)
	})

	t.Run("NameWithoutTypes", func(t *testing.T) {
		tok := DecodeToken("<id:>", StripToken, "|")
		assert.Equal(t, "id", tok.Name())
		assert.Empty(t, tok.Types)
	})

	t.Run("CustomSeparator", func(t *testing.T) {
		tok := DecodeToken("<string,number>", StripToken, ",")
		assert.Equal(t, []string{"string", "number"}, tok.Types)
	})

	t.Run("EmptyUnionMembersDropped", func(t *testing.T) {
		tok := DecodeToken("<string||number|>", StripToken, "|")
		assert.Equal(t, []string{"string", "number"}, tok.Types)
	})
}
