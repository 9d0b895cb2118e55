package argsert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindMap(opts *Options, label, mapStr string, values ...any) *Result {
	return bind(opts, label, normalize(opts, ExpandTokens, mapStr, values, 0))
}

func TestBind(t *testing.T) {
	t.Run("Descriptors", func(t *testing.T) {
		result := bindMap(newTestOptions(false), "addUser", "<name:string> [number]", "Milton")

		assert.Equal(t, "addUser", result.Name)
		assert.Equal(t, []int{0, 1}, result.Keys)
		assert.Equal(t, []int{0}, result.Required)
		assert.Equal(t, []int{1}, result.Optional)
		assert.Equal(t, 1, result.Actual)
		assert.Equal(t, 2, result.Max)
		require.Len(t, result.Args, 2)

		name := result.Arg(0)
		assert.Equal(t, 0, name.Index)
		assert.Equal(t, "name", name.Name)
		assert.True(t, name.Required)
		assert.Equal(t, []string{"string"}, name.Types)
		assert.Equal(t, "Milton", name.Value)
		assert.Equal(t, TypeString, name.Type)

		second := result.Arg(1)
		assert.Equal(t, "second", second.Name)
		assert.False(t, second.Required)
		assert.Equal(t, Undefined, second.Value)
		assert.Equal(t, TypeUndefined, second.Type)
		assert.Equal(t, []string{"number", TypeUndefined}, second.Types)
	})

	t.Run("OptionalNullAllowedWhenNotStrict", func(t *testing.T) {
		result := bindMap(newTestOptions(false), "", "<string> [number]", "a", nil)
		assert.Equal(t, []string{"number", TypeNull}, result.Arg(1).Types)
	})

	t.Run("OptionalUndefinedNotAllowedWhenStrict", func(t *testing.T) {
		result := bindMap(newTestOptions(true), "", "<string> [number]", "a")
		assert.Equal(t, []string{"number"}, result.Arg(1).Types)
	})

	t.Run("RequiredUndefinedNotAllowed", func(t *testing.T) {
		result := bindMap(newTestOptions(false), "", "<string> <number>", "a")
		assert.Equal(t, []string{"number"}, result.Arg(1).Types)
	})

	t.Run("EmptyTokenDefaultsToAny", func(t *testing.T) {
		result := bindMap(newTestOptions(false), "", "<> [id:]", 1, 2)
		assert.Equal(t, []string{DefaultAny}, result.Arg(0).Types)
		assert.Equal(t, []string{DefaultAny}, result.Arg(1).Types)
		assert.Equal(t, "id", result.Arg(1).Name)
	})

	t.Run("EmptyTokenStaysEmptyWhenStrict", func(t *testing.T) {
		result := bindMap(newTestOptions(true), "", "<>", 1)
		assert.Empty(t, result.Arg(0).Types)
	})

	t.Run("CountsAddUp", func(t *testing.T) {
		result := bindMap(newTestOptions(false), "", "<a> [b] <c> [d]", 1, 2, 3, 4, 5, 6)
		assert.Equal(t, result.Max, len(result.Required)+len(result.Optional))
		assert.Len(t, result.Args, result.Max)
	})

	t.Run("PositionNamesPastDefaults", func(t *testing.T) {
		result := bindMap(newTestOptions(false), "", "<any>", 1, 2, 3, 4, 5, 6, 7, 8, 9)
		assert.Equal(t, "seventh", result.Arg(6).Name)
		assert.Equal(t, "8th", result.Arg(7).Name)
		assert.Equal(t, "9th", result.Arg(8).Name)
	})

	t.Run("ArgOutOfRange", func(t *testing.T) {
		result := bindMap(newTestOptions(false), "", "<string>", "a")
		assert.Nil(t, result.Arg(-1))
		assert.Nil(t, result.Arg(1))
	})
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1:   "1st",
		2:   "2nd",
		3:   "3rd",
		4:   "4th",
		11:  "11th",
		12:  "12th",
		13:  "13th",
		21:  "21st",
		22:  "22nd",
		23:  "23rd",
		101: "101st",
		111: "111th",
	}

	for n, want := range tests {
		assert.Equal(t, want, ordinal(n), "ordinal(%d)", n)
	}
}

func TestArgAllows(t *testing.T) {
	arg := &Arg{Types: []string{"string", "number"}}
	assert.True(t, arg.Allows("string", DefaultAny))
	assert.True(t, arg.Allows("number", DefaultAny))
	assert.False(t, arg.Allows("boolean", DefaultAny))

	anyArg := &Arg{Types: []string{DefaultAny}}
	assert.True(t, anyArg.Allows("boolean", DefaultAny))
}
