package argsert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToValues(t *testing.T) {
	arr := [2]string{"a", "b"}
	slice := []int{1, 2}
	var nilSlicePtr *[]int

	tests := []struct {
		name    string
		in      any
		want    []any
		wantErr bool
	}{
		{"nil", nil, nil, false},
		{"any_slice", []any{"a", 1}, []any{"a", 1}, false},
		{"typed_slice", []string{"a", "b"}, []any{"a", "b"}, false},
		{"array", arr, []any{"a", "b"}, false},
		{"slice_ptr", &slice, []any{1, 2}, false},
		{"nil_ptr", nilSlicePtr, nil, false},
		{"empty", []int{}, []any{}, false},
		{"string", "a", nil, true},
		{"int", 1, nil, true},
		{"map", map[string]int{}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toValues(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLooseArgs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArgs(t *testing.T) {
	assert.Equal(t, []any{"a", 1, nil}, Args("a", 1, nil))
	assert.Nil(t, Args())
}

func TestIsMap(t *testing.T) {
	assert.True(t, isMap("<string>"))
	assert.True(t, isMap("[number]"))
	assert.False(t, isMap("addUser"))
	assert.False(t, isMap(""))
}
