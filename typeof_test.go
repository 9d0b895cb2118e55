package argsert

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

type testUser struct {
	Name string
}

func TestTypeOf(t *testing.T) {
	var (
		nilPtr   *testUser
		nilMap   map[string]int
		nilFunc  func()
		nilSlice []int
		nilErr   error
		id       = uuid.New()
		re       = regexp.MustCompile(`^a+$`)
	)

	tests := []struct {
		name string
		val  any
		want string
	}{
		{"nil", nil, TypeNull},
		{"undefined", Undefined, TypeUndefined},
		{"string", "milton", TypeString},
		{"empty_string", "", TypeString},
		{"int", 44, TypeNumber},
		{"int64", int64(-1), TypeNumber},
		{"uint8", uint8(1), TypeNumber},
		{"float", 1.5, TypeNumber},
		{"complex", complex(1, 2), TypeNumber},
		{"bool", true, TypeBoolean},
		{"slice", []string{"a"}, TypeArray},
		{"nil_slice", nilSlice, TypeArray},
		{"array", [2]int{1, 2}, TypeArray},
		{"bytes", []byte("x"), TypeArray},
		{"map", map[string]int{"a": 1}, TypeObject},
		{"nil_map", nilMap, TypeNull},
		{"struct", testUser{Name: "a"}, TypeObject},
		{"struct_ptr", &testUser{}, TypeObject},
		{"nil_ptr", nilPtr, TypeNull},
		{"func", func() {}, TypeFunction},
		{"nil_func", nilFunc, TypeNull},
		{"chan", make(chan int), TypeObject},
		{"error", errors.New("x"), TypeObject},
		{"nil_error", nilErr, TypeNull},
		{"regexp", re, TypeRegexp},
		{"uuid", id, TypeUUID},
		{"uuid_ptr", &id, TypeUUID},
		{"time", time.Now(), TypeDate},
		{"duration", time.Second, TypeNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeOf(tt.val))
		})
	}
}

func TestTypeOfJSON(t *testing.T) {
	doc := `{"name":"milton","age":44,"admin":false,"tags":["a"],"boss":{"name":"bill"},"fired":null}`

	tests := []struct {
		path string
		want string
	}{
		{"name", TypeString},
		{"age", TypeNumber},
		{"admin", TypeBoolean},
		{"tags", TypeArray},
		{"boss", TypeObject},
		{"fired", TypeNull},
		{"stapler", TypeUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeOf(gjson.Get(doc, tt.path)))
		})
	}

	t.Run("Pointer", func(t *testing.T) {
		res := gjson.Get(doc, "tags")
		assert.Equal(t, TypeArray, TypeOf(&res))

		var nilRes *gjson.Result
		assert.Equal(t, TypeNull, TypeOf(nilRes))
	})
}
