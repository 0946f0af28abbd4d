package introspect_test

import (
	"reflect"
	"testing"

	"ctor-resolver/descriptor"
	"ctor-resolver/introspect"
	"ctor-resolver/primitive"
	"ctor-resolver/zoo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float64

func TestTypeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rt   reflect.Type
		want string
	}{
		{reflect.TypeFor[bool](), "boolean"},
		{reflect.TypeFor[int8](), "byte"},
		{reflect.TypeFor[int16](), "short"},
		{reflect.TypeFor[uint16](), "char"},
		{reflect.TypeFor[int32](), "int"},
		{reflect.TypeFor[int](), "long"},
		{reflect.TypeFor[int64](), "long"},
		{reflect.TypeFor[float32](), "float"},
		{reflect.TypeFor[float64](), "double"},
		{reflect.TypeFor[*int32](), "Integer"},
		{reflect.TypeFor[*float64](), "Double"},
		{reflect.TypeFor[string](), "String"},
		{reflect.TypeFor[[]int32](), "int[]"},
		{reflect.TypeFor[[][]string](), "String[][]"},
		{reflect.TypeFor[any](), "Object"},
		{reflect.TypeFor[[]any](), "Object[]"},
		{reflect.TypeFor[zoo.Animal](), "zoo.Animal"},
		{reflect.TypeFor[*zoo.Dog](), "*zoo.Dog"},
		{reflect.TypeFor[celsius](), "introspect_test.celsius"},
		{reflect.TypeFor[uint8](), "uint8"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, introspect.TypeOf(tt.rt).String())
		})
	}

	assert.True(t, introspect.TypeOf(nil).IsZero())
}

func TestValueOf(t *testing.T) {
	t.Parallel()

	n := int32(5)
	var nilDog *zoo.Dog
	dog := zoo.NewDog("rex")

	tests := []struct {
		name string
		in   any
		want descriptor.Value
	}{
		{"nil", nil, descriptor.Null()},
		{"nil pointer", nilDog, descriptor.Null()},
		{"nil slice", []string(nil), descriptor.Null()},
		{"bool", true, descriptor.Bool(true)},
		{"int8", int8(-3), descriptor.Byte(-3)},
		{"uint16", uint16('x'), descriptor.Char('x')},
		{"int32", int32(7), descriptor.Int(7)},
		{"int", 7, descriptor.Long(7)},
		{"float32", float32(1.5), descriptor.Float(1.5)},
		{"pointer to int32", &n, descriptor.Int(5)},
		{"string", "a", descriptor.Str("a")},
		{"object", dog, descriptor.Object(descriptor.Reference("*zoo.Dog"), dog)},
		{"slice", []int16{1, 2}, descriptor.Array(descriptor.Primitive(primitive.KindShort),
			descriptor.Short(1), descriptor.Short(2))},
		{"any slice", []any{"a", int32(1), nil}, descriptor.Array(descriptor.ObjectType,
			descriptor.Str("a"), descriptor.Int(1), descriptor.Null())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, introspect.ValueOf(tt.in))
		})
	}
}

func TestValueOf_Unbox(t *testing.T) {
	t.Parallel()

	v := introspect.ValueOf([]*int32{new(int32)})
	require.Equal(t, "Integer[]", v.Type().String())

	unboxed, err := descriptor.Unbox(v)
	require.NoError(t, err)
	assert.Equal(t, "int[]", unboxed.Type().String())

	_, err = descriptor.Unbox(introspect.ValueOf([]*int32{nil}))
	assert.ErrorIs(t, err, descriptor.ErrNullElement)
}
