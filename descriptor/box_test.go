package descriptor_test

import (
	"testing"

	"ctor-resolver/descriptor"
	"ctor-resolver/primitive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxUnbox(t *testing.T) {
	t.Parallel()

	double := descriptor.Primitive(primitive.KindDouble)
	matrix := descriptor.Array(descriptor.ArrayOf(double, 1),
		descriptor.Array(double, descriptor.Double(1), descriptor.Double(2)),
		descriptor.Array(double, descriptor.Double(3)),
	)

	boxed := descriptor.Box(matrix)
	assert.Equal(t, descriptor.ArrayOf(descriptor.Boxed(primitive.KindDouble), 2), boxed.Type())
	require.Equal(t, 2, boxed.Len())
	assert.Equal(t, descriptor.ArrayOf(descriptor.Boxed(primitive.KindDouble), 1), boxed.Elements()[0].Type())
	assert.Equal(t, 2.0, boxed.Elements()[0].Elements()[1].Interface())

	unboxed, err := descriptor.Unbox(boxed)
	require.NoError(t, err)
	assert.Equal(t, matrix, unboxed)
}

func TestBoxLeavesOtherValuesAlone(t *testing.T) {
	t.Parallel()

	names := descriptor.Array(descriptor.StringType, descriptor.Str("a"))
	assert.Equal(t, names, descriptor.Box(names))
	assert.Equal(t, descriptor.Int(3), descriptor.Box(descriptor.Int(3)))
	assert.True(t, descriptor.Box(descriptor.Null()).IsNull())

	integers := descriptor.Array(descriptor.Boxed(primitive.KindInt), descriptor.Int(1))
	assert.Equal(t, integers, descriptor.Box(integers))
}

func TestUnboxRejectsNullElements(t *testing.T) {
	t.Parallel()

	integers := descriptor.Array(descriptor.Boxed(primitive.KindInt), descriptor.Int(1), descriptor.Null())

	_, err := descriptor.Unbox(integers)
	assert.ErrorIs(t, err, descriptor.ErrNullElement)
}
