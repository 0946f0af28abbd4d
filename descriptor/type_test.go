package descriptor_test

import (
	"fmt"
	"testing"

	"ctor-resolver/descriptor"
	"ctor-resolver/primitive"

	"github.com/stretchr/testify/assert"
)

func TestBoxedOfUnboxedOfAreInverse(t *testing.T) {
	t.Parallel()

	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		p := descriptor.Primitive(k)
		b := descriptor.Boxed(k)

		assert.Equal(t, b, descriptor.BoxedOf(p), k.String())
		assert.Equal(t, p, descriptor.UnboxedOf(b), k.String())
		assert.Equal(t, p, descriptor.UnboxedOf(descriptor.BoxedOf(p)), k.String())
		assert.Equal(t, b, descriptor.BoxedOf(descriptor.UnboxedOf(b)), k.String())
	}
}

func TestBoxedOfIdentity(t *testing.T) {
	t.Parallel()

	intArray := descriptor.ArrayOf(descriptor.Primitive(primitive.KindInt), 1)
	dog := descriptor.Reference("Dog")

	assert.Equal(t, intArray, descriptor.BoxedOf(intArray))
	assert.Equal(t, intArray, descriptor.UnboxedOf(intArray))
	assert.Equal(t, dog, descriptor.BoxedOf(dog))
	assert.Equal(t, dog, descriptor.UnboxedOf(dog))
	assert.Equal(t, descriptor.StringType, descriptor.BoxedOf(descriptor.StringType))
}

func TestArrayOf(t *testing.T) {
	t.Parallel()

	double := descriptor.Primitive(primitive.KindDouble)

	assert.Equal(t, double, descriptor.ArrayOf(double, 0))
	assert.Equal(t, 2, descriptor.ArrayOf(double, 2).Dimension())
	assert.Equal(t, descriptor.ArrayOf(double, 4), descriptor.ArrayOf(descriptor.ArrayOf(double, 2), 2))
	assert.Equal(t, double, descriptor.ArrayOf(double, 3).Element())
	assert.Equal(t, descriptor.ArrayOf(double, 2), descriptor.ArrayOf(double, 3).Component())
	assert.True(t, descriptor.Primitive(primitive.KindInt).Component().IsZero())

	assert.False(t, descriptor.ArrayOf(double, 1).IsPrimitive())
	assert.True(t, descriptor.ArrayOf(double, 1).Element().IsPrimitive())
}

func TestReferenceNormalizesBoxedNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, descriptor.Boxed(primitive.KindInt), descriptor.Reference("Integer"))
	assert.Equal(t, descriptor.CategoryReference, descriptor.Reference("Dog").Category())
	assert.True(t, descriptor.Reference("").IsZero())
}

func ExampleType_String() {
	fmt.Println(descriptor.Primitive(primitive.KindChar))
	fmt.Println(descriptor.Boxed(primitive.KindChar))
	fmt.Println(descriptor.ArrayOf(descriptor.StringType, 2))
	fmt.Println(descriptor.Type{})
	// Output:
	// char
	// Character
	// String[][]
	// null
}
