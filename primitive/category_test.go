package primitive_test

import (
	"math"
	"testing"

	"ctor-resolver/primitive"

	"github.com/stretchr/testify/assert"
)

func TestWidens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to primitive.KindEnum
		expected bool
	}{
		{primitive.KindByte, primitive.KindShort, true},
		{primitive.KindByte, primitive.KindChar, false},
		{primitive.KindShort, primitive.KindByte, false},
		{primitive.KindShort, primitive.KindChar, false},
		{primitive.KindChar, primitive.KindShort, false},
		{primitive.KindChar, primitive.KindInt, true},
		{primitive.KindInt, primitive.KindLong, true},
		{primitive.KindInt, primitive.KindInt, false},
		{primitive.KindLong, primitive.KindFloat, true},
		{primitive.KindLong, primitive.KindInt, false},
		{primitive.KindFloat, primitive.KindDouble, true},
		{primitive.KindDouble, primitive.KindFloat, false},
		{primitive.KindBoolean, primitive.KindInt, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.Name()+"->"+tt.to.Name(), func(t *testing.T) {
			assert.Equal(t, tt.expected, primitive.Widens(tt.from, tt.to))
		})
	}
}

func TestWidenAndNarrowAreDisjoint(t *testing.T) {
	t.Parallel()

	for from := primitive.KindEnum(1); int(from) < primitive.KindTotal; from++ {
		for to := primitive.KindEnum(1); int(to) < primitive.KindTotal; to++ {
			assert.False(t, primitive.Widens(from, to) && primitive.Narrows(from, to),
				"%s -> %s is both widening and narrowing", from, to)
		}
	}
}

func TestNarrows(t *testing.T) {
	t.Parallel()

	assert.True(t, primitive.Narrows(primitive.KindShort, primitive.KindByte))
	assert.True(t, primitive.Narrows(primitive.KindChar, primitive.KindShort))
	assert.True(t, primitive.Narrows(primitive.KindDouble, primitive.KindFloat))
	assert.False(t, primitive.Narrows(primitive.KindByte, primitive.KindChar))
	assert.False(t, primitive.Narrows(primitive.KindByte, primitive.KindShort))
	assert.False(t, primitive.Narrows(primitive.KindFloat, primitive.KindDouble))
	assert.False(t, primitive.Narrows(primitive.KindBoolean, primitive.KindByte))
}

func TestInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, primitive.InRange(primitive.KindByte, int16(-128)))
	assert.True(t, primitive.InRange(primitive.KindByte, int16(127)))
	assert.False(t, primitive.InRange(primitive.KindByte, int16(200)))
	assert.False(t, primitive.InRange(primitive.KindChar, int32(-1)))
	assert.True(t, primitive.InRange(primitive.KindChar, int32(math.MaxUint16)))
	assert.True(t, primitive.InRange(primitive.KindInt, int64(math.MinInt32)))
	assert.False(t, primitive.InRange(primitive.KindInt, int64(math.MaxInt32)+1))
	assert.True(t, primitive.InRange(primitive.KindFloat, float64(-1.5)))
	assert.False(t, primitive.InRange(primitive.KindFloat, math.MaxFloat64))
	assert.False(t, primitive.InRange(primitive.KindLong, float64(math.MaxInt64)))
	assert.True(t, primitive.InRange(primitive.KindLong, int64(math.MaxInt64)))
	assert.False(t, primitive.InRange(primitive.KindLong, math.NaN()))
	assert.False(t, primitive.InRange(primitive.KindBoolean, int32(0)))
	assert.False(t, primitive.InRange(primitive.KindInt, "1"))
}
