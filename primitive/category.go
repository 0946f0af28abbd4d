package primitive

import (
	"math"

	"ctor-resolver/utils"
)

type CategoryEnum int

type ConversionPair struct {
	From, To KindEnum
}

const (
	CategoryWidening  CategoryEnum = 1 << iota // always range-safe, no value inspection
	CategoryNarrowing                          // accepted only when the value fits into the target bounds

	CategoryAll  = (1 << iota) - 1 //all categories combined
	CategoryNone = 0               // no categories selected
)

var conversionPairs map[CategoryEnum]map[ConversionPair]struct{}

func init() {
	conversionPairs = make(map[CategoryEnum]map[ConversionPair]struct{})

	conversionPairs[CategoryWidening] = wideningConversionPairs()
	conversionPairs[CategoryNarrowing] = narrowingConversionPairs()
}

// byte does not widen to char and short does not widen to byte: the tables
// are deliberately not mirror images of each other.
func wideningConversionPairs() map[ConversionPair]struct{} {
	return map[ConversionPair]struct{}{
		{KindByte, KindShort}:  {},
		{KindByte, KindInt}:    {},
		{KindByte, KindLong}:   {},
		{KindByte, KindFloat}:  {},
		{KindByte, KindDouble}: {},

		{KindShort, KindInt}:    {},
		{KindShort, KindLong}:   {},
		{KindShort, KindFloat}:  {},
		{KindShort, KindDouble}: {},

		{KindChar, KindInt}:    {},
		{KindChar, KindLong}:   {},
		{KindChar, KindFloat}:  {},
		{KindChar, KindDouble}: {},

		{KindInt, KindLong}:   {},
		{KindInt, KindFloat}:  {},
		{KindInt, KindDouble}: {},

		{KindLong, KindFloat}:  {},
		{KindLong, KindDouble}: {},

		{KindFloat, KindDouble}: {},
	}
}

func narrowingConversionPairs() map[ConversionPair]struct{} {
	return map[ConversionPair]struct{}{
		{KindShort, KindByte}: {},
		{KindShort, KindChar}: {},

		{KindChar, KindByte}:  {},
		{KindChar, KindShort}: {},

		{KindInt, KindByte}:  {},
		{KindInt, KindShort}: {},
		{KindInt, KindChar}:  {},

		{KindLong, KindByte}:  {},
		{KindLong, KindShort}: {},
		{KindLong, KindChar}:  {},
		{KindLong, KindInt}:   {},

		{KindFloat, KindByte}:  {},
		{KindFloat, KindShort}: {},
		{KindFloat, KindChar}:  {},
		{KindFloat, KindInt}:   {},
		{KindFloat, KindLong}:  {},

		{KindDouble, KindByte}:  {},
		{KindDouble, KindShort}: {},
		{KindDouble, KindChar}:  {},
		{KindDouble, KindInt}:   {},
		{KindDouble, KindLong}:  {},
		{KindDouble, KindFloat}: {},
	}
}

// Allowed reports whether the pair belongs to any of the given categories.
func Allowed(from, to KindEnum, allowed CategoryEnum) bool {
	pair := ConversionPair{from, to}
	for category := CategoryEnum(1); category&CategoryAll > 0; category <<= 1 {
		if allowed&category == 0 {
			continue
		}

		if _, ok := conversionPairs[category][pair]; ok {
			return true
		}
	}

	return false
}

// Widens reports whether from converts to to without inspecting the value.
func Widens(from, to KindEnum) bool {
	return Allowed(from, to, CategoryWidening)
}

// Narrows reports whether from may be narrowed to to, subject to InRange.
func Narrows(from, to KindEnum) bool {
	return Allowed(from, to, CategoryNarrowing)
}

// Bound is an inclusive [Min, Max] interval of a kind, in both integral and
// floating representation.
type Bound struct {
	MinInt, MaxInt     int64
	MinFloat, MaxFloat float64
}

var bounds = map[KindEnum]Bound{
	KindByte:   intBound(math.MinInt8, math.MaxInt8),
	KindShort:  intBound(math.MinInt16, math.MaxInt16),
	KindChar:   intBound(0, math.MaxUint16),
	KindInt:    intBound(math.MinInt32, math.MaxInt32),
	// float64(math.MaxInt64) rounds up to 2^63, which does not fit
	KindLong:   {MinInt: math.MinInt64, MaxInt: math.MaxInt64, MinFloat: -0x1p63, MaxFloat: math.Nextafter(0x1p63, 0)},
	KindFloat:  {MinInt: math.MinInt64, MaxInt: math.MaxInt64, MinFloat: -math.MaxFloat32, MaxFloat: math.MaxFloat32},
	KindDouble: {MinInt: math.MinInt64, MaxInt: math.MaxInt64, MinFloat: -math.MaxFloat64, MaxFloat: math.MaxFloat64},
}

func intBound(lo, hi int64) Bound {
	return Bound{MinInt: lo, MaxInt: hi, MinFloat: float64(lo), MaxFloat: float64(hi)}
}

// Bounds returns the inclusive interval of a numeric kind.
func Bounds(k KindEnum) (Bound, bool) {
	b, ok := bounds[k]
	return b, ok
}

// InRange reports whether the payload lies within the inclusive bounds of
// target. Integral payloads are compared exactly, floating payloads as
// float64; NaN is never in range.
func InRange(target KindEnum, payload any) bool {
	b, ok := bounds[target]
	if !ok {
		return false
	}

	switch v := payload.(type) {
	default:
		return false
	case int8:
		return utils.IsInRange(b.MinInt, int64(v), b.MaxInt)
	case int16:
		return utils.IsInRange(b.MinInt, int64(v), b.MaxInt)
	case uint16:
		return utils.IsInRange(b.MinInt, int64(v), b.MaxInt)
	case int32:
		return utils.IsInRange(b.MinInt, int64(v), b.MaxInt)
	case int64:
		return utils.IsInRange(b.MinInt, v, b.MaxInt)
	case float32:
		return utils.IsInRange(b.MinFloat, float64(v), b.MaxFloat)
	case float64:
		return utils.IsInRange(b.MinFloat, v, b.MaxFloat)
	}
}
