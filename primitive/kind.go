package primitive

import (
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindBoolean
	KindByte
	KindShort
	KindChar
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindVoid

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var names = [...]string{
	KindBoolean: "boolean",
	KindByte:    "byte",
	KindShort:   "short",
	KindChar:    "char",
	KindInt:     "int",
	KindLong:    "long",
	KindFloat:   "float",
	KindDouble:  "double",
	KindVoid:    "void",
}

var boxedNames = [...]string{
	KindBoolean: "Boolean",
	KindByte:    "Byte",
	KindShort:   "Short",
	KindChar:    "Character",
	KindInt:     "Integer",
	KindLong:    "Long",
	KindFloat:   "Float",
	KindDouble:  "Double",
	KindVoid:    "Void",
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// Name returns the source-level spelling of the kind, e.g. "int".
func (k KindEnum) Name() string {
	if !k.IsValid() {
		return ""
	}

	return names[k]
}

// BoxedName returns the name of the reference counterpart, e.g. "Integer".
func (k KindEnum) BoxedName() string {
	if !k.IsValid() {
		return ""
	}

	return boxedNames[k]
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindByte, KindShort, KindChar, KindInt, KindLong, KindFloat, KindDouble:
		return true
	}
}

func (k KindEnum) IsIntegral() bool {
	switch k {
	default:
		return false
	case KindByte, KindShort, KindChar, KindInt, KindLong:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	return k == KindFloat || k == KindDouble
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only value kinds has meaningful bits amount, but requested for: " + k.String())
	case KindBoolean:
		return 1
	case KindByte:
		return 8
	case KindShort, KindChar:
		return 16
	case KindInt, KindFloat:
		return 32
	case KindLong, KindDouble:
		return 64
	}
}

// RankTotal is the number of distinct narrowness ranks.
const RankTotal = 6

// Rank orders kinds by width for narrowness comparison: boolean and byte are
// the narrowest (0), double the widest (5). Void has no rank and returns -1.
func (k KindEnum) Rank() int {
	switch k {
	default:
		return -1
	case KindBoolean, KindByte:
		return 0
	case KindShort, KindChar:
		return 1
	case KindInt:
		return 2
	case KindLong:
		return 3
	case KindFloat:
		return 4
	case KindDouble:
		return 5
	}
}

// FromName resolves both the primitive spelling ("int") and the boxed
// spelling ("Integer"). The second result reports whether name was boxed.
func FromName(name string) (kind KindEnum, boxed bool) {
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		switch name {
		case names[k]:
			return k, false
		case boxedNames[k]:
			return k, true
		}
	}

	return 0, false
}

// FromReflectType maps the Go scalar types that have an exact counterpart.
// Go's int is treated as long, uint8 has no counterpart.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Bool:
		return KindBoolean
	case reflect.Int8:
		return KindByte
	case reflect.Int16:
		return KindShort
	case reflect.Uint16:
		return KindChar
	case reflect.Int32:
		return KindInt
	case reflect.Int64, reflect.Int:
		return KindLong
	case reflect.Float32:
		return KindFloat
	case reflect.Float64:
		return KindDouble
	}
}

// ReflectType is the canonical Go type carrying values of the kind.
func (k KindEnum) ReflectType() reflect.Type {
	switch k {
	default:
		return nil
	case KindBoolean:
		return reflect.TypeFor[bool]()
	case KindByte:
		return reflect.TypeFor[int8]()
	case KindShort:
		return reflect.TypeFor[int16]()
	case KindChar:
		return reflect.TypeFor[uint16]()
	case KindInt:
		return reflect.TypeFor[int32]()
	case KindLong:
		return reflect.TypeFor[int64]()
	case KindFloat:
		return reflect.TypeFor[float32]()
	case KindDouble:
		return reflect.TypeFor[float64]()
	case KindVoid:
		return reflect.TypeFor[struct{}]()
	}
}
