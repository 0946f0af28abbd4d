package descriptor

import (
	"ctor-resolver/primitive"
)

// Value is a runtime argument. The zero Value is the null marker: it carries
// no type at all.
//
// Scalars always carry their boxed type, mirroring that a runtime value is a
// boxed object; their payload is the canonical Go scalar of the kind
// (int32 for int, uint16 for char and so on). Arrays carry their elements
// as a []Value.
type Value struct {
	typ  Type
	data any
}

// Null returns the explicit null marker.
func Null() Value {
	return Value{}
}

func Bool(v bool) Value      { return Value{typ: Boxed(primitive.KindBoolean), data: v} }
func Byte(v int8) Value      { return Value{typ: Boxed(primitive.KindByte), data: v} }
func Short(v int16) Value    { return Value{typ: Boxed(primitive.KindShort), data: v} }
func Char(v uint16) Value    { return Value{typ: Boxed(primitive.KindChar), data: v} }
func Int(v int32) Value      { return Value{typ: Boxed(primitive.KindInt), data: v} }
func Long(v int64) Value     { return Value{typ: Boxed(primitive.KindLong), data: v} }
func Float(v float32) Value  { return Value{typ: Boxed(primitive.KindFloat), data: v} }
func Double(v float64) Value { return Value{typ: Boxed(primitive.KindDouble), data: v} }

// Str returns a String value.
func Str(v string) Value {
	return Value{typ: StringType, data: v}
}

// Object returns a value of an arbitrary reference type t. A primitive t is
// boxed, since runtime values are never raw scalars.
func Object(t Type, data any) Value {
	if t.IsZero() {
		return Null()
	}

	return Value{typ: BoxedOf(t), data: data}
}

// Array returns an array value whose component type is component.
func Array(component Type, elems ...Value) Value {
	if component.IsZero() {
		return Null()
	}

	if elems == nil {
		elems = []Value{}
	}

	return Value{typ: ArrayOf(component, 1), data: elems}
}

func (v Value) IsNull() bool {
	return v.typ.IsZero()
}

// Type returns the concrete runtime type, or the zero Type for null.
func (v Value) Type() Type {
	return v.typ
}

// Interface returns the payload.
func (v Value) Interface() any {
	return v.data
}

// Kind returns the scalar kind of a boxed scalar value.
func (v Value) Kind() primitive.KindEnum {
	if v.typ.category != CategoryBoxed || v.typ.IsArray() {
		return 0
	}

	return v.typ.kind
}

// Elements returns the elements of an array value, nil otherwise.
func (v Value) Elements() []Value {
	elems, _ := v.data.([]Value)
	return elems
}

func (v Value) Len() int {
	return len(v.Elements())
}

func (v Value) String() string {
	if v.IsNull() {
		return "null"
	}

	return v.typ.String()
}
