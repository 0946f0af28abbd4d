package descriptor

import (
	"strings"

	"ctor-resolver/primitive"
)

//go:generate go tool stringer -type=Category -output=category_string.go

// Category tells what the element of a Type is.
type Category int

const (
	_ Category = iota // zero Type, also used by the null marker

	CategoryPrimitive
	CategoryBoxed
	CategoryReference
)

// RootName is the name of the single root of every Lattice.
const RootName = "Object"

// Type is a comparable type descriptor. Arrays are represented as their
// element plus a dimension, so two descriptors are equal iff == holds.
type Type struct {
	category Category
	kind     primitive.KindEnum
	name     string
	dims     int
}

var (
	ObjectType = Type{category: CategoryReference, name: RootName}
	NumberType = Type{category: CategoryReference, name: "Number"}
	StringType = Type{category: CategoryReference, name: "String"}
)

// Primitive returns the raw scalar descriptor of k.
func Primitive(k primitive.KindEnum) Type {
	if !k.IsValid() {
		return Type{}
	}

	return Type{category: CategoryPrimitive, kind: k}
}

// Boxed returns the reference counterpart of k.
func Boxed(k primitive.KindEnum) Type {
	if !k.IsValid() {
		return Type{}
	}

	return Type{category: CategoryBoxed, kind: k, name: k.BoxedName()}
}

// Reference returns the named reference type. Boxed names ("Integer")
// resolve to the boxed descriptor so both spellings compare equal.
func Reference(name string) Type {
	if name == "" {
		return Type{}
	}

	if k, boxed := primitive.FromName(name); boxed {
		return Boxed(k)
	}

	return Type{category: CategoryReference, name: name}
}

// ArrayOf wraps t into dims more array dimensions. ArrayOf(t, 0) is t.
func ArrayOf(t Type, dims int) Type {
	if t.IsZero() || dims <= 0 {
		return t
	}

	t.dims += dims
	return t
}

func (t Type) IsZero() bool {
	return t.category == 0
}

func (t Type) Category() Category {
	return t.category
}

// Kind returns the scalar kind of the element, zero for references.
func (t Type) Kind() primitive.KindEnum {
	return t.kind
}

// Name returns the element name: "int", "Integer", "Dog".
func (t Type) Name() string {
	if t.category == CategoryPrimitive {
		return t.kind.Name()
	}

	return t.name
}

func (t Type) Dimension() int {
	return t.dims
}

func (t Type) IsArray() bool {
	return t.dims > 0
}

// IsPrimitive reports a raw scalar; primitive arrays are references.
func (t Type) IsPrimitive() bool {
	return t.category == CategoryPrimitive && t.dims == 0
}

func (t Type) IsRoot() bool {
	return t == ObjectType
}

// Element strips every array dimension.
func (t Type) Element() Type {
	t.dims = 0
	return t
}

// Component strips one array dimension. Non-arrays have no component.
func (t Type) Component() Type {
	if t.dims == 0 {
		return Type{}
	}

	t.dims--
	return t
}

func (t Type) String() string {
	if t.IsZero() {
		return "null"
	}

	return t.Name() + strings.Repeat("[]", t.dims)
}

// BoxedOf maps a primitive to its boxed counterpart; other types map to
// themselves.
func BoxedOf(t Type) Type {
	if t.IsPrimitive() {
		return Boxed(t.kind)
	}

	return t
}

// UnboxedOf maps a boxed type to its primitive; other types map to
// themselves.
func UnboxedOf(t Type) Type {
	if t.category == CategoryBoxed && t.dims == 0 {
		return Primitive(t.kind)
	}

	return t
}
