package compat

import (
	"ctor-resolver/descriptor"
	"ctor-resolver/internal/common"
	"ctor-resolver/primitive"
)

// Compatibility represents the level of compatibility between a value and a
// declared type.
type Compatibility int

const (
	// Incompatible means the value cannot be supplied.
	Incompatible Compatibility = iota
	// Narrowing means a numeric value fits into a narrower kind.
	Narrowing
	// Widening means a numeric value converts to a wider kind.
	Widening
	// Assignable means the value's type is a subtype of the declared type.
	Assignable
	// Identical means the boxed declared type is exactly the value's type.
	Identical
)

const (
	VerdictIdentical    = "identical"
	VerdictAssignable   = "assignable"
	VerdictWidening     = "widening"
	VerdictNarrowing    = "narrowing"
	VerdictIncompatible = "incompatible"
)

// String returns a human-readable name for the compatibility level.
func (c Compatibility) String() string {
	switch c {
	case Identical:
		return VerdictIdentical
	case Assignable:
		return VerdictAssignable
	case Widening:
		return VerdictWidening
	case Narrowing:
		return VerdictNarrowing
	case Incompatible:
		return VerdictIncompatible
	default:
		return common.UnknownStr
	}
}

// Result contains detailed information about a compatibility decision.
type Result struct {
	Compatibility Compatibility
	Reason        string // Human-readable explanation
	ValueType     string // String representation of the value's type
	TargetType    string // String representation of the declared type
}

// OK reports whether the value can be supplied at all.
func (r Result) OK() bool {
	return r.Compatibility > Incompatible
}

// CanWiden reports whether the value's kind widens to target. Widening never
// inspects the value: every value of an eligible kind qualifies.
func CanWiden(target descriptor.Type, value descriptor.Value) bool {
	from, to, ok := kinds(target, value)
	return ok && primitive.Widens(from, to)
}

// CanNarrow reports whether the value's kind narrows to target AND the
// value lies within the inclusive bounds of target.
func CanNarrow(target descriptor.Type, value descriptor.Value) bool {
	from, to, ok := kinds(target, value)
	return ok && primitive.Narrows(from, to) && primitive.InRange(to, value.Interface())
}

func kinds(target descriptor.Type, value descriptor.Value) (from, to primitive.KindEnum, ok bool) {
	if target.IsZero() || value.IsNull() || target.IsArray() {
		return 0, 0, false
	}

	from, to = value.Kind(), descriptor.UnboxedOf(target).Kind()
	if from == 0 || to == 0 {
		return 0, 0, false
	}

	return from, to, true
}

// IsCompatible reports whether value can be supplied for target.
func IsCompatible(l *descriptor.Lattice, target descriptor.Type, value descriptor.Value) bool {
	return Classify(l, target, value).OK()
}

// Classify determines how value can be supplied for target, using l for
// reference assignability. A nil lattice means descriptor.Standard.
func Classify(l *descriptor.Lattice, target descriptor.Type, value descriptor.Value) Result {
	if l == nil {
		l = descriptor.Standard
	}

	res := Result{
		ValueType:  value.Type().String(),
		TargetType: target.String(),
	}

	switch {
	case target.IsZero():
		res.Reason = "target type is unknown"
	case value.IsNull():
		res.Reason = "null carries no type"
	case descriptor.BoxedOf(target) == value.Type():
		res.Compatibility = Identical
		res.Reason = "types are identical after boxing"
	case l.AssignableTo(value.Type(), descriptor.BoxedOf(target)):
		res.Compatibility = Assignable
		res.Reason = "value is a subtype of target"
	case CanWiden(target, value):
		res.Compatibility = Widening
		res.Reason = "value widens to target"
	case CanNarrow(target, value):
		res.Compatibility = Narrowing
		res.Reason = "value fits into the narrower target"
	default:
		res.Reason = "types are not compatible"
	}

	return res
}
