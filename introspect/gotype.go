package introspect

import (
	"errors"
	"fmt"
	"reflect"

	"ctor-resolver/descriptor"
	"ctor-resolver/primitive"
)

var ErrNotConvertible = errors.New("value cannot be converted to the parameter type")

// TypeOf maps a Go type onto its descriptor.
func TypeOf(rt reflect.Type) descriptor.Type {
	if rt == nil {
		return descriptor.Type{}
	}

	if k := basicKind(rt); k != 0 {
		return descriptor.Primitive(k)
	}

	switch rt.Kind() {
	case reflect.String:
		if rt.PkgPath() == "" {
			return descriptor.StringType
		}
	case reflect.Ptr:
		if k := basicKind(rt.Elem()); k != 0 {
			return descriptor.Boxed(k)
		}
	case reflect.Slice:
		return descriptor.ArrayOf(TypeOf(rt.Elem()), 1)
	case reflect.Interface:
		if rt.NumMethod() == 0 {
			return descriptor.ObjectType
		}
	}

	return descriptor.Reference(rt.String())
}

// basicKind returns the primitive kind of an unnamed scalar type.
func basicKind(rt reflect.Type) primitive.KindEnum {
	if rt.PkgPath() != "" || rt.Name() == "" {
		return 0
	}

	return primitive.FromReflectType(rt)
}

// ValueOf converts a Go value into a runtime argument. Nil pointers,
// slices and interfaces become null.
func ValueOf(v any) descriptor.Value {
	if v == nil {
		return descriptor.Null()
	}

	return valueOf(reflect.ValueOf(v))
}

func valueOf(rv reflect.Value) descriptor.Value {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return descriptor.Null()
		}
	}

	rt := rv.Type()
	t := TypeOf(rt)

	switch {
	case t.IsArray():
		elems := make([]descriptor.Value, rv.Len())
		for i := range elems {
			elems[i] = valueOf(rv.Index(i))
		}

		return descriptor.Array(t.Component(), elems...)
	case rt.Kind() == reflect.Interface:
		return valueOf(rv.Elem())
	case t.Category() == descriptor.CategoryBoxed:
		return scalar(t.Kind(), rv.Elem())
	case t.IsPrimitive():
		return scalar(t.Kind(), rv)
	case t == descriptor.StringType:
		return descriptor.Str(rv.String())
	}

	return descriptor.Object(t, rv.Interface())
}

func scalar(k primitive.KindEnum, rv reflect.Value) descriptor.Value {
	switch k {
	case primitive.KindBoolean:
		return descriptor.Bool(rv.Bool())
	case primitive.KindByte:
		return descriptor.Byte(int8(rv.Int()))
	case primitive.KindShort:
		return descriptor.Short(int16(rv.Int()))
	case primitive.KindChar:
		return descriptor.Char(uint16(rv.Uint()))
	case primitive.KindInt:
		return descriptor.Int(int32(rv.Int()))
	case primitive.KindLong:
		return descriptor.Long(rv.Int())
	case primitive.KindFloat:
		return descriptor.Float(float32(rv.Float()))
	case primitive.KindDouble:
		return descriptor.Double(rv.Float())
	default:
		return descriptor.Object(descriptor.Boxed(k), rv.Interface())
	}
}

// convert turns a runtime argument back into a Go value of type want.
// Widening and narrowing conversions were already validated by the
// resolver, so numeric payloads are converted without range checks.
func convert(v descriptor.Value, want reflect.Type) (reflect.Value, error) {
	if v.IsNull() {
		// a String parameter accepts null; Go strings have no nil, so it
		// arrives as the empty string
		switch want.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan, reflect.String:
			return reflect.Zero(want), nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: null to %s", ErrNotConvertible, want)
		}
	}

	if v.Type().IsArray() && want.Kind() == reflect.Slice {
		elems := v.Elements()
		res := reflect.MakeSlice(want, len(elems), len(elems))
		for i, e := range elems {
			ev, err := convert(e, want.Elem())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
			}

			res.Index(i).Set(ev)
		}

		return res, nil
	}

	if want.Kind() == reflect.Ptr && basicKind(want.Elem()) != 0 {
		ev, err := convert(v, want.Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		ptr := reflect.New(want.Elem())
		ptr.Elem().Set(ev)
		return ptr, nil
	}

	payload := reflect.ValueOf(v.Interface())
	switch {
	case !payload.IsValid():
		return reflect.Value{}, fmt.Errorf("%w: %s carries no payload", ErrNotConvertible, v)
	case payload.Type().AssignableTo(want):
		return payload, nil
	case v.Kind() != 0 && primitive.FromReflectType(want) != 0 && payload.Type().ConvertibleTo(want):
		return payload.Convert(want), nil
	}

	return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotConvertible, v, want)
}
