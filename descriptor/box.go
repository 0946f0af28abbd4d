package descriptor

import (
	"errors"
	"fmt"
)

var ErrNullElement = errors.New("cannot unbox a null element")

// Box converts an array of primitives into an array of their boxed
// counterparts, over every dimension. Any other value is returned as is.
func Box(v Value) Value {
	return convertArray(v, BoxedOf, nil)
}

// Unbox converts an array of boxed scalars into an array of primitives. It
// fails if any element is null, since a primitive has no null.
func Unbox(v Value) (Value, error) {
	var err error
	res := convertArray(v, UnboxedOf, &err)
	if err != nil {
		return Value{}, err
	}

	return res, nil
}

func convertArray(v Value, fn func(Type) Type, errp *error) Value {
	if !v.typ.IsArray() {
		return v
	}

	elem := fn(v.typ.Element())
	if elem == v.typ.Element() {
		return v
	}

	src := v.Elements()
	dst := make([]Value, len(src))
	for i, e := range src {
		if e.IsNull() && errp != nil {
			if *errp == nil {
				*errp = fmt.Errorf("%w: %s at index %d", ErrNullElement, v.typ, i)
			}

			continue
		}

		dst[i] = convertArray(e, fn, errp)
	}

	return Value{typ: ArrayOf(elem, v.typ.dims), data: dst}
}
