package descriptor

import (
	"fmt"
	"strings"
	"unicode"

	"ctor-resolver/primitive"
)

// Parse reads a type name as written in declarations: "int", "Integer",
// "String[][]", "zoo.Dog". Names that are neither primitive nor boxed are
// reference types.
func Parse(name string) (Type, error) {
	base := strings.TrimSpace(name)

	dims := 0
	for strings.HasSuffix(base, "[]") {
		base = strings.TrimSpace(strings.TrimSuffix(base, "[]"))
		dims++
	}

	if base == "" {
		return Type{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if k, boxed := primitive.FromName(base); k != 0 {
		if k == primitive.KindVoid && dims > 0 {
			return Type{}, fmt.Errorf("%w: %q, void has no arrays", ErrInvalidName, name)
		}

		if boxed {
			return ArrayOf(Boxed(k), dims), nil
		}

		return ArrayOf(Primitive(k), dims), nil
	}

	for _, r := range base {
		if r != '.' && r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return Type{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}

	return ArrayOf(Reference(base), dims), nil
}

// MustParse is like Parse but panics on an invalid name.
func MustParse(name string) Type {
	t, err := Parse(name)
	if err != nil {
		panic(err)
	}

	return t
}
