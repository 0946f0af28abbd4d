package resolve

import (
	"strings"

	"ctor-resolver/descriptor"
)

// MaxParameters is the largest parameter count a signature may declare.
const MaxParameters = 255

// Parameter is one formal parameter. Only the last parameter of a signature
// may be variadic, and its type is the array that collects the rest
// arguments.
type Parameter struct {
	Type     descriptor.Type
	Variadic bool
}

// Signature is one declared constructor of a target type.
type Signature struct {
	Name   string
	Params []Parameter
	Index  int // declaration order within the candidate set
}

// IsVariadic reports whether the last parameter collects rest arguments.
func (s Signature) IsVariadic() bool {
	return len(s.Params) > 0 && s.Params[len(s.Params)-1].Variadic
}

// ParameterTypes returns the declared parameter types in order.
func (s Signature) ParameterTypes() []descriptor.Type {
	res := make([]descriptor.Type, len(s.Params))
	for i, p := range s.Params {
		res[i] = p.Type
	}

	return res
}

// String renders the signature as name(T1, T2...).
func (s Signature) String() string {
	var sb strings.Builder
	sb.WriteString(s.Name)
	sb.WriteByte('(')

	for i, p := range s.Params {
		if i > 0 {
			sb.WriteString(", ")
		}

		if p.Variadic && p.Type.IsArray() {
			sb.WriteString(p.Type.Component().String())
			sb.WriteString("...")
			continue
		}

		sb.WriteString(p.Type.String())
	}

	sb.WriteByte(')')
	return sb.String()
}

// Lister lists the declared constructors of a target type. An unknown
// target has no constructors; it is not an error.
type Lister interface {
	ListConstructors(target descriptor.Type) ([]Signature, error)
}

// ListerFunc adapts a function to a Lister.
type ListerFunc func(target descriptor.Type) ([]Signature, error)

func (f ListerFunc) ListConstructors(target descriptor.Type) ([]Signature, error) {
	return f(target)
}
