package descriptor

import (
	"errors"
	"fmt"
	"sort"

	"ctor-resolver/primitive"
)

// MaxDepth bounds how far below the root a reference type may be declared.
const MaxDepth = 50

var (
	ErrUnknownParent = errors.New("parent type is not declared")
	ErrCycle         = errors.New("type hierarchy contains a cycle")
	ErrTooDeep       = errors.New("type hierarchy is too deep")
	ErrRedeclared    = errors.New("type is already declared")
	ErrInvalidName   = errors.New("invalid reference type name")
)

// Lattice is the single-rooted assignability tree of reference types.
// Reference names that were never declared hang directly below the root.
type Lattice struct {
	parents map[string]string
	depths  map[string]int
}

var builtins = map[string]string{
	"Number": RootName,
	"String": RootName,
}

func init() {
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		parent := RootName
		if k.IsNumber() {
			parent = "Number"
		}

		builtins[k.BoxedName()] = parent
	}

	Standard = MustLattice(nil)
}

// Standard holds only the builtin types: Object, Number, String and the
// boxed counterparts of every primitive kind.
var Standard *Lattice

// NewLattice builds a lattice from the builtins plus decls, a map from type
// name to parent name. An empty parent means the root.
func NewLattice(decls map[string]string) (*Lattice, error) {
	parents := make(map[string]string, len(builtins)+len(decls))
	for name, parent := range builtins {
		parents[name] = parent
	}

	for _, name := range sortedKeys(decls) {
		parent := decls[name]
		if parent == "" {
			parent = RootName
		}

		if err := checkName(name); err != nil {
			return nil, err
		}

		if _, ok := builtins[name]; ok || name == RootName {
			return nil, fmt.Errorf("%w: %s", ErrRedeclared, name)
		}

		parents[name] = parent
	}

	l := &Lattice{
		parents: parents,
		depths:  make(map[string]int, len(parents)),
	}

	for _, name := range sortedKeys(parents) {
		depth, err := l.measure(name)
		if err != nil {
			return nil, err
		}

		l.depths[name] = depth
	}

	return l, nil
}

// MustLattice is like NewLattice but panics on an invalid declaration.
func MustLattice(decls map[string]string) *Lattice {
	l, err := NewLattice(decls)
	if err != nil {
		panic(err)
	}

	return l
}

func checkName(name string) error {
	if name == "" {
		return ErrInvalidName
	}

	if k, boxed := primitive.FromName(name); k != 0 && !boxed {
		return fmt.Errorf("%w: %s is a primitive kind", ErrInvalidName, name)
	}

	return nil
}

func (l *Lattice) measure(name string) (int, error) {
	seen := make(map[string]struct{})

	depth := 0
	for cur := name; cur != RootName; depth++ {
		if _, ok := seen[cur]; ok {
			return 0, fmt.Errorf("%w: %s", ErrCycle, name)
		}
		seen[cur] = struct{}{}

		parent, ok := l.parents[cur]
		if !ok {
			return 0, fmt.Errorf("%w: %s (parent of %s)", ErrUnknownParent, cur, name)
		}

		cur = parent
	}

	if depth > MaxDepth {
		return 0, fmt.Errorf("%w: %s is %d levels below %s", ErrTooDeep, name, depth, RootName)
	}

	return depth, nil
}

// Declared reports whether name was declared, either as builtin or by the
// lattice owner.
func (l *Lattice) Declared(name string) bool {
	if name == RootName {
		return true
	}

	_, ok := l.parents[name]
	return ok
}

// Parent returns the direct supertype of t. Primitives and the root have
// none; every array sits directly below the root.
func (l *Lattice) Parent(t Type) (Type, bool) {
	switch {
	case t.IsZero(), t.IsPrimitive(), t.IsRoot():
		return Type{}, false
	case t.IsArray():
		return ObjectType, true
	}

	parent, ok := l.parents[t.name]
	if !ok {
		return ObjectType, true
	}

	return Reference(parent), true
}

// Depth counts the steps from t up to the root. Primitives have depth 0.
func (l *Lattice) Depth(t Type) int {
	switch {
	case t.IsZero(), t.IsPrimitive(), t.IsRoot():
		return 0
	case t.IsArray():
		return 1
	}

	depth, ok := l.depths[t.name]
	if !ok {
		return 1
	}

	return depth
}

// AssignableTo reports whether a value of type value may be stored in a
// variable of type target without any conversion. Arrays are covariant in
// their reference element type.
func (l *Lattice) AssignableTo(value, target Type) bool {
	switch {
	case value == target:
		return !value.IsZero()
	case value.IsZero(), target.IsZero(), value.IsPrimitive(), target.IsPrimitive():
		return false
	case target.IsRoot():
		return true
	}

	if target.IsArray() {
		ve, te := value.Element(), target.Element()
		switch {
		case value.dims == target.dims:
			if ve.IsPrimitive() || te.IsPrimitive() {
				return ve == te
			}

			return l.AssignableTo(ve, te)
		case value.dims > target.dims:
			return te.IsRoot()
		default:
			return false
		}
	}

	if value.IsArray() {
		return false
	}

	for cur, ok := value, true; ok; cur, ok = l.Parent(cur) {
		if cur == target {
			return true
		}
	}

	return false
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}
