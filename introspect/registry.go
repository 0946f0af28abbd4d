package introspect

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"ctor-resolver/descriptor"
	"ctor-resolver/resolve"
	"ctor-resolver/utils"
)

var (
	ErrIsNotAConstructor         = errors.New("provided function is not a recognizable constructor")
	ErrConstructorIsNotAFunction = errors.New("provided constructor is not a function")
	ErrAbstractTarget            = errors.New("target type cannot be instantiated")
	ErrUnknownSignature          = errors.New("signature is not registered for the target")
	ErrConstructorPanicked       = errors.New("constructor panicked")
)

// Constructor describes a registered Go constructor function.
type Constructor struct {
	Target       descriptor.Type
	Signature    resolve.Signature
	PackageAlias string
	HasErr       bool

	fn reflect.Value
}

// ParseConstructor inspects the provided function and returns a Constructor
// if it is a valid constructor function.
//
// Supports interfaces:
//   - func(args...) (dst Type)
//   - func(args...) (dst Type, error)
func ParseConstructor(fn any) (Constructor, error) {
	if fn == nil {
		return Constructor{}, ErrConstructorIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return Constructor{}, ErrConstructorIsNotAFunction
	}

	switch {
	case fnType.NumOut() == 1:
	case fnType.NumOut() == 2 && isError(fnType.Out(1)):
	default:
		return Constructor{}, ErrIsNotAConstructor
	}

	if isError(fnType.Out(0)) {
		return Constructor{}, ErrIsNotAConstructor
	}

	fnPC := runtime.FuncForPC(fnVal.Pointer())
	alias, name := utils.Unpack2(strings.SplitN(fnPC.Name(), ".", 2))

	ctor := Constructor{
		Target:       TypeOf(fnType.Out(0)),
		Signature:    resolve.Signature{Name: name},
		PackageAlias: utils.Second(path.Split(alias)),
		HasErr:       fnType.NumOut() == 2,
		fn:           fnVal,
	}

	for i := range fnType.NumIn() {
		ctor.Signature.Params = append(ctor.Signature.Params, resolve.Parameter{
			Type:     TypeOf(fnType.In(i)),
			Variadic: fnType.IsVariadic() && i == fnType.NumIn()-1,
		})
	}

	return ctor, nil
}

// Registry holds constructor functions per target type. It lists them for
// the resolver and invokes the chosen one.
//
// Registration is not synchronized: register everything before resolving
// concurrently.
type Registry struct {
	ctors    map[descriptor.Type][]Constructor
	abstract map[descriptor.Type]struct{}
	decls    map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		ctors:    make(map[descriptor.Type][]Constructor),
		abstract: make(map[descriptor.Type]struct{}),
		decls:    make(map[string]string),
	}
}

// Register adds constructor functions. The target of each one is its first
// result type.
func (r *Registry) Register(fns ...any) error {
	for _, fn := range fns {
		ctor, err := ParseConstructor(fn)
		if err != nil {
			return err
		}

		ctor.Signature.Index = len(r.ctors[ctor.Target])
		r.ctors[ctor.Target] = append(r.ctors[ctor.Target], ctor)
	}

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(fns ...any) *Registry {
	if err := r.Register(fns...); err != nil {
		panic(err)
	}

	return r
}

// MarkAbstract records that target cannot be instantiated. Its constructors
// are still listed, but invoking any of them fails.
func (r *Registry) MarkAbstract(target reflect.Type) {
	r.abstract[TypeOf(target)] = struct{}{}
}

// Extend declares sub as a subtype of super in the registry's lattice,
// typically a concrete type below an interface it implements.
func (r *Registry) Extend(sub, super reflect.Type) error {
	st, pt := TypeOf(sub), TypeOf(super)
	if st.Category() != descriptor.CategoryReference || st.IsArray() {
		return fmt.Errorf("%w: %s", descriptor.ErrInvalidName, sub)
	}

	if pt.IsZero() || pt.IsPrimitive() || pt.IsArray() {
		return fmt.Errorf("%w: %s", descriptor.ErrInvalidName, super)
	}

	parent := pt.Name()
	if pt.IsRoot() {
		parent = ""
	}

	// an undeclared supertype hangs below the root
	if _, ok := r.decls[parent]; !ok && parent != "" && !descriptor.Standard.Declared(parent) {
		r.decls[parent] = ""
	}

	r.decls[st.Name()] = parent
	return nil
}

// Lattice builds the assignability lattice from the declarations made with
// Extend.
func (r *Registry) Lattice() (*descriptor.Lattice, error) {
	return descriptor.NewLattice(r.decls)
}

// Constructors returns the registered constructors of target.
func (r *Registry) Constructors(target descriptor.Type) []Constructor {
	return r.ctors[target]
}

// ListConstructors implements resolve.Lister.
func (r *Registry) ListConstructors(target descriptor.Type) ([]resolve.Signature, error) {
	ctors := r.ctors[target]

	res := make([]resolve.Signature, len(ctors))
	for i := range ctors {
		res[i] = ctors[i].Signature
	}

	return res, nil
}

// Invoke calls the constructor of target registered under sig with args
// laid out one per parameter, as produced by the resolver.
func (r *Registry) Invoke(target descriptor.Type, sig resolve.Signature, args []descriptor.Value) (res any, err error) {
	if _, ok := r.abstract[target]; ok {
		return nil, fmt.Errorf("%w: %s", ErrAbstractTarget, target)
	}

	ctors := r.ctors[target]
	if !utils.IsInRange(0, sig.Index, len(ctors)-1) || ctors[sig.Index].Signature.Name != sig.Name {
		return nil, fmt.Errorf("%w: %s of %s", ErrUnknownSignature, sig, target)
	}

	ctor := ctors[sig.Index]
	fnType := ctor.fn.Type()
	if len(args) != fnType.NumIn() {
		return nil, fmt.Errorf("%w: %s expects %d arguments, got %d",
			ErrUnknownSignature, sig, fnType.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i], err = convert(arg, fnType.In(i))
		if err != nil {
			return nil, fmt.Errorf("argument %d of %s: %w", i, sig, err)
		}
	}

	defer func() {
		if p := recover(); p != nil {
			res, err = nil, fmt.Errorf("%w: %v", ErrConstructorPanicked, p)
		}
	}()

	var out []reflect.Value
	if fnType.IsVariadic() {
		out = ctor.fn.CallSlice(in)
	} else {
		out = ctor.fn.Call(in)
	}

	if ctor.HasErr && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}

	return out[0].Interface(), nil
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	terr := reflect.TypeOf((*error)(nil)).Elem()

	return t.Implements(terr)
}
