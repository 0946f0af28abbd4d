package introspect

import (
	"fmt"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"ctor-resolver/descriptor"
	"ctor-resolver/primitive"
	"ctor-resolver/resolve"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// ConstructorPrefix starts the name of every function SourceLister treats
// as a constructor.
const ConstructorPrefix = "New"

// SourceLister declares constructors found in Go source: an exported
// function NewX... whose first result is X or *X, optionally followed by an
// error, is a constructor of that result type. Signatures are listed in
// source order.
type SourceLister struct {
	sigs  map[descriptor.Type][]resolve.Signature
	decls map[string]string
	pkgs  []string
}

// LoadSource loads the specified packages and collects their constructors.
// Patterns are standard Go package patterns (e.g., "./zoo", "ctor-resolver/zoo").
func LoadSource(patterns ...string) (*SourceLister, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	s := &SourceLister{
		sigs:  make(map[descriptor.Type][]resolve.Signature),
		decls: make(map[string]string),
	}

	for _, pkg := range pkgs {
		s.processPackage(pkg.Types)
		s.pkgs = append(s.pkgs, pkg.PkgPath)
	}

	return s, nil
}

// Packages returns the paths of the loaded packages.
func (s *SourceLister) Packages() []string {
	return s.pkgs
}

// processPackage extracts constructors and subtype relations from a package.
func (s *SourceLister) processPackage(pkg *types.Package) {
	scope := pkg.Scope()

	var (
		funcs      []*types.Func
		named      []*types.TypeName
		interfaces []*types.TypeName
	)

	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}

		switch o := obj.(type) {
		case *types.Func:
			funcs = append(funcs, o)
		case *types.TypeName:
			if types.IsInterface(o.Type()) {
				interfaces = append(interfaces, o)
			} else {
				named = append(named, o)
			}
		}
	}

	sort.SliceStable(funcs, func(i, j int) bool {
		return funcs[i].Pos() < funcs[j].Pos()
	})

	for _, fn := range funcs {
		target, sig, ok := parseSourceConstructor(fn)
		if !ok {
			continue
		}

		sig.Index = len(s.sigs[target])
		s.sigs[target] = append(s.sigs[target], sig)
	}

	// the first implemented interface by name becomes the parent
	for _, tn := range named {
		for _, t := range []types.Type{tn.Type(), types.NewPointer(tn.Type())} {
			for _, iface := range interfaces {
				if types.Implements(t, iface.Type().Underlying().(*types.Interface)) {
					s.decls[goTypeOf(t).Name()] = goTypeOf(iface.Type()).Name()
					s.decls[goTypeOf(iface.Type()).Name()] = ""
					break
				}
			}
		}
	}
}

func parseSourceConstructor(fn *types.Func) (descriptor.Type, resolve.Signature, bool) {
	if !strings.HasPrefix(fn.Name(), ConstructorPrefix) {
		return descriptor.Type{}, resolve.Signature{}, false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() != nil {
		return descriptor.Type{}, resolve.Signature{}, false
	}

	res := sig.Results()
	switch {
	case res.Len() == 1:
	case res.Len() == 2 && isErrorType(res.At(1).Type()):
	default:
		return descriptor.Type{}, resolve.Signature{}, false
	}

	result := res.At(0).Type()
	base := result
	if ptr, ok := base.(*types.Pointer); ok {
		base = ptr.Elem()
	}

	named, ok := types.Unalias(base).(*types.Named)
	if !ok || named.Obj().Pkg() != fn.Pkg() {
		return descriptor.Type{}, resolve.Signature{}, false
	}

	if !strings.HasPrefix(strings.TrimPrefix(fn.Name(), ConstructorPrefix), named.Obj().Name()) {
		return descriptor.Type{}, resolve.Signature{}, false
	}

	out := resolve.Signature{Name: fn.Name()}
	params := sig.Params()
	for i := range params.Len() {
		out.Params = append(out.Params, resolve.Parameter{
			Type:     goTypeOf(params.At(i).Type()),
			Variadic: sig.Variadic() && i == params.Len()-1,
		})
	}

	return goTypeOf(result), out, true
}

func isErrorType(t types.Type) bool {
	return types.Identical(t, types.Universe.Lookup("error").Type())
}

// goTypeOf maps a go/types type onto its descriptor, naming it the way
// reflect does so both sources agree.
func goTypeOf(t types.Type) descriptor.Type {
	t = types.Unalias(t)

	switch tt := t.(type) {
	case *types.Basic:
		if k := basicKindOf(tt); k != 0 {
			return descriptor.Primitive(k)
		}

		if tt.Kind() == types.String {
			return descriptor.StringType
		}
	case *types.Pointer:
		if b, ok := types.Unalias(tt.Elem()).(*types.Basic); ok {
			if k := basicKindOf(b); k != 0 {
				return descriptor.Boxed(k)
			}
		}
	case *types.Slice:
		return descriptor.ArrayOf(goTypeOf(tt.Elem()), 1)
	case *types.Interface:
		if tt.Empty() {
			return descriptor.ObjectType
		}
	}

	return descriptor.Reference(types.TypeString(t, func(p *types.Package) string {
		return p.Name()
	}))
}

func basicKindOf(b *types.Basic) primitive.KindEnum {
	switch b.Kind() {
	case types.Bool:
		return primitive.KindBoolean
	case types.Int8:
		return primitive.KindByte
	case types.Int16:
		return primitive.KindShort
	case types.Uint16:
		return primitive.KindChar
	case types.Int32:
		return primitive.KindInt
	case types.Int64, types.Int:
		return primitive.KindLong
	case types.Float32:
		return primitive.KindFloat
	case types.Float64:
		return primitive.KindDouble
	default:
		return 0
	}
}

// Lattice builds the lattice of the loaded types: a concrete type is placed
// below the first interface of its package, by name, that it implements.
func (s *SourceLister) Lattice() (*descriptor.Lattice, error) {
	return descriptor.NewLattice(s.decls)
}

// ListConstructors implements resolve.Lister.
func (s *SourceLister) ListConstructors(target descriptor.Type) ([]resolve.Signature, error) {
	sigs := s.sigs[target]

	res := make([]resolve.Signature, len(sigs))
	copy(res, sigs)

	return res, nil
}
