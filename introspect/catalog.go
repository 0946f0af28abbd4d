package introspect

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"ctor-resolver/descriptor"
	"ctor-resolver/diagnostic"
	"ctor-resolver/internal/common"
	"ctor-resolver/primitive"
	"ctor-resolver/resolve"
)

// RestSuffix marks the rest parameter in a catalog signature.
const RestSuffix = "..."

// maxTypoDistance bounds the edits between an undeclared name and a
// declared one suggested in its place.
const maxTypoDistance = 2

var ErrInvalidCatalog = errors.New("invalid constructor catalog")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields under their YAML names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("typename", func(fl validator.FieldLevel) bool {
		_, err := descriptor.Parse(fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("param", func(fl validator.FieldLevel) bool {
		_, _, err := parseParam(fl.Field().String())
		return err == nil
	})

	return v
}

// CatalogFile is the YAML form of a catalog.
type CatalogFile struct {
	Version      string            `yaml:"version"                validate:"oneof=1"`
	Types        []TypeDecl        `yaml:"types,omitempty"        validate:"dive"`
	Constructors []ConstructorDecl `yaml:"constructors,omitempty" validate:"dive"`
}

// TypeDecl declares a reference type and its direct supertype. An empty
// Extends places the type directly below Object.
type TypeDecl struct {
	Name    string `yaml:"name"              validate:"required,typename"`
	Extends string `yaml:"extends,omitempty" validate:"omitempty,typename"`
}

// ConstructorDecl lists the signatures of one target type.
type ConstructorDecl struct {
	Target     string          `yaml:"target"     validate:"required,typename"`
	Signatures []SignatureDecl `yaml:"signatures" validate:"dive"`
}

// SignatureDecl is one constructor. Params are type names; the last one may
// carry the "..." suffix to collect rest arguments.
type SignatureDecl struct {
	Name   string   `yaml:"name,omitempty"`
	Params []string `yaml:"params,omitempty" validate:"max=255,dive,required,param"`
}

// Catalog is a declarative constructor source: the declared signatures of a
// CatalogFile together with the lattice of its declared types.
type Catalog struct {
	file    *CatalogFile
	lattice *descriptor.Lattice
	sigs    map[descriptor.Type][]resolve.Signature
}

// LoadCatalog loads and parses a YAML catalog file from the given path.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return ParseCatalog(data)
}

// ParseCatalog parses YAML data into a Catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cf CatalogFile

	err := yaml.Unmarshal(data, &cf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	return NewCatalog(&cf)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cf *CatalogFile) {
	if cf.Version == "" {
		cf.Version = "1"
	}

	for i := range cf.Constructors {
		c := &cf.Constructors[i]
		for j := range c.Signatures {
			if c.Signatures[j].Name == "" {
				c.Signatures[j].Name = simpleName(c.Target)
			}
		}
	}
}

func simpleName(target string) string {
	if i := strings.LastIndexByte(target, '.'); i >= 0 {
		return target[i+1:]
	}

	return target
}

// NewCatalog validates cf and builds the catalog from it. Defaults are
// applied to cf in place.
func NewCatalog(cf *CatalogFile) (*Catalog, error) {
	if cf == nil {
		return nil, fmt.Errorf("%w: catalog file is nil", ErrInvalidCatalog)
	}

	applyDefaults(cf)

	if err := validate.Struct(cf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	if diags := ValidateCatalog(cf); !diags.IsValid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, diags.Error())
	}

	decls := make(map[string]string, len(cf.Types))
	for _, t := range cf.Types {
		decls[t.Name] = t.Extends
	}

	l, err := descriptor.NewLattice(decls)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		file:    cf,
		lattice: l,
		sigs:    make(map[descriptor.Type][]resolve.Signature),
	}

	for _, decl := range cf.Constructors {
		target := descriptor.MustParse(decl.Target)
		for _, sd := range decl.Signatures {
			sig := resolve.Signature{Name: sd.Name, Index: len(c.sigs[target])}
			for _, p := range sd.Params {
				t, variadic, _ := parseParam(p)
				sig.Params = append(sig.Params, resolve.Parameter{Type: t, Variadic: variadic})
			}

			c.sigs[target] = append(c.sigs[target], sig)
		}
	}

	return c, nil
}

// ValidateCatalog checks the declarations for problems the struct tags
// cannot express. Field syntax is assumed valid.
func ValidateCatalog(cf *CatalogFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cf == nil {
		res.AddError("catalog_is_nil", "catalog file is nil", "", "")
		return res
	}

	declared := make(map[string]struct{}, len(cf.Types))
	names := make([]string, 0, len(cf.Types))
	for _, t := range cf.Types {
		if _, ok := declared[t.Name]; ok {
			res.AddError("duplicate_type", fmt.Sprintf("type %q is declared twice", t.Name), t.Name, "")
		}

		declared[t.Name] = struct{}{}
		names = append(names, t.Name)
	}

	isDeclared := func(name string) bool {
		_, ok := declared[name]
		return ok || descriptor.Standard.Declared(name)
	}

	for _, t := range cf.Types {
		if t.Extends != "" && !isDeclared(t.Extends) {
			res.AddError("unknown_parent", fmt.Sprintf("parent %q of %q is not declared", t.Extends, t.Name),
				t.Name, "", common.Closest(t.Extends, names, maxTypoDistance)...)
		}
	}

	targets := make(map[string]struct{}, len(cf.Constructors))
	for _, decl := range cf.Constructors {
		if _, ok := targets[decl.Target]; ok {
			res.AddWarning("split_target",
				fmt.Sprintf("constructors of %q are split over several entries", decl.Target), decl.Target, "")
		}
		targets[decl.Target] = struct{}{}

		if !isDeclared(decl.Target) {
			msg := fmt.Sprintf("%q is not declared, it is placed directly below %s", decl.Target, descriptor.RootName)
			if similar := common.Closest(decl.Target, names, maxTypoDistance); len(similar) > 0 {
				res.AddWarning("undeclared_target", msg, decl.Target, "", similar...)
			} else {
				res.AddInfo("undeclared_target", msg, decl.Target, "")
			}
		}

		seen := make(map[string]struct{}, len(decl.Signatures))
		for _, sd := range decl.Signatures {
			key := strings.Join(sd.Params, ",")
			if _, ok := seen[key]; ok {
				res.AddError("duplicate_signature",
					fmt.Sprintf("parameter list (%s) is declared twice", strings.Join(sd.Params, ", ")),
					decl.Target, sd.Name)
			}
			seen[key] = struct{}{}

			for i, p := range sd.Params {
				if strings.HasSuffix(p, RestSuffix) && i != len(sd.Params)-1 {
					res.AddError("rest_not_last",
						fmt.Sprintf("rest parameter %q must be the last one", p), decl.Target, sd.Name)
				}
			}
		}
	}

	return res
}

// parseParam reads a parameter type; "T..." is a rest parameter of type T[].
func parseParam(s string) (descriptor.Type, bool, error) {
	name, variadic := strings.CutSuffix(strings.TrimSpace(s), RestSuffix)

	t, err := descriptor.Parse(name)
	if err != nil {
		return descriptor.Type{}, false, err
	}

	if t.IsPrimitive() && t.Kind() == primitive.KindVoid {
		return descriptor.Type{}, false, fmt.Errorf("%w: void parameter", descriptor.ErrInvalidName)
	}

	if variadic {
		t = descriptor.ArrayOf(t, 1)
	}

	return t, variadic, nil
}

// File returns the declarations the catalog was built from.
func (c *Catalog) File() *CatalogFile {
	return c.file
}

// Lattice returns the lattice of the declared types.
func (c *Catalog) Lattice() *descriptor.Lattice {
	return c.lattice
}

// ListConstructors implements resolve.Lister.
func (c *Catalog) ListConstructors(target descriptor.Type) ([]resolve.Signature, error) {
	return slices.Clone(c.sigs[target]), nil
}

// Marshal serializes the catalog declarations to YAML.
func (c *Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(c.file)
}
