package resolve

import (
	"fmt"

	"ctor-resolver/compat"
	"ctor-resolver/descriptor"
)

// Resolution is the outcome of a successful resolution.
type Resolution struct {
	Target    descriptor.Type
	Signature Signature

	// Arguments are reshaped for invocation: one value per declared
	// parameter, with rest arguments collected into an array value unless
	// an array was passed through. Element values keep their runtime types.
	Arguments []descriptor.Value

	// Candidates lists every matching signature, most specific first.
	Candidates CandidateList
}

// Resolver resolves constructor calls against the declarations of a Lister.
type Resolver struct {
	lister  Lister
	lattice *descriptor.Lattice
}

type Option func(*Resolver)

// WithLattice sets the assignability lattice. descriptor.Standard is used
// by default.
func WithLattice(l *descriptor.Lattice) Option {
	return func(r *Resolver) {
		if l != nil {
			r.lattice = l
		}
	}
}

// New creates a Resolver over the declarations of lister.
func New(lister Lister, opts ...Option) *Resolver {
	r := &Resolver{
		lister:  lister,
		lattice: descriptor.Standard,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Lattice returns the assignability lattice in use.
func (r *Resolver) Lattice() *descriptor.Lattice {
	return r.lattice
}

// Resolve selects the signature of target that accepts args according to
// mode. The returned error is a *MalformedError, *NoMatchError or
// *AmbiguityError, or the error of the Lister.
func (r *Resolver) Resolve(target descriptor.Type, args []descriptor.Value, mode Mode) (Resolution, error) {
	if target.IsZero() {
		return Resolution{}, &MalformedError{Reason: "target type is missing"}
	}

	if mode < ModeMostSpecific || mode > ModeAny {
		return Resolution{}, &MalformedError{Target: target, Reason: "unknown selection mode " + mode.String()}
	}

	if r.lister == nil {
		return Resolution{}, &MalformedError{Target: target, Reason: "no constructor lister configured"}
	}

	sigs, err := r.lister.ListConstructors(target)
	if err != nil {
		return Resolution{}, fmt.Errorf("failed to list constructors of %s: %w", target, err)
	}

	for i := range sigs {
		if reason := checkSignature(sigs[i]); reason != "" {
			return Resolution{}, &MalformedError{Target: target, Signature: &sigs[i], Reason: reason}
		}
	}

	var matches CandidateList
	for _, sig := range sigs {
		cand, ok := r.match(sig, args)
		if !ok {
			continue
		}

		cand.rank(r.lattice, args)
		matches = append(matches, cand)
	}

	if len(matches) == 0 {
		return Resolution{}, &NoMatchError{Target: target, ArgumentTypes: argumentTypes(args)}
	}

	chosen, err := r.choose(target, matches, args, mode)
	if err != nil {
		return Resolution{}, err
	}

	return Resolution{
		Target:     target,
		Signature:  chosen.Signature,
		Arguments:  reshape(chosen, args),
		Candidates: matches,
	}, nil
}

// choose sorts matches in place and picks the candidate for mode.
func (r *Resolver) choose(target descriptor.Type, matches CandidateList, args []descriptor.Value, mode Mode) (*Candidate, error) {
	if mode == ModeAny {
		first := matches.Best()
		for i := range matches {
			if matches[i].Signature.Index < first.Signature.Index {
				first = &matches[i]
			}
		}

		chosen := *first
		matches.Sort()
		return &chosen, nil
	}

	matches.Sort()

	var (
		group  CandidateList
		chosen *Candidate
	)
	switch mode {
	case ModeMostSpecific:
		group, chosen = matches.Head(), matches.Best()
	case ModeMostGeneric:
		group, chosen = matches.Tail(), matches.Worst()
	default:
		return nil, &MalformedError{Target: target, Reason: "unknown selection mode " + mode.String()}
	}

	if len(group) > 1 {
		return nil, &AmbiguityError{
			Target:        target,
			ArgumentTypes: argumentTypes(args),
			Tied:          group.Signatures(),
		}
	}

	return chosen, nil
}

func checkSignature(sig Signature) string {
	if len(sig.Params) > MaxParameters {
		return fmt.Sprintf("%d parameters exceed the limit of %d", len(sig.Params), MaxParameters)
	}

	for i, p := range sig.Params {
		if p.Type.IsZero() {
			return fmt.Sprintf("parameter %d has no type", i)
		}

		if !p.Variadic {
			continue
		}

		if i != len(sig.Params)-1 {
			return fmt.Sprintf("variadic parameter %d is not the last one", i)
		}

		if !p.Type.IsArray() {
			return fmt.Sprintf("variadic parameter %d is not an array", i)
		}
	}

	return ""
}

// accepts applies the per-argument filter: null only for non-primitive
// parameters, any other value must be compatible.
func (r *Resolver) accepts(param descriptor.Type, arg descriptor.Value) bool {
	if arg.IsNull() {
		return !param.IsPrimitive()
	}

	return compat.IsCompatible(r.lattice, param, arg)
}

// match reports whether sig accepts args and records which declared type
// receives every argument.
func (r *Resolver) match(sig Signature, args []descriptor.Value) (Candidate, bool) {
	cand := Candidate{
		Signature: sig,
		Slots:     make([]descriptor.Type, 0, len(args)),
	}

	fixed := len(sig.Params)
	if sig.IsVariadic() {
		fixed--
	}

	if len(args) < fixed {
		return Candidate{}, false
	}

	for i := 0; i < fixed; i++ {
		if !r.accepts(sig.Params[i].Type, args[i]) {
			return Candidate{}, false
		}

		cand.Slots = append(cand.Slots, sig.Params[i].Type)
	}

	if !sig.IsVariadic() {
		return cand, len(args) == fixed
	}

	rest := args[fixed:]
	restType := sig.Params[fixed].Type

	if len(rest) == 1 && !rest[0].IsNull() && rest[0].Type() == restType {
		cand.PassThrough = true
		cand.Slots = append(cand.Slots, restType)
		return cand, true
	}

	component := restType.Component()
	for _, arg := range rest {
		if !r.accepts(component, arg) {
			return Candidate{}, false
		}

		cand.Slots = append(cand.Slots, component)
	}

	cand.Packed = true
	return cand, true
}

// reshape lays the arguments out one per declared parameter.
func reshape(c *Candidate, args []descriptor.Value) []descriptor.Value {
	if !c.Packed {
		return append([]descriptor.Value(nil), args...)
	}

	fixed := len(c.Signature.Params) - 1
	res := make([]descriptor.Value, 0, fixed+1)
	res = append(res, args[:fixed]...)

	component := c.Signature.Params[fixed].Type.Component()
	rest := append([]descriptor.Value(nil), args[fixed:]...)
	res = append(res, descriptor.Array(component, rest...))

	return res
}
