// Package construct resolves a constructor call and invokes the chosen
// signature.
package construct

import (
	"ctor-resolver/descriptor"
	"ctor-resolver/resolve"
)

// Invoker calls a resolved signature with arguments laid out one per
// declared parameter.
type Invoker interface {
	Invoke(target descriptor.Type, sig resolve.Signature, args []descriptor.Value) (any, error)
}

// Container both declares and invokes constructors, as introspect.Registry
// does.
type Container interface {
	resolve.Lister
	Invoker
}

// New instantiates target with the most specific constructor of c that
// accepts args.
func New(c Container, target descriptor.Type, args ...descriptor.Value) (any, error) {
	return NewWithMode(c, resolve.ModeMostSpecific, target, args...)
}

// NewWithMode instantiates target with the constructor of c picked by mode.
func NewWithMode(c Container, mode resolve.Mode, target descriptor.Type, args ...descriptor.Value) (any, error) {
	return NewWithResolver(resolve.New(c), c, mode, target, args...)
}

// NewWithResolver resolves with r, which may carry its own lattice, and
// invokes the chosen signature through inv. Resolution errors are returned
// as is; invocation failures are wrapped in *resolve.InvocationError.
func NewWithResolver(r *resolve.Resolver, inv Invoker, mode resolve.Mode, target descriptor.Type, args ...descriptor.Value) (any, error) {
	res, err := r.Resolve(target, args, mode)
	if err != nil {
		return nil, err
	}

	obj, err := inv.Invoke(target, res.Signature, res.Arguments)
	if err != nil {
		return nil, &resolve.InvocationError{
			Target:    target,
			Signature: res.Signature,
			Cause:     err,
		}
	}

	return obj, nil
}
