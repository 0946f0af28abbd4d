package resolve

import (
	"errors"
	"fmt"

	"ctor-resolver/descriptor"
)

var (
	ErrNoMatchingSignature = errors.New("no matching signature")
	ErrAmbiguousResolution = errors.New("ambiguous resolution")
	ErrInvocationFailed    = errors.New("invocation failed")
	ErrMalformedRequest    = errors.New("malformed request")
)

// NoMatchError reports that no declared signature accepts the arguments.
type NoMatchError struct {
	Target        descriptor.Type
	ArgumentTypes []descriptor.Type // zero Type for null arguments
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("%s for %s with argument types %v", ErrNoMatchingSignature, e.Target, e.ArgumentTypes)
}

func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatchingSignature
}

// AmbiguityError reports signatures that stay tied after every ranking
// stage.
type AmbiguityError struct {
	Target        descriptor.Type
	ArgumentTypes []descriptor.Type
	Tied          []Signature
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("%s for %s: %d signatures are equally specific", ErrAmbiguousResolution, e.Target, len(e.Tied))
}

func (e *AmbiguityError) Is(target error) bool {
	return target == ErrAmbiguousResolution
}

// MalformedError reports a request that cannot be resolved at all.
type MalformedError struct {
	Target    descriptor.Type
	Signature *Signature // offending declaration, if any
	Reason    string
}

func (e *MalformedError) Error() string {
	if e.Signature != nil {
		return fmt.Sprintf("%s: %s: %s", ErrMalformedRequest, e.Signature, e.Reason)
	}

	return fmt.Sprintf("%s: %s", ErrMalformedRequest, e.Reason)
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedRequest
}

// InvocationError wraps a failure of invoking the chosen signature. It is
// never produced by resolution itself.
type InvocationError struct {
	Target    descriptor.Type
	Signature Signature
	Cause     error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("%s: %s of %s: %v", ErrInvocationFailed, e.Signature, e.Target, e.Cause)
}

func (e *InvocationError) Is(target error) bool {
	return target == ErrInvocationFailed
}

func (e *InvocationError) Unwrap() error {
	return e.Cause
}

func argumentTypes(args []descriptor.Value) []descriptor.Type {
	res := make([]descriptor.Type, len(args))
	for i, a := range args {
		res[i] = a.Type()
	}

	return res
}
