package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"ctor-resolver/descriptor"
	"ctor-resolver/internal/common"
	"ctor-resolver/resolve"
)

// Diagnostic codes produced by FromError and Explain.
const (
	CodeNoMatchingSignature = "no_matching_signature"
	CodeAmbiguous           = "ambiguous_resolution"
	CodeMalformed           = "malformed_request"
	CodeInvocationFailed    = "invocation_failed"
	CodeInvalidDeclaration  = "invalid_declaration"
	CodeInternal            = "internal"
	CodeCandidate           = "candidate"
	CodeChosen              = "chosen"
)

// FromError renders err into diagnostics. Resolution and invocation errors
// keep their target and signature; joined errors yield one diagnostic each.
func FromError(err error) Diagnostics {
	var d Diagnostics
	if err == nil {
		return d
	}

	var (
		noMatch    *resolve.NoMatchError
		ambiguity  *resolve.AmbiguityError
		malformed  *resolve.MalformedError
		invocation *resolve.InvocationError
		valErrs    validator.ValidationErrors
	)

	switch {
	case errors.As(err, &noMatch):
		d.AddError(CodeNoMatchingSignature,
			fmt.Sprintf("no constructor accepts (%s)", typeList(noMatch.ArgumentTypes)),
			noMatch.Target.String(), "",
			"check the argument count and that no null is passed to a primitive parameter",
			"narrowing only applies to values within the bounds of the parameter type")

	case errors.As(err, &ambiguity):
		tied := make([]string, len(ambiguity.Tied))
		for i, sig := range ambiguity.Tied {
			tied[i] = sig.String()
		}

		msg := "constructors cannot be told apart"
		if common.IsMultiple(tied) {
			msg = fmt.Sprintf("%d constructors accept (%s) equally well", len(tied), typeList(ambiguity.ArgumentTypes))
		}

		d.AddError(CodeAmbiguous, msg, ambiguity.Target.String(), "", tied...)

	case errors.As(err, &malformed):
		sig := ""
		if malformed.Signature != nil {
			sig = malformed.Signature.String()
		}

		target := ""
		if !malformed.Target.IsZero() {
			target = malformed.Target.String()
		}

		d.AddError(CodeMalformed, malformed.Reason, target, sig)

	case errors.As(err, &invocation):
		msg := "constructor failed"
		if invocation.Cause != nil {
			msg = invocation.Cause.Error()
		}

		d.AddError(CodeInvocationFailed, msg, invocation.Target.String(), invocation.Signature.String())

	case errors.As(err, &valErrs):
		for _, ve := range valErrs {
			d.AddError(CodeInvalidDeclaration, formatValidationError(ve), "", ve.Namespace())
		}

	default:
		if u, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range u.Unwrap() {
				d.Merge(FromError(e))
			}

			return d
		}

		d.AddError(CodeInternal, err.Error(), "", "")
	}

	return d
}

// Explain describes a successful resolution: the chosen signature and every
// other candidate in ranking order.
func Explain(res resolve.Resolution) Diagnostics {
	var d Diagnostics

	target := res.Target.String()
	d.AddInfo(CodeChosen, "selected constructor", target, res.Signature.String())

	for i, c := range res.Candidates {
		var notes []string
		if c.Exact {
			notes = append(notes, "exact")
		}

		if c.Packed {
			notes = append(notes, "packs rest arguments")
		}

		if c.PassThrough {
			notes = append(notes, "passes the array through")
		}

		msg := fmt.Sprintf("rank %d, specificity %v", i+1, c.Specificity)
		if len(notes) > 0 {
			msg += ", " + strings.Join(notes, ", ")
		}

		d.AddInfo(CodeCandidate, msg, target, c.Signature.String())
	}

	if common.IsMultiple(res.Candidates) {
		d.AddWarning(CodeCandidate,
			fmt.Sprintf("%d constructors accepted the arguments", len(res.Candidates)),
			target, res.Signature.String())
	}

	return d
}

func typeList(types []descriptor.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}

	return strings.Join(names, ", ")
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "max":
		return fmt.Sprintf("must have at most %s entries", ve.Param())
	case "typename":
		return fmt.Sprintf("%q is not a valid type name", ve.Value())
	case "param":
		return fmt.Sprintf("%q is not a valid parameter type", ve.Value())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}

		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
