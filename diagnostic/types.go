package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"ctor-resolver/internal/common"
)

// Diagnostics groups the findings about one resolution or one declaration
// file by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is a single finding.
type Diagnostic struct {
	Severity DiagnosticSeverity
	// Code is a stable machine-readable identifier, e.g. "ambiguous_resolution".
	Code    string
	Message string
	// Target is the type being constructed, empty when unknown.
	Target string
	// Signature is the rendered constructor the finding is about, if any.
	Signature string
	// Suggestions are alternatives to try: close names or tied signatures.
	Suggestions []string
}

// DiagnosticSeverity orders findings; a Diagnostics is valid while it
// holds nothing of DiagnosticError severity.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

var severityNames = [...]string{
	DiagnosticInfo:    "info",
	DiagnosticWarning: "warning",
	DiagnosticError:   "error",
}

func (s DiagnosticSeverity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return common.UnknownStr
	}

	return severityNames[s]
}

func (d *Diagnostics) bucket(s DiagnosticSeverity) *[]Diagnostic {
	switch s {
	case DiagnosticError:
		return &d.Errors
	case DiagnosticWarning:
		return &d.Warnings
	default:
		return &d.Infos
	}
}

// Add records a finding under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	b := d.bucket(diag.Severity)
	*b = append(*b, diag)
}

// AddError records an error about target, optionally naming a signature.
func (d *Diagnostics) AddError(code, message, target, signature string, suggestions ...string) {
	d.Add(Diagnostic{DiagnosticError, code, message, target, signature, suggestions})
}

// AddWarning records a warning about target.
func (d *Diagnostics) AddWarning(code, message, target, signature string, suggestions ...string) {
	d.Add(Diagnostic{DiagnosticWarning, code, message, target, signature, suggestions})
}

func (d *Diagnostics) AddInfo(code, message, target, signature string) {
	d.Add(Diagnostic{DiagnosticInfo, code, message, target, signature, nil})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends every finding of other, keeping their order.
func (d *Diagnostics) Merge(other Diagnostics) {
	for _, s := range []DiagnosticSeverity{DiagnosticError, DiagnosticWarning, DiagnosticInfo} {
		b := d.bucket(s)
		*b = append(*b, *other.bucket(s)...)
	}
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Error folds the error diagnostics into one error, nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		parts[i] = e.String()
	}

	return errors.New(strings.Join(parts, "; "))
}

// String renders "[Target] Signature: [code] message", dropping the
// parts that are empty.
func (d Diagnostic) String() string {
	var b strings.Builder
	if d.Target != "" {
		fmt.Fprintf(&b, "[%s]", d.Target)
	}

	if d.Signature != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.Signature)
	}

	if b.Len() > 0 {
		b.WriteString(": ")
	}

	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}

	b.WriteString(d.Message)

	return b.String()
}
