// Package diagnostic provides structured errors, warnings, and
// "why this constructor was chosen" explanations for the resolver.
//
// Key capabilities:
//   - Rendering of resolution and invocation failures with suggestions
//   - Ambiguity reports listing the tied signatures
//   - Validation reports for declaration files
//   - Explanation of resolution decisions
package diagnostic
