// Package resolve selects the single constructor signature of a target type
// that best accepts a vector of runtime arguments.
//
// Resolution runs in three stages:
//   - filtering: every argument must be compatible with the parameter that
//     receives it; null is accepted only by non-primitive parameters, and
//     trailing arguments may be collected into a rest parameter
//   - ranking: candidates are ordered by specificity, then by narrowness of
//     their primitive parameters, then by an exact match of the argument
//     types
//   - selection: the most specific, the most generic, or the first match in
//     declaration order
//
// A tie that survives every ranking stage is reported as an ambiguity rather
// than broken arbitrarily. Nothing is cached: every call re-lists the
// candidate set, so a Resolver is safe for concurrent use as long as the
// declarations behind its Lister do not change.
package resolve
