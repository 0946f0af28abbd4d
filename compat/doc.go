// Package compat decides whether a runtime value can be supplied where a
// declared type is expected.
//
// Key functions:
//   - CanWiden: automatic, range-free widening of numeric kinds
//   - CanNarrow: narrowing accepted only when the value fits the target
//   - IsCompatible: identity, boxing, assignability, widening or narrowing
//   - Classify: the same decision with the level and a reason attached
//
// Null values are never compatible here; callers decide how null is treated.
package compat
