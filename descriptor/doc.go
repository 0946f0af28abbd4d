// Package descriptor models the runtime shape of values handed to a
// constructor resolver.
//
// Key types:
//   - Type: a primitive-like scalar, its boxed counterpart, or a named
//     reference type, optionally wrapped in an array of any dimension
//   - Value: a runtime argument, or the explicit null marker
//   - Lattice: the single-rooted assignability tree of reference types
//
// Types and lattices are immutable; they can be shared freely between
// goroutines once built.
package descriptor
