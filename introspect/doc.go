// Package introspect provides the sources of declared constructors consumed
// by the resolver.
//
// Three listers are available:
//   - Registry holds Go constructor functions registered at runtime and is
//     also able to invoke them;
//   - Catalog reads declared types and signatures from a YAML file;
//   - SourceLister scans Go packages and treats exported NewX functions as
//     the constructors of X.
//
// Go types map onto descriptors as follows: bool, int8, int16, uint16,
// int32, int64 (and int), float32 and float64 are the primitives boolean,
// byte, short, char, int, long, float and double; a pointer to one of them
// is its boxed counterpart; string is String; slices are arrays; the empty
// interface is Object; any other type is a reference type named after it.
package introspect
