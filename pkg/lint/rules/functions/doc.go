// Package functions provides lint rules for function bodies.
//
// Rules in this package:
//   - RC11: Trivial functions and forbidden commands
package functions
