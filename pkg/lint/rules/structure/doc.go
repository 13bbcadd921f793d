// Package structure provides lint rules for the overall layout of a script.
//
// Rules in this package:
//   - RC00: Function blocks that could not be classified cleanly
//   - RC01: Missing or malformed shebang
//   - RC02: Constructs out of canonical file order
//   - RC03: Lines that belong to no construct
package structure
