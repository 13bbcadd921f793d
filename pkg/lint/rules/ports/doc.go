// Package ports provides lint rules that only apply to scripts shipped by
// ports. They run after the universal rules, and only in ports mode.
//
// Rules in this package:
//   - PT01: Colon use in default assignments
//   - PT02: Old-style longhand defaults
package ports
