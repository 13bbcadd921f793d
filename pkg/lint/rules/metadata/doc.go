// Package metadata provides lint rules for the rcorder(8) comment block.
//
// Rules in this package:
//   - RC04: PROVIDE, REQUIRE, BEFORE and KEYWORD out of order
//   - RC05: Obsolete or missing KEYWORD values
package metadata
