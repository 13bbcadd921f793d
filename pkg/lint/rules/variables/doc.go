// Package variables provides lint rules for variable assignments.
//
// Rules in this package:
//   - RC06: Variables not grouped as init, defaults, others
//   - RC07: Values quoted for no reason
//   - RC08: Empty values
//   - RC09: Missing desc
//   - RC10: rcvar not naming the enable knob
//   - RC13: name unset or disagreeing with the file name and PROVIDE
package variables
