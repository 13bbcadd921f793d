// Package statements provides lint rules for control statements.
//
// Rules in this package:
//   - RC12: run_rc_command without its argument
package statements
