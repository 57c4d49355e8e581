// Package diagnostic provides the findings produced by overload resolution
// and conditional typing, and renders them as warnings and errors.
//
// Key capabilities:
//   - No applicable method reports naming the first incompatible argument
//   - Ambiguity reports naming two maximally specific candidates
//   - Incompatible conditional operand reports
//   - Advisory boxing and unboxing findings with configurable severity
//   - Compiler-worded messages with name suggestions
package diagnostic
