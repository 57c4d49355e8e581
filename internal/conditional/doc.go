// Package conditional computes the type of a conditional expression
// "guard ? left : right" from the static types of its operands.
package conditional
