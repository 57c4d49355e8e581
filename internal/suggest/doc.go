// Package suggest proposes similarly named members for "did you mean"
// hints attached to undefined-method diagnostics.
package suggest
