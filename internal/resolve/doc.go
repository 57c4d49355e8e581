// Package resolve picks the method an invocation calls.
//
// Resolution pipeline:
//  1. Filter candidates by name, accessibility and arity
//  2. Strict phase: identity and widening only
//  3. Loose phase: boxing and unboxing allowed (skipped if phase 2 found any)
//  4. Varargs phase: trailing arguments collected into the array parameter
//     (skipped if phase 2 or 3 found any)
//  5. Most-specific selection among the first non-empty phase
//  6. Findings: no applicable method, ambiguity, advisory boxing/unboxing
package resolve
