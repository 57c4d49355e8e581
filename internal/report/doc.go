// Package report renders scenario outcomes and diagnostics.
//
// Three formats are supported: colored text for terminals, YAML for review
// and diffing, and msgpack for tools consuming results in bulk.
package report
