// Package scenario loads YAML files describing a class universe, method
// candidates, call sites and conditional expressions, and runs them through
// the resolution engine.
//
// Example:
//
//	version: "1"
//	config:
//	  source: "1.5"
//	classes:
//	  - name: Y
//	    methods:
//	      - public test(Integer)
//	      - private test(int)
//	calls:
//	  - site: main
//	    caller: X
//	    receiver: Y
//	    method: test
//	    args: [int]
//	    expect: test(Integer)
//	conditionals:
//	  - left: Integer
//	    right: Short
//	    expect: int
package scenario
