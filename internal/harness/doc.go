// Package harness runs query conformance scenarios.
//
// A scenario is a YAML file holding a record set and a list of cases. Each
// case compiles one query, optionally binds placeholder values, and states
// what the query must select:
//
//	name: keyed
//	description: "Comparison operators over string records"
//	options:
//	  single_quote_escape: "'"
//	records:
//	  - {id: map0, key0: foo, key1: bar}
//	  - {id: map1, key0: hello}
//	cases:
//	  - name: prefix
//	    query: key0 ^= f
//	    expect: [map0]
//	  - name: bound
//	    query: key0 == ?
//	    bind: [hello]
//	    count: 1
//	    first: map1
//	  - name: unclosed
//	    query: (key0 == foo
//	    error: SYNTAX_ERROR
//
// Records are identified by their "id" property. expect lists the ids
// selected by SelectAll in order, count checks Count, first checks the id
// returned by SelectFirst (an empty string means no match), and error names
// the Code the case must fail with.
//
// RunWithGolden additionally renders the outcome as a text report and
// compares it against testdata/golden/<name>.golden.
package harness
