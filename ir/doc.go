// Package ir provides the document tree representation that the diff
// engine operates on.
//
// # Overview
//
// A document is a tree of ir.Node values. Nodes are produced by the
// parse package (or constructed programmatically) and consumed by the
// comparison pipeline. The IR carries no position information and no
// comments; it is purely semantic.
//
// # Node Structure
//
// The IR is a flat tagged union: a single Node struct whose Type field
// selects which of the other fields are meaningful.
//
//   - NullType: null value
//   - BoolType: boolean, under Bool
//   - NumberType: numeric value, under Int64 or Float64, with Number
//     as a raw-text fallback for literals neither can represent
//   - StringType: string value, under String
//   - ArrayType: ordered list, under Values
//   - ObjectType: key-value pairs, under Fields and Values
//
// For ObjectType nodes, Fields[i] is the key for the value at
// Values[i]; the two slices always have equal length, key order is
// insertion order, and keys are unique StringType nodes.
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("web")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// FromKeyVals preserves key order; FromMap sorts keys and is meant for
// construction from unordered Go maps.
//
// # Equality and Ordering
//
// Equal reports value equality: mappings compare order-insensitively,
// sequences positionally, and numbers numerically (1 == 1.0). Compare
// is a total order over nodes backing deterministic layouts such as
// FromMap's key order; it is stricter than Equal (it distinguishes
// integer from float representations so that sort results are
// reproducible).
//
// # Paths
//
// A Path addresses a location inside a document as a sequence of typed
// segments: field names, positional indexes, and derived keys of
// keyed-sequence elements. Segments stay distinguishable through the
// whole pipeline; Path.String is a display form only.
//
// # Ownership
//
// The diff engine never mutates nodes. Derived trees (normalized
// copies) share subtrees with their inputs, which is safe as long as
// callers follow the same discipline. Nodes are not thread-safe for
// mutation.
//
// # Related Packages
//
//   - github.com/ydiff/yd/parse - parses YAML text into IR nodes
//   - github.com/ydiff/yd/encode - renders IR nodes for display
//   - github.com/ydiff/yd/libdiff - normalization and comparison
package ir
