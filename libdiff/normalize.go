package libdiff

import (
	"slices"
	"strconv"
	"strings"

	"github.com/ydiff/yd/encode"
	"github.com/ydiff/yd/ir"
)

// nameField is the field that marks a sequence element as a named
// record and supplies its identity.
const nameField = "name"

// Normalize returns a copy of node in which every qualifying sequence
// is sorted by derived key, so that reordering such a sequence does
// not register as a difference. Mapping key order is preserved,
// non-qualifying sequences keep their element order, and scalars are
// returned as-is. A nil node normalizes to the null node.
func Normalize(node *ir.Node) *ir.Node {
	if node == nil {
		return ir.Null()
	}
	switch node.Type {
	case ir.ObjectType:
		res := &ir.Node{Type: ir.ObjectType}
		res.Fields = slices.Clone(node.Fields)
		res.Values = make([]*ir.Node, len(node.Values))
		for i, v := range node.Values {
			res.Values[i] = Normalize(v)
		}
		return res
	case ir.ArrayType:
		vals := make([]*ir.Node, len(node.Values))
		for i, v := range node.Values {
			vals[i] = Normalize(v)
		}
		if sequenceQualifies(vals) {
			slices.SortStableFunc(vals, func(a, b *ir.Node) int {
				return strings.Compare(sortKey(a), sortKey(b))
			})
		}
		return &ir.Node{Type: ir.ArrayType, Values: vals}
	default:
		return node
	}
}

// sequenceQualifies reports whether elems form a keyed collection:
// non-empty, first element an object with at least one field, and
// either the first element has a name field or every element is an
// object with the same field set as the first.
func sequenceQualifies(elems []*ir.Node) bool {
	if len(elems) == 0 {
		return false
	}
	first := elems[0]
	if first.Type != ir.ObjectType || len(first.Fields) == 0 {
		return false
	}
	if ir.Get(first, nameField) != nil {
		return true
	}
	want := make(map[string]bool, len(first.Fields))
	for _, f := range first.Fields {
		want[f.String] = true
	}
	for _, e := range elems[1:] {
		if e.Type != ir.ObjectType || len(e.Fields) != len(want) {
			return false
		}
		for _, f := range e.Fields {
			if !want[f.String] {
				return false
			}
		}
	}
	return true
}

// sortKey derives the identity of an element in a qualifying
// sequence: its name field when present, else the value under its
// first field, else the element itself, as text.
func sortKey(elem *ir.Node) string {
	if elem.Type == ir.ObjectType {
		if v := ir.Get(elem, nameField); v != nil {
			return keyText(v)
		}
		if len(elem.Values) > 0 {
			return keyText(elem.Values[0])
		}
	}
	return keyText(elem)
}

// keyText renders a node as key text. Strings stay verbatim, without
// the quoting the encoder would apply.
func keyText(v *ir.Node) string {
	switch v.Type {
	case ir.StringType:
		return v.String
	case ir.BoolType:
		return strconv.FormatBool(v.Bool)
	case ir.NullType:
		return "null"
	case ir.NumberType:
		switch {
		case v.Int64 != nil:
			return strconv.FormatInt(*v.Int64, 10)
		case v.Float64 != nil:
			return strconv.FormatFloat(*v.Float64, 'f', -1, 64)
		default:
			return v.Number
		}
	}
	s, err := encode.Flow(v)
	if err != nil {
		return ""
	}
	return s
}
