package ir

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ToAny converts a node to plain Go values: nil, bool, int64, float64,
// json.Number, string, []any, and map[string]any.  Mapping order is
// lost, which is fine for the JSON and expression-environment uses
// this serves.
func ToAny(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case NullType:
		return nil
	case BoolType:
		return node.Bool
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case StringType:
		return node.String
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f.String] = ToAny(node.Values[i])
		}
		return res
	}
	return nil
}

// FromAny converts plain Go values back to nodes, inverting ToAny
// over the types a json decoder produces. Map keys come out in
// Compare order via FromMap. json.Number keeps int64 when it fits,
// then float64, then the raw literal.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		if i, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return FromInt(i), nil
		}
		if f, err := strconv.ParseFloat(string(x), 64); err == nil {
			return FromFloat(f), nil
		}
		return &Node{Type: NumberType, Number: string(x)}, nil
	case []any:
		vals := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for key, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[key] = n
		}
		return FromMap(m), nil
	}
	return nil, fmt.Errorf("cannot convert %T to a node", v)
}
