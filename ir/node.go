package ir

import (
	"slices"
)

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
		Number: y.Number,
	}
	if y.Float64 != nil {
		f := *y.Float64
		res.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	if y.Fields != nil {
		res.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			res.Fields[i] = yf.Clone()
		}
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			res.Values[i] = yv.Clone()
		}
	}
	return res
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// FromMap builds an object with keys in Compare order, restoring a
// deterministic layout where a Go map lost it.  Use FromKeyVals when
// key order matters.
func FromMap(yMap map[string]*Node) *Node {
	kvs := make([]KeyVal, 0, len(yMap))
	for key, val := range yMap {
		kvs = append(kvs, KeyVal{Key: FromString(key), Val: val})
	}
	slices.SortFunc(kvs, func(a, b KeyVal) int {
		return Compare(a.Key, b.Key)
	})
	return FromKeyVals(kvs)
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(ySlice))
	copy(res.Values, ySlice)
	return res
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

func Null() *Node {
	return &Node{Type: NullType}
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
