// Package parse reads YAML documents into [ir.Node] trees.
//
// The goccy parser does the lexing and structural analysis; this
// package walks the resulting syntax tree and produces engine nodes,
// preserving mapping key order as it appears in the input. Anchors
// are resolved, merge keys ("<<") are expanded, and duplicate keys
// follow last-write-wins with the position of the first occurrence.
//
// Only single-document inputs are accepted. An empty input parses to
// the null node.
package parse

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/ydiff/yd/ir"
)

// Parse reads one YAML document from data. Multi-document streams
// are rejected; errors wrap ErrMalformedDocument.
func Parse(data []byte) (*ir.Node, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	var body ast.Node
	switch len(file.Docs) {
	case 0:
	case 1:
		body = file.Docs[0].Body
	default:
		return nil, fmt.Errorf("%w: %d documents in stream, want 1", ErrMalformedDocument, len(file.Docs))
	}
	if body == nil {
		return ir.Null(), nil
	}
	b := &builder{anchors: map[string]*ir.Node{}}
	return b.walk(body)
}

// File reads and parses the YAML document at path.
func File(path string) (*ir.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	node, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return node, nil
}

// builder carries the anchor table for one document walk.
type builder struct {
	anchors map[string]*ir.Node
}

func (b *builder) walk(node ast.Node) (*ir.Node, error) {
	switch n := node.(type) {
	case nil:
		return ir.Null(), nil
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.BoolNode:
		return ir.FromBool(n.Value), nil
	case *ast.IntegerNode:
		return integerNode(n), nil
	case *ast.FloatNode:
		return ir.FromFloat(n.Value), nil
	case *ast.InfinityNode:
		return ir.FromFloat(n.Value), nil
	case *ast.NanNode:
		return ir.FromFloat(math.NaN()), nil
	case *ast.StringNode:
		return ir.FromString(n.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(n.Value.Value), nil
	case *ast.MappingNode:
		return b.mapping(n.Values)
	case *ast.MappingValueNode:
		return b.mapping([]*ast.MappingValueNode{n})
	case *ast.SequenceNode:
		return b.sequence(n)
	case *ast.AnchorNode:
		name := n.Name.GetToken().Value
		v, err := b.walk(n.Value)
		if err != nil {
			return nil, err
		}
		b.anchors[name] = v
		return v, nil
	case *ast.AliasNode:
		name := n.Value.GetToken().Value
		v, ok := b.anchors[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown anchor %q", ErrMalformedDocument, name)
		}
		return v, nil
	case *ast.TagNode:
		return b.tagged(n)
	default:
		return nil, fmt.Errorf("%w: unsupported node %T", ErrMalformedDocument, node)
	}
}

func (b *builder) sequence(n *ast.SequenceNode) (*ir.Node, error) {
	elts := make([]*ir.Node, 0, len(n.Values))
	for _, v := range n.Values {
		e, err := b.walk(v)
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	return ir.FromSlice(elts), nil
}

// mapping builds an object from key/value pairs. Merge sources are
// applied first so that explicit keys override them; within merges,
// earlier sources win. Duplicate explicit keys keep the position of
// the first occurrence and the value of the last.
func (b *builder) mapping(pairs []*ast.MappingValueNode) (*ir.Node, error) {
	var (
		merges   []*ir.Node
		explicit []ir.KeyVal
	)
	for _, p := range pairs {
		if isMergeKey(p.Key) {
			src, err := b.walk(p.Value)
			if err != nil {
				return nil, err
			}
			merges = append(merges, src)
			continue
		}
		key, err := b.keyString(p.Key)
		if err != nil {
			return nil, err
		}
		val, err := b.walk(p.Value)
		if err != nil {
			return nil, err
		}
		explicit = append(explicit, ir.KeyVal{Key: ir.FromString(key), Val: val})
	}
	ob := &objBuilder{idx: map[string]int{}}
	for _, src := range merges {
		if err := ob.merge(src); err != nil {
			return nil, err
		}
	}
	for _, kv := range explicit {
		ob.set(kv.Key.String, kv.Val)
	}
	return ob.node(), nil
}

func isMergeKey(key ast.MapKeyNode) bool {
	switch k := key.(type) {
	case *ast.MergeKeyNode:
		return true
	case *ast.StringNode:
		return k.Value == "<<"
	}
	return false
}

func (b *builder) keyString(key ast.MapKeyNode) (string, error) {
	switch k := key.(type) {
	case *ast.StringNode:
		return k.Value, nil
	case *ast.IntegerNode:
		return scalarText(integerNode(k))
	case *ast.FloatNode:
		return strconv.FormatFloat(k.Value, 'f', -1, 64), nil
	case *ast.BoolNode:
		return strconv.FormatBool(k.Value), nil
	case *ast.NullNode:
		return "null", nil
	}
	tok := key.GetToken()
	if tok == nil {
		return "", fmt.Errorf("%w: unsupported key %T", ErrMalformedDocument, key)
	}
	return tok.Value, nil
}

// tagged resolves the core YAML tags; anything else is rejected the
// same way a safe loader would reject it.
func (b *builder) tagged(n *ast.TagNode) (*ir.Node, error) {
	tag := n.Start.Value
	switch tag {
	case "!!map", "!!seq", "!!merge":
		return b.walk(n.Value)
	case "!!null":
		return ir.Null(), nil
	case "!!str", "!!binary", "!!timestamp":
		v, err := b.walk(n.Value)
		if err != nil {
			return nil, err
		}
		s, err := scalarText(v)
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case "!!bool":
		v, err := b.walk(n.Value)
		if err != nil {
			return nil, err
		}
		return coerceBool(v)
	case "!!int":
		v, err := b.walk(n.Value)
		if err != nil {
			return nil, err
		}
		return coerceInt(v)
	case "!!float":
		v, err := b.walk(n.Value)
		if err != nil {
			return nil, err
		}
		return coerceFloat(v)
	default:
		return nil, fmt.Errorf("%w: unsupported tag %q", ErrMalformedDocument, tag)
	}
}

// integerNode maps the parser's integer representation onto ours.
// Values beyond int64 keep their source text as a raw number.
func integerNode(n *ast.IntegerNode) *ir.Node {
	switch v := n.Value.(type) {
	case int64:
		return ir.FromInt(v)
	case uint64:
		if v <= math.MaxInt64 {
			return ir.FromInt(int64(v))
		}
	case int:
		return ir.FromInt(int64(v))
	}
	return &ir.Node{Type: ir.NumberType, Number: n.GetToken().Value}
}

func scalarText(v *ir.Node) (string, error) {
	switch v.Type {
	case ir.StringType:
		return v.String, nil
	case ir.BoolType:
		return strconv.FormatBool(v.Bool), nil
	case ir.NullType:
		return "", nil
	case ir.NumberType:
		switch {
		case v.Int64 != nil:
			return strconv.FormatInt(*v.Int64, 10), nil
		case v.Float64 != nil:
			return strconv.FormatFloat(*v.Float64, 'f', -1, 64), nil
		default:
			return v.Number, nil
		}
	}
	return "", fmt.Errorf("%w: cannot apply scalar tag to %v", ErrMalformedDocument, v.Type)
}

func coerceBool(v *ir.Node) (*ir.Node, error) {
	if v.Type == ir.BoolType {
		return v, nil
	}
	if v.Type == ir.StringType {
		b, err := strconv.ParseBool(v.String)
		if err == nil {
			return ir.FromBool(b), nil
		}
	}
	return nil, fmt.Errorf("%w: cannot read %v as bool", ErrMalformedDocument, v.Type)
}

func coerceInt(v *ir.Node) (*ir.Node, error) {
	if v.Type == ir.NumberType && v.Int64 != nil {
		return v, nil
	}
	if v.Type == ir.StringType {
		i, err := strconv.ParseInt(v.String, 0, 64)
		if err == nil {
			return ir.FromInt(i), nil
		}
	}
	return nil, fmt.Errorf("%w: cannot read %v as int", ErrMalformedDocument, v.Type)
}

func coerceFloat(v *ir.Node) (*ir.Node, error) {
	if v.Type == ir.NumberType {
		switch {
		case v.Float64 != nil:
			return v, nil
		case v.Int64 != nil:
			return ir.FromFloat(float64(*v.Int64)), nil
		}
	}
	if v.Type == ir.StringType {
		f, err := strconv.ParseFloat(v.String, 64)
		if err == nil {
			return ir.FromFloat(f), nil
		}
	}
	return nil, fmt.Errorf("%w: cannot read %v as float", ErrMalformedDocument, v.Type)
}

// objBuilder accumulates object fields with stable positions.
type objBuilder struct {
	idx map[string]int
	kvs []ir.KeyVal
}

func (ob *objBuilder) set(key string, val *ir.Node) {
	if i, ok := ob.idx[key]; ok {
		ob.kvs[i].Val = val
		return
	}
	ob.idx[key] = len(ob.kvs)
	ob.kvs = append(ob.kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
}

func (ob *objBuilder) setIfAbsent(key string, val *ir.Node) {
	if _, ok := ob.idx[key]; ok {
		return
	}
	ob.idx[key] = len(ob.kvs)
	ob.kvs = append(ob.kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
}

// merge applies one "<<" source, an object or a sequence of objects.
func (ob *objBuilder) merge(src *ir.Node) error {
	switch src.Type {
	case ir.ObjectType:
		for i, f := range src.Fields {
			ob.setIfAbsent(f.String, src.Values[i])
		}
		return nil
	case ir.ArrayType:
		for _, e := range src.Values {
			if e.Type != ir.ObjectType {
				return fmt.Errorf("%w: merge sequence element is %v, want object", ErrMalformedDocument, e.Type)
			}
			for i, f := range e.Fields {
				ob.setIfAbsent(f.String, e.Values[i])
			}
		}
		return nil
	}
	return fmt.Errorf("%w: merge value is %v, want object", ErrMalformedDocument, src.Type)
}

func (ob *objBuilder) node() *ir.Node {
	return ir.FromKeyVals(ob.kvs)
}
