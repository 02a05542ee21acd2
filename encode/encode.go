package encode

import (
	"fmt"
	"strings"

	"github.com/ydiff/yd/ir"
)

// Block renders a node as YAML-style block lines.  Lines carry their
// indentation relative to the node itself; callers prepend any outer
// indentation.  Empty containers render inline ("{}", "[]") and
// multi-line strings as "|" literal blocks.
func Block(node *ir.Node) ([]string, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", ErrEncode)
	}
	switch node.Type {
	case ir.ObjectType:
		return blockObject(node)
	case ir.ArrayType:
		return blockArray(node)
	case ir.StringType:
		if isMultiline(node) {
			lines := []string{"|"}
			for _, ln := range literalLines(node.String) {
				lines = append(lines, "  "+ln)
			}
			return lines, nil
		}
		return []string{quoteScalar(node.String)}, nil
	default:
		s, err := scalarString(node)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	}
}

func blockObject(node *ir.Node) ([]string, error) {
	if len(node.Fields) == 0 {
		return []string{"{}"}, nil
	}
	var lines []string
	for i, f := range node.Fields {
		key := quoteField(f.String)
		val := node.Values[i]
		if val == nil {
			val = ir.Null()
		}
		switch {
		case val.Type == ir.ObjectType && len(val.Fields) > 0:
			body, err := blockObject(val)
			if err != nil {
				return nil, err
			}
			lines = append(lines, key+":")
			for _, ln := range body {
				lines = append(lines, "  "+ln)
			}
		case val.Type == ir.ArrayType && len(val.Values) > 0:
			// sequence items sit at the key's own depth
			body, err := blockArray(val)
			if err != nil {
				return nil, err
			}
			lines = append(lines, key+":")
			lines = append(lines, body...)
		case isMultiline(val):
			lines = append(lines, key+": |")
			for _, ln := range literalLines(val.String) {
				lines = append(lines, "  "+ln)
			}
		case val.Type == ir.ObjectType:
			lines = append(lines, key+": {}")
		case val.Type == ir.ArrayType:
			lines = append(lines, key+": []")
		default:
			v, err := scalarString(val)
			if err != nil {
				return nil, err
			}
			lines = append(lines, key+": "+v)
		}
	}
	return lines, nil
}

func blockArray(node *ir.Node) ([]string, error) {
	if len(node.Values) == 0 {
		return []string{"[]"}, nil
	}
	var lines []string
	for _, v := range node.Values {
		sub, err := Block(v)
		if err != nil {
			return nil, err
		}
		lines = append(lines, "- "+sub[0])
		for _, ln := range sub[1:] {
			lines = append(lines, "  "+ln)
		}
	}
	return lines, nil
}

func isMultiline(node *ir.Node) bool {
	return node.Type == ir.StringType && strings.Contains(node.String, "\n")
}

// literalLines splits a multi-line string for literal-block display,
// dropping a single trailing newline.
func literalLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
