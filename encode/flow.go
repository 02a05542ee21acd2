package encode

import (
	"fmt"
	"strings"

	"github.com/ydiff/yd/ir"
)

// Flow renders a node on a single line: "{k: v, k2: v2}" for mappings,
// "[1, 2]" for sequences, bare scalars otherwise.  Multi-line strings
// are escaped rather than spread over lines.
func Flow(node *ir.Node) (string, error) {
	if node == nil {
		return "", fmt.Errorf("%w: nil node", ErrEncode)
	}
	switch node.Type {
	case ir.ObjectType:
		parts := make([]string, len(node.Fields))
		for i, f := range node.Fields {
			v, err := Flow(node.Values[i])
			if err != nil {
				return "", err
			}
			parts[i] = quoteField(f.String) + ": " + v
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	case ir.ArrayType:
		parts := make([]string, len(node.Values))
		for i, v := range node.Values {
			s, err := Flow(v)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	default:
		return scalarString(node)
	}
}

// MustFlow is Flow for nodes known to be well formed; it panics on
// encoding errors.
func MustFlow(node *ir.Node) string {
	s, err := Flow(node)
	if err != nil {
		panic(err)
	}
	return s
}
