package encode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ydiff/yd/ir"
)

// needsQuote reports whether a string scalar would be ambiguous when
// rendered bare: empty, surrounding whitespace, a null/bool/number
// lookalike, a leading indicator character, or a mapping-like shape.
func needsQuote(v string) bool {
	if v == "" {
		return true
	}
	if v != strings.TrimSpace(v) {
		return true
	}
	switch strings.ToLower(v) {
	case "null", "~", "true", "false", "yes", "no", "on", "off":
		return true
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return true
	}
	if strings.ContainsAny(v, "\n\t") {
		return true
	}
	switch v[0] {
	case '-', '?', ':', ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
		return true
	}
	if strings.Contains(v, ": ") || strings.HasSuffix(v, ":") {
		return true
	}
	return strings.Contains(v, " #")
}

func quoteScalar(v string) string {
	if needsQuote(v) {
		return strconv.Quote(v)
	}
	return v
}

func quoteField(f string) string {
	if needsQuote(f) {
		return strconv.Quote(f)
	}
	return f
}

// scalarString renders a leaf node on one line.
func scalarString(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return strconv.FormatBool(node.Bool), nil
	case ir.NumberType:
		return numberString(node), nil
	case ir.StringType:
		return quoteScalar(node.String), nil
	default:
		return "", fmt.Errorf("%w: %s is not a scalar", ErrEncode, node.Type)
	}
}

func numberString(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 != nil {
		f := *node.Float64
		switch {
		case math.IsNaN(f):
			return ".nan"
		case math.IsInf(f, 1):
			return ".inf"
		case math.IsInf(f, -1):
			return "-.inf"
		}
		v := strconv.FormatFloat(f, 'f', -1, 64)
		// keep floats visibly floats: 2 -> 2.0
		if !strings.Contains(v, ".") {
			v += ".0"
		}
		return v
	}
	return node.Number
}
