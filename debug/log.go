package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ydiff/yd/encode"
	"github.com/ydiff/yd/ir"
)

// Logf writes a diagnostic line to stderr.  Document nodes among the
// args render in flow form, generic maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			s, err := encode.Flow(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = s
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
