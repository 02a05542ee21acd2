package encode

import (
	"encoding/json"

	"github.com/ydiff/yd/ir"
)

// MarshalJSON renders a node as JSON.  Mapping keys come out sorted
// (encoding/json map behavior), which keeps the output deterministic.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	return json.Marshal(ir.ToAny(node))
}
