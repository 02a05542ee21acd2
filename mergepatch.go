package yd

import (
	"bytes"
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/ydiff/yd/encode"
	"github.com/ydiff/yd/ir"
)

// MergePatch renders the difference between two documents as an RFC
// 7386 JSON merge patch: applying the result to left yields right.
// Keys the patch omits are untouched, keys it sets to null are
// removed. Mapping keys come out sorted, as with MarshalJSON.
func MergePatch(left, right *ir.Node) ([]byte, error) {
	l, err := encode.MarshalJSON(left)
	if err != nil {
		return nil, err
	}
	r, err := encode.MarshalJSON(right)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(l, r)
}

// ApplyMergePatch applies an RFC 7386 merge patch to a document and
// converts the result back into a node. Mapping keys of the result
// come out in ir.Compare order.
func ApplyMergePatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	d, err := encode.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(out))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return ir.FromAny(v)
}
