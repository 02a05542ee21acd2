package parse

import "errors"

// ErrMalformedDocument wraps every input problem surfaced by this
// package, from syntax errors to multi-document streams. Callers
// match it with errors.Is.
var ErrMalformedDocument = errors.New("malformed document")
