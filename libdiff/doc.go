// Package libdiff implements the comparison core: normalization of
// keyed sequences, the recursive structural comparator, and the
// change model shared by the rendering layers.
//
// Comparison is a pure function over two document trees. Inputs are
// never mutated; normalized copies and change records are freshly
// allocated per run.
package libdiff
