package yd

import (
	"github.com/ydiff/yd/debug"
	"github.com/ydiff/yd/ir"
	"github.com/ydiff/yd/libdiff"
)

// Compare reports the structural differences between two documents.
// Neither input is mutated. Both sides are normalized before the
// walk, so documents that differ only in keyed-sequence order or in
// scalar spelling (1 vs 1.0, quoted vs plain strings) compare equal.
func Compare(left, right *ir.Node) *libdiff.ChangeSet {
	if debug.Norm() {
		debug.Logf("compare: normalized left %v\n", libdiff.Normalize(left))
		debug.Logf("compare: normalized right %v\n", libdiff.Normalize(right))
	}
	cs := libdiff.Diff(left, right)
	if debug.Diff() {
		debug.Logf("compare: %d changes, %s\n", cs.Len(), cs.Counts())
	}
	return cs
}
