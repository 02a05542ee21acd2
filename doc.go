// Package yd compares hierarchical YAML documents.
//
// Compare walks two parsed documents and produces a ChangeSet of
// added, removed, and modified paths. Keyed sequences such as
// container env lists are matched by key rather than by position,
// so reordering alone is never reported as a difference.
//
// The subpackages divide the pipeline: parse loads YAML into ir
// nodes, libdiff computes changes, report renders them for humans,
// and encode writes nodes back out as YAML or JSON.
package yd
