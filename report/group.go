package report

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/ydiff/yd/ir"
	"github.com/ydiff/yd/libdiff"
)

// Complementary fields of a keyed record: a plain value and its
// indirect counterpart. An add of one paired with a remove of the
// other on the same element displays as a single modification.
const (
	valueField     = "value"
	valueFromField = "valueFrom"
)

// rec pairs a change with its change-set position so regrouped views
// can restore emission order.
type rec struct {
	seq int
	ch  libdiff.Change
}

// node is one location in the report tree: the changes that end here
// plus children keyed by segment label.
type node struct {
	seg      ir.Segment
	recs     []rec
	children map[string]*node
}

// tree holds a change set grouped by first path segment. Changes with
// an empty path live in the root slot, so a mapping key that is
// itself the empty string still gets an ordinary group.
type tree struct {
	root   []rec
	groups map[string]*node
}

func group(cs *libdiff.ChangeSet) *tree {
	tr := &tree{groups: map[string]*node{}}
	for i, ch := range cs.Changes {
		r := rec{seq: i, ch: ch}
		if len(ch.Path) == 0 {
			tr.root = append(tr.root, r)
			continue
		}
		tr.group(ch.Path[0]).insert(ch.Path[1:], r)
	}
	return tr
}

func (t *tree) group(seg ir.Segment) *node {
	lb := label(seg)
	n, ok := t.groups[lb]
	if !ok {
		n = &node{seg: seg}
		t.groups[lb] = n
	}
	return n
}

func (n *node) insert(rest ir.Path, r rec) {
	if len(rest) == 0 {
		n.recs = append(n.recs, r)
		return
	}
	n.child(rest[0]).insert(rest[1:], r)
}

func (n *node) child(seg ir.Segment) *node {
	lb := label(seg)
	if n.children == nil {
		n.children = map[string]*node{}
	}
	c, ok := n.children[lb]
	if !ok {
		c = &node{seg: seg}
		n.children[lb] = c
	}
	return c
}

// label renders one segment for grouping, headers and record labels:
// field names verbatim, indexes and derived keys bracketed. The empty
// field name renders quoted so its header has a visible label.
func label(seg ir.Segment) string {
	switch seg.Kind {
	case ir.IndexSegment:
		return "[" + strconv.Itoa(seg.Index) + "]"
	case ir.KeySegment:
		return "[" + seg.Key + "]"
	default:
		if seg.Field == "" {
			return `""`
		}
		return seg.Field
	}
}

// records returns every change at or below n, in emission order.
func (n *node) records() []rec {
	out := slices.Clone(n.recs)
	for _, c := range n.children {
		out = append(out, c.records()...)
	}
	slices.SortFunc(out, func(a, b rec) int { return cmp.Compare(a.seq, b.seq) })
	return out
}

// maxRecordDepth is the longest remaining path, in segments, from n
// down to any record. Zero means every record sits on n itself.
func (n *node) maxRecordDepth() int {
	d := 0
	for _, c := range n.children {
		if cd := c.maxRecordDepth() + 1; cd > d {
			d = cd
		}
	}
	return d
}

// pairComplements merges an added value with a removed valueFrom on
// the same element (or the reverse) into one modified record. Other
// records pass through; the merged record keeps the earlier position.
func pairComplements(recs []rec) []rec {
	vi, fi := -1, -1
	for i, rc := range recs {
		if len(rc.ch.Path) == 0 {
			continue
		}
		seg := rc.ch.Path[len(rc.ch.Path)-1]
		if seg.Kind != ir.FieldSegment {
			continue
		}
		switch seg.Field {
		case valueField:
			vi = i
		case valueFromField:
			fi = i
		}
	}
	if vi == -1 || fi == -1 {
		return recs
	}
	v, f := recs[vi], recs[fi]
	var merged libdiff.Change
	switch {
	case v.ch.Kind == libdiff.Added && f.ch.Kind == libdiff.Removed:
		merged = libdiff.Change{
			Kind: libdiff.Modified,
			Path: v.ch.Path[:len(v.ch.Path)-1],
			Old:  f.ch.Old,
			New:  v.ch.New,
		}
	case f.ch.Kind == libdiff.Added && v.ch.Kind == libdiff.Removed:
		merged = libdiff.Change{
			Kind: libdiff.Modified,
			Path: f.ch.Path[:len(f.ch.Path)-1],
			Old:  v.ch.Old,
			New:  f.ch.New,
		}
	default:
		return recs
	}
	out := make([]rec, 0, len(recs)-1)
	for i, rc := range recs {
		if i == vi || i == fi {
			continue
		}
		out = append(out, rc)
	}
	out = append(out, rec{seq: min(v.seq, f.seq), ch: merged})
	slices.SortFunc(out, func(a, b rec) int { return cmp.Compare(a.seq, b.seq) })
	return out
}
