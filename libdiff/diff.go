package libdiff

import "github.com/ydiff/yd/ir"

// Diff normalizes both documents and compares them recursively,
// returning every difference in traversal order. A type mismatch at a
// location yields a single Modified change carrying both subtrees;
// added and removed entries carry their whole subtree without further
// recursion.
func Diff(left, right *ir.Node) *ChangeSet {
	d := &differ{}
	d.compare(Normalize(left), Normalize(right), nil)
	return &ChangeSet{Changes: d.changes}
}

type differ struct {
	changes []Change
}

func (d *differ) add(kind Kind, path ir.Path, oldNode, newNode *ir.Node) {
	d.changes = append(d.changes, Change{Kind: kind, Path: path, Old: oldNode, New: newNode})
}

func (d *differ) compare(left, right *ir.Node, path ir.Path) {
	if left.Type != right.Type {
		d.add(Modified, path, left, right)
		return
	}
	switch left.Type {
	case ir.ObjectType:
		d.objects(left, right, path)
	case ir.ArrayType:
		d.arrays(left, right, path)
	default:
		if !ir.Equal(left, right) {
			d.add(Modified, path, left, right)
		}
	}
}

// objects emits additions in right-hand field order, then removals in
// left-hand field order, then recurses into common fields in
// left-hand order.
func (d *differ) objects(left, right *ir.Node, path ir.Path) {
	lm := ir.ToMap(left)
	rm := ir.ToMap(right)
	for i, f := range right.Fields {
		if _, ok := lm[f.String]; !ok {
			d.add(Added, path.Child(ir.Field(f.String)), nil, right.Values[i])
		}
	}
	for i, f := range left.Fields {
		if _, ok := rm[f.String]; !ok {
			d.add(Removed, path.Child(ir.Field(f.String)), left.Values[i], nil)
		}
	}
	for i, f := range left.Fields {
		if rv, ok := rm[f.String]; ok {
			d.compare(left.Values[i], rv, path.Child(ir.Field(f.String)))
		}
	}
}

func (d *differ) arrays(left, right *ir.Node, path ir.Path) {
	if sequenceQualifies(left.Values) && sequenceQualifies(right.Values) {
		d.keyed(left, right, path)
		return
	}
	n := min(len(left.Values), len(right.Values))
	for i := range n {
		d.compare(left.Values[i], right.Values[i], path.Child(ir.Index(i)))
	}
	for i := n; i < len(right.Values); i++ {
		d.add(Added, path.Child(ir.Index(i)), nil, right.Values[i])
	}
	for i := n; i < len(left.Values); i++ {
		d.add(Removed, path.Child(ir.Index(i)), left.Values[i], nil)
	}
}

// keyed diffs two qualifying sequences as maps under their derived
// keys. Both sides are already sorted by Normalize, so iterating
// elements visits keys in ascending order.
func (d *differ) keyed(left, right *ir.Node, path ir.Path) {
	lm, lkeys := keyedElements(left.Values)
	rm, rkeys := keyedElements(right.Values)
	for _, k := range rkeys {
		if _, ok := lm[k]; !ok {
			d.add(Added, path.Child(ir.Key(k)), nil, rm[k])
		}
	}
	for _, k := range lkeys {
		if _, ok := rm[k]; !ok {
			d.add(Removed, path.Child(ir.Key(k)), lm[k], nil)
		}
	}
	for _, k := range lkeys {
		if rv, ok := rm[k]; ok {
			d.compare(lm[k], rv, path.Child(ir.Key(k)))
		}
	}
}

// keyedElements builds the derived-key lookup for one side. When two
// elements share a key the later one wins; the key list keeps first
// occurrence order and no duplicates.
func keyedElements(elems []*ir.Node) (map[string]*ir.Node, []string) {
	m := make(map[string]*ir.Node, len(elems))
	keys := make([]string, 0, len(elems))
	for _, e := range elems {
		k := sortKey(e)
		if _, ok := m[k]; !ok {
			keys = append(keys, k)
		}
		m[k] = e
	}
	return m, keys
}
