package libdiff

import (
	"testing"

	"github.com/ydiff/yd/ir"
)

// wantChange describes one expected change; old and new are YAML
// sources, empty meaning absent.
type wantChange struct {
	kind     Kind
	path     string
	old, new string
}

func assertChanges(t *testing.T, cs *ChangeSet, want []wantChange) {
	t.Helper()
	if cs.Len() != len(want) {
		t.Fatalf("got %d changes, want %d: %+v", cs.Len(), len(want), cs.Changes)
	}
	for i, w := range want {
		ch := cs.Changes[i]
		if ch.Kind != w.kind {
			t.Errorf("change %d kind = %v, want %v", i, ch.Kind, w.kind)
		}
		if got := ch.Path.String(); got != w.path {
			t.Errorf("change %d path = %q, want %q", i, got, w.path)
		}
		checkSide(t, i, "old", ch.Old, w.old)
		checkSide(t, i, "new", ch.New, w.new)
	}
}

func checkSide(t *testing.T, i int, side string, got *ir.Node, want string) {
	t.Helper()
	if want == "" {
		if got != nil {
			t.Errorf("change %d %s = %+v, want absent", i, side, got)
		}
		return
	}
	wantNode := mustNode(t, want)
	if got == nil || !ir.Equal(got, wantNode) {
		t.Errorf("change %d %s = %+v, want %+v", i, side, got, wantNode)
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		want  []wantChange
	}{
		{
			name:  "added field",
			left:  "a: 1\n",
			right: "a: 1\nb: 2\n",
			want:  []wantChange{{Added, "b", "", "2"}},
		},
		{
			name:  "removed field",
			left:  "a: 1\nb: 2\n",
			right: "a: 1\n",
			want:  []wantChange{{Removed, "b", "2", ""}},
		},
		{
			name:  "modified scalar",
			left:  "replicas: 1\n",
			right: "replicas: 2\n",
			want:  []wantChange{{Modified, "replicas", "1", "2"}},
		},
		{
			name:  "keyed reorder is no change",
			left:  "list:\n  - name: x\n    v: 1\n  - name: y\n    v: 2\n",
			right: "list:\n  - name: y\n    v: 2\n  - name: x\n    v: 1\n",
			want:  nil,
		},
		{
			name:  "trailing element removed",
			left:  "x: [1, 2, 3]\n",
			right: "x: [1, 2]\n",
			want:  []wantChange{{Removed, "x[2]", "3", ""}},
		},
		{
			name:  "root type mismatch",
			left:  "5",
			right: "{}",
			want:  []wantChange{{Modified, "", "5", "{}"}},
		},
		{
			name:  "value becomes reference",
			left:  "env:\n  - name: A\n    value: \"1\"\n",
			right: "env:\n  - name: A\n    valueFrom:\n      secretKeyRef: s\n",
			want: []wantChange{
				{Added, "env[A].valueFrom", "", "secretKeyRef: s\n"},
				{Removed, "env[A].value", "\"1\"", ""},
			},
		},
		{
			name:  "keyed element added and removed",
			left:  "env:\n  - name: A\n    value: \"1\"\n",
			right: "env:\n  - name: B\n    value: \"2\"\n",
			want: []wantChange{
				{Added, "env[B]", "", "name: B\nvalue: \"2\"\n"},
				{Removed, "env[A]", "name: A\nvalue: \"1\"\n", ""},
			},
		},
		{
			name:  "added subtree carried whole",
			left:  "{}",
			right: "spec:\n  a: 1\n  b: [1, 2]\n",
			want:  []wantChange{{Added, "spec", "", "a: 1\nb: [1, 2]\n"}},
		},
		{
			name:  "string and number mismatch",
			left:  "a: 1\n",
			right: "a: \"1\"\n",
			want:  []wantChange{{Modified, "a", "1", "\"1\""}},
		},
		{
			name:  "bool and number mismatch",
			left:  "a: true\n",
			right: "a: 1\n",
			want:  []wantChange{{Modified, "a", "true", "1"}},
		},
		{
			name:  "int and float are equal numbers",
			left:  "a: 1\n",
			right: "a: 1.0\n",
			want:  nil,
		},
		{
			name:  "null versus absent",
			left:  "a: null\n",
			right: "{}",
			want:  []wantChange{{Removed, "a", "null", ""}},
		},
		{
			name:  "positional extras added",
			left:  "x: [1]\n",
			right: "x: [1, 2, 3]\n",
			want: []wantChange{
				{Added, "x[1]", "", "2"},
				{Added, "x[2]", "", "3"},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cs := Diff(mustNode(t, tc.left), mustNode(t, tc.right))
			assertChanges(t, cs, tc.want)
		})
	}
}

func TestDiffEmissionOrder(t *testing.T) {
	// additions in right-hand order, then removals in left-hand order,
	// then recursion in left-hand order
	left := mustNode(t, "gone2: 1\nkeep: 1\ngone1: 1\n")
	right := mustNode(t, "new2: 1\nkeep: 2\nnew1: 1\n")
	cs := Diff(left, right)
	assertChanges(t, cs, []wantChange{
		{Added, "new2", "", "1"},
		{Added, "new1", "", "1"},
		{Removed, "gone2", "1", ""},
		{Removed, "gone1", "1", ""},
		{Modified, "keep", "1", "2"},
	})
}

func TestDiffIdempotence(t *testing.T) {
	docs := []string{
		"5",
		"null",
		"a: 1\nb:\n  c: [1, 2, 3]\n",
		"list:\n  - name: y\n  - name: x\n",
		"msg: |\n  line1\n  line2\n",
		"{}",
		"[]",
	}
	for _, src := range docs {
		node := mustNode(t, src)
		if cs := Diff(node, node); !cs.Empty() {
			t.Errorf("Diff(X, X) for %q = %+v, want empty", src, cs.Changes)
		}
	}
}

func TestDiffSymmetry(t *testing.T) {
	left := mustNode(t, `
a: 1
b: two
list:
  - name: x
    v: 1
nums: [1, 2, 3]
`)
	right := mustNode(t, `
a: 2
c: three
list:
  - name: x
    v: 9
  - name: z
    v: 0
nums: [1, 2]
`)
	fwd := Diff(left, right)
	rev := Diff(right, left)
	if fwd.Len() != rev.Len() {
		t.Fatalf("asymmetric sizes: %d vs %d", fwd.Len(), rev.Len())
	}
	revByPath := make(map[string]Change, rev.Len())
	for _, ch := range rev.Changes {
		revByPath[ch.Path.String()] = ch
	}
	for _, ch := range fwd.Changes {
		mirror, ok := revByPath[ch.Path.String()]
		if !ok {
			t.Errorf("no mirror for %s", ch.Path)
			continue
		}
		switch ch.Kind {
		case Added:
			if mirror.Kind != Removed || !ir.Equal(ch.New, mirror.Old) {
				t.Errorf("%s: Added not mirrored by Removed", ch.Path)
			}
		case Removed:
			if mirror.Kind != Added || !ir.Equal(ch.Old, mirror.New) {
				t.Errorf("%s: Removed not mirrored by Added", ch.Path)
			}
		case Modified:
			if mirror.Kind != Modified || !ir.Equal(ch.Old, mirror.New) || !ir.Equal(ch.New, mirror.Old) {
				t.Errorf("%s: Modified not mirrored with swapped sides", ch.Path)
			}
		}
	}
}

func TestDiffReorderInvariance(t *testing.T) {
	base := "svcs:\n  - name: a\n    p: 1\n  - name: b\n    p: 2\n  - name: c\n    p: 3\n"
	perms := []string{
		"svcs:\n  - name: b\n    p: 2\n  - name: c\n    p: 3\n  - name: a\n    p: 1\n",
		"svcs:\n  - name: c\n    p: 3\n  - name: a\n    p: 1\n  - name: b\n    p: 2\n",
	}
	for _, perm := range perms {
		if cs := Diff(mustNode(t, base), mustNode(t, perm)); !cs.Empty() {
			t.Errorf("permutation registered changes: %+v", cs.Changes)
		}
	}
}

func TestDiffPositionalSensitivity(t *testing.T) {
	cs := Diff(mustNode(t, "[1, 2, 3]"), mustNode(t, "[3, 1, 2]"))
	assertChanges(t, cs, []wantChange{
		{Modified, "[0]", "1", "3"},
		{Modified, "[1]", "2", "1"},
		{Modified, "[2]", "3", "2"},
	})
}

func TestDiffKeyCollision(t *testing.T) {
	// the later same-key element wins on each side
	left := mustNode(t, "- name: A\n  v: 1\n- name: A\n  v: 2\n")

	if cs := Diff(left, mustNode(t, "- name: A\n  v: 2\n")); !cs.Empty() {
		t.Errorf("collision winner should match: %+v", cs.Changes)
	}
	cs := Diff(left, mustNode(t, "- name: A\n  v: 1\n"))
	assertChanges(t, cs, []wantChange{{Modified, "[A].v", "2", "1"}})
}

func TestDiffOneSideQualifies(t *testing.T) {
	// keyed mode needs both sides to qualify; otherwise positional
	left := mustNode(t, "- name: a\n- name: b\n")
	right := mustNode(t, "- 1\n- 2\n")
	cs := Diff(left, right)
	if cs.Len() != 2 {
		t.Fatalf("got %+v", cs.Changes)
	}
	for _, ch := range cs.Changes {
		if ch.Kind != Modified {
			t.Errorf("want positional Modified records, got %v", ch.Kind)
		}
	}
}

func TestCountsConservation(t *testing.T) {
	cs := Diff(
		mustNode(t, "a: 1\nb: 2\nc: 3\n"),
		mustNode(t, "a: 2\nd: 4\n"),
	)
	c := cs.Counts()
	if c.Total() != cs.Len() {
		t.Errorf("counts %+v do not sum to %d", c, cs.Len())
	}
	if c.Added != 1 || c.Removed != 2 || c.Modified != 1 {
		t.Errorf("counts = %+v", c)
	}
	if got := c.String(); got != "Added: 1, Removed: 2, Modified: 1" {
		t.Errorf("counts line = %q", got)
	}
}

func TestCountsScenario(t *testing.T) {
	cs := Diff(mustNode(t, "a: 1\n"), mustNode(t, "a: 1\nb: 2\n"))
	if c := cs.Counts(); c != (Counts{Added: 1}) {
		t.Errorf("counts = %+v, want one addition", c)
	}
}
