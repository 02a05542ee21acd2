package libdiff

import (
	"testing"

	"github.com/ydiff/yd/ir"
	"github.com/ydiff/yd/parse"
)

func mustNode(t *testing.T, src string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return n
}

func TestNormalizeSortsByName(t *testing.T) {
	node := mustNode(t, `
- name: web
  port: 80
- name: api
  port: 81
- name: cache
  port: 82
`)
	got := Normalize(node)
	want := []string{"api", "cache", "web"}
	for i, name := range want {
		if !ir.Equal(ir.Get(got.Values[i], "name"), ir.FromString(name)) {
			t.Errorf("element %d name = %+v, want %s", i, ir.Get(got.Values[i], "name"), name)
		}
	}
	// inputs are never mutated
	if !ir.Equal(ir.Get(node.Values[0], "name"), ir.FromString("web")) {
		t.Error("Normalize mutated its input")
	}
}

func TestNormalizeUniformKeySet(t *testing.T) {
	node := mustNode(t, `
- id: 2
  v: b
- id: 1
  v: a
`)
	got := Normalize(node)
	if !ir.Equal(ir.Get(got.Values[0], "id"), ir.FromInt(1)) {
		t.Errorf("first element = %+v, want id 1", got.Values[0])
	}
}

func TestNormalizeStableTies(t *testing.T) {
	mk := func(name, v string) *ir.Node {
		return ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("name"), Val: ir.FromString(name)},
			{Key: ir.FromString("v"), Val: ir.FromString(v)},
		})
	}
	node := ir.FromSlice([]*ir.Node{mk("a", "first"), mk("a", "second")})
	got := Normalize(node)
	if !ir.Equal(ir.Get(got.Values[0], "v"), ir.FromString("first")) {
		t.Errorf("tie order changed: first element v = %+v", ir.Get(got.Values[0], "v"))
	}
}

func TestNormalizeLeavesNonQualifying(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"scalars", "- 3\n- 1\n- 2\n"},
		{"differing key sets", "- id: 2\n- key: 1\n"},
		{"first element empty", "- {}\n- {a: 1}\n"},
		{"first element not an object", "- 3\n- name: a\n"},
		{"empty", "[]"},
	}
	for _, tc := range tests {
		node := mustNode(t, tc.src)
		got := Normalize(node)
		if !ir.Equal(got, node) {
			t.Errorf("%s: Normalize reordered a non-qualifying sequence: %+v", tc.name, got)
		}
	}
	// the name rule only inspects the first element, so a mixed list
	// still qualifies and scalar tails sort by their own text
	mixed := Normalize(mustNode(t, "- name: b\n- 3\n"))
	if !ir.Equal(mixed.Values[0], ir.FromInt(3)) {
		t.Fatalf("mixed = %+v, want scalar first", mixed)
	}
}

func TestNormalizeKeepsMappingOrder(t *testing.T) {
	node := mustNode(t, "z: 1\na: 2\n")
	got := Normalize(node)
	if got.Fields[0].String != "z" || got.Fields[1].String != "a" {
		t.Errorf("mapping order changed: %q, %q", got.Fields[0].String, got.Fields[1].String)
	}
}

func TestNormalizeScalarsShared(t *testing.T) {
	n := ir.FromInt(5)
	if got := Normalize(n); got != n {
		t.Error("scalar normalization should return the node itself")
	}
	if got := Normalize(nil); got.Type != ir.NullType {
		t.Errorf("Normalize(nil) = %+v, want null", got)
	}
}

func TestNormalizeNested(t *testing.T) {
	node := mustNode(t, `
spec:
  env:
    - name: B
      value: "2"
    - name: A
      value: "1"
`)
	got := Normalize(node)
	env := ir.Get(ir.Get(got, "spec"), "env")
	if !ir.Equal(ir.Get(env.Values[0], "name"), ir.FromString("A")) {
		t.Errorf("nested sequence not normalized: %+v", env.Values[0])
	}
}

func TestSortKey(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"name: web\nport: 80\n", "web"},
		{"id: 7\nv: a\n", "7"},
		{"flag: true\n", "true"},
		{"k: null\n", "null"},
		{"k: 2.5\n", "2.5"},
		{"name: 10\n", "10"},
	}
	for _, tc := range tests {
		if got := sortKey(mustNode(t, tc.src)); got != tc.want {
			t.Errorf("sortKey(%q) = %q, want %q", tc.src, got, tc.want)
		}
	}
	if got := sortKey(ir.FromString("plain")); got != "plain" {
		t.Errorf("sortKey(plain) = %q", got)
	}
}
