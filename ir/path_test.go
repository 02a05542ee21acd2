package ir

import "testing"

func TestPathString(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want string
	}{
		{"empty", Path{}, ""},
		{"single field", Path{Field("spec")}, "spec"},
		{"nested fields", Path{Field("spec"), Field("replicas")}, "spec.replicas"},
		{"index", Path{Field("x"), Index(2)}, "x[2]"},
		{"index then field", Path{Field("x"), Index(0), Field("v")}, "x[0].v"},
		{"derived key", Path{Field("env"), Key("A"), Field("value")}, "env[A].value"},
		{"root index", Path{Index(3)}, "[3]"},
		{"quoted field", Path{Field("app.kubernetes.io/name")}, `"app.kubernetes.io/name"`},
		{"field with space", Path{Field("a"), Field("b c")}, `a."b c"`},
		{"empty field", Path{Field("")}, `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathChildNoAliasing(t *testing.T) {
	base := make(Path, 0, 8)
	base = append(base, Field("spec"))
	a := base.Child(Field("left"))
	b := base.Child(Field("right"))
	if a.String() != "spec.left" {
		t.Errorf("a = %q", a.String())
	}
	if b.String() != "spec.right" {
		t.Errorf("b = %q, sibling extension clobbered", b.String())
	}
}

func TestSegmentKinds(t *testing.T) {
	if Field("2").String() != "2" {
		t.Errorf("field segment rendered %q", Field("2").String())
	}
	if Index(2).String() != "[2]" {
		t.Errorf("index segment rendered %q", Index(2).String())
	}
	if Key("2").String() != "[2]" {
		t.Errorf("key segment rendered %q", Key("2").String())
	}
	// same display form, distinguishable segments
	if Index(2) == (Segment{Kind: KeySegment, Key: "2"}) {
		t.Error("index and key segments compare equal")
	}
}
