package ir

import (
	"strconv"
	"strings"
)

type SegmentKind int

const (
	// FieldSegment addresses a mapping value by field name.
	FieldSegment SegmentKind = iota
	// IndexSegment addresses a sequence element by position.
	IndexSegment
	// KeySegment addresses an element of a keyed sequence by its
	// derived key.
	KeySegment
)

// Segment is one step of a Path.  The three kinds stay distinguishable
// through the whole pipeline; only String collapses them to text.
type Segment struct {
	Kind  SegmentKind
	Field string
	Index int
	Key   string
}

func Field(name string) Segment {
	return Segment{Kind: FieldSegment, Field: name}
}

func Index(i int) Segment {
	return Segment{Kind: IndexSegment, Index: i}
}

func Key(k string) Segment {
	return Segment{Kind: KeySegment, Key: k}
}

// String renders the segment in kinded path syntax: field names bare
// (quoted when they contain separator characters), indexes and derived
// keys bracketed.
func (s Segment) String() string {
	switch s.Kind {
	case IndexSegment:
		return "[" + strconv.Itoa(s.Index) + "]"
	case KeySegment:
		return "[" + s.Key + "]"
	default:
		if fieldNeedsQuote(s.Field) {
			return strconv.Quote(s.Field)
		}
		return s.Field
	}
}

func fieldNeedsQuote(f string) bool {
	if f == "" {
		return true
	}
	return strings.ContainsAny(f, " .[]{}:\"'#\t\n")
}

// Path locates a node within at least one of two compared documents.
type Path []Segment

// Child returns a new path extended by seg.  The receiver's backing
// array is never shared with the result, so sibling extensions cannot
// clobber each other.
func (p Path) Child(seg Segment) Path {
	res := make(Path, len(p)+1)
	copy(res, p)
	res[len(p)] = seg
	return res
}

// String renders the path as "a.b[0]" with "[key]" for derived keys.
// The result is for display; it is never parsed back.
func (p Path) String() string {
	var b strings.Builder
	for _, seg := range p {
		switch seg.Kind {
		case FieldSegment:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(seg.String())
		default:
			b.WriteString(seg.String())
		}
	}
	return b.String()
}
