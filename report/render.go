package report

import (
	"maps"
	"slices"
	"strings"

	"github.com/ydiff/yd/debug"
	"github.com/ydiff/yd/encode"
	"github.com/ydiff/yd/ir"
	"github.com/ydiff/yd/libdiff"
)

// Tree renders a change set as a hierarchical report. Root-level
// changes come first, headerless; groups and branches follow in
// ascending label order.
func Tree(cs *libdiff.ChangeSet, color bool) []string {
	tr := group(cs)
	if debug.Render() {
		debug.Logf("render: %d changes in %d groups\n", cs.Len(), len(tr.groups))
	}
	r := &renderer{colors: newPalette(color)}
	var lines []string
	for _, rc := range tr.root {
		r.record(&lines, rc.ch, 0)
	}
	for _, gkey := range slices.Sorted(maps.Keys(tr.groups)) {
		g := tr.groups[gkey]
		switch {
		case g.seg.Kind == ir.KeySegment && g.maxRecordDepth() <= 1:
			for _, rc := range pairComplements(g.records()) {
				r.collapsed(&lines, rc.ch, 0)
			}
		default:
			lines = append(lines, " "+gkey+":")
			r.walk(&lines, g, 1)
		}
	}
	return lines
}

// Paths renders one "<symbol> <path>" line per change, in change-set
// order.
func Paths(cs *libdiff.ChangeSet) []string {
	lines := make([]string, 0, cs.Len())
	for _, ch := range cs.Changes {
		lines = append(lines, ch.Kind.Symbol()+" "+ch.Path.String())
	}
	return lines
}

type renderer struct {
	colors *palette
}

// walk renders the records at n, then its children in label order.
// A keyed element whose changes all sit within one level collapses to
// compact lines; other branches emit a header and recurse.
func (r *renderer) walk(lines *[]string, n *node, depth int) {
	for _, rc := range n.recs {
		r.record(lines, rc.ch, depth)
	}
	for _, lb := range slices.Sorted(maps.Keys(n.children)) {
		c := n.children[lb]
		switch {
		case c.seg.Kind == ir.KeySegment && c.maxRecordDepth() <= 1:
			for _, rc := range pairComplements(c.records()) {
				r.collapsed(lines, rc.ch, depth)
			}
		case len(c.children) == 0:
			for _, rc := range c.recs {
				r.record(lines, rc.ch, depth)
			}
		default:
			*lines = append(*lines, " "+strings.Repeat("  ", depth)+lb+":")
			r.walk(lines, c, depth+1)
		}
	}
}

// record renders one change at its location. The label is the last
// path segment; root records render with an empty label.
func (r *renderer) record(lines *[]string, ch libdiff.Change, depth int) {
	lb := ""
	if len(ch.Path) > 0 {
		lb = label(ch.Path[len(ch.Path)-1])
	}
	if needsBlock(ch) {
		r.block(lines, ch, lb, depth)
		return
	}
	ind := strings.Repeat("  ", depth)
	switch ch.Kind {
	case libdiff.Modified:
		if isStructuredText(ch.Old) && isStructuredText(ch.New) {
			r.pairView(lines, ch, lb, depth)
			return
		}
		oldTxt, err := inlineText(ch.Old)
		if err != nil {
			r.placeholder(lines, ch.Kind, lb, depth, err)
			return
		}
		newTxt, err := inlineText(ch.New)
		if err != nil {
			r.placeholder(lines, ch.Kind, lb, depth, err)
			return
		}
		*lines = append(*lines, r.colors.modified("~"+ind+lb+": "+oldTxt+" → "+newTxt))
	default:
		v := ch.New
		if ch.Kind == libdiff.Removed {
			v = ch.Old
		}
		sym := ch.Kind.Symbol()
		if isMultiline(v) {
			*lines = append(*lines, r.colors.paint(ch.Kind, sym+ind+lb+": |"))
			for _, ln := range splitLines(v.String) {
				*lines = append(*lines, r.colors.paint(ch.Kind, sym+ind+"  "+ln))
			}
			return
		}
		txt, err := inlineText(v)
		if err != nil {
			r.placeholder(lines, ch.Kind, lb, depth, err)
			return
		}
		*lines = append(*lines, r.colors.paint(ch.Kind, sym+ind+lb+": "+txt))
	}
}

// block renders a change holding structured values, one marker per
// physical line. Modified shows the old subtree, an arrow line, then
// the new subtree, with the marker on the first line only.
func (r *renderer) block(lines *[]string, ch libdiff.Change, lb string, depth int) {
	ind := strings.Repeat("  ", depth)
	switch ch.Kind {
	case libdiff.Modified:
		oldBody, err := encode.Block(ch.Old)
		if err != nil {
			r.placeholder(lines, ch.Kind, lb, depth, err)
			return
		}
		newBody, err := encode.Block(ch.New)
		if err != nil {
			r.placeholder(lines, ch.Kind, lb, depth, err)
			return
		}
		*lines = append(*lines, r.colors.mod("~"+ind+lb+":"))
		for _, ln := range oldBody {
			*lines = append(*lines, r.colors.del(" "+ind+"  "+ln))
		}
		*lines = append(*lines, " "+ind+"→")
		for _, ln := range newBody {
			*lines = append(*lines, r.colors.add(" "+ind+"  "+ln))
		}
	default:
		v := ch.New
		if ch.Kind == libdiff.Removed {
			v = ch.Old
		}
		wrapped := ir.FromKeyVals([]ir.KeyVal{{Key: ir.FromString(lb), Val: v}})
		body, err := encode.Block(wrapped)
		if err != nil {
			r.placeholder(lines, ch.Kind, lb, depth, err)
			return
		}
		sym := ch.Kind.Symbol()
		for _, ln := range body {
			*lines = append(*lines, r.colors.paint(ch.Kind, sym+ind+ln))
		}
	}
}

// pairView renders a modified pair of structured text values as two
// literal blocks joined by an arrow. Lines differing between the
// sides tint like removals and additions.
func (r *renderer) pairView(lines *[]string, ch libdiff.Change, lb string, depth int) {
	oldText := ch.Old.String
	newText := ch.New.String
	ind := strings.Repeat("  ", depth)
	oldChanged, newChanged := lineChanges(oldText, newText)
	*lines = append(*lines, r.colors.mod("~"+ind+lb+": |"))
	for i, ln := range splitLines(oldText) {
		out := " " + ind + "  " + ln
		if i < len(oldChanged) && oldChanged[i] {
			out = r.colors.del(out)
		}
		*lines = append(*lines, out)
	}
	*lines = append(*lines, " "+ind+"→")
	for i, ln := range splitLines(newText) {
		out := " " + ind + "  " + ln
		if i < len(newChanged) && newChanged[i] {
			out = r.colors.add(out)
		}
		*lines = append(*lines, out)
	}
}

// collapsed renders the changes of one keyed element as a single
// "- key: value" line.
func (r *renderer) collapsed(lines *[]string, ch libdiff.Change, depth int) {
	ind := strings.Repeat("  ", depth)
	lb := "- " + collapsedLabel(ch.Path)
	switch ch.Kind {
	case libdiff.Modified:
		oldTxt, err := collapsedValue(ch.Old)
		if err != nil {
			r.placeholder(lines, ch.Kind, lb, depth, err)
			return
		}
		newTxt, err := collapsedValue(ch.New)
		if err != nil {
			r.placeholder(lines, ch.Kind, lb, depth, err)
			return
		}
		*lines = append(*lines, r.colors.modified("~"+ind+lb+": "+oldTxt+" → "+newTxt))
	default:
		v := ch.New
		if ch.Kind == libdiff.Removed {
			v = ch.Old
		}
		txt, err := collapsedValue(v)
		if err != nil {
			r.placeholder(lines, ch.Kind, lb, depth, err)
			return
		}
		*lines = append(*lines, r.colors.paint(ch.Kind, ch.Kind.Symbol()+ind+lb+": "+txt))
	}
}

// collapsedLabel names a collapsed change: the element key, with the
// final segment appended when the change sits below the element on
// something other than the value/valueFrom pair. Field segments join
// with a dot, bracketed segments attach directly, as in Path.String.
func collapsedLabel(p ir.Path) string {
	last := p[len(p)-1]
	if last.Kind == ir.KeySegment {
		return last.Key
	}
	key := p[len(p)-2].Key
	if last.Kind != ir.FieldSegment {
		return key + label(last)
	}
	if last.Field == valueField || last.Field == valueFromField {
		return key
	}
	return key + "." + label(last)
}

// collapsedValue unwraps a mapping's value field for compact display.
func collapsedValue(v *ir.Node) (string, error) {
	if v != nil && v.Type == ir.ObjectType {
		if inner := ir.Get(v, valueField); inner != nil {
			v = inner
		}
	}
	return inlineText(v)
}

// inlineText renders a value for compact display: plain strings
// verbatim, everything else in flow form.
func inlineText(v *ir.Node) (string, error) {
	if v == nil {
		return "null", nil
	}
	if v.Type == ir.StringType && !strings.Contains(v.String, "\n") {
		return v.String, nil
	}
	return encode.Flow(v)
}

func isMultiline(v *ir.Node) bool {
	return v != nil && v.Type == ir.StringType && strings.Contains(v.String, "\n")
}

// isStructuredText reports whether a value is multi-line text that
// reads like a nested document (holds a field separator), which earns
// the two-block line-diff view instead of the inline arrow.
func isStructuredText(v *ir.Node) bool {
	return isMultiline(v) && strings.Contains(v.String, ":")
}

// isComplex reports whether a value routes to block form: non-empty
// mappings, and sequences holding at least one container.
func isComplex(v *ir.Node) bool {
	if v == nil {
		return false
	}
	switch v.Type {
	case ir.ObjectType:
		return len(v.Fields) > 0
	case ir.ArrayType:
		for _, e := range v.Values {
			if !e.Type.IsLeaf() {
				return true
			}
		}
	}
	return false
}

func needsBlock(ch libdiff.Change) bool {
	switch ch.Kind {
	case libdiff.Added:
		return isComplex(ch.New)
	case libdiff.Removed:
		return isComplex(ch.Old)
	default:
		return isComplex(ch.Old) || isComplex(ch.New)
	}
}

// placeholder stands in for a record whose value failed to render;
// the rest of the report continues.
func (r *renderer) placeholder(lines *[]string, kind libdiff.Kind, lb string, depth int, err error) {
	ind := strings.Repeat("  ", depth)
	*lines = append(*lines, kind.Symbol()+ind+lb+": <render error: "+err.Error()+">")
}
