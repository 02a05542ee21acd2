package report

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// lineChanges marks, per physical line of old and new, whether that
// line differs between the two texts. Lines are interned to runes so
// the diff runs line-granular.
func lineChanges(oldText, newText string) (oldChanged, newChanged []bool) {
	lineMap := map[string]rune{}
	fromRunes := mapLinesTo(lineMap, splitLines(oldText))
	toRunes := mapLinesTo(lineMap, splitLines(newText))
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				oldChanged = append(oldChanged, true)
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				newChanged = append(newChanged, true)
			}
		default:
			for range diff.Text {
				oldChanged = append(oldChanged, false)
				newChanged = append(newChanged, false)
			}
		}
	}
	return oldChanged, newChanged
}

func mapLinesTo(m map[string]rune, lines []string) []rune {
	rs := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := m[ln]
		if !ok {
			r = rune(len(m))
			m[ln] = r
		}
		rs[i] = r
	}
	return rs
}

// splitLines breaks a string for line display, dropping one trailing
// newline.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
