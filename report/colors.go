package report

import (
	"strings"

	"github.com/fatih/color"

	"github.com/ydiff/yd/libdiff"
)

// palette colors rendered lines by change kind: green for additions,
// red for removals, yellow for modifications. A disabled palette
// passes lines through untouched.
type palette struct {
	on  bool
	add func(string) string
	del func(string) string
	mod func(string) string
}

func newPalette(on bool) *palette {
	if !on {
		return &palette{add: colorDefault, del: colorDefault, mod: colorDefault}
	}
	return &palette{
		on:  true,
		add: mkColorFn(color.FgGreen),
		del: mkColorFn(color.FgRed),
		mod: mkColorFn(color.FgYellow),
	}
}

// mkColorFn forces color on so output stays stable when stdout is not
// a terminal; the caller already decided whether to colorize.
func mkColorFn(attr color.Attribute) func(string) string {
	c := color.New(attr)
	c.EnableColor()
	fn := c.SprintfFunc()
	return func(v string) string {
		return fn(strings.Replace(v, "%", "%%", -1))
	}
}

func colorDefault(v string) string {
	return v
}

func (p *palette) paint(k libdiff.Kind, line string) string {
	switch k {
	case libdiff.Added:
		return p.add(line)
	case libdiff.Removed:
		return p.del(line)
	default:
		return p.mod(line)
	}
}

// modified colors a compact change line in parts: marker and label
// yellow, old value and arrow red, new value green.
func (p *palette) modified(line string) string {
	if !p.on {
		return line
	}
	oldPart, newPart, ok := strings.Cut(line, " → ")
	if !ok {
		return p.mod(line)
	}
	colon := labelColon(oldPart)
	if colon == -1 {
		return p.mod(oldPart) + p.del(" → ") + p.add(newPart)
	}
	return p.mod(oldPart[:colon+2]) + p.del(oldPart[colon+2:]+" → ") + p.add(newPart)
}

// labelColon locates the ": " separating label from value: the first
// one after "- " on collapsed lines, the rightmost otherwise.
func labelColon(s string) int {
	if dash := strings.Index(s, "- "); dash != -1 {
		if i := strings.Index(s[dash+2:], ": "); i != -1 {
			return dash + 2 + i
		}
		return -1
	}
	return strings.LastIndex(s, ": ")
}
