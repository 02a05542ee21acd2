package libdiff

import (
	"fmt"

	"github.com/ydiff/yd/ir"
)

// Kind classifies one reported difference.
type Kind int

const (
	Added Kind = iota
	Removed
	Modified
)

var kindStrings = map[Kind]string{
	Added:    "added",
	Removed:  "removed",
	Modified: "modified",
}

var kindSymbols = map[Kind]string{
	Added:    "+",
	Removed:  "-",
	Modified: "~",
}

func (k Kind) String() string {
	return kindStrings[k]
}

// Symbol returns the single-character marker used in rendered output.
func (k Kind) Symbol() string {
	return kindSymbols[k]
}

// Change is one difference at one location. Added carries only New,
// Removed only Old, Modified both; Modified is also what a type
// mismatch resolves to, with the full subtrees on either side.
type Change struct {
	Kind Kind
	Path ir.Path
	Old  *ir.Node
	New  *ir.Node
}

// ChangeSet is the ordered list of changes from one comparison, in
// traversal order.
type ChangeSet struct {
	Changes []Change
}

func (cs *ChangeSet) Len() int {
	return len(cs.Changes)
}

func (cs *ChangeSet) Empty() bool {
	return len(cs.Changes) == 0
}

// Counts summarizes a change set. Every change increments exactly one
// counter.
type Counts struct {
	Added    int
	Removed  int
	Modified int
}

func (cs *ChangeSet) Counts() Counts {
	var c Counts
	for _, ch := range cs.Changes {
		switch ch.Kind {
		case Added:
			c.Added++
		case Removed:
			c.Removed++
		case Modified:
			c.Modified++
		}
	}
	return c
}

func (c Counts) Total() int {
	return c.Added + c.Removed + c.Modified
}

func (c Counts) String() string {
	return fmt.Sprintf("Added: %d, Removed: %d, Modified: %d", c.Added, c.Removed, c.Modified)
}
