package libdiff

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ydiff/yd/ir"
)

// Filter selects changes with a compiled boolean expression. Each
// change is exposed to the expression as:
//
//	kind:  "added", "removed" or "modified"
//	path:  the rendered path, e.g. "spec.env[A]"
//	depth: number of path segments
//	old:   the old value as plain data, or nil
//	new:   the new value as plain data, or nil
type Filter struct {
	src  string
	prog *vm.Program
}

func CompileFilter(src string) (*Filter, error) {
	prog, err := expr.Compile(src, expr.Env(filterEnv(Change{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", src, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

func filterEnv(ch Change) map[string]any {
	return map[string]any{
		"kind":  ch.Kind.String(),
		"path":  ch.Path.String(),
		"depth": len(ch.Path),
		"old":   ir.ToAny(ch.Old),
		"new":   ir.ToAny(ch.New),
	}
}

// Apply returns the subset of cs for which the filter expression is
// true, preserving order.
func (f *Filter) Apply(cs *ChangeSet) (*ChangeSet, error) {
	res := &ChangeSet{}
	for _, ch := range cs.Changes {
		out, err := expr.Run(f.prog, filterEnv(ch))
		if err != nil {
			return nil, fmt.Errorf("filter %q at %s: %w", f.src, ch.Path, err)
		}
		if out.(bool) {
			res.Changes = append(res.Changes, ch)
		}
	}
	return res, nil
}
