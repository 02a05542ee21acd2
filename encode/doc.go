// Package encode renders IR nodes as display text for diff reports.
//
// Two forms are provided: Block produces YAML-style block lines (one
// physical line per entry, 2-space nesting, literal blocks for
// multi-line strings) and Flow produces a single-line form
// ("{k: v}", "[1, 2]").  MarshalJSON bridges nodes to JSON for
// machine-facing output such as merge patches.
//
// The encoders are display-only: their output is never parsed back.
// Unknown node types surface as errors so that callers can substitute
// a placeholder instead of aborting a whole report.
//
// # Related Packages
//
//   - github.com/ydiff/yd/ir - IR representation
//   - github.com/ydiff/yd/report - report rendering built on these forms
package encode
