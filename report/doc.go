// Package report renders change sets for people: a grouped tree view,
// a paths-only view, and the summary counts line.
//
// The tree view groups changes by their first path segment and walks
// the groups depth first, one header line per branch and one line (or
// block) per change. Elements of keyed sequences collapse to compact
// "- key: value" lines when every change sits directly on the element,
// and a value/valueFrom switch within one element merges into a single
// modified line before display.
package report
