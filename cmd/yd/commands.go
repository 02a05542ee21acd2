package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Color: "auto"}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "color",
			Description: "when to color output: always, never or auto (default auto)",
			Type:        cli.NamedFuncOpt(cfg.colorOpt, "(always|never|auto)"),
		},
		&cli.Opt{
			Name:        "where",
			Description: "keep only changes matching an expression over kind, path, depth, old and new",
			Type:        cli.NamedFuncOpt(cfg.whereOpt, "(expr)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "yd").
		WithSynopsis("yd [opts] <left.yaml> <right.yaml>").
		WithDescription(description).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ydMain(cfg, cc, args)
		})
}

const description = `yd compares two YAML documents and prints their
differences as a tree.

Sequences whose elements look like named records, either through a
name field or a field set shared by every element, are matched by key
rather than by position, so reordering them is not a difference.
Keyed entries whose content moves between value and valueFrom fold
into a single modified line.

Pass "-" for either file to read that side from stdin.

Examples:
  yd old.yaml new.yaml
  yd -counts -exit-code old.yaml new.yaml
  yd -color never -paths old.yaml new.yaml
  yd -where 'kind == "removed"' old.yaml new.yaml
  yd -merge-patch old.yaml new.yaml`
