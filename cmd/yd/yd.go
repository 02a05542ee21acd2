package main

import (
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/scott-cotton/cli"

	"github.com/ydiff/yd"
	"github.com/ydiff/yd/ir"
	"github.com/ydiff/yd/parse"
	"github.com/ydiff/yd/report"
)

const version = "0.1.0"

func ydMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Version {
		fmt.Fprintf(cc.Out, "yd %s\n", version)
		return nil
	}
	if count(cfg.Counts, cfg.Paths, cfg.MergePatch) > 1 {
		return fmt.Errorf("%w: must specify at most one of -counts -paths -merge-patch", cli.ErrUsage)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: yd requires 2 files, got %d", cli.ErrUsage, len(args))
	}
	left, err := docFile(cc, args[0])
	if err != nil {
		return err
	}
	right, err := docFile(cc, args[1])
	if err != nil {
		return err
	}
	log.Debugf("loaded %s and %s", args[0], args[1])

	cs := yd.Compare(left, right)
	log.Debugf("found %d changes", cs.Len())
	if cfg.Where != nil {
		cs, err = cfg.Where.Apply(cs)
		if err != nil {
			return err
		}
		log.Debugf("%d changes after -where", cs.Len())
	}

	switch {
	case cfg.MergePatch:
		patch, err := yd.MergePatch(left, right)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cc.Out, "%s\n", patch); err != nil {
			return err
		}
	case cfg.Counts:
		fmt.Fprintln(cc.Out, cs.Counts())
	case cfg.Paths:
		for _, line := range report.Paths(cs) {
			fmt.Fprintln(cc.Out, line)
		}
	default:
		for _, line := range report.Tree(cs, cfg.colorOn(cc)) {
			fmt.Fprintln(cc.Out, line)
		}
	}

	if cfg.ExitCode && !cs.Empty() {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func docFile(cc *cli.Context, path string) (*ir.Node, error) {
	if path != "-" {
		return parse.File(path)
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	node, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error parsing stdin: %w", err)
	}
	return node, nil
}
