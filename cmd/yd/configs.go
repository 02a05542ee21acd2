package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/ydiff/yd/libdiff"
)

type MainConfig struct {
	Counts     bool `cli:"name=counts aliases=c desc='print change counts instead of the tree'"`
	Paths      bool `cli:"name=paths aliases=p,paths-only desc='print one <symbol> <path> line per change'"`
	MergePatch bool `cli:"name=merge-patch desc='print the difference as an RFC 7386 JSON merge patch'"`
	ExitCode   bool `cli:"name=exit-code aliases=e desc='exit 1 when the documents differ'"`
	Version    bool `cli:"name=version desc='print the version and exit'"`

	Color string
	Where *libdiff.Filter

	Main *cli.Command
}

func (cfg *MainConfig) colorOpt(_ *cli.Context, a string) (any, error) {
	switch a {
	case "always", "never", "auto":
		cfg.Color = a
		return a, nil
	}
	return nil, fmt.Errorf("%w: -color takes always, never or auto, got %q", cli.ErrUsage, a)
}

func (cfg *MainConfig) whereOpt(_ *cli.Context, a string) (any, error) {
	f, err := libdiff.CompileFilter(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Where = f
	return a, nil
}

// colorOn resolves the color mode against the output writer. In auto
// mode color turns on only when writing to a terminal.
func (cfg *MainConfig) colorOn(cc *cli.Context) bool {
	switch cfg.Color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
