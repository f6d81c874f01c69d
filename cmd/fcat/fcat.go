package main

import (
	"errors"
	"fmt"

	"github.com/flatcat-go/flatcat"
	"github.com/flatcat-go/flatcat/encode"

	"github.com/scott-cotton/cli"
)

func fcatMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: -color and -no-color are exclusive", cli.ErrUsage)
	}
	if cfg.Diff {
		return diff(cfg, cc, args)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := cfg.options(cc.Out)
	c := flatcat.New(encode.NewRenderer(cc.Out, encode.WithOptions(opts.Options)), opts)
	failed := 0
	for _, arg := range args {
		err := c.Cat(cfg.input(cc, arg))
		if err == nil {
			continue
		}
		if !cfg.KeepGoing || isWriteErr(err) {
			return err
		}
		theLog.Error("skipping file", "file", arg, "error", err)
		failed++
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diff(cfg *MainConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: -diff requires 2 files, got %v", cli.ErrUsage, args)
	}
	differs, err := flatcat.Diff(cfg.input(cc, args[0]), cfg.input(cc, args[1]), cfg.options(cc.Out), cc.Out)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// isWriteErr reports whether err is a failure of the output, after which
// no further file can be printed.
func isWriteErr(err error) bool {
	var ioErr *flatcat.IOError
	return errors.As(err, &ioErr) && ioErr.Op == "write"
}
