package main

import (
	"fmt"
	"io"
	"os"

	"github.com/flatcat-go/flatcat"
	"github.com/flatcat-go/flatcat/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='always color output'"`
	NoColor bool `cli:"name=no-color desc='never color output'"`

	NoNull   bool `cli:"name=no-null desc='skip null values'"`
	NoPlain  bool `cli:"name=no-plain desc='fail on files of unknown format instead of printing their lines'"`
	NoQuotes bool `cli:"name=no-quotes desc='do not quote string values'"`

	Numbers      bool `cli:"name=value-numbers aliases=n desc='number output lines'"`
	ResetNumbers bool `cli:"name=reset-numbers desc='restart numbering for every file'"`
	ShowEnds     bool `cli:"name=E aliases=show-ends desc='display $ at end of each line'"`

	KeepGoing bool `cli:"name=k aliases=keep-going desc='continue with the next file after an error'"`
	Diff      bool `cli:"name=diff desc='print the flattened lines that differ between two files'"`

	Format *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) options(w io.Writer) flatcat.Options {
	opts := flatcat.DefaultOptions()
	opts.Color = cfg.useColor(w)
	opts.Null = !cfg.NoNull
	opts.Quotes = !cfg.NoQuotes
	opts.Numbers = cfg.Numbers
	opts.EndOfLine = cfg.ShowEnds
	opts.Plain = !cfg.NoPlain
	opts.ResetNumbers = cfg.ResetNumbers
	return opts
}

// useColor colors output to terminals unless told otherwise. NO_COLOR is
// honored the same way fatih/color honors it.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	switch {
	case cfg.NoColor:
		return false
	case cfg.Color:
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (cfg *MainConfig) input(cc *cli.Context, arg string) flatcat.Input {
	var in flatcat.Input
	if arg == "-" {
		in = flatcat.FromReader(arg, cc.In)
	} else {
		in = flatcat.FromPath(arg)
	}
	if cfg.Format != nil {
		in = in.WithHint(*cfg.Format)
	}
	return in
}
