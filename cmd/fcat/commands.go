package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "t",
		Aliases:     []string{"type"},
		Description: "input format for all files: json/j, toml/t, yaml/y",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.Format), "(format)"),
	})

	return cli.NewCommandAt(&cfg.Main, "fcat").
		WithSynopsis("fcat [opts] [files]").
		WithDescription("fcat prints json, toml and yaml files as one 'path: value' line per leaf.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fcatMain(cfg, cc, args)
		})
}
