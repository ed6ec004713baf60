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
		Name:        "o",
		Aliases:     []string{"ofmt"},
		Description: "output format: yaml/y, json/j",
		Type:        cli.NamedFuncOpt(cfg.fmtOpt, "(format)"),
	})

	return cli.NewCommandAt(&cfg.Main, "dts-restore").
		WithSynopsis("dts-restore -r rules.yaml [opts] tree.yaml|-").
		WithDescription(description).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

const description = `dts-restore restores symbolic references in a decompiled device tree.

The tree is read as the YAML or JSON document produced by the tree parser,
with "-" for stdin. List properties matched by a rule in the rule file are
decoded into groups of references and literals; string properties are split
into quoted literals. The restored tree is written to stdout, diagnostics
and a summary to stderr.`
