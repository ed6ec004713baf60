package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"
	"github.com/scott-cotton/cli"

	"dts-restore/internal/devtree"
	"dts-restore/internal/devtree/codec"
	"dts-restore/internal/report"
	"dts-restore/internal/resolve"
	"dts-restore/internal/rules"
	"dts-restore/internal/watch"
)

// streams are where a single restore reads and writes.
type streams struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func run(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Rules == "" {
		return fmt.Errorf("%w: -r rule file is required", cli.ErrUsage)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one tree file", cli.ErrUsage)
	}

	std := streams{in: cc.In, out: cc.Out, errOut: os.Stderr}
	logger := cfg.logger(std.errOut)

	if !cfg.Watch {
		return restore(cfg, std, args[0], logger)
	}
	if args[0] == "-" {
		return fmt.Errorf("%w: -watch needs a tree file, not stdin", cli.ErrUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = restore(cfg, std, args[0], logger)
	if err != nil {
		logger.Error("restore failed", "error", err)
	}

	w, err := watch.New([]string{cfg.Rules, args[0]}, watch.WithLogger(logger))
	if err != nil {
		return err
	}

	return w.Watch(ctx, func() error {
		return restore(cfg, std, args[0], logger)
	})
}

// restore runs one full pass: load rules, load the tree, resolve, write.
func restore(cfg *MainConfig, std streams, input string, logger *slog.Logger) error {
	set, err := rules.LoadFile(cfg.Rules)
	if err != nil {
		return err
	}

	diags := rules.Validate(set)

	root, err := loadTree(std.in, input)
	if err != nil {
		return err
	}

	var before []byte
	if cfg.Diff {
		before, err = codec.Marshal(root, cfg.Format)
		if err != nil {
			return err
		}
	}

	rcfg := resolve.DefaultConfig()
	rcfg.Strict = cfg.Strict

	res, runErr := resolve.Run(root, set, resolve.WithConfig(rcfg), resolve.WithLogger(logger))
	if res == nil {
		return runErr
	}

	diags.Merge(res.Diagnostics)

	if cfg.Dump {
		spew.Fdump(std.errOut, res.Symbols)
	}

	if cfg.Diff {
		after, err := codec.Marshal(root, cfg.Format)
		if err != nil {
			return err
		}

		_, err = report.NewPrinter(std.out, cfg.useColor(std.out)).Diff(string(before), string(after))
		if err != nil {
			return err
		}
	} else {
		err = codec.Encode(std.out, root, cfg.Format)
		if err != nil {
			return err
		}
	}

	if !cfg.Quiet {
		p := report.NewPrinter(std.errOut, cfg.useColor(std.errOut))

		err = p.Diagnostics(diags)
		if err != nil {
			return err
		}

		err = p.Summary(res.Stats, diags)
		if err != nil {
			return err
		}
	}

	return runErr
}

func loadTree(in io.Reader, input string) (*devtree.Node, error) {
	if input != "-" {
		return codec.DecodeFile(input)
	}

	var buf bytes.Buffer

	_, err := buf.ReadFrom(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree from stdin: %w", err)
	}

	return codec.Decode(buf.Bytes())
}
