package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/scott-cotton/cli"

	"dts-restore/internal/devtree/codec"
	"dts-restore/internal/report"
)

type MainConfig struct {
	Rules   string `cli:"name=r aliases=rules desc='rule file (yaml)'"`
	Strict  bool   `cli:"name=strict desc='exit with an error if any warning is reported'"`
	Quiet   bool   `cli:"name=q desc='do not print diagnostics or the summary'"`
	Diff    bool   `cli:"name=diff desc='print a line diff of the tree before and after resolution'"`
	Watch   bool   `cli:"name=watch desc='rerun whenever the rule file or tree file changes'"`
	Dump    bool   `cli:"name=dump desc='dump the symbol tables to stderr'"`
	Color   bool   `cli:"name=color desc='color diagnostics and diffs even when not writing to a terminal'"`
	Verbose bool   `cli:"name=v desc='log every rule decision'"`

	Format codec.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtOpt(_ *cli.Context, v string) (any, error) {
	f, err := codec.ParseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	cfg.Format = f

	return f, nil
}

func (cfg *MainConfig) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// useColor reports whether output to w is colored: always with -color,
// otherwise only on a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	return cfg.Color || report.ColorEnabled(w)
}
