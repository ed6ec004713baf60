// Package main provides the CLI entrypoint for dts-restore.
//
// dts-restore rewrites a decompiled device tree so that numeric phandles
// read as symbolic references again:
//   - builds phandle and label tables from the tree and its __symbols__ node
//   - decodes list properties against an ordered rule file
//   - splits multi-string properties into quoted literals
//   - writes the restored tree as YAML or JSON
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
