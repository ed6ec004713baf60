// Package devtree provides the in-memory model of a decompiled device tree.
//
// A tree is a strict ownership hierarchy: every Node exclusively owns its
// properties and children. Cross references between nodes (phandles) are
// never modeled as edges; they are plain integers resolved through side
// tables built by the symbols package.
//
// # Values
//
// A property's raw Value is one of:
//   - a flag (property present without a value, e.g. "gpio-controller;")
//   - an integer cell
//   - a string, possibly holding several null-separated strings
//   - a list of values (cells, strings, or nested lists)
//
// # Resolution
//
// Resolution never discards the raw Value. A resolved property additionally
// carries either a list of token groups (reference/cell decoding) or a list
// of quoted string literals (multi-string splitting), so metadata such as
// "#gpio-cells" stays legible regardless of walk order.
package devtree
