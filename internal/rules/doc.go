// Package rules provides the rule file schema, its loader, and the
// ordered rule set consulted by the resolver.
//
// A rule tells the resolver how to decode the flattened cells of every
// property whose name matches one of its patterns.
//
// # Schema Overview
//
//	# Dynamic rule: each phandle is followed by as many data cells as the
//	# referenced node's "#clock-cells" property declares.
//	clock:
//	  patterns: ["^clocks$", "^assigned-clocks$"]
//	gpio:
//	  patterns: ["-gpios?$"]
//	# Static rule: fixed rows of typed cells.
//	rockchip,pins:
//	  patterns: ["^rockchip,pins$"]
//	  struct: [d, d, d, ref]
//	# Shorthand: a bare tag list is a static rule without patterns.
//	pinmux: [ref, x]
//
// # Cell tags
//
//   - ref: a phandle, rendered as "&label"
//   - d: a decimal literal
//   - x: a hex literal
//   - anything else is rendered as a decimal literal
//
// # Ordering
//
// Rules are kept in file order and the first rule with a matching pattern
// wins. Patterns use substring search semantics: anchor them with ^ and $
// to match a whole property name.
//
// # Shorthand rules
//
// The shorthand form carries no patterns, so it can never be selected by
// property name. Validate reports such rules as unreachable.
package rules
