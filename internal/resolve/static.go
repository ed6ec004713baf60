package resolve

import (
	"fmt"

	"dts-restore/internal/constants"
	"dts-restore/internal/devtree"
	"dts-restore/internal/diagnostic"
	"dts-restore/internal/rules"
)

// decodeStatic consumes one value per struct tag, row after row, until the
// values run out. A short trailing row is emitted as is.
func (r *Resolver) decodeStatic(s site, rule *rules.Rule, vals []devtree.Value) []devtree.Group {
	width := len(rule.Struct)
	groups := make([]devtree.Group, 0, (len(vals)+width-1)/width)

	for i := 0; i < len(vals); {
		row := make(devtree.Group, 0, width)

		for idx, tag := range rule.Struct {
			if i >= len(vals) {
				break
			}

			row = append(row, r.staticCell(s, rule, idx, tag, vals[i]))
			i++
		}

		if len(row) < width {
			r.warn(s, diagnostic.CodeTruncatedRow,
				fmt.Sprintf("last row has %d of %d cells", len(row), width))
		}

		groups = append(groups, row)
	}

	return groups
}

func (r *Resolver) staticCell(s site, rule *rules.Rule, idx int, tag rules.CellType, v devtree.Value) devtree.Token {
	if !v.IsInt() {
		return devtree.Raw(v)
	}

	switch tag {
	case rules.CellRef:
		return r.reference(s, v.Int)
	case rules.CellHex:
		return devtree.Hex(v.Int)
	case rules.CellDecimal:
		if rule.Name == r.config.PinsRule {
			return pinsCell(idx, v.Int)
		}

		return devtree.Decimal(v.Int)
	default:
		return devtree.Decimal(v.Int)
	}
}

// pinsCell renders a decimal cell of a Rockchip pin row: position 1 is the
// pin within its bank, position 2 the function index.
func pinsCell(idx int, v uint64) devtree.Token {
	switch idx {
	case 1:
		if name, ok := constants.PinMacro(v); ok {
			return devtree.Const(name)
		}
	case 2:
		if name, ok := constants.PinFunc(v); ok {
			return devtree.Const(name)
		}
	}

	return devtree.Decimal(v)
}
