package resolve

import (
	"fmt"

	"dts-restore/internal/constants"
	"dts-restore/internal/devtree"
	"dts-restore/internal/diagnostic"
	"dts-restore/internal/rules"
)

// decodeDynamic scans "phandle, data cells..." groups. The number of data
// cells following each phandle is read from the referenced node's
// #<rule>-cells property.
func (r *Resolver) decodeDynamic(s site, rule *rules.Rule, vals []devtree.Value) []devtree.Group {
	var groups []devtree.Group

	for i := 0; i < len(vals); {
		v := vals[i]
		if !v.IsInt() {
			groups = append(groups, devtree.Group{devtree.Raw(v)})
			i++

			continue
		}

		path, ok := r.symbols.Path(v.Int)
		if !ok {
			r.warn(s, diagnostic.CodeDanglingPhandle, fmt.Sprintf("phandle 0x%x is not defined", v.Int))
			groups = append(groups, devtree.Group{devtree.Hex(v.Int)})
			i++

			continue
		}

		ref := devtree.Ref(r.symbols.Label(path))

		target := devtree.FindNodeByPath(r.root, path)
		if target == nil {
			r.warn(s, diagnostic.CodeMissingNode, fmt.Sprintf("node %s for phandle 0x%x is not in the tree", path, v.Int))
			groups = append(groups, devtree.Group{ref})
			i++

			continue
		}

		want := r.cellCount(s, target, rule)
		start := i + 1

		take := uint64(len(vals) - start)
		if want < take {
			take = want
		} else if want > take {
			r.warn(s, diagnostic.CodeTruncatedCells,
				fmt.Sprintf("%s expects %d data cells after %s, %d left", rule.CellsProperty(), want, ref.Text, take))
		}

		group := make(devtree.Group, 0, 1+take)
		group = append(group, ref)

		for _, c := range vals[start : start+int(take)] {
			group = append(group, devtree.Raw(c))
		}

		if rule.Name == r.config.GPIORule && want >= 2 {
			gpioCells(group[1:], want)
		}

		groups = append(groups, group)
		i = start + int(take)
	}

	return groups
}

// cellCount reads #<rule>-cells from the referenced node. A missing property
// means zero data cells. A list is unwrapped exactly once.
func (r *Resolver) cellCount(s site, target *devtree.Node, rule *rules.Rule) uint64 {
	p, ok := target.Prop(rule.CellsProperty())
	if !ok {
		return 0
	}

	v := p.Value
	if v.Kind == devtree.KindList && len(v.List) > 0 {
		v = v.List[0]
	}

	if !v.IsInt() {
		r.warn(s, diagnostic.CodeBadCellsValue,
			fmt.Sprintf("%s is %s, assuming 0", rule.CellsProperty(), p.Value.String()))

		return 0
	}

	return v.Int
}

// gpioCells names the pin (first cell) and the polarity flags (cell want-1)
// of a GPIO specifier. The flags cell is only touched when the specifier is
// complete.
func gpioCells(cells devtree.Group, want uint64) {
	if len(cells) > 0 && cells[0].Raw.IsInt() {
		if name, ok := constants.PinMacro(cells[0].Raw.Int); ok {
			cells[0] = devtree.Const(name)
		}
	}

	if uint64(len(cells)) != want {
		return
	}

	last := len(cells) - 1
	if cells[last].Kind == devtree.TokenRaw && cells[last].Raw.IsInt() {
		if name, ok := constants.GPIOFlag(cells[last].Raw.Int); ok {
			cells[last] = devtree.Const(name)
		}
	}
}
