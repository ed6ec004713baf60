// Package symbols builds the lookup tables that turn phandles back into
// node references: phandle -> canonical path, and path -> label.
//
// The tables are built once, before resolution, and are read-only
// afterwards.
package symbols

import (
	"sort"
	"strings"

	"dts-restore/internal/devtree"
)

// Table holds the phandle and label lookups recovered from a tree.
type Table struct {
	// PhandleToPath maps a phandle to the canonical absolute path of its node.
	PhandleToPath map[uint64]string
	// PathToSymbol maps an absolute path from __symbols__ to its label.
	PathToSymbol map[string]string

	// bySpelling maps a slash-trimmed path to the first __symbols__ path
	// spelling it, in declaration order.
	bySpelling map[string]string
	seen       map[uint64][]string
}

// Duplicate describes a phandle carried by more than one node.
type Duplicate struct {
	Phandle uint64
	Paths   []string
}

// Build walks the tree once and returns its lookup tables.
//
// Labels come from the root's __symbols__ node. Every node carrying a
// phandle is registered under the __symbols__ spelling of its path when one
// exists, and under its normalized structural path otherwise.
func Build(root *devtree.Node) *Table {
	t := &Table{
		PhandleToPath: make(map[uint64]string),
		PathToSymbol:  make(map[string]string),
		bySpelling:    make(map[string]string),
		seen:          make(map[uint64][]string),
	}

	if root == nil {
		return t
	}

	if syms, ok := root.Child(devtree.SymbolsNode); ok {
		t.addSymbols(syms)
	}

	t.walk(root, "")

	return t
}

func (t *Table) addSymbols(syms *devtree.Node) {
	for _, p := range syms.Props() {
		if p.Value.Kind != devtree.KindString || strings.Trim(p.Value.Str, "/") == "" {
			continue
		}

		// Relative entries are made absolute so every table path starts with "/".
		path := p.Value.Str
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}

		// Later labels for the same path win, earlier spellings win.
		t.PathToSymbol[path] = p.Name

		key := strings.Trim(path, "/")
		if _, ok := t.bySpelling[key]; !ok {
			t.bySpelling[key] = path
		}
	}
}

func (t *Table) walk(n *devtree.Node, path string) {
	if ph, ok := phandleOf(n); ok {
		canonical, ok := t.bySpelling[path]
		if !ok {
			canonical = devtree.CanonicalPath(path)
		}

		t.PhandleToPath[ph] = canonical
		t.seen[ph] = append(t.seen[ph], canonical)
	}

	for _, c := range n.Children() {
		if c.Name == devtree.SymbolsNode {
			continue
		}

		t.walk(c, devtree.JoinPath(path, c.Name))
	}
}

func phandleOf(n *devtree.Node) (uint64, bool) {
	p, ok := n.Prop(devtree.PhandleProp)
	if !ok {
		return 0, false
	}

	v := p.Value
	if v.Kind == devtree.KindList && len(v.List) == 1 {
		v = v.List[0]
	}

	if !v.IsInt() {
		return 0, false
	}

	return v.Int, true
}

// Path returns the canonical path registered for a phandle.
func (t *Table) Path(phandle uint64) (string, bool) {
	p, ok := t.PhandleToPath[phandle]
	return p, ok
}

// Label returns the __symbols__ label for path, or the path itself without
// its leading slash when no label exists.
func (t *Table) Label(path string) string {
	if sym, ok := t.PathToSymbol[path]; ok {
		return sym
	}

	return strings.TrimLeft(path, "/")
}

// Reference resolves a phandle to a "&label" token. It reports false when
// the phandle is unknown; callers supply their own fallback.
func (t *Table) Reference(phandle uint64) (devtree.Token, bool) {
	path, ok := t.Path(phandle)
	if !ok {
		return devtree.Token{}, false
	}

	return devtree.Ref(t.Label(path)), true
}

// Duplicates lists phandles that were found on more than one node, sorted
// by phandle. The last node seen wins in PhandleToPath.
func (t *Table) Duplicates() []Duplicate {
	var out []Duplicate

	for ph, paths := range t.seen {
		if len(paths) > 1 {
			out = append(out, Duplicate{Phandle: ph, Paths: paths})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Phandle < out[j].Phandle })

	return out
}
