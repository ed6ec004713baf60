package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dts-restore/internal/devtree"
)

func sampleTree() *devtree.Node {
	root := devtree.NewNode("")
	root.AddChild(devtree.NewNode("xin24m")).SetProp("phandle", devtree.Int(1))

	cru := root.AddChild(devtree.NewNode("clock-controller@ff2b0000"))
	cru.SetProp("phandle", devtree.Int(3))
	cru.AddChild(devtree.NewNode("subnode")).SetProp("phandle", devtree.Cells(4))

	root.AddChild(devtree.NewNode("clock-controller@ff2bc000")).SetProp("phandle", devtree.Int(2))

	syms := root.AddChild(devtree.NewNode(devtree.SymbolsNode))
	syms.SetProp("xin24m", devtree.String("/xin24m"))
	syms.SetProp("cru", devtree.String("/clock-controller@ff2b0000"))
	syms.SetProp("pmucru", devtree.String("/clock-controller@ff2bc000"))

	return root
}

func TestBuild(t *testing.T) {
	tbl := Build(sampleTree())

	assert.Equal(t, map[uint64]string{
		1: "/xin24m",
		2: "/clock-controller@ff2bc000",
		3: "/clock-controller@ff2b0000",
		4: "/clock-controller@ff2b0000/subnode",
	}, tbl.PhandleToPath)

	assert.Equal(t, map[string]string{
		"/xin24m":                    "xin24m",
		"/clock-controller@ff2b0000": "cru",
		"/clock-controller@ff2bc000": "pmucru",
	}, tbl.PathToSymbol)

	for _, p := range tbl.PhandleToPath {
		assert.True(t, len(p) > 0 && p[0] == '/', "path %q must be absolute", p)
	}
}

func TestBuildPrefersSymbolSpelling(t *testing.T) {
	root := devtree.NewNode("")
	soc := root.AddChild(devtree.NewNode("soc"))
	soc.AddChild(devtree.NewNode("gpio@ff720000")).SetProp("phandle", devtree.Int(7))
	root.AddChild(devtree.NewNode(devtree.SymbolsNode)).
		SetProp("gpio0", devtree.String("/soc/gpio@ff720000/"))

	tbl := Build(root)

	path, ok := tbl.Path(7)
	require.True(t, ok)
	assert.Equal(t, "/soc/gpio@ff720000/", path)

	ref, ok := tbl.Reference(7)
	require.True(t, ok)
	assert.Equal(t, "&gpio0", ref.Text)
}

func TestBuildRelativeSymbolPath(t *testing.T) {
	root := devtree.NewNode("")
	root.AddChild(devtree.NewNode("pinctrl")).SetProp("phandle", devtree.Int(5))
	root.AddChild(devtree.NewNode(devtree.SymbolsNode)).
		SetProp("pinctrl", devtree.String("pinctrl"))

	tbl := Build(root)

	path, ok := tbl.Path(5)
	require.True(t, ok)
	assert.Equal(t, "/pinctrl", path, "symbol paths are made absolute")
	assert.Equal(t, map[string]string{"/pinctrl": "pinctrl"}, tbl.PathToSymbol)

	ref, ok := tbl.Reference(5)
	require.True(t, ok)
	assert.Equal(t, "&pinctrl", ref.Text)
}

func TestBuildWithoutSymbols(t *testing.T) {
	root := devtree.NewNode("")
	root.AddChild(devtree.NewNode("gpio0")).SetProp("phandle", devtree.Int(1))

	tbl := Build(root)

	ref, ok := tbl.Reference(1)
	require.True(t, ok)
	assert.Equal(t, "&gpio0", ref.Text)
	assert.Empty(t, tbl.PathToSymbol)
}

func TestReferenceUnknown(t *testing.T) {
	tbl := Build(sampleTree())

	_, ok := tbl.Reference(0x63)
	assert.False(t, ok)

	_, ok = tbl.Path(0x63)
	assert.False(t, ok)
}

func TestLabelFallback(t *testing.T) {
	tbl := Build(sampleTree())

	assert.Equal(t, "cru", tbl.Label("/clock-controller@ff2b0000"))
	assert.Equal(t, "clock-controller@ff2b0000/subnode", tbl.Label("/clock-controller@ff2b0000/subnode"))
}

func TestLaterLabelWins(t *testing.T) {
	root := devtree.NewNode("")
	root.AddChild(devtree.NewNode("uart")).SetProp("phandle", devtree.Int(9))

	syms := root.AddChild(devtree.NewNode(devtree.SymbolsNode))
	syms.SetProp("uart0", devtree.String("/uart"))
	syms.SetProp("serial0", devtree.String("/uart"))

	ref, ok := Build(root).Reference(9)
	require.True(t, ok)
	assert.Equal(t, "&serial0", ref.Text)
}

func TestDuplicates(t *testing.T) {
	root := devtree.NewNode("")
	root.AddChild(devtree.NewNode("a")).SetProp("phandle", devtree.Int(5))
	root.AddChild(devtree.NewNode("b")).SetProp("phandle", devtree.Int(5))
	root.AddChild(devtree.NewNode("c")).SetProp("phandle", devtree.Int(6))

	tbl := Build(root)

	path, _ := tbl.Path(5)
	assert.Equal(t, "/b", path)
	assert.Equal(t, []Duplicate{{Phandle: 5, Paths: []string{"/a", "/b"}}}, tbl.Duplicates())
}

func TestBuildNilRoot(t *testing.T) {
	tbl := Build(nil)
	assert.Empty(t, tbl.PhandleToPath)
	assert.Empty(t, tbl.Duplicates())
}
