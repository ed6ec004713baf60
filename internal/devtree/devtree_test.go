package devtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree() *Node {
	root := NewNode("")
	soc := root.AddChild(NewNode("soc"))
	gpio := soc.AddChild(NewNode("gpio@ff720000"))
	gpio.SetProp("phandle", Int(7))
	gpio.SetProp("#gpio-cells", Int(2))
	root.AddChild(NewNode("xin24m")).SetProp("#clock-cells", Int(0))

	return root
}

func TestFindNodeByPath(t *testing.T) {
	root := buildTree()

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "nested", path: "/soc/gpio@ff720000", want: "gpio@ff720000"},
		{name: "no leading slash", path: "soc/gpio@ff720000", want: "gpio@ff720000"},
		{name: "trailing slash", path: "/xin24m/", want: "xin24m"},
		{name: "root", path: "/", want: ""},
		{name: "missing leaf", path: "/soc/uart@0", want: "<nil>"},
		{name: "missing intermediate", path: "/bus/gpio@ff720000", want: "<nil>"},
		{name: "property is not a node", path: "/soc/gpio@ff720000/phandle", want: "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindNodeByPath(root, tt.path)
			if tt.want == "<nil>" {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestFindNodeByPathNilRoot(t *testing.T) {
	assert.Nil(t, FindNodeByPath(nil, "/a"))
}

func TestNodeOrderAndReplace(t *testing.T) {
	n := NewNode("n")
	n.SetProp("b", Int(1))
	n.SetProp("a", Int(2))
	n.SetProp("b", Int(3))

	require.Len(t, n.Props(), 2)
	assert.Equal(t, "b", n.Props()[0].Name)
	assert.Equal(t, uint64(3), n.Props()[0].Value.Int)
	assert.Equal(t, "a", n.Props()[1].Name)

	n.AddChild(NewNode("y"))
	n.AddChild(NewNode("x"))
	replacement := NewNode("y")
	replacement.SetProp("k", Flag())
	n.AddChild(replacement)

	require.Len(t, n.Children(), 2)
	assert.Same(t, replacement, n.Children()[0])
	assert.Equal(t, "x", n.Children()[1].Name)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "soc", JoinPath("", "soc"))
	assert.Equal(t, "soc/gpio", JoinPath("soc", "gpio"))
	assert.Equal(t, "/soc/gpio", CanonicalPath("soc/gpio/"))
	assert.Equal(t, "/soc", CanonicalPath("//soc"))
	assert.Equal(t, "/", CanonicalPath(""))
}

func TestSplitStrings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "escape separator", in: `a\0b`, want: []string{`"a"`, `"b"`}},
		{name: "nul byte", in: "a\x00b", want: []string{`"a"`, `"b"`}},
		{name: "single", in: "okay", want: []string{`"okay"`}},
		{name: "empty", in: "", want: []string{`""`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitStrings(tt.in))
		})
	}
}

func TestPropertyNative(t *testing.T) {
	p := &Property{Name: "clocks", Value: Cells(1, 2)}
	assert.False(t, p.Resolved())
	assert.Equal(t, []any{uint64(1), uint64(2)}, p.Native())

	p.SetGroups([]Group{{Ref("cru"), Raw(Int(2))}})
	assert.True(t, p.Resolved())
	assert.Equal(t, []any{[]any{"&cru", uint64(2)}}, p.Native())

	p.SetLiterals([]string{`"a"`})
	assert.Nil(t, p.Groups())
	assert.Equal(t, []any{`"a"`}, p.Native())
}

func TestTokens(t *testing.T) {
	assert.Equal(t, "0x63", Hex(0x63).Text)
	assert.Equal(t, "99", Decimal(99).Text)
	assert.Equal(t, "&gpio0", Ref("gpio0").Text)

	g := RawGroup(List(Int(1), String("x")))
	assert.Equal(t, []string{"1", `"x"`}, g.Strings())
	assert.Equal(t, Group{Raw(Int(5))}, RawGroup(Int(5)))
}
