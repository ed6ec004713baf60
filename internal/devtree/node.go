package devtree

import "strings"

const (
	// SymbolsNode is the reserved pseudo-node holding label -> path entries.
	SymbolsNode = "__symbols__"
	// PhandleProp is the reserved property carrying a node's phandle.
	PhandleProp = "phandle"
)

// Node is a device tree node. Properties and children keep document order.
type Node struct {
	Name string

	props    []*Property
	propIdx  map[string]int
	children []*Node
	childIdx map[string]int
}

// NewNode creates an empty node.
func NewNode(name string) *Node {
	return &Node{
		Name:     name,
		propIdx:  make(map[string]int),
		childIdx: make(map[string]int),
	}
}

// SetProp sets a property, replacing an existing one of the same name in place.
func (n *Node) SetProp(name string, v Value) *Property {
	if i, ok := n.propIdx[name]; ok {
		n.props[i] = &Property{Name: name, Value: v}
		return n.props[i]
	}

	p := &Property{Name: name, Value: v}
	n.propIdx[name] = len(n.props)
	n.props = append(n.props, p)

	return p
}

// Prop returns the named property.
func (n *Node) Prop(name string) (*Property, bool) {
	i, ok := n.propIdx[name]
	if !ok {
		return nil, false
	}

	return n.props[i], true
}

// Props returns the properties in document order.
func (n *Node) Props() []*Property {
	return n.props
}

// AddChild attaches c, replacing an existing child of the same name in place.
func (n *Node) AddChild(c *Node) *Node {
	if i, ok := n.childIdx[c.Name]; ok {
		n.children[i] = c
		return c
	}

	n.childIdx[c.Name] = len(n.children)
	n.children = append(n.children, c)

	return c
}

// Child returns the named child node.
func (n *Node) Child(name string) (*Node, bool) {
	i, ok := n.childIdx[name]
	if !ok {
		return nil, false
	}

	return n.children[i], true
}

// Children returns the child nodes in document order.
func (n *Node) Children() []*Node {
	return n.children
}

// FindNodeByPath walks from root one path segment per level. It returns nil
// as soon as a segment is missing. "/" and "" both name the root.
func FindNodeByPath(root *Node, path string) *Node {
	if root == nil {
		return nil
	}

	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return root
	}

	cur := root
	for _, seg := range strings.Split(trimmed, "/") {
		next, ok := cur.Child(seg)
		if !ok {
			return nil
		}

		cur = next
	}

	return cur
}

// JoinPath appends a child name to a slash-joined structural path.
func JoinPath(parent, name string) string {
	return strings.Trim(parent+"/"+name, "/")
}

// CanonicalPath returns path with exactly one leading slash and no trailing slash.
func CanonicalPath(path string) string {
	return "/" + strings.Trim(path, "/")
}
