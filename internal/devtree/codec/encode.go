package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"dts-restore/internal/devtree"
)

// Format is an output serialization.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// ParseFormat parses a format name: yaml/y or json/j.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "yaml", "y", "yml":
		return FormatYAML, nil
	case "json", "j":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("unknown format %q, want yaml or json", s)
	}
}

// String returns the format name.
func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}

	return "yaml"
}

// Encode writes the tree in the given format. Resolved properties are
// written in their resolved form, all others as their raw value.
func Encode(w io.Writer, root *devtree.Node, f Format) error {
	data, err := Marshal(root, f)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

// Marshal returns the encoding of the tree in the given format.
func Marshal(root *devtree.Node, f Format) ([]byte, error) {
	doc := document(root)

	if f == FormatJSON {
		var buf bytes.Buffer

		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")

		err := enc.Encode(jsonValue(doc))
		if err != nil {
			return nil, fmt.Errorf("failed to encode tree as json: %w", err)
		}

		return buf.Bytes(), nil
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tree as yaml: %w", err)
	}

	return data, nil
}

// document lays a node out as an ordered mapping: properties first, then
// child nodes, each in document order.
func document(n *devtree.Node) yaml.MapSlice {
	if n == nil {
		return yaml.MapSlice{}
	}

	out := make(yaml.MapSlice, 0, len(n.Props())+len(n.Children()))

	for _, p := range n.Props() {
		out = append(out, yaml.MapItem{Key: p.Name, Value: p.Native()})
	}

	for _, c := range n.Children() {
		out = append(out, yaml.MapItem{Key: c.Name, Value: document(c)})
	}

	return out
}

// object is an ordered JSON object.
type object yaml.MapSlice

// MarshalJSON implements json.Marshaler, keeping key order.
func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, item := range o {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := marshalJSON(fmt.Sprint(item.Key))
		if err != nil {
			return nil, err
		}

		val, err := marshalJSON(item.Value)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// marshalJSON is json.Marshal without HTML escaping, so references keep
// their "&".
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func jsonValue(v any) any {
	switch t := v.(type) {
	case yaml.MapSlice:
		out := make(object, len(t))
		for i, item := range t {
			out[i] = yaml.MapItem{Key: item.Key, Value: jsonValue(item.Value)}
		}

		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = jsonValue(e)
		}

		return out
	default:
		return v
	}
}
