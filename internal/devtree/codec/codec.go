// Package codec reads the parsed device tree document produced by the
// external parser, and writes resolved trees back out.
//
// The document is a YAML (or JSON) mapping. A mapping value is a child
// node; anything else is a property:
//
//	/:
//	  gpio-leds:
//	    compatible: "gpio-leds"
//	    led-0:
//	      gpios: [0x07, 0x05, 0x01]
//	      default-on: ~
//	  __symbols__:
//	    gpio3: "/pinctrl/gpio@ff790000"
//
// A top-level "/" key is unwrapped to the root node. Integers become
// cells, strings stay strings, sequences become lists and null or true
// marks a valueless property. Key order is preserved.
package codec

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/goccy/go-yaml"

	"dts-restore/internal/devtree"
)

// ErrUnsupportedValue is returned for document values with no device tree meaning.
var ErrUnsupportedValue = errors.New("unsupported value")

// DecodeFile reads and decodes a tree document from path.
func DecodeFile(path string) (*devtree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree file %s: %w", path, err)
	}

	root, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return root, nil
}

// Decode decodes a tree document.
func Decode(data []byte) (*devtree.Node, error) {
	var doc any

	err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("failed to parse tree document: %w", err)
	}

	root := devtree.NewNode("")
	if doc == nil {
		return root, nil
	}

	top, ok := doc.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: tree document must be a mapping, got %T", ErrUnsupportedValue, doc)
	}

	top, err = unwrapRoot(top)
	if err != nil {
		return nil, err
	}

	err = fill(root, top, "")
	if err != nil {
		return nil, err
	}

	return root, nil
}

// unwrapRoot splices the contents of a top-level "/" node into the root, in
// place, next to any other top-level entries.
func unwrapRoot(top yaml.MapSlice) (yaml.MapSlice, error) {
	out := make(yaml.MapSlice, 0, len(top))

	for _, item := range top {
		if fmt.Sprint(item.Key) != "/" {
			out = append(out, item)

			continue
		}

		inner, ok := item.Value.(yaml.MapSlice)
		if !ok && item.Value != nil {
			return nil, fmt.Errorf("%w: root node \"/\" must be a mapping, got %T", ErrUnsupportedValue, item.Value)
		}

		out = append(out, inner...)
	}

	return out, nil
}

func fill(n *devtree.Node, entries yaml.MapSlice, path string) error {
	for _, item := range entries {
		name := fmt.Sprint(item.Key)

		if sub, ok := item.Value.(yaml.MapSlice); ok {
			child := devtree.NewNode(name)

			err := fill(child, sub, devtree.JoinPath(path, name))
			if err != nil {
				return err
			}

			n.AddChild(child)

			continue
		}

		v, err := toValue(item.Value)
		if err != nil {
			return fmt.Errorf("%s: property %q: %w", devtree.CanonicalPath(path), name, err)
		}

		n.SetProp(name, v)
	}

	return nil
}

func toValue(raw any) (devtree.Value, error) {
	switch v := raw.(type) {
	case nil:
		return devtree.Flag(), nil
	case bool:
		if !v {
			return devtree.Value{}, fmt.Errorf("%w: false", ErrUnsupportedValue)
		}

		return devtree.Flag(), nil
	case string:
		return devtree.String(v), nil
	case uint64:
		return devtree.Int(v), nil
	case int64:
		return signed(v)
	case int:
		return signed(int64(v))
	case float64:
		if v < 0 || v != math.Trunc(v) || v >= math.MaxUint64 {
			return devtree.Value{}, fmt.Errorf("%w: number %v is not a cell", ErrUnsupportedValue, v)
		}

		return devtree.Int(uint64(v)), nil
	case []any:
		list := make([]devtree.Value, len(v))

		for i, e := range v {
			ev, err := toValue(e)
			if err != nil {
				return devtree.Value{}, fmt.Errorf("element %d: %w", i, err)
			}

			if ev.Kind == devtree.KindFlag {
				return devtree.Value{}, fmt.Errorf("element %d: %w: empty element", i, ErrUnsupportedValue)
			}

			list[i] = ev
		}

		return devtree.List(list...), nil
	default:
		return devtree.Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
	}
}

func signed(v int64) (devtree.Value, error) {
	if v < 0 {
		return devtree.Value{}, fmt.Errorf("%w: negative cell %d", ErrUnsupportedValue, v)
	}

	return devtree.Int(uint64(v)), nil
}
