package devtree

import (
	"fmt"
	"strings"
)

// Kind identifies the shape of a raw property value.
type Kind int

const (
	KindFlag Kind = iota
	KindInt
	KindString
	KindList
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a raw property value as produced by the tree parser.
type Value struct {
	Kind Kind
	Int  uint64
	Str  string
	List []Value
}

// Flag returns a valueless property value.
func Flag() Value {
	return Value{Kind: KindFlag}
}

// Int returns an integer cell value.
func Int(v uint64) Value {
	return Value{Kind: KindInt, Int: v}
}

// String returns a string value.
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// List returns a list value holding vs.
func List(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}

	return Value{Kind: KindList, List: vs}
}

// Cells is shorthand for a list of integer cells.
func Cells(cells ...uint64) Value {
	vs := make([]Value, len(cells))
	for i, c := range cells {
		vs[i] = Int(c)
	}

	return List(vs...)
}

// IsInt reports whether v is an integer cell.
func (v Value) IsInt() bool {
	return v.Kind == KindInt
}

// Elements returns the elements of a list value, or v itself as a
// one-element slice for any other kind.
func (v Value) Elements() []Value {
	if v.Kind == KindList {
		return v.List
	}

	return []Value{v}
}

// Native converts v to plain Go values suitable for encoding.
func (v Value) Native() any {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindString:
		return v.Str
	case KindList:
		out := make([]any, len(v.List))
		for i, e := range v.List {
			out[i] = e.Native()
		}

		return out
	default:
		return true
	}
}

// String renders v in a compact debugging form.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindString:
		return fmt.Sprintf("%q", v.Str)
	case KindList:
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = e.String()
		}

		return "[" + strings.Join(parts, " ") + "]"
	default:
		return "<flag>"
	}
}
