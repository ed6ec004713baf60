package devtree

import "strings"

// Property is a named raw value plus its resolved form, if any.
type Property struct {
	Name  string
	Value Value

	groups   []Group
	literals []string
	state    propState
}

type propState int

const (
	stateRaw propState = iota
	stateGrouped
	stateSplit
)

// SetGroups records the token groups decoded from the raw value.
func (p *Property) SetGroups(groups []Group) {
	p.groups = groups
	p.literals = nil
	p.state = stateGrouped
}

// Groups returns the decoded token groups, or nil if the property was not decoded.
func (p *Property) Groups() []Group {
	return p.groups
}

// SetLiterals records the quoted string literals split from a string value.
func (p *Property) SetLiterals(lits []string) {
	p.literals = lits
	p.groups = nil
	p.state = stateSplit
}

// Literals returns the quoted string literals, or nil if the property was not split.
func (p *Property) Literals() []string {
	return p.literals
}

// Resolved reports whether the property has been rewritten.
func (p *Property) Resolved() bool {
	return p.state != stateRaw
}

// Native returns the encodable form: resolved groups, split literals, or the raw value.
func (p *Property) Native() any {
	switch p.state {
	case stateGrouped:
		out := make([]any, len(p.groups))
		for i, g := range p.groups {
			row := make([]any, len(g))
			for j, t := range g {
				row[j] = t.Native()
			}

			out[i] = row
		}

		return out
	case stateSplit:
		out := make([]any, len(p.literals))
		for i, l := range p.literals {
			out[i] = l
		}

		return out
	default:
		return p.Value.Native()
	}
}

// nullSeparators are the spellings of the multi-string separator: the
// two-character escape written by the decompiler and a literal NUL byte.
var nullSeparators = strings.NewReplacer("\x00", `\0`)

// SplitStrings splits a multi-string value on its null separators and quotes
// each segment.
func SplitStrings(s string) []string {
	parts := strings.Split(nullSeparators.Replace(s), `\0`)

	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = Quoted(part).Text
	}

	return out
}
