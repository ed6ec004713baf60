package rules

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrMalformedRule is returned when a rule entry is neither a tag list
	// nor a mapping.
	ErrMalformedRule = errors.New("unexpected rule format")
	// ErrBadPattern is returned when a rule pattern is not a valid regular expression.
	ErrBadPattern = errors.New("invalid rule pattern")
)

// RuleError reports a fatal problem with one named rule.
type RuleError struct {
	Rule   string
	Detail string
	Err    error
}

func (e *RuleError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("rule %q: %v", e.Rule, e.Err)
	}

	return fmt.Sprintf("rule %q: %v: %s", e.Rule, e.Err, e.Detail)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// CellType is the decoding tag of one cell in a static struct row.
type CellType string

const (
	CellRef     CellType = "ref"
	CellDecimal CellType = "d"
	CellHex     CellType = "x"
)

// KnownCellTypes lists the tags with a dedicated rendering.
var KnownCellTypes = []CellType{CellRef, CellDecimal, CellHex}

// Known reports whether c has a dedicated rendering.
func (c CellType) Known() bool {
	switch c {
	case CellRef, CellDecimal, CellHex:
		return true
	default:
		return false
	}
}

// Rule is one named decoding rule.
type Rule struct {
	Name     string
	Patterns []*regexp.Regexp
	// Struct is the static row layout. Empty selects dynamic decoding.
	Struct []CellType
	// Shorthand marks rules declared as a bare tag list.
	Shorthand bool
}

// NewRule compiles patterns into a rule.
func NewRule(name string, patterns []string, layout ...CellType) (*Rule, error) {
	r := &Rule{Name: name, Struct: layout}

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, &RuleError{Rule: name, Detail: err.Error(), Err: ErrBadPattern}
		}

		r.Patterns = append(r.Patterns, re)
	}

	return r, nil
}

// Matches reports whether any pattern occurs in the property name.
func (r *Rule) Matches(prop string) bool {
	for _, re := range r.Patterns {
		if re.MatchString(prop) {
			return true
		}
	}

	return false
}

// Static reports whether the rule decodes fixed rows.
func (r *Rule) Static() bool {
	return len(r.Struct) > 0
}

// CellsProperty names the metadata property that sizes references under
// this rule, e.g. "#gpio-cells".
func (r *Rule) CellsProperty() string {
	return "#" + r.Name + "-cells"
}

// RuleSet is an ordered collection of rules with unique names.
type RuleSet struct {
	rules []*Rule
	index map[string]int
}

// NewRuleSet creates a rule set holding rs in order.
func NewRuleSet(rs ...*Rule) *RuleSet {
	set := &RuleSet{index: make(map[string]int)}
	for _, r := range rs {
		set.Add(r)
	}

	return set
}

// Add appends r, or replaces a rule of the same name in its original position.
func (s *RuleSet) Add(r *Rule) {
	if s.index == nil {
		s.index = make(map[string]int)
	}

	if i, ok := s.index[r.Name]; ok {
		s.rules[i] = r
		return
	}

	s.index[r.Name] = len(s.rules)
	s.rules = append(s.rules, r)
}

// Rules returns the rules in declaration order.
func (s *RuleSet) Rules() []*Rule {
	if s == nil {
		return nil
	}

	return s.rules
}

// Len returns the number of rules.
func (s *RuleSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.rules)
}

// Lookup returns the rule with the given name.
func (s *RuleSet) Lookup(name string) (*Rule, bool) {
	if s == nil {
		return nil, false
	}

	i, ok := s.index[name]
	if !ok {
		return nil, false
	}

	return s.rules[i], true
}

// Match returns the first rule, in declaration order, with a pattern
// matching prop, or nil.
func (s *RuleSet) Match(prop string) *Rule {
	for _, r := range s.Rules() {
		if r.Matches(prop) {
			return r
		}
	}

	return nil
}
