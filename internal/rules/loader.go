package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and normalizes a YAML rule file from the given path.
func LoadFile(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML rule data into an ordered RuleSet.
//
// The document is walked as a yaml.Node so that rules keep the order in
// which they were declared. An empty document yields an empty set.
func Parse(data []byte) (*RuleSet, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rules YAML: %w", err)
	}

	set := NewRuleSet()
	if len(doc.Content) == 0 {
		return set, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return set, nil
	}

	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: rules document must be a mapping, got %s", ErrMalformedRule, kindName(root.Kind))
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		rule, err := normalize(root.Content[i].Value, root.Content[i+1])
		if err != nil {
			return nil, err
		}

		set.Add(rule)
	}

	return set, nil
}

// normalize turns one rule entry into a Rule. A bare tag list is sugar for
// {struct: <list>} with no patterns; a mapping may omit either key.
func normalize(name string, node *yaml.Node) (*Rule, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.SequenceNode:
		var layout []CellType

		err := node.Decode(&layout)
		if err != nil {
			return nil, &RuleError{Rule: name, Detail: err.Error(), Err: ErrMalformedRule}
		}

		r, err := NewRule(name, nil, layout...)
		if err != nil {
			return nil, err
		}

		r.Shorthand = true

		return r, nil

	case yaml.MappingNode:
		var spec ruleSpec

		err := node.Decode(&spec)
		if err != nil {
			return nil, &RuleError{Rule: name, Detail: err.Error(), Err: ErrMalformedRule}
		}

		return NewRule(name, spec.Patterns, spec.Struct...)

	default:
		return nil, &RuleError{
			Rule:   name,
			Detail: fmt.Sprintf("expected tag list or mapping, got %s %q", kindName(node.Kind), node.Value),
			Err:    ErrMalformedRule,
		}
	}
}
