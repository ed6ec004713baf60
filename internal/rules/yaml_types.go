package rules

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// patternList accepts either a single pattern or a list of patterns.
type patternList []string

// UnmarshalYAML implements custom YAML unmarshaling for patternList.
func (p *patternList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*p = patternList{}
			return nil
		}

		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		*p = patternList{str}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*p = arr

		return nil

	default:
		return fmt.Errorf("expected pattern or list of patterns, got %s", kindName(node.Kind))
	}
}

// ruleSpec is the mapping form of a rule entry.
type ruleSpec struct {
	Patterns patternList `yaml:"patterns"`
	Struct   []CellType  `yaml:"struct"`
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "empty"
	}
}
