package rules

import (
	"fmt"

	"dts-restore/internal/diagnostic"
	"dts-restore/internal/match"
)

// Validate reports rules that can never be selected and struct tags without
// a dedicated rendering. It never rejects a rule set: both conditions are
// legal and resolve deterministically.
func Validate(set *RuleSet) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	known := make([]string, len(KnownCellTypes))
	for i, c := range KnownCellTypes {
		known[i] = string(c)
	}

	for _, r := range set.Rules() {
		if len(r.Patterns) == 0 {
			msg := "rule has no patterns and is never selected"
			if r.Shorthand {
				msg = "shorthand rule has no patterns and is never selected"
			}

			res.AddInfo(diagnostic.CodeUnreachableRule, msg, r.Name, "")
		}

		for i, c := range r.Struct {
			if c.Known() {
				continue
			}

			res.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityWarning,
				Code:        diagnostic.CodeUnknownTag,
				Message:     fmt.Sprintf("struct cell %d has unknown tag %q, rendered as decimal", i, c),
				Subject:     r.Name,
				Suggestions: match.Suggest(string(c), known, 2),
			})
		}
	}

	return res
}
