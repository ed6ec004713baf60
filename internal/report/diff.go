package report

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff is one line of a line-oriented diff.
type LineDiff struct {
	Op   diffpatch.Operation
	Text string
}

// DiffLines computes a line-oriented diff of two texts.
func DiffLines(from, to string) []LineDiff {
	dmp := diffpatch.New()

	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []LineDiff

	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			out = append(out, LineDiff{Op: d.Type, Text: line})
		}
	}

	return out
}

// Diff writes a line diff of before and after, prefixing removed lines
// with "-", added lines with "+" and unchanged lines with a space. It
// reports whether anything changed.
func (p *Printer) Diff(before, after string) (bool, error) {
	changed := false

	for _, l := range DiffLines(before, after) {
		var line string

		switch l.Op {
		case diffpatch.DiffDelete:
			changed = true
			line = p.delColor.Sprint("-" + l.Text)
		case diffpatch.DiffInsert:
			changed = true
			line = p.addColor.Sprint("+" + l.Text)
		default:
			line = " " + l.Text
		}

		_, err := fmt.Fprintln(p.w, line)
		if err != nil {
			return changed, err
		}
	}

	return changed, nil
}
