package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"dts-restore/internal/diagnostic"
	"dts-restore/internal/resolve"
)

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, ColorEnabled(&buf))

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, ColorEnabled(f), "a regular file is not a terminal")
}

func TestDiagnostics(t *testing.T) {
	var d diagnostic.Diagnostics
	d.AddInfo(diagnostic.CodeUnreachableRule, "shorthand rule has no patterns", "pinmux", "")
	d.AddWarning(diagnostic.CodeDanglingPhandle, "phandle 0x9 has no node", "/leds/led-0", "clocks")
	d.Add(diagnostic.Diagnostic{
		Severity:    diagnostic.SeverityWarning,
		Code:        diagnostic.CodeUnknownTag,
		Message:     `unknown cell type "rf"`,
		Subject:     "clock",
		Suggestions: []string{"ref"},
	})

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false).Diagnostics(&d))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "/leds/led-0: clocks: warning [dangling_phandle] phandle 0x9 has no node", lines[0])
	assert.Equal(t, `clock: warning [unknown_tag] unknown cell type "rf" (did you mean ref?)`, lines[1])
	assert.Equal(t, "pinmux: info [unreachable_rule] shorthand rule has no patterns", lines[2])

	assert.NoError(t, NewPrinter(&buf, false).Diagnostics(nil))
}

func TestDiagnosticsColor(t *testing.T) {
	var d diagnostic.Diagnostics
	d.AddWarning(diagnostic.CodeMissingNode, "gone", "/a", "clocks")

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, true).Diagnostics(&d))
	assert.Contains(t, buf.String(), "\x1b[")

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, false).Diagnostics(&d))
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestSummary(t *testing.T) {
	var d diagnostic.Diagnostics
	d.AddWarning(diagnostic.CodeTruncatedRow, "short", "/a", "p")

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false).Summary(resolve.Stats{Lists: 5, Matched: 3, Split: 2}, &d))
	assert.Equal(t, "resolved 3 of 5 list properties, split 2 string properties, 1 warnings\n", buf.String())

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, false).Summary(resolve.Stats{}, nil))
	assert.Contains(t, buf.String(), ", 0 warnings")
}

func TestDiffLines(t *testing.T) {
	before := "a: 1\nb: 2\nc: 3\n"
	after := "a: 1\nb: [\"&x\"]\nc: 3\n"

	got := DiffLines(before, after)
	assert.Equal(t, []LineDiff{
		{Op: diffpatch.DiffEqual, Text: "a: 1"},
		{Op: diffpatch.DiffDelete, Text: "b: 2"},
		{Op: diffpatch.DiffInsert, Text: `b: ["&x"]`},
		{Op: diffpatch.DiffEqual, Text: "c: 3"},
	}, got)
}

func TestDiff(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	changed, err := p.Diff("x\ny\n", "x\nz\n")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, " x\n-y\n+z\n", buf.String())

	buf.Reset()

	changed, err = p.Diff("x\n", "x\n")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, " x\n", buf.String())
}
