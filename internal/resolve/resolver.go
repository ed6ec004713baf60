package resolve

import (
	"errors"
	"fmt"
	"log/slog"

	"dts-restore/internal/devtree"
	"dts-restore/internal/diagnostic"
	"dts-restore/internal/rules"
	"dts-restore/internal/symbols"
)

// ErrStrict is returned by Run in strict mode when warnings were recorded.
var ErrStrict = errors.New("strict mode: resolution reported warnings")

// Stats counts what a walk did.
type Stats struct {
	// Lists is the number of list-valued properties visited.
	Lists int
	// Matched is the number of list-valued properties a rule applied to.
	Matched int
	// Split is the number of string properties split into literals.
	Split int
}

// Result is the outcome of a full resolution pass.
type Result struct {
	Symbols     *symbols.Table
	Diagnostics diagnostic.Diagnostics
	Stats       Stats
}

// Resolver decodes property values against a fixed tree snapshot, symbol
// tables and rule set.
type Resolver struct {
	root    *devtree.Node
	symbols *symbols.Table
	rules   *rules.RuleSet
	config  Config
	logger  *slog.Logger
	diags   diagnostic.Diagnostics
	stats   Stats
}

// NewResolver creates a new Resolver. root is consulted for the
// #<rule>-cells metadata of referenced nodes.
func NewResolver(root *devtree.Node, table *symbols.Table, set *rules.RuleSet, opts ...Option) *Resolver {
	r := &Resolver{
		root:    root,
		symbols: table,
		rules:   set,
		config:  DefaultConfig(),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.symbols == nil {
		r.symbols = symbols.Build(root)
	}

	return r
}

// Run builds the symbol tables for root, rewrites the tree in place and
// returns what was found along the way.
func Run(root *devtree.Node, set *rules.RuleSet, opts ...Option) (*Result, error) {
	table := symbols.Build(root)
	r := NewResolver(root, table, set, opts...)

	for _, dup := range table.Duplicates() {
		r.diags.AddWarning(diagnostic.CodeDuplicatePhandle,
			fmt.Sprintf("phandle 0x%x is carried by %d nodes, using %s", dup.Phandle, len(dup.Paths), dup.Paths[len(dup.Paths)-1]),
			dup.Paths[0], devtree.PhandleProp)
	}

	r.Walk()

	res := &Result{
		Symbols:     table,
		Diagnostics: r.diags,
		Stats:       r.stats,
	}

	if r.config.Strict && res.Diagnostics.HasWarnings() {
		return res, fmt.Errorf("%w: %d warning(s)", ErrStrict, len(res.Diagnostics.Warnings))
	}

	return res, nil
}

// Diagnostics returns what has been recorded so far.
func (r *Resolver) Diagnostics() *diagnostic.Diagnostics {
	return &r.diags
}

// Stats returns the counters accumulated by Walk.
func (r *Resolver) Stats() Stats {
	return r.stats
}

// Walk rewrites every property of every node in place: list values are
// decoded through the rule set and string values are split into quoted
// literals. Other values are left untouched.
func (r *Resolver) Walk() {
	if r.root == nil {
		return
	}

	r.walkNode(r.root, "")
}

func (r *Resolver) walkNode(n *devtree.Node, path string) {
	where := devtree.CanonicalPath(path)

	for _, p := range n.Props() {
		switch p.Value.Kind {
		case devtree.KindList:
			r.stats.Lists++
			p.SetGroups(r.resolve(where, p.Name, p.Value))
		case devtree.KindString:
			r.stats.Split++
			p.SetLiterals(devtree.SplitStrings(p.Value.Str))
		}
	}

	for _, c := range n.Children() {
		r.walkNode(c, devtree.JoinPath(path, c.Name))
	}
}

// ResolveProperty decodes one property value. A property matching no rule
// comes back unchanged as a single group.
func (r *Resolver) ResolveProperty(name string, v devtree.Value) []devtree.Group {
	return r.resolve("", name, v)
}

func (r *Resolver) resolve(where, name string, v devtree.Value) []devtree.Group {
	rule := r.rules.Match(name)
	if rule == nil {
		return []devtree.Group{devtree.RawGroup(v)}
	}

	r.stats.Matched++
	r.logger.Debug("rule matched", "node", where, "property", name, "rule", rule.Name, "static", rule.Static())

	at := site{where: where, prop: name}
	vals := v.Elements()

	if rule.Static() {
		return r.decodeStatic(at, rule, vals)
	}

	return r.decodeDynamic(at, rule, vals)
}

// site identifies the property being decoded, for diagnostics.
type site struct {
	where string
	prop  string
}

func (r *Resolver) warn(s site, code, msg string) {
	r.logger.Debug("degraded", "node", s.where, "property", s.prop, "code", code, "detail", msg)
	r.diags.AddWarning(code, msg, s.where, s.prop)
}

// reference renders a phandle as "&label", or as a hex literal when the
// phandle is unknown.
func (r *Resolver) reference(s site, phandle uint64) devtree.Token {
	tok, ok := r.symbols.Reference(phandle)
	if !ok {
		r.warn(s, diagnostic.CodeDanglingPhandle, fmt.Sprintf("phandle 0x%x is not defined", phandle))
		return devtree.Hex(phandle)
	}

	return tok
}
