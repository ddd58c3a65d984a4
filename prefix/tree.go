package prefix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/lfactor"
)

// ErrAlreadyFactored is returned if a factoring plan is requested twice from the
// same tree.
var ErrAlreadyFactored = errors.New("prefix tree has already been factored")

// Tree is a prefix forest for the alternatives of a single non-terminal.
// Create one with Build.
//
// A tree is not safe for concurrent use.
type Tree struct {
	NonTerminal string             // name of the non-terminal this tree is built from
	roots       *linkedhashmap.Map // first symbol name -> *Node, in order of occurrence
	table       *linkedhashmap.Map // Key.id() -> *group, the factoring table
	alts        []*altRef          // all alternatives, in input order
	checks      bool               // verify invariants after each mutation
	factored    bool               // FactoredOut() has been called
}

// group is an entry of the factoring table.
type group struct {
	key  Key
	alts []*altRef
}

// Option configures a prefix tree.
type Option func(t *Tree)

// CheckInvariants sets or clears invariant checking. If set (the default), the tree
// verifies after each mutation that every alternative is held by exactly one
// node and exactly one table entry. Violations panic.
func CheckInvariants(b bool) Option {
	return func(t *Tree) {
		t.checks = b
	}
}

// Build creates a prefix forest from the alternatives of a non-terminal.
// The non-terminal's alternatives are iterated once and are not modified.
//
// Build returns an error wrapping lfactor.ErrInvalidAlternative if the non-terminal
// is nil or any of its alternatives is empty.
func Build(nt lfactor.NonTerminal, opts ...Option) (*Tree, error) {
	if nt == nil {
		return nil, fmt.Errorf("cannot build prefix tree without non-terminal: %w",
			lfactor.ErrInvalidAlternative)
	}
	t := &Tree{
		NonTerminal: nt.Name(),
		roots:       linkedhashmap.New(),
		table:       linkedhashmap.New(),
		checks:      true,
	}
	for _, opt := range opts {
		opt(t)
	}
	tracer().Debugf("=== build prefix tree for %s ===========================", t.NonTerminal)
	var err error
	nt.EachAlternative(func(alt lfactor.Alternative) {
		if err != nil {
			return
		}
		if alt == nil || alt.Len() == 0 {
			err = fmt.Errorf("%s: alternative #%d is empty: %w", t.NonTerminal, len(t.alts),
				lfactor.ErrInvalidAlternative)
			return
		}
		t.insert(alt)
	})
	if err != nil {
		tracer().Errorf(err.Error())
		return nil, err
	}
	return t, nil
}

// insert walks an alternative down the forest, creating nodes as needed.
// The last symbol is never consumed: the alternative is stored at the node
// reached after all but its last symbol.
func (t *Tree) insert(alt lfactor.Alternative) {
	ref := &altRef{serial: len(t.alts), alt: alt, names: lfactor.Names(alt)}
	t.alts = append(t.alts, ref)
	node := t.rootFor(ref.names[0])
	for i := 1; i < len(ref.names)-1; i++ {
		node = node.childFor(ref.names[i])
	}
	node.alts = append(node.alts, ref)
	key := Key(ref.names[:len(ref.names)-1])
	if len(ref.names) == 1 {
		key = Key(ref.names)
	}
	tracer().Debugf("alternative %v ends at %v, key = %q", ref, node, key)
	t.file(key, ref)
	if t.checks {
		if !key.equals(node.Path()) {
			panic(fmt.Sprintf("prefix tree: key %q does not match path of %v", key, node))
		}
		t.verify()
	}
}

func (t *Tree) rootFor(name string) *Node {
	if r, found := t.roots.Get(name); found {
		return r.(*Node)
	}
	root := newNode(name, nil)
	t.roots.Put(name, root)
	return root
}

// --- Factoring table -------------------------------------------------------

func (t *Tree) group(key Key) *group {
	if g, found := t.table.Get(key.id()); found {
		return g.(*group)
	}
	return nil
}

// file appends an alternative to the table entry for key, creating the entry if absent.
func (t *Tree) file(key Key, ref *altRef) {
	g := t.group(key)
	if g == nil {
		g = &group{key: key}
		t.table.Put(key.id(), g)
	}
	g.alts = append(g.alts, ref)
}

// unfile removes an alternative from the table entry for key. Entries losing
// their last alternative are deleted. Unfiling from a missing entry is a logic
// error and panics.
func (t *Tree) unfile(key Key, ref *altRef) {
	g := t.group(key)
	if g == nil {
		panic(fmt.Sprintf("prefix tree: factoring table has no entry %q for %v", key, ref))
	}
	n := len(g.alts)
	g.alts = without(g.alts, ref)
	if len(g.alts) == n {
		panic(fmt.Sprintf("prefix tree: %v is not filed under %q", ref, key))
	}
	if len(g.alts) == 0 {
		t.table.Remove(key.id())
	}
}

// groups returns the table entries in table order.
func (t *Tree) groups() []*group {
	values := t.table.Values()
	groups := make([]*group, len(values))
	for i, v := range values {
		groups[i] = v.(*group)
	}
	return groups
}

// verify checks that every alternative is held by exactly one node and filed in
// exactly one non-empty table entry.
func (t *Tree) verify() {
	inNodes := make([]int, len(t.alts))
	for _, node := range t.postorder() {
		for _, ref := range node.alts {
			inNodes[ref.serial]++
		}
	}
	inTable := make([]int, len(t.alts))
	for _, g := range t.groups() {
		if len(g.alts) == 0 || len(g.key) == 0 {
			panic(fmt.Sprintf("prefix tree: factoring table entry %q is empty", g.key))
		}
		for _, ref := range g.alts {
			inTable[ref.serial]++
		}
	}
	for _, ref := range t.alts {
		if inNodes[ref.serial] != 1 || inTable[ref.serial] != 1 {
			panic(fmt.Sprintf("prefix tree: %v held by %d nodes and %d table entries",
				ref, inNodes[ref.serial], inTable[ref.serial]))
		}
	}
}

// --- Traversal -------------------------------------------------------------

// Roots returns the roots of the forest, in order of first occurrence.
func (t *Tree) Roots() []*Node {
	values := t.roots.Values()
	roots := make([]*Node, len(values))
	for i, v := range values {
		roots[i] = v.(*Node)
	}
	return roots
}

// Root returns the root node for a first-symbol name. If no alternative starts
// with this symbol, Root returns (nil, false).
func (t *Tree) Root(name string) (*Node, bool) {
	if r, found := t.roots.Get(name); found {
		return r.(*Node), true
	}
	return nil, false
}

// AlternativesAt searches the sub-tree of start for nodes with a given label and
// returns their alternatives. If start itself matches, its alternatives are
// returned without descending. Matches in different branches are concatenated in
// child order. If no node matches, an empty slice is returned.
func (t *Tree) AlternativesAt(start *Node, label string) []lfactor.Alternative {
	alts := []lfactor.Alternative{}
	if start == nil {
		return alts
	}
	stack := []*Node{start}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.Label == label {
			alts = append(alts, node.Alternatives()...)
			continue
		}
		for i := len(node.children) - 1; i >= 0; i-- {
			stack = append(stack, node.children[i])
		}
	}
	return alts
}

// postorder lists all nodes of the forest, children before their parents.
func (t *Tree) postorder() []*Node {
	type frame struct {
		node    *Node
		visited bool
	}
	var nodes []*Node
	for _, root := range t.Roots() {
		stack := []frame{{node: root}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.visited {
				nodes = append(nodes, top.node)
				continue
			}
			stack = append(stack, frame{node: top.node, visited: true})
			for i := len(top.node.children) - 1; i >= 0; i-- {
				stack = append(stack, frame{node: top.node.children[i]})
			}
		}
	}
	return nodes
}

// Dump is a debugging helper. It traces the forest at debug level.
func (t *Tree) Dump() {
	tracer().Debugf("--- prefix tree %s ------------", t.NonTerminal)
	for _, root := range t.Roots() {
		dumpNode(root)
	}
	tracer().Debugf("-------------------------------")
}

func dumpNode(node *Node) {
	indent := strings.Repeat("    ", node.Depth)
	tracer().Debugf("%s%s  %v", indent, node.Label, node.alts)
	for _, ch := range node.children {
		dumpNode(ch)
	}
}
