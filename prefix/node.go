package prefix

import (
	"fmt"
	"strings"

	"github.com/npillmayer/lfactor"
)

// --- Keys ------------------------------------------------------------------

// Key is a group key, i.e. the sequence of symbol names of a shared prefix.
// Key arithmetic works on symbols, not on characters, so that names of more
// than one character cannot produce ambiguous keys.
type Key []string

// String returns the signature of a key, i.e. the concatenation of its names.
func (k Key) String() string {
	return strings.Join(k, "")
}

// Len returns the number of symbols of a key.
func (k Key) Len() int {
	return len(k)
}

// trim returns k without its last symbol.
func (k Key) trim() Key {
	if len(k) == 0 {
		return k
	}
	return k[:len(k)-1]
}

// id is an unambiguous map key for k.
func (k Key) id() string {
	var b strings.Builder
	for _, n := range k {
		fmt.Fprintf(&b, "%d:%s", len(n), n)
	}
	return b.String()
}

func (k Key) equals(names []string) bool {
	if len(k) != len(names) {
		return false
	}
	for i := range k {
		if k[i] != names[i] {
			return false
		}
	}
	return true
}

// --- Alternatives ----------------------------------------------------------

// altRef is the tree's handle for an input alternative. Nodes and the factoring
// table share altRefs, and alternatives are moved around by pointer identity.
type altRef struct {
	serial int                 // position within the non-terminal
	alt    lfactor.Alternative // the unmodified input alternative
	names  []string            // symbol names of alt
}

func (r *altRef) String() string {
	return fmt.Sprintf("[%s]", strings.Join(r.names, " "))
}

func alternativesOf(refs []*altRef) []lfactor.Alternative {
	alts := make([]lfactor.Alternative, len(refs))
	for i, r := range refs {
		alts[i] = r.alt
	}
	return alts
}

func without(refs []*altRef, ref *altRef) []*altRef {
	for i, r := range refs {
		if r == ref {
			return append(refs[:i:i], refs[i+1:]...)
		}
	}
	return refs
}

// --- Prefix nodes ----------------------------------------------------------

// Node is a node within a prefix forest. It represents all the alternatives
// which agree on the symbols from the root down to this node.
type Node struct {
	Label    string    // name of the grammar symbol this node represents
	Depth    int       // number of symbols between a root and this node
	parent   *Node     // nil for roots; never owns the parent
	children []*Node   // in order of first occurrence
	alts     []*altRef // alternatives ending at this node
}

func newNode(label string, parent *Node) *Node {
	node := &Node{Label: label, parent: parent}
	if parent != nil {
		node.Depth = parent.Depth + 1
	}
	return node
}

// Parent returns the parent node, or nil for roots.
func (node *Node) Parent() *Node {
	return node.parent
}

// Children returns the child nodes, ordered by first occurrence of their labels.
func (node *Node) Children() []*Node {
	return node.children
}

// Alternatives returns the alternatives currently held by this node.
func (node *Node) Alternatives() []lfactor.Alternative {
	return alternativesOf(node.alts)
}

// Path returns the labels from the root of node's tree down to node.
func (node *Node) Path() Key {
	path := make(Key, node.Depth+1)
	for n := node; n != nil; n = n.parent {
		path[n.Depth] = n.Label
	}
	return path
}

// child finds a child by label.
func (node *Node) child(label string) *Node {
	for _, ch := range node.children {
		if ch.Label == label {
			return ch
		}
	}
	return nil
}

// childFor finds a child by label, creating it if not present.
func (node *Node) childFor(label string) *Node {
	if ch := node.child(label); ch != nil {
		return ch
	}
	ch := newNode(label, node)
	node.children = append(node.children, ch)
	return ch
}

func (node *Node) String() string {
	return fmt.Sprintf("<node %q @%d | %d alts>", node.Label, node.Depth, len(node.alts))
}
