package prefix

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/lfactor"
)

// Factor builds a prefix tree for a non-terminal and returns its factoring plan.
func Factor(nt lfactor.NonTerminal, opts ...Option) (*Plan, error) {
	t, err := Build(nt, opts...)
	if err != nil {
		return nil, err
	}
	return t.FactoredOut()
}

// FactoredOut returns the factoring plan of the tree: all prefixes which may be
// factored out, together with the alternatives sharing them.
//
// FactoredOut rewrites the tree's factoring table in place and may be called only
// once per tree; subsequent calls return ErrAlreadyFactored.
func (t *Tree) FactoredOut() (*Plan, error) {
	if t.factored {
		return nil, ErrAlreadyFactored
	}
	t.factored = true
	t.contractChains()
	t.reconcileLeftovers()
	plan := &Plan{NonTerminal: t.NonTerminal}
	for _, g := range t.groups() {
		plan.Groups = append(plan.Groups, Group{
			Key:          g.key.String(),
			Prefix:       append([]string(nil), g.key...),
			Alternatives: alternativesOf(g.alts),
		})
	}
	tracer().Infof("%s: %d alternatives in %d factoring groups", t.NonTerminal, len(t.alts),
		len(plan.Groups))
	return plan, nil
}

// === Chain contraction =====================================================

// contractChains moves alternatives which are alone at a node up to the node's
// parent. Given
//
//    a b c  |  a b d  |  a b c e
//
// node b holds [a b c] and [a b d], node c holds [a b c e] alone. The latter is
// moved to b, yielding a group [a b c], [a b d], [a b c e] for key "ab".
//
// Nodes are visited in post-order, thus a chain of single-alternative nodes
// contracts one level at a time, every parent being examined after all of its
// children. The node list is computed before any mutation.
func (t *Tree) contractChains() {
	for _, node := range t.postorder() {
		if node.parent == nil || len(node.alts) != 1 {
			continue
		}
		ref := node.alts[0]
		node.parent.alts = append(node.parent.alts, ref)
		node.alts = nil
		childKey := node.Path() // key this node's alternatives are filed under
		parentKey := childKey.trim()
		tracer().Debugf("constellation: moving %v from %q to %q", ref, childKey, parentKey)
		t.unfile(childKey, ref)
		if t.group(childKey) != nil {
			panic("prefix tree: factoring table entry " + childKey.String() + " not empty after promotion")
		}
		t.file(parentKey, ref)
		if t.checks {
			t.verify()
		}
	}
}

// === Leftover reconciliation ===============================================

// reconcileLeftovers moves alternatives which are an exact match of a group key
// into that group. For
//
//    a b  |  a b c  |  a b d
//
// chain contraction leaves [a b] at key "a" and [a b c], [a b d] at key "ab".
// [a b] is a leftover of "ab" and joins it, to be factored out as the empty
// suffix.
//
// Keys are processed shortest first, which makes every move a single hop from
// the key one symbol shorter. The pass works on the factoring table only.
func (t *Tree) reconcileLeftovers() {
	keys := treeset.NewWith(keyComparator)
	for _, g := range t.groups() {
		keys.Add(g.key)
	}
	it := keys.Iterator()
	for it.Next() {
		key := it.Value().(Key)
		shorter := key.trim()
		if len(shorter) == 0 {
			continue
		}
		from := t.group(shorter)
		if from == nil {
			continue
		}
		if t.group(key) == nil {
			panic("prefix tree: factoring table lost entry " + key.String())
		}
		for _, ref := range from.alts {
			if key.equals(ref.names) {
				tracer().Debugf("leftover: moving %v from %q to %q", ref, shorter, key)
				t.unfile(shorter, ref)
				t.file(key, ref)
				if t.checks {
					t.verify()
				}
			}
		}
	}
}

// keyComparator orders keys by number of symbols. Keys of equal length are
// ordered by their symbols, to make traces reproducible.
func keyComparator(k1, k2 interface{}) int {
	a, b := k1.(Key), k2.(Key)
	if c := utils.IntComparator(len(a), len(b)); c != 0 {
		return c
	}
	return utils.StringComparator(a.id(), b.id())
}
