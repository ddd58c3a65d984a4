package prefix

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/lfactor"
)

// Plan is a factoring plan for a non-terminal. Groups are ordered by the first
// occurrence of their prefixes in the prefix forest.
type Plan struct {
	NonTerminal string
	Groups      []Group
}

// Group is a shared prefix, together with the alternatives starting with it.
// Groups with more than one alternative are candidates for left-factoring.
type Group struct {
	Key          string                // signature of the prefix
	Prefix       []string              // symbol names of the prefix
	Alternatives []lfactor.Alternative // in order of assignment
}

// Len returns the number of leading symbols the alternatives of g share.
func (g Group) Len() int {
	return len(g.Prefix)
}

// Leftovers returns the alternatives of g which consist of the prefix only.
// After factoring, they will produce the empty suffix.
func (g Group) Leftovers() []lfactor.Alternative {
	var alts []lfactor.Alternative
	for _, alt := range g.Alternatives {
		if Key(g.Prefix).equals(lfactor.Names(alt)) {
			alts = append(alts, alt)
		}
	}
	return alts
}

func (g Group) String() string {
	alts := make([]string, len(g.Alternatives))
	for i, alt := range g.Alternatives {
		alts[i] = fmt.Sprintf("[%s]", strings.Join(lfactor.Names(alt), " "))
	}
	return fmt.Sprintf("%s  (%d)  %s", g.Key, g.Len(), strings.Join(alts, " "))
}

// Map returns the plan as a mapping from group keys to alternatives.
// If symbol names make two prefixes concatenate to the same key, their
// alternatives are merged.
func (p *Plan) Map() map[string][]lfactor.Alternative {
	m := make(map[string][]lfactor.Alternative, len(p.Groups))
	for _, g := range p.Groups {
		m[g.Key] = append(m[g.Key], g.Alternatives...)
	}
	return m
}

// Group returns the group with a given key, if present.
func (p *Plan) Group(key string) (Group, bool) {
	for _, g := range p.Groups {
		if g.Key == key {
			return g, true
		}
	}
	return Group{}, false
}

// Lookup returns the group for a prefix given as a sequence of symbol names.
func (p *Plan) Lookup(prefix ...string) (Group, bool) {
	for _, g := range p.Groups {
		if Key(g.Prefix).equals(prefix) {
			return g, true
		}
	}
	return Group{}, false
}

// Size returns the number of alternatives in the plan.
func (p *Plan) Size() int {
	n := 0
	for _, g := range p.Groups {
		n += len(g.Alternatives)
	}
	return n
}

// Factorable returns the groups with more than one alternative.
func (p *Plan) Factorable() []Group {
	var groups []Group
	for _, g := range p.Groups {
		if len(g.Alternatives) > 1 {
			groups = append(groups, g)
		}
	}
	return groups
}

// Fingerprint returns a hash over the plan's groups and the symbols of their
// alternatives. Plans computed from the same input produce the same fingerprint.
func (p *Plan) Fingerprint() (string, error) {
	type fpGroup struct {
		Prefix       []string
		Alternatives [][]string
	}
	fp := struct {
		NonTerminal string
		Groups      []fpGroup
	}{NonTerminal: p.NonTerminal}
	for _, g := range p.Groups {
		fg := fpGroup{Prefix: g.Prefix}
		for _, alt := range g.Alternatives {
			fg.Alternatives = append(fg.Alternatives, lfactor.Names(alt))
		}
		fp.Groups = append(fp.Groups, fg)
	}
	return structhash.Hash(fp, 1)
}

// Dump is a debugging helper. It traces the plan at debug level.
func (p *Plan) Dump() {
	tracer().Debugf("--- factoring plan %s ---------", p.NonTerminal)
	for _, g := range p.Groups {
		tracer().Debugf("%v", g)
	}
	tracer().Debugf("-------------------------------")
}
