/*
Package prefix computes left-factoring plans for the alternatives of a non-terminal.

Building a Prefix Forest

The alternatives of a non-terminal are arranged in a forest of prefix nodes, with
one root per distinct first symbol. Alternatives sharing leading symbols share
the corresponding path of nodes. Every alternative is stored at the node which
is reached after consuming all but its last symbol.

Example:

    nt := lfactor.NewAlternatives("S",
        []string{"a", "b"},
        []string{"a", "b", "c"},
        []string{"a", "b", "d"},
    )
    tree, err := prefix.Build(nt)

This results in the following forest:

    a            [a b]
    └── b        [a b c] [a b d]

Alongside the forest, a factoring table maps group keys, i.e. shared prefixes,
to the alternatives filed under them.

Factoring Plans

Calling tree.FactoredOut() runs two passes over the forest and its table:

■ Chain contraction: a node holding a single alternative hands it over to its
parent, as a group of one is of no use for factoring.

■ Leftover reconciliation: an alternative which is an exact match of the prefix
of a longer group joins that group. It will become the epsilon branch of the
new non-terminal after factoring.

For the example above, the plan consists of a single group with key "ab",
holding all three alternatives:

    plan, err := tree.FactoredOut()
    plan.Dump()

    ab  (2)  [a b c] [a b d] [a b]

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package prefix

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lfactor.prefix'.
func tracer() tracing.Trace {
	return tracing.Select("lfactor.prefix")
}
