/*
Package lfactor is a toolbox for left-factoring context-free grammars.

Predictive (LL-style) parsers cannot decide between alternatives of a rule
which share a common leading sequence of symbols. Left-factoring rewrites
such a rule into the shared prefix followed by a new non-terminal for the
differing remainders. lfactor computes the factoring plan for this
transformation: which prefixes may be factored out, and which alternatives
belong to each of them. Package structure is as follows:

■ prefix: Package prefix implements the prefix forest for the alternatives of a
non-terminal, together with the passes producing a factoring plan.

■ grammar: Package grammar implements a small grammar model, which may be used
as input for package prefix.

■ grammar/ebnfin and notation: Readers for grammar files, either in EBNF or in a
compact BNF notation.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lfactor
