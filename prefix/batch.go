package prefix

import (
	"sync"

	"github.com/npillmayer/lfactor"
)

// FactorAll computes factoring plans for a number of non-terminals. Every
// non-terminal gets a tree of its own and trees share no state, so they are
// factored concurrently.
//
// Plans are returned by non-terminal name. If factoring fails for any of the
// non-terminals, the error of the first one (in input order) is returned.
func FactorAll(nts []lfactor.NonTerminal, opts ...Option) (map[string]*Plan, error) {
	plans := make([]*Plan, len(nts))
	errs := make([]error, len(nts))
	var wg sync.WaitGroup
	for i, nt := range nts {
		wg.Add(1)
		go func(i int, nt lfactor.NonTerminal) {
			defer wg.Done()
			plans[i], errs[i] = Factor(nt, opts...)
		}(i, nt)
	}
	wg.Wait()
	result := make(map[string]*Plan, len(nts))
	for i, plan := range plans {
		if errs[i] != nil {
			return nil, errs[i]
		}
		result[plan.NonTerminal] = plan
	}
	return result, nil
}
