package network

import "github.com/katalvlaran/reachly/core"

// HasExtendedConnectionAtCompany reports whether anyone in start's
// extended network — start included, through any number of links —
// works at the company with the given name. The search stops at the
// first match; a nil start has no network and yields false.
//
// Each person's company is compared exactly once, at first visit, so
// shared sub-networks and cycles cost nothing extra.
func HasExtendedConnectionAtCompany(start *Professional, companyName string) bool {
	// 1. Nil start: defined result, no traversal.
	if start == nil {
		return false
	}

	// 2. Guarded walk over connections, matching on company.
	w := core.NewWalker(func(p *Professional) []*Professional {
		return p.Connections
	})

	return w.Walk(start, func(p *Professional) bool {
		return p.Company == companyName
	})
}
