// Package network applies the guarded depth-first walk to a labeled
// connection network: Professionals linked to other Professionals,
// each carrying the name of the company they work for.
//
// What:
//
//   - Professional: a network node with a Name, a Company, and a slice
//     of Connections. Identity is the pointer, like core.Vertex; mutual
//     connections and arbitrary cycles are legal.
//   - HasExtendedConnectionAtCompany: does anyone in the extended
//     network (the start included, through any number of links) work at
//     the given company?
//
// Contracts:
//
// Same total, read-only contract as the reach queries: a nil start is
// false, no input is ever mutated, and any network shape — cycles,
// mutual links, disconnected clusters — terminates. Each person's
// company is tested exactly once, at first visit.
//
// Complexity:
//
//   - HasExtendedConnectionAtCompany: Time O(V+E) over the reachable
//     network, Memory O(V); stops at the first match.
package network
