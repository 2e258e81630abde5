package core

// Walker performs a visited-guarded depth-first walk over vertices of
// comparable type N — *Vertex[T] pointers for node graphs, ints for
// map graphs.
//
// The visited set is private to the Walker and keyed on N itself, so
// node-graph walks deduplicate by pointer identity and map-graph walks
// by id. Create a fresh Walker per top-level query; a Walker is not
// reusable across unrelated walks and not safe for concurrent use.
type Walker[N comparable] struct {
	visited   map[N]struct{} // vertices already processed in this walk
	neighbors func(N) []N    // expansion: successors of a vertex
}

// NewWalker returns a Walker that expands vertices via neighbors.
// The expansion func may return nil for a vertex with no successors.
func NewWalker[N comparable](neighbors func(N) []N) *Walker[N] {
	return &Walker[N]{
		visited:   make(map[N]struct{}),
		neighbors: neighbors,
	}
}

// Walk explores every vertex reachable from start, invoking visit
// exactly once per vertex at its first discovery, pre-order. If visit
// returns true the walk stops immediately and Walk reports true;
// otherwise the walk runs to exhaustion and reports false.
//
// The guard-mark-visit-expand order makes each vertex's effect fire at
// most once even on cyclic graphs: a vertex is marked before any of
// its successors are expanded, so self-loops, mutual references and
// diamonds all terminate.
//
// Walk may be called repeatedly on one Walker to continue a search from
// additional roots against the same visited set.
func (w *Walker[N]) Walk(start N, visit func(N) bool) bool {
	// 1. Guard: a vertex already processed contributes nothing more.
	if _, seen := w.visited[start]; seen {
		return false
	}

	// 2. Mark before expanding, so cycles cannot re-enter.
	w.visited[start] = struct{}{}

	// 3. Apply the per-query side effect; true short-circuits.
	if visit(start) {
		return true
	}

	// 4. Expand unvisited successors depth-first.
	for _, nb := range w.neighbors(start) {
		if w.Walk(nb, visit) {
			return true
		}
	}

	return false
}

// Visited reports whether n has been processed by this Walker.
func (w *Walker[N]) Visited(n N) bool {
	_, ok := w.visited[n]

	return ok
}

// VisitedCount returns how many vertices this Walker has processed.
// Useful as a diagnostic: on a fully explored walk it equals the size
// of the reachable subgraph.
func (w *Walker[N]) VisitedCount() int {
	return len(w.visited)
}
