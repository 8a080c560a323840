package order

import (
	"sort"

	"github.com/modhearth/modorder/internal/domain/component"
)

// depGraph is an arena-indexed dependency graph. References are mapped
// to dense integer ids assigned in ascending (mod id, comp key) order,
// so ascending id order is exactly the deterministic tie-break order
// and no reference comparisons happen inside the sort loop.
type depGraph struct {
	refs     []component.Reference       // id -> reference, ascending
	index    map[component.Reference]int // reference -> id
	succ     []map[int]struct{}          // edges: before -> set of after
	inDegree []int
}

func newDepGraph(nodes component.Set) *depGraph {
	refs := nodes.Sorted()
	index := make(map[component.Reference]int, len(refs))
	for id, ref := range refs {
		index[ref] = id
	}
	return &depGraph{
		refs:     refs,
		index:    index,
		succ:     make([]map[int]struct{}, len(refs)),
		inDegree: make([]int, len(refs)),
	}
}

// addEdge records that before installs ahead of after. Endpoints outside
// the node set and self edges are ignored; a repeated edge increments
// the in-degree only once.
func (g *depGraph) addEdge(before, after component.Reference) {
	b, ok := g.index[before]
	if !ok {
		return
	}
	a, ok := g.index[after]
	if !ok || a == b {
		return
	}

	if g.succ[b] == nil {
		g.succ[b] = make(map[int]struct{})
	}
	if _, dup := g.succ[b][a]; dup {
		return
	}
	g.succ[b][a] = struct{}{}
	g.inDegree[a]++
}

// sort runs Kahn's algorithm with the ready set kept in ascending id
// order: the smallest ready node is always placed next, so the visiting
// order depends only on the composite key, never on edge insertion
// order. Nodes left unresolved after the ready set drains are cyclic;
// they are appended in ascending order and counted in the second return
// value. The result always covers every node.
func (g *depGraph) sort() ([]component.Reference, int) {
	inDegree := append([]int(nil), g.inDegree...)

	ready := make([]int, 0, len(g.refs))
	for id, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, id)
		}
	}

	result := make([]component.Reference, 0, len(g.refs))
	placed := make([]bool, len(g.refs))

	for len(ready) > 0 {
		current := ready[0]
		ready = ready[1:]
		result = append(result, g.refs[current])
		placed[current] = true

		for _, successor := range sortedIDs(g.succ[current]) {
			inDegree[successor]--
			if inDegree[successor] == 0 {
				ready = insertSorted(ready, successor)
			}
		}
	}

	unresolved := len(g.refs) - len(result)
	if unresolved > 0 {
		// Cycle fallback: the remainder in ascending key order.
		for id, done := range placed {
			if !done {
				result = append(result, g.refs[id])
			}
		}
	}

	return result, unresolved
}

func sortedIDs(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func insertSorted(ids []int, id int) []int {
	at := sort.SearchInts(ids, id)
	ids = append(ids, 0)
	copy(ids[at+1:], ids[at:])
	ids[at] = id
	return ids
}
