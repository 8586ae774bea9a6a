// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

// convertInPlace reorders a sequential placed stream so it can be applied
// in place over a single buffer (§4.8). The conflict graph has one node per
// command; a directed edge runs from COPY command i to any command j
// (COPY or ADD, j != i) whose destination range overlaps i's source range,
// meaning i must execute before j's write clobbers the bytes i still needs
// to read. ADD commands have no source dependency and so never originate an
// edge, which means they can never participate in a cycle.
//
// A schedule respecting every edge is a topological sort of this graph. The
// graph is acyclic whenever no COPY's source range overlaps a destination
// range it also (transitively) depends on; cycles are broken by demoting
// offending COPYs to literal ADDs (materializing the bytes from r) per the
// chosen PlacementPolicy, then re-sorting.
func convertInPlace(r []byte, seq []PlacedCommand, policy PlacementPolicy) ([]PlacedCommand, int, error) {
	work := make([]PlacedCommand, len(seq))
	copy(work, seq)

	cyclesBroken := 0

	// Each iteration demotes at least one COPY per remaining cycle, so the
	// loop terminates in at most len(work) iterations; this bound is a
	// defensive guard against a conflict-graph construction bug, not a
	// condition expected to trigger.
	for guard := 0; ; guard++ {
		if guard > len(work) {
			return nil, cyclesBroken, ErrCycleUnresolvable
		}

		adj := buildConflictGraph(work)
		sccs := tarjanSCC(adj)

		multi := multiNodeSCCs(sccs)
		if len(multi) == 0 {
			break
		}

		switch policy {
		case PolicyConstant:
			for _, scc := range multi {
				for _, id := range scc {
					if work[id].Kind == KindCopy {
						work[id] = demoteToAdd(r, work[id])
						cyclesBroken++
					}
				}
			}
		default: // PolicyLocalMin
			for _, scc := range multi {
				cheapest := cheapestCopyIn(work, scc)
				if cheapest < 0 {
					// No COPY left to demote; the SCC must already be
					// resolved by an earlier demotion in this pass.
					continue
				}
				work[cheapest] = demoteToAdd(r, work[cheapest])
				cyclesBroken++
			}
		}
	}

	order := topoSort(buildConflictGraph(work), len(work))
	result := make([]PlacedCommand, len(work))
	for i, id := range order {
		result[i] = work[id]
	}
	return result, cyclesBroken, nil
}

// buildConflictGraph enumerates read-before-write edges using an
// intervalIndex over destination ranges so construction costs O(n log n)
// rather than O(n²) (§4.8).
func buildConflictGraph(cmds []PlacedCommand) [][]int {
	dstIntervals := make([]interval, len(cmds))
	for i, c := range cmds {
		start, end := c.dstRange()
		dstIntervals[i] = interval{Start: start, End: end, ID: i}
	}
	ix := newIntervalIndex(dstIntervals)

	adj := make([][]int, len(cmds))
	for i, c := range cmds {
		start, end, ok := c.srcRange()
		if !ok {
			continue
		}
		ix.queryOverlapping(start, end, i, func(j int) {
			adj[i] = append(adj[i], j)
		})
	}
	return adj
}

// tarjanSCC returns the strongly connected components of adj, each as a
// slice of node ids, in no particular order.
func tarjanSCC(adj [][]int) [][]int {
	n := len(adj)
	indices := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range indices {
		indices[i] = -1
	}

	var index int
	var stack []int
	var sccs [][]int

	var strongconnect func(v int)
	strongconnect = func(v int) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range adj[v] {
			if indices[w] == -1 {
				strongconnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] {
				if indices[w] < lowlink[v] {
					lowlink[v] = indices[w]
				}
			}
		}

		if lowlink[v] == indices[v] {
			var scc []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for v := 0; v < n; v++ {
		if indices[v] == -1 {
			strongconnect(v)
		}
	}
	return sccs
}

// multiNodeSCCs filters sccs down to the ones with more than one node,
// i.e. the ones containing an actual cycle (a single self-loop-free node
// can never be its own SCC member here since buildConflictGraph excludes
// self edges).
func multiNodeSCCs(sccs [][]int) [][]int {
	var out [][]int
	for _, scc := range sccs {
		if len(scc) > 1 {
			out = append(out, scc)
		}
	}
	return out
}

// cheapestCopyIn returns the id within scc of the COPY command with the
// smallest output length, or -1 if scc contains no COPY.
func cheapestCopyIn(cmds []PlacedCommand, scc []int) int {
	best := -1
	var bestLen uint64
	for _, id := range scc {
		if cmds[id].Kind != KindCopy {
			continue
		}
		l := cmds[id].outputLen()
		if best < 0 || l < bestLen {
			best = id
			bestLen = l
		}
	}
	return best
}

// demoteToAdd converts a COPY command into an ADD carrying the literal
// bytes it would have copied from r, breaking any dependency it had on
// another command's write.
func demoteToAdd(r []byte, c PlacedCommand) PlacedCommand {
	data := make([]byte, c.Length)
	copy(data, r[c.SrcOffset:c.SrcOffset+c.Length])
	return PlacedCommand{Kind: KindAdd, Dst: c.Dst, Data: data}
}

// topoSort returns a node ordering for adj (guaranteed acyclic by the
// caller) via Kahn's algorithm, tie-broken by node id so that two
// executions over the same graph always produce the same schedule.
func topoSort(adj [][]int, n int) []int {
	indegree := make([]int, n)
	for _, edges := range adj {
		for _, w := range edges {
			indegree[w]++
		}
	}

	ready := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indegree[v] == 0 {
			ready = append(ready, v)
		}
	}

	order := make([]int, 0, n)
	for len(ready) > 0 {
		// Pop the smallest-id ready node to keep the result deterministic.
		minIdx := 0
		for i := 1; i < len(ready); i++ {
			if ready[i] < ready[minIdx] {
				minIdx = i
			}
		}
		v := ready[minIdx]
		ready = append(ready[:minIdx], ready[minIdx+1:]...)

		order = append(order, v)
		for _, w := range adj[v] {
			indegree[w]--
			if indegree[w] == 0 {
				ready = append(ready, w)
			}
		}
	}

	return order
}
