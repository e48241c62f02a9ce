// Package dfs: cycle detection over core.Graph.
//
// DetectCycles records the cycle closed by each back edge that a
// depth-first search with three-color marking meets, and produces canonical
// minimal rotations of each cycle via Booth's algorithm in O(L) time.
// The final cycle list is sorted for deterministic output.
package dfs

import (
	"fmt"
	"sort"

	"github.com/riftline/procchain/core"
)

// DetectCycles inspects graph g for cycles, reporting one cycle per back
// edge found. It does not enumerate every simple cycle: a cycle whose
// closing edge reaches an already-finished (Black) node is not reported
// separately. Returns (true, cycles, nil) if any cycles are found; if
// none, returns (false, nil, nil). A nil graph is treated as cycle-free.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}

	nodes := g.Nodes()
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.NodeID
	}

	state := make(map[string]int, len(ids))
	path := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	var cycles [][]string

	for _, id := range ids {
		if state[id] == White {
			if err := dfsVisit(g, id, state, &path, seen, &cycles); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return JoinSig(cycles[i]) < JoinSig(cycles[j])
	})

	if len(cycles) == 0 {
		return false, nil, nil
	}

	return true, cycles, nil
}

// dfsVisit performs recursive DFS from id, recording any back-edge
// Gray→Gray cycle it encounters.
func dfsVisit(
	g *core.Graph,
	id string,
	state map[string]int,
	path *[]string,
	seen map[string]struct{},
	cycles *[][]string,
) error {
	state[id] = Gray
	*path = append(*path, id)

	for _, nbr := range g.Successors(id) {
		switch state[nbr] {
		case White:
			if err := dfsVisit(g, nbr, state, path, seen, cycles); err != nil {
				return err
			}
		case Gray:
			recordCycle(nbr, *path, seen, cycles)
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = Black

	return nil
}

// recordCycle extracts and deduplicates the cycle that ends at start.
// path is the current DFS path stack, containing [... start ... current].
func recordCycle(
	start string,
	path []string,
	seen map[string]struct{},
	cycles *[][]string,
) {
	idx := IndexOf(path, start)
	seq := append([]string(nil), path[idx:]...)
	seq = append(seq, start)

	sig, canon := canonical(seq)
	if _, exists := seen[sig]; !exists {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, canon)
	}
}

// canonical computes the lexicographically minimal rotation of cycle and
// its reversal, so the same cycle discovered from any entry point
// produces the same signature.
func canonical(cycle []string) (string, []string) {
	n := len(cycle) - 1
	base := cycle[:n]

	rotF := MinimalRotation(base)
	rotB := MinimalRotation(Reverse(base))

	picker := rotF
	if Compare(rotB, rotF) < 0 {
		picker = rotB
	}

	closed := append(append([]string(nil), picker...), picker[0])
	sig := JoinSig(closed)

	return sig, closed
}
