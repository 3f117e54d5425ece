package metrics

import "github.com/matzehuels/curricula/pkg/dag"

// Delay returns the delay factor of every course: the vertex count of the
// longest path through the graph that contains it.
//
// delay(c) = longestTo(c) + longestFrom(c) + 1, where longestTo is the
// longest chain of requisites ending at c and longestFrom the longest chain
// of dependents starting at c. Both are filled by dynamic programming over
// the topological order.
func Delay(g *dag.DAG) (map[string]int, error) {
	order, err := TopologicalOrder(g, "delay")
	if err != nil {
		return nil, err
	}

	longestTo := make(map[string]int, len(order))
	for _, c := range order {
		best := 0
		for _, p := range g.Incoming(c) {
			best = max(best, longestTo[p]+1)
		}
		longestTo[c] = best
	}

	longestFrom := make(map[string]int, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		c := order[i]
		best := 0
		for _, d := range g.Outgoing(c) {
			best = max(best, longestFrom[d]+1)
		}
		longestFrom[c] = best
	}

	delay := make(map[string]int, len(order))
	for _, c := range order {
		delay[c] = longestTo[c] + longestFrom[c] + 1
	}
	return delay, nil
}
