package metrics

import (
	"github.com/matzehuels/curricula/pkg/dag"
	cerrors "github.com/matzehuels/curricula/pkg/errors"
)

// TopologicalOrder returns every course of g ordered so that each requisite
// precedes the courses that depend on it.
//
// It runs Kahn's algorithm over the union of prerequisite and corequisite
// edges. Courses with no incoming edges are seeded in insertion order and
// neighbors are visited in sorted order, so the result is deterministic.
// If the order cannot include every course the graph has a cycle and a
// CYCLE_DETECTED error naming metric is returned.
func TopologicalOrder(g *dag.DAG, metric string) ([]string, error) {
	courses := g.Courses()
	indegree := make(map[string]int, len(courses))
	queue := make([]string, 0, len(courses))
	for _, c := range courses {
		indegree[c] = len(g.Incoming(c))
		if indegree[c] == 0 {
			queue = append(queue, c)
		}
	}

	order := make([]string, 0, len(courses))
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		order = append(order, c)
		for _, next := range g.Outgoing(c) {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(order) < len(courses) {
		return nil, cerrors.CycleDetected(metric)
	}
	return order, nil
}
