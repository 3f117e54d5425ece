// Package metrics computes structural complexity metrics for a curriculum's
// prerequisite graph.
//
// # Overview
//
// Every metric treats prerequisite and corequisite edges as ordinary directed
// edges running from the requisite to the course that needs it. All of them
// require that graph to be acyclic; a cycle makes each computation fail with
// a CYCLE_DETECTED error naming the metric that found it.
//
// # Metrics
//
//   - Delay: the number of courses on the longest path through the graph that
//     includes the course. An isolated course has delay 1.
//   - Blocking: the number of distinct courses reachable downstream of the
//     course, excluding the course itself.
//   - Complexity: delay + blocking.
//   - Centrality: the sum of vertex lengths of every source-to-sink path that
//     passes through the course as an interior vertex. Sources and sinks always
//     score 0.
//
// [ComputeAll] runs all four and merges them into a [CurriculumMetrics] map.
//
// # Cost
//
// Delay, blocking and complexity are polynomial. Centrality enumerates every
// source-to-sink path and is exponential in the worst case on curricula with
// many parallel branches. The computation has no internal timeout; callers
// that need a bound impose one themselves (see pkg/pipeline).
//
// # Usage
//
//	m, err := metrics.ComputeAll(g)
//	if err != nil {
//	    return err // CYCLE_DETECTED or MISSING_KEY
//	}
//	fmt.Println(m["CS2500"].Complexity)
package metrics
