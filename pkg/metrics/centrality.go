package metrics

import "github.com/matzehuels/curricula/pkg/dag"

// Centrality returns, for every course, the sum of vertex lengths of all
// source-to-sink paths on which it is an interior vertex.
//
// A source has no incoming edges and a sink no outgoing edges; both always
// score 0, as do isolated courses. Every path is enumerated with a
// backtracking depth-first search driven by an explicit stack, so deep
// curricula do not grow the goroutine stack. The number of paths, and so the
// running time, can be exponential in the number of parallel branches.
func Centrality(g *dag.DAG) (map[string]int, error) {
	if _, err := TopologicalOrder(g, "centrality"); err != nil {
		return nil, err
	}

	courses := g.Courses()
	centrality := make(map[string]int, len(courses))
	for _, c := range courses {
		centrality[c] = 0
	}
	for _, c := range courses {
		if len(g.Incoming(c)) == 0 && len(g.Outgoing(c)) > 0 {
			walkPaths(g, c, centrality)
		}
	}
	return centrality, nil
}

type pathFrame struct {
	course string
	next   []string
	i      int
}

// walkPaths enumerates every simple path from source to a sink and credits
// each interior vertex with the length of the path.
func walkPaths(g *dag.DAG, source string, centrality map[string]int) {
	stack := []pathFrame{{course: source, next: g.Outgoing(source)}}
	onPath := map[string]bool{source: true}

	pop := func() {
		top := stack[len(stack)-1]
		delete(onPath, top.course)
		stack = stack[:len(stack)-1]
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if len(top.next) == 0 {
			n := len(stack)
			for _, f := range stack[1 : n-1] {
				centrality[f.course] += n
			}
			pop()
			continue
		}
		if top.i == len(top.next) {
			pop()
			continue
		}

		next := top.next[top.i]
		top.i++
		if onPath[next] {
			continue
		}
		onPath[next] = true
		stack = append(stack, pathFrame{course: next, next: g.Outgoing(next)})
	}
}
