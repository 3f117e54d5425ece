package transform

import "github.com/matzehuels/curricula/pkg/dag"

// Edge is a prerequisite edge: To requires From.
type Edge struct {
	From string
	To   string
}

// RedundantPrerequisites returns the prerequisite edges of g that are implied
// by another path, in course order. An edge p → c is redundant when some
// other course reached directly from p reaches c.
//
// Reachability is computed with one DFS per course, so the cost is
// O(V·(V+E)) time and O(V²) space. g must be acyclic.
func RedundantPrerequisites(g *dag.DAG) []Edge {
	courses := g.Courses()
	if len(courses) == 0 {
		return nil
	}

	index := make(map[string]int, len(courses))
	for i, id := range courses {
		index[id] = i
	}
	adjacency := make([][]int, len(courses))
	for i, id := range courses {
		for _, next := range g.Outgoing(id) {
			adjacency[i] = append(adjacency[i], index[next])
		}
	}
	reachable := computeReachability(adjacency)

	var redundant []Edge
	for _, course := range courses {
		dst := index[course]
		prereqs, _ := g.Prerequisites(course)
		for _, p := range prereqs {
			for _, via := range adjacency[index[p]] {
				if via != dst && reachable[via][dst] {
					redundant = append(redundant, Edge{From: p, To: course})
					break
				}
			}
		}
	}
	return redundant
}

// Reduce returns a copy of g without its redundant prerequisite edges.
// Courses keep their order and every corequisite edge is kept.
func Reduce(g *dag.DAG) *dag.DAG {
	skip := make(map[Edge]bool)
	for _, e := range RedundantPrerequisites(g) {
		skip[e] = true
	}

	out := dag.New()
	for _, id := range g.Courses() {
		_ = out.AddCourse(id)
	}
	for _, id := range g.Courses() {
		prereqs, _ := g.Prerequisites(id)
		for _, p := range prereqs {
			if !skip[Edge{From: p, To: id}] {
				_ = out.AddPrerequisite(id, p)
			}
		}
		coreqs, _ := g.Corequisites(id)
		for _, co := range coreqs {
			_ = out.AddCorequisite(id, co)
		}
	}
	return out
}

func computeReachability(adjacency [][]int) [][]bool {
	n := len(adjacency)
	reachable := make([][]bool, n)
	for i := range reachable {
		reachable[i] = make([]bool, n)
	}

	var dfs func(source, current int)
	dfs = func(source, current int) {
		if reachable[source][current] {
			return
		}
		reachable[source][current] = true
		for _, next := range adjacency[current] {
			dfs(source, next)
		}
	}

	for i := range reachable {
		dfs(i, i)
	}
	return reachable
}
