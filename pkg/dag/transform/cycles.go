package transform

import "github.com/matzehuels/curricula/pkg/dag"

// FindCycle returns the courses of one cycle in g in edge order, starting
// and ending with the same course, or nil if g is acyclic. Edges run from a
// requisite to the course requiring it and include corequisite edges.
func FindCycle(g *dag.DAG) []string {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, g.CourseCount())
	var stack, cycle []string

	var dfs func(id string) bool
	dfs = func(id string) bool {
		color[id] = gray
		stack = append(stack, id)
		for _, next := range g.Outgoing(id) {
			switch color[next] {
			case white:
				if dfs(next) {
					return true
				}
			case gray:
				for i := len(stack) - 1; i >= 0; i-- {
					if stack[i] == next {
						cycle = append(append(cycle, stack[i:]...), next)
						return true
					}
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
		return false
	}

	for _, id := range g.Courses() {
		if color[id] == white && dfs(id) {
			return cycle
		}
	}
	return nil
}
