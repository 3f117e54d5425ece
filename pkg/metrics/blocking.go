package metrics

import "github.com/matzehuels/curricula/pkg/dag"

// Blocking returns the blocking factor of every course: the number of
// distinct courses reachable through dependent and corequisite-dependent
// edges, not counting the course itself.
func Blocking(g *dag.DAG) (map[string]int, error) {
	if _, err := TopologicalOrder(g, "blocking"); err != nil {
		return nil, err
	}

	blocking := make(map[string]int, g.CourseCount())
	for _, c := range g.Courses() {
		blocking[c] = reachable(g, c)
	}
	return blocking, nil
}

// reachable counts the courses downstream of start with a breadth-first walk.
func reachable(g *dag.DAG, start string) int {
	seen := map[string]bool{start: true}
	queue := []string{start}
	count := 0
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, next := range g.Outgoing(c) {
			if seen[next] {
				continue
			}
			seen[next] = true
			count++
			queue = append(queue, next)
		}
	}
	return count
}
