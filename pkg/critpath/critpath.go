// Package critpath extracts the critical path of a curriculum and builds the
// headline summary shown in reports.
//
// The critical path is the longest prerequisite chain ending at a course of
// maximum delay. It is traced greedily backwards: from the end course, step to
// the prerequisite with the highest delay until a course without
// prerequisites is reached. Equal delays resolve to the lexicographically
// smallest course ID, and among several maximum-delay end courses (tried in
// ID order) a later one wins only with a strictly longer trace. The result is
// fully deterministic.
//
// [Expand] turns each step into a corequisite group so the path reads the way
// students take the courses, e.g. "(CS1800+CS1802)" → "(CS2500+CS2501)" → "CS3500".
package critpath

import (
	"slices"
	"strings"

	"github.com/matzehuels/curricula/pkg/dag"
	"github.com/matzehuels/curricula/pkg/metrics"
)

// Trace returns the raw critical path from root course to the maximum-delay
// course, without corequisite grouping. It returns nil when m is empty.
func Trace(g *dag.DAG, m metrics.CurriculumMetrics) []string {
	maxDelay := 0
	for _, cm := range m {
		maxDelay = max(maxDelay, cm.Delay)
	}
	if maxDelay == 0 {
		return nil
	}

	var ends []string
	for id, cm := range m {
		if cm.Delay == maxDelay {
			ends = append(ends, id)
		}
	}
	slices.Sort(ends)

	var best []string
	for _, end := range ends {
		if path := traceBack(g, m, end); len(path) > len(best) {
			best = path
		}
	}
	return best
}

// traceBack follows the highest-delay prerequisite from start and returns the
// chain in root-first order.
func traceBack(g *dag.DAG, m metrics.CurriculumMetrics, start string) []string {
	path := []string{start}
	visited := map[string]bool{start: true}

	for current := start; ; {
		prereqs, _ := g.Prerequisites(current)
		next, found := "", false
		for _, p := range prereqs {
			if visited[p] {
				continue
			}
			if !found || m[p].Delay > m[next].Delay || (m[p].Delay == m[next].Delay && p < next) {
				next, found = p, true
			}
		}
		if !found {
			break
		}
		visited[next] = true
		path = append(path, next)
		current = next
	}

	slices.Reverse(path)
	return path
}

// Expand groups every step of path with its corequisites. Members are taken
// from both directions of the corequisite relation and must belong to plan;
// a nil plan admits every course of g. A course already placed in an earlier
// group is not repeated. Groups list the path course first and the rest in
// ID order, formatted as "(A+B+C)"; a lone course is its bare ID.
func Expand(g *dag.DAG, path, plan []string) []string {
	inPlan := func(id string) bool { return g.Contains(id) }
	if plan != nil {
		set := make(map[string]bool, len(plan))
		for _, id := range plan {
			set[id] = true
		}
		inPlan = func(id string) bool { return set[id] }
	}

	seen := make(map[string]bool)
	expanded := make([]string, 0, len(path))
	for _, course := range path {
		if seen[course] {
			continue
		}
		seen[course] = true

		var partners []string
		coreqs, _ := g.Corequisites(course)
		coreqDeps, _ := g.CorequisiteDependents(course)
		for _, c := range slices.Concat(coreqs, coreqDeps) {
			if !seen[c] && inPlan(c) {
				seen[c] = true
				partners = append(partners, c)
			}
		}

		if len(partners) == 0 {
			expanded = append(expanded, course)
			continue
		}
		slices.Sort(partners)
		expanded = append(expanded, "("+course+"+"+strings.Join(partners, "+")+")")
	}
	return expanded
}

// Path returns the critical path of g with corequisite grouping applied.
func Path(g *dag.DAG, m metrics.CurriculumMetrics, plan []string) []string {
	return Expand(g, Trace(g, m), plan)
}
