package dag

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrInvalidCourseID is returned by [DAG.AddCourse] and the edge builders
	// when a course identifier is empty.
	ErrInvalidCourseID = errors.New("course ID must not be empty")

	// ErrSelfRequisite is returned by [DAG.AddPrerequisite] and
	// [DAG.AddCorequisite] when a course is listed as its own requisite.
	ErrSelfRequisite = errors.New("course cannot be its own requisite")

	// ErrGraphHasCycle is returned by [DAG.Validate] when a cycle is detected.
	// Cycles are detected using depth-first search with white/gray/black coloring
	// over prerequisite and corequisite edges.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// DAG is the prerequisite graph of a curriculum.
//
// It keeps four adjacency maps keyed by course identifier:
//
//   - prerequisites: course -> courses it requires
//   - dependents: course -> courses that require it (reverse of prerequisites)
//   - corequisites: course -> courses it must be taken alongside
//   - coreqDependents: course -> courses that list it as a corequisite
//
// Every edge insertion updates the forward and reverse maps together, and a
// course added to the graph always has an entry (possibly empty) in all four.
// Course order is insertion order, which keeps every traversal deterministic.
//
// The zero value is not usable - use New to create a valid DAG instance.
// DAG is mutable only while it is being built; analysis code treats it as
// read-only. It is not safe for concurrent mutation.
type DAG struct {
	courses         []string
	index           map[string]int
	prerequisites   map[string][]string
	dependents      map[string][]string
	corequisites    map[string][]string
	coreqDependents map[string][]string
}

// New creates an empty DAG.
func New() *DAG {
	return &DAG{
		index:           make(map[string]int),
		prerequisites:   make(map[string][]string),
		dependents:      make(map[string][]string),
		corequisites:    make(map[string][]string),
		coreqDependents: make(map[string][]string),
	}
}

// AddCourse adds a course to the graph. Adding an existing course is a no-op.
// Returns ErrInvalidCourseID if id is empty.
func (d *DAG) AddCourse(id string) error {
	if id == "" {
		return ErrInvalidCourseID
	}
	if _, ok := d.index[id]; ok {
		return nil
	}
	d.index[id] = len(d.courses)
	d.courses = append(d.courses, id)
	d.prerequisites[id] = []string{}
	d.dependents[id] = []string{}
	d.corequisites[id] = []string{}
	d.coreqDependents[id] = []string{}
	return nil
}

// AddPrerequisite records that course requires prereq to be completed first.
// Both courses are added if missing, and duplicate edges are ignored.
func (d *DAG) AddPrerequisite(course, prereq string) error {
	return d.addEdge(course, prereq, d.prerequisites, d.dependents)
}

// AddCorequisite records that course must be taken alongside coreq.
// Corequisite edges live in their own maps but are treated as ordinary
// directed edges (coreq -> course) by the metrics engine.
func (d *DAG) AddCorequisite(course, coreq string) error {
	return d.addEdge(course, coreq, d.corequisites, d.coreqDependents)
}

func (d *DAG) addEdge(course, req string, forward, reverse map[string][]string) error {
	if course == "" || req == "" {
		return ErrInvalidCourseID
	}
	if course == req {
		return fmt.Errorf("%w: %s", ErrSelfRequisite, course)
	}
	_ = d.AddCourse(course)
	_ = d.AddCourse(req)

	if !slices.Contains(forward[course], req) {
		forward[course] = append(forward[course], req)
	}
	if !slices.Contains(reverse[req], course) {
		reverse[req] = append(reverse[req], course)
	}
	return nil
}

// Prerequisites returns the courses id requires and true, or nil and false
// if id is not in the graph. A known course without prerequisites returns an
// empty slice. The returned slice should not be modified.
func (d *DAG) Prerequisites(id string) ([]string, bool) {
	v, ok := d.prerequisites[id]
	return v, ok
}

// Dependents returns the courses that require id.
// See [DAG.Prerequisites] for the unknown-course convention.
func (d *DAG) Dependents(id string) ([]string, bool) {
	v, ok := d.dependents[id]
	return v, ok
}

// Corequisites returns the courses id must be taken alongside.
func (d *DAG) Corequisites(id string) ([]string, bool) {
	v, ok := d.corequisites[id]
	return v, ok
}

// CorequisiteDependents returns the courses that list id as a corequisite.
func (d *DAG) CorequisiteDependents(id string) ([]string, bool) {
	v, ok := d.coreqDependents[id]
	return v, ok
}

// Contains reports whether id is a course in the graph.
func (d *DAG) Contains(id string) bool {
	_, ok := d.index[id]
	return ok
}

// Courses returns a copy of all course IDs in insertion order.
func (d *DAG) Courses() []string { return slices.Clone(d.courses) }

// CourseCount returns the number of courses in the graph.
func (d *DAG) CourseCount() int { return len(d.courses) }

// EdgeCount returns the number of prerequisite and corequisite edges.
func (d *DAG) EdgeCount() (prereqs, coreqs int) {
	for _, id := range d.courses {
		prereqs += len(d.prerequisites[id])
		coreqs += len(d.corequisites[id])
	}
	return prereqs, coreqs
}

// Incoming returns the sorted, de-duplicated union of prerequisites and
// corequisites of id. These are the edges pointing into id.
func (d *DAG) Incoming(id string) []string {
	return union(d.prerequisites[id], d.corequisites[id])
}

// Outgoing returns the sorted, de-duplicated union of dependents and
// corequisite dependents of id. These are the edges pointing out of id.
func (d *DAG) Outgoing(id string) []string {
	return union(d.dependents[id], d.coreqDependents[id])
}

func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	slices.Sort(out)
	return slices.Compact(out)
}

// Validate checks that the graph is acyclic over prerequisite and
// corequisite edges. It returns ErrGraphHasCycle wrapped with one course
// that lies on a cycle.
//
// Cycle detection runs in O(N+E) time using depth-first search.
func (d *DAG) Validate() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(d.courses))
	var cycleAt string

	var dfs func(id string) bool
	dfs = func(id string) bool {
		color[id] = gray
		for _, next := range d.Outgoing(id) {
			switch color[next] {
			case white:
				if dfs(next) {
					return true
				}
			case gray:
				cycleAt = next
				return true
			}
		}
		color[id] = black
		return false
	}

	for _, id := range d.courses {
		if color[id] == white && dfs(id) {
			return fmt.Errorf("%w at %s", ErrGraphHasCycle, cycleAt)
		}
	}
	return nil
}

// String renders the graph as one "course → prerequisites" line per course,
// sorted by course ID.
func (d *DAG) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Prerequisite DAG (%d courses):\n\n", len(d.courses))
	for _, id := range slices.Sorted(slices.Values(d.courses)) {
		prereqs := d.prerequisites[id]
		if len(prereqs) == 0 {
			fmt.Fprintf(&b, "  %s → (no prerequisites)\n", id)
			continue
		}
		fmt.Fprintf(&b, "  %s → %s\n", id, strings.Join(prereqs, ", "))
	}
	return b.String()
}
