// Package transform provides read-only analyses and derived views of a
// prerequisite DAG.
//
// # Cycle Reporting
//
// The metrics engine refuses a cyclic graph but only reports that a cycle
// exists. [FindCycle] names the courses on one cycle so the catalog can be
// fixed:
//
//	if cycle := transform.FindCycle(g); cycle != nil {
//	    fmt.Println(strings.Join(cycle, " → ")) // CS2 → CS3 → CS2
//	}
//
// # Transitive Reduction
//
// Catalogs often list prerequisites that are already implied. If CS2500
// requires CS1800 and CS3500 requires both, the CS1800 → CS3500 edge adds
// nothing: CS1800 must come first anyway. [RedundantPrerequisites] lists such
// edges and [Reduce] returns a copy of the graph without them, which draws a
// much cleaner diagram.
//
// Corequisite edges are never removed, but they do count as paths: a course
// taken alongside a dependent of p is still scheduled after p.
//
// Neither function modifies its input.
package transform
