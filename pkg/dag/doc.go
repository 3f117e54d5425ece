// Package dag provides the prerequisite graph that every curriculum
// analysis is built on.
//
// # Overview
//
// A curriculum is modeled as a directed graph over course identifiers
// (opaque strings such as "CS1800" or "CS1800_17" when a natural key is
// duplicated). Two edge kinds exist:
//
//   - Prerequisite edges: the prerequisite must be completed in an earlier term.
//   - Corequisite edges: the courses are taken together. Strict and regular
//     corequisites are both stored here; the distinction is resolved upstream.
//
// Each edge kind is stored twice, once forward and once reversed, so that
// both "what does this course need" and "what does this course unlock" are
// constant-time lookups.
//
// # Basic Usage
//
//	g := dag.New()
//	g.AddPrerequisite("CS220", "CS165")
//	g.AddCorequisite("PHYS1151", "PHYS1152")
//
//	prereqs, ok := g.Prerequisites("CS220") // ["CS165"], true
//	_, ok = g.Prerequisites("NOPE")         // nil, false
//
// Query methods return (nil, false) for unknown courses and an empty slice
// for known courses without edges, so callers can tell the two apart.
//
// # Acyclicity
//
// The graph does not reject cycles on insertion. Use [DAG.Validate] to check
// the combined prerequisite/corequisite graph, or let the metrics package
// report a cycle when it fails to order every course.
package dag
