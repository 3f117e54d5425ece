// Package pkg provides the core libraries for Curricula curriculum analytics.
//
// # Overview
//
// Curricula measures how hard a degree plan is to complete on time. It reads
// a course catalog, builds the prerequisite graph and computes, for every
// course, how long a prerequisite chain runs through it (delay), how many
// courses it unlocks (blocking), their sum (structural complexity) and how
// many complete prerequisite paths pass through it (centrality). It traces the
// plan's critical path and places the courses into semesters or quarters.
//
// # Architecture
//
// The typical data flow:
//
//	Curriculum CSV / JSON catalog
//	         ↓
//	    [catalog] + [io] (parse courses, degrees, plans)
//	         ↓
//	    [dag] (prerequisite and corequisite edges)
//	         ↓
//	    [metrics] → [critpath] (per-course metrics, summary, critical path)
//	         ↓
//	    [schedule] (term plan)
//	         ↓
//	    [render] Markdown / HTML / CSV / Mermaid, [render/nodelink] DOT / SVG / PDF / PNG
//
// [pipeline] runs the whole flow for both the CLI and [server].
//
// # Quick Start
//
//	runner := pipeline.NewRunner(log.Default(), nil)
//	result, err := runner.Analyze(ctx, pipeline.Options{Path: "cs.csv"})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Summary.LongestDelayPath)
//	for _, term := range result.TermPlan.Terms {
//	    fmt.Println(term.Number, term.Courses)
//	}
//
// # Main Packages
//
// ## Core Domain Logic
//
// [dag] - The prerequisite graph. Courses keep insertion order so every
// traversal is deterministic. [dag/transform] finds cycles and removes
// implied prerequisites.
//
// [metrics] - Delay, blocking factor, structural complexity and centrality.
// All four share one topological order; a cyclic graph is rejected.
//
// [critpath] - Plan summary and the longest delay path, with corequisite
// partners grouped as "(A+B)".
//
// [schedule] - Greedy term scheduler: prerequisites land in earlier terms,
// corequisites share a term, long chains are placed first.
//
// ## Catalogs and Output
//
// [catalog] - Courses, degrees and plans, and the curriculum CSV format.
//
// [io] - JSON catalog import and export, and the JSON report.
//
// [render] - Markdown and HTML reports with Mermaid diagrams and the metrics
// CSV.
//
// [render/nodelink] - Graphviz drawings of the prerequisite graph and the PDF
// report.
//
// ## Infrastructure
//
// [config] - TOML configuration file with dotted-key access.
//
// [errors] - Coded errors shared by the CLI and the HTTP API.
//
// [observability] - Hooks for logging and Prometheus metrics.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./...                 # All tests
//	go test ./pkg/metrics/...     # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [catalog]: https://pkg.go.dev/github.com/matzehuels/curricula/pkg/catalog
// [io]: https://pkg.go.dev/github.com/matzehuels/curricula/pkg/io
// [dag]: https://pkg.go.dev/github.com/matzehuels/curricula/pkg/dag
// [dag/transform]: https://pkg.go.dev/github.com/matzehuels/curricula/pkg/dag/transform
// [metrics]: https://pkg.go.dev/github.com/matzehuels/curricula/pkg/metrics
// [critpath]: https://pkg.go.dev/github.com/matzehuels/curricula/pkg/critpath
// [schedule]: https://pkg.go.dev/github.com/matzehuels/curricula/pkg/schedule
// [render]: https://pkg.go.dev/github.com/matzehuels/curricula/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/curricula/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/curricula/pkg/pipeline
// [server]: https://pkg.go.dev/github.com/matzehuels/curricula/pkg/server
// [config]: https://pkg.go.dev/github.com/matzehuels/curricula/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/curricula/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/curricula/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/curricula/pkg/buildinfo
package pkg
