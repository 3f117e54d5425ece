// Package nodelink renders prerequisite graphs as node-link diagrams.
//
// # Usage
//
// Convert a DAG to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true, Metrics: m})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// [ReportDOT] lays out a whole curriculum report (summary and metrics tables
// above the prerequisite graph) for [RenderReportPDF].
//
// # Options
//
//   - Detailed: node labels include the course name and its metrics
//   - Highlight: courses filled in amber, usually the critical path
//   - TermPlan: courses grouped into one cluster per scheduled term
//
// Prerequisite edges are drawn solid, corequisite edges dashed.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
