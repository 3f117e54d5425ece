// Package render turns analysis results into human-readable artifacts.
//
// # Overview
//
// This package contains the report writers that consume a curriculum's
// metrics, summary and term schedule:
//
//   - Markdown reports with embedded Mermaid diagrams ([Markdown])
//   - Standalone HTML reports with a term grid and browser-drawn Mermaid
//     diagrams ([HTML], [WriteHTML])
//   - Mermaid flowcharts of the prerequisite graph and the term plan
//     ([MermaidGraph], [MermaidTerms])
//   - Metrics CSV export in the layout used by curriculum analytics tools
//     ([WriteMetricsCSV])
//   - Generic format conversion (SVG to PDF/PNG)
//   - Node-link diagrams of the prerequisite graph (in [nodelink] subpackage)
//
// Every writer takes a [Context], which bundles the catalog, the plan being
// reported and everything computed for it.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [nodelink]: github.com/matzehuels/curricula/pkg/render/nodelink
package render
