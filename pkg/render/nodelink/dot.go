package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/curricula/pkg/dag"
	"github.com/matzehuels/curricula/pkg/metrics"
	"github.com/matzehuels/curricula/pkg/render"
	"github.com/matzehuels/curricula/pkg/schedule"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the course name and metrics to node labels.
	// When false, only the course key is shown.
	Detailed bool

	// Names maps course keys to display names for detailed labels.
	Names map[string]string

	// Metrics supplies the values shown in detailed labels.
	Metrics metrics.CurriculumMetrics

	// Highlight marks courses to fill, typically the critical path.
	// Grouped entries such as "(A+B)" highlight every member.
	Highlight []string

	// TermPlan, when set, clusters courses by the term they are scheduled in.
	TermPlan *schedule.Plan
}

// ToDOT converts a prerequisite DAG to Graphviz DOT format. Prerequisite
// edges are solid and corequisite edges dashed. The resulting DOT string can
// be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(g *dag.DAG, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if opts.TermPlan != nil {
		buf.WriteString("  rankdir=LR;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	writeCourses(&buf, g, opts, "  ")
	buf.WriteString("}\n")
	return buf.String()
}

// writeCourses writes the course nodes of g, clustered by term when
// opts.TermPlan is set, followed by its edges.
func writeCourses(buf *bytes.Buffer, g *dag.DAG, opts Options, indent string) {
	highlight := highlighted(opts.Highlight)
	writeNode := func(prefix, id string) {
		attrs := fmtAttrs(label(id, opts), highlight[id])
		fmt.Fprintf(buf, "%s%q [%s];\n", prefix, id, strings.Join(attrs, ", "))
	}

	clustered := make(map[string]bool)
	if opts.TermPlan != nil {
		for _, t := range opts.TermPlan.Terms {
			if len(t.Courses) == 0 {
				continue
			}
			fmt.Fprintf(buf, "%ssubgraph cluster_term%d {\n", indent, t.Number)
			fmt.Fprintf(buf, "%s  label=%q;\n", indent, fmt.Sprintf("%s %d", opts.TermPlan.TermLabel(), t.Number))
			buf.WriteString(indent + "  style=\"rounded,dashed\";\n")
			for _, id := range t.Courses {
				if !g.Contains(id) {
					continue
				}
				clustered[id] = true
				writeNode(indent+"  ", id)
			}
			buf.WriteString(indent + "}\n")
		}
	}
	for _, id := range g.Courses() {
		if !clustered[id] {
			writeNode(indent, id)
		}
	}

	buf.WriteString("\n")
	for _, id := range g.Courses() {
		prereqs, _ := g.Prerequisites(id)
		for _, p := range prereqs {
			fmt.Fprintf(buf, "%s%q -> %q;\n", indent, p, id)
		}
		coreqs, _ := g.Corequisites(id)
		for _, co := range coreqs {
			fmt.Fprintf(buf, "%s%q -> %q [style=dashed];\n", indent, co, id)
		}
	}
}

func highlighted(path []string) map[string]bool {
	set := make(map[string]bool)
	for _, entry := range path {
		for _, id := range strings.Split(strings.Trim(entry, "()"), "+") {
			set[id] = true
		}
	}
	return set
}

func label(id string, opts Options) string {
	if !opts.Detailed {
		return id
	}
	parts := []string{id}
	if name := opts.Names[id]; name != "" {
		parts = append(parts, name)
	}
	if m, ok := opts.Metrics[id]; ok {
		parts = append(parts,
			fmt.Sprintf("complexity: %d", m.Complexity),
			fmt.Sprintf("delay: %d  blocking: %d", m.Delay, m.Blocking),
			fmt.Sprintf("centrality: %d", m.Centrality))
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(label string, highlight bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if highlight {
		attrs = append(attrs, "fillcolor=\"#fde68a\"", "penwidth=2")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the drawing scales from the
// origin at its natural size.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion at the given scale.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
