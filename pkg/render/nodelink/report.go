package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/matzehuels/curricula/pkg/render"
)

const (
	reportSummaryNode = "report_summary"
	reportMetricsNode = "report_metrics"
)

// ReportDOT lays out the full curriculum report as one Graphviz document:
// a summary table, the course metrics table and the prerequisite graph below
// them with the critical path filled. With a term plan, the metrics table
// gains a term column and the graph is clustered by term. Tables use
// Graphviz HTML-like labels.
func ReportDOT(c *render.Context) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Report {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  fontname=\"Helvetica\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=14];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n\n")

	fmt.Fprintf(&buf, "  %s [shape=plaintext, style=\"\", label=<%s>];\n", reportSummaryNode, summaryTable(c))
	fmt.Fprintf(&buf, "  %s [shape=plaintext, style=\"\", label=<%s>];\n", reportMetricsNode, metricsTable(c))
	fmt.Fprintf(&buf, "  %s -> %s [style=invis];\n\n", reportSummaryNode, reportMetricsNode)

	names := make(map[string]string, c.Graph.CourseCount())
	for _, id := range c.Graph.Courses() {
		names[id] = c.CourseName(id)
	}
	buf.WriteString("  subgraph cluster_graph {\n")
	buf.WriteString("    label=\"Prerequisite Graph\";\n")
	buf.WriteString("    style=\"rounded\";\n")
	writeCourses(&buf, c.Graph, Options{
		Names:     names,
		Metrics:   c.Metrics,
		Highlight: c.Summary.LongestDelayPath,
		TermPlan:  c.TermPlan,
	}, "    ")
	buf.WriteString("  }\n\n")

	for _, id := range c.Graph.Courses() {
		if len(c.Graph.Incoming(id)) == 0 {
			fmt.Fprintf(&buf, "  %s -> %q [style=invis];\n", reportMetricsNode, id)
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

// RenderReportPDF renders the report laid out by [ReportDOT] as PDF.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderReportPDF(ctx context.Context, c *render.Context) ([]byte, error) {
	return RenderPDF(ctx, ReportDOT(c))
}

type tableRow []string

func summaryTable(c *render.Context) string {
	rows := []tableRow{
		{"Institution", c.Institution()},
		{"Degree", c.DegreeName()},
		{"System", c.SystemType()},
		{"Courses", fmt.Sprint(len(c.Plan.Courses))},
		{"Total Credits", fmt.Sprintf("%.1f", c.TotalCredits())},
		{"Total Structural Complexity", fmt.Sprintf("%.1f", c.ScaledComplexity())},
		{"Longest Delay", fmt.Sprintf("%d (%s)", c.Summary.LongestDelay, c.Summary.LongestDelayCourse)},
		{"Longest Delay Path", delayPath(c.Summary.LongestDelayPath)},
		{"Highest Centrality", fmt.Sprintf("%d (%s)", c.Summary.HighestCentrality, c.Summary.HighestCentralityCourse)},
	}
	if c.TermPlan != nil {
		rows = append(rows,
			tableRow{"Years", fmt.Sprint(c.Years())},
			tableRow{c.TermPlan.TermLabel() + "s", fmt.Sprint(c.TermPlan.TermsUsed())})
	}
	return htmlTable(c.Plan.Name, nil, rows, nil)
}

func metricsTable(c *render.Context) string {
	critical := highlighted(c.Summary.LongestDelayPath)
	header := tableRow{"Course", "Name", "Credits", "Complexity", "Blocking", "Delay", "Centrality"}
	if c.TermPlan != nil {
		header = append(header, c.TermPlan.TermLabel())
	}
	var rows []tableRow
	var fill []bool
	for _, key := range c.Metrics.Ranked() {
		if !slices.Contains(c.Plan.Courses, key) {
			continue
		}
		m := c.Metrics[key]
		credits, _ := c.School.CreditHours(key)
		row := tableRow{key, c.CourseName(key), fmt.Sprintf("%.1f", credits),
			fmt.Sprint(m.Complexity), fmt.Sprint(m.Blocking), fmt.Sprint(m.Delay), fmt.Sprint(m.Centrality)}
		if c.TermPlan != nil {
			term := "-"
			if n := c.TermPlan.TermOf(key); n > 0 {
				term = fmt.Sprint(n)
			}
			row = append(row, term)
		}
		rows = append(rows, row)
		fill = append(fill, critical[key])
	}
	return htmlTable("Course Metrics", header, rows, fill)
}

// htmlTable builds a Graphviz HTML-like table. Rows whose fill entry is
// true get the critical-path color.
func htmlTable(title string, header tableRow, rows []tableRow, fill []bool) string {
	cols := len(header)
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	var b strings.Builder
	b.WriteString(`<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0" CELLPADDING="6">`)
	fmt.Fprintf(&b, `<TR><TD COLSPAN="%d" BORDER="0"><B>%s</B></TD></TR>`, max(cols, 1), html.EscapeString(title))
	if len(header) > 0 {
		b.WriteString("<TR>")
		for _, h := range header {
			fmt.Fprintf(&b, `<TD BGCOLOR="#f3f4f6"><B>%s</B></TD>`, html.EscapeString(h))
		}
		b.WriteString("</TR>")
	}
	for i, r := range rows {
		b.WriteString("<TR>")
		for _, cell := range r {
			if i < len(fill) && fill[i] {
				fmt.Fprintf(&b, `<TD BGCOLOR="#fde68a" ALIGN="LEFT">%s</TD>`, html.EscapeString(cell))
			} else {
				fmt.Fprintf(&b, `<TD ALIGN="LEFT">%s</TD>`, html.EscapeString(cell))
			}
		}
		b.WriteString("</TR>")
	}
	b.WriteString("</TABLE>")
	return b.String()
}

func delayPath(path []string) string {
	if len(path) == 0 {
		return "N/A"
	}
	return strings.Join(path, " → ")
}
