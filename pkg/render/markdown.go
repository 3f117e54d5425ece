package render

import (
	"bytes"
	"cmp"
	_ "embed"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/template"
)

//go:embed templates/report.md.tmpl
var reportTemplate string

var markdownTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"delayPath":    delayPath,
	"metricRows":   metricRows,
	"termRows":     termRows,
	"mermaidGraph": MermaidGraph,
	"mermaidTerms": MermaidTerms,
}).Parse(reportTemplate))

// Markdown renders the full curriculum report.
func Markdown(c *Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteMarkdown(c, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteMarkdown renders the curriculum report to w.
func WriteMarkdown(c *Context, w io.Writer) error {
	if err := markdownTmpl.Execute(w, c); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	return nil
}

func delayPath(path []string) string {
	if len(path) == 0 {
		return "N/A"
	}
	return strings.Join(path, " → ")
}

type metricRow struct {
	Key        string
	Name       string
	Credits    float64
	Complexity int
	Blocking   int
	Delay      int
	Centrality int
}

// metricRows lists the plan's courses by complexity, highest first, then by key.
func metricRows(c *Context) []metricRow {
	keys := slices.Clone(c.Plan.Courses)
	slices.SortStableFunc(keys, func(a, b string) int {
		if d := cmp.Compare(c.Metrics[b].Complexity, c.Metrics[a].Complexity); d != 0 {
			return d
		}
		return cmp.Compare(a, b)
	})

	rows := make([]metricRow, 0, len(keys))
	for _, key := range keys {
		m := c.Metrics[key]
		cr, _ := c.School.CreditHours(key)
		rows = append(rows, metricRow{
			Key:        key,
			Name:       c.CourseName(key),
			Credits:    cr,
			Complexity: m.Complexity,
			Blocking:   m.Blocking,
			Delay:      m.Delay,
			Centrality: m.Centrality,
		})
	}
	return rows
}

type termRow struct {
	Number  int
	Courses string
	Credits float64
}

func termRows(c *Context) []termRow {
	var rows []termRow
	for _, t := range c.TermPlan.Terms {
		if len(t.Courses) == 0 {
			continue
		}
		names := make([]string, len(t.Courses))
		for i, key := range t.Courses {
			names[i] = key
			if course, ok := c.School.Course(key); ok && course.Name != "" {
				names[i] = key + " - " + course.Name
			}
		}
		rows = append(rows, termRow{Number: t.Number, Courses: strings.Join(names, ", "), Credits: t.TotalCredits})
	}
	return rows
}
