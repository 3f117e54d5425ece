package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/report.html.tmpl
var htmlReportTemplate string

var htmlTmpl = template.Must(template.New("report.html").Funcs(template.FuncMap{
	"delayPath":       delayPath,
	"metricRows":      metricRows,
	"termColumns":     termColumns,
	"complexityClass": ComplexityClass,
	"critical":        criticalCourses,
	"mermaidGraph":    mermaidGraph,
	"mermaidTerms":    mermaidTerms,
}).Parse(htmlReportTemplate))

// HTML renders the curriculum report as a standalone HTML page.
func HTML(c *Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteHTML(c, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteHTML renders the curriculum report as HTML to w. Diagrams are Mermaid
// blocks drawn by the browser; courses on the critical path carry the
// "critical" class.
func WriteHTML(c *Context, w io.Writer) error {
	if err := htmlTmpl.Execute(w, c); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// ComplexityClass buckets a structural complexity value: "low" up to 5,
// "medium" up to 15, "high" above.
func ComplexityClass(complexity int) string {
	switch {
	case complexity <= 5:
		return "low"
	case complexity <= 15:
		return "medium"
	default:
		return "high"
	}
}

// criticalCourses returns the courses on the longest delay path, with
// corequisite groups such as "(A+B)" split into their members.
func criticalCourses(c *Context) map[string]bool {
	set := make(map[string]bool)
	for _, entry := range c.Summary.LongestDelayPath {
		for _, key := range strings.Split(strings.Trim(entry, "()"), "+") {
			set[key] = true
		}
	}
	return set
}

type termCourse struct {
	Key        string
	Name       string
	Complexity int
}

type termColumn struct {
	Number  int
	Credits float64
	Courses []termCourse
}

// termColumns lists the non-empty terms with the display data of their
// courses.
func termColumns(c *Context) []termColumn {
	if c.TermPlan == nil {
		return nil
	}
	var cols []termColumn
	for _, t := range c.TermPlan.Terms {
		if len(t.Courses) == 0 {
			continue
		}
		col := termColumn{Number: t.Number, Credits: t.TotalCredits}
		for _, key := range t.Courses {
			col.Courses = append(col.Courses, termCourse{
				Key:        key,
				Name:       c.CourseName(key),
				Complexity: c.Metrics[key].Complexity,
			})
		}
		cols = append(cols, col)
	}
	return cols
}
