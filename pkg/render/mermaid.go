package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/matzehuels/curricula/pkg/dag"
)

const maxLabelName = 20

// MermaidGraph renders the prerequisite graph as a fenced Mermaid flowchart.
// Prerequisite edges are solid arrows and corequisite edges dotted ones.
func MermaidGraph(c *Context) string {
	return fenced(mermaidGraph(c))
}

// MermaidTerms renders the term plan as a fenced Mermaid flowchart with one
// subgraph per non-empty term. Only edges between scheduled courses are
// drawn. It returns "" without a term plan.
func MermaidTerms(c *Context) string {
	if c.TermPlan == nil {
		return ""
	}
	return fenced(mermaidTerms(c))
}

func fenced(body string) string {
	return "```mermaid\n" + body + "```\n"
}

func mermaidGraph(c *Context) string {
	var b strings.Builder
	b.WriteString("flowchart LR\n")
	for _, key := range c.Graph.Courses() {
		fmt.Fprintf(&b, "    %s[\"%s\"]\n", mermaidID(key), c.nodeLabel(key))
	}
	b.WriteString("\n")
	writeMermaidEdges(&b, c.Graph, nil)
	return b.String()
}

func mermaidTerms(c *Context) string {
	if c.TermPlan == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("flowchart LR\n")

	scheduled := make(map[string]bool)
	for _, t := range c.TermPlan.Terms {
		if len(t.Courses) == 0 {
			continue
		}
		fmt.Fprintf(&b, "    subgraph term%d[\"%s %d\"]\n", t.Number, c.TermPlan.TermLabel(), t.Number)
		for _, key := range t.Courses {
			scheduled[key] = true
			fmt.Fprintf(&b, "        %s[\"%s\"]\n", mermaidID(key), c.nodeLabel(key))
		}
		b.WriteString("    end\n\n")
	}
	writeMermaidEdges(&b, c.Graph, scheduled)
	return b.String()
}

// writeMermaidEdges writes every edge of g whose endpoints are both in keep.
// A nil keep admits every edge.
func writeMermaidEdges(b *strings.Builder, g *dag.DAG, keep map[string]bool) {
	admit := func(id string) bool { return keep == nil || keep[id] }
	for _, key := range g.Courses() {
		if !admit(key) {
			continue
		}
		prereqs, _ := g.Prerequisites(key)
		for _, p := range prereqs {
			if admit(p) {
				fmt.Fprintf(b, "    %s --> %s\n", mermaidID(p), mermaidID(key))
			}
		}
		coreqs, _ := g.Corequisites(key)
		for _, co := range coreqs {
			if admit(co) {
				fmt.Fprintf(b, "    %s -.-> %s\n", mermaidID(co), mermaidID(key))
			}
		}
	}
}

func (c *Context) nodeLabel(key string) string {
	name := []rune(c.CourseName(key))
	if len(name) > maxLabelName {
		name = append(name[:maxLabelName-3], []rune("...")...)
	}
	label := strings.ReplaceAll(string(name), `"`, "'")
	return fmt.Sprintf("%s<br/>%s<br/>C:%d", key, label, c.Metrics[key].Complexity)
}

// mermaidID replaces every non-alphanumeric rune with "_".
func mermaidID(key string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, key)
}
