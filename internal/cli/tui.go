package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/curricula/pkg/pipeline"
	"github.com/matzehuels/curricula/pkg/render"
	"github.com/matzehuels/curricula/pkg/schedule"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// TermBrowser - Interactive schedule browser
// =============================================================================

// TermBrowser is the bubbletea model for browsing a term plan. Left and right
// move between terms, up and down between the courses of the current term.
type TermBrowser struct {
	result   *pipeline.Result
	rc       *render.Context
	terms    []schedule.Term
	critical map[string]bool

	Term   int
	Cursor int
}

// newTermBrowser creates a browser over the non-empty terms of r's plan.
func newTermBrowser(r *pipeline.Result) TermBrowser {
	var terms []schedule.Term
	if r.TermPlan != nil {
		for _, t := range r.TermPlan.Terms {
			if len(t.Courses) > 0 {
				terms = append(terms, t)
			}
		}
	}
	return TermBrowser{
		result:   r,
		rc:       r.RenderContext(),
		terms:    terms,
		critical: criticalSet(r.Summary.LongestDelayPath),
	}
}

func (m TermBrowser) Init() tea.Cmd {
	return nil
}

func (m TermBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	}
	if len(m.terms) == 0 {
		return m, nil
	}
	switch key.String() {
	case "left", "h":
		if m.Term > 0 {
			m.Term--
			m.Cursor = 0
		}
	case "right", "l", "tab":
		if m.Term < len(m.terms)-1 {
			m.Term++
			m.Cursor = 0
		}
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.terms[m.Term].Courses)-1 {
			m.Cursor++
		}
	}
	return m, nil
}

// Selected returns the course under the cursor, or "" for an empty plan.
func (m TermBrowser) Selected() string {
	if len(m.terms) == 0 {
		return ""
	}
	return m.terms[m.Term].Courses[m.Cursor]
}

func (m TermBrowser) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.result.Plan.Name))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ term  ↑/↓ course  q quit"))
	b.WriteString("\n\n")

	if len(m.terms) == 0 {
		b.WriteString(listDimStyle.Render("  no scheduled courses"))
		b.WriteString("\n")
		return b.String()
	}

	label := m.result.TermPlan.TermLabel()
	tabs := make([]string, len(m.terms))
	for i, t := range m.terms {
		name := fmt.Sprintf(" %s %d ", label, t.Number)
		if i == m.Term {
			tabs[i] = listSelectedStyle.Render("[" + name + "]")
		} else {
			tabs[i] = listNormalStyle.Render(" " + name + " ")
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	term := m.terms[m.Term]
	rows := make([][]string, len(term.Courses))
	for i, key := range term.Courses {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		cr, _ := m.result.School.CreditHours(key)
		rows[i] = []string{cursor, key, m.rc.CourseName(key), formatCredits(cr)}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Course", "Name", "Credits").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleTableHeader
			}
			if row >= len(term.Courses) {
				return lipgloss.NewStyle()
			}
			style := lipgloss.NewStyle()
			if m.critical[term.Courses[row]] {
				style = style.Foreground(colorYellow)
			}
			if row == m.Cursor {
				style = style.Bold(true)
			}
			return style
		})
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %s credits", formatCredits(term.TotalCredits))))
	b.WriteString("\n\n")

	b.WriteString(m.details(m.Selected()))
	return b.String()
}

// details renders the metrics and requisites of course.
func (m TermBrowser) details(course string) string {
	var b strings.Builder
	cm := m.result.Metrics[course]
	g := m.result.Graph

	b.WriteString(StyleHighlight.Render(course))
	if m.critical[course] {
		b.WriteString(" " + StyleWarning.Render("critical path"))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s  %s %s  %s %s  %s %s\n",
		listDimStyle.Render("complexity"), StyleNumber.Render(strconv.Itoa(cm.Complexity)),
		listDimStyle.Render("delay"), StyleNumber.Render(strconv.Itoa(cm.Delay)),
		listDimStyle.Render("blocking"), StyleNumber.Render(strconv.Itoa(cm.Blocking)),
		listDimStyle.Render("centrality"), StyleNumber.Render(strconv.Itoa(cm.Centrality)))

	prereqs, _ := g.Prerequisites(course)
	coreqs, _ := g.Corequisites(course)
	unlocks, _ := g.Dependents(course)
	for _, line := range []struct {
		name string
		ids  []string
	}{
		{"requires", prereqs},
		{"with", coreqs},
		{"unlocks", unlocks},
	} {
		if len(line.ids) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %s %s\n", listDimStyle.Render(fmt.Sprintf("%-8s", line.name)), StyleValue.Render(strings.Join(line.ids, ", ")))
	}
	return b.String()
}
