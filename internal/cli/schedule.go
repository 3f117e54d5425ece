package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	cio "github.com/matzehuels/curricula/pkg/io"
	"github.com/matzehuels/curricula/pkg/pipeline"
)

type scheduleOpts struct {
	analyzeFlags
	interactive bool
	json        bool
}

// scheduleCommand places a plan's courses into terms.
func (c *CLI) scheduleCommand() *cobra.Command {
	var opts scheduleOpts

	cmd := &cobra.Command{
		Use:   "schedule [catalog]",
		Short: "Schedule a plan's courses into terms",
		Long: `Schedule a plan's courses into terms.

Prerequisites always land in an earlier term and corequisites share a term.
Courses with long prerequisite chains are placed first; courses without any
requisites in the plan fill the lightest terms. The calendar (semester or
quarter) follows the degree's system type.`,
		Example: `  curricula schedule cs.csv
  curricula schedule cs.csv --term-credits 16
  curricula schedule cs.csv --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.analyze(cmd.Context(), c.options(args[0], opts.analyzeFlags, false))
			if err != nil {
				return err
			}
			switch {
			case opts.json:
				return cio.WriteReport(result.Report(), c.Out)
			case opts.interactive:
				_, err := tea.NewProgram(newTermBrowser(result), tea.WithContext(cmd.Context())).Run()
				return err
			}
			printSchedule(c.Out, result)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the schedule interactively")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the JSON report instead of tables")

	return cmd
}

func printSchedule(w io.Writer, r *pipeline.Result) {
	tp := r.TermPlan
	critical := criticalSet(r.Summary.LongestDelayPath)

	fmt.Fprintln(w, StyleTitle.Render(r.Plan.Name))
	printKeyValue(w, "Terms used", fmt.Sprintf("%d %s", tp.TermsUsed(), strings.ToLower(tp.TermLabel())+"s"))
	printKeyValue(w, "Years", strconv.Itoa(r.RenderContext().Years()))
	printKeyValue(w, "Target load", formatCredits(tp.TargetCredits)+" credits")
	printKeyValue(w, "Total credits", formatCredits(tp.TotalCredits()))
	fmt.Fprintln(w)

	for _, term := range tp.Terms {
		if len(term.Courses) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s %s\n",
			StyleHighlight.Render(fmt.Sprintf("%s %d", tp.TermLabel(), term.Number)),
			StyleDim.Render("("+formatCredits(term.TotalCredits)+" credits)"))

		courses := term.Courses
		rows := make([][]string, len(courses))
		for i, key := range courses {
			cr, _ := r.School.CreditHours(key)
			rows[i] = []string{key, r.RenderContext().CourseName(key), formatCredits(cr), strconv.Itoa(r.Metrics[key].Delay)}
		}
		t := newTable([]string{"Course", "Name", "Credits", "Delay"}, rows,
			func(row int) bool { return row < len(courses) && critical[courses[row]] })
		fmt.Fprintln(w, t.Render())
	}

	if len(tp.Unscheduled) > 0 {
		printWarning(w, "Not scheduled: %s", strings.Join(tp.Unscheduled, ", "))
	}
}
