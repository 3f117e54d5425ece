package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cio "github.com/matzehuels/curricula/pkg/io"
	"github.com/matzehuels/curricula/pkg/pipeline"
	"github.com/matzehuels/curricula/pkg/render"
)

type metricsOpts struct {
	analyzeFlags
	csvOut string
	json   bool
	top    int
}

// metricsCommand computes and prints per-course metrics.
func (c *CLI) metricsCommand() *cobra.Command {
	var opts metricsOpts

	cmd := &cobra.Command{
		Use:   "metrics [catalog]",
		Short: "Compute delay, blocking, complexity and centrality",
		Long: `Compute curriculum analytics for every course of a plan.

The catalog is a curriculum CSV file or a JSON catalog. Courses are listed by
structural complexity, highest first; courses on the critical path are
highlighted.`,
		Example: `  curricula metrics cs.csv
  curricula metrics cs.csv --top 10
  curricula metrics cs.csv --csv cs-metrics.csv
  curricula metrics catalog.json --plan "Computer Science" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.analyze(cmd.Context(), c.options(args[0], opts.analyzeFlags, true))
			if err != nil {
				return err
			}
			if opts.json {
				return cio.WriteReport(result.Report(), c.Out)
			}
			printMetrics(c.Out, result, opts.top)
			if opts.csvOut != "" {
				path, err := outputPath(c.Config.Paths.MetricsDir, opts.csvOut)
				if err != nil {
					return err
				}
				if err := render.ExportMetricsCSV(result.RenderContext(), path); err != nil {
					return err
				}
				printSuccess(c.Out, "Exported metrics")
				printFile(c.Out, path)
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.csvOut, "csv", "", "also export metrics as CSV (bare names go to paths.metrics_dir)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the JSON report instead of a table")
	cmd.Flags().IntVar(&opts.top, "top", 0, "show only the N most complex courses")

	return cmd
}

func printMetrics(w io.Writer, r *pipeline.Result, top int) {
	rc := r.RenderContext()
	s := r.Summary

	fmt.Fprintln(w, StyleTitle.Render(r.Plan.Name))
	printKeyValue(w, "Institution", rc.Institution())
	printKeyValue(w, "Degree", rc.DegreeName())
	printKeyValue(w, "Courses", strconv.Itoa(len(r.Plan.Courses)))
	printKeyValue(w, "Total complexity", fmt.Sprintf("%.1f", rc.ScaledComplexity()))
	printKeyValue(w, "Longest delay", fmt.Sprintf("%d (%s)", s.LongestDelay, s.LongestDelayCourse))
	printKeyValue(w, "Critical path", strings.Join(s.LongestDelayPath, " "+iconArrow+" "))
	printKeyValue(w, "Highest centrality", fmt.Sprintf("%d (%s)", s.HighestCentrality, s.HighestCentralityCourse))
	fmt.Fprintln(w)

	critical := criticalSet(s.LongestDelayPath)
	report := r.Report()
	courses := report.Courses
	if top > 0 && top < len(courses) {
		printInfo(w, "Showing %d of %d courses", top, len(courses))
		courses = courses[:top]
	}
	rows := make([][]string, len(courses))
	for i, cr := range courses {
		rows[i] = []string{
			cr.Key,
			cr.Name,
			formatCredits(cr.CreditHours),
			strconv.Itoa(cr.Complexity),
			strconv.Itoa(cr.Blocking),
			strconv.Itoa(cr.Delay),
			strconv.Itoa(cr.Centrality),
		}
	}
	t := newTable(
		[]string{"Course", "Name", "Credits", "Complexity", "Blocking", "Delay", "Centrality"},
		rows,
		func(row int) bool { return row < len(courses) && critical[courses[row].Key] },
	)
	fmt.Fprintln(w, t.Render())
}

// criticalSet returns the courses of an expanded critical path, splitting
// groups such as "(A+B)" into their members.
func criticalSet(path []string) map[string]bool {
	set := make(map[string]bool)
	for _, entry := range path {
		for _, id := range strings.Split(strings.Trim(entry, "()"), "+") {
			set[id] = true
		}
	}
	return set
}
