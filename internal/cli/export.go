package cli

import (
	"io"

	"github.com/spf13/cobra"

	cio "github.com/matzehuels/curricula/pkg/io"
)

type exportOpts struct {
	analyzeFlags
	output string
	graph  bool
}

// exportCommand converts a catalog to the JSON catalog format, or writes the
// plan's requisite graph as JSON.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export [catalog]",
		Short: "Export a catalog as JSON",
		Long: `Export a catalog as JSON.

By default the whole catalog (courses, degrees and plans) is written in the
JSON catalog format, which every command accepts in place of the CSV.
With --graph the plan's requisite graph is written as nodes and edges.

A bare output file name is written to paths.reports_dir.`,
		Example: `  curricula export cs.csv -o cs.json
  curricula export cs.csv --graph --plan "Standard Plan"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			write, err := c.exportWriter(cmd, args[0], opts)
			if err != nil {
				return err
			}
			path, err := c.writeOutput(c.Config.Paths.ReportsDir, opts.output, write)
			if err != nil {
				return err
			}
			if path != "" {
				printSuccess(c.Out, "Exported %s", args[0])
				printFile(c.Out, path)
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.graph, "graph", false, "write the plan's requisite graph instead of the catalog")

	return cmd
}

func (c *CLI) exportWriter(cmd *cobra.Command, path string, opts exportOpts) (func(io.Writer) error, error) {
	if opts.graph {
		result, err := c.analyze(cmd.Context(), c.options(path, opts.analyzeFlags, true))
		if err != nil {
			return nil, err
		}
		return func(w io.Writer) error { return cio.WriteGraph(result.Graph, w) }, nil
	}

	s, err := cio.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("catalog loaded", "path", path, "courses", s.CourseCount())
	return func(w io.Writer) error { return cio.WriteCatalog(s, w) }, nil
}
