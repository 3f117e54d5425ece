package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/curricula/pkg/dag/transform"
	cerrors "github.com/matzehuels/curricula/pkg/errors"
	"github.com/matzehuels/curricula/pkg/pipeline"
	"github.com/matzehuels/curricula/pkg/render/nodelink"
)

// Graph formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPDF = "pdf"
	formatPNG = "png"
)

type graphOpts struct {
	analyzeFlags
	format   string
	output   string
	detailed bool
	terms    bool
	reduce   bool
	scale    float64
}

// graphCommand draws the prerequisite graph.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [catalog]",
		Short: "Draw the prerequisite graph",
		Long: `Draw the prerequisite graph as a node-link diagram.

Prerequisite edges are solid, corequisite edges dashed, and courses on the
critical path are filled. With --terms, courses are grouped by the term they
are scheduled in. With --reduce, a prerequisite already implied by another
one is not drawn.

PDF and PNG output require librsvg (rsvg-convert).`,
		Example: `  curricula graph cs.csv -o cs.svg
  curricula graph cs.csv --format dot
  curricula graph cs.csv --terms --detailed -f pdf -o cs.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := validateGraphFormat(opts.format); err != nil {
				return err
			}
			result, err := c.analyze(ctx, c.options(args[0], opts.analyzeFlags, !opts.terms))
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			g := result.Graph
			if opts.reduce {
				redundant := transform.RedundantPrerequisites(g)
				c.Logger.Debug("dropping implied prerequisites", "edges", len(redundant))
				g = transform.Reduce(g)
			}
			dot := nodelink.ToDOT(g, graphOptions(result, opts))
			var data []byte
			switch opts.format {
			case formatDOT:
				data = []byte(dot)
			case formatSVG:
				data, err = nodelink.RenderSVG(ctx, dot)
			case formatPDF:
				data, err = nodelink.RenderPDF(ctx, dot)
			case formatPNG:
				data, err = nodelink.RenderPNG(ctx, dot, opts.scale)
			}
			if err != nil {
				return err
			}
			prog.done("Rendered " + opts.format)

			path, err := c.writeOutput(c.Config.Paths.ReportsDir, opts.output, func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			})
			if err != nil {
				return err
			}
			if path != "" {
				printSuccess(c.Out, "Wrote prerequisite graph")
				printFile(c.Out, path)
				printDetail(c.Out, "%d courses, %d on the critical path",
					result.Graph.CourseCount(), len(criticalSet(result.Summary.LongestDelayPath)))
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatSVG, "output format: dot, svg, pdf, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show course names and metrics in nodes")
	cmd.Flags().BoolVar(&opts.terms, "terms", false, "group courses by scheduled term")
	cmd.Flags().BoolVar(&opts.reduce, "reduce", false, "hide prerequisites implied by other prerequisites")
	cmd.Flags().Float64Var(&opts.scale, "scale", 2, "PNG scale factor")
	_ = cmd.RegisterFlagCompletionFunc("format", completeValues(formatDOT, formatSVG, formatPDF, formatPNG))

	return cmd
}

func validateGraphFormat(format string) error {
	switch format {
	case formatDOT, formatSVG, formatPDF, formatPNG:
		return nil
	}
	return cerrors.New(cerrors.ErrCodeInvalidFormat, "unknown graph format %q (want dot, svg, pdf or png)", format)
}

// graphOptions builds diagram options from an analysis result.
func graphOptions(r *pipeline.Result, opts graphOpts) nodelink.Options {
	rc := r.RenderContext()
	names := make(map[string]string, r.Graph.CourseCount())
	for _, id := range r.Graph.Courses() {
		names[id] = rc.CourseName(id)
	}
	return nodelink.Options{
		Detailed:  opts.detailed,
		Names:     names,
		Metrics:   r.Metrics,
		Highlight: r.Summary.LongestDelayPath,
		TermPlan:  r.TermPlan,
	}
}
