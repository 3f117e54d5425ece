package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	cerrors "github.com/matzehuels/curricula/pkg/errors"
	cio "github.com/matzehuels/curricula/pkg/io"
	"github.com/matzehuels/curricula/pkg/pipeline"
	"github.com/matzehuels/curricula/pkg/render"
	"github.com/matzehuels/curricula/pkg/render/nodelink"
)

// Report formats.
const (
	formatMarkdown = "markdown"
	formatHTML     = "html"
	formatJSON     = "json"
	formatCSV      = "csv"
)

type reportOpts struct {
	analyzeFlags
	format     string
	output     string
	noSchedule bool
}

// reportCommand writes a full curriculum report.
func (c *CLI) reportCommand() *cobra.Command {
	var opts reportOpts

	cmd := &cobra.Command{
		Use:   "report [catalog]",
		Short: "Write a curriculum report",
		Long: `Write a curriculum report with metrics, critical path and term schedule.

Formats:
  markdown  summary, metrics and schedule tables with Mermaid diagrams
  html      standalone page with a term grid and Mermaid diagrams
  pdf       summary and metrics tables above the prerequisite graph
  json      the machine-readable report
  csv       curriculum analytics metrics CSV

A bare output file name is written to paths.reports_dir. PDF output
requires librsvg (rsvg-convert).`,
		Example: `  curricula report cs.csv
  curricula report cs.csv -o cs.md
  curricula report cs.csv --format html -o cs.html
  curricula report cs.csv --format pdf -o cs.pdf
  curricula report cs.csv --format json -o ./cs.json
  curricula report cs.csv --format csv --no-schedule`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			write, err := reportWriter(opts.format)
			if err != nil {
				return err
			}
			result, err := c.analyze(cmd.Context(), c.options(args[0], opts.analyzeFlags, opts.noSchedule))
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			path, err := c.writeOutput(c.Config.Paths.ReportsDir, opts.output, func(w io.Writer) error {
				return write(ctx, result, w)
			})
			if err != nil {
				return err
			}
			if path != "" {
				printSuccess(c.Out, "Wrote %s report", opts.format)
				printFile(c.Out, path)
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatMarkdown, "report format: markdown, html, pdf, json, csv")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.noSchedule, "no-schedule", false, "leave the term schedule out of the report")
	_ = cmd.RegisterFlagCompletionFunc("format", completeValues(formatMarkdown, formatHTML, formatPDF, formatJSON, formatCSV))

	return cmd
}

// reportWriter returns the renderer for format.
func reportWriter(format string) (func(context.Context, *pipeline.Result, io.Writer) error, error) {
	switch format {
	case formatMarkdown, "md":
		return func(_ context.Context, r *pipeline.Result, w io.Writer) error {
			return render.WriteMarkdown(r.RenderContext(), w)
		}, nil
	case formatHTML:
		return func(_ context.Context, r *pipeline.Result, w io.Writer) error {
			return render.WriteHTML(r.RenderContext(), w)
		}, nil
	case formatPDF:
		return func(ctx context.Context, r *pipeline.Result, w io.Writer) error {
			data, err := nodelink.RenderReportPDF(ctx, r.RenderContext())
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		}, nil
	case formatJSON:
		return func(_ context.Context, r *pipeline.Result, w io.Writer) error {
			return cio.WriteReport(r.Report(), w)
		}, nil
	case formatCSV:
		return func(_ context.Context, r *pipeline.Result, w io.Writer) error {
			return render.WriteMetricsCSV(r.RenderContext(), w)
		}, nil
	}
	return nil, cerrors.New(cerrors.ErrCodeInvalidFormat, "unknown report format %q (want markdown, html, pdf, json or csv)", format)
}
