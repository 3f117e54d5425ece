// Package pipeline runs the curriculum analysis end to end.
//
// A run has three stages:
//
//  1. Load: read a catalog from CSV or JSON and pick a plan
//  2. Metrics: build the prerequisite DAG, compute per-course metrics, the
//     plan summary and its critical path
//  3. Schedule: place the plan's courses into terms
//
// The CLI and the HTTP server both drive the same [Runner], so they report
// identical numbers for identical input.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger, hooks)
//	result, err := runner.Analyze(ctx, pipeline.Options{
//	    Path:    "cs.csv",
//	    Timeout: 30 * time.Second,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary.LongestDelayPath)
//
// Callers that already hold a catalog use [Runner.AnalyzeSchool].
package pipeline

import (
	"time"

	"github.com/matzehuels/curricula/pkg/catalog"
	"github.com/matzehuels/curricula/pkg/critpath"
	"github.com/matzehuels/curricula/pkg/dag"
	cerrors "github.com/matzehuels/curricula/pkg/errors"
	cio "github.com/matzehuels/curricula/pkg/io"
	"github.com/matzehuels/curricula/pkg/metrics"
	"github.com/matzehuels/curricula/pkg/render"
	"github.com/matzehuels/curricula/pkg/schedule"
)

// Options configures one analysis run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Path is the catalog file read by [Runner.Analyze]. Ignored by
	// [Runner.AnalyzeSchool].
	Path string `json:"path,omitempty"`

	// PlanName selects a plan by name. Empty selects the catalog's first
	// plan, or every course when the catalog has none.
	PlanName string `json:"plan,omitempty"`

	// TermCredits is the target credit load per term. Zero or less uses the
	// calendar default.
	TermCredits float64 `json:"term_credits,omitempty"`

	// SkipSchedule leaves Result.TermPlan nil.
	SkipSchedule bool `json:"skip_schedule,omitempty"`

	// Timeout bounds how long the caller waits for metrics. Zero waits
	// indefinitely.
	Timeout time.Duration `json:"-"`

	// ScheduleFor, when set, supplies the scheduler configuration for the
	// degree's calendar in place of the built-in defaults.
	ScheduleFor func(quarter bool) schedule.Config `json:"-"`
}

// Validate checks option values.
func (o Options) Validate() error {
	if o.TermCredits < 0 {
		return cerrors.New(cerrors.ErrCodeInvalidInput, "term credits must not be negative, got %.1f", o.TermCredits)
	}
	if o.Timeout < 0 {
		return cerrors.New(cerrors.ErrCodeInvalidInput, "timeout must not be negative, got %s", o.Timeout)
	}
	return nil
}

// SchedulerConfig derives the scheduler configuration from the degree's
// calendar system and TermCredits. A nil degree is a semester degree.
func (o Options) SchedulerConfig(d *catalog.Degree) schedule.Config {
	quarter := d != nil && d.IsQuarterSystem()
	if o.ScheduleFor != nil {
		return o.ScheduleFor(quarter)
	}
	return schedule.ForSystem(quarter, o.TermCredits)
}

// Result contains the outputs of a pipeline run.
type Result struct {
	School *catalog.School

	// Degree is the plan's degree, or nil when the catalog does not list it.
	Degree *catalog.Degree

	Plan    *catalog.Plan
	Graph   *dag.DAG
	Metrics metrics.CurriculumMetrics
	Summary critpath.Summary

	// TermPlan is nil when scheduling was skipped.
	TermPlan *schedule.Plan

	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Courses       int
	Prerequisites int
	Corequisites  int
	LoadTime      time.Duration
	MetricsTime   time.Duration
	ScheduleTime  time.Duration
}

// RenderContext returns the result as input for the report renderers.
func (r *Result) RenderContext() *render.Context {
	return &render.Context{
		School:   r.School,
		Plan:     r.Plan,
		Graph:    r.Graph,
		Metrics:  r.Metrics,
		Summary:  r.Summary,
		TermPlan: r.TermPlan,
	}
}

// Report returns the result in its JSON report form.
func (r *Result) Report() *cio.Report {
	return cio.NewReport(r.School, r.Plan, r.Metrics, r.Summary, r.TermPlan)
}
