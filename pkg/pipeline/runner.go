package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/curricula/pkg/catalog"
	"github.com/matzehuels/curricula/pkg/critpath"
	"github.com/matzehuels/curricula/pkg/dag"
	"github.com/matzehuels/curricula/pkg/dag/transform"
	cerrors "github.com/matzehuels/curricula/pkg/errors"
	cio "github.com/matzehuels/curricula/pkg/io"
	"github.com/matzehuels/curricula/pkg/metrics"
	"github.com/matzehuels/curricula/pkg/observability"
	"github.com/matzehuels/curricula/pkg/schedule"
)

// Runner executes analysis runs. It holds no per-run state, so multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
	Hooks  observability.Hooks
}

// NewRunner creates a runner. A nil logger uses log.Default() and nil hooks
// discard every event.
func NewRunner(logger *log.Logger, hooks observability.Hooks) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Logger: logger,
		Hooks:  observability.OrNoop(hooks),
	}
}

// Analyze loads the catalog at opts.Path and analyzes it.
func (r *Runner) Analyze(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if opts.Path == "" {
		return nil, cerrors.New(cerrors.ErrCodeInvalidInput, "no catalog path given")
	}

	r.Hooks.OnStageStart(ctx, observability.StageLoad)
	start := time.Now()
	s, err := cio.LoadCatalog(opts.Path)
	loadTime := time.Since(start)
	count := 0
	if s != nil {
		count = s.CourseCount()
	}
	r.Hooks.OnStageComplete(ctx, observability.StageLoad, count, loadTime, err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	r.Logger.Info("loaded catalog",
		"school", s.Name,
		"courses", s.CourseCount(),
		"duration", loadTime.Round(time.Millisecond))

	result, err := r.AnalyzeSchool(ctx, s, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = loadTime
	return result, nil
}

// AnalyzeSchool analyzes a catalog already in memory.
func (r *Runner) AnalyzeSchool(ctx context.Context, s *catalog.School, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	plan, err := selectPlan(s, opts.PlanName)
	if err != nil {
		return nil, err
	}
	if err := s.ValidatePlans(); err != nil {
		r.Logger.Warn("plan lists unknown courses", "err", err)
	}
	if err := s.ValidateCourseDependencies(); err != nil {
		r.Logger.Debug("requisites outside the catalog are ignored", "err", err)
	}

	result := &Result{School: s, Plan: plan}
	if d, ok := s.Degree(plan.DegreeID); ok {
		result.Degree = d
	}

	g := s.BuildDAG()
	result.Graph = g
	result.Stats.Courses = g.CourseCount()
	result.Stats.Prerequisites, result.Stats.Corequisites = g.EdgeCount()

	// Stage 2: Metrics
	r.Hooks.OnStageStart(ctx, observability.StageMetrics)
	start := time.Now()
	m, err := r.computeMetrics(ctx, g, opts.Timeout)
	result.Stats.MetricsTime = time.Since(start)
	r.Hooks.OnStageComplete(ctx, observability.StageMetrics, len(m), result.Stats.MetricsTime, err)
	if err != nil {
		if cerrors.Is(err, cerrors.ErrCodeCycleDetected) {
			if cycle := transform.FindCycle(g); cycle != nil {
				path := strings.Join(cycle, " → ")
				r.Logger.Error("prerequisite cycle", "courses", path)
				return nil, fmt.Errorf("metrics: %w (%s)", err, path)
			}
		}
		return nil, fmt.Errorf("metrics: %w", err)
	}
	result.Metrics = m
	result.Summary = critpath.Summarize(g, m, plan.Courses)

	r.Logger.Info("computed metrics",
		"courses", len(m),
		"longest_delay", result.Summary.LongestDelay,
		"duration", result.Stats.MetricsTime.Round(time.Millisecond))

	if opts.SkipSchedule {
		return result, nil
	}

	// Stage 3: Schedule
	r.Hooks.OnStageStart(ctx, observability.StageSchedule)
	start = time.Now()
	cfg := opts.SchedulerConfig(result.Degree)
	result.TermPlan = schedule.New(g, s, cfg, r.Logger).Schedule(plan.Courses)
	result.Stats.ScheduleTime = time.Since(start)
	r.Hooks.OnStageComplete(ctx, observability.StageSchedule, len(plan.Courses), result.Stats.ScheduleTime, nil)

	r.Logger.Info("scheduled plan",
		"terms", result.TermPlan.TermsUsed(),
		"unscheduled", len(result.TermPlan.Unscheduled),
		"duration", result.Stats.ScheduleTime.Round(time.Millisecond))

	return result, nil
}

func selectPlan(s *catalog.School, name string) (*catalog.Plan, error) {
	if name == "" {
		return s.DefaultPlan(), nil
	}
	if p, ok := s.Plan(name); ok {
		return p, nil
	}
	return nil, cerrors.New(cerrors.ErrCodeNotFound, "plan %q not found in %s", name, s.Name)
}

// computeMetrics runs the metrics engine, giving up waiting once ctx is done
// or timeout elapses. The engine itself is not interruptible; an abandoned
// computation finishes in the background and its result is dropped.
func (r *Runner) computeMetrics(ctx context.Context, g *dag.DAG, timeout time.Duration) (metrics.CurriculumMetrics, error) {
	if timeout <= 0 && ctx.Done() == nil {
		return metrics.ComputeAll(g)
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return nil, r.contextError(err, g, timeout)
	}

	type outcome struct {
		m   metrics.CurriculumMetrics
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		m, err := metrics.ComputeAll(g)
		done <- outcome{m, err}
	}()

	select {
	case o := <-done:
		return o.m, o.err
	case <-ctx.Done():
		return nil, r.contextError(ctx.Err(), g, timeout)
	}
}

func (r *Runner) contextError(err error, g *dag.DAG, timeout time.Duration) error {
	if !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	r.Logger.Warn("metrics timed out", "courses", g.CourseCount(), "timeout", timeout)
	return cerrors.Wrap(cerrors.ErrCodeTimeout, err, "metrics did not finish in time")
}
