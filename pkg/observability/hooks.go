// Package observability provides hooks for metrics and logging.
//
// Hooks are plain values passed to the components that emit events; there
// is no process-wide registry. Components treat a nil hook as [Noop].
//
// # Implementations
//
//   - [Noop] discards every event
//   - [LogHooks] writes events to a charmbracelet logger at debug level
//   - [PrometheusHooks] records counters and histograms in its own registry
//   - [Multi] fans events out to several hooks
//
// # Usage
//
//	hooks := observability.NewPrometheusHooks()
//	runner := pipeline.NewRunner(logger, hooks)
//	srv := server.New(runner, logger, hooks)
//	http.Handle("/metrics", hooks.Handler())
package observability

import (
	"context"
	"net/http"
	"time"
)

// Pipeline stages reported through [PipelineHooks].
const (
	StageLoad     = "load"
	StageMetrics  = "metrics"
	StageSchedule = "schedule"
)

// PipelineHooks receives events from the analysis pipeline. The count passed
// to OnStageComplete is the number of courses the stage produced or handled.
type PipelineHooks interface {
	OnStageStart(ctx context.Context, stage string)
	OnStageComplete(ctx context.Context, stage string, count int, duration time.Duration, err error)
}

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, route string)

	// OnResponse records a completed request.
	OnResponse(ctx context.Context, method, route string, status int, duration time.Duration)
}

// Hooks combines every event category.
type Hooks interface {
	PipelineHooks
	HTTPHooks
}

// Noop is a no-op implementation of Hooks.
type Noop struct{}

func (Noop) OnStageStart(context.Context, string)                               {}
func (Noop) OnStageComplete(context.Context, string, int, time.Duration, error) {}
func (Noop) OnRequest(context.Context, string, string)                          {}
func (Noop) OnResponse(context.Context, string, string, int, time.Duration)     {}

// OrNoop returns h, or Noop when h is nil.
func OrNoop(h Hooks) Hooks {
	if h == nil {
		return Noop{}
	}
	return h
}

// Multi forwards every event to each of its hooks in order.
type Multi []Hooks

func (m Multi) OnStageStart(ctx context.Context, stage string) {
	for _, h := range m {
		h.OnStageStart(ctx, stage)
	}
}

func (m Multi) OnStageComplete(ctx context.Context, stage string, count int, d time.Duration, err error) {
	for _, h := range m {
		h.OnStageComplete(ctx, stage, count, d, err)
	}
}

func (m Multi) OnRequest(ctx context.Context, method, route string) {
	for _, h := range m {
		h.OnRequest(ctx, method, route)
	}
}

func (m Multi) OnResponse(ctx context.Context, method, route string, status int, d time.Duration) {
	for _, h := range m {
		h.OnResponse(ctx, method, route, status, d)
	}
}

// MetricsHandler returns the exposition handler of h, or of the first member
// of a [Multi] that serves one.
func MetricsHandler(h Hooks) (http.Handler, bool) {
	switch v := h.(type) {
	case interface{ Handler() http.Handler }:
		return v.Handler(), true
	case Multi:
		for _, m := range v {
			if handler, ok := MetricsHandler(m); ok {
				return handler, true
			}
		}
	}
	return nil, false
}
