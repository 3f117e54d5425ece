package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/curricula/pkg/buildinfo"
	"github.com/matzehuels/curricula/pkg/catalog"
	"github.com/matzehuels/curricula/pkg/dag"
	cerrors "github.com/matzehuels/curricula/pkg/errors"
	cio "github.com/matzehuels/curricula/pkg/io"
	"github.com/matzehuels/curricula/pkg/pipeline"
	"github.com/matzehuels/curricula/pkg/schedule"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

type analyzeResponse struct {
	*cio.Report
	Stats statsResponse `json:"stats"`
}

type statsResponse struct {
	Courses       int   `json:"courses"`
	Prerequisites int   `json:"prerequisites"`
	Corequisites  int   `json:"corequisites"`
	MetricsMicros int64 `json:"metrics_us"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	opts, err := s.analyzeOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	var school *catalog.School
	if strings.Contains(r.Header.Get("Content-Type"), "json") {
		school, err = cio.ReadCatalog(body)
	} else {
		school, err = catalog.ParseCSV(body)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.AnalyzeSchool(r.Context(), school, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analyzeResponse{
		Report: result.Report(),
		Stats: statsResponse{
			Courses:       result.Stats.Courses,
			Prerequisites: result.Stats.Prerequisites,
			Corequisites:  result.Stats.Corequisites,
			MetricsMicros: result.Stats.MetricsTime.Microseconds(),
		},
	})
}

func (s *Server) analyzeOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{PlanName: q.Get("plan"), Timeout: s.Timeout}
	if v := q.Get("term_credits"); v != "" {
		credits, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "term_credits %q is not a number", v)
		}
		opts.TermCredits = credits
	}
	if v := q.Get("skip_schedule"); v != "" {
		skip, err := strconv.ParseBool(v)
		if err != nil {
			return opts, cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "skip_schedule %q is not a boolean", v)
		}
		opts.SkipSchedule = skip
	}
	return opts, opts.Validate()
}

// scheduleRequest describes a course list with its requisites directly.
// Requisite entries naming courses outside Courses are ignored.
type scheduleRequest struct {
	Courses       []string            `json:"courses"`
	Credits       map[string]float64  `json:"credits"`
	Prerequisites map[string][]string `json:"prerequisites"`
	Corequisites  map[string][]string `json:"corequisites"`
	TermCredits   float64             `json:"term_credits"`
	Quarter       bool                `json:"quarter"`
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, cerrors.Wrap(cerrors.ErrCodeInvalidFormat, err, "decode schedule request"))
		return
	}
	if req.TermCredits < 0 {
		s.writeError(w, r, cerrors.New(cerrors.ErrCodeInvalidInput, "term_credits must not be negative"))
		return
	}

	g, err := req.graph()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	cfg := schedule.ForSystem(req.Quarter, req.TermCredits)
	plan := schedule.New(g, schedule.CreditMap(req.Credits), cfg, s.logger).Schedule(req.Courses)
	writeJSON(w, http.StatusOK, plan)
}

func (req scheduleRequest) graph() (*dag.DAG, error) {
	g := dag.New()
	for _, c := range req.Courses {
		if err := cerrors.ValidateCourseID(c); err != nil {
			return nil, err
		}
		_ = g.AddCourse(c)
	}
	add := func(edges map[string][]string, link func(course, req string) error) error {
		for _, course := range g.Courses() {
			for _, other := range edges[course] {
				if !g.Contains(other) {
					continue
				}
				if err := link(course, other); err != nil {
					return cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "requisite of %s", course)
				}
			}
		}
		return nil
	}
	if err := add(req.Prerequisites, g.AddPrerequisite); err != nil {
		return nil, err
	}
	if err := add(req.Corequisites, g.AddCorequisite); err != nil {
		return nil, err
	}
	return g, nil
}

type errorBody struct {
	Code      cerrors.Code `json:"code"`
	Message   string       `json:"message"`
	RequestID string       `json:"request_id,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := cerrors.GetCode(err)
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		code = cerrors.ErrCodeInvalidInput
	}
	if code == "" {
		code = cerrors.ErrCodeInternal
	}
	status := statusFor(code, maxErr != nil)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "err", err, "request_id", middleware.GetReqID(r.Context()))
	}
	writeJSON(w, status, map[string]errorBody{"error": {
		Code:      code,
		Message:   cerrors.UserMessage(err),
		RequestID: middleware.GetReqID(r.Context()),
	}})
}

var clientErrors = []cerrors.Code{
	cerrors.ErrCodeInvalidInput,
	cerrors.ErrCodeInvalidCatalog,
	cerrors.ErrCodeInvalidConfig,
	cerrors.ErrCodeInvalidFormat,
	cerrors.ErrCodeInvalidPath,
}

// statusFor maps an error code to an HTTP status. MISSING_KEY is an engine
// invariant failure and falls through to 500.
func statusFor(code cerrors.Code, tooLarge bool) int {
	switch {
	case tooLarge:
		return http.StatusRequestEntityTooLarge
	case code == cerrors.ErrCodeCycleDetected:
		return http.StatusUnprocessableEntity
	case slices.Contains(clientErrors, code):
		return http.StatusBadRequest
	case code == cerrors.ErrCodeNotFound, code == cerrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case code == cerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
