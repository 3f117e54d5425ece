package io

import (
	"io"

	"github.com/matzehuels/curricula/pkg/catalog"
	"github.com/matzehuels/curricula/pkg/critpath"
	"github.com/matzehuels/curricula/pkg/metrics"
	"github.com/matzehuels/curricula/pkg/schedule"
)

// Report is the JSON form of one analysis.
type Report struct {
	Curriculum       string           `json:"curriculum"`
	Institution      string           `json:"institution"`
	Degree           string           `json:"degree,omitempty"`
	SystemType       string           `json:"system_type,omitempty"`
	ScaledComplexity float64          `json:"scaled_complexity"`
	Summary          critpath.Summary `json:"summary"`
	Courses          []CourseReport   `json:"courses"`
	Schedule         *schedule.Plan   `json:"schedule,omitempty"`
}

// CourseReport is one course with its metrics.
type CourseReport struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	CreditHours float64 `json:"credit_hours"`
	metrics.CourseMetrics
}

// NewReport assembles a report for plan. Courses are listed by complexity,
// highest first. termPlan may be nil.
func NewReport(s *catalog.School, plan *catalog.Plan, m metrics.CurriculumMetrics,
	summary critpath.Summary, termPlan *schedule.Plan) *Report {
	r := &Report{
		Curriculum:  plan.Name,
		Institution: s.Name,
		Summary:     summary,
		Courses:     []CourseReport{},
		Schedule:    termPlan,
	}
	if plan.Institution != "" {
		r.Institution = plan.Institution
	}

	scale := 1.0
	if d, ok := s.Degree(plan.DegreeID); ok {
		r.Degree = d.ID()
		r.SystemType = d.SystemType
		scale = d.ComplexityScaleFactor()
	}
	r.ScaledComplexity = m.ScaledComplexity(plan.Courses, scale)

	inPlan := make(map[string]bool, len(plan.Courses))
	for _, key := range plan.Courses {
		inPlan[key] = true
	}
	for _, key := range m.Ranked() {
		if !inPlan[key] {
			continue
		}
		cr := CourseReport{Key: key, CourseMetrics: m[key]}
		if c, ok := s.Course(key); ok {
			cr.Name = c.Name
			cr.CreditHours = c.CreditHours
		}
		r.Courses = append(r.Courses, cr)
	}
	return r
}

// WriteReport encodes r as indented JSON.
func WriteReport(r *Report, w io.Writer) error {
	return encode(w, r)
}
