package render

import (
	"math"

	"github.com/matzehuels/curricula/pkg/catalog"
	"github.com/matzehuels/curricula/pkg/critpath"
	"github.com/matzehuels/curricula/pkg/dag"
	"github.com/matzehuels/curricula/pkg/metrics"
	"github.com/matzehuels/curricula/pkg/schedule"
)

// Context holds everything a report is built from. TermPlan may be nil, in
// which case schedule sections are left out.
type Context struct {
	School   *catalog.School
	Plan     *catalog.Plan
	Graph    *dag.DAG
	Metrics  metrics.CurriculumMetrics
	Summary  critpath.Summary
	TermPlan *schedule.Plan
}

func (c *Context) degree() (*catalog.Degree, bool) {
	return c.School.Degree(c.Plan.DegreeID)
}

// Institution returns the plan's institution, falling back to the school name.
func (c *Context) Institution() string {
	if c.Plan.Institution != "" {
		return c.Plan.Institution
	}
	return c.School.Name
}

// DegreeName returns the degree ID, or the plan's degree reference when the
// degree is not in the catalog.
func (c *Context) DegreeName() string {
	if d, ok := c.degree(); ok {
		return d.ID()
	}
	return c.Plan.DegreeID
}

// DegreeType returns the degree type, "BS" when unknown.
func (c *Context) DegreeType() string {
	if d, ok := c.degree(); ok && d.DegreeType != "" {
		return d.DegreeType
	}
	return "BS"
}

// SystemType returns the calendar system, "semester" when unknown.
func (c *Context) SystemType() string {
	if d, ok := c.degree(); ok && d.SystemType != "" {
		return d.SystemType
	}
	return "semester"
}

// CIPCode returns the degree's CIP code, or "".
func (c *Context) CIPCode() string {
	if d, ok := c.degree(); ok {
		return d.CIPCode
	}
	return ""
}

// ScaleFactor returns the complexity scale of the degree's calendar.
func (c *Context) ScaleFactor() float64 {
	if d, ok := c.degree(); ok {
		return d.ComplexityScaleFactor()
	}
	return 1
}

// ScaledComplexity returns the plan's total complexity on the semester scale.
func (c *Context) ScaledComplexity() float64 {
	return c.Metrics.ScaledComplexity(c.Plan.Courses, c.ScaleFactor())
}

// TotalCredits sums the credit hours of the plan's courses.
func (c *Context) TotalCredits() float64 {
	total := 0.0
	for _, key := range c.Plan.Courses {
		if cr, ok := c.School.CreditHours(key); ok {
			total += cr
		}
	}
	return total
}

// Years returns the number of academic years the term plan spans: three
// quarters or two semesters per year, rounded up.
func (c *Context) Years() int {
	if c.TermPlan == nil {
		return 0
	}
	perYear := 2.0
	if c.TermPlan.Quarter {
		perYear = 3.0
	}
	return int(math.Ceil(float64(c.TermPlan.TermsUsed()) / perYear))
}

// CourseName returns the course's name, or its key when it is unknown.
func (c *Context) CourseName(key string) string {
	if course, ok := c.School.Course(key); ok && course.Name != "" {
		return course.Name
	}
	return key
}
