package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Course is one catalog entry. Requisites hold storage keys.
type Course struct {
	Name               string   `json:"name"`
	Prefix             string   `json:"prefix"`
	Number             string   `json:"number"`
	Prerequisites      []string `json:"prerequisites,omitempty"`
	Corequisites       []string `json:"corequisites,omitempty"`
	StrictCorequisites []string `json:"strict_corequisites,omitempty"`
	CreditHours        float64  `json:"credit_hours"`
	CanonicalName      string   `json:"canonical_name,omitempty"`
	CSVID              string   `json:"csv_id,omitempty"`
}

// Key returns the natural key, prefix and number run together.
func (c *Course) Key() string { return c.Prefix + c.Number }

// AddPrerequisite records key as a prerequisite once.
func (c *Course) AddPrerequisite(key string) {
	if !slices.Contains(c.Prerequisites, key) {
		c.Prerequisites = append(c.Prerequisites, key)
	}
}

// AddCorequisite records key as a corequisite once.
func (c *Course) AddCorequisite(key string) {
	if !slices.Contains(c.Corequisites, key) {
		c.Corequisites = append(c.Corequisites, key)
	}
}

// AddStrictCorequisite records key as a strict corequisite once.
func (c *Course) AddStrictCorequisite(key string) {
	if !slices.Contains(c.StrictCorequisites, key) {
		c.StrictCorequisites = append(c.StrictCorequisites, key)
	}
}

// Degree describes a degree program.
type Degree struct {
	Name       string `json:"name"`
	DegreeType string `json:"degree_type"`
	CIPCode    string `json:"cip_code"`
	SystemType string `json:"system_type"`
}

// ID returns the degree type followed by the name, e.g. "BS Computer Science".
func (d Degree) ID() string { return fmt.Sprintf("%s %s", d.DegreeType, d.Name) }

// IsQuarterSystem reports whether the system type mentions "quarter".
func (d Degree) IsQuarterSystem() bool {
	return strings.Contains(strings.ToLower(d.SystemType), "quarter")
}

// ComplexityScaleFactor is 2/3 for quarter systems and 1 otherwise, which
// puts quarter curricula on the semester scale.
func (d Degree) ComplexityScaleFactor() float64 {
	if d.IsQuarterSystem() {
		return 2.0 / 3.0
	}
	return 1.0
}

// Plan is an ordered list of course storage keys toward a degree.
type Plan struct {
	Name        string   `json:"name"`
	DegreeID    string   `json:"degree_id"`
	Institution string   `json:"institution,omitempty"`
	Courses     []string `json:"courses"`
}

// AddCourse appends key unless the plan already holds it.
func (p *Plan) AddCourse(key string) {
	if !slices.Contains(p.Courses, key) {
		p.Courses = append(p.Courses, key)
	}
}

// RemoveCourse removes key and reports whether it was present.
func (p *Plan) RemoveCourse(key string) bool {
	i := slices.Index(p.Courses, key)
	if i < 0 {
		return false
	}
	p.Courses = slices.Delete(p.Courses, i, i+1)
	return true
}
