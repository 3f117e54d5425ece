package catalog

import (
	"errors"
	"fmt"

	"github.com/matzehuels/curricula/pkg/dag"
)

// DefaultPlanName names the plan used when a catalog has no plans.
const DefaultPlanName = "All Courses"

// School is a course catalog with its degrees and plans. Courses keep their
// insertion order.
type School struct {
	Name    string
	Degrees []Degree
	Plans   []Plan

	keys    []string
	courses map[string]*Course
}

// NewSchool returns an empty catalog.
func NewSchool(name string) *School {
	return &School{Name: name, courses: make(map[string]*Course)}
}

// AddCourse stores c under its natural key. It returns false and changes
// nothing if the key is taken.
func (s *School) AddCourse(c Course) bool {
	key := c.Key()
	if _, ok := s.courses[key]; ok {
		return false
	}
	s.AddCourseWithKey(key, c)
	return true
}

// AddCourseWithKey stores c under key, replacing any course stored there.
func (s *School) AddCourseWithKey(key string, c Course) {
	if _, ok := s.courses[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.courses[key] = &c
}

// Course returns the course stored under key.
func (s *School) Course(key string) (*Course, bool) {
	c, ok := s.courses[key]
	return c, ok
}

// CourseByNaturalKey returns the storage key and course of the first course,
// in insertion order, whose natural key is key.
func (s *School) CourseByNaturalKey(key string) (string, *Course, bool) {
	for _, k := range s.keys {
		if c := s.courses[k]; c.Key() == key {
			return k, c, true
		}
	}
	return "", nil, false
}

// CourseKeys returns all storage keys in insertion order.
func (s *School) CourseKeys() []string {
	return append([]string(nil), s.keys...)
}

// CourseCount returns the number of courses.
func (s *School) CourseCount() int { return len(s.keys) }

// CreditHours returns the credit hours of the course stored under key.
func (s *School) CreditHours(key string) (float64, bool) {
	c, ok := s.courses[key]
	if !ok {
		return 0, false
	}
	return c.CreditHours, true
}

// AddDegree appends a degree.
func (s *School) AddDegree(d Degree) { s.Degrees = append(s.Degrees, d) }

// Degree returns the degree with the given ID.
func (s *School) Degree(id string) (*Degree, bool) {
	for i := range s.Degrees {
		if s.Degrees[i].ID() == id {
			return &s.Degrees[i], true
		}
	}
	return nil, false
}

// AddPlan appends a plan.
func (s *School) AddPlan(p Plan) { s.Plans = append(s.Plans, p) }

// Plan returns the plan with the given name.
func (s *School) Plan(name string) (*Plan, bool) {
	for i := range s.Plans {
		if s.Plans[i].Name == name {
			return &s.Plans[i], true
		}
	}
	return nil, false
}

// PlansForDegree returns the plans toward the degree with the given ID.
func (s *School) PlansForDegree(id string) []*Plan {
	var out []*Plan
	for i := range s.Plans {
		if s.Plans[i].DegreeID == id {
			out = append(out, &s.Plans[i])
		}
	}
	return out
}

// DefaultPlan returns the first plan, or a plan named DefaultPlanName
// holding every course when the school has none.
func (s *School) DefaultPlan() *Plan {
	if len(s.Plans) > 0 {
		return &s.Plans[0]
	}
	p := &Plan{Name: DefaultPlanName, Institution: s.Name, Courses: s.CourseKeys()}
	if len(s.Degrees) > 0 {
		p.DegreeID = s.Degrees[0].ID()
	}
	return p
}

// ValidatePlans reports every plan entry that names an unknown course.
func (s *School) ValidatePlans() error {
	var errs []error
	for _, p := range s.Plans {
		for _, key := range p.Courses {
			if _, ok := s.courses[key]; !ok {
				errs = append(errs, fmt.Errorf("plan %q: missing course %q", p.Name, key))
			}
		}
	}
	return errors.Join(errs...)
}

// ValidateCourseDependencies reports every requisite that names an unknown
// course.
func (s *School) ValidateCourseDependencies() error {
	var errs []error
	for _, key := range s.keys {
		c := s.courses[key]
		for _, p := range c.Prerequisites {
			if _, ok := s.courses[p]; !ok {
				errs = append(errs, fmt.Errorf("course %q: prerequisite %q not found", key, p))
			}
		}
		for _, co := range append(append([]string(nil), c.Corequisites...), c.StrictCorequisites...) {
			if _, ok := s.courses[co]; !ok {
				errs = append(errs, fmt.Errorf("course %q: corequisite %q not found", key, co))
			}
		}
	}
	return errors.Join(errs...)
}

// BuildDAG returns the prerequisite graph of the catalog. Courses are added
// in insertion order. Prerequisites become prerequisite edges; corequisites
// and strict corequisites both become corequisite edges. Requisites naming
// unknown courses, and self references, are dropped.
func (s *School) BuildDAG() *dag.DAG {
	g := dag.New()
	for _, key := range s.keys {
		_ = g.AddCourse(key)
	}
	for _, key := range s.keys {
		c := s.courses[key]
		for _, p := range c.Prerequisites {
			if _, ok := s.courses[p]; ok {
				_ = g.AddPrerequisite(key, p)
			}
		}
		for _, co := range c.Corequisites {
			if _, ok := s.courses[co]; ok {
				_ = g.AddCorequisite(key, co)
			}
		}
		for _, co := range c.StrictCorequisites {
			if _, ok := s.courses[co]; ok {
				_ = g.AddCorequisite(key, co)
			}
		}
	}
	return g
}
