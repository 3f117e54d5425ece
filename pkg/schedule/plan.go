package schedule

import "slices"

// Term is one scheduling period. Number is 1-indexed.
type Term struct {
	Number       int      `json:"number"`
	Courses      []string `json:"courses"`
	TotalCredits float64  `json:"total_credits"`
}

func (t *Term) add(course string, credits float64) {
	t.Courses = append(t.Courses, course)
	t.TotalCredits += credits
}

func (t *Term) remove(course string, credits float64) {
	if i := slices.Index(t.Courses, course); i >= 0 {
		t.Courses = slices.Delete(t.Courses, i, i+1)
		t.TotalCredits -= credits
	}
}

// Plan is a term-by-term assignment of courses.
type Plan struct {
	Terms         []Term   `json:"terms"`
	Quarter       bool     `json:"quarter"`
	TargetCredits float64  `json:"target_credits"`
	Unscheduled   []string `json:"unscheduled"`
}

// NewPlan returns a plan with n empty terms.
func NewPlan(n int, quarter bool, target float64) *Plan {
	p := &Plan{
		Terms:         make([]Term, 0, n),
		Quarter:       quarter,
		TargetCredits: target,
		Unscheduled:   []string{},
	}
	for range n {
		p.AddTerm()
	}
	return p
}

// AddTerm appends an empty term.
func (p *Plan) AddTerm() {
	p.Terms = append(p.Terms, Term{Number: len(p.Terms) + 1, Courses: []string{}})
}

// TermLabel returns "Quarter" or "Semester".
func (p *Plan) TermLabel() string {
	if p.Quarter {
		return "Quarter"
	}
	return "Semester"
}

// TermsUsed returns the number of terms holding at least one course.
func (p *Plan) TermsUsed() int {
	n := 0
	for _, t := range p.Terms {
		if len(t.Courses) > 0 {
			n++
		}
	}
	return n
}

// TermOf returns the 1-indexed term number holding course, or 0 if the
// course is not scheduled.
func (p *Plan) TermOf(course string) int {
	for _, t := range p.Terms {
		if slices.Contains(t.Courses, course) {
			return t.Number
		}
	}
	return 0
}

// TotalCredits returns the credit sum over all terms.
func (p *Plan) TotalCredits() float64 {
	total := 0.0
	for _, t := range p.Terms {
		total += t.TotalCredits
	}
	return total
}
