package schedule

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/curricula/pkg/dag"
	"github.com/matzehuels/curricula/pkg/metrics"
)

// CreditSource reports the credit hours of a course.
type CreditSource interface {
	CreditHours(id string) (float64, bool)
}

// CreditMap is a CreditSource backed by a map.
type CreditMap map[string]float64

// CreditHours implements CreditSource.
func (m CreditMap) CreditHours(id string) (float64, bool) {
	v, ok := m[id]
	return v, ok
}

// Scheduler distributes the courses of a plan across terms.
//
// A Scheduler holds no per-call state, so one instance may serve several
// plans over the same graph.
type Scheduler struct {
	graph   *dag.DAG
	credits CreditSource
	config  Config
	logger  *log.Logger
}

// New creates a scheduler over g. Credit hours come from credits; a nil
// source schedules every course at 0 credits. A nil logger discards output.
func New(g *dag.DAG, credits CreditSource, cfg Config, logger *log.Logger) *Scheduler {
	if credits == nil {
		credits = CreditMap{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scheduler{graph: g, credits: credits, config: cfg, logger: logger}
}

// Config returns the scheduler's configuration.
func (s *Scheduler) Config() Config { return s.config }

// Schedule assigns every course in courses to exactly one term. Duplicate
// IDs are scheduled once. Courses unknown to the credit source count as 0
// credits. It never fails: when courses do not fit, terms are appended.
func (s *Scheduler) Schedule(courses []string) *Plan {
	start := time.Now()
	r := s.newRun(courses)

	priority, fillers := r.partition()
	ordered := r.order(priority)
	for _, g := range ordered {
		r.placeOrdered(g)
	}
	for _, g := range fillers {
		r.placeFiller(g)
	}
	moves := r.rebalance()

	s.logger.Debug("scheduled courses",
		"courses", len(r.courses),
		"groups", len(r.groups),
		"fillers", len(fillers),
		"terms", len(r.plan.Terms),
		"rebalanced", moves,
		"duration", time.Since(start))
	return r.plan
}

// run carries the state of one Schedule call.
type run struct {
	*Scheduler
	courses  []string
	inPlan   map[string]bool
	creditOf map[string]float64
	delay    map[string]int
	priority map[string]int
	groups   []*group
	groupOf  map[string]*group
	termOf   map[string]int
	plan     *Plan
}

func (s *Scheduler) newRun(courses []string) *run {
	r := &run{
		Scheduler: s,
		inPlan:    make(map[string]bool, len(courses)),
		creditOf:  make(map[string]float64, len(courses)),
		priority:  make(map[string]int, len(courses)),
		groupOf:   make(map[string]*group, len(courses)),
		termOf:    make(map[string]int, len(courses)),
		plan:      NewPlan(s.config.Terms, s.config.Quarter, s.config.TargetCredits),
	}
	for _, c := range courses {
		if r.inPlan[c] {
			continue
		}
		r.inPlan[c] = true
		r.courses = append(r.courses, c)

		cr, ok := s.credits.CreditHours(c)
		if !ok {
			s.logger.Debug("course has no credit hours; scheduling at 0", "course", c)
		}
		r.creditOf[c] = cr
	}

	delay, err := metrics.Delay(s.graph)
	if err != nil {
		s.logger.Warn("cannot compute delay; scheduling without chain priority", "err", err)
		delay = map[string]int{}
	}
	r.delay = delay

	for _, c := range r.courses {
		r.priority[c] = r.chainPriority(c)
	}
	r.buildGroups()
	return r
}

// chainPriority favors courses that open long in-plan chains.
func (r *run) chainPriority(c string) int {
	d := r.delay[c]
	hasPrereq := len(r.prereqsInPlan(c)) > 0
	hasDependent := len(r.dependentsInPlan(c)) > 0
	switch {
	case hasDependent && !hasPrereq:
		return 10*d + 100
	case hasDependent:
		return 5 * d
	default:
		return d
	}
}

func (r *run) prereqsInPlan(c string) []string {
	prereqs, _ := r.graph.Prerequisites(c)
	return r.filterInPlan(prereqs)
}

func (r *run) dependentsInPlan(c string) []string {
	deps, _ := r.graph.Dependents(c)
	return r.filterInPlan(deps)
}

func (r *run) filterInPlan(ids []string) []string {
	var out []string
	for _, id := range ids {
		if r.inPlan[id] {
			out = append(out, id)
		}
	}
	return out
}

// ensureTerms grows the plan until index i exists.
func (r *run) ensureTerms(i int) {
	for len(r.plan.Terms) <= i {
		r.plan.AddTerm()
	}
}

func (r *run) assign(g *group, i int) {
	t := &r.plan.Terms[i]
	for _, c := range g.members {
		t.add(c, r.creditOf[c])
		r.termOf[c] = i
	}
	r.logger.Debug("placed group", "courses", g.members, "term", t.Number, "credits", t.TotalCredits)
}
