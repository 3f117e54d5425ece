package schedule

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/curricula/pkg/dag"
)

func TestConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want Config
	}{
		{"semester", Semester(15), Config{TargetCredits: 15, MaxCredits: 21, Terms: 8}},
		{"quarter", Quarter(15), Config{TargetCredits: 15, MaxCredits: 19, Terms: 12, Quarter: true}},
		{"default", DefaultConfig(), Config{TargetCredits: 15, MaxCredits: 21, Terms: 8}},
		{"system semester", ForSystem(false, 12), Config{TargetCredits: 12, MaxCredits: 18, Terms: 8}},
		{"system quarter default", ForSystem(true, 0), Config{TargetCredits: 15, MaxCredits: 19, Terms: 12, Quarter: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg)
		})
	}
}

func TestPlan(t *testing.T) {
	p := NewPlan(2, true, 15)
	require.Len(t, p.Terms, 2)
	assert.Equal(t, "Quarter", p.TermLabel())
	assert.Equal(t, "Semester", NewPlan(1, false, 15).TermLabel())

	p.Terms[1].add("CS1", 4)
	p.AddTerm()
	assert.Equal(t, 3, p.Terms[2].Number)
	assert.Equal(t, 1, p.TermsUsed())
	assert.Equal(t, 2, p.TermOf("CS1"))
	assert.Equal(t, 0, p.TermOf("CS2"))
	assert.InDelta(t, 4.0, p.TotalCredits(), 1e-9)

	p.Terms[1].remove("CS1", 4)
	assert.Empty(t, p.Terms[1].Courses)
	assert.InDelta(t, 0.0, p.Terms[1].TotalCredits, 1e-9)
}

func TestScheduleChain(t *testing.T) {
	g := dag.New()
	require.NoError(t, g.AddPrerequisite("B", "A"))
	require.NoError(t, g.AddPrerequisite("C", "B"))
	credits := CreditMap{"A": 3, "B": 3, "C": 3}

	p := New(g, credits, DefaultConfig(), nil).Schedule([]string{"C", "B", "A"})

	assert.Equal(t, 1, p.TermOf("A"))
	assert.Equal(t, 2, p.TermOf("B"))
	assert.Equal(t, 3, p.TermOf("C"))
	assert.Len(t, p.Terms, 8)
	assert.Equal(t, 3, p.TermsUsed())
	assert.Empty(t, p.Unscheduled)
}

func TestScheduleCorequisitesShareTerm(t *testing.T) {
	g := dag.New()
	require.NoError(t, g.AddPrerequisite("PHYS1151", "MATH1341"))
	require.NoError(t, g.AddCorequisite("PHYS1151", "PHYS1152"))
	require.NoError(t, g.AddCorequisite("PHYS1153", "PHYS1151"))
	credits := CreditMap{"MATH1341": 4, "PHYS1151": 4, "PHYS1152": 1, "PHYS1153": 0}

	p := New(g, credits, DefaultConfig(), nil).Schedule([]string{"MATH1341", "PHYS1152", "PHYS1151", "PHYS1153"})

	assert.Equal(t, 1, p.TermOf("MATH1341"))
	term := p.TermOf("PHYS1151")
	assert.Equal(t, 2, term)
	assert.Equal(t, term, p.TermOf("PHYS1152"))
	assert.Equal(t, term, p.TermOf("PHYS1153"))
	assert.InDelta(t, 5.0, p.Terms[term-1].TotalCredits, 1e-9)
}

func TestSchedulePriorityOrder(t *testing.T) {
	g := dag.New()
	require.NoError(t, g.AddPrerequisite("B", "A"))
	require.NoError(t, g.AddPrerequisite("C", "B"))
	require.NoError(t, g.AddPrerequisite("E", "D"))
	require.NoError(t, g.AddPrerequisite("H", "G"))
	credits := CreditMap{}
	for _, c := range []string{"A", "B", "C", "D", "E", "G", "H"} {
		credits[c] = 3
	}
	cfg := Config{TargetCredits: 6, MaxCredits: 9, Terms: 8}

	p := New(g, credits, cfg, nil).Schedule([]string{"C", "B", "A", "H", "G", "E", "D"})

	assert.Equal(t, []string{"A", "D"}, p.Terms[0].Courses)
	assert.Equal(t, []string{"G", "B"}, p.Terms[1].Courses)
	assert.Equal(t, []string{"C", "E"}, p.Terms[2].Courses)
	assert.Equal(t, []string{"H"}, p.Terms[3].Courses)
}

func TestScheduleFillersSpread(t *testing.T) {
	credits := CreditMap{"X1": 3, "X2": 3, "X3": 3, "X4": 3}
	cfg := Config{TargetCredits: 15, MaxCredits: 21, Terms: 2}

	p := New(dag.New(), credits, cfg, nil).Schedule([]string{"X1", "X2", "X3", "X4"})

	assert.Equal(t, []string{"X1", "X3"}, p.Terms[0].Courses)
	assert.Equal(t, []string{"X2", "X4"}, p.Terms[1].Courses)
}

func TestScheduleAppendsTerms(t *testing.T) {
	credits := CreditMap{"X1": 4, "X2": 4, "X3": 4, "X4": 4, "X5": 4}
	cfg := Config{TargetCredits: 6, MaxCredits: 9, Terms: 1}

	p := New(dag.New(), credits, cfg, nil).Schedule([]string{"X1", "X2", "X3", "X4", "X5"})

	require.Len(t, p.Terms, 3)
	assert.Equal(t, []string{"X1", "X2"}, p.Terms[0].Courses)
	assert.Equal(t, []string{"X3", "X4"}, p.Terms[1].Courses)
	assert.Equal(t, []string{"X5"}, p.Terms[2].Courses)
	for _, term := range p.Terms {
		assert.LessOrEqual(t, term.TotalCredits, cfg.MaxCredits)
	}
}

func TestScheduleOversizedGroup(t *testing.T) {
	g := dag.New()
	require.NoError(t, g.AddCorequisite("A", "B"))
	require.NoError(t, g.AddCorequisite("A", "C"))
	require.NoError(t, g.AddCourse("X"))
	credits := CreditMap{"A": 8, "B": 8, "C": 8, "X": 3}

	p := New(g, credits, DefaultConfig(), nil).Schedule([]string{"X", "A", "B", "C"})

	term := p.TermOf("A")
	require.NotZero(t, term)
	assert.Equal(t, term, p.TermOf("B"))
	assert.Equal(t, term, p.TermOf("C"))
	assert.ElementsMatch(t, []string{"A", "B", "C"}, p.Terms[term-1].Courses)
	assert.InDelta(t, 24.0, p.Terms[term-1].TotalCredits, 1e-9)
}

func TestScheduleUnknownAndDuplicateCourses(t *testing.T) {
	g := dag.New()
	require.NoError(t, g.AddPrerequisite("B", "A"))

	p := New(g, CreditMap{"A": 4, "B": 4}, DefaultConfig(), nil).Schedule([]string{"A", "B", "A", "GHOST"})

	count := 0
	for _, term := range p.Terms {
		count += len(term.Courses)
	}
	assert.Equal(t, 3, count)
	assert.NotZero(t, p.TermOf("GHOST"))
	assert.InDelta(t, 8.0, p.TotalCredits(), 1e-9)
}

func TestScheduleSurvivesCycle(t *testing.T) {
	g := dag.New()
	require.NoError(t, g.AddCorequisite("A", "B"))
	require.NoError(t, g.AddCorequisite("B", "A"))
	require.NoError(t, g.AddPrerequisite("C", "D"))
	require.NoError(t, g.AddPrerequisite("D", "C"))

	p := New(g, CreditMap{"A": 3, "B": 3, "C": 3, "D": 3}, DefaultConfig(), nil).
		Schedule([]string{"A", "B", "C", "D"})

	for _, c := range []string{"A", "B", "C", "D"} {
		assert.NotZero(t, p.TermOf(c), c)
	}
	assert.Equal(t, p.TermOf("A"), p.TermOf("B"))
}

func TestScheduleRebalance(t *testing.T) {
	g := dag.New()
	for _, c := range []string{"SMALL", "MID", "BIG"} {
		require.NoError(t, g.AddCourse(c))
	}
	credits := CreditMap{"SMALL": 5, "MID": 6, "BIG": 9}
	cfg := Config{TargetCredits: 10, MaxCredits: 16, Terms: 2}

	// Fillers land as SMALL→1, MID→2, BIG→1 (14 credits). Rebalancing moves
	// SMALL into term 2.
	p := New(g, credits, cfg, nil).Schedule([]string{"SMALL", "MID", "BIG"})

	assert.Equal(t, []string{"BIG"}, p.Terms[0].Courses)
	assert.Equal(t, []string{"MID", "SMALL"}, p.Terms[1].Courses)
	assert.InDelta(t, 9.0, p.Terms[0].TotalCredits, 1e-9)
	assert.InDelta(t, 11.0, p.Terms[1].TotalCredits, 1e-9)
}

func TestScheduleDeterministic(t *testing.T) {
	g, credits, courses := randomCurriculum(7, 40)
	s := New(g, credits, DefaultConfig(), nil)
	assert.Equal(t, s.Schedule(courses), s.Schedule(courses))
}

// randomCurriculum builds an acyclic curriculum where each course may
// require earlier ones, and some courses carry a one-credit lab corequisite.
func randomCurriculum(seed uint64, n int) (*dag.DAG, CreditMap, []string) {
	rng := rand.New(rand.NewPCG(seed, seed))
	g := dag.New()
	credits := CreditMap{}
	var courses []string

	for i := range n {
		id := fmt.Sprintf("C%02d", i)
		_ = g.AddCourse(id)
		credits[id] = float64(1 + rng.IntN(4))
		courses = append(courses, id)
		for j := range i {
			if rng.IntN(10) == 0 {
				_ = g.AddPrerequisite(id, fmt.Sprintf("C%02d", j))
			}
		}
		if rng.IntN(5) == 0 {
			lab := id + "L"
			_ = g.AddCorequisite(id, lab)
			credits[lab] = 1
			courses = append(courses, lab)
		}
	}
	rng.Shuffle(len(courses), func(i, j int) { courses[i], courses[j] = courses[j], courses[i] })
	return g, credits, courses
}

func TestScheduleProperties(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			g, credits, courses := randomCurriculum(seed, 30+int(seed))
			cfg := DefaultConfig()
			if seed%2 == 0 {
				cfg = Quarter(12)
			}
			p := New(g, credits, cfg, nil).Schedule(courses)

			// Every course lands in exactly one term.
			seen := map[string]int{}
			for _, term := range p.Terms {
				for _, c := range term.Courses {
					seen[c]++
				}
				assert.LessOrEqual(t, term.TotalCredits, cfg.MaxCredits, "term %d", term.Number)
			}
			for _, c := range courses {
				assert.Equal(t, 1, seen[c], c)
			}

			// Prerequisites, direct or transitive, come strictly earlier.
			for _, c := range courses {
				for _, p2 := range ancestors(g, c) {
					assert.Less(t, p.TermOf(p2), p.TermOf(c), "%s before %s", p2, c)
				}
				coreqs, _ := g.Corequisites(c)
				for _, co := range coreqs {
					assert.Equal(t, p.TermOf(c), p.TermOf(co), "%s with %s", c, co)
				}
			}
		})
	}
}

func ancestors(g *dag.DAG, c string) []string {
	var out []string
	seen := map[string]bool{}
	stack := []string{c}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		prereqs, _ := g.Prerequisites(cur)
		for _, p := range prereqs {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
				stack = append(stack, p)
			}
		}
	}
	return out
}
