package metrics

import (
	"cmp"
	"math"
	"slices"

	"github.com/matzehuels/curricula/pkg/dag"
)

// CourseMetrics holds the four structural metrics of one course.
// Complexity always equals Delay + Blocking.
type CourseMetrics struct {
	Delay      int `json:"delay"`
	Blocking   int `json:"blocking"`
	Complexity int `json:"complexity"`
	Centrality int `json:"centrality"`
}

// CurriculumMetrics maps each course ID of a graph to its metrics.
type CurriculumMetrics map[string]CourseMetrics

// ComputeAll computes delay, blocking, complexity and centrality for every
// course in g. A course missing from one of the partial results gets 0 for
// that metric. The result depends only on g.
func ComputeAll(g *dag.DAG) (CurriculumMetrics, error) {
	delay, err := Delay(g)
	if err != nil {
		return nil, err
	}
	blocking, err := Blocking(g)
	if err != nil {
		return nil, err
	}
	complexity, err := MergeComplexity(delay, blocking)
	if err != nil {
		return nil, err
	}
	centrality, err := Centrality(g)
	if err != nil {
		return nil, err
	}

	out := make(CurriculumMetrics, g.CourseCount())
	for _, c := range g.Courses() {
		out[c] = CourseMetrics{
			Delay:      delay[c],
			Blocking:   blocking[c],
			Complexity: complexity[c],
			Centrality: centrality[c],
		}
	}
	return out, nil
}

// Ranked returns the course IDs sorted by complexity descending, then by ID.
func (m CurriculumMetrics) Ranked() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		if c := cmp.Compare(m[b].Complexity, m[a].Complexity); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return ids
}

// TotalComplexity sums the complexity of the given courses. Courses without
// metrics contribute 0.
func (m CurriculumMetrics) TotalComplexity(courses []string) int {
	total := 0
	for _, c := range courses {
		total += m[c].Complexity
	}
	return total
}

// ScaledComplexity sums the complexity of the given courses after scaling
// each by scale and rounding it to one decimal. Quarter curricula use a
// scale of 2/3 to match semester figures.
func (m CurriculumMetrics) ScaledComplexity(courses []string, scale float64) float64 {
	total := 0.0
	for _, c := range courses {
		total += math.Round(float64(m[c].Complexity)*scale*10) / 10
	}
	return total
}
