package critpath

import (
	"github.com/matzehuels/curricula/pkg/dag"
	"github.com/matzehuels/curricula/pkg/metrics"
)

// Summary aggregates the headline numbers of a plan.
type Summary struct {
	TotalComplexity         int      `json:"total_complexity"`
	HighestCentrality       int      `json:"highest_centrality"`
	HighestCentralityCourse string   `json:"highest_centrality_course"`
	LongestDelay            int      `json:"longest_delay"`
	LongestDelayCourse      string   `json:"longest_delay_course"`
	LongestDelayPath        []string `json:"longest_delay_path"`
}

// Summarize computes the summary of plan. Courses are scanned in plan order
// and only a strictly greater value replaces the current leader, so the
// first course wins a tie. Courses without metrics are ignored.
func Summarize(g *dag.DAG, m metrics.CurriculumMetrics, plan []string) Summary {
	var s Summary
	for _, id := range plan {
		cm, ok := m[id]
		if !ok {
			continue
		}
		s.TotalComplexity += cm.Complexity
		if cm.Centrality > s.HighestCentrality {
			s.HighestCentrality = cm.Centrality
			s.HighestCentralityCourse = id
		}
		if cm.Delay > s.LongestDelay {
			s.LongestDelay = cm.Delay
			s.LongestDelayCourse = id
		}
	}
	s.LongestDelayPath = Path(g, m, plan)
	return s
}
