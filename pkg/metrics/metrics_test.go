package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/curricula/pkg/dag"
	cerrors "github.com/matzehuels/curricula/pkg/errors"
)

// edge is a prerequisite edge: course requires req.
type edge struct{ course, req string }

func build(t *testing.T, courses []string, prereqs, coreqs []edge) *dag.DAG {
	t.Helper()
	g := dag.New()
	for _, c := range courses {
		require.NoError(t, g.AddCourse(c))
	}
	for _, e := range prereqs {
		require.NoError(t, g.AddPrerequisite(e.course, e.req))
	}
	for _, e := range coreqs {
		require.NoError(t, g.AddCorequisite(e.course, e.req))
	}
	return g
}

// chain builds A -> B -> C.
func chain(t *testing.T) *dag.DAG {
	return build(t, []string{"A", "B", "C"}, []edge{{"B", "A"}, {"C", "B"}}, nil)
}

// fork builds A -> B, A -> C, B -> D.
func fork(t *testing.T) *dag.DAG {
	return build(t, []string{"A", "B", "C", "D"}, []edge{{"B", "A"}, {"C", "A"}, {"D", "B"}}, nil)
}

// coreqChain builds A -> B with C a corequisite-dependent of B.
func coreqChain(t *testing.T) *dag.DAG {
	return build(t, []string{"A", "B", "C"}, []edge{{"B", "A"}}, []edge{{"C", "B"}})
}

func coreqCycle(t *testing.T) *dag.DAG {
	return build(t, nil, nil, []edge{{"A", "B"}, {"B", "A"}})
}

func TestTopologicalOrder(t *testing.T) {
	g := build(t, []string{"D", "C", "B", "A"}, []edge{{"B", "A"}, {"C", "A"}, {"D", "B"}}, nil)

	order, err := TopologicalOrder(g, "delay")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, order)

	pos := make(map[string]int)
	for i, c := range order {
		pos[c] = i
	}
	for _, c := range g.Courses() {
		for _, p := range g.Incoming(c) {
			assert.Less(t, pos[p], pos[c], "%s must precede %s", p, c)
		}
	}
}

func TestTopologicalOrderCycle(t *testing.T) {
	_, err := TopologicalOrder(coreqCycle(t), "blocking")
	require.Error(t, err)
	assert.True(t, cerrors.Is(err, cerrors.ErrCodeCycleDetected))
	assert.Contains(t, err.Error(), "blocking")
}

func TestDelay(t *testing.T) {
	tests := []struct {
		name string
		g    func(*testing.T) *dag.DAG
		want map[string]int
	}{
		{"chain", chain, map[string]int{"A": 3, "B": 3, "C": 3}},
		{"fork", fork, map[string]int{"A": 3, "B": 3, "C": 2, "D": 3}},
		{"corequisite counts as edge", coreqChain, map[string]int{"A": 3, "B": 3, "C": 3}},
		{
			"isolated course",
			func(t *testing.T) *dag.DAG { return build(t, []string{"X"}, nil, nil) },
			map[string]int{"X": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Delay(tt.g(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDelayCycle(t *testing.T) {
	_, err := Delay(coreqCycle(t))
	require.Error(t, err)
	assert.True(t, cerrors.Is(err, cerrors.ErrCodeCycleDetected))
	assert.Contains(t, err.Error(), "delay")
	assert.Equal(t, "cannot compute metrics: cycle in prerequisite graph", cerrors.UserMessage(err))
}

func TestBlocking(t *testing.T) {
	tests := []struct {
		name string
		g    func(*testing.T) *dag.DAG
		want map[string]int
	}{
		{"chain", chain, map[string]int{"A": 2, "B": 1, "C": 0}},
		{"fork", fork, map[string]int{"A": 3, "B": 1, "C": 0, "D": 0}},
		{"corequisite counts as edge", coreqChain, map[string]int{"A": 2, "B": 1, "C": 0}},
		{
			"diamond counts each course once",
			func(t *testing.T) *dag.DAG {
				return build(t, nil, []edge{{"B", "A"}, {"C", "A"}, {"D", "B"}, {"D", "C"}}, nil)
			},
			map[string]int{"A": 3, "B": 1, "C": 1, "D": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Blocking(tt.g(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlockingCycle(t *testing.T) {
	_, err := Blocking(coreqCycle(t))
	assert.True(t, cerrors.Is(err, cerrors.ErrCodeCycleDetected))
}

func TestComplexity(t *testing.T) {
	got, err := Complexity(chain(t))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 5, "B": 4, "C": 3}, got)

	_, err = Complexity(coreqCycle(t))
	assert.True(t, cerrors.Is(err, cerrors.ErrCodeCycleDetected))
}

func TestMergeComplexityMissingKey(t *testing.T) {
	_, err := MergeComplexity(map[string]int{"A": 1, "B": 2}, map[string]int{"A": 0})
	require.Error(t, err)
	assert.True(t, cerrors.Is(err, cerrors.ErrCodeMissingKey))
	assert.Contains(t, err.Error(), `"B"`)
}

func TestCentrality(t *testing.T) {
	tests := []struct {
		name string
		g    func(*testing.T) *dag.DAG
		want map[string]int
	}{
		{"chain", chain, map[string]int{"A": 0, "B": 3, "C": 0}},
		{"fork", fork, map[string]int{"A": 0, "B": 3, "C": 0, "D": 0}},
		{
			"diamond",
			func(t *testing.T) *dag.DAG {
				return build(t, nil, []edge{{"B", "A"}, {"C", "A"}, {"D", "B"}, {"D", "C"}}, nil)
			},
			map[string]int{"A": 0, "B": 3, "C": 3, "D": 0},
		},
		{
			"two sources share a bottleneck",
			func(t *testing.T) *dag.DAG {
				return build(t, nil, []edge{{"C", "A"}, {"C", "B"}, {"D", "C"}}, nil)
			},
			map[string]int{"A": 0, "B": 0, "C": 6, "D": 0},
		},
		{
			"long and short path through same course",
			func(t *testing.T) *dag.DAG {
				// A -> B -> C -> D and A -> C
				return build(t, nil, []edge{{"B", "A"}, {"C", "B"}, {"D", "C"}, {"C", "A"}}, nil)
			},
			map[string]int{"A": 0, "B": 4, "C": 7, "D": 0},
		},
		{
			"isolated course",
			func(t *testing.T) *dag.DAG { return build(t, []string{"X"}, nil, nil) },
			map[string]int{"X": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Centrality(tt.g(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCentralityCycle(t *testing.T) {
	_, err := Centrality(coreqCycle(t))
	assert.True(t, cerrors.Is(err, cerrors.ErrCodeCycleDetected))
	assert.Contains(t, err.Error(), "centrality")
}

func TestComputeAll(t *testing.T) {
	m, err := ComputeAll(fork(t))
	require.NoError(t, err)

	assert.Equal(t, CourseMetrics{Delay: 3, Blocking: 3, Complexity: 6, Centrality: 0}, m["A"])
	assert.Equal(t, CourseMetrics{Delay: 3, Blocking: 1, Complexity: 4, Centrality: 3}, m["B"])
	assert.Equal(t, CourseMetrics{Delay: 2, Blocking: 0, Complexity: 2, Centrality: 0}, m["C"])
	assert.Equal(t, CourseMetrics{Delay: 3, Blocking: 0, Complexity: 3, Centrality: 0}, m["D"])
}

func TestComputeAllProperties(t *testing.T) {
	g := build(t, []string{"ISO"}, []edge{
		{"CS2", "CS1"}, {"CS3", "CS2"}, {"CS4", "CS2"}, {"CS5", "CS3"}, {"CS5", "CS4"},
		{"MATH2", "MATH1"}, {"CS4", "MATH2"},
	}, []edge{{"LAB", "CS3"}})

	m, err := ComputeAll(g)
	require.NoError(t, err)
	require.Len(t, m, g.CourseCount())

	for id, cm := range m {
		assert.GreaterOrEqual(t, cm.Delay, 1, id)
		assert.Equal(t, cm.Delay+cm.Blocking, cm.Complexity, id)
	}
	assert.Equal(t, 1, m["ISO"].Delay)

	again, err := ComputeAll(g)
	require.NoError(t, err)
	assert.Equal(t, m, again)
}

func TestComputeAllCycle(t *testing.T) {
	m, err := ComputeAll(coreqCycle(t))
	assert.Nil(t, m)
	assert.True(t, cerrors.Is(err, cerrors.ErrCodeCycleDetected))
}

func TestRanked(t *testing.T) {
	m := CurriculumMetrics{
		"B": {Complexity: 4},
		"A": {Complexity: 4},
		"C": {Complexity: 9},
	}
	assert.Equal(t, []string{"C", "A", "B"}, m.Ranked())
	assert.Equal(t, 13, m.TotalComplexity([]string{"C", "A", "missing"}))
}

func TestScaledComplexity(t *testing.T) {
	m := CurriculumMetrics{"A": {Complexity: 5}, "B": {Complexity: 4}}
	assert.InDelta(t, 9.0, m.ScaledComplexity([]string{"A", "B"}, 1), 1e-9)
	// 5*2/3 = 3.33 -> 3.3 and 4*2/3 = 2.67 -> 2.7
	assert.InDelta(t, 6.0, m.ScaledComplexity([]string{"A", "B"}, 2.0/3.0), 1e-9)
}
