package metrics_test

import (
	"fmt"

	"github.com/matzehuels/curricula/pkg/dag"
	"github.com/matzehuels/curricula/pkg/metrics"
)

func Example() {
	g := dag.New()
	_ = g.AddPrerequisite("CS2", "CS1")
	_ = g.AddPrerequisite("CS3", "CS2")

	m, err := metrics.ComputeAll(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, id := range []string{"CS1", "CS2", "CS3"} {
		c := m[id]
		fmt.Printf("%s delay=%d blocking=%d complexity=%d centrality=%d\n",
			id, c.Delay, c.Blocking, c.Complexity, c.Centrality)
	}
	// Output:
	// CS1 delay=3 blocking=2 complexity=5 centrality=0
	// CS2 delay=3 blocking=1 complexity=4 centrality=3
	// CS3 delay=3 blocking=0 complexity=3 centrality=0
}

func ExampleComputeAll_cycle() {
	g := dag.New()
	_ = g.AddCorequisite("PHYS1", "LAB1")
	_ = g.AddCorequisite("LAB1", "PHYS1")

	_, err := metrics.ComputeAll(g)
	fmt.Println(err)
	// Output:
	// CYCLE_DETECTED: cycle detected in requisite graph; cannot compute delay
}
