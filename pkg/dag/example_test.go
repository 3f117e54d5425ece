package dag_test

import (
	"fmt"

	"github.com/matzehuels/curricula/pkg/dag"
)

func Example() {
	g := dag.New()
	_ = g.AddPrerequisite("CS220", "CS165")
	_ = g.AddPrerequisite("CS220", "MATH156")
	_ = g.AddCourse("CO150")

	prereqs, _ := g.Prerequisites("CS220")
	dependents, _ := g.Dependents("CS165")
	fmt.Println("courses:", g.CourseCount())
	fmt.Println("CS220 needs:", prereqs)
	fmt.Println("CS165 unlocks:", dependents)
	// Output:
	// courses: 4
	// CS220 needs: [CS165 MATH156]
	// CS165 unlocks: [CS220]
}

func ExampleDAG_Validate() {
	g := dag.New()
	_ = g.AddCorequisite("A", "B")
	_ = g.AddCorequisite("B", "A")

	fmt.Println(g.Validate())
	// Output:
	// graph contains a cycle at A
}
