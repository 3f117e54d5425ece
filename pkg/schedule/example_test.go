package schedule_test

import (
	"fmt"

	"github.com/matzehuels/curricula/pkg/dag"
	"github.com/matzehuels/curricula/pkg/schedule"
)

func Example() {
	g := dag.New()
	_ = g.AddPrerequisite("CS2500", "CS1800")
	_ = g.AddCorequisite("CS2500", "CS2501")
	_ = g.AddCourse("ENGW1111")

	credits := schedule.CreditMap{"CS1800": 4, "CS2500": 4, "CS2501": 1, "ENGW1111": 4}
	cfg := schedule.Semester(15)
	cfg.Terms = 2

	plan := schedule.New(g, credits, cfg, nil).Schedule([]string{"CS1800", "CS2500", "CS2501", "ENGW1111"})
	for _, t := range plan.Terms {
		fmt.Printf("%s %d: %v (%.0f credits)\n", plan.TermLabel(), t.Number, t.Courses, t.TotalCredits)
	}
	// Output:
	// Semester 1: [CS1800 ENGW1111] (8 credits)
	// Semester 2: [CS2500 CS2501] (5 credits)
}
