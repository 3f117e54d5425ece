// Package schedule assigns the courses of a plan to terms.
//
// # Algorithm
//
// The [Scheduler] places courses so that every prerequisite lands in an
// earlier term than the courses that need it, corequisites share a term, and
// credit loads stay close to a target:
//
//  1. Delay factors are computed on the full prerequisite graph and turned
//     into a chain priority per course. Courses that start an in-plan chain
//     score 10*delay+100, other courses with in-plan dependents 5*delay, and
//     the rest their delay.
//  2. Courses linked by corequisites in either direction form one group that
//     is always placed as a unit.
//  3. Groups with no in-plan prerequisites or dependents are fillers. The
//     rest are ordered topologically, highest priority first with the
//     smallest course ID breaking ties.
//  4. Each ordered group goes to the earliest feasible term that stays within
//     the target load, else within the hard maximum, else a new term.
//  5. Fillers go to the lightest term that stays within the maximum.
//  6. Up to three rebalancing passes move isolated courses out of overloaded
//     terms into underloaded ones.
//
// Scheduling never fails. When courses do not fit, the plan grows new terms.
// A group whose own credits exceed the maximum is still placed whole, in an
// empty term.
//
// # Configuration
//
// [Semester] and [Quarter] build a [Config] for the two academic calendars:
//
//	cfg := schedule.Semester(15)   // max 21 credits, 8 terms
//	cfg := schedule.Quarter(15)    // max 19 credits, 12 terms
//
// # Usage
//
//	s := schedule.New(g, school, schedule.DefaultConfig(), logger)
//	plan := s.Schedule(courseIDs)
//	for _, t := range plan.Terms {
//	    fmt.Println(plan.TermLabel(), t.Number, t.Courses, t.TotalCredits)
//	}
package schedule
