package schedule

import "slices"

// group is a set of corequisite-linked courses placed as one unit.
type group struct {
	members  []string
	credits  float64
	priority int
	minID    string
	filler   bool
}

// buildGroups collects connected components of the in-plan corequisite
// relation, walking both directions. Components are discovered in plan
// order and members are listed in discovery order.
func (r *run) buildGroups() {
	for _, c := range r.courses {
		if r.groupOf[c] != nil {
			continue
		}
		g := &group{}
		r.groupOf[c] = g
		queue := []string{c}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			g.members = append(g.members, cur)

			coreqs, _ := r.graph.Corequisites(cur)
			coreqDeps, _ := r.graph.CorequisiteDependents(cur)
			for _, next := range slices.Concat(coreqs, coreqDeps) {
				if r.inPlan[next] && r.groupOf[next] == nil {
					r.groupOf[next] = g
					queue = append(queue, next)
				}
			}
		}
		r.groups = append(r.groups, g)
	}

	for _, g := range r.groups {
		g.minID = slices.Min(g.members)
		g.filler = true
		for _, m := range g.members {
			g.credits += r.creditOf[m]
			g.priority = max(g.priority, r.priority[m])
			if len(r.externalPrereqs(g, m)) > 0 || len(r.externalDependents(g, m)) > 0 {
				g.filler = false
			}
		}
	}
}

// externalPrereqs returns the in-plan prerequisites of member m that lie
// outside its own group.
func (r *run) externalPrereqs(g *group, m string) []string {
	var out []string
	for _, p := range r.prereqsInPlan(m) {
		if r.groupOf[p] != g {
			out = append(out, p)
		}
	}
	return out
}

func (r *run) externalDependents(g *group, m string) []string {
	var out []string
	for _, d := range r.dependentsInPlan(m) {
		if r.groupOf[d] != g {
			out = append(out, d)
		}
	}
	return out
}

// partition splits groups into priority groups and fillers, both in
// discovery order.
func (r *run) partition() (priority, fillers []*group) {
	for _, g := range r.groups {
		if g.filler {
			fillers = append(fillers, g)
		} else {
			priority = append(priority, g)
		}
	}
	return priority, fillers
}
