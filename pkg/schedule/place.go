package schedule

// placeOrdered puts a priority group into the earliest term after all of its
// placed prerequisites. Terms within the target load are preferred, then
// terms within the hard maximum, then a new term.
func (r *run) placeOrdered(g *group) {
	minIdx := 0
	for _, m := range g.members {
		for _, p := range r.externalPrereqs(g, m) {
			if i, ok := r.termOf[p]; ok {
				minIdx = max(minIdx, i+1)
			}
		}
	}
	r.ensureTerms(minIdx)

	for i := minIdx; i < len(r.plan.Terms); i++ {
		if r.plan.Terms[i].TotalCredits+g.credits <= r.config.TargetCredits {
			r.assign(g, i)
			return
		}
	}
	for i := minIdx; i < len(r.plan.Terms); i++ {
		if r.fits(i, g.credits, r.config.MaxCredits) {
			r.assign(g, i)
			return
		}
	}
	r.plan.AddTerm()
	r.assign(g, len(r.plan.Terms)-1)
}

// placeFiller puts a group without in-plan relations into the lightest term
// that stays within the hard maximum. Ties go to the earliest term.
func (r *run) placeFiller(g *group) {
	best := -1
	for i := range r.plan.Terms {
		if !r.fits(i, g.credits, r.config.MaxCredits) {
			continue
		}
		if best < 0 || r.plan.Terms[i].TotalCredits < r.plan.Terms[best].TotalCredits {
			best = i
		}
	}
	if best < 0 {
		r.plan.AddTerm()
		best = len(r.plan.Terms) - 1
	}
	r.assign(g, best)
}

// fits reports whether credits can join term i without passing limit. An
// empty term accepts anything.
func (r *run) fits(i int, credits, limit float64) bool {
	t := r.plan.Terms[i]
	return len(t.Courses) == 0 || t.TotalCredits+credits <= limit
}
