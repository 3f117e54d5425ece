package schedule

const (
	maxRebalancePasses = 3
	overloadMargin     = 3.0
	underloadMargin    = 3.0
	destinationSlack   = 1.0
)

// rebalance moves isolated low-delay courses out of terms above
// target+3 into terms below target-3. A move must leave the destination at
// most target+1 and the source at least target-3, and must keep every
// in-plan prerequisite earlier and every in-plan dependent later. It returns
// the number of courses moved.
func (r *run) rebalance() int {
	target := r.config.TargetCredits
	moves := 0

	for pass := 0; pass < maxRebalancePasses; pass++ {
		moved := false
		for si := range r.plan.Terms {
			if r.plan.Terms[si].TotalCredits <= target+overloadMargin {
				continue
			}
			candidates := append([]string(nil), r.plan.Terms[si].Courses...)
			for _, c := range candidates {
				if r.plan.Terms[si].TotalCredits <= target+overloadMargin {
					break
				}
				if !r.movable(c) {
					continue
				}
				di := r.destination(c, si)
				if di < 0 {
					continue
				}
				cr := r.creditOf[c]
				if r.plan.Terms[di].TotalCredits+cr > target+destinationSlack ||
					r.plan.Terms[si].TotalCredits-cr < target-underloadMargin {
					continue
				}
				r.plan.Terms[si].remove(c, cr)
				r.plan.Terms[di].add(c, cr)
				r.termOf[c] = di
				moves++
				moved = true
				r.logger.Debug("rebalanced course", "course", c,
					"from", r.plan.Terms[si].Number, "to", r.plan.Terms[di].Number)
			}
		}
		if !moved {
			break
		}
	}
	return moves
}

// movable reports whether c may leave its term on its own.
func (r *run) movable(c string) bool {
	return r.delay[c] <= 1 && len(r.groupOf[c].members) == 1
}

// destination returns the lightest underloaded term other than si that keeps
// c after its prerequisites and before its dependents, or -1.
func (r *run) destination(c string, si int) int {
	lo, hi := 0, len(r.plan.Terms)
	for _, p := range r.prereqsInPlan(c) {
		if i, ok := r.termOf[p]; ok {
			lo = max(lo, i+1)
		}
	}
	for _, d := range r.dependentsInPlan(c) {
		if i, ok := r.termOf[d]; ok {
			hi = min(hi, i)
		}
	}

	best := -1
	for i := lo; i < hi; i++ {
		if i == si || r.plan.Terms[i].TotalCredits >= r.config.TargetCredits-underloadMargin {
			continue
		}
		if best < 0 || r.plan.Terms[i].TotalCredits < r.plan.Terms[best].TotalCredits {
			best = i
		}
	}
	return best
}
