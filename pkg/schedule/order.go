package schedule

import (
	"cmp"
	"container/heap"
	"slices"
)

// groupHeap is a max-heap on priority, breaking ties on the smallest member ID.
type groupHeap []*group

func (h groupHeap) Len() int           { return len(h) }
func (h groupHeap) Less(i, j int) bool { return before(h[i], h[j]) }
func (h groupHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *groupHeap) Push(x any)        { *h = append(*h, x.(*group)) }
func (h *groupHeap) Pop() any {
	old := *h
	n := len(old)
	g := old[n-1]
	*h = old[:n-1]
	return g
}

func before(a, b *group) bool {
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	return a.minID < b.minID
}

// order sorts groups so that a group comes after every group holding one of
// its in-plan prerequisites. Among ready groups the heap picks the highest
// priority first. A cycle between groups falls back to a plain priority sort.
func (r *run) order(groups []*group) []*group {
	indegree := make(map[*group]int, len(groups))
	successors := make(map[*group][]*group, len(groups))
	for _, g := range groups {
		preds := make(map[*group]bool)
		for _, m := range g.members {
			for _, p := range r.externalPrereqs(g, m) {
				preds[r.groupOf[p]] = true
			}
		}
		for pg := range preds {
			successors[pg] = append(successors[pg], g)
			indegree[g]++
		}
	}

	h := &groupHeap{}
	for _, g := range groups {
		if indegree[g] == 0 {
			*h = append(*h, g)
		}
	}
	heap.Init(h)

	ordered := make([]*group, 0, len(groups))
	for h.Len() > 0 {
		g := heap.Pop(h).(*group)
		ordered = append(ordered, g)
		for _, next := range successors[g] {
			indegree[next]--
			if indegree[next] == 0 {
				heap.Push(h, next)
			}
		}
	}

	if len(ordered) < len(groups) {
		r.logger.Warn("cycle between course groups; ordering by priority only", "groups", len(groups))
		ordered = slices.Clone(groups)
		slices.SortStableFunc(ordered, func(a, b *group) int {
			if c := cmp.Compare(b.priority, a.priority); c != 0 {
				return c
			}
			return cmp.Compare(a.minID, b.minID)
		})
	}
	return ordered
}
