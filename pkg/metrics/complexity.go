package metrics

import (
	"maps"
	"slices"

	"github.com/matzehuels/curricula/pkg/dag"
	cerrors "github.com/matzehuels/curricula/pkg/errors"
)

// Complexity returns the structural complexity (delay + blocking) of every
// course. A cycle in g is reported by whichever of the two inputs fails
// first, and no partial result is returned.
func Complexity(g *dag.DAG) (map[string]int, error) {
	delay, err := Delay(g)
	if err != nil {
		return nil, err
	}
	blocking, err := Blocking(g)
	if err != nil {
		return nil, err
	}
	return MergeComplexity(delay, blocking)
}

// MergeComplexity adds the blocking factor to the delay factor of every
// course in delay. A course missing from blocking is an internal
// inconsistency and yields a MISSING_KEY error.
func MergeComplexity(delay, blocking map[string]int) (map[string]int, error) {
	out := make(map[string]int, len(delay))
	for _, c := range slices.Sorted(maps.Keys(delay)) {
		b, ok := blocking[c]
		if !ok {
			return nil, cerrors.MissingKey(c, "blocking")
		}
		out[c] = delay[c] + b
	}
	return out, nil
}
