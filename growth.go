package arraylist

import (
	"fmt"
	"math"
)

// GrowthPolicy proposes the next capacity when a non-empty list runs out of
// room. The list always grows to at least the required length, so a policy
// only needs to return something strictly larger than capacity.
type GrowthPolicy interface {
	Next(capacity int) int
}

// Doubling is the default policy: capacity * 2.
// n appends from empty relocate fewer than 2n elements in total.
var Doubling GrowthPolicy = Factor(2)

type factor float64

// Factor returns a policy growing capacity geometrically by f.
// It panics unless f > 1, since no smaller factor keeps append amortized O(1).
func Factor(f float64) GrowthPolicy {
	if !(f > 1) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("arraylist: growth factor must be > 1, got %v", f))
	}
	return factor(f)
}

func (f factor) Next(capacity int) int {
	next := float64(capacity) * float64(f)
	if next >= float64(math.MaxInt) {
		return math.MaxInt
	}
	if n := int(next); n > capacity {
		return n
	}
	return capacity + 1
}

func (f factor) String() string {
	return fmt.Sprintf("x%g", float64(f))
}

// nextCapacity applies the growth rule: an unallocated list gets exactly
// what it needs (1 for a single append), otherwise the larger of required
// and the policy's proposal.
func nextCapacity(p GrowthPolicy, capacity, required int) int {
	if capacity == 0 {
		return max(1, required)
	}
	return max(required, p.Next(capacity))
}
