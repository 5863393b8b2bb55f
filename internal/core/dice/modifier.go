package dice

import (
	"fmt"
	"slices"
)

// ModifierKind selects how a pool is reduced to a total.
type ModifierKind int

const (
	ModifierNone ModifierKind = iota
	ModifierKeepHighest
	ModifierKeepLowest
	ModifierDropHighest
	ModifierDropLowest
	ModifierTargetFailure
	ModifierFudge
)

func (k ModifierKind) String() string {
	switch k {
	case ModifierNone:
		return "none"
	case ModifierKeepHighest:
		return "keep-highest"
	case ModifierKeepLowest:
		return "keep-lowest"
	case ModifierDropHighest:
		return "drop-highest"
	case ModifierDropLowest:
		return "drop-lowest"
	case ModifierTargetFailure:
		return "target-failure"
	case ModifierFudge:
		return "fudge"
	default:
		return "unknown"
	}
}

// Modifier is the rule applied by ComputeTotal.
//
// N is used by the keep and drop kinds. Target and Failure are the success
// and failure thresholds of ModifierTargetFailure.
type Modifier struct {
	Kind    ModifierKind
	N       int
	Target  uint64
	Failure uint64
}

// NoModifier sums the whole pool.
func NoModifier() Modifier { return Modifier{Kind: ModifierNone} }

// KeepHighest sums the n largest values.
func KeepHighest(n int) Modifier { return Modifier{Kind: ModifierKeepHighest, N: n} }

// KeepLowest sums the n smallest values.
func KeepLowest(n int) Modifier { return Modifier{Kind: ModifierKeepLowest, N: n} }

// DropHighest sums everything but the n largest values.
func DropHighest(n int) Modifier { return Modifier{Kind: ModifierDropHighest, N: n} }

// DropLowest sums everything but the n smallest values.
func DropLowest(n int) Modifier { return Modifier{Kind: ModifierDropLowest, N: n} }

// TargetFailure counts +1 per value >= target and -1 per value <= failure.
func TargetFailure(target, failure uint64) Modifier {
	return Modifier{Kind: ModifierTargetFailure, Target: target, Failure: failure}
}

// Fudge scores each face -1, 0 or +1.
func Fudge() Modifier { return Modifier{Kind: ModifierFudge} }

// Counted reports whether the modifier reads N.
func (m Modifier) Counted() bool {
	switch m.Kind {
	case ModifierKeepHighest, ModifierKeepLowest, ModifierDropHighest, ModifierDropLowest:
		return true
	default:
		return false
	}
}

func (m Modifier) String() string {
	switch m.Kind {
	case ModifierKeepHighest, ModifierKeepLowest, ModifierDropHighest, ModifierDropLowest:
		return fmt.Sprintf("%s(%d)", m.Kind, m.N)
	case ModifierTargetFailure:
		return fmt.Sprintf("%s(%d, %d)", m.Kind, m.Target, m.Failure)
	default:
		return m.Kind.String()
	}
}

// ComputeTotal reduces the history to a total under m and caches it.
//
// While the result is fresh the cached total is returned untouched, whatever
// m is. Separators are ignored; every rolled face and constant joins one
// ascending pool.
//
// N is not checked against the pool: callers validate it with PoolSize
// first, and an out of range N panics.
func (r *RollResult) ComputeTotal(m Modifier) int64 {
	if r.state == stateFresh {
		return r.total
	}

	pool := make([]uint64, 0, r.PoolSize())
	for _, entry := range r.history {
		switch entry.Kind {
		case KindRoll, KindFudge:
			pool = append(pool, entry.Values...)
		case KindValue:
			pool = append(pool, entry.Value)
		}
	}
	slices.Sort(pool)

	r.total = reduce(selectPool(pool, m), m)
	r.state = stateFresh
	return r.total
}

func selectPool(pool []uint64, m Modifier) []uint64 {
	switch m.Kind {
	case ModifierKeepHighest:
		return pool[len(pool)-m.N:]
	case ModifierKeepLowest:
		return pool[:m.N]
	case ModifierDropHighest:
		return pool[:len(pool)-m.N]
	case ModifierDropLowest:
		return pool[m.N:]
	default:
		return pool
	}
}

func reduce(pool []uint64, m Modifier) int64 {
	var total int64
	switch m.Kind {
	case ModifierTargetFailure:
		for _, v := range pool {
			// Success is checked first when both thresholds match.
			if v >= m.Target {
				total++
			} else if v <= m.Failure {
				total--
			}
		}
	case ModifierFudge:
		for _, v := range pool {
			switch {
			case v <= 2:
				total--
			case v <= 4:
			default:
				total++
			}
		}
	default:
		var sum uint64
		for _, v := range pool {
			sum += v
		}
		total = int64(sum)
	}
	return total
}
