package rarity

import "sort"

// SortMode selects an alternate ordering for presentation layers.
type SortMode int

const (
	// ByRankAscending orders most rare first ("Most Rare").
	ByRankAscending SortMode = iota
	// ByRankDescending orders least rare first ("Least Rare").
	ByRankDescending
	// ByIDAscending orders by external identifier, ascending.
	ByIDAscending
	// ByIDDescending orders by external identifier, descending.
	ByIDDescending
)

func (m SortMode) String() string {
	switch m {
	case ByRankAscending:
		return "rank-ascending"
	case ByRankDescending:
		return "rank-descending"
	case ByIDAscending:
		return "id-ascending"
	case ByIDDescending:
		return "id-descending"
	default:
		return "unknown"
	}
}

// View returns a copy of the ranked items in the requested order. It is a
// read-only projection: ranks and totals on the input are never mutated, and
// an unrecognized mode falls back to rank ascending.
func View(ranked []ItemRarity, mode SortMode) []ItemRarity {
	out := make([]ItemRarity, len(ranked))
	copy(out, ranked)

	var less func(a, b ItemRarity) bool
	switch mode {
	case ByRankDescending:
		less = func(a, b ItemRarity) bool { return a.Rank > b.Rank }
	case ByIDAscending:
		less = func(a, b ItemRarity) bool { return compareItemIDs(a.ItemID, b.ItemID) < 0 }
	case ByIDDescending:
		less = func(a, b ItemRarity) bool { return compareItemIDs(a.ItemID, b.ItemID) > 0 }
	default:
		less = func(a, b ItemRarity) bool { return a.Rank < b.Rank }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
