package rarity

import (
	"math"
	"sort"
	"strconv"
)

// totalEpsilon bounds how close two float64 totals must be to count as a
// tie. Ties fall through to the identifier comparison, so the final order is
// strict either way.
const totalEpsilon = 1e-9

// Rank assigns dense ranks 1..N by descending total rarity. Items whose
// totals are equal within totalEpsilon are ordered by ascending external
// identifier, so the result is a deterministic total order independent of
// input sequence order.
//
// The input slice is not mutated; a ranked copy is returned.
func Rank(scored []ItemRarity) []ItemRarity {
	ranked := make([]ItemRarity, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if math.Abs(a.Total-b.Total) > totalEpsilon {
			return a.Total > b.Total
		}
		return compareItemIDs(a.ItemID, b.ItemID) < 0
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// compareItemIDs orders external identifiers ascending. Identifiers that
// both parse as integers compare numerically, so sequence-number collections
// order "2" before "10"; everything else compares lexicographically.
func compareItemIDs(a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
