package rarity_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/JohnPlummer/rarity-ranker/rarity"
)

var _ = Describe("View", func() {
	var ranked []rarity.ItemRarity

	BeforeEach(func() {
		ranked = rarity.Rank([]rarity.ItemRarity{
			{ItemID: "10", Total: 1.0},
			{ItemID: "2", Total: 4.0},
			{ItemID: "7", Total: 2.0},
		})
	})

	ids := func(items []rarity.ItemRarity) []string {
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = item.ItemID
		}
		return out
	}

	It("should order most rare first by rank ascending", func() {
		view := rarity.View(ranked, rarity.ByRankAscending)
		Expect(ids(view)).To(Equal([]string{"2", "7", "10"}))
	})

	It("should order least rare first by rank descending", func() {
		view := rarity.View(ranked, rarity.ByRankDescending)
		Expect(ids(view)).To(Equal([]string{"10", "7", "2"}))
	})

	It("should order by external identifier ascending", func() {
		view := rarity.View(ranked, rarity.ByIDAscending)
		Expect(ids(view)).To(Equal([]string{"2", "7", "10"}))
	})

	It("should order by external identifier descending", func() {
		view := rarity.View(ranked, rarity.ByIDDescending)
		Expect(ids(view)).To(Equal([]string{"10", "7", "2"}))
	})

	It("should never mutate the canonical ranking", func() {
		before := ids(ranked)
		_ = rarity.View(ranked, rarity.ByIDDescending)

		Expect(ids(ranked)).To(Equal(before))
		for i, item := range ranked {
			Expect(item.Rank).To(Equal(i + 1))
		}
	})

	It("should preserve rank and total on projected items", func() {
		view := rarity.View(ranked, rarity.ByIDAscending)
		for _, item := range view {
			for _, original := range ranked {
				if original.ItemID == item.ItemID {
					Expect(item.Rank).To(Equal(original.Rank))
					Expect(item.Total).To(Equal(original.Total))
				}
			}
		}
	})

	It("should name its modes", func() {
		Expect(rarity.ByRankAscending.String()).To(Equal("rank-ascending"))
		Expect(rarity.ByIDDescending.String()).To(Equal("id-descending"))
	})
})
