package rarity_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/JohnPlummer/rarity-ranker/rarity"
)

var _ = Describe("Score", func() {
	statistical, _ := rarity.StrategyByName(rarity.StrategyStatistical)
	traitCount, _ := rarity.StrategyByName(rarity.StrategyTraitCount)

	Describe("statistical rarity", func() {
		var (
			items   []rarity.Item
			catalog *rarity.Catalog
		)

		BeforeEach(func() {
			items = []rarity.Item{
				{ID: "1", Traits: []rarity.Trait{{Category: "Color", Value: "Red"}}},
				{ID: "2", Traits: []rarity.Trait{{Category: "Color", Value: "Red"}}},
				{ID: "3", Traits: []rarity.Trait{{Category: "Color", Value: "Red"}}},
				{ID: "4", Traits: []rarity.Trait{{Category: "Color", Value: "Blue"}}},
			}
			var err error
			catalog, err = rarity.BuildCatalog(items)
			Expect(err).ToNot(HaveOccurred())
		})

		It("should score a 1-of-N value as N", func() {
			scored, err := rarity.Score(catalog, items[3], statistical)
			Expect(err).ToNot(HaveOccurred())
			Expect(scored.ItemID).To(Equal("4"))
			Expect(scored.Contributions).To(HaveKeyWithValue("Color", 4.0))
			Expect(scored.Total).To(Equal(4.0))
		})

		It("should score common values as the inverse of their frequency", func() {
			scored, err := rarity.Score(catalog, items[0], statistical)
			Expect(err).ToNot(HaveOccurred())
			Expect(scored.Total).To(BeNumerically("~", 4.0/3.0, 1e-12))
		})

		It("should leave rank unassigned", func() {
			scored, err := rarity.Score(catalog, items[0], statistical)
			Expect(err).ToNot(HaveOccurred())
			Expect(scored.Rank).To(BeZero())
		})

		It("should default to statistical rarity when no strategy is given", func() {
			scored, err := rarity.Score(catalog, items[3], nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(scored.Total).To(Equal(4.0))
		})
	})

	Describe("missing categories", func() {
		It("should score absence via the missing pseudo-value frequency", func() {
			items := []rarity.Item{
				{ID: "1", Traits: []rarity.Trait{{Category: "Hat", Value: "Cap"}}},
				{ID: "2", Traits: []rarity.Trait{{Category: "Hat", Value: "Cap"}}},
				{ID: "3", Traits: []rarity.Trait{{Category: "Hat", Value: "Cap"}}},
				{ID: "4"},
			}
			catalog, err := rarity.BuildCatalog(items)
			Expect(err).ToNot(HaveOccurred())

			// One of four items lacks Hat: pseudo-value frequency 1/4.
			scored, err := rarity.Score(catalog, items[3], statistical)
			Expect(err).ToNot(HaveOccurred())
			Expect(scored.Contributions).To(HaveKeyWithValue("Hat", 4.0))
			Expect(scored.Total).To(Equal(4.0))
		})

		It("should treat a zero missing frequency as the rarest possible value", func() {
			items := []rarity.Item{
				{ID: "1", Traits: []rarity.Trait{{Category: "Color", Value: "Red"}}},
				{ID: "2", Traits: []rarity.Trait{{Category: "Color", Value: "Blue"}}},
			}
			catalog, err := rarity.BuildCatalog(items)
			Expect(err).ToNot(HaveOccurred())

			// Every cataloged item carries Color, so an item without it gets
			// the rarest-possible contribution instead of a division by zero.
			scored, err := rarity.Score(catalog, rarity.Item{ID: "99"}, statistical)
			Expect(err).ToNot(HaveOccurred())
			Expect(scored.Contributions).To(HaveKeyWithValue("Color", 2.0))
		})
	})

	Describe("catalog/item inconsistencies", func() {
		var catalog *rarity.Catalog

		BeforeEach(func() {
			var err error
			catalog, err = rarity.BuildCatalog([]rarity.Item{
				{ID: "1", Traits: []rarity.Trait{{Category: "Color", Value: "Red"}}},
			})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should fail when an item claims a category the catalog never saw", func() {
			item := rarity.Item{ID: "2", Traits: []rarity.Trait{{Category: "Hat", Value: "Crown"}}}
			_, err := rarity.Score(catalog, item, statistical)

			var degenerate *rarity.DegenerateCategoryError
			Expect(errors.As(err, &degenerate)).To(BeTrue())
			Expect(degenerate.ItemID).To(Equal("2"))
			Expect(degenerate.Category).To(Equal("Hat"))
		})

		It("should fail when an item claims a value the catalog never saw", func() {
			item := rarity.Item{ID: "2", Traits: []rarity.Trait{{Category: "Color", Value: "Green"}}}
			_, err := rarity.Score(catalog, item, statistical)

			var degenerate *rarity.DegenerateCategoryError
			Expect(errors.As(err, &degenerate)).To(BeTrue())
			Expect(degenerate.Value).To(Equal("Green"))
		})

		It("should fail with a DataError on malformed trait data", func() {
			item := rarity.Item{ID: "2", Traits: []rarity.Trait{
				{Category: "Color", Value: "Red"},
				{Category: "Color", Value: "Red"},
			}}
			_, err := rarity.Score(catalog, item, statistical)

			var dataErr *rarity.DataError
			Expect(errors.As(err, &dataErr)).To(BeTrue())
		})
	})

	Describe("determinism", func() {
		It("should produce bit-identical totals across repeated evaluations", func() {
			items := make([]rarity.Item, 0, 12)
			for _, id := range []string{"1", "2", "3", "4"} {
				items = append(items, rarity.Item{ID: id, Traits: []rarity.Trait{
					{Category: "Background", Value: "Sky" + id},
					{Category: "Eyes", Value: "Laser"},
					{Category: "Mouth", Value: "Grin"},
				}})
			}
			catalog, err := rarity.BuildCatalog(items)
			Expect(err).ToNot(HaveOccurred())

			first, err := rarity.Score(catalog, items[0], statistical)
			Expect(err).ToNot(HaveOccurred())
			for i := 0; i < 50; i++ {
				again, err := rarity.Score(catalog, items[0], statistical)
				Expect(err).ToNot(HaveOccurred())
				Expect(again.Total).To(Equal(first.Total))
			}
		})
	})

	Describe("trait-count weighted strategy", func() {
		It("should weight contributions by category cardinality", func() {
			items := []rarity.Item{
				{ID: "1", Traits: []rarity.Trait{{Category: "Color", Value: "Red"}}},
				{ID: "2", Traits: []rarity.Trait{{Category: "Color", Value: "Red"}}},
				{ID: "3", Traits: []rarity.Trait{{Category: "Color", Value: "Blue"}}},
			}
			catalog, err := rarity.BuildCatalog(items)
			Expect(err).ToNot(HaveOccurred())

			// Blue: count 1, two distinct values -> 1/(1*2)
			scored, err := rarity.Score(catalog, items[2], traitCount)
			Expect(err).ToNot(HaveOccurred())
			Expect(scored.Total).To(Equal(0.5))

			// Red: count 2, two distinct values -> 1/(2*2)
			scored, err = rarity.Score(catalog, items[0], traitCount)
			Expect(err).ToNot(HaveOccurred())
			Expect(scored.Total).To(Equal(0.25))
		})
	})

	Describe("StrategyByName", func() {
		It("should resolve the shipped strategies", func() {
			s, err := rarity.StrategyByName(rarity.StrategyStatistical)
			Expect(err).ToNot(HaveOccurred())
			Expect(s.Name()).To(Equal("statistical"))

			s, err = rarity.StrategyByName(rarity.StrategyTraitCount)
			Expect(err).ToNot(HaveOccurred())
			Expect(s.Name()).To(Equal("trait-count"))
		})

		It("should reject unknown names", func() {
			_, err := rarity.StrategyByName("harmonic")
			Expect(err).To(MatchError(rarity.ErrUnknownStrategy))
		})
	})
})
