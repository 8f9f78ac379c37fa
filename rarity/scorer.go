package rarity

import (
	"fmt"
)

// Strategy names accepted by Config.Strategy and StrategyByName.
const (
	StrategyStatistical = "statistical"
	StrategyTraitCount  = "trait-count"
)

// Strategy turns a trait value's frequency statistics into a per-trait
// rarity contribution. Implementations must be stateless: the scorer calls
// them concurrently from multiple workers.
//
// Contribution receives the collection size, the occurrence count of the
// value the item holds (the missing pseudo-value counts like any other
// value), and the number of distinct values in the category.
type Strategy interface {
	Name() string
	Contribution(total, count, distinct int) float64
}

// statisticalStrategy scores each trait as the inverse of its frequency
// within the collection: a value held by 1 of N items contributes N.
type statisticalStrategy struct{}

func (statisticalStrategy) Name() string { return StrategyStatistical }

func (statisticalStrategy) Contribution(total, count, _ int) float64 {
	return float64(total) / float64(count)
}

// traitCountStrategy additionally weights each trait by the breadth of its
// category: 1/(count * distinctValuesInCategory). Rare values inside
// high-cardinality categories dominate the score.
type traitCountStrategy struct{}

func (traitCountStrategy) Name() string { return StrategyTraitCount }

func (traitCountStrategy) Contribution(_, count, distinct int) float64 {
	return 1 / (float64(count) * float64(distinct))
}

// StrategyByName resolves a strategy name from configuration.
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case StrategyStatistical:
		return statisticalStrategy{}, nil
	case StrategyTraitCount:
		return traitCountStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Score computes the per-category rarity contributions and total rarity for
// one item against an already-built catalog. It is a pure function of
// (catalog, item, strategy): the catalog is only read, so Score is safe to
// call concurrently across items. Rank is left zero; it is assigned only
// once every item's total is known.
//
// Every category the catalog observed contributes to every item's total.
// When the item lacks a category, the contribution reflects the missing
// pseudo-value's frequency (N - sum of known counts). If that frequency is
// zero the item cannot belong to the catalog's collection, and the trait is
// treated as the rarest possible value rather than dividing by zero.
//
// Contributions are summed in lexicographic category order so repeated runs
// on identical input produce bit-identical totals.
func Score(catalog *Catalog, item Item, strategy Strategy) (ItemRarity, error) {
	if strategy == nil {
		strategy = statisticalStrategy{}
	}

	traits, err := normalizeTraits(item)
	if err != nil {
		return ItemRarity{}, err
	}

	// An item claiming a trait the catalog never saw is logically
	// inconsistent with catalog construction and indicates an upstream bug.
	for category, value := range traits {
		if !catalog.HasCategory(category) {
			return ItemRarity{}, &DegenerateCategoryError{ItemID: item.ID, Category: category}
		}
		if _, ok := catalog.ValueCount(category, value); !ok {
			return ItemRarity{}, &DegenerateCategoryError{ItemID: item.ID, Category: category, Value: value}
		}
	}

	total := catalog.TotalItems()
	contributions := make(map[string]float64, len(catalog.categories))

	var sum float64
	for _, category := range catalog.categories {
		count := 0
		if value, ok := traits[category]; ok {
			count, _ = catalog.ValueCount(category, value)
		} else if count = catalog.MissingCount(category); count == 0 {
			count = 1 // rarest possible value
		}
		contribution := strategy.Contribution(total, count, catalog.DistinctValues(category))
		contributions[category] = contribution
		sum += contribution
	}

	return ItemRarity{
		ItemID:        item.ID,
		Contributions: contributions,
		Total:         sum,
	}, nil
}
