package rarity

import (
	"log/slog"
	"sort"
)

// Catalog holds the trait frequency statistics for one collection. It is
// built once per collection and is immutable afterwards, so any number of
// concurrent scorers can read it without coordination.
type Catalog struct {
	total      int
	categories []string                  // sorted category names
	counts     map[string]map[string]int // category -> value -> occurrence count
	known      map[string]int            // category -> sum of value counts
}

// BuildCatalog scans the full item set and builds the per-category
// value-frequency catalog. Items with zero traits are legal and contribute to
// the total item count only. The input is not mutated.
//
// Fails with ErrEmptyCollection for an empty item set, and with a DataError
// if any item presents the same category twice or carries an unsupported
// value type.
func BuildCatalog(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCollection
	}

	counts := make(map[string]map[string]int)
	known := make(map[string]int)

	for _, item := range items {
		traits, err := normalizeTraits(item)
		if err != nil {
			return nil, err
		}
		for category, value := range traits {
			values, ok := counts[category]
			if !ok {
				values = make(map[string]int)
				counts[category] = values
			}
			values[value]++
			known[category]++
		}
	}

	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	slog.Debug("Catalog built",
		"items", len(items),
		"categories", len(categories))

	return &Catalog{
		total:      len(items),
		categories: categories,
		counts:     counts,
		known:      known,
	}, nil
}

// TotalItems returns N, the number of items the catalog was built from.
func (c *Catalog) TotalItems() int {
	return c.total
}

// Categories returns the observed category names in lexicographic order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// ValueCount returns how many items carry the given value for the given
// category. The second return is false when the catalog never recorded that
// category/value pair.
func (c *Catalog) ValueCount(category, value string) (int, bool) {
	values, ok := c.counts[category]
	if !ok {
		return 0, false
	}
	count, ok := values[value]
	return count, ok
}

// HasCategory reports whether the catalog observed the category at all.
func (c *Catalog) HasCategory(category string) bool {
	_, ok := c.counts[category]
	return ok
}

// DistinctValues returns the number of distinct values recorded for the
// category, counting the missing pseudo-value as one more when any item
// lacks the category.
func (c *Catalog) DistinctValues(category string) int {
	values, ok := c.counts[category]
	if !ok {
		return 0
	}
	distinct := len(values)
	if c.MissingCount(category) > 0 {
		distinct++
	}
	return distinct
}

// MissingCount returns how many items lack the category entirely. This is
// the occurrence count of the category's missing pseudo-value.
func (c *Catalog) MissingCount(category string) int {
	return c.total - c.known[category]
}

// RarestValue returns the least frequent value for the category and its
// count. Ties resolve to the lexicographically smallest value so the answer
// is deterministic.
func (c *Catalog) RarestValue(category string) (string, int) {
	return c.extremeValue(category, func(count, best int) bool { return count < best })
}

// MostCommonValue returns the most frequent value for the category and its
// count, with the same deterministic tie-break as RarestValue.
func (c *Catalog) MostCommonValue(category string) (string, int) {
	return c.extremeValue(category, func(count, best int) bool { return count > best })
}

func (c *Catalog) extremeValue(category string, better func(count, best int) bool) (string, int) {
	values, ok := c.counts[category]
	if !ok {
		return "", 0
	}
	var bestValue string
	bestCount := -1
	for value, count := range values {
		switch {
		case bestCount < 0, better(count, bestCount):
			bestValue, bestCount = value, count
		case count == bestCount && value < bestValue:
			bestValue = value
		}
	}
	return bestValue, bestCount
}
