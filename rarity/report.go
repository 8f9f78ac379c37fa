package rarity

import (
	"github.com/shopspring/decimal"
)

// CategorySummary carries the aggregate statistics surfaced per trait
// category for summary display.
type CategorySummary struct {
	Category        string // Category name
	DistinctValues  int    // Distinct values observed (missing pseudo-value excluded)
	MissingItems    int    // Items lacking the category entirely
	RarestValue     string // Least frequent value
	RarestCount     int    // Occurrence count of the rarest value
	MostCommonValue string // Most frequent value
	MostCommonCount int    // Occurrence count of the most common value
}

// Report is the complete output of one analysis run: every item scored and
// ranked, plus collection-level statistics. A Report is only ever returned
// whole; a failed run yields no report at all.
type Report struct {
	RunID      string            // Identifier of the analysis run
	Strategy   string            // Scoring strategy the run used
	TotalItems int               // N, the collection size
	Precision  int32             // Decimal places for display totals
	Items      []ItemRarity      // Canonical order: rank ascending
	Categories []CategorySummary // Per-category aggregates, lexicographic order
}

// View returns the report's items in the requested presentation order
// without touching the canonical rank assignment.
func (r *Report) View(mode SortMode) []ItemRarity {
	return View(r.Items, mode)
}

// DisplayTotal renders an item's total rarity with the report's fixed
// decimal precision, for display stability across runs. The underlying
// float64 total is not modified.
func (r *Report) DisplayTotal(item ItemRarity) string {
	return FormatTotal(item.Total, r.Precision)
}

// FormatTotal renders a rarity total rounded to the given number of decimal
// places.
func FormatTotal(total float64, places int32) string {
	return decimal.NewFromFloat(total).Round(places).StringFixed(places)
}

// buildSummaries derives the per-category aggregate statistics from a built
// catalog.
func buildSummaries(catalog *Catalog) []CategorySummary {
	categories := catalog.Categories()
	summaries := make([]CategorySummary, len(categories))
	for i, category := range categories {
		rarestValue, rarestCount := catalog.RarestValue(category)
		commonValue, commonCount := catalog.MostCommonValue(category)
		distinct := catalog.DistinctValues(category)
		missing := catalog.MissingCount(category)
		if missing > 0 {
			distinct-- // report observed values only
		}
		summaries[i] = CategorySummary{
			Category:        category,
			DistinctValues:  distinct,
			MissingItems:    missing,
			RarestValue:     rarestValue,
			RarestCount:     rarestCount,
			MostCommonValue: commonValue,
			MostCommonCount: commonCount,
		}
	}
	return summaries
}
