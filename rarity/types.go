package rarity

import (
	"context"
	"errors"
	"fmt"
)

// Trait is a single category/value attribute attached to an item, in the
// shape metadata parsers emit them (an ordered attribute list, so a malformed
// upstream record can legally present the same category twice and we can
// detect it).
type Trait struct {
	Category string // Trait dimension name, e.g. "Background"
	Value    any    // string, bool, or numeric; normalized before counting
}

// Item represents a single collection member to be scored.
type Item struct {
	ID     string  // Unique external identifier within the collection
	Traits []Trait // Attribute list; may be empty, may omit categories
}

// ItemRarity is the scored output for one item.
type ItemRarity struct {
	ItemID        string             // External identifier of the scored item
	Contributions map[string]float64 // Per-category rarity contribution
	Total         float64            // Sum of contributions, pinned iteration order
	Rank          int                // Dense 1-based rank; zero until ranking runs
}

// Analyzer runs the full catalog -> score -> rank pipeline over a collection.
type Analyzer interface {
	// Analyze computes rarity scores and ranks for every item. It either
	// returns a complete report or an error; partial results are never
	// returned.
	Analyze(ctx context.Context, items []Item, opts ...AnalyzeOption) (*Report, error)
}

// Error definitions
var (
	ErrEmptyCollection = errors.New("collection contains no items")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrUnknownStrategy = errors.New("unknown scoring strategy")
)

// DataError reports an item whose trait data violates an input invariant,
// such as presenting the same category twice or carrying a value of an
// unsupported type.
type DataError struct {
	ItemID   string
	Category string
	Reason   string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("invalid trait data for item %q, category %q: %s", e.ItemID, e.Category, e.Reason)
}

// DegenerateCategoryError reports an item/catalog inconsistency: the item
// claims a trait the catalog never recorded, which means the item was not
// part of the collection the catalog was built from. This indicates a bug in
// the calling ingestion layer.
type DegenerateCategoryError struct {
	ItemID   string
	Category string
	Value    string
}

func (e *DegenerateCategoryError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("item %q claims category %q unknown to the catalog", e.ItemID, e.Category)
	}
	return fmt.Sprintf("item %q claims value %q for category %q, which the catalog never recorded", e.ItemID, e.Value, e.Category)
}

// AnalyzeOption is a functional option for configuring a single analysis run
type AnalyzeOption func(*analyzeOptions)

// analyzeOptions holds per-run overrides (internal)
type analyzeOptions struct {
	strategy      Strategy // Strategy override for this run
	maxConcurrent int      // Worker count override for this run
}

// WithStrategyOverride selects a scoring strategy for this run only
func WithStrategyOverride(strategy Strategy) AnalyzeOption {
	return func(opts *analyzeOptions) {
		opts.strategy = strategy
	}
}

// WithConcurrencyOverride sets the scoring worker count for this run only
func WithConcurrencyOverride(workers int) AnalyzeOption {
	return func(opts *analyzeOptions) {
		opts.maxConcurrent = workers
	}
}
