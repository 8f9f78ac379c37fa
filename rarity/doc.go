// Package rarity computes trait-rarity statistics and a deterministic total
// ordering over a collection of NFT metadata records.
//
// Given items described by trait-category to trait-value attributes, the
// package builds a collection-wide trait catalog, scores how unusual each
// item's trait combination is, and assigns dense ranks with deterministic
// tie-breaking. The same input always produces bit-identical scores and the
// same ranking, regardless of the order items arrive in.
//
// Features:
//   - Single-pass catalog building with per-category value frequency counts
//   - Pluggable scoring strategies (statistical rarity, trait-count weighted)
//   - Missing-category handling via an explicit pseudo-value frequency
//   - Concurrent scoring with configurable parallelism over the immutable catalog
//   - Dense 1..N ranking with deterministic identifier tie-breaks
//   - Read-only sort views for presentation layers
//   - Prometheus metrics integration
//   - Fail-fast error handling; no partial results are ever returned
//
// Basic usage:
//
//	cfg := rarity.NewDefaultConfig()
//	analyzer, err := rarity.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := analyzer.Analyze(ctx, items)
package rarity
