// Package bins computes a recommended number of histogram bins (k)
// and/or bin width (h) for a one-dimensional numeric dataset, using a
// selectable statistical rule.
//
// 🚀 What is bins?
//
//	Seven independent, individually exported binning rules plus a
//	dispatcher that routes a rule identifier to its formula:
//	  • SquareRoot       — k = ⌈√n⌉ (alias: pearson)
//	  • Sturges          — k = 1 + ⌈log₂ n⌉
//	  • Rice             — k = 2·⌈n^(1/3)⌉
//	  • TerrellScott     — k = ⌈(2n)^(1/3)⌉
//	  • Doane            — Sturges corrected by skewness (n ≥ 3)
//	  • Scott            — h = 3.49·s/n^(1/3), k = ⌈range/h⌉
//	  • FreedmanDiaconis — h = 2·IQR/n^(1/3), k = ⌈range/h⌉ (the default)
//
// ✨ Key guarantees:
//   - every bin count passes the normalization clamp max(1, ⌈raw⌉):
//     at least one bin, always, even for degenerate input
//   - ceiling rounding throughout — bins are never under-provisioned
//   - zero spread (stddev or IQR) is a guarded branch → width 0, 1 bin
//   - two sentinel errors only: ErrInvalidDataset, ErrUnknownRule
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/binhint/bins"
//
//	// dispatcher — RuleDefault resolves to Freedman–Diaconis
//	k, err := bins.SuggestBins(data, bins.RuleDefault, nil)
//	h, err := bins.SuggestBinWidth(data, bins.RuleScott)
//
//	// or call a rule directly for its full record
//	res, err := bins.FreedmanDiaconis(data)
//	// res.Width, res.Bins, res.Range, res.IQR
//
// Doane's rule takes a SkewnessVariant (sample by default); pass it to
// the dispatcher via Options:
//
//	opts := bins.DefaultOptions()
//	opts.Skewness = bins.PopulationSkewness
//	k, err := bins.SuggestBins(data, bins.RuleDoane, &opts)
//
// Performance: every rule is O(n) except Freedman–Diaconis, which
// sorts a copy for the quartiles — O(n log n). All computation is
// stateless and re-entrant; concurrent use over shared data is safe.
//
// See examples in example_test.go.
package bins
