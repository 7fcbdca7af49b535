// Package binhint suggests histogram bin counts and bin widths for
// one-dimensional numeric data, using the classical statistical rules.
//
// 🚀 What is binhint?
//
//	A small, pure-Go library that answers one question: "how many bins
//	should my histogram have?" — without hand-tuning. It implements:
//	  • Square Root (a.k.a. Pearson) rule
//	  • Sturges' rule
//	  • Doane's rule (skewness-aware, sample or population variant)
//	  • Scott's rule (bin width from standard deviation)
//	  • Freedman–Diaconis rule (bin width from IQR, the default)
//	  • Terrell–Scott rule
//	  • Rice rule
//
// ✨ Why choose binhint?
//
//   - Principled defaults – Freedman–Diaconis out of the box
//   - Rock-solid edge cases – degenerate data always yields ≥ 1 bin
//   - Stateless & re-entrant – safe for concurrent use by construction
//   - Explicit errors – two sentinels, no panics on user input
//
// Everything is organized under two subpackages:
//
//	bins/      — the seven binning rules and the rule dispatcher
//	descstats/ — descriptive statistics the rules are built on
//	             (range, standard deviation, inclusive IQR, skewness)
//
// Quick example:
//
//	k, err := bins.SuggestBins(data, bins.RuleDefault, nil)
//	if err != nil {
//	  // handle bins.ErrInvalidDataset / bins.ErrUnknownRule
//	}
//	fmt.Println("suggested bins:", k)
//
// binhint never assigns values to buckets — it only recommends k and h;
// feed the result to whatever histogram implementation you already use.
//
//	go get github.com/katalvlaran/binhint/bins
package binhint
