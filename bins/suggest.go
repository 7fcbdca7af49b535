// Package bins - unified dispatcher over the binning rules.
//
// This file provides the canonical entry points:
//
//   - SuggestBins: resolve a Rule identifier (aliases included) and
//     return the normalized bin count, extracting .Bins from the
//     structured Scott / Freedman–Diaconis results.
//   - SuggestBinWidth: the deliberately narrower width surface — only
//     the rules that define a bin width are routable here.
//
// Design principles:
//   - Deterministic: pure routing, no state, no randomness.
//   - Strict sentinels: only errors from errors.go, wrapped with the
//     offending identifier or the violated rule's name.
//   - Closed sets: identifiers outside the set never fall through to a
//     "nearest" rule; they fail loudly with ErrUnknownRule.
package bins

import "fmt"

// SuggestBins resolves rule (RulePearson → RuleSquareRoot,
// RuleDefault and "" → RuleFreedmanDiaconis) and returns the suggested
// bin count. opts may be nil, which means DefaultOptions; only Doane's
// rule reads it.
//
// Errors:
//   - ErrUnknownRule     — rule is outside the closed identifier set.
//   - ErrInvalidDataset  — data violates the resolved rule's minimum size.
//
// Complexity: that of the resolved rule (O(n), or O(n log n) for
// Freedman–Diaconis).
func SuggestBins(data []float64, rule Rule, opts *Options) (int, error) {
	variant := SampleSkewness
	if opts != nil {
		variant = opts.Skewness
	}

	switch resolveAlias(rule) {
	case RuleSquareRoot:
		return SquareRoot(data)
	case RuleSturges:
		return Sturges(data)
	case RuleRice:
		return Rice(data)
	case RuleTerrellScott:
		return TerrellScott(data)
	case RuleDoane:
		return Doane(data, variant)
	case RuleScott:
		res, err := Scott(data)
		if err != nil {
			return 0, err
		}

		return res.Bins, nil
	case RuleFreedmanDiaconis:
		res, err := FreedmanDiaconis(data)
		if err != nil {
			return 0, err
		}

		return res.Bins, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRule, string(rule))
	}
}

// SuggestBinWidth returns the suggested bin width for the rules that
// define one: RuleScott, RuleFreedmanDiaconis and their stand-ins
// (RuleDefault, ""). Every other identifier — including rules that are
// perfectly valid for SuggestBins — is rejected: the width query is its
// own closed surface.
//
// Errors:
//   - ErrUnknownRule     — rule has no bin-width definition.
//   - ErrInvalidDataset  — data is empty.
//
// Complexity: O(n) for Scott, O(n log n) for Freedman–Diaconis.
func SuggestBinWidth(data []float64, rule Rule) (float64, error) {
	switch resolveAlias(rule) {
	case RuleScott:
		res, err := Scott(data)
		if err != nil {
			return 0, err
		}

		return res.Width, nil
	case RuleFreedmanDiaconis:
		res, err := FreedmanDiaconis(data)
		if err != nil {
			return 0, err
		}

		return res.Width, nil
	default:
		return 0, fmt.Errorf("%w: %q has no bin-width definition", ErrUnknownRule, string(rule))
	}
}

// resolveAlias maps the alias identifiers onto their canonical rules.
// Unknown identifiers pass through unchanged and hit the dispatcher's
// default arm.
func resolveAlias(rule Rule) Rule {
	switch rule {
	case RulePearson:
		return RuleSquareRoot
	case RuleDefault, "":
		return RuleFreedmanDiaconis
	default:
		return rule
	}
}
