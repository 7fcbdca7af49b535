package bins

// Rule identifies a binning rule. The set is closed: the constants
// below are the only valid values, and two of them are aliases
// (RulePearson resolves to RuleSquareRoot, RuleDefault to
// RuleFreedmanDiaconis). The empty string resolves like RuleDefault,
// so callers with no preference can pass "".
type Rule string

const (
	// RuleSquareRoot — k = ⌈√n⌉.
	RuleSquareRoot Rule = "square_root"

	// RulePearson is an alias of RuleSquareRoot.
	RulePearson Rule = "pearson"

	// RuleSturges — k = 1 + ⌈log₂ n⌉.
	RuleSturges Rule = "sturges"

	// RuleDoane — Sturges with a skewness correction term; needs n ≥ 3.
	RuleDoane Rule = "doane"

	// RuleScott — bin width h = 3.49·s/n^(1/3).
	RuleScott Rule = "scott"

	// RuleFreedmanDiaconis — bin width h = 2·IQR/n^(1/3).
	RuleFreedmanDiaconis Rule = "freedman_diaconis"

	// RuleTerrellScott — k = ⌈(2n)^(1/3)⌉.
	RuleTerrellScott Rule = "terrell_scott"

	// RuleRice — k = 2·⌈n^(1/3)⌉.
	RuleRice Rule = "rice"

	// RuleDefault is an alias of RuleFreedmanDiaconis.
	RuleDefault Rule = "default"
)

// SkewnessVariant selects the skewness estimator used by Doane's rule.
//
//   - SampleSkewness     — bias-corrected G1 with its matching standard
//     error √(6n(n−1)/((n−2)(n+1)(n+3))). The default.
//   - PopulationSkewness — uncorrected g1 = m3/σ³ with E. S. Pearson's
//     standard error √(6(n−2)/((n+1)(n+3))).
//
// The variant and its standard error always travel together: mixing a
// sample skewness with a population error term would bias the
// correction term of Doane's formula.
type SkewnessVariant int

const (
	// SampleSkewness selects the bias-corrected estimator (default).
	SampleSkewness SkewnessVariant = iota

	// PopulationSkewness selects the uncorrected estimator.
	PopulationSkewness
)

// Options configures the dispatcher.
//
// Fields:
//   - Skewness — estimator variant for Doane's rule. Ignored by every
//     other rule.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Skewness = PopulationSkewness
//	k, err := SuggestBins(data, RuleDoane, &opts)
type Options struct {
	Skewness SkewnessVariant
}

// DefaultOptions returns the canonical defaults: the sample skewness
// variant.
func DefaultOptions() Options {
	return Options{Skewness: SampleSkewness}
}

// ScottResult holds the outcome of Scott's rule.
type ScottResult struct {
	// Width is the suggested bin width h = 3.49·s/n^(1/3);
	// exactly 0 when the data has zero spread.
	Width float64

	// Bins is the normalized bin count ⌈Range/Width⌉, at least 1.
	Bins int

	// Range is max−min of the dataset.
	Range float64

	// StdDev is the sample standard deviation the width was derived from.
	StdDev float64
}

// FreedmanDiaconisResult holds the outcome of the Freedman–Diaconis rule.
type FreedmanDiaconisResult struct {
	// Width is the suggested bin width h = 2·IQR/n^(1/3);
	// exactly 0 when the IQR is zero.
	Width float64

	// Bins is the normalized bin count ⌈Range/Width⌉, at least 1.
	Bins int

	// Range is max−min of the dataset.
	Range float64

	// IQR is the inclusive interquartile range the width was derived from.
	IQR float64
}
