package bins

import (
	"fmt"
	"math"

	"github.com/katalvlaran/binhint/descstats"
)

// scottFactor is the constant of Scott's 1979 normal-reference rule,
// h = 3.49·s·n^(−1/3).
const scottFactor = 3.49

// SquareRoot suggests k = ⌈√n⌉ bins (a.k.a. Pearson's rule of thumb).
//
// Errors: ErrInvalidDataset on empty data.
//
// Complexity: O(1) beyond len().
func SquareRoot(data []float64) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: square_root requires a non-empty dataset", ErrInvalidDataset)
	}

	return normalizeBins(math.Sqrt(float64(len(data)))), nil
}

// Sturges suggests k = 1 + ⌈log₂ n⌉ bins.
//
// Errors: ErrInvalidDataset on empty data.
//
// Complexity: O(1) beyond len().
func Sturges(data []float64) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: sturges requires a non-empty dataset", ErrInvalidDataset)
	}

	return normalizeBins(1 + math.Log2(float64(len(data)))), nil
}

// Rice suggests k = 2·⌈n^(1/3)⌉ bins. Note the inner ceiling: at n=1
// the rule yields 2, which is the formula's intended minimum.
//
// Errors: ErrInvalidDataset on empty data.
//
// Complexity: O(1) beyond len().
func Rice(data []float64) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: rice requires a non-empty dataset", ErrInvalidDataset)
	}

	return normalizeBins(2 * math.Ceil(math.Cbrt(float64(len(data))))), nil
}

// TerrellScott suggests k = ⌈(2n)^(1/3)⌉ bins, the Terrell–Scott
// oversmoothing bound. Like Rice, it yields 2 at n=1.
//
// Errors: ErrInvalidDataset on empty data.
//
// Complexity: O(1) beyond len().
func TerrellScott(data []float64) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: terrell_scott requires a non-empty dataset", ErrInvalidDataset)
	}

	return normalizeBins(math.Cbrt(2 * float64(len(data)))), nil
}

// Doane suggests k = 1 + ⌈log₂ n + log₂(1 + |g1|/σ_g1)⌉ bins — Sturges
// extended with a correction term that grows with the significance of
// the data's skewness. The variant selects the sample (bias-corrected)
// or population estimator for both g1 and its standard error σ_g1.
//
// Zero-spread data has no defined skewness; the resulting NaN falls
// through the normalization clamp to a single bin.
//
// Errors: ErrInvalidDataset when fewer than 3 samples are supplied
// (the skewness correction divides by n−2).
//
// Complexity: O(n) time, O(1) space.
func Doane(data []float64, variant SkewnessVariant) (int, error) {
	n := len(data)
	if n < 3 {
		return 0, fmt.Errorf("%w: doane requires at least 3 samples, got %d", ErrInvalidDataset, n)
	}

	var g1, se float64
	if variant == PopulationSkewness {
		g1 = descstats.PopulationSkewness(data)
		se = descstats.PopulationSkewnessStdErr(n)
	} else {
		g1 = descstats.SampleSkewness(data)
		se = descstats.SampleSkewnessStdErr(n)
	}

	raw := 1 + math.Log2(float64(n)) + math.Log2(1+math.Abs(g1)/se)

	return normalizeBins(raw), nil
}

// Scott suggests a bin width h = 3.49·s/n^(1/3), where s is the sample
// standard deviation, and derives the bin count k = ⌈range/h⌉.
//
// Zero spread (s = 0) is a guarded branch, not a division: the result
// is Width 0 and Bins 1.
//
// Errors: ErrInvalidDataset on empty data.
//
// Complexity: O(n) time, O(1) space.
func Scott(data []float64) (ScottResult, error) {
	if len(data) == 0 {
		return ScottResult{}, fmt.Errorf("%w: scott requires a non-empty dataset", ErrInvalidDataset)
	}

	s := descstats.StdDev(data)
	r := descstats.Range(data)
	if s == 0 {
		return ScottResult{Width: 0, Bins: 1, Range: r, StdDev: 0}, nil
	}

	h := scottFactor * s / math.Cbrt(float64(len(data)))

	return ScottResult{
		Width:  h,
		Bins:   normalizeBins(r / h),
		Range:  r,
		StdDev: s,
	}, nil
}

// FreedmanDiaconis suggests a bin width h = 2·IQR/n^(1/3) and derives
// the bin count k = ⌈range/h⌉. Being IQR-based, it resists outliers
// better than Scott's rule, which is why it is the dispatcher default.
//
// Zero IQR is a guarded branch, not a division: the result is Width 0
// and Bins 1 — even when the full range is non-zero.
//
// Errors: ErrInvalidDataset on empty data.
//
// Complexity: O(n log n) time (quartiles sort a copy), O(n) space.
func FreedmanDiaconis(data []float64) (FreedmanDiaconisResult, error) {
	if len(data) == 0 {
		return FreedmanDiaconisResult{}, fmt.Errorf("%w: freedman_diaconis requires a non-empty dataset", ErrInvalidDataset)
	}

	iqr := descstats.IQR(data)
	r := descstats.Range(data)
	if iqr == 0 {
		return FreedmanDiaconisResult{Width: 0, Bins: 1, Range: r, IQR: 0}, nil
	}

	h := 2 * iqr / math.Cbrt(float64(len(data)))

	return FreedmanDiaconisResult{
		Width: h,
		Bins:  normalizeBins(r / h),
		Range: r,
		IQR:   iqr,
	}, nil
}

// normalizeBins applies the cross-cutting clamp every rule obeys:
// k = max(1, ⌈raw⌉), with NaN (degenerate input) collapsing to 1.
// Ceiling, never round-to-nearest, so bins are not under-provisioned.
func normalizeBins(raw float64) int {
	if math.IsNaN(raw) {
		return 1
	}
	k := int(math.Ceil(raw))
	if k < 1 {
		return 1
	}

	return k
}
