package descstats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Range returns max(data) − min(data).
//
// Contract: data must be non-empty.
//
// Complexity: O(n) time, O(1) space.
func Range(data []float64) float64 {
	return floats.Max(data) - floats.Min(data)
}

// StdDev returns the sample standard deviation of data (the n−1
// denominator, as used by Scott's rule).
//
// Degenerate inputs are defined, not left to float arithmetic: a slice
// with fewer than two elements, or with all elements equal, yields
// exactly 0.
//
// Complexity: O(n) time, O(1) space.
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}

	return stat.StdDev(data, nil)
}

// IQR returns Q3 − Q1 of data using the inclusive quartile method:
// linear interpolation at rank p·(n−1) over the sorted values.
//
// The input is never mutated; sorting happens on a private copy.
// All-equal data yields exactly 0.
//
// Contract: data must be non-empty.
//
// Complexity: O(n log n) time, O(n) space (the sorted copy).
func IQR(data []float64) float64 {
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	return quantileInc(sorted, 0.75) - quantileInc(sorted, 0.25)
}

// quantileInc interpolates the p-quantile of sorted at rank p·(n−1).
// sorted must be non-empty and ascending; 0 ≤ p ≤ 1.
func quantileInc(sorted []float64, p float64) float64 {
	rank := p * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)

	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// PopulationSkewness returns the uncorrected skewness g1 = m3 / σ³,
// where m3 is the third central moment and σ the population standard
// deviation (both with the 1/n denominator).
//
// Zero-spread data has no defined skewness; the 0/0 here propagates as
// NaN and is absorbed by the bin-count normalization downstream.
//
// Contract: n ≥ 3.
func PopulationSkewness(data []float64) float64 {
	sigma := stat.PopStdDev(data, nil)

	return stat.Moment(3, data, nil) / (sigma * sigma * sigma)
}

// SampleSkewness returns the adjusted Fisher–Pearson skewness
// G1 = g1 · √(n(n−1)) / (n−2), the bias-corrected counterpart of
// PopulationSkewness.
//
// Contract: n ≥ 3 (the correction factor divides by n−2).
func SampleSkewness(data []float64) float64 {
	n := float64(len(data))

	return PopulationSkewness(data) * math.Sqrt(n*(n-1)) / (n - 2)
}

// SampleSkewnessStdErr returns the standard error of SampleSkewness
// under a normality assumption:
//
//	SES = √( 6n(n−1) / ((n−2)(n+1)(n+3)) )
//
// Contract: n ≥ 3.
func SampleSkewnessStdErr(n int) float64 {
	nf := float64(n)

	return math.Sqrt(6 * nf * (nf - 1) / ((nf - 2) * (nf + 1) * (nf + 3)))
}

// PopulationSkewnessStdErr returns E. S. Pearson's standard error of
// the population skewness √b1:
//
//	σ_√b1 = √( 6(n−2) / ((n+1)(n+3)) )
//
// Contract: n ≥ 3 (keeps the radicand non-negative).
func PopulationSkewnessStdErr(n int) float64 {
	nf := float64(n)

	return math.Sqrt(6 * (nf - 2) / ((nf + 1) * (nf + 3)))
}
