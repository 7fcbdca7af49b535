package descstats_test

import (
	"testing"

	"github.com/katalvlaran/binhint/descstats"
	"github.com/stretchr/testify/assert"
)

// TestRange verifies max−min over unsorted input and the single-element
// degenerate case.
func TestRange(t *testing.T) {
	assert.Equal(t, 4.0, descstats.Range([]float64{3, 1, 4, 1, 5}), "range of mixed values")
	assert.Equal(t, 0.0, descstats.Range([]float64{7}), "single element has zero range")
}

// TestStdDev_Degenerate verifies the explicit zero branch: fewer than
// two elements, and all-equal data, must yield exactly 0.
func TestStdDev_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, descstats.StdDev([]float64{42}), "n=1 must be exactly 0")
	assert.Equal(t, 0.0, descstats.StdDev([]float64{5, 5, 5, 5, 5}), "all-equal must be exactly 0")
}

// TestStdDev_Sample verifies the n−1 denominator on a known vector:
// s([1..10]) = √(82.5/9).
func TestStdDev_Sample(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	assert.InDelta(t, 3.0276503540974917, descstats.StdDev(data), 1e-12, "sample stddev of 1..10")
}

// TestIQR_Inclusive pins the inclusive quartile convention
// (linear interpolation at rank p·(n−1)) against reference vectors.
func TestIQR_Inclusive(t *testing.T) {
	assert.InDelta(t, 2.0, descstats.IQR([]float64{1, 2, 3, 4, 5}), 1e-12, "Q1=2, Q3=4 for 1..5")
	assert.InDelta(t, 3.0, descstats.IQR([]float64{1, 2, 3, 4, 5, 6, 7}), 1e-12, "Q1=2.5, Q3=5.5 for 1..7")
	assert.InDelta(t, 4.5, descstats.IQR([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}), 1e-12, "Q1=3.25, Q3=7.75 for 1..10")
}

// TestIQR_Degenerate verifies the zero-spread cases.
func TestIQR_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, descstats.IQR([]float64{5, 5, 5, 5, 5}), "all-equal data has zero IQR")
	assert.Equal(t, 0.0, descstats.IQR([]float64{42}), "single element has zero IQR")
}

// TestIQR_DoesNotMutate verifies the caller's slice survives the
// internal sort untouched.
func TestIQR_DoesNotMutate(t *testing.T) {
	data := []float64{9, 1, 5, 2}
	_ = descstats.IQR(data)
	assert.Equal(t, []float64{9, 1, 5, 2}, data, "input must never be reordered")
}

// TestSkewness_Symmetric verifies both variants vanish on symmetric
// data (the third central moment of 1..5 is exactly zero).
func TestSkewness_Symmetric(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5}
	assert.InDelta(t, 0.0, descstats.PopulationSkewness(data), 1e-12, "population skewness of symmetric data")
	assert.InDelta(t, 0.0, descstats.SampleSkewness(data), 1e-12, "sample skewness of symmetric data")
}

// TestSkewness_RightSkewed checks both variants on [1,1,1,2,10]:
// m3 = 63.6, σ_pop = √12.4, so g1 = 63.6/12.4^1.5 and
// G1 = g1·√20/3.
func TestSkewness_RightSkewed(t *testing.T) {
	data := []float64{1, 1, 1, 2, 10}
	assert.InDelta(t, 1.4565473, descstats.PopulationSkewness(data), 1e-5, "uncorrected g1")
	assert.InDelta(t, 2.1712925, descstats.SampleSkewness(data), 1e-5, "bias-corrected G1")
}

// TestSkewnessStdErr checks both standard-error formulas at n=5:
// sample SES = √(120/144), population σ_√b1 = √(18/48).
func TestSkewnessStdErr(t *testing.T) {
	assert.InDelta(t, 0.9128709291752769, descstats.SampleSkewnessStdErr(5), 1e-12, "sample SES at n=5")
	assert.InDelta(t, 0.6123724356957945, descstats.PopulationSkewnessStdErr(5), 1e-12, "population SES at n=5")
}

// TestSkewnessStdErr_ShrinksWithN sanity-checks that both standard
// errors decrease as the sample grows.
func TestSkewnessStdErr_ShrinksWithN(t *testing.T) {
	prevS, prevP := descstats.SampleSkewnessStdErr(3), descstats.PopulationSkewnessStdErr(3)
	for n := 10; n <= 10000; n *= 10 {
		s, p := descstats.SampleSkewnessStdErr(n), descstats.PopulationSkewnessStdErr(n)
		assert.Less(t, s, prevS, "sample SES must shrink with n")
		assert.Less(t, p, prevP, "population SES must shrink with n")
		prevS, prevP = s, p
	}
}
