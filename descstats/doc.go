// Package descstats provides the descriptive statistics the binning
// rules are built on: range, sample standard deviation, interquartile
// range, skewness (sample and population variants) and the standard
// error of skewness.
//
// All functions are pure: they read the input slice without mutating it
// (quartiles sort a private copy) and allocate only local intermediates,
// so concurrent use over shared data is safe by construction.
//
// Contracts follow the gonum convention: leaf statistics do not return
// errors; instead each function documents its minimum dataset size, and
// the bins package enforces those preconditions before calling in.
// In particular:
//
//   - Range requires a non-empty slice.
//   - StdDev and IQR are defined as exactly 0 for degenerate
//     (all-equal or single-element) data — an explicit branch, never a
//     division by zero.
//   - SampleSkewness, PopulationSkewness and both standard-error
//     functions assume n ≥ 3.
//
// Quartiles use the inclusive method: linear interpolation at rank
// p·(n−1) over the sorted data (the QUARTILE.INC / NumPy-default
// convention), so IQR([1,2,3,4,5]) = 2 exactly.
package descstats
