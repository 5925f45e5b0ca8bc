// Package matrix provides a small dense float64 matrix, used by modelstats
// to hold a pairwise DTW distance matrix over a sampled set of templates.
//
// Dense is a row-major, flat-backed implementation of the Matrix interface:
// O(1) At/Set with bounds checking and O(r*c) Clone. Set rejects NaN and
// ±Inf, since a DTW distance is never either.
package matrix
