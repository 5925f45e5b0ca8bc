// Package recognizer orchestrates recognition: given an input
// character and a count N, it walks the model's stroke-count groups
// (pruned by a ±window_size filter), dispatches the DTW-4 kernel on
// batches of four templates and the scalar kernel on the remainder,
// and returns the N closest templates by DTW distance.
package recognizer
