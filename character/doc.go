// Package character defines the input handwritten-character value: a
// sequence of feature vectors plus stroke count, laid out the same way
// a template's stroke data is laid out in the model file (n_vectors
// packed DPad-wide float vectors), so the DTW kernels can treat input
// and template symmetrically.
package character
