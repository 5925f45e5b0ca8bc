// Package modelstats computes descriptive statistics over a model's
// templates: Sample builds a dense pairwise DTW distance matrix over
// up to k templates, stride-sampled across the model's flat template
// order so the sample spans the whole character array, and Summary
// reduces that matrix to mean, standard deviation, and maximum spread
// — a quick diagnostic for how separable a model's character set is
// before committing to a similarity threshold elsewhere (confusion).
package modelstats
