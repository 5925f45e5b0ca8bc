// Package confusion builds and analyzes a confusion graph over a
// model's templates: vertices are unicode code points, edges join
// pairs of templates a Recognizer's own windowed search places within
// a distance threshold of each other, and edge weight is the
// quantized distance.
//
// Cluster groups mutually confusable characters by computing the
// graph's connected components, pruning each component's minimum
// spanning tree at its heaviest edges, and re-deriving components of
// the pruned forest. ShortestConfusionPath finds the cheapest chain of
// pairwise confusions between two characters.
package confusion
