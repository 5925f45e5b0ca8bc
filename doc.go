// Package inkmatch recognizes handwritten characters online by
// comparing an input stroke sequence against a memory-mapped model of
// reference templates using Dynamic Time Warping.
//
// Subpackages:
//
//	model/      — zero-copy, mmap'd reader over the on-disk model format
//	character/  — the caller-facing input type (a sequence of feature vectors)
//	dtwkernel/  — scalar and SIMD-4 DTW distance kernels
//	recognizer/ — orchestrates windowed template search and ranks results
//	confusion/  — builds a confusion graph over a model's templates and
//	              clusters/paths it with the kept graph algorithms
//	modelstats/ — pairwise distance-matrix diagnostics over a model's templates
//
// Carried over from the graph library this module grew out of:
//
//	core/         — thread-safe Graph, Vertex, Edge primitives
//	bfs/ dfs/     — traversal, used by confusion for component/cycle analysis
//	dijkstra/     — shortest path, used by confusion.ShortestConfusionPath
//	prim_kruskal/ — minimum spanning tree, used by confusion.Cluster
//	matrix/       — dense matrix storage, used by modelstats.DistanceMatrix
package inkmatch
