// Package dtwkernel implements the Dynamic Time Warping distance between
// packed feature-vector sequences: a scalar kernel over two rolling
// matrix rows, and a 4-wide kernel that evaluates four reference
// templates against one input in parallel using portable SIMD vector
// ops from github.com/ajroetker/go-highway.
//
// Local cost is L1 (absolute difference), summed over model.DPad lanes
// per vector; padding lanes are zero, so summing all DPad lanes equals
// summing only the model's logical Dimension lanes. The recurrence
// treats column/row index 0 as a boundary (cost-free anchor): C[0,0]=0,
// C[i,0]=C[0,j]=+Inf otherwise, matching the original wagomu matcher.
package dtwkernel
