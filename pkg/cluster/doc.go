// Package cluster groups text segments into phases.
//
// A text is split into fixed-size segments, each segment is reduced to a
// per-sefira activity vector, and segments with similar profiles are grouped
// by spectral clustering: an RBF affinity matrix over the activity vectors,
// the symmetric normalized Laplacian, its bottom eigenvectors as an
// embedding, and k-means over the embedded rows. The numerical work sits on
// gonum; the value of the package is the feature construction, not the
// clustering algorithm.
//
// All steps are deterministic, so clustering the same segments twice yields
// the same partition.
package cluster
