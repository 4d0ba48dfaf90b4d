// Package graph builds the weighted letter graph for a Hebrew text.
//
// The vertex set is always the 10 canonical sefirot and the edge set is
// always the 22 canonical letters, regardless of input. Only edge weights
// and the derived per-vertex activity change from text to text: an edge's
// weight is the occurrence count of its letter (optionally log-scaled), and
// a vertex's activity is the sum of the weights of its incident edges.
//
// Graphs are ephemeral. They are rebuilt per text or per segment and never
// persisted.
package graph
