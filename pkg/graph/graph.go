package graph

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/etzhaim/netivot/pkg/lexicon"
)

// ErrUnknownNormalization is returned for normalization methods outside the
// supported set.
var ErrUnknownNormalization = errors.New("unknown normalization method")

// Normalization selects how letter counts are turned into edge weights.
type Normalization string

const (
	// NormalizationRaw uses raw occurrence counts as edge weights.
	NormalizationRaw Normalization = "raw"
	// NormalizationLog uses log(1+count), damping very frequent letters.
	NormalizationLog Normalization = "log"
)

// Validate checks that the normalization method is supported.
func (n Normalization) Validate() error {
	switch n {
	case NormalizationRaw, NormalizationLog:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownNormalization, string(n))
	}
}

// Edge is one of the 22 letter edges with the weight it carries for the
// analyzed text.
type Edge struct {
	Letter lexicon.Letter
	Count  int
	Weight float64
}

// Graph is the weighted letter graph of a single text or segment. The edge
// slice is always the full canonical 22, in canonical order; edges for
// letters absent from the text carry zero weight.
type Graph struct {
	Edges    [lexicon.NumLetters]Edge
	Activity ActivityVector
	Method   Normalization
}

// ActiveEdges returns the edges with a non-zero count.
func (g *Graph) ActiveEdges() []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.Count > 0 {
			out = append(out, e)
		}
	}
	return out
}

// Builder constructs letter graphs from Hebrew text.
type Builder struct {
	logger *slog.Logger
}

// NewBuilder creates a graph builder. A nil logger disables logging.
func NewBuilder(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Builder{logger: logger}
}

// Build counts letter occurrences in text and assembles the weighted graph.
// Runes outside the 22-letter table are ignored; empty text yields a graph
// with zero activity for every sefira.
func (b *Builder) Build(text string, method Normalization) (*Graph, error) {
	if err := method.Validate(); err != nil {
		return nil, err
	}

	counts := LetterCounts(text)

	g := &Graph{Method: method}
	total := 0
	for i, l := range lexicon.Letters() {
		count := counts[l.Rune]
		total += count

		weight := float64(count)
		if method == NormalizationLog {
			weight = math.Log1p(weight)
		}

		g.Edges[i] = Edge{Letter: l, Count: count, Weight: weight}

		g.Activity[l.From] += weight
		if l.To != l.From {
			g.Activity[l.To] += weight
		}
	}

	b.logger.Debug("built letter graph",
		"letters", total,
		"active_edges", len(g.ActiveEdges()),
		"method", string(method))

	return g, nil
}

// LetterCounts returns the raw occurrence count per letter, keyed by the
// base rune. Final forms fold into their base letter; anything else is
// skipped.
func LetterCounts(text string) map[rune]int {
	counts := make(map[rune]int, lexicon.NumLetters)
	for _, r := range text {
		if l, ok := lexicon.LetterByRune(r); ok {
			counts[l.Rune]++
		}
	}
	return counts
}
