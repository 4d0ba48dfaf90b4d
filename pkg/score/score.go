package score

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/etzhaim/netivot/pkg/graph"
	"github.com/etzhaim/netivot/pkg/lexicon"
)

// Baseline is the average activity per sefira across a reference corpus.
// Computed once and reused across scoring calls.
type Baseline = graph.ActivityVector

// RankedSefira is one entry of a specificity ranking.
type RankedSefira struct {
	Name            string  `json:"name"`
	Transliteration string  `json:"transliteration"`
	Meaning         string  `json:"meaning"`
	Activity        float64 `json:"activity"`
	Specificity     float64 `json:"specificity"`
}

// ComputeBaseline builds a graph per corpus text and averages the activity
// vectors. An empty corpus yields an all-zero baseline.
func ComputeBaseline(builder *graph.Builder, corpus []string, method graph.Normalization) (Baseline, error) {
	var baseline Baseline
	if len(corpus) == 0 {
		return baseline, nil
	}
	for i, text := range corpus {
		g, err := builder.Build(text, method)
		if err != nil {
			return Baseline{}, fmt.Errorf("failed to build graph for corpus text %d: %w", i, err)
		}
		baseline.Add(g.Activity)
	}
	baseline.Scale(1 / float64(len(corpus)))
	return baseline, nil
}

// Scorer ranks sefirot against a baseline.
type Scorer struct {
	logger *slog.Logger
}

// NewScorer creates a scorer. A nil logger disables logging.
func NewScorer(logger *slog.Logger) *Scorer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scorer{logger: logger}
}

// TopSefirot returns the topN sefirot ranked descending by specificity,
// where specificity is activity divided by baseline activity. A zero
// baseline entry falls back to the raw activity (see package doc). topN
// above 10 is capped at 10; topN of zero or less yields an empty ranking.
// Ties are broken by canonical sefira order, so identical input always
// produces an identical ranking.
func (s *Scorer) TopSefirot(activity graph.ActivityVector, baseline Baseline, topN int) []RankedSefira {
	if topN <= 0 {
		return nil
	}
	if topN > lexicon.NumSefirot {
		s.logger.Debug("capping top_n", "requested", topN, "cap", lexicon.NumSefirot)
		topN = lexicon.NumSefirot
	}

	ranked := make([]RankedSefira, lexicon.NumSefirot)
	order := make([]int, lexicon.NumSefirot)
	for i, sefira := range lexicon.Sefirot() {
		specificity := activity[i]
		if baseline[i] > 0 {
			specificity = activity[i] / baseline[i]
		}
		ranked[i] = RankedSefira{
			Name:            sefira.Name,
			Transliteration: sefira.Transliteration,
			Meaning:         sefira.Meaning,
			Activity:        activity[i],
			Specificity:     specificity,
		}
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return ranked[order[a]].Specificity > ranked[order[b]].Specificity
	})

	out := make([]RankedSefira, topN)
	for i := 0; i < topN; i++ {
		out[i] = ranked[order[i]]
	}
	return out
}
