package cluster

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/etzhaim/netivot/pkg/graph"
)

// Validation errors
var (
	ErrInvalidSegmentSize = errors.New("segment size must be positive")
	ErrInvalidPhaseCount  = errors.New("phase count must be positive")
)

// Config holds clustering parameters.
type Config struct {
	// Phases is the desired number of segment groups.
	Phases int
	// SegmentSize is the segment length in runes for ClusterText.
	SegmentSize int
	// Sigma is the RBF kernel width. Zero selects the median pairwise
	// distance between segment vectors.
	Sigma float64
}

// WithDefaults returns a copy of the config with default values applied.
func (c *Config) WithDefaults() *Config {
	if c == nil {
		return &Config{Phases: 2, SegmentSize: 200}
	}
	result := *c
	if result.Phases == 0 {
		result.Phases = 2
	}
	if result.SegmentSize == 0 {
		result.SegmentSize = 200
	}
	return &result
}

// Phase is a group of segments sharing a similar activity profile. Segments
// holds the member indices in ascending order; Activity is the sum of the
// members' activity vectors.
type Phase struct {
	ID       string
	Segments []int
	Activity graph.ActivityVector
}

// Segment splits text into fixed-size rune windows, preserving order. The
// trailing segment may be shorter. Empty text yields no segments.
func Segment(text string, size int) ([]string, error) {
	if size <= 0 {
		return nil, ErrInvalidSegmentSize
	}
	runes := []rune(text)
	var segments []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		segments = append(segments, string(runes[start:end]))
	}
	return segments, nil
}

// Clusterer groups segments into phases.
type Clusterer struct {
	builder *graph.Builder
	logger  *slog.Logger
}

// NewClusterer creates a clusterer. A nil logger disables logging.
func NewClusterer(builder *graph.Builder, logger *slog.Logger) *Clusterer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Clusterer{builder: builder, logger: logger}
}

// ClusterText segments text and clusters the segments.
func (c *Clusterer) ClusterText(text string, method graph.Normalization, cfg *Config) ([]Phase, error) {
	cfg = cfg.WithDefaults()
	segments, err := Segment(text, cfg.SegmentSize)
	if err != nil {
		return nil, err
	}
	return c.Cluster(segments, method, cfg)
}

// Cluster partitions the given segments into at most cfg.Phases phases.
// Every segment index appears in exactly one phase; phases are ordered by
// their smallest member index.
func (c *Clusterer) Cluster(segments []string, method graph.Normalization, cfg *Config) ([]Phase, error) {
	cfg = cfg.WithDefaults()
	if cfg.Phases < 0 {
		return nil, ErrInvalidPhaseCount
	}
	if len(segments) == 0 {
		return nil, nil
	}

	vectors := make([]graph.ActivityVector, len(segments))
	for i, seg := range segments {
		g, err := c.builder.Build(seg, method)
		if err != nil {
			return nil, fmt.Errorf("failed to build graph for segment %d: %w", i, err)
		}
		vectors[i] = g.Activity
	}

	k := cfg.Phases
	if k > len(segments) {
		k = len(segments)
	}

	var labels []int
	if k <= 1 {
		labels = make([]int, len(segments))
	} else {
		labels = spectralLabels(vectors, k, cfg.Sigma)
	}

	phases := groupPhases(labels, vectors)
	c.logger.Debug("clustered segments",
		"segments", len(segments),
		"phases", len(phases),
		"requested", cfg.Phases)
	return phases, nil
}

// groupPhases collects segment indices by label and orders the phases by
// their smallest member.
func groupPhases(labels []int, vectors []graph.ActivityVector) []Phase {
	byLabel := make(map[int]*Phase)
	var order []int
	for i, label := range labels {
		p, ok := byLabel[label]
		if !ok {
			p = &Phase{ID: uuid.NewString()}
			byLabel[label] = p
			order = append(order, label)
		}
		p.Segments = append(p.Segments, i)
		p.Activity.Add(vectors[i])
	}

	phases := make([]Phase, 0, len(byLabel))
	for _, label := range order {
		phases = append(phases, *byLabel[label])
	}
	sort.Slice(phases, func(i, j int) bool {
		return phases[i].Segments[0] < phases[j].Segments[0]
	})
	return phases
}
