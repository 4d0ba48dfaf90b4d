package netivot

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/etzhaim/netivot/pkg/cluster"
	"github.com/etzhaim/netivot/pkg/config"
	"github.com/etzhaim/netivot/pkg/graph"
	"github.com/etzhaim/netivot/pkg/lexicon"
	"github.com/etzhaim/netivot/pkg/logger"
	"github.com/etzhaim/netivot/pkg/score"
)

// ErrInvalidBaseline is returned when a configured baseline does not have
// one value per sefira.
var ErrInvalidBaseline = errors.New("baseline must have one value per sefira")

// Analyzer is the main interface for computing semantic signatures of
// Hebrew texts.
type Analyzer interface {
	// BuildGraph builds the weighted letter graph for a whole text.
	BuildGraph(text string) (*graph.Graph, error)

	// Segments splits text into the configured fixed-size segments.
	Segments(text string) ([]string, error)

	// Phases segments text, clusters the segments into phases and ranks
	// the most specific sefirot per phase.
	Phases(text string) ([]PhaseReport, error)

	// ComputeBaseline averages per-text activity across a reference corpus.
	ComputeBaseline(corpus []string) (score.Baseline, error)

	// SetBaseline installs the baseline used by Phases and TopSefirot.
	SetBaseline(baseline score.Baseline)

	// TopSefirot ranks sefirot for an activity vector against the current
	// baseline.
	TopSefirot(activity graph.ActivityVector, topN int) []score.RankedSefira
}

// Client is the main implementation of the Analyzer interface.
type Client struct {
	cfg       *config.Config
	method    graph.Normalization
	builder   *graph.Builder
	clusterer *cluster.Clusterer
	scorer    *score.Scorer
	baseline  *score.Baseline
	logger    *slog.Logger
}

var _ Analyzer = (*Client)(nil)

// PhaseReport pairs a phase with its ranked sefirot. Reports preserve
// segment order: the phase containing segment 0 comes first.
type PhaseReport struct {
	Phase cluster.Phase        `json:"phase"`
	Top   []score.RankedSefira `json:"top"`
}

// New creates a client. A nil cfg loads the default configuration; a nil
// log builds a colored stderr logger at the configured level.
func New(cfg *config.Config, log *slog.Logger) (*Client, error) {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if log == nil {
		log = logger.NewDefaultLogger(logger.ParseLevel(cfg.Log.Level))
	}

	method := graph.Normalization(cfg.Analysis.Normalization)
	if err := method.Validate(); err != nil {
		return nil, err
	}

	builder := graph.NewBuilder(log)
	c := &Client{
		cfg:       cfg,
		method:    method,
		builder:   builder,
		clusterer: cluster.NewClusterer(builder, log),
		scorer:    score.NewScorer(log),
		logger:    log,
	}

	if len(cfg.Baseline.Activity) > 0 {
		if len(cfg.Baseline.Activity) != lexicon.NumSefirot {
			return nil, fmt.Errorf("%w: got %d values", ErrInvalidBaseline, len(cfg.Baseline.Activity))
		}
		var baseline score.Baseline
		copy(baseline[:], cfg.Baseline.Activity)
		c.baseline = &baseline
	}

	return c, nil
}

// BuildGraph builds the weighted letter graph for a whole text.
func (c *Client) BuildGraph(text string) (*graph.Graph, error) {
	return c.builder.Build(text, c.method)
}

// Segments splits text into the configured fixed-size rune segments.
func (c *Client) Segments(text string) ([]string, error) {
	return cluster.Segment(text, c.cfg.Analysis.SegmentSize)
}

// ComputeBaseline averages per-text activity across a reference corpus
// using the configured normalization method. The result is not installed;
// call SetBaseline to use it.
func (c *Client) ComputeBaseline(corpus []string) (score.Baseline, error) {
	return score.ComputeBaseline(c.builder, corpus, c.method)
}

// SetBaseline installs the baseline used by Phases and TopSefirot.
func (c *Client) SetBaseline(baseline score.Baseline) {
	c.baseline = &baseline
}

// TopSefirot ranks sefirot for an activity vector against the current
// baseline. Without an installed baseline the ranking degrades to raw
// activity order.
func (c *Client) TopSefirot(activity graph.ActivityVector, topN int) []score.RankedSefira {
	var baseline score.Baseline
	if c.baseline != nil {
		baseline = *c.baseline
	}
	return c.scorer.TopSefirot(activity, baseline, topN)
}

// Phases segments text, clusters the segments into phases and ranks the
// most specific sefirot of each phase. Without an installed baseline the
// mean segment activity of the text itself serves as the baseline, so the
// ranking surfaces what sets each phase apart from the text's own average.
func (c *Client) Phases(text string) ([]PhaseReport, error) {
	segments, err := c.Segments(text)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, nil
	}

	phases, err := c.clusterer.Cluster(segments, c.method, &cluster.Config{
		Phases:      c.cfg.Analysis.Phases,
		SegmentSize: c.cfg.Analysis.SegmentSize,
		Sigma:       c.cfg.Analysis.Sigma,
	})
	if err != nil {
		return nil, err
	}

	baseline, err := c.phaseBaseline(segments)
	if err != nil {
		return nil, err
	}

	reports := make([]PhaseReport, len(phases))
	for i, phase := range phases {
		reports[i] = PhaseReport{
			Phase: phase,
			Top:   c.scorer.TopSefirot(phase.Activity, baseline, c.cfg.Analysis.TopN),
		}
	}

	c.logger.Info("phase analysis complete",
		"segments", len(segments),
		"phases", len(reports))
	return reports, nil
}

// phaseBaseline returns the installed baseline, or the mean segment
// activity of the analyzed text when none is installed.
func (c *Client) phaseBaseline(segments []string) (score.Baseline, error) {
	if c.baseline != nil {
		return *c.baseline, nil
	}
	return score.ComputeBaseline(c.builder, segments, c.method)
}
