// Package netivot computes graph-based semantic signatures for Hebrew text.
//
// Netivot maps letter frequencies onto a fixed graph from the Sefer Yetzirah
// tradition: 10 sefirot as vertices and the 22 Hebrew letters as edges, each
// letter connecting two sefirot. A text induces edge weights (letter
// occurrence counts, optionally log-scaled) and per-vertex activity, the
// text's signature. Longer texts are split into segments, segments are
// grouped into phases by spectral clustering over their activity vectors,
// and a TF-IDF style scorer ranks the sefirot that are most specific to each
// phase relative to a baseline corpus.
//
// # Basic Usage
//
// Create a client and analyze a text:
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	client, err := netivot.New(cfg, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	g, err := client.BuildGraph("בראשית ברא אלהים")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(g.Activity)
//
// # Phase Analysis
//
// Phases combine segmentation, clustering and scoring:
//
//	reports, err := client.Phases(longText)
//	for _, r := range reports {
//		fmt.Printf("segments %v top sefira %s\n", r.Phase.Segments, r.Top[0].Name)
//	}
//
// # Baselines
//
// Specificity is only meaningful relative to a baseline. Supply one inline
// via config, compute one from a reference corpus with ComputeBaseline and
// install it with SetBaseline, or let Phases fall back to the mean segment
// activity of the analyzed text itself.
//
// The pipeline is pure and synchronous: no goroutines, no persistence, no
// external services. The static letter and sefirot tables live in
// pkg/lexicon and are immutable after process start.
package netivot
