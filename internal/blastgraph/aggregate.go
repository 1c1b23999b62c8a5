package blastgraph

import "sort"

// PairStats accumulates the edges between one pair of organisms: the edge
// count, per-metric sums and, after Finalize, per-metric averages. An edge
// missing a metric contributes to Count but not to that metric's sum.
type PairStats struct {
	Count int
	Sum   map[string]float64
	Avg   map[string]float64
}

func newPairStats() *PairStats {
	return &PairStats{
		Sum: make(map[string]float64),
		Avg: make(map[string]float64),
	}
}

// OrganismAverages holds one PairStats per observed organism pair plus the
// whole-collection aggregate that scale factors are derived from.
type OrganismAverages struct {
	pairs  map[Pair]*PairStats
	Global *PairStats
}

// Pair returns the stats for the unordered organism pair (a, b).
func (o *OrganismAverages) Pair(a, b string) (*PairStats, bool) {
	ps, ok := o.pairs[PairOf(a, b)]
	return ps, ok
}

// SortedPairs returns the observed organism pairs in lexicographic order.
func (o *OrganismAverages) SortedPairs() []Pair {
	keys := make([]Pair, 0, len(o.pairs))
	for k := range o.pairs {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})

	return keys
}

// AggregateOrganisms folds every edge into the aggregate for its endpoints'
// organism pair. A saturated E-value contributes its capped value to the
// sums like any other and is then marked pending, so the scaler can rebuild
// it once every ordinary E-value has been rescaled.
func AggregateOrganisms(g *Graph, idChar string) *OrganismAverages {
	avgs := &OrganismAverages{
		pairs:  make(map[Pair]*PairStats),
		Global: newPairStats(),
	}

	for _, e := range g.Edges() {
		key := PairOf(OrgTag(e.Query, idChar), OrgTag(e.Subject, idChar))
		ps, ok := avgs.pairs[key]
		if !ok {
			ps = newPairStats()
			avgs.pairs[key] = ps
		}

		ps.Count++
		for _, met := range Metrics {
			w, ok := e.Weights[met]
			if !ok {
				continue
			}
			ps.Sum[met] += w.Value
		}

		if w, ok := e.Weights[MetricEValue]; ok && w.Value == EValueSaturation {
			e.MarkPending(MetricEValue)
		}
	}

	return avgs
}

// Finalize computes the per-pair and global averages. Every recorded pair
// has at least one edge so the per-pair division is safe; a graph without
// any edges has no global average and cannot be normalized.
func (o *OrganismAverages) Finalize() error {
	for _, key := range o.SortedPairs() {
		ps := o.pairs[key]
		o.Global.Count += ps.Count
		for _, met := range Metrics {
			o.Global.Sum[met] += ps.Sum[met]
			ps.Avg[met] = ps.Sum[met] / float64(ps.Count)
		}
	}

	if o.Global.Count == 0 {
		return &NormalizationError{Reason: "graph has no edges to average"}
	}
	for _, met := range Metrics {
		o.Global.Avg[met] = o.Global.Sum[met] / float64(o.Global.Count)
	}

	return nil
}
