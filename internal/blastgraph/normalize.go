package blastgraph

import (
	"fmt"
	"math"
)

// evalueGap pads the synthetic E-value floor so that, once scaled back up,
// a saturated hit always lands above every genuinely computed E-value.
const evalueGap = 10.0

// Normalize rescales every edge metric in place by the ratio of the global
// average to the endpoints' organism-pair average, so that after scaling
// every organism pair has the same average score. Edges whose E-value was
// saturated are resolved in a second sweep: they get a synthetic raw value
// chosen so its scaled result clears the largest scaled E-value by
// evalueGap, even under the smallest scale factor seen.
func Normalize(g *Graph, avgs *OrganismAverages, idChar string) error {
	minScale := math.Inf(1)
	maxEvl := math.Inf(-1)
	pending := 0

	edges := g.Edges()
	for _, e := range edges {
		ps, ok := avgs.Pair(OrgTag(e.Query, idChar), OrgTag(e.Subject, idChar))
		if !ok {
			// AggregateOrganisms folded every edge, so the pair must exist
			return &NormalizationError{
				Reason: fmt.Sprintf("no averages for organism pair %s, %s",
					OrgTag(e.Query, idChar), OrgTag(e.Subject, idChar)),
			}
		}

		for _, met := range Metrics {
			w, ok := e.Weights[met]
			if !ok {
				continue
			}
			if w.Pending {
				pending++
				continue
			}

			// a zero pair average has no usable scale factor (an E-value
			// of exactly 1.0 contributes a zero evl)
			if ps.Avg[met] == 0 {
				return &NormalizationError{
					Reason: fmt.Sprintf("average %s for organism pair %s, %s is zero, its edges cannot be rescaled",
						met, OrgTag(e.Query, idChar), OrgTag(e.Subject, idChar)),
				}
			}

			scale := avgs.Global.Avg[met] / ps.Avg[met]
			scaled := w.Value * scale
			e.Set(met, scaled)

			if met == MetricEValue {
				if scale < minScale {
					minScale = scale
				}
				if scaled > maxEvl {
					maxEvl = scaled
				}
			}
		}
	}

	if pending == 0 {
		return nil
	}
	if math.IsInf(minScale, 1) {
		return &NormalizationError{
			Reason: "every E-value in the graph is saturated, nothing to anchor a synthetic floor to",
		}
	}

	// maxEvl+evalueGap == zeroEvl*minScale, so even the most downscaled
	// pending edge still beats every finite scaled E-value
	zeroEvl := (maxEvl + evalueGap) / minScale

	for _, e := range edges {
		if !e.IsPending(MetricEValue) {
			continue
		}
		ps, _ := avgs.Pair(OrgTag(e.Query, idChar), OrgTag(e.Subject, idChar))
		scale := avgs.Global.Avg[MetricEValue] / ps.Avg[MetricEValue]
		e.Set(MetricEValue, zeroEvl*scale)
	}

	return nil
}
