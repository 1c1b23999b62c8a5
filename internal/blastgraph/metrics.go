package blastgraph

import "math"

// CollectMetrics runs the second pass over the hit records: every non-self
// hit becomes a candidate edge weighted by up to four metrics. Only the
// best hit per unordered sequence pair is kept (highest bit score; a tie
// keeps the earlier record).
func CollectMetrics(sc *HitScanner, g *Graph) error {
	for sc.Scan() {
		hit := sc.Hit()
		if hit.SelfHit() {
			continue
		}

		weights, err := hitWeights(hit, g)
		if err != nil {
			return err
		}

		cur, ok := g.Edge(hit.Query, hit.Subject)
		if !ok {
			g.PutEdge(&MetricEdge{Query: hit.Query, Subject: hit.Subject, Weights: weights})
			continue
		}
		if hit.BitScore > cur.Weights[MetricBitScore].Value {
			cur.Weights = weights
		}
	}

	return sc.Err()
}

// hitWeights derives the metric set for one hit. bpr and bsr need a
// self-score for both endpoints and are left off the edge when either is
// missing; evl and bit are always present.
func hitWeights(hit Hit, g *Graph) (map[string]Weight, error) {
	evl := negLog10(hit.EValue)
	if math.IsInf(evl, 1) {
		// the aligner rounded the E-value to zero
		evl = EValueSaturation
	}

	weights := map[string]Weight{
		MetricEValue:   {Value: evl},
		MetricBitScore: {Value: hit.BitScore},
	}

	qSelf, qok := g.SelfScore(hit.Query)
	sSelf, sok := g.SelfScore(hit.Subject)
	if !qok || !sok {
		return weights, nil
	}

	minLen := math.Min(hit.QueryLen, hit.SubjectLen)
	if minLen <= 0 {
		return nil, &DegenerateAlignmentError{
			Query:    hit.Query,
			Subject:  hit.Subject,
			Line:     hit.Line,
			Quantity: "sequence length",
		}
	}
	minSelf := math.Min(qSelf, sSelf)
	if minSelf <= 0 {
		return nil, &DegenerateAlignmentError{
			Query:    hit.Query,
			Subject:  hit.Subject,
			Line:     hit.Line,
			Quantity: "self-alignment score",
		}
	}

	weights[MetricBitPerLen] = Weight{Value: hit.BitScore / minLen}
	weights[MetricBitScoreRatio] = Weight{Value: hit.BitScore / minSelf}

	return weights, nil
}
