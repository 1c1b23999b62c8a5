package blastgraph

// ExtractSelfScores runs the first pass over the hit records: every
// self-alignment raises its sequence's self-score and registers the
// organism tag. The returned set holds every organism tag seen.
//
// Reciprocal self-alignments routinely differ a little in boundary and
// score, and neither is more valid than the other, so the larger one wins.
// That also means self-score dependent metrics cannot be computed until
// the whole input has been seen once, hence the second pass in
// CollectMetrics.
func ExtractSelfScores(sc *HitScanner, g *Graph, idChar string) (map[string]bool, error) {
	orgs := make(map[string]bool)

	for sc.Scan() {
		hit := sc.Hit()
		if !hit.SelfHit() {
			continue
		}

		org := OrgTag(hit.Query, idChar)
		orgs[org] = true
		g.RecordSelfScore(hit.Query, org, hit.BitScore)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return orgs, nil
}
