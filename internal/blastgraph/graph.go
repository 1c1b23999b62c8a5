package blastgraph

import (
	"sort"
	"strings"
)

// Metric names, in the order their abc files are written.
const (
	// MetricEValue is -log10(E-value), capped at EValueSaturation.
	MetricEValue = "evl"

	// MetricBitScore is the raw bit score as reported by the aligner.
	MetricBitScore = "bit"

	// MetricBitPerLen is the bit score per residue of the shorter sequence.
	MetricBitPerLen = "bpr"

	// MetricBitScoreRatio is the bit score over the smaller of the two
	// self-alignment scores.
	MetricBitScoreRatio = "bsr"
)

// Metrics lists every edge metric in export order.
var Metrics = []string{MetricEValue, MetricBitScore, MetricBitPerLen, MetricBitScoreRatio}

// Weight is one metric value on an edge: either a computed value or a value
// pending the saturation fix that runs after cross-organism scaling. Only
// the E-value metric ever becomes pending.
type Weight struct {
	Value   float64
	Pending bool
}

// SequenceNode is one sequence seen in a self-alignment, carrying the best
// self-alignment bit score observed for it.
type SequenceNode struct {
	ID        string
	Org       string  // organism tag: the ID prefix before the delimiter
	SelfScore float64 // maximum self-alignment bit score
}

// MetricEdge is the single edge kept for an unordered sequence pair. Query
// and Subject keep the orientation of the record that created the edge;
// better hits replace the weights but never the orientation.
type MetricEdge struct {
	Query   string
	Subject string
	Weights map[string]Weight
}

// Value returns the computed value for one metric. ok is false if the
// metric is absent from the edge or pending recomputation.
func (e *MetricEdge) Value(met string) (v float64, ok bool) {
	w, ok := e.Weights[met]
	if !ok || w.Pending {
		return 0, false
	}
	return w.Value, true
}

// Set stores a computed value for one metric, clearing any pending mark.
func (e *MetricEdge) Set(met string, v float64) {
	e.Weights[met] = Weight{Value: v}
}

// MarkPending flags a metric for recomputation while keeping its stale
// value out of reach of Value.
func (e *MetricEdge) MarkPending(met string) {
	w := e.Weights[met]
	w.Pending = true
	e.Weights[met] = w
}

// IsPending reports whether a metric awaits recomputation.
func (e *MetricEdge) IsPending(met string) bool {
	return e.Weights[met].Pending
}

// Pair is an unordered pair of IDs; PairOf sorts the two so (a,b) and (b,a)
// compare equal as map keys.
type Pair struct{ A, B string }

// PairOf returns the normalized Pair for two IDs.
func PairOf(x, y string) Pair {
	if y < x {
		x, y = y, x
	}
	return Pair{x, y}
}

// OrgTag returns the organism tag of a sequence ID: the prefix before the
// first idChar. IDs without the delimiter are their own tag.
func OrgTag(id, idChar string) string {
	if i := strings.Index(id, idChar); i >= 0 {
		return id[:i]
	}
	return id
}

// Graph is the metric graph: sequence nodes keyed by ID (only sequences
// seen in a self-alignment get a node) and one MetricEdge per unordered ID
// pair. The pipeline phases share one Graph and run strictly in sequence,
// so each phase is the only writer while it runs.
type Graph struct {
	nodes map[string]*SequenceNode
	edges map[Pair]*MetricEdge
}

// NewGraph returns an empty metric graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*SequenceNode),
		edges: make(map[Pair]*MetricEdge),
	}
}

// RecordSelfScore raises the self-score for id to score, creating the node
// on first sight. Self-scores never decrease: reciprocal self-alignments
// frequently have slightly different boundaries and scores, and the larger
// (more complete) alignment wins.
func (g *Graph) RecordSelfScore(id, org string, score float64) {
	n, ok := g.nodes[id]
	if !ok {
		g.nodes[id] = &SequenceNode{ID: id, Org: org, SelfScore: score}
		return
	}
	if score > n.SelfScore {
		n.SelfScore = score
	}
}

// SelfScore returns the recorded self-alignment score for a sequence.
func (g *Graph) SelfScore(id string) (float64, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return 0, false
	}
	return n.SelfScore, true
}

// Edge returns the stored edge for the unordered pair (q, s).
func (g *Graph) Edge(q, s string) (*MetricEdge, bool) {
	e, ok := g.edges[PairOf(q, s)]
	return e, ok
}

// PutEdge stores e as the edge for its unordered pair, replacing any
// existing edge.
func (g *Graph) PutEdge(e *MetricEdge) {
	g.edges[PairOf(e.Query, e.Subject)] = e
}

// Edges returns every edge sorted by (Query, Subject). Aggregation, scaling
// and export all walk this order so that float sums and output files are
// identical run to run.
func (g *Graph) Edges() []*MetricEdge {
	edges := make([]*MetricEdge, 0, len(g.edges))
	for _, e := range g.edges {
		edges = append(edges, e)
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Query != edges[j].Query {
			return edges[i].Query < edges[j].Query
		}
		return edges[i].Subject < edges[j].Subject
	})

	return edges
}

// NumNodes returns how many sequences have a recorded self-score.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns how many unordered sequence pairs have an edge.
func (g *Graph) NumEdges() int { return len(g.edges) }
