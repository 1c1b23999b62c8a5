package blastgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/pkg/errors"
)

// WriteABC writes one MCL-compatible abc file per metric, named
// <prefix>_<metric>.abc, where every line is "query\tsubject\tweight".
// Edges are written sorted by (query, subject) so the same graph always
// produces byte-identical files; an edge missing a metric contributes no
// line to that metric's file. The list of files written is returned.
func WriteABC(g *Graph, prefix string) ([]string, error) {
	edges := g.Edges()

	files := make([]string, 0, len(Metrics))
	for _, met := range Metrics {
		path := prefix + "_" + met + ".abc"
		if err := writeMetricFile(path, met, edges); err != nil {
			return nil, err
		}
		files = append(files, path)
	}

	return files, nil
}

func writeMetricFile(path, met string, edges []*MetricEdge) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create graph file %s", path)
	}

	w := bufio.NewWriter(f)
	for _, e := range edges {
		v, ok := e.Value(met)
		if !ok {
			continue
		}
		// shortest round-trip formatting, so re-parsing gives the bits back
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Query, e.Subject, strconv.FormatFloat(v, 'g', -1, 64))
	}

	if err = w.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write graph file %s", path)
	}
	return f.Close()
}

// WriteReport prints a table of edge counts and metric averages, one row
// per organism pair and a summary row for the whole collection.
func WriteReport(out io.Writer, avgs *OrganismAverages) {
	w := tabwriter.NewWriter(out, 0, 4, 3, ' ', 0)

	fmt.Fprintf(w, "organisms\tedges")
	for _, met := range Metrics {
		fmt.Fprintf(w, "\tavg %s", met)
	}
	fmt.Fprintf(w, "\n")

	row := func(name string, ps *PairStats) {
		fmt.Fprintf(w, "%s\t%d", name, ps.Count)
		for _, met := range Metrics {
			fmt.Fprintf(w, "\t%.4g", ps.Avg[met])
		}
		fmt.Fprintf(w, "\n")
	}

	for _, key := range avgs.SortedPairs() {
		ps, _ := avgs.Pair(key.A, key.B)
		row(key.A+" "+key.B, ps)
	}
	row("all", avgs.Global)

	w.Flush()
}
