// Package blastgraph converts tab-delimited BLAST hits into weighted
// similarity graphs, rescaled so scores are comparable across organisms.
package blastgraph

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sunnycqcn/BlastGraphMetrics/config"
)

// stderr is for logging to os.Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// BuildSummary reports what one Build run scanned and wrote.
type BuildSummary struct {
	Organisms int      // organism tags seen in self-alignments
	Sequences int      // sequences with a recorded self-score
	Edges     int      // unordered sequence pairs kept in the graph
	Saturated int      // edges whose E-value was rounded to zero upstream
	Files     []string // abc files written

	Averages *OrganismAverages
}

// Build scans the BLAST file at blastPath twice, once for self-alignment
// scores and once for cross-alignment metrics, and writes eight abc files:
// a raw and a normalized graph for each metric, named
// <outPrefix>_{raw,nrm}_<metric>.abc.
func Build(blastPath, outPrefix string, conf *config.Config) (*BuildSummary, error) {
	f, err := os.Open(blastPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open BLAST file %s", blastPath)
	}
	defer f.Close()

	var size int64
	if info, serr := f.Stat(); serr == nil {
		size = info.Size()
	}

	g := NewGraph()

	var in io.Reader = f
	var prog *passProgress
	if conf.Verbose {
		prog = newPassProgress("pass 1/2 self scores", f, size, os.Stderr)
		in = prog
	}
	orgs, err := ExtractSelfScores(NewHitScanner(in, conf), g, conf.IDChar)
	if prog != nil {
		prog.done()
	}
	if err != nil {
		return nil, err
	}

	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "failed to rewind BLAST file %s", blastPath)
	}

	in = f
	if conf.Verbose {
		prog = newPassProgress("pass 2/2 hit metrics", f, size, os.Stderr)
		in = prog
	}
	err = CollectMetrics(NewHitScanner(in, conf), g)
	if prog != nil {
		prog.done()
	}
	if err != nil {
		return nil, err
	}

	// the raw graphs are written before aggregation touches the edges
	rawFiles, err := WriteABC(g, outPrefix+"_raw")
	if err != nil {
		return nil, err
	}

	avgs := AggregateOrganisms(g, conf.IDChar)

	saturated := 0
	for _, e := range g.Edges() {
		if e.IsPending(MetricEValue) {
			saturated++
		}
	}

	if err = avgs.Finalize(); err != nil {
		return nil, err
	}
	if err = Normalize(g, avgs, conf.IDChar); err != nil {
		return nil, err
	}

	nrmFiles, err := WriteABC(g, outPrefix+"_nrm")
	if err != nil {
		return nil, err
	}

	return &BuildSummary{
		Organisms: len(orgs),
		Sequences: g.NumNodes(),
		Edges:     g.NumEdges(),
		Saturated: saturated,
		Files:     append(rawFiles, nrmFiles...),
		Averages:  avgs,
	}, nil
}

// BuildCmd takes a cobra command (with its flags) and runs Build.
func BuildCmd(cmd *cobra.Command, args []string) {
	in, err := cmd.Flags().GetString("in")
	if in == "" || err != nil {
		if helperr := cmd.Help(); helperr != nil {
			stderr.Fatalln(helperr)
		}
		stderr.Fatalln("\nno input BLAST file passed.")
	}

	out, err := cmd.Flags().GetString("out")
	if out == "" || err != nil {
		out = guessOutput(in)
	}

	conf := config.New()
	if err := conf.Validate(); err != nil {
		stderr.Fatalln(err)
	}

	start := time.Now()
	summary, err := Build(in, out, conf)
	if err != nil {
		stderr.Fatalln(err)
	}

	if conf.Verbose {
		fmt.Printf(
			"graphed %s edges between %s sequences from %s organisms (%s saturated E-values)\n\n",
			humanize.Comma(int64(summary.Edges)),
			humanize.Comma(int64(summary.Sequences)),
			humanize.Comma(int64(summary.Organisms)),
			humanize.Comma(int64(summary.Saturated)),
		)
		WriteReport(os.Stdout, summary.Averages)
		fmt.Printf("\n%s\n", time.Since(start))
	}
}

// guessOutput returns an abc file prefix in the same directory as the
// input: the input path with its extension dropped.
func guessOutput(in string) string {
	return in[0 : len(in)-len(filepath.Ext(in))]
}
