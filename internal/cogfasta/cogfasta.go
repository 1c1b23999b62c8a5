// Package cogfasta rewrites the headers of the FASTA files that ship with
// the COG and KOG databases so every sequence carries its organism tag and
// group annotation, ready for all-vs-all alignment and graph building.
package cogfasta

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// stderr is for logging to os.Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// Format rewrites the FASTA at fastaPath using the catalog at catalogPath
// and writes the annotated records to outPath. A non-empty statsPath also
// gets the per-sequence composition table, formatted for R.
func Format(catalogPath, fastaPath, outPath, statsPath string) (annotated, total int, err error) {
	catalog, err := os.Open(catalogPath)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "failed to open catalog %s", catalogPath)
	}
	anns, err := ParseCatalog(catalog)
	catalog.Close()
	if err != nil {
		return 0, 0, err
	}

	fasta, err := os.Open(fastaPath)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "failed to open FASTA file %s", fastaPath)
	}
	defer fasta.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "failed to create %s", outPath)
	}

	var stats io.Writer
	var statsFile *os.File
	if statsPath != "" {
		if statsFile, err = os.Create(statsPath); err != nil {
			out.Close()
			return 0, 0, errors.Wrapf(err, "failed to create %s", statsPath)
		}
		stats = statsFile
	}

	annotated, total, err = Reformat(fasta, out, stats, anns)

	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if statsFile != nil {
		if cerr := statsFile.Close(); err == nil {
			err = cerr
		}
	}

	return annotated, total, err
}

// FormatCmd takes a cobra command (with its flags) and runs Format.
func FormatCmd(cmd *cobra.Command, args []string) {
	in, err := cmd.Flags().GetString("in")
	if in == "" || err != nil {
		if helperr := cmd.Help(); helperr != nil {
			stderr.Fatalln(helperr)
		}
		stderr.Fatalln("\nno input FASTA file passed.")
	}

	whog, _ := cmd.Flags().GetString("whog")
	kog, _ := cmd.Flags().GetString("kog")
	if (whog == "") == (kog == "") {
		if helperr := cmd.Help(); helperr != nil {
			stderr.Fatalln(helperr)
		}
		stderr.Fatalln("\nspecify exactly one of --whog and --kog (myva for whog, kyva for kog).")
	}
	catalog := whog
	if kog != "" {
		catalog = kog
	}

	out, err := cmd.Flags().GetString("out")
	if out == "" || err != nil {
		out = guessOutput(in)
	}
	stats, _ := cmd.Flags().GetString("stats")

	annotated, total, err := Format(catalog, in, out, stats)
	if err != nil {
		stderr.Fatalln(err)
	}

	fmt.Printf("annotated %s of %s sequences into %s\n",
		humanize.Comma(int64(annotated)), humanize.Comma(int64(total)), out)
}

// guessOutput returns an output path next to the input FASTA: the input
// path with a .cog.fasta extension.
func guessOutput(in string) string {
	return in[0:len(in)-len(filepath.Ext(in))] + ".cog.fasta"
}
