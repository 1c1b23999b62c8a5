package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sunnycqcn/BlastGraphMetrics/internal/cogfasta"
)

// formatCmd is for rewriting COG/KOG FASTA headers with organism and group tags
var formatCmd = &cobra.Command{
	Use:                        "format",
	Short:                      "Rewrite COG/KOG FASTA headers with organism and group tags",
	Run:                        cogfasta.FormatCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Rewrite the headers of the myva (COG) or kyva (KOG) FASTA file so every
sequence is named "org|oldID___group", followed by the group's functional
category and description. Sequences missing from the catalog are dropped.

The organism tag in the rewritten headers is what 'blastgraph build'
splits back out with its --idchar flag after an all-vs-all alignment.`,
}

// set flags
func init() {
	formatCmd.Flags().StringP("in", "i", "", "input FASTA file (myva for COG, kyva for KOG)")
	formatCmd.Flags().StringP("out", "o", "", "output FASTA file name")
	formatCmd.Flags().StringP("whog", "w", "", "whog catalog that comes with the COG database")
	formatCmd.Flags().StringP("kog", "k", "", "kog catalog that comes with the KOG database")
	formatCmd.Flags().StringP("stats", "t", "", "optional output file for per-sequence stats (formatted for R)")

	rootCmd.AddCommand(formatCmd)
}
