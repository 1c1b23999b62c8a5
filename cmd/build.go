package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sunnycqcn/BlastGraphMetrics/config"
	"github.com/sunnycqcn/BlastGraphMetrics/internal/blastgraph"
)

// buildCmd is for converting a BLAST hit table into weighted graph files
var buildCmd = &cobra.Command{
	Use:                        "build",
	Short:                      "Build raw and normalized metric graphs from a BLAST hit table",
	Run:                        blastgraph.BuildCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Scan a tab-delimited BLASTP or BLASTN file twice, once for self-alignment
scores and once for cross-alignment metrics, and write the result as
MCL-compatible abc graph files.

Every non-self hit becomes one edge weighted by four metrics: evl
(-log10 of the E-value), bit (the bit score), bpr (bit score per residue
of the shorter sequence) and bsr (bit score over the smaller of the two
self-alignment scores). Each metric is written twice: raw, and rescaled
so every organism pair's average matches the global average (organisms
differ in composition and database size, which would otherwise make
their scores incomparable).

The query and subject IDs must be in the first two columns. Include
self-alignments in the input; edges between sequences without one get
no bpr or bsr.`,
}

// set flags
func init() {
	buildCmd.Flags().StringP("in", "i", "", "input tab-delimited BLAST file (comment lines are okay)")
	buildCmd.Flags().StringP("out", "o", "", "prefix for the eight output abc files")
	buildCmd.Flags().IntP("evcol", "e", config.DefaultEValueCol, "one-indexed column holding E-values")
	buildCmd.Flags().IntP("bscol", "b", config.DefaultBitScoreCol, "one-indexed column holding bit scores")
	buildCmd.Flags().IntP("qlcol", "q", config.DefaultQueryLenCol, "one-indexed column holding query lengths")
	buildCmd.Flags().IntP("slcol", "s", config.DefaultSubjectLenCol, "one-indexed column holding subject lengths")
	buildCmd.Flags().StringP("idchar", "c", config.DefaultIDChar, "character separating the organism tag from the rest of a sequence ID")
	buildCmd.Flags().BoolP("verbose", "v", false, "log progress and per-organism-pair averages")

	viper.BindPFlag("evcol", buildCmd.Flags().Lookup("evcol"))
	viper.BindPFlag("bscol", buildCmd.Flags().Lookup("bscol"))
	viper.BindPFlag("qlcol", buildCmd.Flags().Lookup("qlcol"))
	viper.BindPFlag("slcol", buildCmd.Flags().Lookup("slcol"))
	viper.BindPFlag("idchar", buildCmd.Flags().Lookup("idchar"))
	viper.BindPFlag("verbose", buildCmd.Flags().Lookup("verbose"))

	rootCmd.AddCommand(buildCmd)
}
