// Package cmd is for command line interactions with the blastgraph application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "blastgraph",
	Short: `Convert tab-delimited BLAST hit tables into similarity graphs.
Edges are weighted by four metrics, each written raw and normalized across organisms`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
