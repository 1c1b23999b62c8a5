// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Default one-indexed column positions for a tab-delimited BLAST file that
// ends with: E-value, bit score, query length, subject length. These match
// "-outfmt '6 std qlen slen'".
const (
	DefaultEValueCol     = 11
	DefaultBitScoreCol   = 12
	DefaultQueryLenCol   = 13
	DefaultSubjectLenCol = 14

	// DefaultIDChar separates an organism tag from the rest of a sequence
	// header, eg "Ecoli|b0001".
	DefaultIDChar = "|"
)

// Config is the root-level settings struct and is a mix of settings
// available from the command line and their defaults.
type Config struct {
	// the character separating the organism ID from the rest of the sequence header
	IDChar string `mapstructure:"idchar"`

	// one-indexed column containing pairwise E-values
	EValueCol int `mapstructure:"evcol"`

	// one-indexed column containing pairwise bit scores
	BitScoreCol int `mapstructure:"bscol"`

	// one-indexed column containing query sequence lengths
	QueryLenCol int `mapstructure:"qlcol"`

	// one-indexed column containing subject sequence lengths
	SubjectLenCol int `mapstructure:"slcol"`

	// whether to log progress and per-organism averages
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Config struct populated by Viper settings
// (command line arguments and/or the defaults above).
func New() *Config {
	viper.SetDefault("idchar", DefaultIDChar)
	viper.SetDefault("evcol", DefaultEValueCol)
	viper.SetDefault("bscol", DefaultBitScoreCol)
	viper.SetDefault("qlcol", DefaultQueryLenCol)
	viper.SetDefault("slcol", DefaultSubjectLenCol)

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}

// Validate checks that the settings describe a readable BLAST table.
// The query and subject ID columns are fixed at 1 and 2; the four numeric
// columns are user configurable but must be positive (they are one-indexed).
func (c *Config) Validate() error {
	if c.IDChar == "" {
		return fmt.Errorf("idchar cannot be empty")
	}

	cols := map[string]int{
		"evcol": c.EValueCol,
		"bscol": c.BitScoreCol,
		"qlcol": c.QueryLenCol,
		"slcol": c.SubjectLenCol,
	}
	for flag, col := range cols {
		if col < 1 {
			return fmt.Errorf("%s must be a positive one-indexed column, got %d", flag, col)
		}
	}

	return nil
}
