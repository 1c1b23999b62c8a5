package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/sunnycqcn/BlastGraphMetrics/internal/cogfasta"
)

func Test_formatExec(t *testing.T) {
	dir := t.TempDir()

	whog := filepath.Join(dir, "whog")
	catalog := strings.Join([]string{
		"[J] COG0001 Glutamate-1-semialdehyde 2,1-aminomutase",
		"  Aful:  AF1241",
		"_______",
	}, "\n") + "\n"
	if err := os.WriteFile(whog, []byte(catalog), 0644); err != nil {
		t.Fatal(err)
	}

	fasta := filepath.Join(dir, "myva")
	if err := os.WriteFile(fasta, []byte(">AF1241\nMSKRIAGHML\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "myva.cog.fasta")
	formatCmd.Flags().Set("in", fasta)
	formatCmd.Flags().Set("out", out)
	formatCmd.Flags().Set("whog", whog)

	type args struct {
		cmd  *cobra.Command
		args []string
	}
	tests := []struct {
		name string
		args args
	}{
		{
			"end to end test",
			args{
				cmd:  formatCmd,
				args: []string{},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cogfasta.FormatCmd(tt.args.cmd, tt.args.args)

			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("missing output %s: %v", out, err)
			}
			if !strings.HasPrefix(string(data), ">Aful|AF1241___COG0001\t[J]\t") {
				t.Errorf("output FASTA = %q, missing the reformatted header", string(data))
			}
		})
	}
}
