package cogfasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// alphabet is every letter a protein FASTA record can contain, ambiguity
// codes included. The stats table carries one count column per letter.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Reformat streams a FASTA file, rewriting every annotated record's header
// to ">org|oldID___group<TAB>fun<TAB>description" and dropping records the
// catalog does not know. When stats is non-nil, every input record (dropped
// ones included) gets one row there: ID, organism, group, length and a
// count per alphabet letter, with NA standing in for a dropped record's
// organism and group.
func Reformat(fasta io.Reader, out, stats io.Writer, anns map[string]Annotation) (annotated, total int, err error) {
	w := bufio.NewWriter(out)

	var sw *bufio.Writer
	if stats != nil {
		sw = bufio.NewWriter(stats)
		fmt.Fprintf(sw, "SeqID\tOrgID\tCogID\tLength\t%s\n",
			strings.Join(strings.Split(alphabet, ""), "\t"))
	}

	record := func(id, seq string) {
		if id == "" {
			return
		}
		total++

		ann, ok := anns[id]
		if ok {
			annotated++
			fmt.Fprintf(w, ">%s|%s___%s\t%s\t%s\n%s\n", ann.Org, id, ann.COG, ann.Fun, ann.Desc, seq)
		}

		if sw == nil {
			return
		}
		org, cog := ann.Org, ann.COG
		if !ok {
			org, cog = "NA", "NA"
		}
		fmt.Fprintf(sw, "%s\t%s\t%s\t%d", id, org, cog, len(seq))
		for _, x := range alphabet {
			fmt.Fprintf(sw, "\t%d", strings.Count(seq, string(x)))
		}
		fmt.Fprintln(sw)
	}

	var id string
	var seq strings.Builder

	sc := bufio.NewScanner(fasta)
	// reformatted output puts a whole sequence on one line, so reading our
	// own output back needs more than the default 64K line buffer
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, ">") {
			seq.WriteString(line)
			continue
		}

		record(id, seq.String())
		seq.Reset()

		id = ""
		if fields := strings.Fields(line[1:]); len(fields) > 0 {
			id = fields[0]
		}
	}
	if err := sc.Err(); err != nil {
		return 0, 0, errors.Wrap(err, "failed to read FASTA file")
	}
	record(id, seq.String())

	if err := w.Flush(); err != nil {
		return 0, 0, errors.Wrap(err, "failed to write FASTA file")
	}
	if sw != nil {
		if err := sw.Flush(); err != nil {
			return 0, 0, errors.Wrap(err, "failed to write stats file")
		}
	}

	return annotated, total, nil
}
