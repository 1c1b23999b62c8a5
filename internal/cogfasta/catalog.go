package cogfasta

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Annotation is the catalog entry for one sequence: the organism it
// belongs to and the group it was assigned, with the group's bracketed
// functional category and free-text description.
type Annotation struct {
	Org  string // organism tag, eg "Aful"
	COG  string // group ID, eg "COG0001"
	Fun  string // functional category, eg "[J]"
	Desc string // description of the group
}

// ParseCatalog reads the "whog" or "kog" catalog that ships with the COG
// and KOG databases and maps every member sequence ID onto its annotation.
//
// A catalog is a series of blocks like
//
//	[J] COG0001 Glutamate-1-semialdehyde 2,1-aminomutase
//	  Aful:  AF1241
//	  Hbsp:  VNG0241G
//	_______
//
// where a bracketed line opens a group and each line under it names an
// organism followed by that organism's member sequences. The kog catalog
// uses the same layout without the underscore separators.
func ParseCatalog(r io.Reader) (map[string]Annotation, error) {
	anns := make(map[string]Annotation)

	var group Annotation
	open := false

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())

		switch {
		case len(fields) == 0 || fields[0] == "_______":
			continue

		case strings.HasPrefix(fields[0], "["):
			if len(fields) < 2 {
				return nil, errors.Errorf("group header without an ID at line %d", line)
			}
			group = Annotation{
				Fun:  fields[0],
				COG:  fields[1],
				Desc: strings.Join(fields[2:], " "),
			}
			open = true

		default:
			if !open {
				return nil, errors.Errorf("membership line before any group header at line %d", line)
			}
			org := strings.TrimRight(fields[0], ":")
			for _, id := range fields[1:] {
				ann := group
				ann.Org = org
				anns[id] = ann
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read catalog")
	}

	return anns, nil
}
