package blastgraph

import (
	"fmt"
)

// maxLineLen caps how much of an offending input line is echoed in errors.
const maxLineLen = 70

// MalformedRecordError is returned for an input line that looks like a hit
// record but cannot be parsed: too few columns, or a score/length field that
// is not a number. It carries the one-indexed line number and the raw line
// so the offending record can be found in multi-gigabyte inputs.
type MalformedRecordError struct {
	Line   int    // one-indexed line number in the input
	Text   string // the raw line that provoked the error
	Reason string // what was wrong with it
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d: %s: %q", e.Line, e.Reason, firstPart(e.Text))
}

// DegenerateAlignmentError is returned when a length-or-score normalized
// metric would divide by zero: a zero-length sequence for bpr or a zero
// self-alignment score for bsr.
type DegenerateAlignmentError struct {
	Query    string
	Subject  string
	Line     int
	Quantity string // which denominator was degenerate
}

func (e *DegenerateAlignmentError) Error() string {
	return fmt.Sprintf("degenerate alignment %s vs %s at line %d: %s is zero",
		e.Query, e.Subject, e.Line, e.Quantity)
}

// NormalizationError is returned when cross-organism normalization is
// undefined for the graph: either the graph holds no edges at all, or every
// E-value was saturated so no scale factor exists to anchor the synthetic
// E-value floor.
type NormalizationError struct {
	Reason string
}

func (e *NormalizationError) Error() string {
	return "normalization failed: " + e.Reason
}

func firstPart(s string) string {
	if len(s) > maxLineLen {
		return s[:maxLineLen] + "..."
	}
	return s
}
