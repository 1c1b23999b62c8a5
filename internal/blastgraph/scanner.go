package blastgraph

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sunnycqcn/BlastGraphMetrics/config"
)

// Hit is one parsed alignment record from a tab-delimited BLAST file.
type Hit struct {
	Line int // one-indexed line number in the input

	Query      string
	Subject    string
	EValue     *big.Float
	BitScore   float64
	QueryLen   float64
	SubjectLen float64
}

// SelfHit reports whether the record aligns a sequence against itself.
func (h *Hit) SelfHit() bool { return h.Query == h.Subject }

// HitScanner reads whitespace-delimited BLAST hit records one at a time,
// skipping blank lines and comment lines starting with "#". Column
// positions come from the config, where they are one-indexed.
type HitScanner struct {
	sc   *bufio.Scanner
	line int
	hit  Hit
	err  error

	// zero-indexed numeric columns and the column count they imply
	evCol, bsCol, qlCol, slCol int
	minFields                  int
}

// NewHitScanner returns a scanner over r using the column layout in conf.
// conf should have passed Validate.
func NewHitScanner(r io.Reader, conf *config.Config) *HitScanner {
	sc := bufio.NewScanner(r)
	// tables made with qseq/sseq output columns put whole aligned sequences
	// on one line, far past the default 64K token limit
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	s := &HitScanner{
		sc:    sc,
		evCol: conf.EValueCol - 1,
		bsCol: conf.BitScoreCol - 1,
		qlCol: conf.QueryLenCol - 1,
		slCol: conf.SubjectLenCol - 1,
	}

	s.minFields = 2 // query and subject IDs are always the first two
	for _, c := range []int{s.evCol, s.bsCol, s.qlCol, s.slCol} {
		if c+1 > s.minFields {
			s.minFields = c + 1
		}
	}

	return s
}

// Scan advances to the next hit record. It returns false at the end of the
// input or on the first malformed record; Err tells the two apart.
func (s *HitScanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for s.sc.Scan() {
		s.line++

		raw := s.sc.Text()
		fields := strings.Fields(raw)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		hit, err := s.parse(raw, fields)
		if err != nil {
			s.err = err
			return false
		}
		s.hit = hit
		return true
	}

	if err := s.sc.Err(); err != nil {
		s.err = errors.Wrapf(err, "failed reading a hit record after line %d", s.line)
	}
	return false
}

// Hit returns the record parsed by the last successful Scan.
func (s *HitScanner) Hit() Hit { return s.hit }

// Err returns the first error hit while scanning, nil after a clean EOF.
func (s *HitScanner) Err() error { return s.err }

// parse converts one non-comment line into a Hit. Every numeric column is
// validated here so a malformed record fails the run on the first pass,
// before any output is written.
func (s *HitScanner) parse(raw string, fields []string) (Hit, error) {
	if len(fields) < s.minFields {
		return Hit{}, &MalformedRecordError{
			Line:   s.line,
			Text:   raw,
			Reason: fmt.Sprintf("want at least %d columns, got %d", s.minFields, len(fields)),
		}
	}

	h := Hit{
		Line:    s.line,
		Query:   fields[0],
		Subject: fields[1],
	}

	var err error
	if h.EValue, err = parseEValue(fields[s.evCol]); err != nil {
		return Hit{}, &MalformedRecordError{Line: s.line, Text: raw, Reason: err.Error()}
	}
	if h.BitScore, err = strconv.ParseFloat(fields[s.bsCol], 64); err != nil {
		return Hit{}, &MalformedRecordError{
			Line:   s.line,
			Text:   raw,
			Reason: fmt.Sprintf("bad bit score %q", fields[s.bsCol]),
		}
	}
	if h.QueryLen, err = strconv.ParseFloat(fields[s.qlCol], 64); err != nil {
		return Hit{}, &MalformedRecordError{
			Line:   s.line,
			Text:   raw,
			Reason: fmt.Sprintf("bad query length %q", fields[s.qlCol]),
		}
	}
	if h.SubjectLen, err = strconv.ParseFloat(fields[s.slCol], 64); err != nil {
		return Hit{}, &MalformedRecordError{
			Line:   s.line,
			Text:   raw,
			Reason: fmt.Sprintf("bad subject length %q", fields[s.slCol]),
		}
	}

	return h, nil
}
