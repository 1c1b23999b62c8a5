package cogfasta

import (
	"bytes"
	"strings"
	"testing"
)

const fastaFixture = `>AF1241 some trailing free text
MSKRI
AGHML
>b3958
MKTAE
>orphan1
MXXA
`

func Test_Reformat(t *testing.T) {
	anns, err := ParseCatalog(strings.NewReader(whogFixture))
	if err != nil {
		t.Fatalf("ParseCatalog() error = %v", err)
	}

	var out bytes.Buffer
	annotated, total, err := Reformat(strings.NewReader(fastaFixture), &out, nil, anns)
	if err != nil {
		t.Fatalf("Reformat() error = %v", err)
	}

	if annotated != 2 || total != 3 {
		t.Errorf("Reformat() = %d annotated of %d, want 2 of 3", annotated, total)
	}

	want := ">Aful|AF1241___COG0001\t[J]\tGlutamate-1-semialdehyde 2,1-aminomutase\nMSKRIAGHML\n" +
		">Eco|b3958___COG0002\t[H]\tAcetylglutamate semialdehyde dehydrogenase\nMKTAE\n"
	if out.String() != want {
		t.Errorf("Reformat() output = %q, want %q", out.String(), want)
	}
}

func Test_Reformat_stats(t *testing.T) {
	anns, err := ParseCatalog(strings.NewReader(whogFixture))
	if err != nil {
		t.Fatalf("ParseCatalog() error = %v", err)
	}

	var out, stats bytes.Buffer
	if _, _, err := Reformat(strings.NewReader(fastaFixture), &out, &stats, anns); err != nil {
		t.Fatalf("Reformat() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(stats.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("stats has %d lines, want a header and 3 rows:\n%s", len(lines), stats.String())
	}

	header := strings.Split(lines[0], "\t")
	if len(header) != 4+26 {
		t.Fatalf("stats header has %d columns, want 30", len(header))
	}
	if header[0] != "SeqID" || header[3] != "Length" || header[4] != "A" || header[29] != "Z" {
		t.Errorf("stats header = %v", header)
	}

	// the dropped record still gets a row, with NA annotations
	orphan := strings.Split(lines[3], "\t")
	if orphan[0] != "orphan1" || orphan[1] != "NA" || orphan[2] != "NA" || orphan[3] != "4" {
		t.Errorf("orphan row = %v, want orphan1 NA NA 4 ...", orphan[:4])
	}
	// MXXA: one A, one M, two X
	if orphan[4] != "1" {
		t.Errorf("orphan A count = %s, want 1", orphan[4])
	}
	if orphan[4+('M'-'A')] != "1" {
		t.Errorf("orphan M count = %s, want 1", orphan[4+('M'-'A')])
	}
	if orphan[4+('X'-'A')] != "2" {
		t.Errorf("orphan X count = %s, want 2", orphan[4+('X'-'A')])
	}

	first := strings.Split(lines[1], "\t")
	if first[0] != "AF1241" || first[1] != "Aful" || first[2] != "COG0001" || first[3] != "10" {
		t.Errorf("first row = %v, want AF1241 Aful COG0001 10 ...", first[:4])
	}
}

func Test_Reformat_emptyCatalog(t *testing.T) {
	var out bytes.Buffer
	annotated, total, err := Reformat(strings.NewReader(fastaFixture), &out, nil, map[string]Annotation{})
	if err != nil {
		t.Fatalf("Reformat() error = %v", err)
	}

	if annotated != 0 || total != 3 {
		t.Errorf("Reformat() = %d annotated of %d, want 0 of 3", annotated, total)
	}
	if out.Len() != 0 {
		t.Errorf("Reformat() wrote %q for an empty catalog", out.String())
	}
}
