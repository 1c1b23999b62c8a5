package blastgraph

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func Test_passProgress(t *testing.T) {
	data := strings.Repeat("x", 4096)

	var out bytes.Buffer
	pp := newPassProgress("pass 1/2 self scores", strings.NewReader(data), int64(len(data)), &out)

	got, err := io.ReadAll(pp)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	pp.done()

	if string(got) != data {
		t.Errorf("proxied read returned %d bytes, want %d unchanged", len(got), len(data))
	}
	if !strings.Contains(out.String(), "pass 1/2 self scores") {
		t.Errorf("rendered output %q is missing the pass label", out.String())
	}
}

func Test_passProgress_earlyDone(t *testing.T) {
	data := strings.Repeat("x", 4096)

	var out bytes.Buffer
	pp := newPassProgress("pass 2/2 hit metrics", strings.NewReader(data), int64(len(data)), &out)

	// read only part of the input, as a pass that failed mid-file would
	if _, err := pp.Read(make([]byte, 128)); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	pp.done()

	if !strings.Contains(out.String(), "pass 2/2 hit metrics") {
		t.Errorf("rendered output %q is missing the pass label", out.String())
	}
}
