package blastgraph

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// passProgress draws a byte-based progress bar over one scan of the input
// file. It proxies Read so it can sit between the file and the HitScanner.
type passProgress struct {
	p   *mpb.Progress
	bar *mpb.Bar
	r   io.ReadCloser
}

// newPassProgress wraps f, which is size bytes long, in a bar labeled name,
// rendered to out.
func newPassProgress(name string, f io.Reader, size int64, out io.Writer) *passProgress {
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(out))
	bar := p.AddBar(size,
		mpb.PrependDecorators(
			decor.Name(name+": ", decor.WC{W: len(name) + 2, C: decor.DindentRight}),
			decor.CountersKibiByte("% .1f / % .1f", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
	)

	return &passProgress{p: p, bar: bar, r: bar.ProxyReader(f)}
}

func (pp *passProgress) Read(b []byte) (int, error) { return pp.r.Read(b) }

// done finishes rendering. Safe to call after a pass ended early on an
// error: the bar is completed at whatever was read.
func (pp *passProgress) done() {
	pp.bar.SetTotal(-1, true)
	pp.p.Wait()
}
