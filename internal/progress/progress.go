// Package progress reports verification progress on stderr, either as a
// bar or as periodic log lines.
package progress

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Bar is a single-bar progress display. The zero Bar (and nil) is a no-op.
type Bar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

// NewBar starts a bar counting to total on w. It returns nil when total is 0.
func NewBar(w io.Writer, name string, total int) *Bar {
	if total <= 0 {
		return nil
	}
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name), C: decor.DindentRight}),
			decor.Name("", decor.WCSyncSpaceR),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
			decor.AverageETA(decor.ET_STYLE_GO),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return &Bar{p: p, bar: bar}
}

// Tick advances the bar by one. Safe for concurrent use.
func (b *Bar) Tick() {
	if b == nil {
		return
	}
	b.bar.Increment()
}

// Wait flushes the bar. A bar that never reached its total is aborted so
// Wait does not block.
func (b *Bar) Wait() {
	if b == nil {
		return
	}
	if !b.bar.Completed() {
		b.bar.Abort(false)
	}
	b.p.Wait()
}

// Logger returns a callback that logs the running found count.
func Logger(log logrus.FieldLogger) func(found uint64) {
	return func(found uint64) {
		log.Infof("found %s unitigs", humanize.Comma(int64(found)))
	}
}
