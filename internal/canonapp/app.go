// internal/canonapp/app.go
package canonapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"unitig-core/canon"
	"unitig-core/unitig"
	"unitig/internal/cli"
	"unitig/internal/cmdutil"
	"unitig/internal/version"
)

// RunContext prints the canonical form of every unitig, one per line.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewCanonFlagSet()
	opts, err := cli.ParseCanonArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return cmdutil.Finish(outw, stderr, 0)
		}
		fmt.Fprintln(stderr, "error:", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 1
	}
	if opts.Version {
		fmt.Fprintf(outw, "unitig-canon version %s\n", version.Version)
		return cmdutil.Finish(outw, stderr, 0)
	}

	store, err := unitig.Load(opts.UnitigFile)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	if ctx.Err() != nil {
		return 130
	}
	log := cmdutil.NewLogger(stderr, opts.Quiet)
	if err := store.Validate(); err != nil {
		cmdutil.Warnf(log, opts.Quiet, "%s bytes outside ACGTN read as N (%v)", humanize.Comma(int64(store.Replaced())), err)
	}

	flipped := 0
	var out, fwd, rc []byte
	for i := 0; i < store.Len(); i++ {
		seq := store.Get(i)
		if canon.IsCanonical(seq) {
			out = seq
		} else {
			out, fwd, rc = canon.CanonicalInto(fwd, rc, seq)
			flipped++
		}
		outw.Write(out)
		if err := outw.WriteByte('\n'); err != nil {
			break
		}
	}
	code := cmdutil.Finish(outw, stderr, 0)
	if code == 0 {
		log.Infof("reverse-complemented %s of %s unitigs", humanize.Comma(int64(flipped)), humanize.Comma(int64(store.Len())))
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
