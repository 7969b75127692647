// internal/verifyapp/app.go
package verifyapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"unitig-core/fasta"
	"unitig-core/oracle"
	"unitig-core/unitig"
	"unitig-core/verify"
	"unitig/internal/cli"
	"unitig/internal/cmdutil"
	"unitig/internal/progress"
	"unitig/internal/report"
	"unitig/internal/version"
	"unitig/pkg/api"
)

// RunContext loads the unitigs and the reference, checks every unitig in
// both orientations, and reports the outcome on stdout.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewVerifyFlagSet()
	opts, err := cli.ParseVerifyArgs(fs, argv)
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
		fmt.Fprintf(outw, "unitig-verify version %s\n", version.Version)
		return cmdutil.Finish(outw, stderr, 0)
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet)

	stop, err := cmdutil.StartProfile(opts.Profile, ".")
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	defer stop()

	threads := opts.Threads
	if threads == 0 {
		threads = runtime.NumCPU()
	}

	t0 := time.Now()
	store, refs, err := load(ctx, opts.UnitigFile, opts.ReferenceFile)
	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return 130
		}
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	if err := store.Validate(); err != nil {
		cmdutil.Warnf(log, opts.Quiet, "%s bytes outside ACGTN read as N (%v)", humanize.Comma(int64(store.Replaced())), err)
	}
	if len(refs) == 0 {
		cmdutil.Warnf(log, opts.Quiet, "no sequences in %s", opts.ReferenceFile)
	}
	var timings report.Timings
	timings.Load = time.Since(t0)
	log.WithFields(logrus.Fields{"unitigs": store.Len(), "references": len(refs)}).Info("loaded inputs")

	t0 = time.Now()
	idx := oracle.BuildRecords(refs)
	timings.Build = time.Since(t0)
	log.WithField("bases", idx.Bases()).Info("built index")

	t0 = time.Now()
	res := run(stderr, log, opts, threads, store, idx)
	timings.Verify = time.Since(t0)
	log.WithFields(logrus.Fields{"found": res.Found, "not_found": res.NotFound}).Info("verified unitigs")

	if opts.Output == "jsonl" {
		var missing []int
		if opts.ListMissing {
			missing = res.Missing
		}
		if err := report.StreamJSONL(outw, missing, store, report.CountsOf(res), cmdutil.IsBrokenPipe); err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return 1
		}
		return cmdutil.Finish(outw, stderr, 0)
	}

	if opts.Output == "json" {
		rep := api.VerifyReportV1{
			UnitigFile:         opts.UnitigFile,
			ReferenceFile:      opts.ReferenceFile,
			Threads:            threads,
			Unitigs:            res.Total,
			ReferenceSequences: idx.Sequences(),
			ReferenceBases:     idx.Bases(),
			Found:              res.Found,
			FoundRevComp:       res.FoundByReverseComplement,
			NotFound:           res.NotFound,
			Complete:           res.Complete(),
			LoadSeconds:        timings.Load.Seconds(),
			BuildSeconds:       timings.Build.Seconds(),
			VerifySeconds:      timings.Verify.Seconds(),
		}
		if opts.ListMissing {
			rep.Missing = report.Missing(res.Missing, store)
		}
		if err := report.WriteJSON(outw, rep); err != nil && !cmdutil.IsBrokenPipe(err) {
			fmt.Fprintln(stderr, "error:", err)
			return 1
		}
		return cmdutil.Finish(outw, stderr, 0)
	}

	err = report.WriteTimings(outw, store.Len(), idx.Sequences(), timings)
	if err == nil {
		err = report.Summarize(outw, report.CountsOf(res))
	}
	if err == nil && opts.ListMissing && !res.Complete() {
		err = report.ListMissing(outw, res.Missing, store)
	}
	if err != nil && !cmdutil.IsBrokenPipe(err) {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return cmdutil.Finish(outw, stderr, 0)
}

// load reads the unitig file and the reference concurrently.
func load(ctx context.Context, unitigPath, refPath string) (*unitig.Store, []fasta.Record, error) {
	var (
		wg             sync.WaitGroup
		store          *unitig.Store
		refs           []fasta.Record
		storeErr, fErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		store, storeErr = unitig.Load(unitigPath)
	}()
	go func() {
		defer wg.Done()
		refs, fErr = fasta.ReadAll(ctx, refPath)
	}()
	wg.Wait()

	if storeErr != nil {
		return nil, nil, storeErr
	}
	if fErr != nil {
		return nil, nil, fErr
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return store, refs, nil
}

func run(stderr io.Writer, log *logrus.Logger, opts cli.VerifyOptions, threads int, store *unitig.Store, idx *oracle.Index) *verify.Result {
	cfg := verify.Config{Workers: threads}
	var bar *progress.Bar
	if opts.Progress && !opts.Quiet {
		bar = progress.NewBar(stderr, "verified unitigs: ", store.Len())
	}
	if bar != nil {
		cfg.Tick = bar.Tick
	} else {
		cfg.ProgressInterval = opts.ProgressInterval
		cfg.Progress = progress.Logger(log)
	}

	res := verify.New(cfg).Run(store, idx)
	bar.Wait()
	return res
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
