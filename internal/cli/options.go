// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"unitig-core/verify"
	"unitig/internal/cliutil"
	"unitig/internal/cmdutil"
)

// ErrUsage marks argument errors; the caller prints usage and exits 1.
var ErrUsage = errors.New("usage")

// CanonOptions configures unitig-canon.
type CanonOptions struct {
	UnitigFile string
	Quiet      bool
	Version    bool
}

// VerifyOptions configures unitig-verify.
type VerifyOptions struct {
	UnitigFile    string
	ReferenceFile string

	// Performance
	Threads          int
	ProgressInterval uint64
	Progress         bool

	// Output
	Output      string // text|json|jsonl
	ListMissing bool

	// Misc
	Profile string
	Quiet   bool
	Version bool
}

// NewCanonFlagSet returns the FlagSet for unitig-canon.
func NewCanonFlagSet() *flag.FlagSet {
	return NewFlagSet("unitig-canon",
		"print the canonical form of every unitig",
		"[options] <unitig_file>",
		func(out io.Writer, def func(string) string) {
			fmt.Fprintln(out, "\nEach line of <unitig_file> (plain, gzip or zstd; '-' for STDIN) is")
			fmt.Fprintln(out, "replaced by the smaller of itself and its reverse complement.")
			fmt.Fprintln(out, "\nDiagnostics:")
			fmt.Fprintf(out, "  -q, --quiet                  Only log errors [%s]\n", def("quiet"))
		})
}

// NewVerifyFlagSet returns the FlagSet for unitig-verify.
func NewVerifyFlagSet() *flag.FlagSet {
	return NewFlagSet("unitig-verify",
		"check that every unitig occurs in a reference, in either orientation",
		"[options] <unitig_file> <reference_fasta>",
		func(out io.Writer, def func(string) string) {
			fmt.Fprintln(out, "\nPerformance:")
			fmt.Fprintf(out, "  -t, --threads int            Worker goroutines (0=all CPUs) [%s]\n", def("threads"))
			fmt.Fprintf(out, "      --progress-interval int  Log every N found unitigs (0=off) [%s]\n", def("progress-interval"))
			fmt.Fprintf(out, "      --progress               Progress bar on STDERR [%s]\n", def("progress"))
			fmt.Fprintln(out, "\nOutput:")
			fmt.Fprintf(out, "  -o, --output string          Output: text | json | jsonl [%s]\n", def("output"))
			fmt.Fprintf(out, "      --list-missing           List unresolved unitigs in both orientations [%s]\n", def("list-missing"))
			fmt.Fprintln(out, "\nDiagnostics:")
			fmt.Fprintln(out, "      --profile string         Write a cpu | mem | block profile to the working directory")
			fmt.Fprintf(out, "  -q, --quiet                  Only log errors [%s]\n", def("quiet"))
		})
}

func registerMisc(fs *flag.FlagSet, ver *bool, help *bool) {
	fs.BoolVar(ver, "v", false, "print version and exit")
	fs.BoolVar(ver, "version", false, "print version and exit")
	fs.BoolVar(help, "h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")
}

// parse splits flags from positionals, parses, and handles -h.
func parse(fs *flag.FlagSet, argv []string, help *bool) ([]string, error) {
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if *help {
		return nil, flag.ErrHelp
	}
	return append(posArgs, fs.Args()...), nil
}

// ParseCanonArgs registers and parses unitig-canon flags.
func ParseCanonArgs(fs *flag.FlagSet, argv []string) (CanonOptions, error) {
	var opt CanonOptions
	var help bool
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log errors")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	registerMisc(fs, &opt.Version, &help)

	pos, err := parse(fs, argv, &help)
	if err != nil || opt.Version {
		return opt, err
	}
	if len(pos) != 1 {
		return opt, fmt.Errorf("%w: expected <unitig_file>, got %d argument(s)", ErrUsage, len(pos))
	}
	opt.UnitigFile = pos[0]
	return opt, nil
}

// ParseVerifyArgs registers and parses unitig-verify flags.
func ParseVerifyArgs(fs *flag.FlagSet, argv []string) (VerifyOptions, error) {
	var opt VerifyOptions
	var help bool

	fs.IntVar(&opt.Threads, "threads", verify.DefaultWorkers, "worker goroutines (0 = all CPUs)")
	fs.IntVar(&opt.Threads, "t", verify.DefaultWorkers, "alias of --threads")
	fs.Uint64Var(&opt.ProgressInterval, "progress-interval", verify.DefaultProgressInterval, "log every N found unitigs (0 = off)")
	fs.BoolVar(&opt.Progress, "progress", false, "progress bar on stderr")

	fs.StringVar(&opt.Output, "output", "text", "output: text | json | jsonl")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&opt.ListMissing, "list-missing", true, "list unresolved unitigs in both orientations")

	fs.StringVar(&opt.Profile, "profile", "", "write a cpu | mem | block profile")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log errors")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	registerMisc(fs, &opt.Version, &help)

	pos, err := parse(fs, argv, &help)
	if err != nil || opt.Version {
		return opt, err
	}
	if len(pos) != 2 {
		return opt, fmt.Errorf("%w: expected <unitig_file> <reference_fasta>, got %d argument(s)", ErrUsage, len(pos))
	}
	opt.UnitigFile, opt.ReferenceFile = pos[0], pos[1]

	if opt.Threads < 0 {
		return opt, fmt.Errorf("%w: --threads must be ≥ 0", ErrUsage)
	}
	switch opt.Output {
	case "text", "json", "jsonl":
	default:
		return opt, fmt.Errorf("%w: invalid --output %q", ErrUsage, opt.Output)
	}
	if err := cmdutil.ValidateProfile(opt.Profile); err != nil {
		return opt, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return opt, nil
}
