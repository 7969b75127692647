package cli

import (
	"flag"
	"fmt"
	"io"

	"unitig/internal/version"
)

// NewFlagSet returns a ContinueOnError FlagSet whose Usage prints the tool
// header, the synopsis, and the sections written by body.
func NewFlagSet(name, summary, synopsis string, body func(out io.Writer, def func(string) string)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}
		fmt.Fprintf(out, "%s - %s\n\n", name, summary)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s %s\n", name, synopsis)
		if body != nil {
			body(out, def)
		}
		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -v, --version                Print version and exit")
		fmt.Fprintln(out, "  -h, --help                   Show this help and exit")
	}
	return fs
}
