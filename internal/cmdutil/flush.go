package cmdutil

import (
	"bufio"
	"fmt"
	"io"
)

// Finish flushes w and returns code, mapping a broken pipe to 0 and any
// other write error to 1.
func Finish(w *bufio.Writer, stderr io.Writer, code int) int {
	if err := w.Flush(); IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return code
}
