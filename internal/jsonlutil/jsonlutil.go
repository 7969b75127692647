// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
)

// Start runs a JSONL encoder goroutine: every value sent on the returned
// channel becomes one line on out. Close the channel, then receive exactly
// once from the error channel. Errors matching isBroken are reported as nil.
func Start[T any](out io.Writer, bufSize int, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		enc := json.NewEncoder(bw)
		var err error
		for v := range in {
			if err == nil {
				err = enc.Encode(v)
			}
			// keep draining so senders never block on a dead writer
		}
		if err == nil {
			err = bw.Flush()
		}
		if err != nil && isBroken != nil && isBroken(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}
