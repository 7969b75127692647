package cmdutil

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader of our output went away
// (e.g. `| head`). Tools treat that as success.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
