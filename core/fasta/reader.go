// Package fasta reads reference sequences for the membership oracle.
package fasta

import (
	"context"
	"fmt"
	"io"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// Record represents a parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// Stream parses path ("-" for stdin; gzip, xz and zstd are detected) and
// calls emit for each record in file order. Each emitted Record owns its
// bytes. Cancellation via ctx is checked between records; return a non-nil
// error from emit to stop early.
func Stream(ctx context.Context, path string, emit func(Record) error) error {
	r, err := fastx.NewReader(seq.Unlimit, path, "")
	if err != nil {
		return fmt.Errorf("open reference: %w", err)
	}
	defer r.Close()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read record %d in %s: %w", i+1, path, err)
		}
		// The reader reuses rec between calls.
		out := Record{
			ID:  string(rec.ID),
			Seq: append([]byte(nil), rec.Seq.Seq...),
		}
		if err := emit(out); err != nil {
			return err
		}
	}
}

// ReadAll collects every record of path in file order.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var recs []Record
	err := Stream(ctx, path, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// Seqs returns the sequences of recs in order.
func Seqs(recs []Record) [][]byte {
	out := make([][]byte, len(recs))
	for i, r := range recs {
		out[i] = r.Seq
	}
	return out
}
