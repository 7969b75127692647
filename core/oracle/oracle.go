// Package oracle answers exact-occurrence queries against a reference
// sequence collection.
//
// The verification engine only sees the Oracle interface; Index is the
// suffix-array backed implementation used by the tools.
package oracle

import (
	"index/suffixarray"

	"unitig-core/alphabet"
	"unitig-core/fasta"
)

// Oracle reports how often pattern occurs in the indexed collection.
// Implementations must be safe for concurrent use once built.
type Oracle interface {
	Count(pattern []byte) int
}

// Container is an optional fast path: it reports whether pattern occurs at
// least once without enumerating every hit.
type Container interface {
	Contains(pattern []byte) bool
}

// Occurs reports whether pattern occurs in o, using Contains when o
// provides it.
func Occurs(o Oracle, pattern []byte) bool {
	if c, ok := o.(Container); ok {
		return c.Contains(pattern)
	}
	return o.Count(pattern) > 0
}

// Separator ends every indexed sequence. Normalized patterns never contain
// it, so no hit can span two sequences.
const Separator byte = '$'

// Index is an immutable suffix array over normalized reference sequences.
type Index struct {
	sa    *suffixarray.Index
	nseqs int
	size  int
}

// Build indexes seqs. Sequences are normalized into a private buffer; the
// inputs are not retained.
func Build(seqs [][]byte) *Index {
	total := 0
	for _, s := range seqs {
		total += len(s) + 1
	}
	data := make([]byte, 0, total)
	for _, s := range seqs {
		data = alphabet.NormalizeInto(data, s)
		data = append(data, Separator)
	}
	return &Index{
		sa:    suffixarray.New(data),
		nseqs: len(seqs),
		size:  len(data) - len(seqs),
	}
}

// BuildRecords indexes the sequences of recs.
func BuildRecords(recs []fasta.Record) *Index { return Build(fasta.Seqs(recs)) }

// Count returns the number of occurrences of pattern, which is matched as
// given (pass normalized sequences). The empty pattern occurs once per
// indexed sequence.
func (x *Index) Count(pattern []byte) int {
	if len(pattern) == 0 {
		return x.nseqs
	}
	return len(x.sa.Lookup(pattern, -1))
}

// Contains reports whether pattern occurs at least once.
func (x *Index) Contains(pattern []byte) bool {
	if len(pattern) == 0 {
		return x.nseqs > 0
	}
	return len(x.sa.Lookup(pattern, 1)) > 0
}

// Sequences returns the number of indexed sequences.
func (x *Index) Sequences() int { return x.nseqs }

// Bases returns the number of indexed symbols, separators excluded.
func (x *Index) Bases() int { return x.size }
