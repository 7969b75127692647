// Package canon computes reverse complements and canonical forms of DNA
// sequences.
package canon

import (
	"bytes"

	"unitig-core/alphabet"
)

// ReverseComplement returns the reverse complement of seq. Bytes outside
// the alphabet complement to N.
func ReverseComplement(seq []byte) []byte {
	if len(seq) == 0 {
		return nil
	}
	return ReverseComplementInto(make([]byte, len(seq)), seq)
}

// ReverseComplementInto writes the reverse complement of seq into dst,
// growing it if needed, and returns the filled slice.
func ReverseComplementInto(dst, seq []byte) []byte {
	n := len(seq)
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i := 0; i < n; i++ {
		dst[i] = alphabet.Complement(seq[n-1-i])
	}
	return dst
}

// Canonical returns the lexicographically smaller of seq and its reverse
// complement, both taken in normalized form. The result is a new slice.
func Canonical(seq []byte) []byte {
	if len(seq) == 0 {
		return nil
	}
	fwd := alphabet.NormalizeBytes(seq)
	rc := ReverseComplement(seq)
	if bytes.Compare(fwd, rc) <= 0 {
		return fwd
	}
	return rc
}

// CanonicalInto is Canonical with caller-owned buffers; fwd and rc are
// reused and the returned slice aliases one of them.
func CanonicalInto(fwd, rc, seq []byte) (out, fwdBuf, rcBuf []byte) {
	fwd = alphabet.NormalizeInto(fwd[:0], seq)
	rc = ReverseComplementInto(rc, seq)
	if bytes.Compare(fwd, rc) <= 0 {
		return fwd, fwd, rc
	}
	return rc, fwd, rc
}

// IsCanonical reports whether seq is already in canonical form.
func IsCanonical(seq []byte) bool {
	if !alphabet.IsNormalized(seq) {
		return false
	}
	n := len(seq)
	for i := 0; i < n; i++ {
		c := alphabet.Complement(seq[n-1-i])
		if seq[i] != c {
			return seq[i] < c
		}
	}
	return true
}
