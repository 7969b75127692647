// Package alphabet models the DNA symbol set used by unitig files and
// reference sequences: A, C, G, T and the ambiguous base N.
//
// Symbols are plain upper-case ASCII bytes. Their byte order
// (A < C < G < N < T) is the total order used for canonical forms, so
// normalized sequences compare with bytes.Compare.
package alphabet

import "fmt"

// Symbols lists the alphabet in comparison order.
const Symbols = "ACGNT"

// Unknown is the ambiguous base every non-ACGT byte normalizes to.
const Unknown byte = 'N'

var (
	normal     [256]byte
	complement [256]byte
)

func init() {
	for i := range normal {
		normal[i] = Unknown
		complement[i] = Unknown
	}
	for _, p := range [][2]byte{{'A', 'T'}, {'C', 'G'}, {'G', 'C'}, {'T', 'A'}} {
		lower := p[0] + ('a' - 'A')
		normal[p[0]], normal[lower] = p[0], p[0]
		complement[p[0]], complement[lower] = p[1], p[1]
	}
}

// Normalize maps b onto the alphabet: acgt fold to upper case, anything
// else becomes N.
func Normalize(b byte) byte { return normal[b] }

// Complement returns the Watson-Crick partner of b (N for anything that is
// not a base).
func Complement(b byte) byte { return complement[b] }

// IsBase reports whether b is one of A, C, G, T (either case).
func IsBase(b byte) bool { return normal[b] != Unknown }

// NormalizeInto appends the normalized form of seq to dst.
func NormalizeInto(dst, seq []byte) []byte {
	for _, b := range seq {
		dst = append(dst, normal[b])
	}
	return dst
}

// NormalizeBytes returns a normalized copy of seq.
func NormalizeBytes(seq []byte) []byte {
	if len(seq) == 0 {
		return nil
	}
	return NormalizeInto(make([]byte, 0, len(seq)), seq)
}

// IsNormalized reports whether seq already consists of alphabet symbols only.
func IsNormalized(seq []byte) bool {
	for _, b := range seq {
		if normal[b] != b {
			return false
		}
	}
	return true
}

// Validate returns an error naming the first byte outside A/C/G/T/N
// (case-insensitive).
func Validate(seq []byte) error {
	for i, b := range seq {
		if normal[b] == Unknown && b != 'N' && b != 'n' {
			return fmt.Errorf("invalid base %q at %d; allowed: A C G T N", b, i+1)
		}
	}
	return nil
}
