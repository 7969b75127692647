// Package unitig holds a newline-delimited unitig file in one contiguous
// buffer with an offsets table for O(1) access to each line.
//
// Lines are normalized while they are copied (acgt fold to upper case,
// anything else becomes N). EOF acts as an implicit line terminator, and a
// carriage return right before a line break is dropped.
package unitig

import (
	"bytes"
	"fmt"
	"io"

	"unitig-core/alphabet"
)

// Terminator replaces each line separator inside the buffer.
const Terminator byte = 0

// Store is an immutable collection of unitigs. It is safe for concurrent
// readers.
type Store struct {
	chars   []byte
	offsets []int

	replaced int   // bytes outside ACGTN read as N
	firstBad error // first such byte, with its line
}

// Load reads the unitig file at path ("-" for stdin; gzip and zstd are
// detected) into a Store.
func Load(path string) (*Store, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, fmt.Errorf("open unitigs: %w", err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read unitigs %s: %w", path, err)
	}
	return Parse(raw), nil
}

// Parse builds a Store from raw file contents. raw is not retained.
func Parse(raw []byte) *Store {
	lines, content := scan(raw)

	s := &Store{
		chars:   make([]byte, 0, content+lines),
		offsets: make([]int, 1, lines+1),
	}
	open := false
	start := 0
	for i, b := range raw {
		switch {
		case b == '\n':
			s.closeLine()
			open = false
			start = i + 1
		case dropCR(raw, i):
		default:
			if !alphabet.IsBase(b) && b != 'N' && b != 'n' {
				s.noteInvalid(raw[start:], b)
			}
			s.chars = append(s.chars, alphabet.Normalize(b))
			open = true
		}
	}
	if open {
		s.closeLine()
	}
	return s
}

// noteInvalid counts one byte outside ACGTN; line holds the raw bytes from
// the start of the current line.
func (s *Store) noteInvalid(line []byte, b byte) {
	s.replaced++
	if s.firstBad != nil {
		return
	}
	if end := bytes.IndexByte(line, '\n'); end >= 0 {
		line = line[:end]
	}
	s.firstBad = fmt.Errorf("unitig %d: %w", s.Len(), alphabet.Validate(line))
}

// scan counts logical lines and the content bytes they hold.
func scan(raw []byte) (lines, content int) {
	open := false
	for i, b := range raw {
		switch {
		case b == '\n':
			lines++
			open = false
		case dropCR(raw, i):
		default:
			content++
			open = true
		}
	}
	if open {
		lines++
	}
	return lines, content
}

func dropCR(raw []byte, i int) bool {
	return raw[i] == '\r' && (i+1 == len(raw) || raw[i+1] == '\n')
}

func (s *Store) closeLine() {
	s.chars = append(s.chars, Terminator)
	s.offsets = append(s.offsets, len(s.chars))
}

// Len returns the number of unitigs.
func (s *Store) Len() int { return len(s.offsets) - 1 }

// Get returns unitig i without copying. The slice is valid for the store's
// lifetime and must not be modified; its capacity is clipped to the unitig.
func (s *Store) Get(i int) []byte {
	start, end := s.offsets[i], s.offsets[i+1]-1
	return s.chars[start:end:end]
}

// Offsets exposes the offsets table (Len()+1 entries). Do not modify.
func (s *Store) Offsets() []int { return s.offsets }

// Replaced returns how many bytes outside A/C/G/T/N (either case) were
// read as N.
func (s *Store) Replaced() int { return s.replaced }

// Validate returns nil if every byte was in A/C/G/T/N, otherwise an error
// naming the first offending unitig and position.
func (s *Store) Validate() error { return s.firstBad }

// Size returns the buffer length: content bytes plus one terminator per
// unitig.
func (s *Store) Size() int { return len(s.chars) }
