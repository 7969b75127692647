package unitig

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func checkInvariants(t *testing.T, s *Store) {
	t.Helper()
	off := s.Offsets()
	if len(off) != s.Len()+1 {
		t.Fatalf("offsets length %d, want %d", len(off), s.Len()+1)
	}
	if off[0] != 0 {
		t.Fatalf("offsets[0] = %d, want 0", off[0])
	}
	for i := 1; i < len(off); i++ {
		if off[i] <= off[i-1] {
			t.Fatalf("offsets not strictly increasing at %d: %v", i, off)
		}
	}
	if off[len(off)-1] != s.Size() {
		t.Fatalf("offsets[last] = %d, want buffer size %d", off[len(off)-1], s.Size())
	}
	content := 0
	for i := 0; i < s.Len(); i++ {
		content += len(s.Get(i))
	}
	if s.Size() != content+s.Len() {
		t.Fatalf("buffer size %d, want content %d + lines %d", s.Size(), content, s.Len())
	}
}

func lines(s *Store) []string {
	out := make([]string, s.Len())
	for i := range out {
		out[i] = string(s.Get(i))
	}
	return out
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"terminated", "ACGT\nTTTT\n", []string{"ACGT", "TTTT"}},
		{"unterminated last line", "ACGT\nTTTT", []string{"ACGT", "TTTT"}},
		{"blank interior line", "AC\n\nGT\n", []string{"AC", "", "GT"}},
		{"only newline", "\n", []string{""}},
		{"crlf", "ACGT\r\nTT\r\n", []string{"ACGT", "TT"}},
		{"crlf unterminated", "ACGT\r\nTT\r", []string{"ACGT", "TT"}},
		{"normalizes", "acgt\nAXRn\n", []string{"ACGT", "ANNN"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Parse([]byte(tc.in))
			checkInvariants(t, s)
			got := lines(s)
			if strings.Join(got, "|") != strings.Join(tc.want, "|") || len(got) != len(tc.want) {
				t.Fatalf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestLineCountMatchesFile(t *testing.T) {
	var b strings.Builder
	const k = 1000
	for i := 0; i < k; i++ {
		b.WriteString(strings.Repeat("ACGT", 1+i%7))
		b.WriteByte('\n')
	}
	s := Parse([]byte(b.String()))
	if s.Len() != k {
		t.Fatalf("Len() = %d, want %d", s.Len(), k)
	}
	checkInvariants(t, s)
}

func TestGetIsClipped(t *testing.T) {
	s := Parse([]byte("AC\nGT\n"))
	first := s.Get(0)
	if cap(first) != len(first) {
		t.Fatalf("cap %d != len %d", cap(first), len(first))
	}
	_ = append(first, 'X')
	if got := string(s.Get(1)); got != "GT" {
		t.Fatalf("append through Get clobbered next unitig: %q", got)
	}
	if s.chars[s.Offsets()[1]-1] != Terminator {
		t.Fatal("terminator overwritten")
	}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return fn
}

func TestLoadPlain(t *testing.T) {
	fn := writeFile(t, "u.txt", []byte("ACGT\nTTTT\n"))
	s, err := Load(fn)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Len() != 2 || string(s.Get(1)) != "TTTT" {
		t.Fatalf("unexpected store: %q", lines(s))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadGzip(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write([]byte("AACG\nCGTT\n")); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	// No .gz suffix: detection must use the magic number.
	fn := writeFile(t, "u.txt", buf.Bytes())
	s, err := Load(fn)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := lines(s); len(got) != 2 || got[0] != "AACG" || got[1] != "CGTT" {
		t.Fatalf("gzip parse failed: %q", got)
	}
}

func TestLoadZstd(t *testing.T) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd: %v", err)
	}
	data := enc.EncodeAll([]byte("ACGT\nGGG"), nil)
	_ = enc.Close()

	fn := writeFile(t, "u.txt.zst", data)
	s, err := Load(fn)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := lines(s); len(got) != 2 || got[1] != "GGG" {
		t.Fatalf("zstd parse failed: %q", got)
	}
}

func TestParseReportsInvalidBytes(t *testing.T) {
	s := Parse([]byte("ACGT\nnnAC\r\nAXRT\nG-\n"))
	if got := lines(s); strings.Join(got, ",") != "ACGT,NNAC,ANNT,GN" {
		t.Fatalf("lines = %v", got)
	}
	if s.Replaced() != 3 {
		t.Fatalf("Replaced() = %d, want 3", s.Replaced())
	}
	err := s.Validate()
	if err == nil || err.Error() != `unitig 2: invalid base 'X' at 2; allowed: A C G T N` {
		t.Fatalf("Validate() = %v", err)
	}
	checkInvariants(t, s)
}

func TestParseCleanInputValidates(t *testing.T) {
	s := Parse([]byte("acgtN\r\nTTTT"))
	if s.Replaced() != 0 || s.Validate() != nil {
		t.Fatalf("Replaced=%d Validate=%v", s.Replaced(), s.Validate())
	}
}
