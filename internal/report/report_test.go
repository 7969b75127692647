package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"unitig-core/unitig"
	"unitig/pkg/api"
)

func TestSummarizeComplete(t *testing.T) {
	var buf bytes.Buffer
	if err := Summarize(&buf, Counts{Total: 1500, Found: 1500, FoundRevComp: 700}); err != nil {
		t.Fatal(err)
	}
	want := "Found 1,500 unitigs (700 by reverse complement), 0 not found, 1,500 total\n" +
		"Found every unitig\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestSummarizeIncomplete(t *testing.T) {
	var buf bytes.Buffer
	_ = Summarize(&buf, Counts{Total: 4, Found: 2, NotFound: 2})
	if !strings.HasSuffix(buf.String(), "2 unitigs were not found\n") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestWriteTimings(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTimings(&buf, 12000, 3, Timings{
		Load:   1500 * time.Millisecond,
		Build:  250 * time.Millisecond,
		Verify: 2 * time.Second,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "Loaded 12,000 unitigs and 3 reference sequences in 1.500 seconds\n" +
		"Built index in 0.250 seconds\n" +
		"Done verifying unitigs in 2.000 seconds!\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s", buf.String())
	}
}

func TestListMissing(t *testing.T) {
	s := unitig.Parse([]byte("ACGT\nGGGAA\nTTTT\nCAN\n"))
	var buf bytes.Buffer
	if err := ListMissing(&buf, []int{1, 3}, s); err != nil {
		t.Fatal(err)
	}
	want := "index\tsequence\treverse_complement\n" +
		"1\tGGGAA\tTTCCC\n" +
		"3\tCAN\tNTG\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	s := unitig.Parse([]byte("ACGT\nGGGAA\n"))
	r := api.VerifyReportV1{
		UnitigFile: "u.txt", Unitigs: 2, Found: 1, NotFound: 1,
		Missing: Missing([]int{1}, s),
	}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, r); err != nil {
		t.Fatal(err)
	}
	var back api.VerifyReportV1
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if len(back.Missing) != 1 || back.Missing[0].ReverseComplement != "TTCCC" {
		t.Fatalf("missing = %+v", back.Missing)
	}
	if !strings.Contains(buf.String(), "\n  \"unitig_file\": \"u.txt\"") {
		t.Fatalf("expected indented output:\n%s", buf.String())
	}
}

func TestMissingEmpty(t *testing.T) {
	if Missing(nil, unitig.Parse(nil)) != nil {
		t.Fatal("no indices should give nil")
	}
}

func TestStreamJSONL(t *testing.T) {
	s := unitig.Parse([]byte("ACGT\nGGGAA\nTTTT\nCAN\n"))
	var buf bytes.Buffer
	c := Counts{Total: 4, Found: 2, NotFound: 2}
	if err := StreamJSONL(&buf, []int{1, 3}, s, c, nil); err != nil {
		t.Fatal(err)
	}
	want := `{"index":1,"sequence":"GGGAA","reverse_complement":"TTCCC"}` + "\n" +
		`{"index":3,"sequence":"CAN","reverse_complement":"NTG"}` + "\n" +
		`{"record":"summary","unitigs":4,"found":2,"found_revcomp":0,"not_found":2,"complete":false}` + "\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s", buf.String())
	}
}

func TestStreamJSONLAllFound(t *testing.T) {
	var buf bytes.Buffer
	c := Counts{Total: 3, Found: 3, FoundRevComp: 1}
	if err := StreamJSONL(&buf, nil, unitig.Parse(nil), c, nil); err != nil {
		t.Fatal(err)
	}
	want := `{"record":"summary","unitigs":3,"found":3,"found_revcomp":1,"not_found":0,"complete":true}` + "\n"
	if buf.String() != want {
		t.Fatalf("got %q", buf.String())
	}
}
