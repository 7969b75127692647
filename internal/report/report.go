// Package report renders verification outcomes for humans (text) and
// machines (api.VerifyReportV1 JSON).
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"unitig-core/canon"
	"unitig-core/verify"
	"unitig/internal/jsonlutil"
	"unitig/internal/jsonutil"
	"unitig/pkg/api"
)

// Counts are the aggregate outcomes of one run.
type Counts struct {
	Total        int
	Found        int // includes FoundRevComp
	FoundRevComp int
	NotFound     int
}

// CountsOf extracts Counts from an engine result.
func CountsOf(r *verify.Result) Counts {
	return Counts{
		Total:        r.Total,
		Found:        r.Found,
		FoundRevComp: r.FoundByReverseComplement,
		NotFound:     r.NotFound,
	}
}

// Timings are the wall-clock durations of the three phases.
type Timings struct {
	Load   time.Duration
	Build  time.Duration
	Verify time.Duration
}

// Summarize writes the counts and the overall verdict.
func Summarize(w io.Writer, c Counts) error {
	_, err := fmt.Fprintf(w,
		"Found %s unitigs (%s by reverse complement), %s not found, %s total\n",
		humanize.Comma(int64(c.Found)), humanize.Comma(int64(c.FoundRevComp)),
		humanize.Comma(int64(c.NotFound)), humanize.Comma(int64(c.Total)))
	if err != nil {
		return err
	}
	if c.NotFound == 0 {
		_, err = fmt.Fprintln(w, "Found every unitig")
	} else {
		_, err = fmt.Fprintf(w, "%s unitigs were not found\n", humanize.Comma(int64(c.NotFound)))
	}
	return err
}

// WriteTimings writes one line per phase.
func WriteTimings(w io.Writer, unitigs, refs int, t Timings) error {
	if _, err := fmt.Fprintf(w, "Loaded %s unitigs and %s reference sequences in %.3f seconds\n",
		humanize.Comma(int64(unitigs)), humanize.Comma(int64(refs)), t.Load.Seconds()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Built index in %.3f seconds\n", t.Build.Seconds()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Done verifying unitigs in %.3f seconds!\n", t.Verify.Seconds())
	return err
}

// ListMissing writes each unresolved unitig in both orientations as TSV.
func ListMissing(w io.Writer, indices []int, src verify.Source) error {
	if _, err := io.WriteString(w, "index\tsequence\treverse_complement\n"); err != nil {
		return err
	}
	var rc []byte
	for _, i := range indices {
		seq := src.Get(i)
		rc = canon.ReverseComplementInto(rc, seq)
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", i, seq, rc); err != nil {
			return err
		}
	}
	return nil
}

// Missing converts unresolved indices to their JSON form.
func Missing(indices []int, src verify.Source) []api.MissingUnitigV1 {
	if len(indices) == 0 {
		return nil
	}
	out := make([]api.MissingUnitigV1, len(indices))
	for k, i := range indices {
		seq := src.Get(i)
		out[k] = api.MissingUnitigV1{
			Index:             i,
			Sequence:          string(seq),
			ReverseComplement: string(canon.ReverseComplement(seq)),
		}
	}
	return out
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r api.VerifyReportV1) error {
	return jsonutil.EncodePretty(w, r)
}

// Summary converts c to the closing JSONL record.
func Summary(c Counts) api.VerifySummaryV1 {
	return api.VerifySummaryV1{
		Record:       "summary",
		Unitigs:      c.Total,
		Found:        c.Found,
		FoundRevComp: c.FoundRevComp,
		NotFound:     c.NotFound,
		Complete:     c.NotFound == 0,
	}
}

// StreamJSONL writes one api.MissingUnitigV1 per line, then the summary
// record for c. Broken pipes are not errors.
func StreamJSONL(w io.Writer, indices []int, src verify.Source, c Counts, isBroken func(error) bool) error {
	in, done := jsonlutil.Start[any](w, 256, isBroken)
	for _, i := range indices {
		seq := src.Get(i)
		in <- api.MissingUnitigV1{
			Index:             i,
			Sequence:          string(seq),
			ReverseComplement: string(canon.ReverseComplement(seq)),
		}
	}
	in <- Summary(c)
	close(in)
	return <-done
}
