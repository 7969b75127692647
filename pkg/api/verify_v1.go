// pkg/api/verify_v1.go
package api

// VerifyReportV1 is the stable JSON schema written by unitig-verify -o json.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type VerifyReportV1 struct {
	UnitigFile    string `json:"unitig_file"`
	ReferenceFile string `json:"reference_file"`
	Threads       int    `json:"threads"`

	Unitigs            int  `json:"unitigs"`
	ReferenceSequences int  `json:"reference_sequences"`
	ReferenceBases     int  `json:"reference_bases"`
	Found              int  `json:"found"`
	FoundRevComp       int  `json:"found_revcomp"`
	NotFound           int  `json:"not_found"`
	Complete           bool `json:"complete"`

	LoadSeconds   float64 `json:"load_seconds"`
	BuildSeconds  float64 `json:"build_seconds"`
	VerifySeconds float64 `json:"verify_seconds"`

	Missing []MissingUnitigV1 `json:"missing,omitempty"`
}

// MissingUnitigV1 is one unitig found in neither orientation.
type MissingUnitigV1 struct {
	Index             int    `json:"index"`
	Sequence          string `json:"sequence"`
	ReverseComplement string `json:"reverse_complement"`
}

// VerifySummaryV1 is the last line of unitig-verify -o jsonl output.
// Record is always "summary"; missing-unitig lines carry no record field.
type VerifySummaryV1 struct {
	Record       string `json:"record"`
	Unitigs      int    `json:"unitigs"`
	Found        int    `json:"found"`
	FoundRevComp int    `json:"found_revcomp"`
	NotFound     int    `json:"not_found"`
	Complete     bool   `json:"complete"`
}
