package verify

// Class is the terminal state of one unitig after verification.
type Class uint8

const (
	Unseen Class = iota
	FoundDirect
	FoundReverseComplement
	NotFound
)

func (c Class) String() string {
	switch c {
	case FoundDirect:
		return "found"
	case FoundReverseComplement:
		return "found_revcomp"
	case NotFound:
		return "not_found"
	default:
		return "unseen"
	}
}

// Result holds the aggregate outcome of one run. It is immutable once
// returned by Engine.Run.
type Result struct {
	Total                    int
	Found                    int // includes FoundByReverseComplement
	FoundByReverseComplement int
	NotFound                 int
	Missing                  []int // unresolved indices, ascending

	classes []Class
}

// Class returns the classification of unitig i.
func (r *Result) Class(i int) Class { return r.classes[i] }

// Complete reports whether every unitig was found in some orientation.
func (r *Result) Complete() bool { return r.NotFound == 0 }
