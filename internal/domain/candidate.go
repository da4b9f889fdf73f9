package domain

// Candidate represents one selectable performer directory: an immediate
// subdirectory of a configured root.
type Candidate struct {
	Name     string // final path segment
	FullPath string // root joined with name
}

// Display returns the string shown to (and matched against) the user:
// either the bare name or the full path, per configuration.
func (c Candidate) Display(fullPath bool) string {
	if fullPath {
		return c.FullPath
	}
	return c.Name
}

// CandidateSet is the ordered collection of candidates assembled from all
// configured roots: root-list order, then filesystem enumeration order.
// Candidates are keyed by full path; same-named entries from different
// roots are kept as distinct members.
type CandidateSet struct {
	candidates []Candidate
	fullPath   bool
}

// NewCandidateSet creates a CandidateSet with the given presentation mode.
// The fullPath flag is fixed for the lifetime of the set and applies
// uniformly to every member.
func NewCandidateSet(candidates []Candidate, fullPath bool) CandidateSet {
	return CandidateSet{candidates: candidates, fullPath: fullPath}
}

// Len returns the number of candidates in the set.
func (s CandidateSet) Len() int {
	return len(s.candidates)
}

// IsEmpty returns true if the set has no candidates.
func (s CandidateSet) IsEmpty() bool {
	return len(s.candidates) == 0
}

// At returns the candidate at position i in enumeration order.
func (s CandidateSet) At(i int) Candidate {
	return s.candidates[i]
}

// FullPath reports whether the set presents candidates as full paths.
func (s CandidateSet) FullPath() bool {
	return s.fullPath
}

// Displays returns the display strings of all candidates, in order.
// This is the only candidate data handed to external callers besides
// the final selection.
func (s CandidateSet) Displays() []string {
	out := make([]string, len(s.candidates))
	for i, c := range s.candidates {
		out[i] = c.Display(s.fullPath)
	}
	return out
}

// Selection is the outcome of a choose operation: either a resolved
// candidate or an explicit "no selection".
type Selection struct {
	Candidate Candidate
	Resolved  bool
}

// NoSelection is the explicit empty outcome, distinguishable from any
// valid candidate.
var NoSelection = Selection{}

// Display returns the selected candidate's display string, or "" when
// nothing was resolved.
func (s Selection) Display(fullPath bool) string {
	if !s.Resolved {
		return ""
	}
	return s.Candidate.Display(fullPath)
}
