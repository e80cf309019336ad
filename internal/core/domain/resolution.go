package domain

// ResolutionStatus is the terminal outcome of a resolution request.
type ResolutionStatus string

// Terminal outcomes.
const (
	// StatusSuccess means one winning candidate was selected.
	StatusSuccess ResolutionStatus = "success"

	// StatusNoMatch means every contributing adapter came back empty or
	// failed. A normal outcome, not an error.
	StatusNoMatch ResolutionStatus = "no_match"
)

// Resolution is the result of resolving a query: either a winning
// candidate with its rendered report, or no match. Meta aggregates
// diagnostic output from all contributing adapters, not just the
// winning one.
type Resolution struct {
	// Status is the terminal outcome.
	Status ResolutionStatus `json:"status"`

	// Candidate is the winning record. Nil on no-match.
	Candidate *Candidate `json:"candidate,omitempty"`

	// Report is the rendered markdown report for the winner.
	// Empty on no-match; composed only after a winner is selected.
	Report string `json:"report,omitempty"`

	// Meta carries diagnostics from every adapter that ran, keyed
	// "<source>.<key>", plus request-level entries.
	Meta map[string]string `json:"meta,omitempty"`
}

// Matched returns true if a winning candidate was selected.
func (r Resolution) Matched() bool {
	return r.Status == StatusSuccess && r.Candidate != nil
}
