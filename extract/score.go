package extract

import "github.com/fwojciec/pdftext"

// Candidate is a successful outcome and the method that produced it.
type Candidate struct {
	Method  string
	Outcome *pdftext.Outcome
}

// ChooseBest returns the candidate with the most extracted characters.
// Ties go to the earliest candidate, so cheaper backends attempted first win
// over slower ones. It returns false if candidates is empty.
//
// More characters is assumed to mean higher fidelity. A backend that
// duplicates text or mis-decodes glyphs can rank too high.
func ChooseBest(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Outcome.CharacterCount > best.Outcome.CharacterCount {
			best = c
		}
	}
	return best, true
}
