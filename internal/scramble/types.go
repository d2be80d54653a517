// internal/scramble/types.go
//
// Result and rejection types for the word validator.
// Defines:
//   - Outcome: ignored / accepted / rejected.
//   - Reason:  which rule rejected a candidate.
//   - Result:  the value Evaluate hands back to a host.

package scramble

// MinLength is the shortest word that can score.
const MinLength = 3

// Outcome classifies a single evaluation.
type Outcome int

const (
	// Ignored means the candidate was empty after normalization.
	// Hosts show nothing and change nothing.
	Ignored Outcome = iota
	Accepted
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// Reason identifies the rule that rejected a candidate.
// Values are listed in the order the rules are checked.
type Reason int

const (
	NoReason Reason = iota
	AlreadyUsed
	NotConstructible
	NotRecognized
	IsRootWord
	TooShort
)

// String returns the stable wire code for r.
func (r Reason) String() string {
	switch r {
	case AlreadyUsed:
		return "already_used"
	case NotConstructible:
		return "not_constructible"
	case NotRecognized:
		return "not_recognized"
	case IsRootWord:
		return "is_root_word"
	case TooShort:
		return "too_short"
	}
	return ""
}

// Result is what Evaluate reports for one candidate.
type Result struct {
	Outcome Outcome
	Word    string // normalized candidate
	Score   int    // letter count, only set when Accepted
	Reason  Reason // only set when Rejected
}

// Recognizer reports whether a word is in the dictionary.
// Hosts inject it; the validator never looks words up itself.
type Recognizer func(word string) bool
