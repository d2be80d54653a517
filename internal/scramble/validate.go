// internal/scramble/validate.go
//
// Word validation and scoring for a single candidate.
// Rules run in a fixed order and the first failure wins:
//   1. empty        → Ignored (no rejection)
//   2. originality  → AlreadyUsed
//   3. feasibility  → NotConstructible
//   4. recognition  → NotRecognized
//   5. triviality   → IsRootWord
//   6. length       → TooShort
//
// Evaluate never mutates its inputs. Appending the word and adding the score
// is the caller's job (see internal/game).

package scramble

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize trims surrounding whitespace, lowercases, and composes s to NFC
// so that every rule counts the same letters.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// Casers carry state; build one per call.
	return norm.NFC.String(cases.Lower(language.Und).String(s))
}

// Evaluate checks candidate against root and the words already used.
func Evaluate(root string, used []string, candidate string, recognize Recognizer) Result {
	word := Normalize(candidate)
	if word == "" {
		return Result{Outcome: Ignored}
	}
	root = Normalize(root)

	switch {
	case !isOriginal(word, used):
		return reject(word, AlreadyUsed)
	case !Constructible(root, word):
		return reject(word, NotConstructible)
	case recognize == nil || !recognize(word):
		return reject(word, NotRecognized)
	case word == root:
		return reject(word, IsRootWord)
	}

	n := utf8.RuneCountInString(word)
	if n < MinLength {
		return reject(word, TooShort)
	}
	return Result{Outcome: Accepted, Word: word, Score: n}
}

func reject(word string, r Reason) Result {
	return Result{Outcome: Rejected, Word: word, Reason: r}
}

// isOriginal reports whether word is absent from used, ignoring case.
func isOriginal(word string, used []string) bool {
	return !lo.ContainsBy(used, func(u string) bool {
		return strings.EqualFold(u, word)
	})
}

// Constructible reports whether every letter of word can be matched to a
// distinct letter of root. Each root letter is consumed at most once.
func Constructible(root, word string) bool {
	pool := []rune(root)
	for _, r := range word {
		i := lo.IndexOf(pool, r)
		if i < 0 {
			return false
		}
		pool = append(pool[:i], pool[i+1:]...)
	}
	return true
}
