package scramble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dict builds a Recognizer over a fixed word set.
func dict(words ...string) Recognizer {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return func(w string) bool { return set[w] }
}

func allWords(string) bool { return true }

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name      string
		root      string
		used      []string
		candidate string
		recognize Recognizer
		want      Result
	}{
		{
			name:      "anagram of the root is accepted",
			root:      "listen",
			candidate: "silent",
			recognize: dict("silent"),
			want:      Result{Outcome: Accepted, Word: "silent", Score: 6},
		},
		{
			name:      "input is trimmed and lowercased",
			root:      "silkworm",
			candidate: "  WORMS\n",
			recognize: dict("worms"),
			want:      Result{Outcome: Accepted, Word: "worms", Score: 5},
		},
		{
			name:      "empty input is ignored",
			root:      "silkworm",
			candidate: "",
			recognize: allWords,
			want:      Result{Outcome: Ignored},
		},
		{
			name:      "whitespace-only input is ignored",
			root:      "silkworm",
			candidate: " \t\n ",
			recognize: allWords,
			want:      Result{Outcome: Ignored},
		},
		{
			name:      "used word is rejected regardless of case",
			root:      "silkworm",
			used:      []string{"silk", "Worm"},
			candidate: "worm",
			recognize: allWords,
			want:      Result{Outcome: Rejected, Word: "worm", Reason: AlreadyUsed},
		},
		{
			name:      "letter used more times than the root has",
			root:      "silkworm",
			candidate: "silkworms",
			recognize: allWords,
			want:      Result{Outcome: Rejected, Word: "silkworms", Reason: NotConstructible},
		},
		{
			name:      "letter missing from the root",
			root:      "silkworm",
			candidate: "milky",
			recognize: allWords,
			want:      Result{Outcome: Rejected, Word: "milky", Reason: NotConstructible},
		},
		{
			name:      "unknown word",
			root:      "silkworm",
			candidate: "wilk",
			recognize: dict("silk"),
			want:      Result{Outcome: Rejected, Word: "wilk", Reason: NotRecognized},
		},
		{
			name:      "nil recognizer recognizes nothing",
			root:      "silkworm",
			candidate: "silk",
			want:      Result{Outcome: Rejected, Word: "silk", Reason: NotRecognized},
		},
		{
			name:      "root word itself",
			root:      "silkworm",
			candidate: "SilkWorm",
			recognize: allWords,
			want:      Result{Outcome: Rejected, Word: "silkworm", Reason: IsRootWord},
		},
		{
			name:      "root word not in the dictionary stops at recognition",
			root:      "silkworm",
			candidate: "silkworm",
			recognize: dict("silk"),
			want:      Result{Outcome: Rejected, Word: "silkworm", Reason: NotRecognized},
		},
		{
			name:      "two letters is too short",
			root:      "kitten",
			candidate: "it",
			recognize: allWords,
			want:      Result{Outcome: Rejected, Word: "it", Reason: TooShort},
		},
		{
			name:      "used check runs before feasibility",
			root:      "silkworm",
			used:      []string{"zebra"},
			candidate: "zebra",
			recognize: allWords,
			want:      Result{Outcome: Rejected, Word: "zebra", Reason: AlreadyUsed},
		},
		{
			name:      "feasibility runs before length",
			root:      "silkworm",
			candidate: "ox",
			recognize: allWords,
			want:      Result{Outcome: Rejected, Word: "ox", Reason: NotConstructible},
		},
		{
			name:      "score counts letters not bytes",
			root:      "caf\u00e9",
			candidate: "FACE\u0301",
			recognize: dict("fac\u00e9"),
			want:      Result{Outcome: Accepted, Word: "fac\u00e9", Score: 4},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.root, tc.used, tc.candidate, tc.recognize)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	used := []string{"silk", "worm"}
	before := append([]string(nil), used...)

	first := Evaluate("silkworm", used, "milk", allWords)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Evaluate("silkworm", used, "milk", allWords))
	}
	assert.Equal(t, before, used)
	assert.Equal(t, Accepted, first.Outcome)
}

func TestConstructible(t *testing.T) {
	cases := []struct {
		root, word string
		want       bool
	}{
		{"silkworm", "worms", true},
		{"silkworm", "silkworm", true},
		{"silkworm", "silkworms", false},
		{"letter", "tete", true},
		{"letter", "street", false},
		{"letter", "teller", false},
		{"letter", "trele", true},
		{"abc", "", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Constructible(tc.root, tc.word), "%s from %s", tc.word, tc.root)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "hello", Normalize("\tHeLLo \n"))
	// decomposed e + combining acute composes to a single letter
	assert.Equal(t, "caf\u00e9", Normalize("CAFE\u0301"))
}

func TestReasonString(t *testing.T) {
	assert.Equal(t, "already_used", AlreadyUsed.String())
	assert.Equal(t, "too_short", TooShort.String())
	assert.Equal(t, "", NoReason.String())
	assert.Equal(t, "accepted", Accepted.String())
}
