// internal/game/types.go
//
// Type definitions for a word scramble session.
// Defines:
//   - State:       uninitialized until a root word is chosen, then active.
//   - ResetPolicy: whether Reset keeps or redraws the root word.
//   - RootSource:  where random root words come from.
//   - Session:     root word, accepted words, and score for one play-through.
//   - Snapshot:    a JSON-friendly copy of a Session.

package game

import (
	"time"

	"github.com/robalobadob/wordscramble/internal/scramble"
)

type State int

const (
	Uninitialized State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "uninitialized"
}

type ResetPolicy int

const (
	KeepRoot ResetPolicy = iota
	RedrawRoot
)

// RootSource supplies random root words. *words.Catalog implements it.
type RootSource interface {
	RandomRoot() (string, error)
}

// Session is the mutable game state. It is not safe for concurrent use;
// hosts serialize access (see store.Store.Update).
type Session struct {
	ID        string    // Unique session identifier (random hex string).
	Locale    string    // Dictionary locale the recognizer was bound to.
	Root      string    // Root word, lowercase. Empty until started.
	Used      []string  // Accepted words, most recent first.
	Score     int       // Sum of accepted word lengths.
	CreatedAt time.Time // When New was called.
	StartedAt time.Time // When the current root was chosen.
	UpdatedAt time.Time // Last state change (start, accepted word, reset).

	source    RootSource
	recognize scramble.Recognizer
}

// Snapshot is a point-in-time copy of a Session for hosts to render.
type Snapshot struct {
	ID        string    `json:"id"`
	State     string    `json:"state"`
	Locale    string    `json:"locale,omitempty"`
	Root      string    `json:"root"`
	Used      []string  `json:"used"`
	Score     int       `json:"score"`
	UpdatedAt time.Time `json:"updatedAt"`
}
