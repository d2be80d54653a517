// internal/game/session.go
//
// Session lifecycle for the word scramble.
//
//   Uninitialized ──Start/StartWith──▶ Active ──Submit──▶ Active
//                                        │ ▲
//                                        └─┘ Reset / Start
//
// Only Submit (on acceptance), Reset, and Start change a started session.
// Validation itself lives in internal/scramble and never mutates anything.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/wordscramble/internal/scramble"
	"github.com/robalobadob/wordscramble/internal/words"
)

var (
	ErrNotStarted = errors.New("game: session not started")
	ErrEmptyRoot  = errors.New("game: empty root word")
)

// New returns an uninitialized session. src may be nil if the host only
// ever uses StartWith.
func New(src RootSource, recognize scramble.Recognizer) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        randomID(),
		Used:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
		source:    src,
		recognize: recognize,
	}
}

// State reports whether a root word has been chosen.
func (s *Session) State() State {
	if s.Root == "" {
		return Uninitialized
	}
	return Active
}

// Start draws a random root word. Used words and score are kept, so calling
// it on an active session just swaps the root. On failure nothing changes
// and the source's error is returned for the host to handle.
func (s *Session) Start() error {
	root, err := s.draw()
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	return s.StartWith(root)
}

// StartWith begins (or continues) with a host-chosen root word.
func (s *Session) StartWith(root string) error {
	root = scramble.Normalize(root)
	if root == "" {
		return ErrEmptyRoot
	}
	s.Root = root
	s.StartedAt = time.Now().UTC()
	s.UpdatedAt = s.StartedAt
	return nil
}

// Submit evaluates candidate against the session. Accepted words are
// prepended to Used and their score added; anything else changes nothing.
func (s *Session) Submit(candidate string) (scramble.Result, error) {
	if s.State() != Active {
		return scramble.Result{}, ErrNotStarted
	}
	res := scramble.Evaluate(s.Root, s.Used, candidate, s.recognize)
	if res.Outcome == scramble.Accepted {
		s.Used = append([]string{res.Word}, s.Used...)
		s.Score += res.Score
		s.UpdatedAt = time.Now().UTC()
	}
	return res, nil
}

// Reset clears used words and score. With RedrawRoot a new root is drawn
// too; if that fails the old root stays and the error is returned.
func (s *Session) Reset(policy ResetPolicy) error {
	s.Used = []string{}
	s.Score = 0
	s.UpdatedAt = time.Now().UTC()
	if policy == RedrawRoot {
		return s.Start()
	}
	return nil
}

// Snapshot copies the session for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:        s.ID,
		State:     s.State().String(),
		Locale:    s.Locale,
		Root:      s.Root,
		Used:      append([]string{}, s.Used...),
		Score:     s.Score,
		UpdatedAt: s.UpdatedAt,
	}
}

func (s *Session) draw() (string, error) {
	if s.source == nil {
		return "", fmt.Errorf("no root source: %w", words.ErrDataUnavailable)
	}
	return s.source.RandomRoot()
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
