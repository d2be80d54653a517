// internal/httpserver/routes_game.go
//
// HTTP routes for playing the word scramble.
//   - POST /game/new   → create + start a session, return token and snapshot
//   - GET  /game       → current snapshot
//   - POST /game/word  → submit a candidate word
//   - POST /game/reset → clear used words and score (optionally redraw root)
//   - POST /game/root  → draw a new root, keeping used words and score
//   - DELETE /game     → end the session
//
// All but /game/new require a session token (token.go). Mutations go through
// store.Update so one session is never changed by two requests at once.
// Sessions older than the token lifetime are swept (SweepExpired).

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/alert"
	"github.com/robalobadob/wordscramble/internal/daily"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/scramble"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

const (
	modeRandom = "random"
	modeDaily  = "daily"

	maxBodyBytes = 1 << 16
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Group(func(r chi.Router) {
			r.Use(s.requireSession())
			r.Get("/", s.handleGetGame)
			r.Delete("/", s.handleEndGame)
			r.Post("/word", s.handleWord)
			r.Post("/reset", s.handleReset)
			r.Post("/root", s.handleNewRoot)
		})
	})
}

// -----------------------------------------------------------------------------
// /game/new

type newGameReq struct {
	Mode string `json:"mode"` // "random" (default) | "daily"
	Root string `json:"root"` // fixed root; needs cfg.AllowFixedRoot
}

type newGameRes struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Game      game.Snapshot `json:"game"`
}

// handleNewGame creates a session and picks its root word.
// Missing word data falls back to cfg.FallbackRoot instead of failing.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if !decodeBody(w, r, &req, true) {
		return
	}
	if req.Root != "" && !s.cfg.AllowFixedRoot {
		writeError(w, http.StatusForbidden, "fixed_root_disabled")
		return
	}

	sess := game.New(s.words, s.words.Recognizer(s.cfg.Locale))
	sess.Locale = s.cfg.Locale

	var err error
	switch {
	case req.Root != "":
		err = sess.StartWith(req.Root)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_root")
			return
		}
	case req.Mode == modeDaily:
		var root string
		if root, err = daily.Root(s.now(), s.cfg.DailySalt, s.words.Roots()); err == nil {
			err = sess.StartWith(root)
		}
	case req.Mode == "" || req.Mode == modeRandom:
		err = sess.Start()
	default:
		writeError(w, http.StatusBadRequest, "invalid_mode")
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("fallback", s.cfg.FallbackRoot).Msg("root word unavailable; using fallback")
		if err := sess.StartWith(s.cfg.FallbackRoot); err != nil {
			writeError(w, http.StatusServiceUnavailable, "data_unavailable")
			return
		}
	}

	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signSession(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign session")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)

	log.Info().Str("session", sess.ID).Str("root", sess.Root).Msg("game started")
	_ = json.NewEncoder(w).Encode(newGameRes{Token: tok, ExpiresAt: exp, Game: sess.Snapshot()})
}

// -----------------------------------------------------------------------------
// GET /game

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Get(r.Context(), sessionID(r))
	if err != nil {
		s.storeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(snap)
}

// -----------------------------------------------------------------------------
// /game/word

type wordReq struct {
	Word string `json:"word"`
}

type wordRes struct {
	Outcome string        `json:"outcome"`          // accepted | rejected | ignored
	Word    string        `json:"word,omitempty"`   // normalized input
	Points  int           `json:"points"`           // this word's contribution
	Reason  string        `json:"reason,omitempty"` // rejection code
	Alert   *alert.Alert  `json:"alert,omitempty"`
	Game    game.Snapshot `json:"game"`
}

// handleWord evaluates a word against the caller's session.
// Rejections are a normal 200 response carrying a reason and an alert.
func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	var req wordReq
	if !decodeBody(w, r, &req, false) {
		return
	}

	var res wordRes
	err := s.store.Update(r.Context(), sessionID(r), func(sess *game.Session) error {
		out, err := sess.Submit(req.Word)
		if err != nil {
			return err
		}
		res = wordRes{Outcome: out.Outcome.String(), Word: out.Word, Points: out.Score}
		if out.Outcome == scramble.Rejected {
			a := alert.For(out.Reason, sess.Root)
			res.Reason = out.Reason.String()
			res.Alert = &a
		}
		res.Game = sess.Snapshot()
		return nil
	})
	if err != nil {
		s.storeError(w, err)
		return
	}
	log.Debug().Str("session", sessionID(r)).Str("word", res.Word).Str("outcome", res.Outcome).Str("reason", res.Reason).Msg("word submitted")
	_ = json.NewEncoder(w).Encode(res)
}

// -----------------------------------------------------------------------------
// /game/reset

type resetReq struct {
	Redraw *bool `json:"redraw"` // nil → cfg.ResetRedrawsRoot
}

// handleReset clears used words and score. A failed redraw keeps the old
// root and is only logged.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetReq
	if !decodeBody(w, r, &req, true) {
		return
	}

	redraw := s.cfg.ResetRedrawsRoot
	if req.Redraw != nil {
		redraw = *req.Redraw
	}
	policy := game.KeepRoot
	if redraw {
		policy = game.RedrawRoot
	}

	var snap game.Snapshot
	err := s.store.Update(r.Context(), sessionID(r), func(sess *game.Session) error {
		if err := sess.Reset(policy); err != nil {
			log.Warn().Err(err).Str("session", sess.ID).Msg("redraw on reset failed; keeping root")
		}
		snap = sess.Snapshot()
		return nil
	})
	if err != nil {
		s.storeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(snap)
}

// -----------------------------------------------------------------------------
// /game/root

// handleNewRoot draws a fresh root word for the session.
func (s *Server) handleNewRoot(w http.ResponseWriter, r *http.Request) {
	var snap game.Snapshot
	err := s.store.Update(r.Context(), sessionID(r), func(sess *game.Session) error {
		if err := sess.Start(); err != nil {
			return err
		}
		snap = sess.Snapshot()
		return nil
	})
	if err != nil {
		s.storeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(snap)
}

// -----------------------------------------------------------------------------
// DELETE /game

// handleEndGame drops the caller's session and clears the cookie.
func (s *Server) handleEndGame(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), sessionID(r)); err != nil {
		s.storeError(w, err)
		return
	}
	s.clearSessionCookie(w)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// -----------------------------------------------------------------------------
// expiry

// SweepExpired deletes sessions whose token can no longer be valid.
func (s *Server) SweepExpired(ctx context.Context) int {
	n := s.store.Sweep(ctx, s.now().Add(-s.sessionTTL()))
	if n > 0 {
		log.Debug().Int("removed", n).Int("remaining", s.store.Len()).Msg("expired sessions swept")
	}
	return n
}

// RunSweeper calls SweepExpired every interval until ctx is done.
func (s *Server) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.SweepExpired(ctx)
		}
	}
}

// decodeBody reads at most maxBodyBytes of JSON into v. An empty body is
// fine when optional. On failure it writes the error and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(v)
	var tooLarge *http.MaxBytesError
	switch {
	case err == nil:
		return true
	case optional && errors.Is(err, io.EOF):
		return true
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "body_too_large")
	default:
		writeError(w, http.StatusBadRequest, "bad_json")
	}
	return false
}

// storeError maps session errors to HTTP responses.
func (s *Server) storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "no_session")
	case errors.Is(err, game.ErrNotStarted):
		writeError(w, http.StatusConflict, "not_started")
	case errors.Is(err, words.ErrDataUnavailable):
		log.Warn().Err(err).Msg("word data unavailable")
		writeError(w, http.StatusServiceUnavailable, "data_unavailable")
	default:
		log.Error().Err(err).Msg("session update")
		writeError(w, http.StatusInternalServerError, "server_error")
	}
}
