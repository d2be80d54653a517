// Command wordscramble-shell plays the word scramble in a terminal.
package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/shell"
	"github.com/robalobadob/wordscramble/internal/words"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cat, err := words.Load(words.Options{
		StartFile:      cfg.StartWordsFile,
		DictionaryFile: cfg.DictionaryFile,
		Locale:         cfg.Locale,
	})
	if err != nil && !errors.Is(err, words.ErrDataUnavailable) {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	policy := game.KeepRoot
	if cfg.ResetRedrawsRoot {
		policy = game.RedrawRoot
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: filepath.Join(os.TempDir(), "wordscramble.history"),
		EOFPrompt:   "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("readline")
	}
	defer l.Close()

	sess := game.New(cat, cat.Recognizer(cfg.Locale))
	sess.Locale = cfg.Locale
	ctl := shell.NewController(sess, l.Stdout(), shell.Options{Fallback: cfg.FallbackRoot, Reset: policy})
	if err := ctl.Begin(); err != nil {
		log.Fatal().Err(err).Msg("could not start a game")
	}
	ctl.Handle(":help")

	for {
		l.SetPrompt(ctl.Prompt())
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if ctl.Handle(strings.TrimRight(line, "\r\n")) {
			break
		}
	}
}
