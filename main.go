package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/httpserver"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

func main() {
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
	switch {
	case errors.Is(err, words.ErrDataUnavailable):
		// keep serving; new games use cfg.FallbackRoot
		log.Error().Err(err).Str("fallback", cfg.FallbackRoot).Msg("start words unavailable")
	case err != nil:
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	srv := httpserver.New(store.NewMemoryStore(), cat, cfg)
	hs := &http.Server{Addr: ":" + cfg.Port, Handler: srv.Handler()}

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go srv.RunSweeper(sweepCtx, cfg.SweepInterval)

	idleConnsClosed := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		stopSweep()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := hs.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("http server shutdown")
		}
		close(idleConnsClosed)
	}()

	log.Info().Str("port", cfg.Port).Msg("starting wordscramble server")
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
	<-idleConnsClosed
	log.Info().Msg("server gracefully shut down")
}
