package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordbuilder/apps/go-server/internal/config"
	"github.com/robalobadob/wordbuilder/apps/go-server/internal/content"
	"github.com/robalobadob/wordbuilder/apps/go-server/internal/httpserver"
	"github.com/robalobadob/wordbuilder/apps/go-server/internal/store"
	"github.com/robalobadob/wordbuilder/apps/go-server/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if !cfg.Production() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, closeSrc, err := words.Select(ctx, words.SourceConfig{
		DSN:  cfg.DictionaryDSN,
		URL:  cfg.DictionaryURL,
		File: cfg.DictionaryFile,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open dictionary")
	}
	lex, err := words.Load(ctx, src)
	if closeSrc != nil {
		_ = closeSrc()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}

	c, err := content.Load(cfg.ContentFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load content")
	}
	log.Info().Int("words", lex.Len()).Int("baseWords", len(c.BaseWords)).Int("questions", len(c.Questions)).Msg("content loaded")

	mem := store.NewMemoryStore()
	go sweepSessions(ctx, mem, cfg.SessionSweep, cfg.SessionTTL)

	srv := httpserver.New(mem, lex, c, httpserver.Options{
		ClientOrigin:  cfg.ClientOrigin,
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
		Secure:        cfg.Production(),
		DailySalt:     cfg.DailySalt,
		MinWordLength: cfg.MinWordLength,
	})
	log.Info().Str("port", cfg.Port).Msg("starting go-server")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

// sweepSessions drops idle sessions every interval until ctx is done.
func sweepSessions(ctx context.Context, st store.Store, every, maxIdle time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := st.Sweep(ctx, maxIdle); n > 0 {
				log.Debug().Int("sessions", n).Msg("swept idle sessions")
			}
		}
	}
}
