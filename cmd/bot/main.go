// Package main is the entry point for the footballer guessing bot.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"footballer-guess-bot/internal/bot"
	"footballer-guess-bot/internal/config"
	"footballer-guess-bot/internal/game"
	"footballer-guess-bot/internal/pkg/lock"
	"footballer-guess-bot/internal/provider"
	"footballer-guess-bot/internal/roster"
	"footballer-guess-bot/internal/session"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().Msg("Configuration loaded successfully")

	// Load the candidate player pool
	pool, err := roster.Load(cfg.Game.RosterPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Game.RosterPath).Msg("Failed to load player roster")
	}
	log.Info().Int("players", pool.Size()).Msg("Player roster loaded")

	// Player data API client
	apiClient := provider.NewClient(&provider.Config{
		BaseURL: cfg.Provider.BaseURL,
		Timeout: cfg.Provider.Timeout,
	})

	// Core game engine: in-memory sessions, per-user locks
	store := session.NewStore()
	userLock := lock.NewUserLock()

	engine := game.NewEngine(store, apiClient, pool, userLock, &game.Config{
		MaxQuestions:    cfg.Game.MaxQuestions,
		GuessAttempts:   cfg.Game.GuessAttempts,
		RevealThreshold: cfg.Game.StreakReveal,
	})

	// Initialize bot
	telegramBot, err := bot.New(&bot.Dependencies{
		Config: cfg,
		Engine: engine,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot")
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Msg("Bot is starting...")
		telegramBot.Start()
	}()

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	telegramBot.Stop()
	log.Info().Msg("Bot stopped gracefully")
}
