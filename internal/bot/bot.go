// Package bot provides the Telegram bot initialization and handler registration.
package bot

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"footballer-guess-bot/internal/config"
	"footballer-guess-bot/internal/game"
	"footballer-guess-bot/internal/handler"
)

// Bot wraps the telebot instance with application dependencies.
type Bot struct {
	bot *tele.Bot
	cfg *config.Config

	gameHandler *handler.GameHandler
}

// Dependencies holds everything the bot handlers need.
type Dependencies struct {
	Config *config.Config
	Engine *game.Engine
}

// New creates a new Bot instance with the given dependencies.
func New(deps *Dependencies) (*Bot, error) {
	if deps.Config.Bot.Token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	pref := tele.Settings{
		Token:  deps.Config.Bot.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	teleBot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := &Bot{
		bot:         teleBot,
		cfg:         deps.Config,
		gameHandler: handler.NewGameHandler(deps.Engine),
	}

	b.registerMiddleware()
	b.registerHandlers()

	return b, nil
}

// registerMiddleware registers all middleware.
func (b *Bot) registerMiddleware() {
	b.bot.Use(WhitelistMiddleware(b.cfg))
	b.bot.Use(LoggingMiddleware())
	b.bot.Use(RecoveryMiddleware())
}

// registerHandlers registers all command and text handlers.
func (b *Bot) registerHandlers() {
	b.bot.Handle("/startgame", b.gameHandler.HandleStartGame)
	b.bot.Handle("/guess", b.gameHandler.HandleGuess)
	b.bot.Handle("/info", b.gameHandler.HandleInfo)

	// Everything else is treated as a game question.
	b.bot.Handle(tele.OnText, b.gameHandler.HandleQuestion)
}

// Start starts the bot polling.
func (b *Bot) Start() {
	log.Info().Msg("Starting bot...")
	b.bot.Start()
}

// Stop stops the bot gracefully.
func (b *Bot) Stop() {
	log.Info().Msg("Stopping bot...")
	b.bot.Stop()
}
