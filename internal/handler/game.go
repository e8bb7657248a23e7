// Package handler provides Telegram bot command handlers. Handlers are a
// thin shell over the game engine: they extract the user id and text,
// dispatch the engine call off the poller goroutine and send back the
// single response string.
package handler

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"footballer-guess-bot/internal/game"
)

// requestTimeout bounds one engine call, including provider lookups.
const requestTimeout = 15 * time.Second

// GameHandler handles the game commands and free-text questions.
type GameHandler struct {
	engine *game.Engine
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(engine *game.Engine) *GameHandler {
	return &GameHandler{engine: engine}
}

// dispatch runs an engine call on its own goroutine and sends the reply.
// Provider lookups can be slow; they must never stall the poller loop and
// with it other users' messages. Per-user ordering is preserved by the
// engine's user lock.
func (h *GameHandler) dispatch(c tele.Context, fn func(ctx context.Context) string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		reply := fn(ctx)
		if err := c.Send(reply); err != nil {
			log.Warn().Err(err).Msg("Failed to send reply")
		}
	}()
}

// HandleStartGame handles /startgame: binds a fresh target to the user.
func (h *GameHandler) HandleStartGame(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	h.dispatch(c, func(ctx context.Context) string {
		return h.engine.NewGame(ctx, sender.ID)
	})
	return nil
}

// HandleGuess handles /guess <name>: a strict guess with limited attempts.
func (h *GameHandler) HandleGuess(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	name := strings.Join(c.Args(), " ")
	h.dispatch(c, func(ctx context.Context) string {
		return h.engine.Guess(ctx, sender.ID, name)
	})
	return nil
}

// HandleInfo handles /info: static help text, no session interaction.
func (h *GameHandler) HandleInfo(c tele.Context) error {
	return c.Send(h.engine.Info())
}

// HandleQuestion handles any non-command text as a game question.
func (h *GameHandler) HandleQuestion(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	text := c.Text()
	h.dispatch(c, func(ctx context.Context) string {
		return h.engine.Handle(ctx, sender.ID, text)
	})
	return nil
}
