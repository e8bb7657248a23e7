package game

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"footballer-guess-bot/internal/model"
	"footballer-guess-bot/internal/pkg/lock"
	"footballer-guess-bot/internal/roster"
	"footballer-guess-bot/internal/session"
)

// Default game parameters.
const (
	DefaultMaxQuestions  = 10
	DefaultGuessAttempts = 3
)

// Config holds engine configuration.
type Config struct {
	MaxQuestions    int
	GuessAttempts   int
	RevealThreshold int
}

// Engine orchestrates the game: it owns no session state itself, going
// through the session store for every call, and serializes all messages of
// one user via the per-user lock. Every entry point returns a single
// response string; no error ever propagates to the transport layer.
type Engine struct {
	store      *session.Store
	provider   PlayerProvider
	roster     *roster.Roster
	locks      *lock.UserLock
	classifier *Classifier
	resolver   *Resolver

	maxQuestions  int
	guessAttempts int
}

// NewEngine creates the game engine with the given collaborators.
func NewEngine(store *session.Store, p PlayerProvider, r *roster.Roster, locks *lock.UserLock, cfg *Config) *Engine {
	maxQuestions := DefaultMaxQuestions
	guessAttempts := DefaultGuessAttempts
	revealThreshold := DefaultRevealThreshold

	if cfg != nil {
		if cfg.MaxQuestions > 0 {
			maxQuestions = cfg.MaxQuestions
		}
		if cfg.GuessAttempts > 0 {
			guessAttempts = cfg.GuessAttempts
		}
		if cfg.RevealThreshold > 0 {
			revealThreshold = cfg.RevealThreshold
		}
	}

	return &Engine{
		store:         store,
		provider:      p,
		roster:        r,
		locks:         locks,
		classifier:    NewClassifier(),
		resolver:      NewResolver(p, revealThreshold),
		maxQuestions:  maxQuestions,
		guessAttempts: guessAttempts,
	}
}

// NewGame starts a fresh game for the user, replacing any game in progress.
// On any lookup failure no session is created and the user may retry.
func (e *Engine) NewGame(ctx context.Context, userID int64) (reply string) {
	e.locks.WithLock(userID, func() {
		reply = e.newGame(ctx, userID)
	})
	return reply
}

func (e *Engine) newGame(ctx context.Context, userID int64) string {
	name := e.roster.Random()
	target, err := e.loadTarget(ctx, name)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Str("player", name).Msg("Failed to load target player")
		return MsgLoadFailed
	}

	e.store.Create(userID, target, e.maxQuestions, e.guessAttempts)
	log.Info().
		Int64("user_id", userID).
		Str("target_id", target.ID).
		Int("sessions", e.store.Count()).
		Msg("Game started")

	return fmt.Sprintf(MsgGameStarted, e.maxQuestions, e.guessAttempts)
}

// loadTarget binds the immutable target snapshot: search by name, fetch the
// profile of the first candidate, then attach the achievement list.
func (e *Engine) loadTarget(ctx context.Context, name string) (*model.PlayerRecord, error) {
	candidates, err := e.provider.Search(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("player %q not found", name)
	}

	target, err := e.provider.Profile(ctx, candidates[0].ID)
	if err != nil {
		return nil, fmt.Errorf("profile fetch failed: %w", err)
	}
	if target.Name == "" {
		target.Name = candidates[0].Name
	}

	achievements, err := e.provider.Achievements(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("achievements fetch failed: %w", err)
	}
	target.Achievements = achievements

	return target, nil
}

// Handle processes one free-text question from the user.
func (e *Engine) Handle(ctx context.Context, userID int64, text string) (reply string) {
	e.locks.WithLock(userID, func() {
		reply = e.handle(ctx, userID, text)
	})
	return reply
}

func (e *Engine) handle(ctx context.Context, userID int64, text string) string {
	sess, err := e.store.Get(userID)
	if err != nil {
		return MsgNoSession
	}

	if sess.Exhausted() {
		sess.State = model.StateLost
		e.store.Delete(userID)
		log.Info().
			Int64("user_id", userID).
			Str("target", sess.Target.Name).
			Dur("duration", time.Since(sess.StartedAt)).
			Msg("Question budget exhausted")
		return fmt.Sprintf(MsgExhausted, sess.Target.Name)
	}

	cls := e.classifier.Classify(text, sess.Target.Club)
	log.Debug().
		Int64("user_id", userID).
		Stringer("intent", cls.Intent).
		Msg("Question classified")

	// In-chat guesses never consume a question slot.
	if cls.Intent == IntentGuess {
		return e.evaluateGuess(sess, cls.Guess, false)
	}

	answer, counts := e.resolver.Resolve(ctx, sess, cls)
	if counts {
		sess.QuestionsAsked++
		log.Debug().
			Int64("user_id", userID).
			Int("questions_left", sess.QuestionsLeft()).
			Msg("Question counted")
	}
	return answer
}

// Guess processes the strict /guess command: attempts are limited and
// exhausting them loses the game. The context is accepted for symmetry with
// the other entry points; this path performs no provider calls.
func (e *Engine) Guess(_ context.Context, userID int64, name string) (reply string) {
	e.locks.WithLock(userID, func() {
		reply = e.guess(userID, name)
	})
	return reply
}

func (e *Engine) guess(userID int64, name string) string {
	sess, err := e.store.Get(userID)
	if err != nil {
		return MsgNoSession
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return MsgGuessUsage
	}
	return e.evaluateGuess(sess, name, true)
}

// evaluateGuess compares a candidate name against the target. In strict
// mode misses burn a limited attempt; in simple mode the session is left
// untouched.
func (e *Engine) evaluateGuess(sess *model.Session, name string, strict bool) string {
	if GuessMatches(name, sess.Target.Name) {
		sess.State = model.StateWon
		e.store.Delete(sess.UserID)
		log.Info().
			Int64("user_id", sess.UserID).
			Str("target", sess.Target.Name).
			Dur("duration", time.Since(sess.StartedAt)).
			Msg("Game won")
		return fmt.Sprintf(MsgCongratulations, sess.Target.Name)
	}

	if !strict {
		return MsgWrongGuess
	}

	sess.GuessAttemptsLeft--
	if sess.GuessAttemptsLeft <= 0 {
		sess.State = model.StateLost
		e.store.Delete(sess.UserID)
		log.Info().Int64("user_id", sess.UserID).Str("target", sess.Target.Name).Msg("Guess attempts exhausted")
		return fmt.Sprintf(MsgAttemptsExhausted, sess.Target.Name)
	}
	return fmt.Sprintf(MsgWrongGuessAttempts, sess.GuessAttemptsLeft)
}

// Info returns the static help text. Stateless, no session interaction.
func (e *Engine) Info() string {
	return MsgInfo
}
