package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"footballer-guess-bot/internal/model"
	"footballer-guess-bot/internal/provider"
)

// PlayerProvider is the external player data lookup contract consumed by
// the engine and the resolver. All calls may fail; failures degrade to
// user-visible messages, never crash the game.
type PlayerProvider interface {
	Search(ctx context.Context, name string) ([]model.Candidate, error)
	Profile(ctx context.Context, id string) (*model.PlayerRecord, error)
	Achievements(ctx context.Context, id string) ([]model.Achievement, error)
	ClubCountry(ctx context.Context, clubName string) (string, error)
}

// DefaultRevealThreshold is the wrong-position streak at which the true
// position is revealed.
const DefaultRevealThreshold = 3

// Resolver turns a classified question plus the session's target into a
// response string. It mutates session counters (wrong-position streak) but
// never the target record; the engine holds the user's lock around every call.
type Resolver struct {
	provider        PlayerProvider
	revealThreshold int
}

// NewResolver creates a resolver. The provider is only used for club
// country lookups; everything else is answered from the target snapshot.
func NewResolver(p PlayerProvider, revealThreshold int) *Resolver {
	if revealThreshold <= 0 {
		revealThreshold = DefaultRevealThreshold
	}
	return &Resolver{provider: p, revealThreshold: revealThreshold}
}

// Resolve answers one classified question for the session.
// The second return value reports whether the question consumed a slot of
// the question budget: every produced answer counts except a mid-game data
// lookup failure, which leaves the session untouched.
func (r *Resolver) Resolve(ctx context.Context, sess *model.Session, cls Classification) (string, bool) {
	switch cls.Intent {
	case IntentPositionGuess:
		return r.positionGuess(sess, cls.Bucket), true
	case IntentPositionQuery:
		return r.positionQuery(sess.Target), true
	case IntentAchievement:
		return r.achievement(sess.Target, cls.Trophy), true
	case IntentHint:
		return r.hint(sess.Target), true
	case IntentLeague:
		return r.league(ctx, sess.Target)
	case IntentNationality:
		return r.nationality(sess.Target), true
	case IntentAge:
		return r.age(sess.Target, cls), true
	case IntentClub:
		return fmt.Sprintf("Ответ: Да, он играет за %s.", sess.Target.Club), true
	default:
		return MsgUnknown, true
	}
}

// positionGuess answers a coarse position guess and maintains the
// wrong-position streak. Reaching the reveal threshold overrides the plain
// "no" with an explicit reveal of the true position and resets the streak.
func (r *Resolver) positionGuess(sess *model.Session, guessed Bucket) string {
	actual, ok := BucketFor(sess.Target.Position)
	if !ok {
		return MsgAttributeUnavailable
	}

	if guessed == actual {
		sess.WrongPositionStreak = 0
		return "Ответ: Да"
	}

	sess.WrongPositionStreak++
	if sess.WrongPositionStreak >= r.revealThreshold {
		sess.WrongPositionStreak = 0
		return fmt.Sprintf("Подсказка: на самом деле он %s (%s).",
			bucketNamesRu[actual], capitalize(sess.Target.Position))
	}
	return "Ответ: Нет"
}

func (r *Resolver) positionQuery(target *model.PlayerRecord) string {
	if target.Position == "" {
		return MsgAttributeUnavailable
	}
	return fmt.Sprintf("Позиция игрока: %s.", capitalize(target.Position))
}

func (r *Resolver) achievement(target *model.PlayerRecord, trophy *Trophy) string {
	for _, a := range target.Achievements {
		if a.Title != trophy.Title {
			continue
		}
		msg := fmt.Sprintf("Ответ: %s %d раз(а)", trophy.YesVerb, a.Count)
		if len(a.Seasons) > 0 {
			msg += ": " + strings.Join(a.Seasons, ", ")
		}
		return msg + "."
	}
	return "Ответ: " + trophy.NoText
}

func (r *Resolver) hint(target *model.PlayerRecord) string {
	if len(target.Achievements) == 0 {
		return MsgNoAchievements
	}
	titles := make([]string, 0, len(target.Achievements))
	for _, a := range target.Achievements {
		titles = append(titles, a.Title)
	}
	return fmt.Sprintf("Подсказка, достижения игрока: %s.", strings.Join(titles, ", "))
}

// league resolves the target club's country through the provider.
// Not-found answers count as questions; transport failures do not.
func (r *Resolver) league(ctx context.Context, target *model.PlayerRecord) (string, bool) {
	if target.Club == "" {
		return MsgAttributeUnavailable, true
	}

	country, err := r.provider.ClubCountry(ctx, target.Club)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			return MsgLeagueUnknown, true
		}
		log.Warn().Err(err).Str("club", target.Club).Msg("Club country lookup failed")
		return MsgProviderUnavailable, false
	}
	return fmt.Sprintf("Ответ: Игрок выступает в чемпионате страны: %s.", country), true
}

func (r *Resolver) nationality(target *model.PlayerRecord) string {
	if len(target.Citizenship) == 0 {
		return MsgAttributeUnavailable
	}
	return fmt.Sprintf("Гражданство игрока: %s.", strings.Join(target.Citizenship, ", "))
}

func (r *Resolver) age(target *model.PlayerRecord, cls Classification) string {
	if !cls.AgeParsed {
		return MsgAgeParseError
	}
	if target.Age == 0 {
		return MsgAttributeUnavailable
	}

	var yes bool
	switch cls.Comparator {
	case CompareOlder:
		yes = target.Age > cls.Age
	case CompareYounger:
		yes = target.Age < cls.Age
	}
	if yes {
		return "Ответ: Да"
	}
	return "Ответ: Нет"
}

// capitalize title-cases a position label for display.
func capitalize(s string) string {
	return cases.Title(language.English).String(s)
}
