// Package game implements the question-answering engine for the footballer
// guessing game: intent classification, answer resolution, guess evaluation
// and session orchestration.
package game

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Intent is the classified meaning of a free-text question.
type Intent int

// Intents, produced fresh per incoming message.
const (
	IntentUnknown Intent = iota
	IntentGuess
	IntentPositionGuess
	IntentPositionQuery
	IntentAchievement
	IntentHint
	IntentLeague
	IntentNationality
	IntentAge
	IntentClub
)

// String returns the intent name for logging.
func (i Intent) String() string {
	switch i {
	case IntentGuess:
		return "guess"
	case IntentPositionGuess:
		return "position_guess"
	case IntentPositionQuery:
		return "position_query"
	case IntentAchievement:
		return "achievement"
	case IntentHint:
		return "hint"
	case IntentLeague:
		return "league"
	case IntentNationality:
		return "nationality"
	case IntentAge:
		return "age"
	case IntentClub:
		return "club"
	default:
		return "unknown"
	}
}

// AgeComparator selects the comparison direction for age questions.
type AgeComparator int

const (
	CompareNone AgeComparator = iota
	CompareOlder
	CompareYounger
)

// Classification is the result of classifying one question.
type Classification struct {
	Intent Intent

	// Guess carries the extracted candidate name for IntentGuess.
	Guess string

	// Bucket carries the guessed coarse position for IntentPositionGuess.
	Bucket Bucket

	// Trophy carries the matched trophy for IntentAchievement.
	Trophy *Trophy

	// Comparator, Age and AgeParsed carry the extracted threshold for
	// IntentAge. AgeParsed is false when no number could be extracted.
	Comparator AgeComparator
	Age        int
	AgeParsed  bool
}

// guessPrefix and guessSuffix mark the in-chat guess pattern "это <X>?".
const (
	guessPrefix = "это "
	guessSuffix = "?"
)

// positionTrigger binds one question keyword to a coarse position bucket.
// Longer triggers come first: "полузащитник" contains "защитник" and must
// win over the defender rule.
var positionTriggers = []struct {
	keyword string
	bucket  Bucket
}{
	{"полузащитник", BucketMidfielder},
	{"вратарь", BucketGoalkeeper},
	{"защитник", BucketDefender},
	{"нападающий", BucketForward},
}

var positionQueryKeywords = []string{"позици", "амплуа"}

var hintKeywords = []string{"подсказка", "подсказку", "достижения", "трофеи"}

var leagueKeywords = []string{"в лиге", "лига", "лиге", "в какой стране"}

var nationalityKeywords = []string{"национальность", "гражданство", "сборн"}

// rule is one entry of the priority-ordered classification table.
// The first rule whose match succeeds wins; later triggers in the same
// question are ignored.
type rule struct {
	name  string
	match func(q, club string) (Classification, bool)
}

// Classifier maps normalized question text to an intent. Classification is
// driven by a fixed, priority-ordered rule table rather than inline branching,
// so the priority order is testable on its own.
type Classifier struct {
	rules []rule
}

// NewClassifier builds the classifier with the default rule table.
func NewClassifier() *Classifier {
	return &Classifier{rules: []rule{
		{name: "guess", match: matchGuess},
		{name: "position_guess", match: matchPositionGuess},
		{name: "position_query", match: matchKeywords(positionQueryKeywords, IntentPositionQuery)},
		{name: "achievement", match: matchAchievement},
		{name: "hint", match: matchKeywords(hintKeywords, IntentHint)},
		{name: "league", match: matchKeywords(leagueKeywords, IntentLeague)},
		{name: "nationality", match: matchKeywords(nationalityKeywords, IntentNationality)},
		{name: "age", match: matchAge},
		{name: "club", match: matchClub},
	}}
}

// Classify normalizes the question and returns the first matching intent.
// clubName is the target's club, used by the self-referential club rule;
// pass "" to disable it.
func (c *Classifier) Classify(text, clubName string) Classification {
	q := strings.ToLower(strings.TrimSpace(text))
	for _, r := range c.rules {
		if cls, ok := r.match(q, strings.ToLower(clubName)); ok {
			return cls
		}
	}
	return Classification{Intent: IntentUnknown}
}

// matchGuess matches the "это <X>?" pattern and extracts the candidate name.
func matchGuess(q, _ string) (Classification, bool) {
	if !strings.HasPrefix(q, guessPrefix) || !strings.HasSuffix(q, guessSuffix) {
		return Classification{}, false
	}
	name := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(q, guessPrefix), guessSuffix))
	if name == "" {
		return Classification{}, false
	}
	return Classification{Intent: IntentGuess, Guess: name}, true
}

func matchPositionGuess(q, _ string) (Classification, bool) {
	for _, t := range positionTriggers {
		if strings.Contains(q, t.keyword) {
			return Classification{Intent: IntentPositionGuess, Bucket: t.bucket}, true
		}
	}
	return Classification{}, false
}

func matchAchievement(q, _ string) (Classification, bool) {
	for i := range Trophies {
		trophy := &Trophies[i]
		for _, kw := range trophy.Keywords {
			if containsKeyword(q, kw) {
				return Classification{Intent: IntentAchievement, Trophy: trophy}, true
			}
		}
	}
	return Classification{}, false
}

// matchAge looks for an age-comparison phrase and extracts the numeric
// threshold from the rest of the text. A missing number still classifies as
// an age question so the resolver can answer with a parse-error message.
func matchAge(q, _ string) (Classification, bool) {
	var cmp AgeComparator
	switch {
	case strings.Contains(q, "старше"):
		cmp = CompareOlder
	case strings.Contains(q, "младше"), strings.Contains(q, "моложе"):
		cmp = CompareYounger
	default:
		return Classification{}, false
	}

	age, ok := extractNumber(q)
	return Classification{Intent: IntentAge, Comparator: cmp, Age: age, AgeParsed: ok}, true
}

// matchClub checks whether the target's own club name appears in the question.
func matchClub(q, club string) (Classification, bool) {
	if club == "" || !strings.Contains(q, club) {
		return Classification{}, false
	}
	return Classification{Intent: IntentClub}, true
}

// matchKeywords builds a rule matcher from a plain keyword set.
func matchKeywords(keywords []string, intent Intent) func(q, club string) (Classification, bool) {
	return func(q, _ string) (Classification, bool) {
		for _, kw := range keywords {
			if containsKeyword(q, kw) {
				return Classification{Intent: intent}, true
			}
		}
		return Classification{}, false
	}
}

// containsKeyword matches a keyword inside the question. Abbreviations of
// one or two runes (лч, чм) only match as whole words, otherwise substring
// containment is enough.
func containsKeyword(q, kw string) bool {
	if utf8.RuneCountInString(kw) > 2 {
		return strings.Contains(q, kw)
	}
	for _, field := range strings.Fields(q) {
		field = strings.TrimFunc(field, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if field == kw {
			return true
		}
	}
	return false
}

// extractNumber returns the first run of digits in the text.
func extractNumber(q string) (int, bool) {
	n := 0
	found := false
	for _, r := range q {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			found = true
			continue
		}
		if found {
			break
		}
	}
	return n, found
}
