package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func classify(text string) Classification {
	return NewClassifier().Classify(text, "")
}

func TestClassifyGuessPattern(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		guess string
	}{
		{"simple", "это зидан?", "зидан"},
		{"mixed case", "Это Зидан?", "зидан"},
		{"full name", "это Зинедин Зидан?", "зинедин зидан"},
		{"surrounding space", "  это месси?  ", "месси"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := classify(tt.text)
			assert.Equal(t, IntentGuess, cls.Intent)
			assert.Equal(t, tt.guess, cls.Guess)
		})
	}
}

func TestClassifyGuessPatternIncomplete(t *testing.T) {
	// Missing suffix or empty payload falls through to other rules.
	assert.NotEqual(t, IntentGuess, classify("это зидан").Intent)
	assert.NotEqual(t, IntentGuess, classify("это ?").Intent)
}

func TestClassifyPositionGuess(t *testing.T) {
	tests := []struct {
		text   string
		bucket Bucket
	}{
		{"он вратарь?", BucketGoalkeeper},
		{"он защитник?", BucketDefender},
		{"он полузащитник?", BucketMidfielder},
		{"он нападающий?", BucketForward},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cls := classify(tt.text)
			assert.Equal(t, IntentPositionGuess, cls.Intent)
			assert.Equal(t, tt.bucket, cls.Bucket)
		})
	}
}

// "полузащитник" contains "защитник"; the midfielder trigger must win.
func TestClassifyMidfielderNotDefender(t *testing.T) {
	cls := classify("мне кажется, он полузащитник")
	assert.Equal(t, IntentPositionGuess, cls.Intent)
	assert.Equal(t, BucketMidfielder, cls.Bucket)
}

func TestClassifyPositionQuery(t *testing.T) {
	assert.Equal(t, IntentPositionQuery, classify("какая у него позиция?").Intent)
	assert.Equal(t, IntentPositionQuery, classify("на какой позиции он играет?").Intent)
	assert.Equal(t, IntentPositionQuery, classify("какое у него амплуа?").Intent)
}

func TestClassifyAchievements(t *testing.T) {
	tests := []struct {
		text  string
		title string
	}{
		{"он выигрывал золотой мяч?", "Winner Ballon d'Or"},
		{"у него есть золотого мяча?", "Winner Ballon d'Or"},
		{"он лучший игрок fifa?", "The Best FIFA Men's Player"},
		{"он выигрывал лигу чемпионов?", "Champions League winner"},
		{"он играет в лиге чемпионов?", "Champions League winner"},
		{"он брал лч?", "Champions League winner"},
		{"он выигрывал чемпионат мира?", "World Cup winner"},
		{"он выигрывал чм?", "World Cup winner"},
		{"у него есть золотая бутса?", "Golden Boot winner"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cls := classify(tt.text)
			assert.Equal(t, IntentAchievement, cls.Intent)
			if assert.NotNil(t, cls.Trophy) {
				assert.Equal(t, tt.title, cls.Trophy.Title)
			}
		})
	}
}

// Short abbreviations only match as whole words.
func TestClassifyAbbreviationNeedsWordBoundary(t *testing.T) {
	assert.NotEqual(t, IntentAchievement, classify("какая у него личность?").Intent)
	assert.Equal(t, IntentAchievement, classify("он выигрывал лч?").Intent)
}

func TestClassifyHint(t *testing.T) {
	assert.Equal(t, IntentHint, classify("дай подсказку").Intent)
	assert.Equal(t, IntentHint, classify("какие у него достижения?").Intent)
}

func TestClassifyLeague(t *testing.T) {
	assert.Equal(t, IntentLeague, classify("в какой лиге он играет?").Intent)
	assert.Equal(t, IntentLeague, classify("в какой стране он выступает?").Intent)
}

func TestClassifyNationality(t *testing.T) {
	assert.Equal(t, IntentNationality, classify("какое у него гражданство?").Intent)
	assert.Equal(t, IntentNationality, classify("какая у него национальность?").Intent)
	assert.Equal(t, IntentNationality, classify("за какую сборную он играет?").Intent)
}

func TestClassifyAge(t *testing.T) {
	cls := classify("он старше 30?")
	assert.Equal(t, IntentAge, cls.Intent)
	assert.Equal(t, CompareOlder, cls.Comparator)
	assert.Equal(t, 30, cls.Age)
	assert.True(t, cls.AgeParsed)

	cls = classify("он моложе 25 лет?")
	assert.Equal(t, IntentAge, cls.Intent)
	assert.Equal(t, CompareYounger, cls.Comparator)
	assert.Equal(t, 25, cls.Age)
	assert.True(t, cls.AgeParsed)

	cls = classify("он младше 40?")
	assert.Equal(t, CompareYounger, cls.Comparator)
}

// A missing number still classifies as an age question; the resolver
// answers with the parse-error message.
func TestClassifyAgeWithoutNumber(t *testing.T) {
	cls := classify("он старше тридцати?")
	assert.Equal(t, IntentAge, cls.Intent)
	assert.False(t, cls.AgeParsed)
}

func TestClassifyClub(t *testing.T) {
	c := NewClassifier()

	cls := c.Classify("он играет за Реал Мадрид?", "Реал Мадрид")
	assert.Equal(t, IntentClub, cls.Intent)

	// Without the club name in the question, falls through to unknown.
	cls = c.Classify("он играет за Барселону?", "Реал Мадрид")
	assert.Equal(t, IntentUnknown, cls.Intent)

	// No club on record disables the rule entirely.
	cls = c.Classify("он играет за Реал Мадрид?", "")
	assert.Equal(t, IntentUnknown, cls.Intent)
}

func TestClassifyUnknown(t *testing.T) {
	assert.Equal(t, IntentUnknown, classify("он любит пиццу?").Intent)
	assert.Equal(t, IntentUnknown, classify("").Intent)
}

// A question with several triggers is honored for the first intent in
// priority order only.
func TestClassifyPriorityOrder(t *testing.T) {
	// guess pattern beats everything, even when the payload is a keyword
	cls := classify("это нападающий?")
	assert.Equal(t, IntentGuess, cls.Intent)

	// position beats achievement
	cls = classify("он нападающий и выигрывал золотой мяч?")
	assert.Equal(t, IntentPositionGuess, cls.Intent)
	assert.Equal(t, BucketForward, cls.Bucket)

	// achievement beats league ("лига чемпионов" vs the league keywords)
	cls = classify("он выигрывал лигу чемпионов в испанской лиге?")
	assert.Equal(t, IntentAchievement, cls.Intent)

	// league beats age
	cls = classify("он старше 30 и играет в лиге англии?")
	assert.Equal(t, IntentLeague, cls.Intent)
}
