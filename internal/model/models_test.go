package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionsLeft(t *testing.T) {
	s := &Session{MaxQuestions: 10}

	assert.Equal(t, 10, s.QuestionsLeft())
	assert.False(t, s.Exhausted())

	s.QuestionsAsked = 4
	assert.Equal(t, 6, s.QuestionsLeft())

	s.QuestionsAsked = 10
	assert.Equal(t, 0, s.QuestionsLeft())
	assert.True(t, s.Exhausted())

	// Overshoot clamps to zero instead of going negative.
	s.QuestionsAsked = 12
	assert.Equal(t, 0, s.QuestionsLeft())
	assert.True(t, s.Exhausted())
}
