// Package model defines the data models for the footballer guessing bot.
package model

import "time"

// PlayerRecord is an immutable snapshot of a footballer, fetched once per game.
// Once bound to a session it never changes for that session's lifetime.
type PlayerRecord struct {
	ID           string
	Name         string
	Position     string // fine-grained main position, e.g. "Centre-Back"
	Club         string
	Citizenship  []string
	Age          int // 0 means unknown
	Achievements []Achievement
}

// Achievement is one trophy entry from the player's record.
type Achievement struct {
	Title   string
	Count   int
	Seasons []string
}

// Candidate is a search result from the player data provider.
type Candidate struct {
	ID   string
	Name string
}

// SessionState is the lifecycle state of a game session.
type SessionState string

// Session states. A session is removed from the store as soon as it
// transitions to won or lost.
const (
	StateActive SessionState = "active"
	StateWon    SessionState = "won"
	StateLost   SessionState = "lost"
)

// Session is the per-user state of one game round.
// All mutable counters live here and nowhere else; the session store owns
// the lifetime and the engine serializes access per user id.
type Session struct {
	UserID              int64
	Target              *PlayerRecord
	QuestionsAsked      int
	MaxQuestions        int
	WrongPositionStreak int
	GuessAttemptsLeft   int
	State               SessionState
	StartedAt           time.Time
}

// QuestionsLeft returns how many question slots remain.
func (s *Session) QuestionsLeft() int {
	left := s.MaxQuestions - s.QuestionsAsked
	if left < 0 {
		return 0
	}
	return left
}

// Exhausted reports whether the question budget is used up.
func (s *Session) Exhausted() bool {
	return s.QuestionsAsked >= s.MaxQuestions
}
