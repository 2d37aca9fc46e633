// README: Session model: conversation state, archetype scores, accumulated context.
package session

import (
	"errors"
	"sort"
	"time"
)

// ErrNotFound is returned when no session exists under the given key.
var ErrNotFound = errors.New("session not found")

// State is the conversation stage. Stages only move forward along the
// declared order; ambiguous input holds the current stage.
type State string

const (
	StateGreeting State = "greeting"
	StatePlanning State = "planning"
	StateDetails  State = "details"
	StateBooking  State = "booking"
	StateFollowUp State = "follow_up"
)

// rank gives each state its position in the forward progression.
func (s State) rank() int {
	switch s {
	case StateGreeting:
		return 0
	case StatePlanning:
		return 1
	case StateDetails:
		return 2
	case StateBooking:
		return 3
	case StateFollowUp:
		return 4
	}
	return -1
}

// Archetype is a traveler personality label used to bias recommendation tone.
type Archetype string

const (
	Explorer          Archetype = "explorer"
	ComfortSeeker     Archetype = "comfort_seeker"
	CultureEnthusiast Archetype = "culture_enthusiast"
	BudgetTraveler    Archetype = "budget_traveler"
)

// Archetypes lists all archetypes in a fixed order, used for tie-breaking.
var Archetypes = []Archetype{Explorer, ComfortSeeker, CultureEnthusiast, BudgetTraveler}

// Session is the accumulated state of one conversation, keyed by an opaque
// identifier. Interests only grow, archetype scores only increase, and
// TurnCount advances by exactly one per processed message.
type Session struct {
	ID                 string            `json:"id"`
	TurnCount          int               `json:"turn_count"`
	State              State             `json:"state"`
	CurrentDestination string            `json:"current_destination,omitempty"`
	Interests          map[string]bool   `json:"interests,omitempty"`
	ArchetypeScores    map[Archetype]int `json:"archetype_scores,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// New returns a fresh session in the greeting state.
func New(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:              id,
		State:           StateGreeting,
		Interests:       make(map[string]bool),
		ArchetypeScores: make(map[Archetype]int),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Archetype returns the tentative traveler profile: the highest-scoring
// archetype so far, with ties resolved by the fixed Archetypes order.
// Empty when nothing has scored yet.
func (s *Session) Archetype() Archetype {
	var best Archetype
	bestScore := 0
	for _, a := range Archetypes {
		if score := s.ArchetypeScores[a]; score > bestScore {
			best, bestScore = a, score
		}
	}
	return best
}

// InterestList returns the interests as a sorted slice for callers that need
// a stable shape in responses and logs.
func (s *Session) InterestList() []string {
	out := make([]string, 0, len(s.Interests))
	for k := range s.Interests {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
